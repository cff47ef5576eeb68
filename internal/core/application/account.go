package application

import (
	"context"

	"github.com/streetbits/bitsquare/internal/core/application/account"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

type AccountService interface {
	AddAccount(
		ctx context.Context, req account.AccountRequest,
	) (*domain.PaymentAccount, error)
	RemoveAccount(ctx context.Context, accountID string) error
	ListAccounts(ctx context.Context) ([]domain.PaymentAccount, error)
	ListWalletAddresses(ctx context.Context) ([]account.WalletAddress, error)
}

func NewAccountService(repoManager ports.RepoManager) (AccountService, error) {
	return account.NewService(repoManager)
}
