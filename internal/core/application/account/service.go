package account

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

// AccountRequest holds the parameters of a new payment account. Which of
// them are required depends on the payment method.
type AccountRequest struct {
	Name                 string
	PaymentMethodID      string
	Currency             string
	CountryCode          string
	AcceptedCountryCodes []string
	BankID               string
	AcceptedBankIDs      []string
	Address              string
}

// WalletAddress is the receiving address of a crypto currency account.
type WalletAddress struct {
	AccountID   string
	AccountName string
	Currency    string
	Address     string
}

type Service struct {
	repoManager ports.RepoManager
}

func NewService(repoManager ports.RepoManager) (*Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	return &Service{repoManager}, nil
}

// AddAccount creates and stores a new payment account.
func (s *Service) AddAccount(
	ctx context.Context, req AccountRequest,
) (*domain.PaymentAccount, error) {
	account, err := newAccount(req)
	if err != nil {
		return nil, err
	}

	if err := s.repoManager.PaymentAccountRepository().AddAccount(
		ctx, *account,
	); err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"account": account.ID,
		"method":  account.PaymentMethodID,
	}).Debug("payment account added")
	return account, nil
}

// RemoveAccount deletes the payment account unless some offer of the offer
// book still refers to it.
func (s *Service) RemoveAccount(ctx context.Context, accountID string) error {
	accountRepo := s.repoManager.PaymentAccountRepository()
	if _, err := accountRepo.GetAccount(ctx, accountID); err != nil {
		return err
	}

	offers, err := s.repoManager.OfferRepository().GetOffersForAccount(
		ctx, accountID,
	)
	if err != nil {
		return err
	}
	if len(offers) > 0 {
		return fmt.Errorf(
			"%w: %d offer(s) to cancel first",
			domain.ErrPaymentAccountHasOffers, len(offers),
		)
	}

	if err := accountRepo.DeleteAccount(ctx, accountID); err != nil {
		return err
	}

	log.WithField("account", accountID).Debug("payment account removed")
	return nil
}

func (s *Service) ListAccounts(
	ctx context.Context,
) ([]domain.PaymentAccount, error) {
	return s.repoManager.PaymentAccountRepository().GetAllAccounts(ctx)
}

// ListWalletAddresses returns the receiving addresses of all crypto
// currency accounts.
func (s *Service) ListWalletAddresses(
	ctx context.Context,
) ([]WalletAddress, error) {
	accounts, err := s.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}

	addresses := make([]WalletAddress, 0)
	for _, a := range accounts {
		address, ok := a.AsCryptoCurrency()
		if !ok {
			continue
		}
		var currency string
		if len(a.TradeCurrencies) > 0 {
			currency = a.TradeCurrencies[0]
		}
		addresses = append(addresses, WalletAddress{
			AccountID:   a.ID,
			AccountName: a.Name,
			Currency:    currency,
			Address:     address,
		})
	}
	return addresses, nil
}

func newAccount(req AccountRequest) (*domain.PaymentAccount, error) {
	switch req.PaymentMethodID {
	case domain.SepaPaymentMethodID:
		return domain.NewSepaAccount(
			req.Name, req.CountryCode, req.AcceptedCountryCodes,
		)
	case domain.NationalBankPaymentMethodID:
		return domain.NewNationalBankAccount(
			req.Name, req.CountryCode, req.BankID, req.Currency,
		)
	case domain.SameBankPaymentMethodID:
		return domain.NewSameBankAccount(
			req.Name, req.CountryCode, req.BankID, req.Currency,
		)
	case domain.SpecificBanksPaymentMethodID:
		return domain.NewSpecificBanksAccount(
			req.Name, req.CountryCode, req.BankID, req.Currency,
			req.AcceptedBankIDs,
		)
	case domain.BlockChainsPaymentMethodID:
		return domain.NewCryptoCurrencyAccount(
			req.Name, req.Currency, req.Address,
		)
	default:
		return domain.NewCountryBasedAccount(
			req.Name, req.PaymentMethodID, req.CountryCode, req.Currency,
		)
	}
}
