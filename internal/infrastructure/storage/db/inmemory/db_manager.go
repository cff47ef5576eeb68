package inmemory

import (
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

type RepoManager struct {
	offerRepository   domain.OfferRepository
	accountRepository domain.PaymentAccountRepository
}

func NewRepoManager() ports.RepoManager {
	return &RepoManager{
		offerRepository:   NewOfferRepositoryImpl(),
		accountRepository: NewPaymentAccountRepositoryImpl(),
	}
}

func (d *RepoManager) OfferRepository() domain.OfferRepository {
	return d.offerRepository
}

func (d *RepoManager) PaymentAccountRepository() domain.PaymentAccountRepository {
	return d.accountRepository
}

func (d *RepoManager) Close() {}
