package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/streetbits/bitsquare/internal/core/domain"
)

type accountInmemoryStore struct {
	accounts map[string]domain.PaymentAccount
	locker   *sync.RWMutex
}

type PaymentAccountRepositoryImpl struct {
	store *accountInmemoryStore
}

// NewPaymentAccountRepositoryImpl returns a new empty
// PaymentAccountRepositoryImpl.
func NewPaymentAccountRepositoryImpl() domain.PaymentAccountRepository {
	return &PaymentAccountRepositoryImpl{&accountInmemoryStore{
		accounts: map[string]domain.PaymentAccount{},
		locker:   &sync.RWMutex{},
	}}
}

func (r PaymentAccountRepositoryImpl) AddAccount(
	_ context.Context, account domain.PaymentAccount,
) error {
	if len(account.ID) <= 0 {
		return ErrInvalidAccountID
	}

	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.accounts[account.ID]; ok {
		return ErrAccountAlreadyExists
	}
	r.store.accounts[account.ID] = account
	return nil
}

func (r PaymentAccountRepositoryImpl) GetAccount(
	_ context.Context, accountID string,
) (*domain.PaymentAccount, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	account, ok := r.store.accounts[accountID]
	if !ok {
		return nil, domain.ErrPaymentAccountNotFound
	}
	return &account, nil
}

func (r PaymentAccountRepositoryImpl) GetAllAccounts(
	_ context.Context,
) ([]domain.PaymentAccount, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	accounts := make([]domain.PaymentAccount, 0, len(r.store.accounts))
	for _, a := range r.store.accounts {
		accounts = append(accounts, a)
	}
	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].CreationDate == accounts[j].CreationDate {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreationDate < accounts[j].CreationDate
	})
	return accounts, nil
}

func (r PaymentAccountRepositoryImpl) DeleteAccount(
	_ context.Context, accountID string,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.accounts[accountID]; !ok {
		return domain.ErrPaymentAccountNotFound
	}
	delete(r.store.accounts, accountID)
	return nil
}
