package dbbadger

import (
	"context"
	"sort"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type paymentAccountRepositoryImpl struct {
	store *badgerhold.Store
}

// NewPaymentAccountRepositoryImpl returns a new PaymentAccountRepository
// backed by the given badgerhold store.
func NewPaymentAccountRepositoryImpl(
	store *badgerhold.Store,
) domain.PaymentAccountRepository {
	return paymentAccountRepositoryImpl{store}
}

func (r paymentAccountRepositoryImpl) AddAccount(
	_ context.Context, account domain.PaymentAccount,
) error {
	if len(account.ID) <= 0 {
		return ErrInvalidAccountID
	}
	if err := r.store.Insert(account.ID, account); err != nil {
		if err == badgerhold.ErrKeyExists {
			return ErrAccountAlreadyExists
		}
		return err
	}
	return nil
}

func (r paymentAccountRepositoryImpl) GetAccount(
	_ context.Context, accountID string,
) (*domain.PaymentAccount, error) {
	var account domain.PaymentAccount
	if err := r.store.Get(accountID, &account); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrPaymentAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

func (r paymentAccountRepositoryImpl) GetAllAccounts(
	_ context.Context,
) ([]domain.PaymentAccount, error) {
	accounts := make([]domain.PaymentAccount, 0)
	if err := r.store.Find(&accounts, nil); err != nil {
		return nil, err
	}

	sort.SliceStable(accounts, func(i, j int) bool {
		if accounts[i].CreationDate == accounts[j].CreationDate {
			return accounts[i].ID < accounts[j].ID
		}
		return accounts[i].CreationDate < accounts[j].CreationDate
	})
	return accounts, nil
}

func (r paymentAccountRepositoryImpl) DeleteAccount(
	_ context.Context, accountID string,
) error {
	if err := r.store.Delete(accountID, domain.PaymentAccount{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrPaymentAccountNotFound
		}
		return err
	}
	return nil
}
