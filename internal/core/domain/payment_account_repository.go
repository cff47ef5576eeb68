package domain

import "context"

// PaymentAccountRepository is the abstraction for any kind of database
// intended to persist the user's payment accounts.
type PaymentAccountRepository interface {
	// AddAccount adds a new payment account to the repository.
	AddAccount(ctx context.Context, account PaymentAccount) error
	// GetAccount returns the payment account with the given id or
	// ErrPaymentAccountNotFound.
	GetAccount(ctx context.Context, accountID string) (*PaymentAccount, error)
	// GetAllAccounts returns all payment accounts.
	GetAllAccounts(ctx context.Context) ([]PaymentAccount, error)
	// DeleteAccount removes a payment account from the repository.
	DeleteAccount(ctx context.Context, accountID string) error
}
