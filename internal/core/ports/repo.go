package ports

import "github.com/streetbits/bitsquare/internal/core/domain"

// RepoManager gives access to the repositories of the offer book and of the
// user's payment accounts.
type RepoManager interface {
	OfferRepository() domain.OfferRepository
	PaymentAccountRepository() domain.PaymentAccountRepository
	Close()
}
