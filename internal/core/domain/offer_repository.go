package domain

import "context"

// OfferRepository is the abstraction for any kind of database intended to
// persist the offers of the local offer book.
type OfferRepository interface {
	// AddOffer adds a new offer to the repository. It returns
	// ErrOfferAlreadyExists if an offer with the same id is already stored.
	AddOffer(ctx context.Context, offer OfferPayload) error
	// GetOffer returns the offer with the given id.
	GetOffer(ctx context.Context, offerID string) (*OfferPayload, error)
	// GetAllOffers returns all the offers sorted by creation date.
	GetAllOffers(ctx context.Context) ([]OfferPayload, error)
	// GetOffersForAccount returns the offers made with the given payment
	// account.
	GetOffersForAccount(
		ctx context.Context, accountID string,
	) ([]OfferPayload, error)
	// DeleteOffer removes an offer from the repository.
	DeleteOffer(ctx context.Context, offerID string) error
}
