package dbbadger

import (
	"context"
	"sort"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/timshannon/badgerhold/v4"
)

type offerRepositoryImpl struct {
	store *badgerhold.Store
}

// NewOfferRepositoryImpl returns a new OfferRepository backed by the given
// badgerhold store.
func NewOfferRepositoryImpl(store *badgerhold.Store) domain.OfferRepository {
	return offerRepositoryImpl{store}
}

func (r offerRepositoryImpl) AddOffer(
	_ context.Context, offer domain.OfferPayload,
) error {
	if len(offer.ID) <= 0 {
		return ErrInvalidOfferID
	}
	if err := r.store.Insert(offer.ID, offer); err != nil {
		if err == badgerhold.ErrKeyExists {
			return domain.ErrOfferAlreadyExists
		}
		return err
	}
	return nil
}

func (r offerRepositoryImpl) GetOffer(
	_ context.Context, offerID string,
) (*domain.OfferPayload, error) {
	var offer domain.OfferPayload
	if err := r.store.Get(offerID, &offer); err != nil {
		if err == badgerhold.ErrNotFound {
			return nil, domain.ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r offerRepositoryImpl) GetAllOffers(
	_ context.Context,
) ([]domain.OfferPayload, error) {
	return r.findOffers(nil)
}

func (r offerRepositoryImpl) GetOffersForAccount(
	_ context.Context, accountID string,
) ([]domain.OfferPayload, error) {
	query := badgerhold.Where("MakerPaymentAccountID").Eq(accountID)
	return r.findOffers(query)
}

func (r offerRepositoryImpl) DeleteOffer(
	_ context.Context, offerID string,
) error {
	if err := r.store.Delete(offerID, domain.OfferPayload{}); err != nil {
		if err == badgerhold.ErrNotFound {
			return domain.ErrOfferNotFound
		}
		return err
	}
	return nil
}

func (r offerRepositoryImpl) findOffers(
	query *badgerhold.Query,
) ([]domain.OfferPayload, error) {
	offers := make([]domain.OfferPayload, 0)
	if err := r.store.Find(&offers, query); err != nil {
		return nil, err
	}

	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].Date == offers[j].Date {
			return offers[i].ID < offers[j].ID
		}
		return offers[i].Date < offers[j].Date
	})
	return offers, nil
}
