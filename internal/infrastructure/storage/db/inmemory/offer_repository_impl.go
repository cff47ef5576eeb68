package inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/streetbits/bitsquare/internal/core/domain"
)

type offerInmemoryStore struct {
	offers map[string]domain.OfferPayload
	locker *sync.RWMutex
}

type OfferRepositoryImpl struct {
	store *offerInmemoryStore
}

// NewOfferRepositoryImpl returns a new empty OfferRepositoryImpl.
func NewOfferRepositoryImpl() domain.OfferRepository {
	return &OfferRepositoryImpl{&offerInmemoryStore{
		offers: map[string]domain.OfferPayload{},
		locker: &sync.RWMutex{},
	}}
}

func (r OfferRepositoryImpl) AddOffer(
	_ context.Context, offer domain.OfferPayload,
) error {
	if len(offer.ID) <= 0 {
		return ErrInvalidOfferID
	}

	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.offers[offer.ID]; ok {
		return domain.ErrOfferAlreadyExists
	}
	r.store.offers[offer.ID] = offer
	return nil
}

func (r OfferRepositoryImpl) GetOffer(
	_ context.Context, offerID string,
) (*domain.OfferPayload, error) {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	offer, ok := r.store.offers[offerID]
	if !ok {
		return nil, domain.ErrOfferNotFound
	}
	return &offer, nil
}

func (r OfferRepositoryImpl) GetAllOffers(
	_ context.Context,
) ([]domain.OfferPayload, error) {
	return r.filterOffers(func(domain.OfferPayload) bool { return true }), nil
}

func (r OfferRepositoryImpl) GetOffersForAccount(
	_ context.Context, accountID string,
) ([]domain.OfferPayload, error) {
	return r.filterOffers(func(o domain.OfferPayload) bool {
		return o.MakerPaymentAccountID == accountID
	}), nil
}

func (r OfferRepositoryImpl) DeleteOffer(
	_ context.Context, offerID string,
) error {
	r.store.locker.Lock()
	defer r.store.locker.Unlock()

	if _, ok := r.store.offers[offerID]; !ok {
		return domain.ErrOfferNotFound
	}
	delete(r.store.offers, offerID)
	return nil
}

func (r OfferRepositoryImpl) filterOffers(
	filter func(domain.OfferPayload) bool,
) []domain.OfferPayload {
	r.store.locker.RLock()
	defer r.store.locker.RUnlock()

	offers := make([]domain.OfferPayload, 0, len(r.store.offers))
	for _, o := range r.store.offers {
		if filter(o) {
			offers = append(offers, o)
		}
	}
	sortOffers(offers)
	return offers
}

func sortOffers(offers []domain.OfferPayload) {
	sort.SliceStable(offers, func(i, j int) bool {
		if offers[i].Date == offers[j].Date {
			return offers[i].ID < offers[j].ID
		}
		return offers[i].Date < offers[j].Date
	})
}
