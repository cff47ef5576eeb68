package application

import (
	"context"

	"github.com/streetbits/bitsquare/internal/core/application/offer"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

type OfferService interface {
	ComputeMakerFee(
		ctx context.Context, currencyCode string,
		amount *uint64, marketPriceMargin float64,
	) (*domain.MakerFee, error)
	CreateOffer(
		ctx context.Context, req offer.OfferCreationRequest,
	) (*domain.OfferPayload, error)
	PublishOffer(ctx context.Context, offer domain.OfferPayload) error
	CancelOffer(ctx context.Context, offerID string) error
	GetOffer(ctx context.Context, offerID string) (*domain.OfferPayload, error)
	ListOffers(ctx context.Context) ([]domain.OfferPayload, error)
}

func NewOfferService(
	repoManager ports.RepoManager, feeParams domain.FeeParams,
	collaborators offer.Collaborators, txSize int,
) (OfferService, error) {
	return offer.NewService(repoManager, feeParams, collaborators, txSize)
}
