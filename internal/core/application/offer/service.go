package offer

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/streetbits/bitsquare/pkg/stats"
)

type Service struct {
	repoManager ports.RepoManager
	feePolicy   *domain.FeePolicy
	deps        Collaborators
	txSize      int
	now         func() time.Time
}

func NewService(
	repoManager ports.RepoManager, feeParams domain.FeeParams,
	collaborators Collaborators, txSize int,
) (*Service, error) {
	if repoManager == nil {
		return nil, fmt.Errorf("missing repo manager")
	}
	if err := collaborators.validate(); err != nil {
		return nil, err
	}
	feePolicy, err := domain.NewFeePolicy(feeParams)
	if err != nil {
		return nil, fmt.Errorf("invalid fee params: %w", err)
	}
	if txSize <= 0 {
		txSize = domain.OfferTxSize
	}

	return &Service{
		repoManager, feePolicy, collaborators, txSize, time.Now,
	}, nil
}

// ComputeMakerFee returns the maker fee for an offer of the given amount
// priced in the given currency. The returned fee is nil if it can't be
// computed yet, ie. the amount is not known.
func (s *Service) ComputeMakerFee(
	ctx context.Context, currencyCode string,
	amount *uint64, marketPriceMargin float64,
) (*domain.MakerFee, error) {
	if len(currencyCode) <= 0 {
		return nil, ErrMissingCurrencyCode
	}

	fee, ok := s.feePolicy.Resolve(
		s.feeRequest(ctx, currencyCode, amount, marketPriceMargin),
	)
	if !ok {
		return nil, nil
	}

	stats.RecordMakerFee(fee.Currency.String(), fee.Amount)
	return &fee, nil
}

// CreateOffer assembles a new offer for the given request and publishes it.
// Nothing is published if the assembly fails. If the publication fails, the
// returned error is a *PublicationError carrying the assembled offer.
func (s *Service) CreateOffer(
	ctx context.Context, req OfferCreationRequest,
) (*domain.OfferPayload, error) {
	tracker := newCreationTracker(req.AccountID)

	offer, err := s.assemble(ctx, req, tracker)
	if err != nil {
		tracker.fail(domain.OfferCreationAssemblyFailed, err)
		return nil, err
	}

	if err := s.deps.Publisher.Publish(ctx, *offer); err != nil {
		tracker.fail(domain.OfferCreationPublicationFailed, err)
		return nil, &PublicationError{*offer, err}
	}
	tracker.transition(domain.OfferCreationPublished)

	return offer, nil
}

// PublishOffer hands an already assembled offer over to the offer book.
func (s *Service) PublishOffer(
	ctx context.Context, offer domain.OfferPayload,
) error {
	if err := s.deps.Publisher.Publish(ctx, offer); err != nil {
		return &PublicationError{offer, err}
	}
	log.WithField("offer", offer.ID).Debug("offer published")
	return nil
}

// CancelOffer withdraws the given offer from the offer book.
func (s *Service) CancelOffer(ctx context.Context, offerID string) error {
	if len(offerID) <= 0 {
		return domain.ErrOfferNotFound
	}
	if _, err := s.repoManager.OfferRepository().GetOffer(
		ctx, offerID,
	); err != nil {
		return err
	}

	if err := s.deps.Publisher.Remove(ctx, offerID); err != nil {
		return fmt.Errorf("failed to remove offer %s: %w", offerID, err)
	}
	log.WithField("offer", offerID).Debug("offer removed")
	return nil
}

func (s *Service) GetOffer(
	ctx context.Context, offerID string,
) (*domain.OfferPayload, error) {
	if len(offerID) <= 0 {
		return nil, domain.ErrOfferNotFound
	}
	return s.repoManager.OfferRepository().GetOffer(ctx, offerID)
}

func (s *Service) ListOffers(ctx context.Context) ([]domain.OfferPayload, error) {
	return s.repoManager.OfferRepository().GetAllOffers(ctx)
}

// feeRequest takes a snapshot of the market price and of the wallet state.
// Lookup failures degrade to unknown values.
func (s *Service) feeRequest(
	ctx context.Context, currencyCode string,
	amount *uint64, marketPriceMargin float64,
) domain.FeeRequest {
	req := domain.FeeRequest{
		Amount:            amount,
		MarketPriceMargin: marketPriceMargin,
		PreferPrimary:     s.deps.Preferences.PayFeeInPrimary(),
	}

	price, err := s.deps.PriceFeed.GetMarketPrice(ctx, currencyCode)
	if err != nil {
		log.WithError(err).Warnf(
			"failed to get market price for %s, fee won't account for margin",
			currencyCode,
		)
	}
	req.MarketPriceKnown = err == nil && price != nil &&
		price.GetPrice().IsPositive()

	if req.PreferPrimary {
		return req
	}

	balance, err := s.deps.AlternateWallet.GetAvailableBalance(ctx)
	if err != nil {
		log.WithError(err).Warn(
			"failed to get alternate wallet balance, fee will be paid in BTC",
		)
		balance = nil
	}
	req.AlternateBalance = balance

	return req
}

func (c Collaborators) validate() error {
	if c.PriceFeed == nil {
		return fmt.Errorf("missing price feed")
	}
	if c.AlternateWallet == nil {
		return fmt.Errorf("missing alternate wallet")
	}
	if c.Preferences == nil {
		return fmt.Errorf("missing preferences")
	}
	if c.ChainInfo == nil {
		return fmt.Errorf("missing chain info")
	}
	if c.TradeLimits == nil {
		return fmt.Errorf("missing trade limits")
	}
	if c.Identity == nil {
		return fmt.Errorf("missing network identity")
	}
	if c.Arbitration == nil {
		return fmt.Errorf("missing arbitration")
	}
	if c.Publisher == nil {
		return fmt.Errorf("missing offer publisher")
	}
	return nil
}
