package offer

import (
	"context"
	"errors"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/pkg/stats"
)

// snapshot groups the collaborator values frozen into an offer. Each of
// them is read exactly once per offer.
type snapshot struct {
	date                 time.Time
	blockHeight          uint32
	txFee                uint64
	buyerSecurityDeposit uint64
	arbitrators          []domain.NodeAddress
	mediators            []domain.NodeAddress
	nodeAddress          domain.NodeAddress
	pubKeyRing           domain.PubKeyRing
}

func (s *Service) assemble(
	ctx context.Context, req OfferCreationRequest, tracker *creationTracker,
) (*domain.OfferPayload, error) {
	account, err := s.repoManager.PaymentAccountRepository().GetAccount(
		ctx, req.AccountID,
	)
	if err != nil {
		if errors.Is(err, domain.ErrPaymentAccountNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get payment account: %w", err)
	}
	tracker.transition(domain.OfferCreationAccountResolved)

	currencyCode := req.tradeCurrencyCode()
	if !account.SupportsCurrency(currencyCode) {
		return nil, ErrUnsupportedCurrencyForMethod
	}
	tradeLimit, err := s.deps.TradeLimits.GetTradeLimit(
		ctx, account.PaymentMethodID, currencyCode,
	)
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedCurrencyForMethod) {
			return nil, ErrUnsupportedCurrencyForMethod
		}
		return nil, fmt.Errorf("failed to get trade limit: %w", err)
	}

	amount := req.Amount
	makerFee, ok := s.feePolicy.Resolve(s.feeRequest(
		ctx, currencyCode, &amount, req.PriceTerms.MarketPriceMargin,
	))
	if !ok {
		return nil, ErrFeeUnavailable
	}
	tracker.transition(domain.OfferCreationFeeResolved)

	constraints := account.Constraints()
	tracker.transition(domain.OfferCreationConstraintsProjected)

	snap, err := s.takeSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	offer, err := domain.NewOfferPayload(domain.OfferArgs{
		Date:                 snap.date,
		OwnerNodeAddress:     snap.nodeAddress,
		PubKeyRing:           snap.pubKeyRing,
		Direction:            req.Direction,
		PriceTerms:           req.PriceTerms,
		Amount:               req.Amount,
		MinAmount:            req.MinAmount,
		BaseCurrencyCode:     req.BaseCurrencyCode,
		CounterCurrencyCode:  req.CounterCurrencyCode,
		Arbitrators:          snap.arbitrators,
		Mediators:            snap.mediators,
		Account:              *account,
		Constraints:          constraints,
		TradeLimit:           tradeLimit,
		BlockHeight:          snap.blockHeight,
		TxFee:                snap.txFee,
		MakerFee:             makerFee,
		BuyerSecurityDeposit: snap.buyerSecurityDeposit,
		Private:              req.Private,
	})
	if err != nil {
		return nil, err
	}

	stats.RecordMakerFee(makerFee.Currency.String(), makerFee.Amount)
	tracker.assigned(offer.ID)
	tracker.transition(domain.OfferCreationPayloadAssembled)

	return offer, nil
}

func (s *Service) takeSnapshot(ctx context.Context) (*snapshot, error) {
	blockHeight, err := s.deps.ChainInfo.GetLastSeenBlockHeight(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get chain height: %w", err)
	}
	txFee, err := s.deps.ChainInfo.GetTxFee(ctx, s.txSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get tx fee: %w", err)
	}
	arbitrators, err := s.deps.Arbitration.AcceptedArbitrators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accepted arbitrators: %w", err)
	}
	mediators, err := s.deps.Arbitration.AcceptedMediators(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get accepted mediators: %w", err)
	}

	return &snapshot{
		date:                 s.now(),
		blockHeight:          blockHeight,
		txFee:                txFee,
		buyerSecurityDeposit: s.deps.Preferences.BuyerSecurityDeposit(),
		arbitrators:          arbitrators,
		mediators:            mediators,
		nodeAddress:          s.deps.Identity.NodeAddress(),
		pubKeyRing:           s.deps.Identity.PubKeyRing(),
	}, nil
}

type creationTracker struct {
	logger *log.Entry
	state  domain.OfferCreationState
}

func newCreationTracker(accountID string) *creationTracker {
	t := &creationTracker{logger: log.WithField("account", accountID)}
	t.transition(domain.OfferCreationReceived)
	return t
}

func (t *creationTracker) assigned(offerID string) {
	t.logger = t.logger.WithField("offer", offerID)
}

func (t *creationTracker) transition(state domain.OfferCreationState) {
	t.state = state
	t.logger.WithField("state", state.String()).Debug("offer creation")
	if state.IsTerminal() {
		stats.RecordOfferCreation(state.String())
	}
}

func (t *creationTracker) fail(state domain.OfferCreationState, err error) {
	t.logger.WithError(err).Warnf("offer creation failed after %s", t.state)
	t.transition(state)
}
