package webhookpublisher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt"
	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/streetbits/bitsquare/pkg/circuitbreaker"
	"github.com/streetbits/bitsquare/pkg/stats"
	"github.com/thanhpk/randstr"
	"go.uber.org/ratelimit"
	"golang.org/x/sync/errgroup"
)

const (
	ActionOfferAdded   = "OFFER_ADDED"
	ActionOfferRemoved = "OFFER_REMOVED"

	nonceLen = 16

	defaultRequestTimeout = 15 * time.Second
)

// Message is the body posted to every offer book endpoint.
type Message struct {
	Action  string               `json:"action"`
	Nonce   string               `json:"nonce"`
	OfferID string               `json:"offerId"`
	Offer   *domain.OfferPayload `json:"offer,omitempty"`
}

type Options struct {
	Endpoints      []Endpoint
	RequestTimeout time.Duration
	// Max number of requests per second, unlimited if zero.
	RateLimit int
}

type publisher struct {
	repo       domain.OfferRepository
	endpoints  []Endpoint
	httpClient *client
	// One breaker per endpoint url.
	cbs     map[string]*gobreaker.CircuitBreaker
	limiter ratelimit.Limiter
}

// NewOfferBookPublisher returns an OfferPublisher that stores offers in the
// local offer book and notifies the configured endpoints about them. Without
// endpoints, offers are only kept locally.
func NewOfferBookPublisher(
	repo domain.OfferRepository, opts Options,
) (ports.OfferPublisher, error) {
	if repo == nil {
		return nil, ErrNullOfferRepository
	}
	timeout := opts.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}
	limiter := ratelimit.NewUnlimited()
	if opts.RateLimit > 0 {
		limiter = ratelimit.New(opts.RateLimit)
	}

	cbs := make(map[string]*gobreaker.CircuitBreaker)
	for _, endpoint := range opts.Endpoints {
		if _, ok := cbs[endpoint.URL]; !ok {
			cbs[endpoint.URL] = circuitbreaker.NewCircuitBreaker(
				fmt.Sprintf("offer book %s", endpoint.URL),
			)
		}
	}

	return &publisher{
		repo:       repo,
		endpoints:  opts.Endpoints,
		httpClient: newHTTPClient(timeout),
		cbs:        cbs,
		limiter:    limiter,
	}, nil
}

// Publish adds the offer to the local offer book, then notifies the
// endpoints. If any notification fails, the endpoints that accepted the offer
// are told to remove it and the offer is removed from the local book.
func (p *publisher) Publish(
	ctx context.Context, offer domain.OfferPayload,
) error {
	err := p.repo.AddOffer(ctx, offer)
	alreadyStored := errors.Is(err, domain.ErrOfferAlreadyExists)
	if err != nil && !alreadyStored {
		return fmt.Errorf("failed to add offer to offer book: %w", err)
	}

	notified, err := p.broadcast(ctx, p.endpoints, Message{
		Action:  ActionOfferAdded,
		OfferID: offer.ID,
		Offer:   &offer,
	})
	if err != nil {
		p.compensate(ctx, notified, Message{
			Action:  ActionOfferRemoved,
			OfferID: offer.ID,
		})
		if !alreadyStored {
			if err := p.repo.DeleteOffer(ctx, offer.ID); err != nil {
				log.WithError(err).Warnf(
					"failed to roll back offer %s from offer book", offer.ID,
				)
			}
		}
		return err
	}
	return nil
}

// Remove notifies the endpoints that the offer is withdrawn, then removes it
// from the local offer book. If any notification fails, the offer is added
// back to the endpoints that already dropped it and is kept locally.
func (p *publisher) Remove(ctx context.Context, offerID string) error {
	offer, err := p.repo.GetOffer(ctx, offerID)
	if err != nil {
		return err
	}

	notified, err := p.broadcast(ctx, p.endpoints, Message{
		Action:  ActionOfferRemoved,
		OfferID: offerID,
	})
	if err != nil {
		p.compensate(ctx, notified, Message{
			Action:  ActionOfferAdded,
			OfferID: offerID,
			Offer:   offer,
		})
		return err
	}

	return p.repo.DeleteOffer(ctx, offerID)
}

// broadcast sends the message to all the given endpoints and returns those
// that accepted it. Every request runs to completion even if others fail.
func (p *publisher) broadcast(
	ctx context.Context, endpoints []Endpoint, msg Message,
) ([]Endpoint, error) {
	if len(endpoints) <= 0 {
		return nil, nil
	}

	msg.Nonce = randstr.Hex(nonceLen)
	body, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	accepted := make([]bool, len(endpoints))
	var eg errgroup.Group
	for i := range endpoints {
		i, endpoint := i, endpoints[i]
		eg.Go(func() error {
			err := p.doRequest(ctx, endpoint, msg.Nonce, body)
			stats.RecordBroadcast(err == nil)
			if err != nil {
				return fmt.Errorf("%s: %w", endpoint.URL, err)
			}
			accepted[i] = true
			return nil
		})
	}
	err = eg.Wait()

	notified := make([]Endpoint, 0, len(endpoints))
	for i, ok := range accepted {
		if ok {
			notified = append(notified, endpoints[i])
		}
	}
	return notified, err
}

// compensate reverts a partially failed broadcast on the endpoints that
// accepted it.
func (p *publisher) compensate(
	ctx context.Context, endpoints []Endpoint, msg Message,
) {
	if len(endpoints) <= 0 {
		return
	}
	if _, err := p.broadcast(ctx, endpoints, msg); err != nil {
		log.WithError(err).Warnf(
			"failed to revert offer %s on offer book endpoints with %s",
			msg.OfferID, msg.Action,
		)
	}
}

func (p *publisher) doRequest(
	ctx context.Context, endpoint Endpoint, nonce string, body []byte,
) error {
	_, err := p.cbs[endpoint.URL].Execute(func() (interface{}, error) {
		p.limiter.Take()

		headers := map[string]string{
			"Content-Type": "application/json",
		}
		if endpoint.IsSecured() {
			token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
				"nonce": nonce,
				"iat":   time.Now().Unix(),
			})
			tokenString, err := token.SignedString([]byte(endpoint.Secret))
			if err != nil {
				return nil, err
			}
			headers["Authorization"] = fmt.Sprintf("Bearer %s", tokenString)
		}

		status, resp, err := p.httpClient.post(ctx, endpoint.URL, body, headers)
		if err != nil {
			return nil, err
		}
		if status != http.StatusOK {
			return nil, fmt.Errorf("unexpected status %d: %s", status, resp)
		}
		return nil, nil
	})

	return err
}
