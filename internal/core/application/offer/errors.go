package offer

import (
	"errors"
	"fmt"

	"github.com/streetbits/bitsquare/internal/core/domain"
)

var (
	// ErrAccountNotFound is returned when the payment account referenced by
	// an offer creation request does not exist.
	ErrAccountNotFound = errors.New("payment account not found")
	// ErrUnsupportedCurrencyForMethod is returned when the payment account
	// can't settle trades in the offer's currency.
	ErrUnsupportedCurrencyForMethod = domain.ErrUnsupportedCurrencyForMethod
	// ErrFeeUnavailable is returned when the maker fee can't be computed for
	// the requested amount.
	ErrFeeUnavailable = errors.New("maker fee can't be computed for the given amount")
	// ErrMissingCurrencyCode is returned when the maker fee is requested
	// without the currency code of the offer.
	ErrMissingCurrencyCode = errors.New("missing currency code")
)

// PublicationError is returned when an offer was assembled but could not be
// handed over to the offer book. Payload can be published again with
// Service.PublishOffer.
type PublicationError struct {
	Payload domain.OfferPayload
	Err     error
}

func (e *PublicationError) Error() string {
	return fmt.Sprintf("failed to publish offer %s: %s", e.Payload.ID, e.Err)
}

func (e *PublicationError) Unwrap() error {
	return e.Err
}
