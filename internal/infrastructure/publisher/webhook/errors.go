package webhookpublisher

import "errors"

var (
	// ErrNullOfferRepository specifies that an offer repository is required.
	ErrNullOfferRepository = errors.New("offer repository must not be null")
	// ErrInvalidEndpoint is returned when an offer book endpoint is not a
	// valid URI.
	ErrInvalidEndpoint = errors.New("offer book endpoint must be a valid URI")
	// ErrInvalidEndpointFormat is returned when an endpoint can't be parsed
	// from its string representation.
	ErrInvalidEndpointFormat = errors.New(
		"offer book endpoint must be in the form <url>[#<secret>]",
	)
)
