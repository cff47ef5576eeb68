package inmemory

import "errors"

var (
	// ErrInvalidOfferID ...
	ErrInvalidOfferID = errors.New("offer id must not be empty")
	// ErrInvalidAccountID ...
	ErrInvalidAccountID = errors.New("payment account id must not be empty")
	// ErrAccountAlreadyExists ...
	ErrAccountAlreadyExists = errors.New("payment account already exists")
)
