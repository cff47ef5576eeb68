package domain

import "errors"

var (
	// ErrFeeInvalidRate ...
	ErrFeeInvalidRate = errors.New("fee rates must be greater than zero")
	// ErrFeeInvalidMinimum ...
	ErrFeeInvalidMinimum = errors.New("minimum fees must be greater than zero")
	// ErrFeeInvalidRoundingStep ...
	ErrFeeInvalidRoundingStep = errors.New("fee rounding step must be greater than zero")
)

// Payment account errors
var (
	// ErrPaymentAccountNotFound is returned when no payment account matches the
	// given id.
	ErrPaymentAccountNotFound = errors.New("payment account not found")
	// ErrPaymentAccountInvalidName ...
	ErrPaymentAccountInvalidName = errors.New("payment account name must not be empty")
	// ErrPaymentAccountInvalidCountryCode ...
	ErrPaymentAccountInvalidCountryCode = errors.New("country code must be a 2 letters ISO 3166 code")
	// ErrPaymentAccountInvalidBankID ...
	ErrPaymentAccountInvalidBankID = errors.New("bank id must not be empty")
	// ErrPaymentAccountInvalidCurrency ...
	ErrPaymentAccountInvalidCurrency = errors.New("trade currency code must not be empty")
	// ErrPaymentAccountInvalidAddress ...
	ErrPaymentAccountInvalidAddress = errors.New("receiving address must not be empty")
	// ErrPaymentAccountHasOffers is returned when trying to delete an account
	// still referenced by offers in the offer book.
	ErrPaymentAccountHasOffers = errors.New("payment account is in use by open offers")
	// ErrUnknownPaymentMethod ...
	ErrUnknownPaymentMethod = errors.New("payment method is unknown")
	// ErrUnsupportedCurrencyForMethod is returned when a payment method or
	// account can't settle trades in the requested currency.
	ErrUnsupportedCurrencyForMethod = errors.New("payment method does not support the requested currency")
)

// Offer errors
var (
	// ErrOfferNotFound ...
	ErrOfferNotFound = errors.New("offer not found")
	// ErrOfferInvalidDirection ...
	ErrOfferInvalidDirection = errors.New("offer direction must be either BUY or SELL")
	// ErrOfferInvalidAmount ...
	ErrOfferInvalidAmount = errors.New("offer amount must be greater than zero")
	// ErrOfferInvalidMinAmount ...
	ErrOfferInvalidMinAmount = errors.New("offer min amount must be in range (0, amount]")
	// ErrOfferAmountExceedsTradeLimit ...
	ErrOfferAmountExceedsTradeLimit = errors.New("offer amount exceeds the trade limit of the payment method")
	// ErrOfferInvalidPrice ...
	ErrOfferInvalidPrice = errors.New("fixed price offers must have a price greater than zero")
	// ErrOfferInvalidCurrencyPair ...
	ErrOfferInvalidCurrencyPair = errors.New("offer base and counter currencies must be set and differ")
	// ErrOfferMissingPubKeyRing ...
	ErrOfferMissingPubKeyRing = errors.New("offer creator pubkey ring must be set")
	// ErrOfferMissingNodeAddress ...
	ErrOfferMissingNodeAddress = errors.New("offer creator node address must be set")
	// ErrOfferAlreadyExists ...
	ErrOfferAlreadyExists = errors.New("offer already exists")
)
