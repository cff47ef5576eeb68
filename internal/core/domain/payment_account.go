package domain

import (
	"regexp"
	"time"

	"github.com/google/uuid"
)

var countryCodeRegexp = regexp.MustCompile(`^[A-Z]{2}$`)

// CountryScope is the capability of accounts bound to a country.
type CountryScope struct {
	CountryCode string
	// AcceptedCountryCodes is set only by multi-country variants (ie. SEPA)
	// and is nil otherwise.
	AcceptedCountryCodes []string
}

// BankScope is the capability of accounts bound to a bank.
type BankScope struct {
	BankID string
	// AcceptedBankIDs is set only by variants restricting the counterparty's
	// bank (same bank, specific banks) and is nil otherwise.
	AcceptedBankIDs []string
}

// PaymentAccount is a user's concrete instance of a payment method. Which
// capabilities are populated depends on the payment method variant.
type PaymentAccount struct {
	ID              string
	Name            string
	PaymentMethodID string
	TradeCurrencies []string
	CreationDate    int64
	Country         *CountryScope
	Bank            *BankScope
	// Receiving address of crypto currency accounts.
	Address string
}

// PaymentAccountConstraints is the read-only projection of the account
// fields that end up in an offer. Nil fields mean no constraint.
type PaymentAccountConstraints struct {
	CountryCode          *string
	AcceptedCountryCodes []string
	BankID               *string
	AcceptedBankIDs      []string
}

// NewSepaAccount returns a new SEPA account, scoped to the holder's country
// and accepting trades with any of the accepted countries. With no accepted
// countries, only the holder's country is accepted.
func NewSepaAccount(
	name, countryCode string, acceptedCountryCodes []string,
) (*PaymentAccount, error) {
	if err := validateCountryCodes(
		append([]string{countryCode}, acceptedCountryCodes...),
	); err != nil {
		return nil, err
	}
	accepted := []string{countryCode}
	if len(acceptedCountryCodes) > 0 {
		accepted = make([]string, len(acceptedCountryCodes))
		copy(accepted, acceptedCountryCodes)
	}

	return newPaymentAccount(
		name, SepaPaymentMethodID, []string{"EUR"},
		&CountryScope{countryCode, accepted}, nil,
	)
}

// NewCountryBasedAccount returns a new account scoped to a single country,
// not bound to any bank (ie. Swish).
func NewCountryBasedAccount(
	name, paymentMethodID, countryCode, currency string,
) (*PaymentAccount, error) {
	if err := validateCountryCodes([]string{countryCode}); err != nil {
		return nil, err
	}
	return newPaymentAccount(
		name, paymentMethodID, []string{currency},
		&CountryScope{CountryCode: countryCode}, nil,
	)
}

// NewNationalBankAccount returns a new account bound to the holder's bank,
// accepting payments from any bank of the country.
func NewNationalBankAccount(
	name, countryCode, bankID, currency string,
) (*PaymentAccount, error) {
	return newBankAccount(
		name, NationalBankPaymentMethodID, countryCode, bankID, currency, nil,
	)
}

// NewSameBankAccount returns a new account accepting payments only from
// holders of the same bank.
func NewSameBankAccount(
	name, countryCode, bankID, currency string,
) (*PaymentAccount, error) {
	return newBankAccount(
		name, SameBankPaymentMethodID, countryCode, bankID, currency,
		[]string{bankID},
	)
}

// NewSpecificBanksAccount returns a new account accepting payments only from
// the given list of banks.
func NewSpecificBanksAccount(
	name, countryCode, bankID, currency string, acceptedBankIDs []string,
) (*PaymentAccount, error) {
	for _, id := range acceptedBankIDs {
		if len(id) <= 0 {
			return nil, ErrPaymentAccountInvalidBankID
		}
	}
	accepted := make([]string, len(acceptedBankIDs))
	copy(accepted, acceptedBankIDs)

	return newBankAccount(
		name, SpecificBanksPaymentMethodID, countryCode, bankID, currency,
		accepted,
	)
}

// NewCryptoCurrencyAccount returns a new altcoin account receiving funds at
// the given address.
func NewCryptoCurrencyAccount(
	name, currency, address string,
) (*PaymentAccount, error) {
	if len(address) <= 0 {
		return nil, ErrPaymentAccountInvalidAddress
	}
	account, err := newPaymentAccount(
		name, BlockChainsPaymentMethodID, []string{currency}, nil, nil,
	)
	if err != nil {
		return nil, err
	}
	account.Address = address
	return account, nil
}

func newBankAccount(
	name, paymentMethodID, countryCode, bankID, currency string,
	acceptedBankIDs []string,
) (*PaymentAccount, error) {
	if err := validateCountryCodes([]string{countryCode}); err != nil {
		return nil, err
	}
	if len(bankID) <= 0 {
		return nil, ErrPaymentAccountInvalidBankID
	}
	return newPaymentAccount(
		name, paymentMethodID, []string{currency},
		&CountryScope{CountryCode: countryCode},
		&BankScope{bankID, acceptedBankIDs},
	)
}

func newPaymentAccount(
	name, paymentMethodID string, currencies []string,
	country *CountryScope, bank *BankScope,
) (*PaymentAccount, error) {
	if len(name) <= 0 {
		return nil, ErrPaymentAccountInvalidName
	}
	if _, err := GetPaymentMethod(paymentMethodID); err != nil {
		return nil, err
	}
	for _, c := range currencies {
		if len(c) <= 0 {
			return nil, ErrPaymentAccountInvalidCurrency
		}
	}

	return &PaymentAccount{
		ID:              uuid.New().String(),
		Name:            name,
		PaymentMethodID: paymentMethodID,
		TradeCurrencies: currencies,
		CreationDate:    time.Now().Unix(),
		Country:         country,
		Bank:            bank,
	}, nil
}

// AsCountryScoped returns the country capability of the account, if any.
func (a PaymentAccount) AsCountryScoped() (CountryScope, bool) {
	if a.Country == nil {
		return CountryScope{}, false
	}
	return *a.Country, true
}

// AsBankScoped returns the bank capability of the account, if any.
func (a PaymentAccount) AsBankScoped() (BankScope, bool) {
	if a.Bank == nil {
		return BankScope{}, false
	}
	return *a.Bank, true
}

// AsCryptoCurrency returns the receiving address of crypto currency accounts.
func (a PaymentAccount) AsCryptoCurrency() (string, bool) {
	if a.PaymentMethodID != BlockChainsPaymentMethodID || len(a.Address) <= 0 {
		return "", false
	}
	return a.Address, true
}

// SupportsCurrency returns whether the account can settle trades in the given
// currency. Accounts without trade currencies accept any currency supported
// by their payment method.
func (a PaymentAccount) SupportsCurrency(code string) bool {
	if len(a.TradeCurrencies) <= 0 {
		return len(code) > 0
	}
	return containsString(a.TradeCurrencies, code)
}

// Constraints projects the country and bank capabilities of the account into
// the constraints carried by an offer.
func (a PaymentAccount) Constraints() PaymentAccountConstraints {
	var c PaymentAccountConstraints

	if scope, ok := a.AsCountryScoped(); ok {
		countryCode := scope.CountryCode
		c.CountryCode = &countryCode
		if scope.AcceptedCountryCodes != nil {
			c.AcceptedCountryCodes = copyStrings(scope.AcceptedCountryCodes)
		} else {
			c.AcceptedCountryCodes = []string{countryCode}
		}
	}

	if scope, ok := a.AsBankScoped(); ok {
		bankID := scope.BankID
		c.BankID = &bankID
		if scope.AcceptedBankIDs != nil {
			c.AcceptedBankIDs = copyStrings(scope.AcceptedBankIDs)
		}
	}

	return c
}

func validateCountryCodes(codes []string) error {
	for _, code := range codes {
		if !countryCodeRegexp.MatchString(code) {
			return ErrPaymentAccountInvalidCountryCode
		}
	}
	return nil
}

func copyStrings(list []string) []string {
	if list == nil {
		return nil
	}
	c := make([]string, len(list))
	copy(c, list)
	return c
}
