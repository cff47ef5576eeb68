package domain

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/google/uuid"
)

const (
	// OfferVersion is the version of the offer payload layout.
	OfferVersion = "0.6.0"
	// TradeProtocolVersion is the version of the trade protocol the offer can
	// be taken with.
	TradeProtocolVersion = 1
	// SellerSecurityDeposit is the protocol fixed collateral, in satoshis,
	// locked by the seller.
	SellerSecurityDeposit = 1000000
	// OfferTxSize is the size in bytes of the reference transaction used to
	// snapshot the network fee at offer creation.
	OfferTxSize = 600
	// NetworkBaseCurrency is the code of the network's settlement asset.
	NetworkBaseCurrency = "BTC"
)

// Direction is the side of the offer from the maker's perspective.
type Direction string

const (
	DirectionBuy  Direction = "BUY"
	DirectionSell Direction = "SELL"
)

func (d Direction) IsValid() bool {
	return d == DirectionBuy || d == DirectionSell
}

// NodeAddress is the network address of a peer.
type NodeAddress struct {
	HostName string `json:"hostName"`
	Port     int    `json:"port"`
}

// NewNodeAddress parses an address in the form host:port.
func NewNodeAddress(address string) (NodeAddress, error) {
	host, p, err := net.SplitHostPort(address)
	if err != nil {
		return NodeAddress{}, fmt.Errorf("invalid node address %q: %w", address, err)
	}
	port, err := strconv.Atoi(p)
	if err != nil || port <= 0 || port > 65535 {
		return NodeAddress{}, fmt.Errorf("invalid node address port %q", p)
	}
	if len(host) <= 0 {
		return NodeAddress{}, fmt.Errorf("invalid node address %q: missing host", address)
	}
	return NodeAddress{host, port}, nil
}

func (a NodeAddress) String() string {
	return net.JoinHostPort(a.HostName, strconv.Itoa(a.Port))
}

func (a NodeAddress) IsZero() bool {
	return a == NodeAddress{}
}

// PubKeyRing holds the public keys of the offer creator: the one used to
// verify its signatures and the one used to encrypt messages to it.
type PubKeyRing struct {
	SignaturePubKey  []byte `json:"signaturePubKey"`
	EncryptionPubKey []byte `json:"encryptionPubKey"`
}

func (r PubKeyRing) IsZero() bool {
	return len(r.SignaturePubKey) <= 0 || len(r.EncryptionPubKey) <= 0
}

// OfferPayload is the immutable, versioned record published to the network.
// Every numeric field is a snapshot taken when the offer was created.
type OfferPayload struct {
	ID                         string            `json:"id"`
	Date                       int64             `json:"date"`
	OwnerNodeAddress           NodeAddress       `json:"ownerNodeAddress"`
	PubKeyRing                 PubKeyRing        `json:"pubKeyRing"`
	Direction                  Direction         `json:"direction"`
	Price                      int64             `json:"price"`
	MarketPriceMargin          float64           `json:"marketPriceMargin"`
	UseMarketBasedPrice        bool              `json:"useMarketBasedPrice"`
	Amount                     uint64            `json:"amount"`
	MinAmount                  uint64            `json:"minAmount"`
	BaseCurrencyCode           string            `json:"baseCurrencyCode"`
	CounterCurrencyCode        string            `json:"counterCurrencyCode"`
	ArbitratorNodeAddresses    []NodeAddress     `json:"arbitratorNodeAddresses"`
	MediatorNodeAddresses      []NodeAddress     `json:"mediatorNodeAddresses"`
	PaymentMethodID            string            `json:"paymentMethodId"`
	MakerPaymentAccountID      string            `json:"makerPaymentAccountId"`
	OfferFeePaymentTxID        *string           `json:"offerFeePaymentTxId,omitempty"`
	CountryCode                *string           `json:"countryCode,omitempty"`
	AcceptedCountryCodes       []string          `json:"acceptedCountryCodes"`
	BankID                     *string           `json:"bankId,omitempty"`
	AcceptedBankIDs            []string          `json:"acceptedBankIds"`
	VersionNr                  string            `json:"versionNr"`
	BlockHeightAtOfferCreation uint32            `json:"blockHeightAtOfferCreation"`
	TxFee                      uint64            `json:"txFee"`
	MakerFee                   uint64            `json:"makerFee"`
	IsCurrencyForMakerFeeBtc   bool              `json:"isCurrencyForMakerFeeBtc"`
	BuyerSecurityDeposit       uint64            `json:"buyerSecurityDeposit"`
	SellerSecurityDeposit      uint64            `json:"sellerSecurityDeposit"`
	MaxTradeLimit              uint64            `json:"maxTradeLimit"`
	MaxTradePeriod             int64             `json:"maxTradePeriod"`
	UseAutoClose               bool              `json:"useAutoClose"`
	UseReOpenAfterAutoClose    bool              `json:"useReOpenAfterAutoClose"`
	LowerClosePrice            int64             `json:"lowerClosePrice"`
	UpperClosePrice            int64             `json:"upperClosePrice"`
	IsPrivateOffer             bool              `json:"isPrivateOffer"`
	HashOfChallenge            *string           `json:"hashOfChallenge,omitempty"`
	ExtraDataMap               map[string]string `json:"extraDataMap,omitempty"`
	ProtocolVersion            int               `json:"protocolVersion"`
}

// PriceTerms is either a fixed price or a margin from the market price.
type PriceTerms struct {
	// Fixed price expressed in the smallest unit of the counter currency.
	Price               int64
	UseMarketBasedPrice bool
	MarketPriceMargin   float64
}

// PrivateOfferTerms are only set for private offers.
type PrivateOfferTerms struct {
	HashOfChallenge string
	ExtraData       map[string]string
}

// OfferArgs are the already resolved values an OfferPayload is made of.
type OfferArgs struct {
	Date                 time.Time
	OwnerNodeAddress     NodeAddress
	PubKeyRing           PubKeyRing
	Direction            Direction
	PriceTerms           PriceTerms
	Amount               uint64
	MinAmount            uint64
	BaseCurrencyCode     string
	CounterCurrencyCode  string
	Arbitrators          []NodeAddress
	Mediators            []NodeAddress
	Account              PaymentAccount
	Constraints          PaymentAccountConstraints
	TradeLimit           TradeLimit
	BlockHeight          uint32
	TxFee                uint64
	MakerFee             MakerFee
	BuyerSecurityDeposit uint64
	Private              *PrivateOfferTerms
}

// NewOfferPayload validates the given args and returns a new payload with a
// random id.
func NewOfferPayload(args OfferArgs) (*OfferPayload, error) {
	if err := args.validate(); err != nil {
		return nil, err
	}

	offer := &OfferPayload{
		ID:                         uuid.New().String(),
		Date:                       args.Date.UnixMilli(),
		OwnerNodeAddress:           args.OwnerNodeAddress,
		PubKeyRing:                 copyPubKeyRing(args.PubKeyRing),
		Direction:                  args.Direction,
		Price:                      args.PriceTerms.Price,
		MarketPriceMargin:          args.PriceTerms.MarketPriceMargin,
		UseMarketBasedPrice:        args.PriceTerms.UseMarketBasedPrice,
		Amount:                     args.Amount,
		MinAmount:                  args.MinAmount,
		BaseCurrencyCode:           args.BaseCurrencyCode,
		CounterCurrencyCode:        args.CounterCurrencyCode,
		ArbitratorNodeAddresses:    copyNodeAddresses(args.Arbitrators),
		MediatorNodeAddresses:      copyNodeAddresses(args.Mediators),
		PaymentMethodID:            args.Account.PaymentMethodID,
		MakerPaymentAccountID:      args.Account.ID,
		CountryCode:                args.Constraints.CountryCode,
		AcceptedCountryCodes:       copyStrings(args.Constraints.AcceptedCountryCodes),
		BankID:                     args.Constraints.BankID,
		AcceptedBankIDs:            copyStrings(args.Constraints.AcceptedBankIDs),
		VersionNr:                  OfferVersion,
		BlockHeightAtOfferCreation: args.BlockHeight,
		TxFee:                      args.TxFee,
		MakerFee:                   args.MakerFee.Amount,
		IsCurrencyForMakerFeeBtc:   args.MakerFee.Currency.IsPrimary(),
		BuyerSecurityDeposit:       args.BuyerSecurityDeposit,
		SellerSecurityDeposit:      SellerSecurityDeposit,
		MaxTradeLimit:              args.TradeLimit.MaxAmount,
		MaxTradePeriod:             args.TradeLimit.MaxPeriod.Milliseconds(),
		ProtocolVersion:            TradeProtocolVersion,
	}

	if p := args.Private; p != nil {
		hash := p.HashOfChallenge
		offer.IsPrivateOffer = true
		offer.HashOfChallenge = &hash
		if len(p.ExtraData) > 0 {
			offer.ExtraDataMap = make(map[string]string, len(p.ExtraData))
			for k, v := range p.ExtraData {
				offer.ExtraDataMap[k] = v
			}
		}
	}

	return offer, nil
}

// TradeCurrencyCode returns the code of the currency the offer is priced in,
// that is the counter currency for markets with BTC as base asset, the base
// currency otherwise (altcoin markets).
func (o OfferPayload) TradeCurrencyCode() string {
	return TradeCurrencyCode(o.BaseCurrencyCode, o.CounterCurrencyCode)
}

// MakerFeeCurrency returns the currency the maker fee is paid in.
func (o OfferPayload) MakerFeeCurrency() FeeCurrency {
	if o.IsCurrencyForMakerFeeBtc {
		return FeeCurrencyPrimary
	}
	return FeeCurrencyAlternate
}

// TradeCurrencyCode returns the currency code to use for price lookups and
// trade limits for the given pair.
func TradeCurrencyCode(baseCurrencyCode, counterCurrencyCode string) string {
	if baseCurrencyCode == NetworkBaseCurrency {
		return counterCurrencyCode
	}
	return baseCurrencyCode
}

func (a OfferArgs) validate() error {
	if !a.Direction.IsValid() {
		return ErrOfferInvalidDirection
	}
	if a.Amount == 0 {
		return ErrOfferInvalidAmount
	}
	if a.MinAmount == 0 || a.MinAmount > a.Amount {
		return ErrOfferInvalidMinAmount
	}
	if a.Amount > a.TradeLimit.MaxAmount {
		return ErrOfferAmountExceedsTradeLimit
	}
	if !a.PriceTerms.UseMarketBasedPrice && a.PriceTerms.Price <= 0 {
		return ErrOfferInvalidPrice
	}
	if len(a.BaseCurrencyCode) <= 0 || len(a.CounterCurrencyCode) <= 0 ||
		a.BaseCurrencyCode == a.CounterCurrencyCode {
		return ErrOfferInvalidCurrencyPair
	}
	if a.OwnerNodeAddress.IsZero() {
		return ErrOfferMissingNodeAddress
	}
	if a.PubKeyRing.IsZero() {
		return ErrOfferMissingPubKeyRing
	}
	return nil
}

func copyNodeAddresses(list []NodeAddress) []NodeAddress {
	c := make([]NodeAddress, len(list))
	copy(c, list)
	return c
}

func copyPubKeyRing(r PubKeyRing) PubKeyRing {
	return PubKeyRing{
		SignaturePubKey:  append([]byte(nil), r.SignaturePubKey...),
		EncryptionPubKey: append([]byte(nil), r.EncryptionPubKey...),
	}
}
