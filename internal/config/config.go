package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/streetbits/bitsquare/internal/core/application"
	"github.com/streetbits/bitsquare/internal/core/domain"
)

const (
	// DatadirKey is the local data directory to store the internal state
	DatadirKey = "DATADIR"
	// LogLevelKey are the different logging levels. For reference on the values https://godoc.org/github.com/sirupsen/logrus#Level
	LogLevelKey = "LOG_LEVEL"
	// DBTypeKey is used to switch database type between those supported
	DBTypeKey = "DB_TYPE"
	// NodeAddressKey is the <host:port> address other peers reach this node at
	NodeAddressKey = "NODE_ADDRESS"
	// EsploraURLKey is the url of the esplora REST API used for block height
	// and network fee estimates
	EsploraURLKey = "ESPLORA_URL"
	// ExplorerTimeoutKey is the timeout in seconds of requests to the explorer
	ExplorerTimeoutKey = "EXPLORER_TIMEOUT"
	// ConfirmationTargetKey is the number of blocks used to pick the fee estimate
	ConfirmationTargetKey = "CONFIRMATION_TARGET"
	// TxSizeKey is the size in bytes of the reference tx used to estimate the
	// network fee snapshotted into offers
	TxSizeKey = "TX_SIZE"
	// PayFeeInBtcKey makes the maker always pay the fee in BTC
	PayFeeInBtcKey = "PAY_FEE_IN_BTC"
	// BuyerSecurityDepositKey is the collateral in satoshis locked by the buyer
	BuyerSecurityDepositKey = "BUYER_SECURITY_DEPOSIT"
	// BsqSupportedKey enables paying fees in BSQ
	BsqSupportedKey = "BSQ_SUPPORTED"
	// BsqBalanceKey is the available BSQ balance, unknown if not set
	BsqBalanceKey = "BSQ_BALANCE"
	// MakerFeePerBtcKey is the maker fee in satoshis for trading 1 BTC
	MakerFeePerBtcKey = "MAKER_FEE_PER_BTC"
	// MinMakerFeeBtcKey is the minimum maker fee in satoshis
	MinMakerFeeBtcKey = "MIN_MAKER_FEE_BTC"
	// MakerFeePerBtcInBsqKey is the maker fee in BSQ cents for trading 1 BTC
	MakerFeePerBtcInBsqKey = "MAKER_FEE_PER_BTC_IN_BSQ"
	// MinMakerFeeBsqKey is the minimum maker fee in BSQ cents
	MinMakerFeeBsqKey = "MIN_MAKER_FEE_BSQ"
	// FeeRoundingStepKey is the step BTC maker fees are rounded down to
	FeeRoundingStepKey = "FEE_ROUNDING_STEP"
	// PriceFeedKey selects the source of market prices: static or kraken
	PriceFeedKey = "PRICE_FEED"
	// PriceFeedURLKey is the url of the kraken websocket API
	PriceFeedURLKey = "PRICE_FEED_URL"
	// PriceFeedCurrenciesKey is a comma separated list of the currencies to
	// subscribe to with the kraken price feed
	PriceFeedCurrenciesKey = "PRICE_FEED_CURRENCIES"
	// PriceFeedTimeoutKey is the max time in seconds to wait for the first
	// market price of a currency
	PriceFeedTimeoutKey = "PRICE_FEED_TIMEOUT"
	// MarketPricesKey is a comma separated list of CODE:price entries used by
	// the static price feed
	MarketPricesKey = "MARKET_PRICES"
	// ArbitratorsKey is a comma separated list of accepted arbitrators <host:port>
	ArbitratorsKey = "ARBITRATORS"
	// MediatorsKey is a comma separated list of accepted mediators <host:port>
	MediatorsKey = "MEDIATORS"
	// PublishEndpointsKey is a comma separated list of offer book endpoints in
	// the form url[#secret]
	PublishEndpointsKey = "PUBLISH_ENDPOINTS"
	// PublishSecretKey is the default secret used to sign requests to the
	// offer book endpoints
	PublishSecretKey = "PUBLISH_SECRET"
	// PublishTimeoutKey is the timeout in seconds of requests to offer book
	// endpoints
	PublishTimeoutKey = "PUBLISH_TIMEOUT"
	// PublishRateLimitKey is the max number of requests per second to offer
	// book endpoints, unlimited if zero
	PublishRateLimitKey = "PUBLISH_RATE_LIMIT"
	// EnableProfilerKey enables dumping of prometheus metrics and memory stats
	EnableProfilerKey = "ENABLE_PROFILER"

	DbLocation       = "db"
	IdentityLocation = "identity"
	ProfilerLocation = "stats"

	PriceFeedStatic = "static"
	PriceFeedKraken = "kraken"
)

var vip *viper.Viper
var defaultDatadir = btcutil.AppDataDir("bisq-offer", false)

func InitConfig() error {
	vip = viper.New()
	vip.SetEnvPrefix("BISQ")
	vip.AutomaticEnv()

	vip.SetDefault(LogLevelKey, 4)
	vip.SetDefault(DatadirKey, defaultDatadir)
	vip.SetDefault(DBTypeKey, application.DBBadger)
	vip.SetDefault(NodeAddressKey, "localhost:9999")
	vip.SetDefault(EsploraURLKey, "https://blockstream.info/api")
	vip.SetDefault(ExplorerTimeoutKey, 15)
	vip.SetDefault(ConfirmationTargetKey, 6)
	vip.SetDefault(TxSizeKey, domain.OfferTxSize)
	vip.SetDefault(PayFeeInBtcKey, true)
	vip.SetDefault(BuyerSecurityDepositKey, 3000000)
	vip.SetDefault(BsqSupportedKey, domain.DefaultFeeParams.AlternateSupported)
	vip.SetDefault(MakerFeePerBtcKey, domain.DefaultFeeParams.PrimaryFeePerUnit)
	vip.SetDefault(MinMakerFeeBtcKey, domain.DefaultFeeParams.PrimaryMinFee)
	vip.SetDefault(MakerFeePerBtcInBsqKey, domain.DefaultFeeParams.AlternateFeePerUnit)
	vip.SetDefault(MinMakerFeeBsqKey, domain.DefaultFeeParams.AlternateMinFee)
	vip.SetDefault(FeeRoundingStepKey, domain.DefaultFeeParams.PrimaryRoundingStep)
	vip.SetDefault(PriceFeedKey, PriceFeedStatic)
	vip.SetDefault(PriceFeedURLKey, "wss://ws.kraken.com")
	vip.SetDefault(PriceFeedCurrenciesKey, "USD,EUR")
	vip.SetDefault(PriceFeedTimeoutKey, 5)
	vip.SetDefault(PublishTimeoutKey, 15)
	vip.SetDefault(PublishRateLimitKey, 0)
	vip.SetDefault(EnableProfilerKey, false)

	if err := validate(); err != nil {
		return fmt.Errorf("error while validating config: %s", err)
	}

	if err := initDatadir(); err != nil {
		return fmt.Errorf("error while creating datadir: %s", err)
	}

	return nil
}

func GetString(key string) string {
	return vip.GetString(key)
}

func GetInt(key string) int {
	return vip.GetInt(key)
}

func GetUint64(key string) uint64 {
	return vip.GetUint64(key)
}

func GetBool(key string) bool {
	return vip.GetBool(key)
}

// GetStringSlice returns the comma separated values of the given key.
func GetStringSlice(key string) []string {
	list := make([]string, 0)
	for _, v := range strings.Split(vip.GetString(key), ",") {
		if v = strings.TrimSpace(v); len(v) > 0 {
			list = append(list, v)
		}
	}
	return list
}

// GetDuration returns the value of the given key, expressed in seconds.
func GetDuration(key string) time.Duration {
	return time.Duration(vip.GetInt(key)) * time.Second
}

func IsSet(key string) bool {
	return vip.IsSet(key)
}

func GetDatadir() string {
	return GetString(DatadirKey)
}

// GetBsqBalance returns the configured BSQ balance, or nil if unknown.
func GetBsqBalance() *uint64 {
	if !vip.IsSet(BsqBalanceKey) {
		return nil
	}
	balance := vip.GetUint64(BsqBalanceKey)
	return &balance
}

func GetFeeParams() domain.FeeParams {
	return domain.FeeParams{
		PrimaryFeePerUnit:   GetUint64(MakerFeePerBtcKey),
		AlternateFeePerUnit: GetUint64(MakerFeePerBtcInBsqKey),
		PrimaryMinFee:       GetUint64(MinMakerFeeBtcKey),
		AlternateMinFee:     GetUint64(MinMakerFeeBsqKey),
		PrimaryRoundingStep: GetUint64(FeeRoundingStepKey),
		AlternateSupported:  GetBool(BsqSupportedKey),
	}
}

func validate() error {
	datadir := GetString(DatadirKey)
	if len(datadir) <= 0 {
		return fmt.Errorf("missing datadir")
	}

	if _, ok := application.SupportedDBType[GetString(DBTypeKey)]; !ok {
		return fmt.Errorf(
			"%s must be one of %s, %s",
			DBTypeKey, application.DBBadger, application.DBInmemory,
		)
	}

	if _, err := domain.NewNodeAddress(GetString(NodeAddressKey)); err != nil {
		return fmt.Errorf("%s: %s", NodeAddressKey, err)
	}

	if feed := GetString(PriceFeedKey); feed != PriceFeedStatic && feed != PriceFeedKraken {
		return fmt.Errorf(
			"%s must be one of %s, %s", PriceFeedKey, PriceFeedStatic, PriceFeedKraken,
		)
	}

	if GetInt(TxSizeKey) <= 0 {
		return fmt.Errorf("%s must be a positive number", TxSizeKey)
	}

	if _, err := domain.NewFeePolicy(GetFeeParams()); err != nil {
		return err
	}

	// Signed values would silently wrap when read as unsigned.
	for _, key := range []string{
		BuyerSecurityDepositKey, MakerFeePerBtcKey, MinMakerFeeBtcKey,
		MakerFeePerBtcInBsqKey, MinMakerFeeBsqKey, FeeRoundingStepKey,
		BsqBalanceKey,
	} {
		if !vip.IsSet(key) {
			continue
		}
		v, err := decimal.NewFromString(strings.TrimSpace(vip.GetString(key)))
		if err != nil || v.IsNegative() || !v.Equal(v.Truncate(0)) {
			return fmt.Errorf("%s must be a non negative integer", key)
		}
	}

	if GetInt(PublishRateLimitKey) < 0 {
		return fmt.Errorf("%s must not be negative", PublishRateLimitKey)
	}

	return nil
}

func initDatadir() error {
	datadir := GetDatadir()
	if err := makeDirectoryIfNotExists(filepath.Join(datadir, DbLocation)); err != nil {
		return err
	}
	if err := makeDirectoryIfNotExists(filepath.Join(datadir, IdentityLocation)); err != nil {
		return err
	}

	profilerEnabled := GetBool(EnableProfilerKey)
	if profilerEnabled {
		if err := makeDirectoryIfNotExists(filepath.Join(datadir, ProfilerLocation)); err != nil {
			return err
		}
	}
	return nil
}

func makeDirectoryIfNotExists(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, os.ModeDir|0755)
	}
	return nil
}
