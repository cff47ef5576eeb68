package db_test

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/google/uuid"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	dbbadger "github.com/streetbits/bitsquare/internal/infrastructure/storage/db/badger"
	"github.com/streetbits/bitsquare/internal/infrastructure/storage/db/inmemory"
	"github.com/stretchr/testify/require"
)

var ctx = context.Background()

type repoManager struct {
	Name string
	ports.RepoManager
}

// createRepoManagers returns a fresh repo manager for every implementation.
// The badger one is backed by an in-memory store.
func createRepoManagers(t *testing.T) []repoManager {
	badgerRepoManager, err := dbbadger.NewRepoManager("", nil)
	require.NoError(t, err)

	t.Cleanup(badgerRepoManager.Close)

	return []repoManager{
		{"inmemory", inmemory.NewRepoManager()},
		{"badger", badgerRepoManager},
	}
}

func makeRandomOffer(accountID string) domain.OfferPayload {
	countryCode := "DE"
	return domain.OfferPayload{
		ID:                    uuid.New().String(),
		Date:                  randomTimestamp(),
		OwnerNodeAddress:      domain.NodeAddress{HostName: randomHex(8) + ".onion", Port: 9999},
		PubKeyRing:            domain.PubKeyRing{SignaturePubKey: randomBytes(33), EncryptionPubKey: randomBytes(33)},
		Direction:             domain.DirectionSell,
		UseMarketBasedPrice:   true,
		MarketPriceMargin:     0.01,
		Amount:                uint64(randomIntInRange(1000000, 10000000)),
		MinAmount:             1000000,
		BaseCurrencyCode:      "BTC",
		CounterCurrencyCode:   "EUR",
		PaymentMethodID:       domain.SepaPaymentMethodID,
		MakerPaymentAccountID: accountID,
		CountryCode:           &countryCode,
		AcceptedCountryCodes:  []string{},
		VersionNr:             domain.OfferVersion,
		MakerFee:              500,
		ProtocolVersion:       domain.TradeProtocolVersion,
	}
}

func makeRandomAccount(t *testing.T) domain.PaymentAccount {
	account, err := domain.NewSpecificBanksAccount(
		randomHex(4), "US", randomHex(4), "USD", []string{randomHex(4)},
	)
	require.NoError(t, err)
	account.CreationDate = randomTimestamp()
	return *account
}

func randomTimestamp() int64 {
	return int64(randomIntInRange(1000000000, 1662688000))
}

func randomHex(len int) string {
	return hex.EncodeToString(randomBytes(len))
}

func randomBytes(len int) []byte {
	b := make([]byte, len)
	//nolint
	rand.Read(b)
	return b
}

func randomIntInRange(min, max int) int {
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(max-min)))
	return int(n.Int64()) + min
}
