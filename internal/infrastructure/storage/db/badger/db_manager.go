package dbbadger

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/dgraph-io/badger/v3/options"
	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/timshannon/badgerhold/v4"
)

const (
	offerbookDir = "offerbook"
	accountsDir  = "accounts"
)

type repoManager struct {
	offerStore   *badgerhold.Store
	accountStore *badgerhold.Store

	offerRepository   domain.OfferRepository
	accountRepository domain.PaymentAccountRepository
}

// NewRepoManager opens (or creates if not exists) the badger stores of the
// offer book and of the payment accounts in the given base directory. If the
// directory is empty, the stores are kept in memory.
func NewRepoManager(
	baseDbDir string, logger badger.Logger,
) (ports.RepoManager, error) {
	var offerDir, accountDir string
	if len(baseDbDir) > 0 {
		offerDir = filepath.Join(baseDbDir, offerbookDir)
		accountDir = filepath.Join(baseDbDir, accountsDir)
	}

	offerStore, err := createDb(offerDir, logger)
	if err != nil {
		return nil, fmt.Errorf("opening offerbook db: %w", err)
	}

	accountStore, err := createDb(accountDir, logger)
	if err != nil {
		offerStore.Close()
		return nil, fmt.Errorf("opening accounts db: %w", err)
	}

	return &repoManager{
		offerStore:        offerStore,
		accountStore:      accountStore,
		offerRepository:   NewOfferRepositoryImpl(offerStore),
		accountRepository: NewPaymentAccountRepositoryImpl(accountStore),
	}, nil
}

func (d *repoManager) OfferRepository() domain.OfferRepository {
	return d.offerRepository
}

func (d *repoManager) PaymentAccountRepository() domain.PaymentAccountRepository {
	return d.accountRepository
}

func (d *repoManager) Close() {
	d.offerStore.Close()
	d.accountStore.Close()
}

// JSONEncode is a custom JSON based encoder for badger. Unlike gob, it keeps
// nil and empty lists apart.
func JSONEncode(value interface{}) ([]byte, error) {
	return json.Marshal(value)
}

// JSONDecode is a custom JSON based decoder for badger.
func JSONDecode(data []byte, value interface{}) error {
	return json.Unmarshal(data, value)
}

func createDb(dbDir string, logger badger.Logger) (*badgerhold.Store, error) {
	isInMemory := len(dbDir) <= 0

	opts := badger.DefaultOptions(dbDir)
	opts.Logger = logger

	if isInMemory {
		opts.InMemory = true
	} else {
		opts.Compression = options.ZSTD
	}

	db, err := badgerhold.Open(badgerhold.Options{
		Encoder:          JSONEncode,
		Decoder:          JSONDecode,
		SequenceBandwith: 100,
		Options:          opts,
	})
	if err != nil {
		return nil, err
	}

	if !isInMemory {
		ticker := time.NewTicker(30 * time.Minute)

		go func() {
			for {
				<-ticker.C
				if err := db.Badger().RunValueLogGC(0.5); err != nil &&
					err != badger.ErrNoRewrite {
					log.Error(err)
				}
			}
		}()
	}

	return db, nil
}
