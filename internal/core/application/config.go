package application

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/application/offer"
	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
	dbbadger "github.com/streetbits/bitsquare/internal/infrastructure/storage/db/badger"
	"github.com/streetbits/bitsquare/internal/infrastructure/storage/db/inmemory"
)

const (
	DBBadger   = "badger"
	DBInmemory = "inmemory"
)

var (
	SupportedDBType = map[string]struct{}{
		DBBadger:   {},
		DBInmemory: {},
	}
)

type Config struct {
	DBType   string
	DBConfig interface{}

	FeeParams     domain.FeeParams
	TxSize        int
	Collaborators offer.Collaborators
	// Publisher is built on top of the repo manager when not given.
	PublisherFactory func(ports.RepoManager) (ports.OfferPublisher, error)

	repo    ports.RepoManager
	offer   OfferService
	account AccountService
}

func (c *Config) Validate() error {
	if _, ok := SupportedDBType[c.DBType]; !ok {
		return fmt.Errorf("db type not supported, please select one of: %s, %s", DBBadger, DBInmemory)
	}
	if _, err := c.repoManager(); err != nil {
		return err
	}
	if _, err := c.offerService(); err != nil {
		return err
	}
	return nil
}

func (c *Config) RepoManager() ports.RepoManager {
	svc, _ := c.repoManager()
	return svc
}

func (c *Config) OfferService() OfferService {
	svc, _ := c.offerService()
	return svc
}

func (c *Config) AccountService() AccountService {
	svc, _ := c.accountService()
	return svc
}

func (c *Config) repoManager() (ports.RepoManager, error) {
	if c.repo == nil {
		switch c.DBType {
		case DBBadger:
			datadir, _ := c.DBConfig.(string)
			repoManager, err := dbbadger.NewRepoManager(datadir, log.New())
			if err != nil {
				return nil, err
			}
			c.repo = repoManager
		case DBInmemory:
			c.repo = inmemory.NewRepoManager()
		default:
			return nil, fmt.Errorf("unknown db type %s", c.DBType)
		}
	}
	return c.repo, nil
}

func (c *Config) offerService() (OfferService, error) {
	if c.offer == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		collaborators := c.Collaborators
		if collaborators.Publisher == nil && c.PublisherFactory != nil {
			publisher, err := c.PublisherFactory(repo)
			if err != nil {
				return nil, err
			}
			collaborators.Publisher = publisher
		}
		svc, err := NewOfferService(repo, c.FeeParams, collaborators, c.TxSize)
		if err != nil {
			return nil, err
		}
		c.offer = svc
	}
	return c.offer, nil
}

func (c *Config) accountService() (AccountService, error) {
	if c.account == nil {
		repo, err := c.repoManager()
		if err != nil {
			return nil, err
		}
		svc, err := NewAccountService(repo)
		if err != nil {
			return nil, err
		}
		c.account = svc
	}
	return c.account, nil
}
