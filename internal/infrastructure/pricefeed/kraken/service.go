package krakenfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

const (
	// DefaultURL is the url of the kraken public websocket API.
	DefaultURL = "wss://ws.kraken.com"

	defaultWaitTimeout = 5 * time.Second
)

var (
	reconnectInterval = time.Second

	fiatCurrencies = map[string]struct{}{
		"USD": {}, "EUR": {}, "CAD": {}, "GBP": {}, "JPY": {}, "CHF": {},
		"AUD": {},
	}
)

// PriceFeed is a ports.PriceFeed streaming prices from kraken.
type PriceFeed interface {
	ports.PriceFeed
	Start() error
	Stop()
}

type marketPrice struct {
	currencyCode string
	price        decimal.Decimal
	timestamp    int64
}

func (p marketPrice) GetCurrencyCode() string {
	return p.currencyCode
}

func (p marketPrice) GetPrice() decimal.Decimal {
	return p.price
}

func (p marketPrice) GetTimestamp() int64 {
	return p.timestamp
}

type service struct {
	url          string
	waitTimeout  time.Duration
	codeByTicker map[string]string
	tickers      []string

	lock   *sync.RWMutex
	prices map[string]marketPrice
	ready  map[string]chan struct{}

	connLock *sync.Mutex
	conn     *websocket.Conn

	quitChan chan struct{}
	wg       *sync.WaitGroup
}

// NewService returns a PriceFeed subscribed to the BTC market price of the
// given currencies. GetMarketPrice waits up to waitTimeout for the first
// price of a currency to arrive before reporting it as unknown.
func NewService(
	url string, currencyCodes []string, waitTimeout time.Duration,
) (PriceFeed, error) {
	if len(url) <= 0 {
		url = DefaultURL
	}
	if len(currencyCodes) <= 0 {
		return nil, fmt.Errorf("missing currencies to subscribe to")
	}
	if waitTimeout <= 0 {
		waitTimeout = defaultWaitTimeout
	}

	codeByTicker := make(map[string]string)
	tickers := make([]string, 0, len(currencyCodes))
	ready := make(map[string]chan struct{})
	for _, code := range currencyCodes {
		code = strings.ToUpper(code)
		ticker := tickerFor(code)
		if _, ok := codeByTicker[ticker]; ok {
			continue
		}
		codeByTicker[ticker] = code
		tickers = append(tickers, ticker)
		ready[code] = make(chan struct{})
	}

	return &service{
		url:          url,
		waitTimeout:  waitTimeout,
		codeByTicker: codeByTicker,
		tickers:      tickers,
		lock:         &sync.RWMutex{},
		prices:       make(map[string]marketPrice),
		ready:        ready,
		connLock:     &sync.Mutex{},
		quitChan:     make(chan struct{}),
		wg:           &sync.WaitGroup{},
	}, nil
}

// Start connects to kraken and keeps listening for price updates in
// background until Stop is called.
func (s *service) Start() error {
	if err := s.connect(); err != nil {
		return err
	}

	s.wg.Add(1)
	go s.listen()
	return nil
}

func (s *service) Stop() {
	close(s.quitChan)

	s.connLock.Lock()
	if s.conn != nil {
		s.conn.Close()
	}
	s.connLock.Unlock()

	s.wg.Wait()
}

func (s *service) GetMarketPrice(
	ctx context.Context, currencyCode string,
) (ports.MarketPrice, error) {
	s.lock.RLock()
	price, ok := s.prices[currencyCode]
	ready, subscribed := s.ready[currencyCode]
	s.lock.RUnlock()

	if ok {
		return price, nil
	}
	if !subscribed {
		return nil, nil
	}

	select {
	case <-ready:
		s.lock.RLock()
		defer s.lock.RUnlock()
		return s.prices[currencyCode], nil
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(s.waitTimeout):
		return nil, nil
	}
}

func (s *service) listen() {
	defer s.wg.Done()

	for {
		err := s.readMessages()

		select {
		case <-s.quitChan:
			return
		default:
		}

		log.WithError(err).Warn(
			"price feed connection dropped unexpectedly, trying to reconnect...",
		)
		time.Sleep(reconnectInterval)
		if err := s.connect(); err != nil {
			log.WithError(err).Warn("failed to reconnect to price feed")
			continue
		}
		log.Debug("price feed connection and subscriptions re-established")
	}
}

func (s *service) readMessages() error {
	s.connLock.Lock()
	conn := s.conn
	s.connLock.Unlock()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		code, price := s.parseFeed(message)
		if price == nil {
			continue
		}
		s.writePrice(code, *price)
	}
}

func (s *service) connect() error {
	conn, _, err := websocket.DefaultDialer.Dial(s.url, nil)
	if err != nil {
		return fmt.Errorf("cannot connect to price feed: %s", err)
	}

	msg := map[string]interface{}{
		"event": "subscribe",
		"pair":  s.tickers,
		"subscription": map[string]string{
			"name": "ticker",
		},
	}
	if err := conn.WriteJSON(msg); err != nil {
		conn.Close()
		return fmt.Errorf("cannot subscribe to given markets: %s", err)
	}

	s.connLock.Lock()
	defer s.connLock.Unlock()

	select {
	case <-s.quitChan:
		conn.Close()
		return fmt.Errorf("price feed stopped")
	default:
	}
	s.conn = conn
	return nil
}

// parseFeed parses ticker messages in the form
// [channelID, {"c": ["price", "volume"], ...}, "ticker", "XBT/EUR"].
func (s *service) parseFeed(msg []byte) (string, *decimal.Decimal) {
	var i []interface{}
	if err := json.Unmarshal(msg, &i); err != nil {
		return "", nil
	}
	if len(i) != 4 {
		return "", nil
	}

	ticker, ok := i[3].(string)
	if !ok {
		return "", nil
	}
	code, ok := s.codeByTicker[ticker]
	if !ok {
		return "", nil
	}

	ii, ok := i[1].(map[string]interface{})
	if !ok {
		return "", nil
	}
	iii, ok := ii["c"].([]interface{})
	if !ok || len(iii) < 1 {
		return "", nil
	}
	priceStr, ok := iii[0].(string)
	if !ok {
		return "", nil
	}

	price, err := decimal.NewFromString(priceStr)
	if err != nil || !price.IsPositive() {
		return "", nil
	}
	return code, &price
}

func (s *service) writePrice(code string, price decimal.Decimal) {
	s.lock.Lock()
	defer s.lock.Unlock()

	_, known := s.prices[code]
	s.prices[code] = marketPrice{code, price, time.Now().Unix()}
	if !known {
		close(s.ready[code])
	}
}

// tickerFor returns the kraken pair of the given currency. Fiat currencies
// are quoted against BTC, while altcoins are priced in BTC.
func tickerFor(code string) string {
	if _, ok := fiatCurrencies[code]; ok {
		return fmt.Sprintf("XBT/%s", code)
	}
	return fmt.Sprintf("%s/XBT", code)
}
