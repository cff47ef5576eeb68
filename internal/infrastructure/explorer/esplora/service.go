package esplora

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"github.com/streetbits/bitsquare/internal/core/ports"
	"github.com/streetbits/bitsquare/pkg/circuitbreaker"
)

const (
	// DefaultConfirmationTarget is the number of blocks the offer fee
	// transaction is expected to confirm within.
	DefaultConfirmationTarget = 6
	// MinFeeRate is the min relay fee rate in sat/vbyte.
	MinFeeRate = 1

	defaultRequestTimeout = 15 * time.Second
)

type esplora struct {
	apiURL             string
	confirmationTarget int
	client             *http.Client
	cb                 *gobreaker.CircuitBreaker
}

// NewService returns a ChainInfo backed by the esplora REST API at the given
// URL.
func NewService(
	apiURL string, confirmationTarget int, requestTimeout time.Duration,
) (ports.ChainInfo, error) {
	if _, err := url.ParseRequestURI(apiURL); err != nil {
		return nil, fmt.Errorf("invalid esplora url: %w", err)
	}
	if confirmationTarget <= 0 {
		confirmationTarget = DefaultConfirmationTarget
	}
	if requestTimeout <= 0 {
		requestTimeout = defaultRequestTimeout
	}

	return &esplora{
		apiURL:             strings.TrimSuffix(apiURL, "/"),
		confirmationTarget: confirmationTarget,
		client:             &http.Client{Timeout: requestTimeout},
		cb:                 circuitbreaker.NewCircuitBreaker("explorer"),
	}, nil
}

func (e *esplora) GetLastSeenBlockHeight(ctx context.Context) (uint32, error) {
	url := fmt.Sprintf("%s/blocks/tip/height", e.apiURL)
	resp, err := e.get(ctx, url)
	if err != nil {
		return 0, err
	}

	blockHeight, err := strconv.ParseUint(strings.TrimSpace(resp), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid block height: %w", err)
	}
	return uint32(blockHeight), nil
}

// GetTxFee returns the network fee in satoshis for a transaction of the given
// virtual size, using the fee rate estimated for the confirmation target.
func (e *esplora) GetTxFee(ctx context.Context, txSize int) (uint64, error) {
	if txSize <= 0 {
		return 0, fmt.Errorf("tx size must be greater than zero")
	}

	url := fmt.Sprintf("%s/fee-estimates", e.apiURL)
	resp, err := e.get(ctx, url)
	if err != nil {
		return 0, err
	}

	estimates := make(map[string]float64)
	if err := json.Unmarshal([]byte(resp), &estimates); err != nil {
		return 0, fmt.Errorf("invalid fee estimates: %w", err)
	}

	feeRate := decimal.NewFromInt(MinFeeRate)
	if rate, ok := estimates[strconv.Itoa(e.confirmationTarget)]; ok {
		feeRate = decimal.Max(feeRate, decimal.NewFromFloat(rate))
	}

	fee := feeRate.Mul(decimal.NewFromInt(int64(txSize))).Ceil()
	return fee.BigInt().Uint64(), nil
}

func (e *esplora) get(ctx context.Context, url string) (string, error) {
	resp, err := e.cb.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		rs, err := e.client.Do(req)
		if err != nil {
			return nil, err
		}
		defer rs.Body.Close()

		body, err := io.ReadAll(rs.Body)
		if err != nil {
			return nil, err
		}
		if rs.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("%s", body)
		}
		return string(body), nil
	})
	if err != nil {
		return "", err
	}
	return resp.(string), nil
}
