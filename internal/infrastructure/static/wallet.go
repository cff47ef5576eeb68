package static

import (
	"context"

	"github.com/streetbits/bitsquare/internal/core/ports"
)

type alternateWallet struct {
	balance *uint64
}

// NewAlternateWallet returns an AlternateWallet with a fixed balance. A nil
// balance means it is unknown.
func NewAlternateWallet(balance *uint64) ports.AlternateWallet {
	return &alternateWallet{balance}
}

func (w *alternateWallet) GetAvailableBalance(_ context.Context) (*uint64, error) {
	if w.balance == nil {
		return nil, nil
	}
	balance := *w.balance
	return &balance, nil
}
