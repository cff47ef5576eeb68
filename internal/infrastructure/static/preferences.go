package static

import "github.com/streetbits/bitsquare/internal/core/ports"

type preferences struct {
	payFeeInPrimary      bool
	buyerSecurityDeposit uint64
}

func NewPreferences(
	payFeeInPrimary bool, buyerSecurityDeposit uint64,
) ports.Preferences {
	return preferences{payFeeInPrimary, buyerSecurityDeposit}
}

func (p preferences) PayFeeInPrimary() bool {
	return p.payFeeInPrimary
}

func (p preferences) BuyerSecurityDeposit() uint64 {
	return p.buyerSecurityDeposit
}
