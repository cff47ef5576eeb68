package static

import (
	"context"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/streetbits/bitsquare/internal/core/ports"
)

type arbitration struct {
	arbitrators []domain.NodeAddress
	mediators   []domain.NodeAddress
}

// NewArbitration returns an Arbitration accepting the given arbitrators and
// mediators, each in the form host:port.
func NewArbitration(arbitrators, mediators []string) (ports.Arbitration, error) {
	arbs, err := parseNodeAddresses(arbitrators)
	if err != nil {
		return nil, err
	}
	meds, err := parseNodeAddresses(mediators)
	if err != nil {
		return nil, err
	}
	return &arbitration{arbs, meds}, nil
}

func (a *arbitration) AcceptedArbitrators(
	_ context.Context,
) ([]domain.NodeAddress, error) {
	return append([]domain.NodeAddress{}, a.arbitrators...), nil
}

func (a *arbitration) AcceptedMediators(
	_ context.Context,
) ([]domain.NodeAddress, error) {
	return append([]domain.NodeAddress{}, a.mediators...), nil
}

func parseNodeAddresses(list []string) ([]domain.NodeAddress, error) {
	addresses := make([]domain.NodeAddress, 0, len(list))
	for _, s := range list {
		if len(s) <= 0 {
			continue
		}
		addr, err := domain.NewNodeAddress(s)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, addr)
	}
	return addresses, nil
}
