package main

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/streetbits/bitsquare/internal/config"
)

var configCmd = cli.Command{
	Name:   "config",
	Usage:  "print the current configuration of the CLI",
	Action: configAction,
}

func configAction(_ *cli.Context) error {
	for _, key := range []string{
		config.DatadirKey,
		config.DBTypeKey,
		config.NodeAddressKey,
		config.EsploraURLKey,
		config.TxSizeKey,
		config.PayFeeInBtcKey,
		config.BuyerSecurityDepositKey,
		config.BsqSupportedKey,
		config.BsqBalanceKey,
		config.MakerFeePerBtcKey,
		config.MinMakerFeeBtcKey,
		config.MakerFeePerBtcInBsqKey,
		config.MinMakerFeeBsqKey,
		config.MarketPricesKey,
		config.ArbitratorsKey,
		config.MediatorsKey,
		config.PublishEndpointsKey,
	} {
		fmt.Printf("%s: %s\n", key, config.GetString(key))
	}
	return nil
}
