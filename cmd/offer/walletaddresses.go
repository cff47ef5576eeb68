package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var walletAddressesCmd = cli.Command{
	Name:   "walletaddresses",
	Usage:  "list the receiving addresses of all crypto currency accounts",
	Action: walletAddressesAction,
}

func walletAddressesAction(_ *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	addresses, err := appConfig.AccountService().ListWalletAddresses(
		context.Background(),
	)
	if err != nil {
		return err
	}

	printJSON(addresses)
	return nil
}
