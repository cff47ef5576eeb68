package main

import (
	"context"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/streetbits/bitsquare/internal/core/application/account"
)

var addAccountCmd = cli.Command{
	Name:  "addaccount",
	Usage: "add a new payment account",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "name",
			Usage:    "the name of the account",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "method",
			Usage:    "the payment method: SEPA, NATIONAL_BANK, SAME_BANK, SPECIFIC_BANKS, SWISH or BLOCK_CHAINS",
			Required: true,
		},
		&cli.StringFlag{
			Name:  "currency",
			Usage: "the currency code of the account",
		},
		&cli.StringFlag{
			Name:  "country",
			Usage: "the ISO 3166 code of the holder's country",
		},
		&cli.StringSliceFlag{
			Name:  "accepted-countries",
			Usage: "the codes of the countries accepted for SEPA accounts",
		},
		&cli.StringFlag{
			Name:  "bank",
			Usage: "the id of the holder's bank",
		},
		&cli.StringSliceFlag{
			Name:  "accepted-banks",
			Usage: "the ids of the banks accepted for SPECIFIC_BANKS accounts",
		},
		&cli.StringFlag{
			Name:  "address",
			Usage: "the receiving address of BLOCK_CHAINS accounts",
		},
	},
	Action: addAccountAction,
}

func addAccountAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	acc, err := appConfig.AccountService().AddAccount(
		context.Background(), account.AccountRequest{
			Name:                 ctx.String("name"),
			PaymentMethodID:      strings.ToUpper(ctx.String("method")),
			Currency:             strings.ToUpper(ctx.String("currency")),
			CountryCode:          strings.ToUpper(ctx.String("country")),
			AcceptedCountryCodes: ctx.StringSlice("accepted-countries"),
			BankID:               ctx.String("bank"),
			AcceptedBankIDs:      ctx.StringSlice("accepted-banks"),
			Address:              ctx.String("address"),
		},
	)
	if err != nil {
		return err
	}

	printJSON(acc)
	return nil
}
