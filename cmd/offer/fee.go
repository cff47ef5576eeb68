package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var feeCmd = cli.Command{
	Name:  "fee",
	Usage: "compute the maker fee of an offer with the given terms",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "currency",
			Usage:    "the code of the currency the offer is traded in",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "amount",
			Usage: "the offer amount in satoshis",
		},
		&cli.Float64Flag{
			Name:  "margin",
			Usage: "the margin from market price, ie. 0.02 for +2%",
		},
	},
	Action: feeAction,
}

type feeResponse struct {
	Computable bool   `json:"computable"`
	Amount     uint64 `json:"amount,omitempty"`
	Currency   string `json:"currency,omitempty"`
}

func feeAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	var amount *uint64
	if ctx.IsSet("amount") {
		v := ctx.Uint64("amount")
		amount = &v
	}

	fee, err := appConfig.OfferService().ComputeMakerFee(
		context.Background(), ctx.String("currency"), amount,
		ctx.Float64("margin"),
	)
	if err != nil {
		return err
	}

	if fee == nil {
		printJSON(feeResponse{})
		return nil
	}
	printJSON(feeResponse{true, fee.Amount, fee.Currency.String()})
	return nil
}
