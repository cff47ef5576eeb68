package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/streetbits/bitsquare/internal/core/application/offer"
	"github.com/streetbits/bitsquare/internal/core/domain"
)

var makeOfferCmd = cli.Command{
	Name:  "makeoffer",
	Usage: "create a new offer and publish it to the offer book",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "account",
			Usage:    "the id of the payment account to settle the trade with",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "direction",
			Usage:    "the side of the offer: buy or sell",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:     "amount",
			Usage:    "the offer amount in satoshis",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:  "min-amount",
			Usage: "the min amount in satoshis a taker can trade, defaults to amount",
		},
		&cli.StringFlag{
			Name:  "base",
			Usage: "the base currency code",
			Value: domain.NetworkBaseCurrency,
		},
		&cli.StringFlag{
			Name:     "counter",
			Usage:    "the counter currency code",
			Required: true,
		},
		&cli.Int64Flag{
			Name:  "price",
			Usage: "the fixed price in the smallest unit of the counter currency",
		},
		&cli.Float64Flag{
			Name:  "margin",
			Usage: "the margin from market price, ie. 0.02 for +2%",
		},
		&cli.BoolFlag{
			Name:  "market-price",
			Usage: "follow the market price with the given margin",
		},
		&cli.StringFlag{
			Name:  "challenge",
			Usage: "the hash of the challenge, makes the offer private",
		},
	},
	Action: makeOfferAction,
}

func makeOfferAction(ctx *cli.Context) error {
	amount := ctx.Uint64("amount")
	minAmount := amount
	if ctx.IsSet("min-amount") {
		minAmount = ctx.Uint64("min-amount")
	}
	if !ctx.Bool("market-price") && !ctx.IsSet("price") {
		return &invalidUsageError{ctx, ctx.Command.Name}
	}

	req := offer.OfferCreationRequest{
		AccountID: ctx.String("account"),
		Direction: domain.Direction(strings.ToUpper(ctx.String("direction"))),
		Amount:    amount,
		MinAmount: minAmount,
		PriceTerms: domain.PriceTerms{
			Price:               ctx.Int64("price"),
			UseMarketBasedPrice: ctx.Bool("market-price"),
			MarketPriceMargin:   ctx.Float64("margin"),
		},
		BaseCurrencyCode:    strings.ToUpper(ctx.String("base")),
		CounterCurrencyCode: strings.ToUpper(ctx.String("counter")),
	}
	if ctx.IsSet("challenge") {
		req.Private = &domain.PrivateOfferTerms{
			HashOfChallenge: ctx.String("challenge"),
		}
	}

	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	payload, err := appConfig.OfferService().CreateOffer(
		context.Background(), req,
	)
	if err != nil {
		var pubErr *offer.PublicationError
		if errors.As(err, &pubErr) {
			printJSON(pubErr.Payload)
			return fmt.Errorf(
				"%s, save the payload above and retry with publishoffer", err,
			)
		}
		return err
	}

	printJSON(payload)
	return nil
}
