package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var getOfferCmd = cli.Command{
	Name:  "getoffer",
	Usage: "get an offer of the local offer book",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Usage:    "the id of the offer",
			Required: true,
		},
	},
	Action: getOfferAction,
}

func getOfferAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	offer, err := appConfig.OfferService().GetOffer(
		context.Background(), ctx.String("id"),
	)
	if err != nil {
		return err
	}

	printJSON(offer)
	return nil
}
