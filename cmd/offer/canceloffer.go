package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var cancelOfferCmd = cli.Command{
	Name:  "canceloffer",
	Usage: "remove an offer from the offer book",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Usage:    "the id of the offer",
			Required: true,
		},
	},
	Action: cancelOfferAction,
}

func cancelOfferAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	offerID := ctx.String("id")
	if err := appConfig.OfferService().CancelOffer(
		context.Background(), offerID,
	); err != nil {
		return err
	}

	fmt.Printf("offer %s removed\n", offerID)
	return nil
}
