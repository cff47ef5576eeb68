package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var listOffersCmd = cli.Command{
	Name:   "listoffers",
	Usage:  "list all offers of the local offer book",
	Action: listOffersAction,
}

func listOffersAction(_ *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	offers, err := appConfig.OfferService().ListOffers(context.Background())
	if err != nil {
		return err
	}

	printJSON(offers)
	return nil
}
