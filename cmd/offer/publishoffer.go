package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/streetbits/bitsquare/internal/core/domain"
)

var publishOfferCmd = cli.Command{
	Name:  "publishoffer",
	Usage: "publish again an offer whose publication failed",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Usage:    "the path of the file containing the JSON offer payload",
			Required: true,
		},
	},
	Action: publishOfferAction,
}

func publishOfferAction(ctx *cli.Context) error {
	buf, err := os.ReadFile(ctx.String("file"))
	if err != nil {
		return err
	}
	var payload domain.OfferPayload
	if err := json.Unmarshal(buf, &payload); err != nil {
		return fmt.Errorf("invalid offer payload: %s", err)
	}

	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	if err := appConfig.OfferService().PublishOffer(
		context.Background(), payload,
	); err != nil {
		return err
	}

	fmt.Printf("offer %s published\n", payload.ID)
	return nil
}
