package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
)

var removeAccountCmd = cli.Command{
	Name:  "removeaccount",
	Usage: "delete a payment account not used by any offer",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "id",
			Usage:    "the id of the payment account",
			Required: true,
		},
	},
	Action: removeAccountAction,
}

func removeAccountAction(ctx *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	accountID := ctx.String("id")
	if err := appConfig.AccountService().RemoveAccount(
		context.Background(), accountID,
	); err != nil {
		return err
	}

	fmt.Printf("payment account %s removed\n", accountID)
	return nil
}
