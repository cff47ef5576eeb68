package main

import (
	"context"

	"github.com/urfave/cli/v2"
)

var listAccountsCmd = cli.Command{
	Name:   "listaccounts",
	Usage:  "list all payment accounts",
	Action: listAccountsAction,
}

func listAccountsAction(_ *cli.Context) error {
	appConfig, cleanup, err := getAppConfig()
	if err != nil {
		return err
	}
	defer cleanup()

	accounts, err := appConfig.AccountService().ListAccounts(
		context.Background(),
	)
	if err != nil {
		return err
	}

	printJSON(accounts)
	return nil
}
