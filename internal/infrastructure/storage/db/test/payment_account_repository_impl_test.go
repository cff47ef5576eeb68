package db_test

import (
	"testing"

	"github.com/streetbits/bitsquare/internal/core/domain"
	"github.com/stretchr/testify/require"
)

func TestPaymentAccountRepositoryImplementations(t *testing.T) {
	repoManagers := createRepoManagers(t)

	for i := range repoManagers {
		repo := repoManagers[i]

		t.Run(repo.Name, func(t *testing.T) {
			testAddGetDeleteAccount(t, repo.PaymentAccountRepository())
		})
	}
}

func testAddGetDeleteAccount(t *testing.T, repo domain.PaymentAccountRepository) {
	accounts := []domain.PaymentAccount{
		makeRandomAccount(t),
		makeRandomAccount(t),
	}
	accounts[0].CreationDate, accounts[1].CreationDate = 200, 100

	allAccounts, err := repo.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Empty(t, allAccounts)

	_, err = repo.GetAccount(ctx, accounts[0].ID)
	require.ErrorIs(t, err, domain.ErrPaymentAccountNotFound)

	for _, a := range accounts {
		require.NoError(t, repo.AddAccount(ctx, a))
	}
	require.Error(t, repo.AddAccount(ctx, accounts[0]))

	account, err := repo.GetAccount(ctx, accounts[0].ID)
	require.NoError(t, err)
	require.Equal(t, accounts[0], *account)

	scope, ok := account.AsBankScoped()
	require.True(t, ok)
	require.Len(t, scope.AcceptedBankIDs, 1)
	require.Equal(t, accounts[0].Constraints(), account.Constraints())

	allAccounts, err = repo.GetAllAccounts(ctx)
	require.NoError(t, err)
	require.Len(t, allAccounts, 2)
	require.Equal(t, accounts[1].ID, allAccounts[0].ID)

	require.NoError(t, repo.DeleteAccount(ctx, accounts[0].ID))
	err = repo.DeleteAccount(ctx, accounts[0].ID)
	require.ErrorIs(t, err, domain.ErrPaymentAccountNotFound)
}
