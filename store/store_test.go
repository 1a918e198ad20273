package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "admintab/entity"
	"admintab/store"
	"admintab/store/lite"
	"admintab/testkit"
)

func newAccounts(t *testing.T, operator string) *store.Accounts {
	t.Helper()

	acc, err := lite.New("", operator, testkit.NewLogger(t))
	require.NoError(t, err)
	t.Cleanup(func() { acc.Close() })
	return acc
}

func TestWhoAmI(t *testing.T) {

	ctx := context.Background()

	operator, err := newAccounts(t, "root").WhoAmI(ctx)
	require.NoError(t, err)
	assert.Equal(t, "root", operator)

	_, err = newAccounts(t, "").WhoAmI(ctx)
	assert.Error(t, err)
}

func TestAccountLifecycle(t *testing.T) {

	ctx := context.Background()
	acc := newAccounts(t, "root")
	assert.Equal(t, "sqlite", acc.Name())

	svc1 := nt.Account{Account: "svc1", Name: "Service One", Role: nt.Updater}
	svc2 := nt.Account{Account: "svc2", Name: "Service Two", Role: nt.Builder}

	require.NoError(t, acc.AddAccount(ctx, svc2))
	require.NoError(t, acc.AddAccount(ctx, svc1))

	err := acc.AddAccount(ctx, svc1)
	assert.EqualError(t, err, "account svc1 already exists")

	list, err := acc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc1", "svc2"}, list)

	infos, err := acc.AccountInfo(ctx, "svc2")
	require.NoError(t, err)
	assert.Equal(t, []nt.Account{svc2}, infos)

	infos, err = acc.AccountInfo(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, []nt.Account{svc1, svc2}, infos)

	infos, err = acc.AccountInfo(ctx, "nope")
	require.NoError(t, err)
	assert.Empty(t, infos)

	svc1.Name = "Renamed"
	svc1.Role = nt.Builder
	require.NoError(t, acc.ChangeAccount(ctx, svc1))

	infos, err = acc.AccountInfo(ctx, "svc1")
	require.NoError(t, err)
	assert.Equal(t, []nt.Account{svc1}, infos)

	err = acc.ChangeAccount(ctx, nt.Account{Account: "nope", Name: "x", Role: nt.Updater})
	assert.EqualError(t, err, "account nope not found")

	require.NoError(t, acc.RemoveAccount(ctx, "svc2"))
	assert.Error(t, acc.RemoveAccount(ctx, "svc2"))

	list, err = acc.ListAccounts(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"svc1"}, list)
}

func TestAccountChecks(t *testing.T) {

	ctx := context.Background()
	acc := newAccounts(t, "root")

	tests := []struct {
		name string
		info nt.Account
		err  string
	}{
		{name: "no account", info: nt.Account{Name: "n", Role: nt.Updater}, err: "account is required"},
		{name: "no name", info: nt.Account{Account: "a", Role: nt.Updater}, err: "name is required"},
		{name: "bad role", info: nt.Account{Account: "a", Name: "n", Role: "admin"}, err: `unknown role "admin"`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := acc.AddAccount(ctx, tc.info)
			assert.EqualError(t, err, tc.err)
		})
	}
}
