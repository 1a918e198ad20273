package editor

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nt "admintab/entity"
	"admintab/message"
	"admintab/testkit"
)

type fakeService struct {
	accounts  []nt.Account
	submitErr error
	added     []nt.Account
	changed   []nt.Account
	lookups   []string
}

func (svc *fakeService) WhoAmI(ctx context.Context) (string, error) {
	return "root", nil
}

func (svc *fakeService) ListAccounts(ctx context.Context) (accounts []string, err error) {
	for _, acc := range svc.accounts {
		accounts = append(accounts, acc.Account)
	}
	return
}

func (svc *fakeService) AccountInfo(ctx context.Context, account string) (infos []nt.Account, err error) {
	svc.lookups = append(svc.lookups, account)
	for _, acc := range svc.accounts {
		if acc.Account == account {
			infos = append(infos, acc)
		}
	}
	return
}

func (svc *fakeService) AddAccount(ctx context.Context, info nt.Account) error {
	svc.added = append(svc.added, info)
	return svc.submitErr
}

func (svc *fakeService) ChangeAccount(ctx context.Context, info nt.Account) error {
	svc.changed = append(svc.changed, info)
	return svc.submitErr
}

func newService() *fakeService {
	return &fakeService{accounts: []nt.Account{
		{Account: "a", Name: "Alpha", Role: nt.Updater},
		{Account: "b", Name: "Beta", Role: nt.Builder},
		{Account: "svc1", Name: "Service", Role: nt.Builder},
	}}
}

func press(ed Editor, keys ...string) (Editor, tea.Cmd) {
	var cmd tea.Cmd
	for _, key := range keys {
		ed, cmd = ed.Update(testkit.Key(key))
	}
	return ed, cmd
}

func typeText(ed Editor, text string) Editor {
	for _, key := range testkit.Type(text) {
		ed, _ = ed.Update(key)
	}
	return ed
}

// ready runs the initial queries the way the runtime would.
func ready(t *testing.T, ed Editor, svc *fakeService) Editor {
	t.Helper()

	ctx := context.Background()

	accounts, err := svc.ListAccounts(ctx)
	require.NoError(t, err)
	ed, _ = ed.Update(AccountsMsg{Accounts: accounts})

	ed, cmd := ed.Update(WhoAmIMsg{Operator: "root"})
	if cmd != nil {
		ed, _ = ed.Update(cmd())
	}
	return ed
}

func TestNewAccount(t *testing.T) {

	svc := newService()
	ed := New(context.Background(), svc, "", "accounts", testkit.NewLogger(t))

	assert.False(t, ed.Initialized())
	assert.Equal(t, "Loading...", ed.Render())

	ed = ready(t, ed, svc)
	require.True(t, ed.Initialized())
	assert.True(t, ed.AccountEditable())
	assert.Equal(t, "", ed.Values().Account)
	assert.Empty(t, svc.lookups)

	ed = typeText(ed, "a")
	assert.True(t, ed.AccountInvalid())
	assert.False(t, ed.Valid())
	assert.Contains(t, ed.Render(), "Account already exists")

	ed, _ = press(ed, "backspace")
	ed = typeText(ed, "c")
	assert.False(t, ed.AccountInvalid())

	ed, _ = press(ed, "tab")
	ed = typeText(ed, "Charlie")
	assert.False(t, ed.Valid())

	// focus builder, toggle it
	ed, _ = press(ed, "tab", "tab", "space")
	assert.True(t, ed.Valid())
	assert.Equal(t, nt.Account{Account: "c", Name: "Charlie", Role: nt.Builder}, ed.Values())

	ed, cmd := press(ed, "enter")
	require.NotNil(t, cmd)
	assert.True(t, ed.Pending())
	assert.False(t, ed.CanSubmit())

	// second submit while pending is ignored
	_, again := press(ed, "enter")
	assert.Nil(t, again)

	ed, cmd = ed.Update(cmd())
	assert.Equal(t, []nt.Account{{Account: "c", Name: "Charlie", Role: nt.Builder}}, svc.added)
	assert.False(t, ed.Pending())

	require.NotNil(t, cmd)
	assert.Equal(t, message.DoneMsg{Return: "accounts", Account: "c", Saved: true}, cmd())
}

func TestEditAccount(t *testing.T) {

	svc := newService()
	ed := New(context.Background(), svc, "svc1", "accounts", testkit.NewLogger(t))
	assert.False(t, ed.AccountEditable())

	ed, cmd := ed.Update(WhoAmIMsg{Operator: "root"})
	require.NotNil(t, cmd)
	assert.False(t, ed.Initialized())

	// repeated identity result does not fetch twice
	_, dup := ed.Update(WhoAmIMsg{Operator: "root"})
	assert.Nil(t, dup)

	ed, _ = ed.Update(cmd())
	require.True(t, ed.Initialized())
	assert.Equal(t, []string{"svc1"}, svc.lookups)
	assert.Equal(t, nt.Account{Account: "svc1", Name: "Service", Role: nt.Builder}, ed.Values())
	assert.False(t, ed.AccountEditable())
	assert.Contains(t, ed.Render(), "Edit Account 'svc1'")

	// account field is skipped, typing lands in name
	ed = typeText(ed, "s")
	assert.Equal(t, "Services", ed.Values().Name)
	assert.Equal(t, "svc1", ed.Values().Account)

	// existing identifier is fine when editing
	ed, _ = ed.Update(AccountsMsg{Accounts: []string{"svc1"}})
	assert.True(t, ed.Valid())

	ed, cmd = press(ed, "enter")
	require.NotNil(t, cmd)
	ed, _ = ed.Update(cmd())
	assert.Equal(t, []nt.Account{{Account: "svc1", Name: "Services", Role: nt.Builder}}, svc.changed)
}

func TestEditNotFound(t *testing.T) {

	svc := newService()
	ed := New(context.Background(), svc, "ghost", "accounts", testkit.NewLogger(t))
	ed = ready(t, ed, svc)

	assert.True(t, ed.Initialized())
	assert.False(t, ed.AccountEditable())
	assert.Equal(t, "account 'ghost' not found", ed.Error())
	assert.Equal(t, "", ed.Values().Name)
	assert.False(t, ed.Valid())
	assert.True(t, ed.NotFound())

	// a complete form still cannot be saved
	ed = typeText(ed, "Ghost")
	ed, _ = press(ed, "tab", "space")
	assert.True(t, ed.Valid())
	assert.False(t, ed.CanSubmit())

	ed, cmd := press(ed, "enter")
	assert.Nil(t, cmd)
	assert.False(t, ed.Pending())
	assert.Empty(t, svc.changed)
	assert.Empty(t, svc.added)
	assert.Equal(t, "account 'ghost' not found", ed.Error())
}

func TestSubmitFailure(t *testing.T) {

	svc := newService()
	svc.submitErr = errors.New("permission denied")

	ed := New(context.Background(), svc, "a", "accounts", testkit.NewLogger(t))
	ed = ready(t, ed, svc)

	ed, cmd := press(ed, "enter")
	require.NotNil(t, cmd)

	ed, cmd = ed.Update(cmd())
	assert.Nil(t, cmd)
	assert.Equal(t, "permission denied", ed.Error())
	assert.Contains(t, ed.Render(), "permission denied")

	// still editable
	ed = typeText(ed, "!")
	assert.Equal(t, "Alpha!", ed.Values().Name)
	assert.True(t, ed.CanSubmit())
}

func TestRoleToggle(t *testing.T) {

	svc := newService()
	ed := ready(t, New(context.Background(), svc, "a", "accounts", testkit.NewLogger(t)), svc)
	assert.Equal(t, nt.Updater, ed.Values().Role)

	// name -> updater, uncheck clears the role
	ed, _ = press(ed, "tab", "space")
	assert.Equal(t, nt.Role(""), ed.Values().Role)
	assert.False(t, ed.Valid())

	ed, _ = press(ed, "tab", "t")
	assert.Equal(t, nt.Builder, ed.Values().Role)
}

func TestCancel(t *testing.T) {

	svc := newService()
	ed := New(context.Background(), svc, "", "accounts", testkit.NewLogger(t))

	_, cmd := press(ed, "esc")
	require.NotNil(t, cmd)
	assert.Equal(t, message.DoneMsg{Return: "accounts"}, cmd())

	ed = ready(t, ed, svc)
	ed, _ = press(ed, "shift+tab", "shift+tab")
	_, cmd = press(ed, "enter")
	require.NotNil(t, cmd)
	assert.Equal(t, message.DoneMsg{Return: "accounts"}, cmd())
}

func TestIdentityFailure(t *testing.T) {

	svc := newService()
	ed := New(context.Background(), svc, "", "accounts", testkit.NewLogger(t))

	ed, cmd := ed.Update(WhoAmIMsg{Err: errors.New("no operator configured")})
	assert.Nil(t, cmd)
	assert.False(t, ed.Initialized())
	assert.Contains(t, ed.Render(), "no operator configured")
}
