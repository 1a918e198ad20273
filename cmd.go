package admintab

import (
	"context"

	tea "charm.land/bubbletea/v2"

	nt "admintab/entity"
	"admintab/message"
)

// whoAmI gets the operator from the service
func (m Model) whoAmI() tea.Cmd {
	return func() tea.Msg {
		operator, err := m.svc.WhoAmI(m.ctx)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return operatorMsg{operator: operator}
	}
}

// load gets all accounts from the service
func (m Model) load() tea.Cmd {
	return func() tea.Msg {
		accounts, err := m.svc.AccountInfo(m.ctx, "")
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return accountsMsg{accounts: accounts}
	}
}

// apply runs a mutation, reloading on success
func (m Model) apply(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		err := fn(m.ctx)
		if err != nil {
			return message.ErrorMsg{Err: err}
		}
		return message.ReloadMsg{}
	}
}

func (m Model) addAccount(vals nt.Values) tea.Cmd {
	info := accountOf(vals)
	return m.apply(func(ctx context.Context) error {
		return m.svc.AddAccount(ctx, info)
	})
}

func (m Model) changeAccount(vals nt.Values) tea.Cmd {
	info := accountOf(vals)
	return m.apply(func(ctx context.Context) error {
		return m.svc.ChangeAccount(ctx, info)
	})
}

func (m Model) removeAccount(account string) tea.Cmd {
	return m.apply(func(ctx context.Context) error {
		return m.svc.RemoveAccount(ctx, account)
	})
}
