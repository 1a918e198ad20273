package editor

import (
	"context"

	tea "charm.land/bubbletea/v2"

	nt "admintab/entity"
)

// Service is what the editor needs from the account service.
type Service interface {
	WhoAmI(ctx context.Context) (operator string, err error)
	ListAccounts(ctx context.Context) (accounts []string, err error)
	AccountInfo(ctx context.Context, account string) (infos []nt.Account, err error)
	AddAccount(ctx context.Context, info nt.Account) error
	ChangeAccount(ctx context.Context, info nt.Account) error
}

func (ed Editor) whoAmICmd() tea.Cmd {
	return func() tea.Msg {
		operator, err := ed.svc.WhoAmI(ed.ctx)
		return WhoAmIMsg{Operator: operator, Err: err}
	}
}

func (ed Editor) accountsCmd() tea.Cmd {
	return func() tea.Msg {
		accounts, err := ed.svc.ListAccounts(ed.ctx)
		return AccountsMsg{Accounts: accounts, Err: err}
	}
}

func (ed Editor) infoCmd() tea.Cmd {
	account := ed.edit
	return func() tea.Msg {
		infos, err := ed.svc.AccountInfo(ed.ctx, account)
		return InfoMsg{Infos: infos, Err: err}
	}
}

func (ed Editor) submitCmd() tea.Cmd {

	info := ed.Values()
	editing := ed.edit != ""

	return func() tea.Msg {
		var err error
		if editing {
			err = ed.svc.ChangeAccount(ed.ctx, info)
		} else {
			err = ed.svc.AddAccount(ed.ctx, info)
		}
		return SubmittedMsg{Err: err}
	}
}
