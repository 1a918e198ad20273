package editor

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"admintab/board"
	"admintab/board/piece"
	nt "admintab/entity"
	"admintab/message"
	"admintab/style"
)

const maxLength = 64

type field int

const (
	fieldAccount field = iota
	fieldName
	fieldUpdater
	fieldBuilder
	fieldCancel
	fieldSubmit
)

// Editor is a form for creating or changing one account.
type Editor struct {
	svc      Service
	edit     string // Account from the route, empty for a new one
	returnTo string

	operator    string
	existing    []string
	fetching    bool
	initialized bool
	notFound    bool

	account piece.TextInput
	name    piece.TextInput
	role    nt.Role

	focus       field
	pending     bool
	errorString string

	width  int
	height int

	ctx    context.Context
	logger nt.Logger
}

// New creates an editor for account, or for a new account when empty.
// On finishing, DoneMsg carries returnTo.
func New(ctx context.Context, svc Service, account, returnTo string, lgr nt.Logger) Editor {

	ed := Editor{
		svc:      svc,
		edit:     account,
		returnTo: returnTo,
		account:  piece.NewTextInput(account, maxLength),
		name:     piece.NewTextInput("", maxLength),
		ctx:      ctx,
		logger:   lgr,
	}
	ed.focus = ed.fields()[0]

	return ed
}

// Init issues the identity and account list queries.
func (ed Editor) Init() tea.Cmd {
	return tea.Batch(ed.whoAmICmd(), ed.accountsCmd())
}

func (ed Editor) Update(msg tea.Msg) (Editor, tea.Cmd) {

	switch msg := msg.(type) {

	case SizeMsg:
		ed.width = msg.Width
		ed.height = msg.Height

	case WhoAmIMsg:
		if msg.Err != nil {
			ed.logger.Error(ed.ctx, "failed to get identity", msg.Err)
			ed.errorString = msg.Err.Error()
			return ed, nil
		}
		ed.operator = msg.Operator

		if ed.edit == "" {
			ed.initialized = true
			return ed, nil
		}
		if ed.fetching || ed.initialized {
			return ed, nil
		}
		ed.fetching = true
		return ed, ed.infoCmd()

	case InfoMsg:
		ed.fetching = false
		ed.initialized = true

		if msg.Err != nil {
			ed.logger.Error(ed.ctx, "failed to get account", msg.Err, "account", ed.edit)
			ed.errorString = msg.Err.Error()
			return ed, nil
		}
		if len(msg.Infos) == 0 {
			ed.notFound = true
			ed.errorString = fmt.Sprintf("account '%s' not found", ed.edit)
			return ed, nil
		}

		info := msg.Infos[0]
		ed.account = piece.NewTextInput(info.Account, maxLength)
		ed.name = piece.NewTextInput(info.Name, maxLength)
		ed.role = info.Role

	case AccountsMsg:
		if msg.Err != nil {
			ed.logger.Error(ed.ctx, "failed to list accounts", msg.Err)
			return ed, nil
		}
		ed.existing = msg.Accounts

	case SubmittedMsg:
		ed.pending = false
		if msg.Err != nil {
			ed.logger.Error(ed.ctx, "failed to save account", msg.Err, "account", ed.Values().Account)
			ed.errorString = msg.Err.Error()
			return ed, nil
		}
		return ed, message.Cmd(message.DoneMsg{
			Return:  ed.returnTo,
			Account: ed.Values().Account,
			Saved:   true,
		})

	case tea.KeyPressMsg:
		return ed.handleKey(msg)
	}

	return ed, nil
}

// Initialized reports whether the form is ready for input.
func (ed Editor) Initialized() bool {
	return ed.initialized
}

// Editing reports whether an existing account is being edited.
func (ed Editor) Editing() bool {
	return ed.edit != ""
}

// AccountEditable is false once the account identifier is fixed.
func (ed Editor) AccountEditable() bool {
	return ed.edit == ""
}

// Values returns the form's current values.
func (ed Editor) Values() nt.Account {
	return nt.Account{
		Account: ed.account.Text(),
		Name:    ed.name.Text(),
		Role:    ed.role,
	}
}

// Exists reports whether account collides with an existing identifier.
func (ed Editor) Exists(account string) bool {
	return slices.Contains(ed.existing, account)
}

// AccountInvalid flags an empty or, for a new account, duplicate identifier.
func (ed Editor) AccountInvalid() bool {
	account := ed.account.Text()
	return account == "" || (!ed.Editing() && ed.Exists(account))
}

// NameInvalid flags an empty name.
func (ed Editor) NameInvalid() bool {
	return ed.name.Text() == ""
}

// Valid gates submission.
func (ed Editor) Valid() bool {
	return !ed.AccountInvalid() && !ed.NameInvalid() && ed.role != ""
}

// CanSubmit is false while invalid, while a submission is in flight,
// or when the account being edited does not exist.
func (ed Editor) CanSubmit() bool {
	return ed.initialized && !ed.pending && !ed.notFound && ed.Valid()
}

// NotFound reports that the lookup found no such account.
func (ed Editor) NotFound() bool {
	return ed.notFound
}

// Pending reports an in-flight submission.
func (ed Editor) Pending() bool {
	return ed.pending
}

// Error returns the message shown in the alert banner.
func (ed Editor) Error() string {
	return ed.errorString
}

// Render renders the form.
func (ed Editor) Render() string {

	if !ed.initialized {
		if ed.errorString != "" {
			return style.AlertStyle.Render(ed.errorString)
		}
		return "Loading..."
	}

	var content strings.Builder

	title := "New Account"
	if ed.Editing() {
		title = fmt.Sprintf("Edit Account '%s'", ed.edit)
	}
	content.WriteString(style.TitleStyle.Render(title) + "\n\n")

	content.WriteString(ed.renderInput("Account", fieldAccount, ed.account, ed.AccountInvalid(), !ed.AccountEditable()))
	if !ed.Editing() && ed.account.Text() != "" && ed.Exists(ed.account.Text()) {
		content.WriteString("  " + style.InvalidStyle.Render("Account already exists") + "\n")
	}
	content.WriteString(ed.renderInput("Name", fieldName, ed.name, ed.NameInvalid(), false))

	content.WriteString("\nRoles\n")
	for i, role := range nt.Roles {
		box := piece.NewCheckbox(ed.role == role).Render()
		content.WriteString(ed.highlight(fieldUpdater+field(i), box) + " " + role.Label() + "  ")
	}
	content.WriteString("\n")

	if ed.errorString != "" {
		content.WriteString("\n" + style.AlertStyle.Render(ed.errorString) + "\n")
	}

	submitLabel := "Add New Account"
	if ed.Editing() {
		submitLabel = "Save"
	}
	cancel := piece.NewButton("Cancel")
	submit := piece.NewButton(submitLabel).Disable(!ed.CanSubmit())
	content.WriteString("\n" + ed.highlight(fieldCancel, cancel.Render()) + "  " + ed.highlight(fieldSubmit, submit.Render()) + "\n")

	help := "Tab: next field  Space: toggle role  Enter: submit  Esc: cancel"
	content.WriteString("\n" + style.MutedStyle.Render(help))

	card := style.CardStyle.Width(min(max(ed.width-2, 40), 72)).Render(content.String())
	return lipgloss.NewStyle().Padding(1, 2).Render(card)
}

// unexported

func (ed Editor) handleKey(msg tea.KeyPressMsg) (Editor, tea.Cmd) {

	key := msg.String()

	if key == "esc" {
		return ed, message.Cmd(message.DoneMsg{Return: ed.returnTo, Account: ed.edit})
	}
	if !ed.initialized {
		return ed, nil
	}

	switch key {
	case "tab", "down":
		ed.focus = ed.step(1)
		return ed, nil

	case "shift+tab", "up":
		ed.focus = ed.step(-1)
		return ed, nil

	case "enter":
		if ed.focus == fieldCancel {
			return ed, message.Cmd(message.DoneMsg{Return: ed.returnTo, Account: ed.edit})
		}
		return ed.submit()
	}

	switch ed.focus {
	case fieldAccount:
		ed.account = ed.feed(ed.account, msg)
	case fieldName:
		ed.name = ed.feed(ed.name, msg)
	case fieldUpdater, fieldBuilder:
		if piece.IsToggleKey(key) {
			ed.role = ed.toggle(nt.Roles[ed.focus-fieldUpdater])
		}
	}

	return ed, nil
}

// submit issues add or change unless invalid or already in flight.
func (ed Editor) submit() (Editor, tea.Cmd) {

	if !ed.CanSubmit() {
		return ed, nil
	}

	ed.pending = true
	ed.errorString = ""
	return ed, ed.submitCmd()
}

// toggle checks role, or clears it when already checked.
func (ed Editor) toggle(role nt.Role) nt.Role {
	if ed.role == role {
		return ""
	}
	return role
}

func (ed Editor) feed(input piece.TextInput, msg tea.KeyPressMsg) piece.TextInput {
	var pc board.Piece
	pc, _ = input.Update(msg)
	return pc.(piece.TextInput)
}

// fields lists focusable fields; the account is frozen when editing.
func (ed Editor) fields() []field {
	fields := []field{fieldAccount, fieldName, fieldUpdater, fieldBuilder, fieldCancel, fieldSubmit}
	if ed.Editing() {
		return fields[1:]
	}
	return fields
}

func (ed Editor) step(delta int) field {
	fields := ed.fields()
	idx := slices.Index(fields, ed.focus)
	idx = (idx + delta + len(fields)) % len(fields)
	return fields[idx]
}

func (ed Editor) renderInput(label string, fld field, input piece.TextInput, invalid, disabled bool) string {

	text := input.Focus(ed.focus == fld && !disabled).Render()
	switch {
	case disabled:
		text = style.MutedStyle.Render(text)
	case invalid:
		text = style.InvalidStyle.Render("│ ") + text
	default:
		text = "│ " + text
	}

	return fmt.Sprintf("%-8s %s\n", label+"*", text)
}

func (ed Editor) highlight(fld field, text string) string {
	if ed.focus == fld {
		return style.HlCellStyle.Render(text)
	}
	return text
}
