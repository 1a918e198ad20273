package admintab

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/pkg/errors"

	"admintab/board"
	"admintab/editor"
	nt "admintab/entity"
	"admintab/message"
	"admintab/table"
)

const (
	footerHeight = 2
)

// Model is the bubbletea model for the dashboard.
type Model struct {
	svc    Service
	roster *roster

	CurrentScreen Screen
	Panel         table.Panel
	Editor        editor.Editor
	quitOnDone    bool

	operator    string
	errorString string

	Width  int
	Height int

	ctx    context.Context
	logger nt.Logger
}

// NewModel creates a new bt model opening on route.
func NewModel(ctx context.Context, svc Service, layout Layout, route Route, lgr nt.Logger) (model Model, err error) {

	rst := &roster{}

	panel, err := table.NewPanel(ctx, accountColumns(rst, layout), nil, lgr)
	if err != nil {
		err = errors.Wrapf(err, "failed to create accounts panel")
		return
	}

	model = Model{
		svc:           svc,
		roster:        rst,
		CurrentScreen: route.Screen,
		Panel:         panel,
		ctx:           ctx,
		logger:        lgr,
	}

	if route.Screen == EditorScreen {
		model.Editor = editor.New(ctx, svc, route.Account, "", lgr)
		model.quitOnDone = true
	}

	return
}

func (m Model) Init() tea.Cmd {

	cmds := []tea.Cmd{m.whoAmI(), m.load()}
	if m.CurrentScreen == EditorScreen {
		cmds = append(cmds, m.Editor.Init())
	}

	return tea.Batch(cmds...)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {

	switch msg := msg.(type) {

	case message.ErrorMsg:
		m.logger.Error(m.ctx, "error msg", msg.Err)
		m.errorString = msg.Err.Error()
		return m, nil

	case operatorMsg:
		m.operator = msg.operator
		return m, nil

	case accountsMsg:
		m.roster.set(msg.accounts)
		return m.updatePanel(table.RowsMsg{Rows: accountRows(msg.accounts)})

	case message.ReloadMsg:
		return m, m.load()

	case message.RowAddedMsg:
		m.logger.Info(m.ctx, "adding account", "account", msg.Values.Get(accountCol).String())
		return m, m.addAccount(msg.Values)

	case message.AddCancelledMsg:
		return m.updatePanel(table.AddingMsg{Adding: false})

	case message.RowChangedMsg:
		m.logger.Info(m.ctx, "changing account", "account", msg.Key)
		return m, m.changeAccount(msg.New)

	case message.RowRemovedMsg:
		m.logger.Info(m.ctx, "removing account", "account", msg.Key)
		return m, m.removeAccount(msg.Key)

	case board.PieceMsg:
		key, column := msg.Position()
		m.logger.Info(m.ctx, "cell edited", "account", key, "column", column)
		return m, nil

	case message.OpenEditorMsg:
		return m.openEditor(msg.Account)

	case message.DoneMsg:
		if m.quitOnDone || msg.Return == "" {
			return m, tea.Quit
		}
		m.CurrentScreen = AccountsScreen
		if msg.Saved {
			return m, m.load()
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		return m.resize()

	case tea.KeyPressMsg:
		if m.errorString != "" {
			m.errorString = "" // Todo: clear on a timer instead
		}
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		if m.CurrentScreen == EditorScreen {
			return m.updateEditor(msg)
		}
		return m.handleKey(msg)
	}

	// editor query results and the like
	if m.CurrentScreen == EditorScreen {
		return m.updateEditor(msg)
	}
	return m, nil
}

func (m Model) View() tea.View {
	if m.Width == 0 {
		return tea.NewView("Loading...")
	}

	var screenContent string
	switch m.CurrentScreen {
	case EditorScreen:
		screenContent = m.Editor.Render()
	default:
		screenContent = m.Panel.Render()
	}

	screenLayer := lipgloss.NewLayer("screen", screenContent)

	footerContent := RenderFooter(m.position(), m.operator, m.svc.Name(), m.Width)
	if m.errorString != "" {
		footerContent = RenderAlert(m.errorString, m.Width)
	}
	footerLayer := lipgloss.NewLayer("footer", footerContent).Y(m.Height - footerHeight)

	canvas := lipgloss.NewCanvas(m.Width, m.Height)
	canvas.Compose(screenLayer)
	canvas.Compose(footerLayer)

	view := tea.NewView(canvas)
	view.AltScreen = true
	return view
}

// unexported

// position is the table row position, blank away from the table.
func (m Model) position() string {
	if m.CurrentScreen != AccountsScreen {
		return ""
	}
	return Position(m.Panel.Position())
}

// handleKey handles keys on the accounts screen.
// While a row is being edited or added, keys belong to the panel.
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {

	if m.Panel.Busy() {
		return m.updatePanel(msg)
	}

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "a":
		return m.updatePanel(table.AddingMsg{Adding: true})

	case "n":
		return m, message.Cmd(message.OpenEditorMsg{})

	case "e":
		key, ok := m.Panel.SelectedKey()
		if !ok {
			return m, nil
		}
		return m, message.Cmd(message.OpenEditorMsg{Account: key})

	case "r":
		return m, m.load()
	}

	return m.updatePanel(msg)
}

func (m Model) openEditor(account string) (tea.Model, tea.Cmd) {

	m.Editor = editor.New(m.ctx, m.svc, account, returnTo, m.logger)
	m.Editor, _ = m.Editor.Update(editor.SizeMsg{Width: m.Width, Height: m.Height - footerHeight})
	m.CurrentScreen = EditorScreen

	return m, m.Editor.Init()
}

func (m Model) updatePanel(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Panel, cmd = m.Panel.Update(msg)
	return m, cmd
}

func (m Model) updateEditor(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.Editor, cmd = m.Editor.Update(msg)
	return m, cmd
}

func (m Model) resize() (tea.Model, tea.Cmd) {

	width := m.Width
	height := m.Height - footerHeight

	var cmd1, cmd2 tea.Cmd
	m.Panel, cmd1 = m.Panel.Update(table.SizeMsg{Width: width, Height: height})
	m.Editor, cmd2 = m.Editor.Update(editor.SizeMsg{Width: width, Height: height})

	return m, tea.Batch(cmd1, cmd2)
}
