// Package tui implements the interactive terminal frontend of the digital
// rolodex. A single Model switches between the action menu, one-line input
// forms, confirmation prompts and result screens; all contact operations go
// through the rolodex layer.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gitlab.com/dirk.krummacker/rolodex/internal/rolodex"
)

// mode selects which screen the model is currently showing.
type mode int

const (
	modeMenu mode = iota
	modeForm
	modeConfirm
	modeResult
)

// Menu actions
const (
	actionAdd    = "add"
	actionView   = "view"
	actionEdit   = "edit"
	actionDelete = "delete"
	actionSearch = "search"
	actionList   = "list"
	actionExport = "export"
	actionQuit   = "quit"
)

type item struct {
	title  string
	desc   string
	action string
}

func (i item) Title() string       { return i.title }
func (i item) Description() string { return i.desc }
func (i item) FilterValue() string { return i.title }

// Model is the top level bubbletea model of the rolodex frontend.
type Model struct {
	rolo        *rolodex.Rolodex
	defaultSort string

	mode    mode
	menu    list.Model
	form    *form
	confirm *confirm
	result  string

	width  int
	height int
}

// NewModel wires the frontend to an opened rolodex. The default sort order
// is used whenever the user does not pick one in the list dialog.
func NewModel(rolo *rolodex.Rolodex, defaultSort string) Model {
	items := []list.Item{
		item{title: "Add contact", desc: "Create a new entry", action: actionAdd},
		item{title: "View contact", desc: "Look up one contact by email", action: actionView},
		item{title: "Edit contact", desc: "Update fields of an existing contact", action: actionEdit},
		item{title: "Delete contact", desc: "Remove a contact by email", action: actionDelete},
		item{title: "Search contacts", desc: "Find contacts by substring or exact match", action: actionSearch},
		item{title: "List contacts", desc: "Show all contacts in sorted order", action: actionList},
		item{title: "Export spreadsheet", desc: "Write all contacts to an .xlsx workbook", action: actionExport},
		item{title: "Quit", desc: "Leave the rolodex", action: actionQuit},
	}

	d := list.NewDefaultDelegate()
	d.Styles.SelectedTitle = lipgloss.NewStyle().Foreground(Amber).Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(Amber).PaddingLeft(1)
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Copy().Foreground(DimAmber)

	l := list.New(items, d, 40, 24)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return Model{
		rolo:        rolo,
		defaultSort: defaultSort,
		mode:        modeMenu,
		menu:        l,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-2, msg.Height-7)
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case modeMenu:
			return m.updateMenu(msg)
		case modeForm:
			return m.updateForm(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		case modeResult:
			// Any key returns to the menu.
			m.result = ""
			m.mode = modeMenu
			return m, nil
		}
	}

	// Remaining messages, cursor blinks mostly, go to the active component.
	var cmd tea.Cmd
	switch m.mode {
	case modeMenu:
		m.menu, cmd = m.menu.Update(msg)
	case modeForm:
		if m.form != nil {
			m.form.input, cmd = m.form.input.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit
	case "enter":
		selected, ok := m.menu.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		return m.startAction(selected.action)
	}
	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m Model) startAction(action string) (tea.Model, tea.Cmd) {
	switch action {
	case actionQuit:
		return m, tea.Quit
	case actionAdd:
		m.form = addForm(m.rolo)
	case actionView:
		m.form = viewForm(m.rolo)
	case actionEdit:
		m.form = editForm(m.rolo)
	case actionDelete:
		m.form = deleteForm(m.rolo)
	case actionSearch:
		m.form = searchForm(m.rolo)
	case actionList:
		m.form = listForm(m.rolo, m.defaultSort)
	case actionExport:
		m.form = exportForm(m.rolo)
	default:
		return m, nil
	}
	m.mode = modeForm
	return m, textinput.Blink
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = modeMenu
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.form = nil
		m.mode = modeMenu
		return m, nil
	case "enter":
		value := strings.TrimSpace(m.form.input.Value())
		current := m.form.prompts[m.form.index]
		if current.validate != nil {
			if message := current.validate(value); message != "" {
				m.form.err = message
				return m, nil
			}
		}
		m.form.answers = append(m.form.answers, value)
		m.form.err = ""
		if m.form.index+1 < len(m.form.prompts) {
			m.form.index++
			m.form.input.SetValue("")
			m.form.input.Placeholder = m.form.prompts[m.form.index].placeholder
			return m, nil
		}
		return m.finishForm()
	}
	var cmd tea.Cmd
	m.form.input, cmd = m.form.input.Update(msg)
	return m, cmd
}

// finishForm runs the completed form's action and switches to whatever
// screen the outcome asks for.
func (m Model) finishForm() (tea.Model, tea.Cmd) {
	out := m.form.finish(m.form.answers)
	m.form = nil
	switch {
	case out.next != nil:
		m.form = out.next
		m.mode = modeForm
		return m, textinput.Blink
	case out.confirm != nil:
		m.confirm = out.confirm
		m.mode = modeConfirm
		return m, nil
	default:
		m.result = out.text
		m.mode = modeResult
		return m, nil
	}
}

func (m Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.confirm != nil && (msg.String() == "y" || msg.String() == "Y") {
		m.result = m.confirm.accept()
	} else {
		m.result = "Cancelled."
	}
	m.confirm = nil
	m.mode = modeResult
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("Digital Rolodex") + "\n\n")

	switch m.mode {
	case modeMenu:
		b.WriteString(m.menu.View())
		b.WriteString("\n" + HelpStyle.Render("enter: select  q: quit"))
	case modeForm:
		if m.form != nil {
			b.WriteString(m.form.view())
		}
	case modeConfirm:
		if m.confirm != nil {
			b.WriteString(m.confirm.question + "\n\n")
			b.WriteString(HelpStyle.Render("y: confirm  any other key: cancel"))
		}
	case modeResult:
		b.WriteString(m.result + "\n\n")
		b.WriteString(HelpStyle.Render("press any key for the menu"))
	}

	status := fmt.Sprintf("%s | %d contacts", m.rolo.Path(), m.rolo.Len())
	b.WriteString("\n\n" + StatusStyle.Render(status))
	return b.String()
}
