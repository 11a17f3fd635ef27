package entry

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/travelgram/app"
	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/tui/common"
)

const (
	msgMissingCredentials = "Please enter both a username and a code."
	msgInvalidCode        = "Invalid code. Please try again."
)

// SubmittedMsg is sent once the participant has registered.
type SubmittedMsg struct {
	Session app.Session
}

const (
	usernameField = iota
	codeField
	fieldCount
)

// Model is the registration form shown before the feed.
type Model struct {
	inputs []textinput.Model
	focus  int
	err    string
}

// New creates the entry form with the username field focused.
func New() Model {
	username := textinput.New()
	username.Placeholder = "your username"
	username.CharLimit = 40
	username.Prompt = ""

	code := textinput.New()
	code.Placeholder = "3-digit code"
	code.CharLimit = 8
	code.Prompt = ""

	m := Model{inputs: []textinput.Model{username, code}}
	m.setFocus(usernameField)
	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Err returns the inline error currently shown, if any.
func (m Model) Err() string {
	return m.err
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == m.focus {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

// Update handles form navigation and submission.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			cmd := m.setFocus(m.focus + 1)
			return m, cmd
		case "shift+tab", "up":
			cmd := m.setFocus(m.focus - 1)
			return m, cmd
		case "enter":
			if m.focus == usernameField && strings.TrimSpace(m.inputs[codeField].Value()) == "" {
				cmd := m.setFocus(codeField)
				return m, cmd
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m Model) submit() (Model, tea.Cmd) {
	s, err := app.StartSession(m.inputs[usernameField].Value(), m.inputs[codeField].Value())
	switch {
	case errors.Is(err, domain.ErrMissingCredentials):
		m.err = msgMissingCredentials
		return m, nil
	case err != nil:
		m.err = msgInvalidCode
		m.inputs[codeField].SetValue("")
		cmd := m.setFocus(codeField)
		return m, cmd
	}
	m.err = ""
	return m, func() tea.Msg { return SubmittedMsg{Session: s} }
}

// View renders the form.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(common.AppTitleStyle.Render("Travelgram"))
	b.WriteString(common.TaglineStyle.Render("<Share your journey>") + "\n\n")

	var form strings.Builder
	form.WriteString(common.LabelStyle.Render("Username") + "\n")
	form.WriteString(m.inputs[usernameField].View() + "\n\n")
	form.WriteString(common.LabelStyle.Render("Code") + "\n")
	form.WriteString(m.inputs[codeField].View())
	if m.err != "" {
		form.WriteString("\n\n" + common.ErrorStyle.Render(m.err))
	}
	b.WriteString(common.FormStyle.MarginLeft(2).Render(form.String()))

	b.WriteString("\n" + common.StatusBarStyle.Render("  tab: next field • enter: start • ctrl+c: quit"))
	return b.String()
}
