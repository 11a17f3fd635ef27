package feed

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showHints {
		if key.Matches(keyMsg, m.keys.ToggleHints) || keyMsg.String() == "esc" || keyMsg.String() == "q" || keyMsg.String() == "enter" {
			m.showHints = false
		}
		return m, nil
	}
	if m.searching {
		return m.handleSearchKey(keyMsg)
	}
	if m.showDetail {
		return m.handleDetailKey(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, m.keys.ToggleHints):
		m.showHints = true
		return m, nil
	case key.Matches(keyMsg, m.keys.Refresh):
		return m.reload()
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.ensureCursorVisible()
		return m, nil
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
		m.ensureCursorVisible()
		return m, nil
	case key.Matches(keyMsg, m.keys.Detail):
		if m.selectedItem() != nil {
			m.showDetail = true
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Back):
		if m.query != "" {
			m.clearSearch()
		}
		return m, nil
	case key.Matches(keyMsg, m.keys.Search):
		if m.loading || m.err != nil {
			return m, nil
		}
		m.searching = true
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		focus := m.search.Focus()
		return m, tea.Batch(focus, textinput.Blink)
	}
	return m.handlePostAction(keyMsg)
}

// handlePostAction covers the bindings shared by the list and detail views.
func (m Model) handlePostAction(msg tea.KeyMsg) (Model, tea.Cmd) {
	it := m.selectedItem()
	if it == nil {
		return m, nil
	}
	switch {
	case key.Matches(msg, m.keys.Like):
		return m.toggleLike()
	case key.Matches(msg, m.keys.Save):
		return m.toggleSave()
	case key.Matches(msg, m.keys.Comments):
		return m.toggleComments()
	case key.Matches(msg, m.keys.Comment):
		return m, composeComment(it.Post.ID, it.Post.Username, false)
	case key.Matches(msg, m.keys.CommentEditor):
		return m, composeComment(it.Post.ID, it.Post.Username, true)
	case key.Matches(msg, m.keys.Open):
		return m, openURL(it.Post.ContentURL)
	}
	return m, nil
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Back), key.Matches(msg, m.keys.Quit):
		m.showDetail = false
		return m, nil
	case key.Matches(msg, m.keys.ToggleHints):
		m.showHints = true
		return m, nil
	}
	return m.handlePostAction(msg)
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.clearSearch()
		return m, nil
	case "enter":
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		m.query = m.search.Value()
		m.applyFilter()
	}
	return m, cmd
}
