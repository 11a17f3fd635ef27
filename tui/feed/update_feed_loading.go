package feed

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleFeedLoadingMsg(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case PostsLoadedMsg:
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		// A reload discards local likes, saves and live comments; the
		// sheets are the only source of truth between sessions.
		items := make([]PostItem, len(msg.Posts))
		for i, p := range msg.Posts {
			items[i] = PostItem{Post: p}
		}
		m.items = items
		m.loading = false
		m.err = nil
		m.cursor = 0
		m.start = 0
		m.showDetail = false
		m.applyFilter()
		return m, nil

	case PostsErrorMsg:
		if msg.Seq != m.reqSeq {
			return m, nil
		}
		// Either sheet failing fails the whole load.
		m.items = nil
		m.visible = nil
		m.loading = false
		m.err = msg.Err
		m.cursor = 0
		m.start = 0
		m.showDetail = false
		return m, nil
	}
	return m, nil
}

// reload starts a fresh load and drops any response still in flight.
func (m Model) reload() (Model, tea.Cmd) {
	m.reqSeq++
	m.loading = true
	m.err = nil
	return m, tea.Batch(m.fetchPosts(m.reqSeq), m.spinner.Tick)
}
