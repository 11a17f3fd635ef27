package feed

import (
	"strings"

	"github.com/samber/lo"
)

// Each collapsed card takes roughly this many rows including its border.
const cardHeight = 9

// Header, search line and status bar.
const reservedRows = 7

// applyFilter recomputes the visible positions for the current query and
// keeps the cursor in range.
func (m *Model) applyFilter() {
	q := strings.ToLower(strings.TrimSpace(m.query))
	idx := lo.Range(len(m.items))
	if q != "" {
		idx = lo.Filter(idx, func(i int, _ int) bool {
			p := m.items[i].Post
			return strings.Contains(strings.ToLower(p.Caption), q) ||
				strings.Contains(strings.ToLower(p.Username), q)
		})
	}
	m.visible = idx
	if m.cursor >= len(m.visible) {
		m.cursor = max(len(m.visible)-1, 0)
	}
	m.ensureCursorVisible()
}

func (m *Model) clearSearch() {
	m.searching = false
	m.search.Blur()
	m.search.SetValue("")
	m.query = ""
	m.applyFilter()
}

func (m Model) visibleCount() int {
	return max((m.height-reservedRows)/cardHeight, 1)
}

func (m *Model) ensureCursorVisible() {
	if m.cursor < m.start {
		m.start = m.cursor
	}
	if n := m.visibleCount(); m.cursor >= m.start+n {
		m.start = m.cursor - n + 1
	}
	if m.start < 0 {
		m.start = 0
	}
}
