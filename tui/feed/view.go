package feed

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/tui/common"
)

// View renders the feed as a string.
func (m Model) View() string {
	if m.showHints {
		return m.header() + "\n" + m.hintsView()
	}
	if m.showDetail {
		return m.renderDetailView()
	}

	var b strings.Builder
	b.WriteString(m.header())

	if m.searching || m.query != "" {
		b.WriteString("  " + m.search.View() + "\n")
	}
	b.WriteString("\n")

	switch {
	case m.loading && len(m.items) == 0:
		b.WriteString(fmt.Sprintf("  %s Loading feed...\n", m.spinner.View()))
	case m.err != nil:
		b.WriteString(common.ErrorStyle.Render("  " + errorText(m.err)))
		b.WriteString("\n\n  Press r to retry.\n")
	case len(m.items) == 0:
		b.WriteString("  No posts yet.\n")
	case len(m.visible) == 0:
		b.WriteString("  " + msgNoMatches + "\n")
	default:
		b.WriteString(m.renderList())
	}

	b.WriteString("\n")
	if m.loading && len(m.items) > 0 {
		b.WriteString(fmt.Sprintf("  %s Refreshing...\n", m.spinner.View()))
	}
	b.WriteString(m.helpView())

	return b.String()
}

func (m Model) renderList() string {
	end := min(m.start+m.visibleCount(), len(m.visible))
	cardWidth := m.cardWidth()

	var list strings.Builder
	for pos := m.start; pos < end; pos++ {
		card := m.renderCard(m.items[m.visible[pos]], cardWidth-4)
		if pos == m.cursor {
			card = common.SelectedStyle.Width(cardWidth).Render(card)
		} else {
			card = common.UnselectedStyle.Width(cardWidth).Render(card)
		}
		list.WriteString(lipgloss.NewStyle().MarginLeft(1).Render(card))
		list.WriteString("\n")
	}

	if len(m.visible) > end-m.start {
		list.WriteString(common.MetadataStyle.Render(
			fmt.Sprintf("  %d of %d posts", m.cursor+1, len(m.visible))))
		list.WriteString("\n")
	}
	return list.String()
}

func (m Model) renderCard(it PostItem, width int) string {
	p := it.Post

	var b strings.Builder
	head := common.AvatarStyle.Render(common.Initials(p.Username)) + " " +
		common.AuthorStyle.Render("@"+p.Username)
	if p.Location != "" {
		head += "  " + common.LocationStyle.Render(p.Location)
	}
	b.WriteString(common.ClampLines(head, width) + "\n")
	b.WriteString(common.MediaStyle.Render(common.ClampLines(mediaLabel(p), width)) + "\n")
	b.WriteString(likeLine(it) + "\n")

	if p.Caption != "" {
		caption := truncateToTwoLines(p.Caption, width)
		b.WriteString(common.ContentStyle.Render(caption) + "\n")
	}

	if label := commentsToggleLabel(it); label != "" {
		b.WriteString(common.MetadataStyle.Render(label) + "\n")
	}
	if it.ShowComments {
		for _, c := range p.Comments {
			b.WriteString(m.renderComment(c, width) + "\n")
		}
	}

	b.WriteString(common.TimestampStyle.Render(strings.ToUpper(domain.RelativeAge(p.Timestamp, m.now()))))
	return b.String()
}

func (m Model) cardWidth() int {
	return min(max(m.width-4, 30), 72)
}

func (m Model) helpView() string {
	var items []string

	switch {
	case m.searching:
		items = []string{"enter: apply", "esc: clear"}
	case len(m.visible) > 0:
		items = []string{
			"j/k: move",
			"l: like",
			"v: comments",
			"c/C: comment",
			"enter: details",
			"/: search",
			"?: keys",
			"x: end session",
		}
	default:
		items = []string{
			"r: reload",
			"/: search",
			"x: end session",
		}
	}

	return common.StatusBarStyle.Render("  " + strings.Join(items, " • "))
}

func (m Model) hintsView() string {
	bindings := []struct{ keys, desc string }{
		{"j/k, ↑/↓", "move between posts"},
		{"enter", "open post details"},
		{"esc", "back or clear search"},
		{"l", "like or unlike"},
		{"s", "save or unsave"},
		{"v", "show or hide comments"},
		{"c", "write a comment"},
		{"C", "write a comment in $EDITOR"},
		{"o", "open media in browser"},
		{"/", "search captions and users"},
		{"r", "reload the feed"},
		{"x, q", "end the session"},
	}

	var b strings.Builder
	b.WriteString(common.LabelStyle.Render("  Keys") + "\n\n")
	for _, kb := range bindings {
		b.WriteString(fmt.Sprintf("  %-10s %s\n", kb.keys, common.MetadataStyle.Render(kb.desc)))
	}
	b.WriteString(common.StatusBarStyle.Render("  ?/esc: close"))
	return b.String()
}
