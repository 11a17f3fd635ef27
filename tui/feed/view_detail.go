package feed

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/tui/common"
)

func (m Model) renderDetailView() string {
	it := m.selectedItem()
	if it == nil {
		return "No post selected."
	}
	p := it.Post

	var b strings.Builder
	b.WriteString(m.header())

	crumbStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#555555")).MarginBottom(1)
	b.WriteString(crumbStyle.Render("  Feed > @"+p.Username) + "\n")

	cardWidth := m.cardWidth()
	inner := cardWidth - 6
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#F5A97F")).
		Padding(1, 2).
		MarginLeft(2).
		Width(cardWidth)

	var card strings.Builder
	card.WriteString(common.AvatarStyle.Render(common.Initials(p.Username)) + " " +
		common.AuthorStyle.Render("@"+p.Username) + "\n")
	if p.Location != "" {
		card.WriteString(common.LocationStyle.Render(p.Location) + "\n")
	}
	card.WriteString(common.TimestampStyle.Render(domain.RelativeAge(p.Timestamp, m.now())) + "\n\n")

	card.WriteString(common.MediaStyle.Render(mediaLabel(p)) + "\n")
	if p.ContentURL != domain.PlaceholderPath {
		card.WriteString(common.MetadataStyle.Render(common.ClampLines(p.ContentURL, inner)) + "\n")
	}
	card.WriteString("\n")

	if p.Caption != "" {
		card.WriteString(common.ContentStyle.Width(inner).Render(p.Caption) + "\n\n")
	}
	card.WriteString(likeLine(*it))

	b.WriteString(cardStyle.Render(card.String()))

	b.WriteString("\n\n  " + lipgloss.NewStyle().Bold(true).Underline(true).Render("Comments") + "\n")
	if len(p.Comments) == 0 {
		b.WriteString(common.MetadataStyle.Render("  No comments yet. Press c to add one.") + "\n")
	}
	for _, c := range p.Comments {
		b.WriteString(lipgloss.NewStyle().MarginLeft(2).Render(m.renderComment(c, inner)) + "\n")
	}

	b.WriteString("\n" + common.StatusBarStyle.Render("  l: like • s: save • c/C: comment • o: open • esc: back • x: end session"))
	return b.String()
}
