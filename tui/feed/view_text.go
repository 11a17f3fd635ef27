package feed

import (
	"fmt"
	"path"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/tui/common"
)

func truncateToTwoLines(text string, width int) string {
	if width < 12 {
		width = 12
	}
	// Render with width to handle both explicit newlines and wrapping.
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= 2 {
		return wrapped
	}
	return strings.Join(lines[:2], "\n") + "..."
}

// mediaLabel describes the post media without rendering it.
func mediaLabel(p domain.Post) string {
	if p.ContentURL == domain.PlaceholderPath {
		return "▣ no media"
	}
	icon := "▣ photo"
	if p.Kind == domain.ContentVideo {
		icon = "▶ video"
	}
	return fmt.Sprintf("%s · %s", icon, path.Base(p.ContentURL))
}

func likeLine(it PostItem) string {
	heart := common.MetadataStyle.Render("♡")
	if it.Liked {
		heart = common.LikeActiveStyle.Render("♥")
	}
	line := fmt.Sprintf("%s %s likes", heart, common.FormatCount(it.Post.Likes))
	if it.Saved {
		line += "  " + common.SavedStyle.Render("★ saved")
	}
	return line
}

func commentsToggleLabel(it PostItem) string {
	n := len(it.Post.Comments)
	switch {
	case n == 0:
		return ""
	case it.ShowComments:
		return "Hide comments"
	case n == 1:
		return "View 1 comment"
	default:
		return fmt.Sprintf("View all %d comments", n)
	}
}

func (m Model) renderComment(c domain.Comment, width int) string {
	head := common.AuthorStyle.Render(c.Username) + " " +
		common.TimestampStyle.Render(domain.RelativeAge(c.Timestamp, m.now()))
	body := common.ContentStyle.Width(width).Render(c.Text)
	return head + "\n" + body
}

func (m Model) header() string {
	title := common.AppTitleStyle.Render("Travelgram")
	tagline := common.TaglineStyle.Render("<Share your journey>")
	who := ""
	if name := m.session.Username(); name != "" {
		who = common.MetadataStyle.Render("  signed in as @" + name)
	}
	return title + tagline + who + "\n"
}
