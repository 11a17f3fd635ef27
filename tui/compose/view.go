package compose

import (
	"fmt"
	"strings"

	"github.com/CrestNiraj12/travelgram/tui/common"
)

// View renders the compose view based on the active mode.
func (m Model) View() string {
	switch m.mode {
	case editorMode:
		return m.status + "\n"

	case inlineMode:
		var b strings.Builder
		b.WriteString(common.AppTitleStyle.Render("Travelgram"))
		b.WriteString("  Comment on " + common.AuthorStyle.Render("@"+m.author) + "\n\n")
		b.WriteString(m.textarea.View())
		b.WriteString("\n\n")
		b.WriteString(common.StatusBarStyle.Render(
			fmt.Sprintf("  ctrl+d: post • esc: cancel • %d/%d chars",
				len([]rune(m.textarea.Value())), CharLimit),
		))
		return b.String()
	}

	return ""
}
