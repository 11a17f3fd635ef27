package feed

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/travelgram/domain"
)

// toggleLike flips the liked flag on the selected post and moves its count
// by one in the matching direction.
func (m Model) toggleLike() (Model, tea.Cmd) {
	it := m.selectedItem()
	if it == nil {
		return m, nil
	}
	it.Liked = !it.Liked
	if it.Liked {
		it.Post.Likes++
	} else {
		it.Post.Likes--
	}
	m.tracker.Liked(m.session.Condition(), it.Post.ID, it.Liked)
	return m, nil
}

func (m Model) toggleSave() (Model, tea.Cmd) {
	if it := m.selectedItem(); it != nil {
		it.Saved = !it.Saved
	}
	return m, nil
}

func (m Model) toggleComments() (Model, tea.Cmd) {
	if it := m.selectedItem(); it != nil {
		it.ShowComments = !it.ShowComments
	}
	return m, nil
}

func (m Model) handleCommentMsg(msg tea.Msg) (Model, tea.Cmd) {
	add, ok := msg.(AddCommentMsg)
	if !ok {
		return m, nil
	}
	text := strings.TrimSpace(add.Text)
	if text == "" {
		return m, nil
	}
	it := m.itemByID(add.PostID)
	if it == nil {
		return m, nil
	}

	now := m.now()
	it.Post.PrependComment(domain.Comment{
		ID:        fmt.Sprintf("c%d", now.UnixMilli()),
		Username:  m.session.Username(),
		Text:      text,
		Timestamp: now.UTC().Format(domain.ISOLayout),
	})
	it.ShowComments = true
	m.tracker.Commented(m.session.Condition(), it.Post.ID)
	return m, nil
}
