package feed

import (
	"net/url"
	"os/exec"
	"runtime"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/travelgram/app"
)

func (m Model) fetchPosts(reqSeq int) tea.Cmd {
	svc := m.feed
	ctx := m.ctx
	return func() tea.Msg {
		session, err := app.SessionFromContext(ctx)
		if err != nil {
			return PostsErrorMsg{Seq: reqSeq, Err: err}
		}
		posts, err := svc.Load(ctx, session.Condition())
		if err != nil {
			return PostsErrorMsg{Seq: reqSeq, Err: err}
		}
		return PostsLoadedMsg{Seq: reqSeq, Posts: posts}
	}
}

func composeComment(postID, author string, useEditor bool) tea.Cmd {
	return func() tea.Msg {
		return ComposeCommentMsg{PostID: postID, Author: author, UseEditor: useEditor}
	}
}

func openURL(rawURL string) tea.Cmd {
	if !isSafeExternalURL(rawURL) {
		return nil
	}
	return func() tea.Msg {
		_ = browserCommand(rawURL).Start()
		return nil
	}
}

func browserCommand(rawURL string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", rawURL)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", rawURL)
	default:
		return exec.Command("xdg-open", rawURL)
	}
}

func isSafeExternalURL(raw string) bool {
	parsed, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if parsed.Host == "" {
		return false
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https":
		return true
	default:
		return false
	}
}
