package tui

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/travelgram/app"
	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/tui/compose"
	"github.com/CrestNiraj12/travelgram/tui/entry"
	"github.com/CrestNiraj12/travelgram/tui/feed"
)

type stubFeed struct {
	posts []domain.Post
}

func (s stubFeed) Load(context.Context, domain.Condition) ([]domain.Post, error) {
	return s.posts, nil
}

type countingTracker struct {
	app.NopTracker
	sessions []domain.Condition
}

func (c *countingTracker) SessionStarted(cond domain.Condition) {
	c.sessions = append(c.sessions, cond)
}

func startedApp(t *testing.T, tracker *countingTracker) App {
	t.Helper()
	s, err := app.StartSession("alice", "254")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	posts := []domain.Post{{ID: "1", Username: "anna", Kind: domain.ContentImage, ContentURL: domain.PlaceholderPath}}
	a := NewApp(context.Background(), Deps{Feed: stubFeed{posts: posts}, Tracker: tracker})

	model, cmd := a.Update(entry.SubmittedMsg{Session: s})
	a = model.(App)
	if cmd == nil {
		t.Fatalf("expected feed init command")
	}
	model, _ = a.Update(feed.PostsLoadedMsg{Seq: 0, Posts: posts})
	return model.(App)
}

func TestApp_StartsAtEntryForm(t *testing.T) {
	a := NewApp(context.Background(), Deps{Feed: stubFeed{}})
	if a.active != entryView {
		t.Fatalf("expected entry view first")
	}
	if !strings.Contains(a.View(), "Username") {
		t.Fatalf("expected entry form in view")
	}
}

func TestApp_SubmittedStartsFeed(t *testing.T) {
	tracker := &countingTracker{}
	a := startedApp(t, tracker)

	if a.active != feedView {
		t.Fatalf("expected feed view after registration")
	}
	if len(tracker.sessions) != 1 || tracker.sessions[0] != domain.Condition2 {
		t.Fatalf("expected one tracked session for condition 2, got %v", tracker.sessions)
	}
	if !strings.Contains(a.View(), "@anna") {
		t.Fatalf("expected loaded post in view")
	}
}

func TestApp_CommentFlow(t *testing.T) {
	a := startedApp(t, &countingTracker{})

	model, _ := a.Update(feed.ComposeCommentMsg{PostID: "1", Author: "anna"})
	a = model.(App)
	if a.active != composeView {
		t.Fatalf("expected compose view")
	}

	model, _ = a.Update(compose.DoneMsg{PostID: "1", Text: "lovely"})
	a = model.(App)
	if a.active != feedView {
		t.Fatalf("expected feed view after compose")
	}
	view := a.View()
	if !strings.Contains(view, "lovely") || !strings.Contains(view, "alice") {
		t.Fatalf("expected the new comment by the session user in view:\n%s", view)
	}
	if a.status != "Comment posted." {
		t.Fatalf("unexpected status %q", a.status)
	}
}

func TestApp_ComposeCancelled(t *testing.T) {
	a := startedApp(t, &countingTracker{})
	model, _ := a.Update(feed.ComposeCommentMsg{PostID: "1", Author: "anna"})
	model, _ = model.(App).Update(compose.DoneMsg{PostID: "1"})
	a = model.(App)

	if a.status != "Cancelled." {
		t.Fatalf("unexpected status %q", a.status)
	}
	if strings.Contains(a.View(), "Hide comments") {
		t.Fatalf("cancel must not add a comment")
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func assertQuit(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestApp_EndSessionKeysQuit(t *testing.T) {
	for _, r := range "xq" {
		a := startedApp(t, &countingTracker{})
		model, cmd := a.Update(keyRune(r))
		if !model.(App).Ended() {
			t.Fatalf("key %q: expected session ended", r)
		}
		assertQuit(t, cmd)
	}
}

func TestApp_QuitInDetailClosesDetail(t *testing.T) {
	a := startedApp(t, &countingTracker{})
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if !a.feed.IsInDetailView() {
		t.Fatalf("expected detail view")
	}

	model, _ = a.Update(keyRune('q'))
	a = model.(App)
	if a.Ended() || a.feed.IsInDetailView() {
		t.Fatalf("q in detail should return to the list without ending")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	model, cmd := model.(App).Update(keyRune('x'))
	if !model.(App).Ended() {
		t.Fatalf("x should end the session from the detail view")
	}
	assertQuit(t, cmd)
}

func TestApp_EndSessionKeysTypedIntoSearch(t *testing.T) {
	a := startedApp(t, &countingTracker{})
	model, _ := a.Update(keyRune('/'))
	a = model.(App)
	if !a.feed.IsCapturingInput() {
		t.Fatalf("expected search to capture input")
	}

	model, _ = a.Update(keyRune('x'))
	model, _ = model.(App).Update(keyRune('q'))
	if model.(App).Ended() {
		t.Fatalf("typing in search must not end the session")
	}
}

func TestApp_CtrlCQuitsWithoutEnding(t *testing.T) {
	a := NewApp(context.Background(), Deps{Feed: stubFeed{}})
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if model.(App).Ended() {
		t.Fatalf("ctrl+c should not count as a finished session")
	}
}

func TestApp_WindowSizeCarriedIntoFeed(t *testing.T) {
	a := NewApp(context.Background(), Deps{Feed: stubFeed{}})
	model, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 50})
	a = model.(App)

	s, _ := app.StartSession("alice", "235")
	model, _ = a.Update(entry.SubmittedMsg{Session: s})
	a = model.(App)
	if a.size.Width != 120 {
		t.Fatalf("expected stored window size")
	}
}
