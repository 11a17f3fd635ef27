package feed

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/travelgram/app"
	"github.com/CrestNiraj12/travelgram/domain"
)

var fixedNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.Local)

type stubFeed struct {
	posts []domain.Post
	err   error
	got   domain.Condition
	calls int
}

func (s *stubFeed) Load(_ context.Context, cond domain.Condition) ([]domain.Post, error) {
	s.calls++
	s.got = cond
	if s.err != nil {
		return nil, s.err
	}
	return s.posts, nil
}

type likeEvent struct {
	postID string
	liked  bool
}

type recordingTracker struct {
	likes    []likeEvent
	comments []string
}

func (r *recordingTracker) SessionStarted(domain.Condition) {}
func (r *recordingTracker) Liked(_ domain.Condition, postID string, liked bool) {
	r.likes = append(r.likes, likeEvent{postID: postID, liked: liked})
}
func (r *recordingTracker) Commented(_ domain.Condition, postID string) {
	r.comments = append(r.comments, postID)
}

func sessionContext(t *testing.T) context.Context {
	t.Helper()
	s, err := app.StartSession("alice", "235")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return app.WithSession(context.Background(), s)
}

func newTestModel(t *testing.T, feed *stubFeed, tracker *recordingTracker) Model {
	t.Helper()
	if feed == nil {
		feed = &stubFeed{}
	}
	var tr app.InteractionTracker = app.NopTracker{}
	if tracker != nil {
		tr = tracker
	}
	m := New(sessionContext(t), feed, tr)
	m.now = func() time.Time { return fixedNow }
	m.width = 100
	m.height = 60
	return m
}

func loadedModel(t *testing.T, tracker *recordingTracker, posts ...domain.Post) Model {
	t.Helper()
	m := newTestModel(t, nil, tracker)
	m, _ = m.Update(PostsLoadedMsg{Seq: m.reqSeq, Posts: posts})
	return m
}

func makePost(id, username, caption string) domain.Post {
	return domain.Post{
		ID:         id,
		Username:   username,
		ContentURL: "https://example.com/media/" + id + ".jpg",
		Kind:       domain.ContentImage,
		Caption:    caption,
		Likes:      10,
		Timestamp:  "6/12/2024 12:00:00",
	}
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func typeText(m Model, text string) Model {
	for _, r := range text {
		m, _ = m.Update(keyRune(r))
	}
	return m
}
