package feed

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/CrestNiraj12/travelgram/app"
	"github.com/CrestNiraj12/travelgram/domain"
	"github.com/CrestNiraj12/travelgram/tui/common"
)

// Participant-facing load failures.
const (
	msgNoSession   = "No condition set. Please register first."
	msgConfigError = "Configuration error: missing sheet ID."
	msgLoadFailed  = "Failed to load data. Please try again later."
	msgNoMatches   = "No posts found matching your search."
)

// --- Messages ---

// PostsLoadedMsg is sent when the feed load completes successfully.
type PostsLoadedMsg struct {
	Seq   int
	Posts []domain.Post
}

// PostsErrorMsg is sent when the feed load fails.
type PostsErrorMsg struct {
	Seq int
	Err error
}

// ComposeCommentMsg asks the root model to open the comment composer.
type ComposeCommentMsg struct {
	PostID    string
	Author    string
	UseEditor bool
}

// AddCommentMsg delivers a finished comment for a post.
type AddCommentMsg struct {
	PostID string
	Text   string
}

// --- Model ---

// PostItem is a post plus the participant's local interaction state.
type PostItem struct {
	Post         domain.Post
	Liked        bool
	Saved        bool
	ShowComments bool
}

// Model holds the state for the feed view. All state belongs to one
// session and is discarded with it.
type Model struct {
	feed    app.FeedService
	tracker app.InteractionTracker
	ctx     context.Context
	session app.Session

	items   []PostItem
	visible []int // Indexes into items matching the search query
	cursor  int   // Position in visible
	start   int   // First visible position rendered

	loading bool
	err     error
	reqSeq  int

	searching bool
	search    textinput.Model
	query     string

	showDetail bool
	showHints  bool

	keys    common.KeyMap
	spinner spinner.Model
	width   int
	height  int
	now     func() time.Time
}

// New creates a feed model scoped to the session carried by ctx. Without a
// session the model starts in its error state and never fetches.
func New(ctx context.Context, feed app.FeedService, tracker app.InteractionTracker) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#F5A97F"))

	ti := textinput.New()
	ti.Placeholder = "Search captions or users"
	ti.Prompt = "/ "
	ti.CharLimit = 80

	if tracker == nil {
		tracker = app.NopTracker{}
	}
	session, err := app.SessionFromContext(ctx)

	return Model{
		feed:    feed,
		tracker: tracker,
		ctx:     ctx,
		session: session,
		loading: err == nil,
		err:     err,
		search:  ti,
		keys:    common.DefaultKeyMap(),
		spinner: s,
		width:   80,
		height:  40,
		now:     time.Now,
	}
}

// Init starts the initial feed load.
func (m Model) Init() tea.Cmd {
	if errors.Is(m.err, domain.ErrNoSession) {
		return nil
	}
	return tea.Batch(
		m.fetchPosts(m.reqSeq),
		m.spinner.Tick,
	)
}

// posts returns every loaded post in presentation order.
func (m Model) posts() []domain.Post {
	out := make([]domain.Post, 0, len(m.items))
	for _, it := range m.items {
		out = append(out, it.Post)
	}
	return out
}

// visiblePosts returns the posts matching the current search.
func (m Model) visiblePosts() []domain.Post {
	out := make([]domain.Post, 0, len(m.visible))
	for _, idx := range m.visible {
		out = append(out, m.items[idx].Post)
	}
	return out
}

// IsInDetailView reports whether a single post is open.
func (m Model) IsInDetailView() bool {
	return m.showDetail
}

// IsCapturingInput reports whether keystrokes belong to the search box or
// the key help overlay rather than to feed actions.
func (m Model) IsCapturingInput() bool {
	return m.searching || m.showHints
}

func (m Model) selectedPost() (domain.Post, bool) {
	it := m.selectedItem()
	if it == nil {
		return domain.Post{}, false
	}
	return it.Post, true
}

func (m *Model) selectedItem() *PostItem {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return &m.items[m.visible[m.cursor]]
}

func (m *Model) itemByID(id string) *PostItem {
	for i := range m.items {
		if m.items[i].Post.ID == id {
			return &m.items[i]
		}
	}
	return nil
}

// errorText maps a load failure to the message shown in place of the feed.
func errorText(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoSession):
		return msgNoSession
	case errors.Is(err, domain.ErrMissingSourceID):
		return msgConfigError
	default:
		return msgLoadFailed
	}
}
