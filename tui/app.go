package tui

import (
	"context"
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/CrestNiraj12/travelgram/app"
	"github.com/CrestNiraj12/travelgram/tui/common"
	"github.com/CrestNiraj12/travelgram/tui/compose"
	"github.com/CrestNiraj12/travelgram/tui/entry"
	"github.com/CrestNiraj12/travelgram/tui/feed"
)

// Deps holds all dependencies the TUI needs. Plain struct, not a DI container.
type Deps struct {
	Feed    app.FeedService
	Tracker app.InteractionTracker
	Editor  compose.Editor
	Logger  *slog.Logger
}

type activeView int

const (
	entryView activeView = iota
	feedView
	composeView
)

// App is the root Bubble Tea model. It routes between sub-views.
type App struct {
	deps    Deps
	ctx     context.Context
	active  activeView
	entry   entry.Model
	feed    feed.Model
	compose compose.Model
	keys    common.KeyMap
	size    tea.WindowSizeMsg
	status  string // Transient status message (e.g. "Comment posted.")
	ended   bool
}

// NewApp creates the root model with all dependencies wired. The session
// begins at the entry form.
func NewApp(ctx context.Context, deps Deps) App {
	if deps.Tracker == nil {
		deps.Tracker = app.NopTracker{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}
	return App{
		deps:   deps,
		ctx:    ctx,
		active: entryView,
		entry:  entry.New(),
		keys:   common.DefaultKeyMap(),
	}
}

// Init delegates to the active sub-model.
func (a App) Init() tea.Cmd {
	return a.entry.Init()
}

// Ended reports whether the participant finished the session, as opposed
// to quitting with ctrl+c.
func (a App) Ended() bool {
	return a.ended
}

// Update handles messages and routes to the active sub-model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, a.keys.ForceQuit) {
			return a, tea.Quit
		}
		// x ends the session anywhere in the feed; q only from the list,
		// since it closes the detail view.
		if a.active == feedView && !a.feed.IsCapturingInput() &&
			(key.Matches(msg, a.keys.EndSession) ||
				(key.Matches(msg, a.keys.Quit) && !a.feed.IsInDetailView())) {
			a.ended = true
			a.deps.Logger.Info("session ended")
			return a, tea.Quit
		}

	case tea.WindowSizeMsg:
		a.size = msg
		a.feed, _ = a.feed.Update(msg)
		return a, nil

	case entry.SubmittedMsg:
		a.ctx = app.WithSession(a.ctx, msg.Session)
		a.deps.Tracker.SessionStarted(msg.Session.Condition())
		a.deps.Logger.Info("session started",
			"condition", string(msg.Session.Condition()))
		a.active = feedView
		a.status = ""
		a.feed = feed.New(a.ctx, a.deps.Feed, a.deps.Tracker)
		if a.size.Width > 0 {
			a.feed, _ = a.feed.Update(a.size)
		}
		return a, a.feed.Init()

	case feed.PostsLoadedMsg:
		a.feed, _ = a.feed.Update(msg)
		return a, nil

	case feed.PostsErrorMsg:
		a.deps.Logger.Error("feed load failed", "err", msg.Err)
		a.feed, _ = a.feed.Update(msg)
		return a, nil

	case feed.ComposeCommentMsg:
		a.active = composeView
		a.status = ""
		if msg.UseEditor {
			a.compose = compose.NewEditor(a.deps.Editor, msg.PostID, msg.Author)
		} else {
			a.compose = compose.NewInline(msg.PostID, msg.Author)
		}
		return a, a.compose.Init()

	case compose.DoneMsg:
		a.active = feedView
		if msg.Err != nil {
			a.deps.Logger.Warn("compose failed", "post", msg.PostID, "err", msg.Err)
			a.status = "Error: " + msg.Err.Error()
			return a, nil
		}
		if msg.Text == "" {
			a.status = "Cancelled."
			return a, nil
		}
		a.feed, _ = a.feed.Update(feed.AddCommentMsg{PostID: msg.PostID, Text: msg.Text})
		a.status = "Comment posted."
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.feed, cmd = a.feed.Update(msg)
		return a, cmd
	}

	// Delegate to the active sub-model.
	switch a.active {
	case entryView:
		updated, cmd := a.entry.Update(msg)
		a.entry = updated
		return a, cmd
	case feedView:
		if _, ok := msg.(tea.KeyMsg); ok {
			a.status = ""
		}
		updated, cmd := a.feed.Update(msg)
		a.feed = updated
		return a, cmd
	case composeView:
		updated, cmd := a.compose.Update(msg)
		a.compose = updated
		return a, cmd
	}

	return a, nil
}

// View renders the active sub-model.
func (a App) View() string {
	var s string

	switch a.active {
	case entryView:
		s = a.entry.View()
	case feedView:
		s = a.feed.View()
	case composeView:
		s = a.compose.View()
	}

	// Append transient status if present.
	if a.status != "" {
		s += "\n" + common.StatusBarStyle.Render(a.status)
	}

	return s
}
