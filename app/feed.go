package app

import (
	"context"

	"github.com/CrestNiraj12/travelgram/domain"
)

// FeedService loads the feed for one experimental condition.
type FeedService interface {
	// Load returns posts with their comments attached, newest comment first,
	// in presentation order. Either table failing fails the whole load.
	Load(ctx context.Context, condition domain.Condition) ([]domain.Post, error)
}

// InteractionTracker observes what a participant does during a session.
// Implementations must not block the UI.
type InteractionTracker interface {
	SessionStarted(condition domain.Condition)
	Liked(condition domain.Condition, postID string, liked bool)
	Commented(condition domain.Condition, postID string)
}

// NopTracker discards all interactions.
type NopTracker struct{}

func (NopTracker) SessionStarted(domain.Condition)      {}
func (NopTracker) Liked(domain.Condition, string, bool) {}
func (NopTracker) Commented(domain.Condition, string)   {}
