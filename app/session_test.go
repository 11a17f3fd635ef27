package app

import (
	"context"
	"errors"
	"testing"

	"github.com/CrestNiraj12/travelgram/domain"
)

func TestStartSession(t *testing.T) {
	s, err := StartSession("  alice ", " 235 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Username() != "alice" || s.Condition() != domain.Condition1 {
		t.Fatalf("unexpected session: %#v", s)
	}
}

func TestStartSession_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		username string
		code     string
		want     error
	}{
		{name: "unknown code", username: "bob", code: "999", want: domain.ErrInvalidCode},
		{name: "blank username", username: "   ", code: "235", want: domain.ErrMissingCredentials},
		{name: "blank code", username: "bob", code: "", want: domain.ErrMissingCredentials},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, err := StartSession(tc.username, tc.code)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if s != (Session{}) {
				t.Fatalf("rejected entry must not produce a session: %#v", s)
			}
		})
	}
}

func TestSessionFromContext(t *testing.T) {
	if _, err := SessionFromContext(context.Background()); !errors.Is(err, domain.ErrNoSession) {
		t.Fatalf("expected ErrNoSession outside a session, got %v", err)
	}

	s, _ := StartSession("carol", "295")
	ctx := WithSession(context.Background(), s)
	got, err := SessionFromContext(ctx)
	if err != nil || got != s {
		t.Fatalf("expected scoped session, got %#v, %v", got, err)
	}
}
