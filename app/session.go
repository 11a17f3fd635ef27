package app

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/CrestNiraj12/travelgram/domain"
)

// Session is the participant identity for one browsing session. It is
// created once by StartSession and never changes afterwards.
type Session struct {
	username  string
	condition domain.Condition
}

// Username returns the participant's chosen name.
func (s Session) Username() string { return s.username }

// Condition returns the experimental condition selected at entry.
func (s Session) Condition() domain.Condition { return s.condition }

type registration struct {
	Username string `validate:"required"`
	Code     string `validate:"required"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// StartSession validates the entry form and resolves the code to a condition.
// It returns domain.ErrMissingCredentials when either field is blank and
// domain.ErrInvalidCode for an unknown code.
func StartSession(username, code string) (Session, error) {
	reg := registration{
		Username: strings.TrimSpace(username),
		Code:     strings.TrimSpace(code),
	}
	if err := validate.Struct(reg); err != nil {
		return Session{}, domain.ErrMissingCredentials
	}

	cond, err := domain.ConditionForCode(reg.Code)
	if err != nil {
		return Session{}, err
	}
	return Session{username: reg.Username, condition: cond}, nil
}

type sessionKey struct{}

// WithSession scopes s to ctx and everything derived from it.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session owning ctx, or domain.ErrNoSession.
func SessionFromContext(ctx context.Context) (Session, error) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	if !ok || !s.condition.Valid() {
		return Session{}, domain.ErrNoSession
	}
	return s, nil
}
