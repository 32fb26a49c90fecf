package service

import (
	"context"
	"errors"

	"wuddevdet/internal/models"
	"wuddevdet/internal/repository"
)

const CurrentUserID = "currentUser"

var ErrAdminToggleDisabled = errors.New("log in before switching admin mode")

type sessionKey struct{}

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session stored by WithSession, or a guest
// session when there is none.
func SessionFromContext(ctx context.Context) models.Session {
	s, _ := ctx.Value(sessionKey{}).(models.Session)
	return s
}

// Identity tells the board who is asking.
type Identity interface {
	Session(ctx context.Context) models.Session
}

type contextIdentity struct{}

func NewContextIdentity() Identity {
	return contextIdentity{}
}

func (contextIdentity) Session(ctx context.Context) models.Session {
	return SessionFromContext(ctx)
}

type SessionService interface {
	Identity
	ToggleLogin(s models.Session) models.Session
	ToggleAdmin(s models.Session) (models.Session, error)
	ActingAuthor(ctx context.Context, s models.Session) models.Author
}

type sessionService struct {
	Identity
	profiles repository.ProfileRepository
}

func NewSessionService(identity Identity, profiles repository.ProfileRepository) SessionService {
	return &sessionService{Identity: identity, profiles: profiles}
}

// ToggleLogin flips the logged-in flag. Logging out drops admin mode too.
func (s *sessionService) ToggleLogin(session models.Session) models.Session {
	session.LoggedIn = !session.LoggedIn
	if !session.LoggedIn {
		session.IsAdmin = false
	}
	return session
}

func (s *sessionService) ToggleAdmin(session models.Session) (models.Session, error) {
	if !session.LoggedIn {
		return session, ErrAdminToggleDisabled
	}
	session.IsAdmin = !session.IsAdmin
	return session, nil
}

func (s *sessionService) ActingAuthor(ctx context.Context, session models.Session) models.Author {
	author := models.Author{
		ID:     CurrentUserID,
		Name:   "Member User",
		Avatar: models.DefaultAvatar,
	}
	if session.UserID != "" {
		author.ID = session.UserID
	}
	if session.IsAdmin {
		author.Name = "Admin User"
	}

	if s.profiles != nil {
		if avatar, err := s.profiles.GetAvatar(ctx, author.ID); err == nil && avatar != "" {
			author.Avatar = avatar
		}
	}

	return author
}
