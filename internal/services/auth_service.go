package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"packcatalog/internal/domain"
)

// ErrBadCreds is returned for an unknown username and for a wrong password.
var ErrBadCreds = errors.New("invalid username or password")

// dummyHash keeps unknown-user logins as slow as wrong-password logins.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcrypt.DefaultCost)

type AuthService struct {
	Users    Storage
	Sessions Sessions
	TTL      time.Duration
}

func NewAuthService(users Storage, sessions Sessions, ttl time.Duration) *AuthService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &AuthService{Users: users, Sessions: sessions, TTL: ttl}
}

func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

// Login checks the credentials and opens a new session. The returned sid is
// the cookie value.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	u, err := s.Users.GetUserByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return "", nil, err
		}
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return "", nil, ErrBadCreds
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return "", nil, ErrBadCreds
	}

	sid := uuid.NewString()
	if err := s.Sessions.BindSession(ctx, sid, u.ID, s.TTL); err != nil {
		return "", nil, err
	}
	return sid, u, nil
}

func (s *AuthService) Logout(ctx context.Context, sid string) error {
	if sid == "" {
		return nil
	}
	return s.Sessions.UnbindSession(ctx, sid)
}

// CurrentUser resolves a session id. ErrUnauthenticated covers missing,
// unknown and expired sessions.
func (s *AuthService) CurrentUser(ctx context.Context, sid string) (*domain.User, error) {
	if sid == "" {
		return nil, domain.ErrUnauthenticated
	}
	u, err := s.Sessions.SessionUser(ctx, sid)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, domain.ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
