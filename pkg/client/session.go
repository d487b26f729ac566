package client

import (
	"context"
	"io"
	"strings"
	"sync"
)

// Session manages the authenticated admin state on top of a Client: login,
// logout, token validation and profile updates. The current user is cached in
// memory; the token lives in the client's token store.
type Session struct {
	client *Client

	mu   sync.RWMutex
	user *User
}

// NewSession creates a session bound to the client's token store.
func NewSession(c *Client) *Session {
	return &Session{client: c}
}

// LoginResult is the outcome of a login attempt.
type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

// Login exchanges credentials for an access token. On success the token is
// persisted and the user cached; on failure the error describes the rejection
// and no state changes.
func (s *Session) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var result LoginResult
	body := map[string]string{"email": email, "password": password}
	if err := s.client.Post(ctx, "/admin/login", body, &result); err != nil {
		return nil, err
	}

	if err := s.client.Tokens().Save(result.Token); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = result.User
	s.mu.Unlock()

	return &result, nil
}

// Logout clears the persisted token and the cached user. It performs no
// network call.
func (s *Session) Logout() error {
	s.mu.Lock()
	s.user = nil
	s.mu.Unlock()

	return s.client.Tokens().Clear()
}

// CheckAuth validates the persisted token against the server and refreshes
// the cached user. Any failure clears the session completely.
func (s *Session) CheckAuth(ctx context.Context) (*User, error) {
	if s.client.Tokens().Token() == "" {
		return nil, &APIError{Kind: KindUnauthorized, Message: "no stored session"}
	}

	var user User
	if err := s.client.Get(ctx, "/admin/profile", nil, &user); err != nil {
		_ = s.Logout()

		return nil, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return &user, nil
}

// ProfileUpdate carries the optional profile changes. Email is read-only and
// deliberately absent.
type ProfileUpdate struct {
	Name     string
	Password string

	// AvatarFilename and Avatar together attach a replacement avatar image.
	AvatarFilename string
	Avatar         io.Reader
}

// UpdateProfile changes the logged-in admin's editable fields and refreshes
// the cached user.
func (s *Session) UpdateProfile(ctx context.Context, update ProfileUpdate) (*User, error) {
	payload := NewPayload()
	if update.Name != "" {
		payload.Set("name", update.Name)
	}
	if update.Password != "" {
		payload.Set("password", update.Password)
	}
	if update.Avatar != nil {
		payload.AddFile("avatar", update.AvatarFilename, update.Avatar)
	}

	var user User
	if err := s.client.PutForm(ctx, "/admin/profile", payload, &user); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()

	return &user, nil
}

// RegisterAdmin creates a new back-office account. Requires the admin role.
func (s *Session) RegisterAdmin(ctx context.Context, name, email, password, role string) (*User, error) {
	var user User
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}
	if err := s.client.Post(ctx, "/admin/register", body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}

// User returns the cached user, nil when logged out.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user
}

// IsAdmin is derived from the cached user's role at read time, never stored.
func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.user != nil && strings.EqualFold(s.user.Role, "admin")
}

// IsAuthenticated reports whether a token is currently held.
func (s *Session) IsAuthenticated() bool {
	return s.client.Tokens().Token() != ""
}
