package client

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// Storage keys written by Session.
const (
	TokenKey = "token"
	UserKey  = "user"
)

// ErrNotLoggedIn is returned by calls that need a token when there is none.
var ErrNotLoggedIn = errors.New("client: not logged in")

// Session holds the signed-in user and token. It only mirrors what the server
// confirmed: state changes after a successful call and is persisted to Storage.
type Session struct {
	API     API
	Storage Storage

	mu    sync.RWMutex
	user  *User
	token string
}

func NewSession(api API, storage Storage) *Session {
	if storage == nil {
		storage = NewMemoryStorage()
	}
	return &Session{API: api, Storage: storage}
}

// Register creates an account. It does not sign in.
func (s *Session) Register(ctx context.Context, in RegisterRequest) (*User, error) {
	return s.API.Register(ctx, in)
}

// Login signs in and persists token and user. A failed login leaves the
// previous state untouched.
func (s *Session) Login(ctx context.Context, email, password, role string) (*User, error) {
	res, err := s.API.Login(ctx, email, password, role)
	if err != nil {
		return nil, err
	}
	b, err := json.Marshal(res.User)
	if err != nil {
		return nil, err
	}
	if err := s.Storage.Set(TokenKey, res.Token); err != nil {
		return nil, err
	}
	if err := s.Storage.Set(UserKey, string(b)); err != nil {
		return nil, err
	}
	u := res.User
	s.mu.Lock()
	s.user, s.token = &u, res.Token
	s.mu.Unlock()
	return &u, nil
}

// Restore reloads token and user from Storage. Missing or unreadable entries
// leave the session signed out.
func (s *Session) Restore() error {
	token, okToken, err := s.Storage.Get(TokenKey)
	if err != nil {
		return err
	}
	raw, okUser, err := s.Storage.Get(UserKey)
	if err != nil {
		return err
	}
	var u *User
	if okUser && raw != "" {
		var decoded User
		if err := json.Unmarshal([]byte(raw), &decoded); err == nil {
			u = &decoded
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if !okToken || token == "" || u == nil {
		s.user, s.token = nil, ""
		return nil
	}
	s.user, s.token = u, token
	return nil
}

// Logout ends the server session when there is one and always clears local state.
func (s *Session) Logout(ctx context.Context) error {
	var apiErr error
	if token := s.Token(); token != "" {
		apiErr = s.API.Logout(ctx, token)
	}
	s.mu.Lock()
	s.user, s.token = nil, ""
	s.mu.Unlock()
	if err := s.Storage.Remove(TokenKey); err != nil {
		return err
	}
	if err := s.Storage.Remove(UserKey); err != nil {
		return err
	}
	return apiErr
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the signed-in user, or nil.
func (s *Session) User() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Profile.Skills = append([]string(nil), s.user.Profile.Skills...)
	return &u
}

// RefreshProfile reloads the user from the server and persists it.
func (s *Session) RefreshProfile(ctx context.Context) (*User, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	u, err := s.API.Profile(ctx, token)
	if err != nil {
		return nil, err
	}
	if err := s.storeUser(u); err != nil {
		return nil, err
	}
	return s.User(), nil
}

// UpdateProfile sends the changes and mirrors the server's answer.
func (s *Session) UpdateProfile(ctx context.Context, in ProfileUpdate) (*User, error) {
	token := s.Token()
	if token == "" {
		return nil, ErrNotLoggedIn
	}
	u, err := s.API.UpdateProfile(ctx, token, in)
	if err != nil {
		return nil, err
	}
	if err := s.storeUser(u); err != nil {
		return nil, err
	}
	return s.User(), nil
}

func (s *Session) storeUser(u *User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	if err := s.Storage.Set(UserKey, string(b)); err != nil {
		return err
	}
	s.mu.Lock()
	cp := *u
	s.user = &cp
	s.mu.Unlock()
	return nil
}
