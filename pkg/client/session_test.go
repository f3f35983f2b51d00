package client

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

// fakeAPI answers Login/Logout/Profile; other calls are not used by Session.
type fakeAPI struct {
	API
	loginErr   error
	logoutErr  error
	logoutSeen string
	profile    *User
}

func (f *fakeAPI) Login(_ context.Context, email, _, role string) (*LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &LoginResult{Token: "tok-" + email, User: User{ID: "u1", Email: email, Role: role, Profile: Profile{Skills: []string{"go"}}}}, nil
}

func (f *fakeAPI) Logout(_ context.Context, token string) error {
	f.logoutSeen = token
	return f.logoutErr
}

func (f *fakeAPI) Profile(context.Context, string) (*User, error) {
	return f.profile, nil
}

func TestSessionLoginPersistsAndRestores(t *testing.T) {
	store := NewMemoryStorage()
	s := NewSession(&fakeAPI{}, store)
	if _, err := s.Login(context.Background(), "a@x.com", "secret1", "Student"); err != nil {
		t.Fatal(err)
	}
	if s.Token() != "tok-a@x.com" || s.User().Email != "a@x.com" {
		t.Fatalf("state after login: %q %+v", s.Token(), s.User())
	}

	restored := NewSession(&fakeAPI{}, store)
	if err := restored.Restore(); err != nil {
		t.Fatal(err)
	}
	if restored.Token() != "tok-a@x.com" || restored.User() == nil || restored.User().ID != "u1" {
		t.Fatalf("restored state: %q %+v", restored.Token(), restored.User())
	}
}

func TestSessionFailedLoginKeepsState(t *testing.T) {
	api := &fakeAPI{}
	s := NewSession(api, nil)
	if _, err := s.Login(context.Background(), "a@x.com", "secret1", "Student"); err != nil {
		t.Fatal(err)
	}
	api.loginErr = &APIError{Status: http.StatusUnauthorized, Code: "INVALID_CREDENTIALS"}
	_, err := s.Login(context.Background(), "b@x.com", "bad", "Student")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("expected 401 api error, got %v", err)
	}
	if s.User().Email != "a@x.com" {
		t.Fatalf("failed login replaced user: %+v", s.User())
	}
}

func TestSessionLogoutClearsEvenWhenServerFails(t *testing.T) {
	store := NewMemoryStorage()
	api := &fakeAPI{logoutErr: errors.New("boom")}
	s := NewSession(api, store)
	if _, err := s.Login(context.Background(), "a@x.com", "secret1", "Student"); err != nil {
		t.Fatal(err)
	}
	if err := s.Logout(context.Background()); err == nil {
		t.Fatal("expected server error to surface")
	}
	if api.logoutSeen != "tok-a@x.com" {
		t.Fatalf("logout sent token %q", api.logoutSeen)
	}
	if s.Token() != "" || s.User() != nil {
		t.Fatal("local state not cleared")
	}
	for _, k := range []string{TokenKey, UserKey} {
		if _, ok, _ := store.Get(k); ok {
			t.Fatalf("%s still stored", k)
		}
	}
}

func TestSessionRestoreIgnoresPartialState(t *testing.T) {
	store := NewMemoryStorage()
	_ = store.Set(TokenKey, "tok")
	_ = store.Set(UserKey, "{broken")
	s := NewSession(&fakeAPI{}, store)
	if err := s.Restore(); err != nil {
		t.Fatal(err)
	}
	if s.Token() != "" || s.User() != nil {
		t.Fatal("expected signed-out session")
	}
}

func TestSessionUserIsACopy(t *testing.T) {
	s := NewSession(&fakeAPI{}, nil)
	if _, err := s.Login(context.Background(), "a@x.com", "secret1", "Student"); err != nil {
		t.Fatal(err)
	}
	u := s.User()
	u.Fullname = "changed"
	u.Profile.Skills[0] = "changed"
	if got := s.User(); got.Fullname == "changed" || got.Profile.Skills[0] != "go" {
		t.Fatalf("session state mutated through copy: %+v", got)
	}
}

func TestSessionRefreshProfileNeedsLogin(t *testing.T) {
	s := NewSession(&fakeAPI{profile: &User{ID: "u1"}}, nil)
	if _, err := s.RefreshProfile(context.Background()); !errors.Is(err, ErrNotLoggedIn) {
		t.Fatalf("expected ErrNotLoggedIn, got %v", err)
	}
}
