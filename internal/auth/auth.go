// Package auth keeps two independent identities: the single locally
// registered user and the admin session flag. Credentials are compared in
// plaintext; this store is not a security boundary.
package auth

import (
	"context"
	"errors"
	"github.com/ariefcatur/go-storefront/internal/kv"
	"github.com/google/uuid"
	"strings"
	"sync"
	"time"
)

const (
	AdminUsername = "admin"
	AdminPassword = "admin123"

	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrNoUser = errors.New("no registered user")

type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Phone     string    `json:"phone,omitempty"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Public strips the password.
func (u User) Public() User {
	u.Password = ""
	return u
}

type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Phone     string `json:"phone"`
}

// ProfilePatch fields left nil are kept.
type ProfilePatch struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Email     *string `json:"email,omitempty"`
	Password  *string `json:"password,omitempty"`
	Phone     *string `json:"phone,omitempty"`
}

// Result is the outcome of a login attempt. Bad credentials are a result,
// never an error.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
}

const (
	msgLoginOK       = "Login successful!"
	msgAdminInvalid  = "Invalid username or password!"
	msgUserInvalid   = "Invalid email or password!"
	adminFlagEnabled = "true"
)

type Store struct {
	mu       sync.Mutex
	backend  kv.Backend
	delay    time.Duration
	user     *User
	loggedIn bool
	admin    bool
	now      func() time.Time
}

// New restores both sessions from the backend. A stored user counts as
// logged in. delay is the pause Login takes before answering.
func New(ctx context.Context, b kv.Backend, delay time.Duration) (*Store, error) {
	u, err := kv.Load[*User](ctx, b, kv.KeyUser, nil)
	if err != nil {
		return nil, err
	}
	flag, _, err := b.Get(ctx, kv.KeyAdminAuth)
	if err != nil {
		return nil, err
	}
	if u != nil && u.Email == "" {
		u = nil
	}
	return &Store{
		backend:  b,
		delay:    delay,
		user:     u,
		loggedIn: u != nil,
		admin:    flag == adminFlagEnabled,
		now:      time.Now,
	}, nil
}

// Register always succeeds, replacing any previous local account, and
// starts the user session.
func (s *Store) Register(ctx context.Context, in RegisterInput) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := &User{
		ID:        uuid.NewString(),
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     strings.TrimSpace(in.Email),
		Password:  in.Password,
		Phone:     in.Phone,
		Role:      RoleUser,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	if err := kv.Save(ctx, s.backend, kv.KeyUser, u); err != nil {
		return User{}, err
	}
	s.user = u
	s.loggedIn = true
	return *u, nil
}

// Login waits for the configured delay, then checks the admin credential
// when isAdmin is set, or the stored user's email and password otherwise.
func (s *Store) Login(ctx context.Context, identifier, secret string, isAdmin bool) (Result, error) {
	if s.delay > 0 {
		t := time.NewTimer(s.delay)
		select {
		case <-ctx.Done():
			t.Stop()
			return Result{}, ctx.Err()
		case <-t.C:
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if isAdmin {
		if identifier != AdminUsername || secret != AdminPassword {
			return Result{Success: false, Message: msgAdminInvalid}, nil
		}
		if err := s.backend.Set(ctx, kv.KeyAdminAuth, adminFlagEnabled); err != nil {
			return Result{}, err
		}
		s.admin = true
		return Result{Success: true, Message: msgLoginOK}, nil
	}

	if s.user == nil || s.user.Email != identifier || s.user.Password != secret {
		return Result{Success: false, Message: msgUserInvalid}, nil
	}
	s.loggedIn = true
	pub := s.user.Public()
	return Result{Success: true, Message: msgLoginOK, User: &pub}, nil
}

// Logout ends both sessions and deletes the stored user record along with
// the admin flag, so the local account is gone afterwards.
func (s *Store) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.Delete(ctx, kv.KeyUser); err != nil {
		return err
	}
	if err := s.backend.Delete(ctx, kv.KeyAdminAuth); err != nil {
		return err
	}
	s.user = nil
	s.loggedIn = false
	s.admin = false
	return nil
}

// UpdateProfile merges patch into the stored user.
func (s *Store) UpdateProfile(ctx context.Context, patch ProfilePatch) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return User{}, ErrNoUser
	}
	u := *s.user
	set := func(dst *string, v *string) {
		if v != nil {
			*dst = *v
		}
	}
	set(&u.FirstName, patch.FirstName)
	set(&u.LastName, patch.LastName)
	set(&u.Email, patch.Email)
	set(&u.Password, patch.Password)
	set(&u.Phone, patch.Phone)

	if err := kv.Save(ctx, s.backend, kv.KeyUser, &u); err != nil {
		return User{}, err
	}
	s.user = &u
	return u, nil
}

// CurrentUser returns the logged-in user without the password.
func (s *Store) CurrentUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil || !s.loggedIn {
		return User{}, false
	}
	return s.user.Public(), true
}

// RegisteredUser returns the stored account regardless of session state.
func (s *Store) RegisteredUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return User{}, false
	}
	return s.user.Public(), true
}

func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil && s.loggedIn
}

func (s *Store) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}
