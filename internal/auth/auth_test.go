package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ariefcatur/go-storefront/internal/kv"
)

func newStore(t *testing.T) (*Store, *kv.Memory) {
	t.Helper()
	m := kv.NewMemory()
	s, err := New(context.Background(), m, 0)
	require.NoError(t, err)
	return s, m
}

func TestUserLogin(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{FirstName: "Alice", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	res, err := s.Login(ctx, "alice@example.com", "pw1", false)
	require.NoError(t, err)
	assert.True(t, res.Success)
	require.NotNil(t, res.User)
	assert.Empty(t, res.User.Password)

	res, err = s.Login(ctx, "alice@example.com", "wrong", false)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.NotEmpty(t, res.Message)
}

func TestUserLoginMatchesEmailExactly(t *testing.T) {
	s, _ := newStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{FirstName: "Alice", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	for _, id := range []string{"Alice@Example.com", " alice@example.com"} {
		res, err := s.Login(ctx, id, "pw1", false)
		require.NoError(t, err)
		assert.False(t, res.Success, id)
		assert.Equal(t, "Invalid email or password!", res.Message)
	}
}

func TestAdminLogin(t *testing.T) {
	s, m := newStore(t)
	ctx := context.Background()

	res, err := s.Login(ctx, "admin", "admin123", true)
	require.NoError(t, err)
	assert.True(t, res.Success)
	assert.True(t, s.IsAdmin())
	flag, _, _ := m.Get(ctx, kv.KeyAdminAuth)
	assert.Equal(t, "true", flag)

	for _, pair := range [][2]string{{"admin", "nope"}, {"root", "admin123"}, {"", ""}} {
		res, err := s.Login(ctx, pair[0], pair[1], true)
		require.NoError(t, err)
		assert.False(t, res.Success, pair)
	}
}

func TestAdminCredentialDoesNotLogInUser(t *testing.T) {
	s, _ := newStore(t)
	res, err := s.Login(context.Background(), "admin", "admin123", false)
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.False(t, s.IsAuthenticated())
}

func TestRegisterOverwritesAndPersists(t *testing.T) {
	s, m := newStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Email: "first@example.com", Password: "a"})
	require.NoError(t, err)
	second, err := s.Register(ctx, RegisterInput{FirstName: "Bob", Email: "bob@example.com", Password: "b"})
	require.NoError(t, err)
	assert.Equal(t, RoleUser, second.Role)

	restored, err := New(ctx, m, 0)
	require.NoError(t, err)
	u, ok := restored.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "bob@example.com", u.Email)
	assert.True(t, restored.IsAuthenticated())
}

func TestLogoutDeletesAccountAndAdminFlag(t *testing.T) {
	s, m := newStore(t)
	ctx := context.Background()

	_, err := s.Register(ctx, RegisterInput{Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)
	_, err = s.Login(ctx, "admin", "admin123", true)
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
	_, ok := s.RegisteredUser()
	assert.False(t, ok)
	for _, k := range []string{kv.KeyUser, kv.KeyAdminAuth} {
		_, present, _ := m.Get(ctx, k)
		assert.False(t, present, k)
	}

	res, err := s.Login(ctx, "alice@example.com", "pw1", false)
	require.NoError(t, err)
	assert.False(t, res.Success)
}

func TestUpdateProfile(t *testing.T) {
	s, m := newStore(t)
	ctx := context.Background()

	_, err := s.UpdateProfile(ctx, ProfilePatch{})
	assert.ErrorIs(t, err, ErrNoUser)

	_, err = s.Register(ctx, RegisterInput{FirstName: "Alice", LastName: "Doe", Email: "alice@example.com", Password: "pw1"})
	require.NoError(t, err)

	name := "Alicia"
	u, err := s.UpdateProfile(ctx, ProfilePatch{FirstName: &name})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", u.FirstName)
	assert.Equal(t, "Doe", u.LastName)

	restored, err := New(ctx, m, 0)
	require.NoError(t, err)
	got, _ := restored.RegisteredUser()
	assert.Equal(t, "Alicia", got.FirstName)
}

func TestLoginHonoursContextDuringDelay(t *testing.T) {
	s, err := New(context.Background(), kv.NewMemory(), time.Hour)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = s.Login(ctx, "admin", "admin123", true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.IsAdmin())
}

func TestMalformedUserIsIgnored(t *testing.T) {
	ctx := context.Background()
	m := kv.NewMemory()
	require.NoError(t, m.Set(ctx, kv.KeyUser, "{{"))
	require.NoError(t, m.Set(ctx, kv.KeyAdminAuth, "false"))

	s, err := New(ctx, m, 0)
	require.NoError(t, err)
	assert.False(t, s.IsAuthenticated())
	assert.False(t, s.IsAdmin())
}
