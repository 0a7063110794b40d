package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*Service, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	return NewService(store, "test-secret", 30*time.Minute), store
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)

	u, err := svc.Register(ctx, UserRequest{Username: " alice ", FullName: "Alice A", Email: "alice@example.com", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, 1, u.ID)
	assert.Equal(t, "alice", u.Username)
	assert.NotEqual(t, "pw", u.PasswordHash)

	count, _ := store.Count(ctx)
	assert.Equal(t, 1, count)
}

func TestRegisterErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, UserRequest{Username: "alice", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	tests := []struct {
		name string
		req  UserRequest
		want error
	}{
		{"existing username", UserRequest{Username: "alice", Email: "other@example.com", Password: "pw"}, ErrUserExists},
		{"existing email", UserRequest{Username: "bob", Email: "a@example.com", Password: "pw"}, ErrDuplicate},
		{"missing password", UserRequest{Username: "carol"}, ErrMissingField},
		{"blank username", UserRequest{Username: "  ", Password: "pw"}, ErrMissingField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(ctx, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestLoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	_, err := svc.Register(ctx, UserRequest{Username: "alice", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	_, _, err = svc.Login(ctx, Credentials{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, Credentials{Username: "nobody", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	logged, token, err := svc.Login(ctx, Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)
	assert.Equal(t, "alice", logged.Username)

	u, err := svc.Authenticate(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
}

func TestLoginWithPaddedUsername(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, err := svc.Register(ctx, UserRequest{Username: "  c  ", Email: "c@example.com", Password: "pw"})
	require.NoError(t, err)

	for _, name := range []string{"  c  ", "c", "c "} {
		u, token, err := svc.Login(ctx, Credentials{Username: name, Password: "pw"})
		require.NoError(t, err, "%q", name)
		assert.Equal(t, "c", u.Username)

		authed, err := svc.Authenticate(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, "c", authed.Username)
	}
}

func TestAuthenticateRejects(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService(t)
	u, err := svc.Register(ctx, UserRequest{Username: "alice", Email: "a@example.com", Password: "pw"})
	require.NoError(t, err)

	_, token, err := svc.Login(ctx, Credentials{Username: "alice", Password: "pw"})
	require.NoError(t, err)

	t.Run("empty", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Authenticate(ctx, "not-a-jwt")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("other secret", func(t *testing.T) {
		other := NewService(store, "another-secret", time.Minute)
		_, err := other.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		svc.now = func() time.Time { return time.Now().Add(time.Hour) }
		defer func() { svc.now = time.Now }()
		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		claims := &Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "alice"}}
		none, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = svc.Authenticate(ctx, none)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("deleted user", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, u.ID))
		_, err := svc.Authenticate(ctx, token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestListAndDelete(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)
	for _, name := range []string{"alice", "bob"} {
		_, err := svc.Register(ctx, UserRequest{Username: name, Email: name + "@example.com", Password: "pw"})
		require.NoError(t, err)
	}

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "alice", users[0].Username)
	assert.Equal(t, "bob", users[1].Username)

	assert.ErrorIs(t, svc.Delete(ctx, 42), ErrNotFound)
	require.NoError(t, svc.Delete(ctx, users[0].ID))

	count, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
