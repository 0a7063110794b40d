package ui

import (
	"testing"

	"github.com/maxence-charriere/go-app/v9/pkg/app"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchLiteralPaths(t *testing.T) {
	tests := []struct {
		path string
		want app.Composer
	}{
		{"/", &Home{}},
		{"/register", &RegisterPage{}},
		{"/login", &LoginPage{}},
		{"/users", &ListUsers{}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			r, ok := Match(tt.path)
			require.True(t, ok)
			assert.Equal(t, tt.path, r.Path)
			assert.IsType(t, tt.want, r.Page())
		})
	}
}

func TestMatchIsExact(t *testing.T) {
	for _, path := range []string{"/foo", "", "/users/", "/users/1", "/login?next=/", "/Register", "//"} {
		_, ok := Match(path)
		assert.False(t, ok, path)
	}
}

func TestPageFactoriesReturnFreshInstances(t *testing.T) {
	r, ok := Match("/users")
	require.True(t, ok)
	assert.NotSame(t, r.Page(), r.Page())
}

func TestLinks(t *testing.T) {
	assert.Equal(t, []Link{
		{Path: "/", Label: "Home"},
		{Path: "/register", Label: "Register"},
		{Path: "/login", Label: "Login"},
		{Path: "/users", Label: "Users"},
	}, Links())
}

func TestEveryLinkResolves(t *testing.T) {
	for _, l := range Links() {
		r, ok := Match(l.Path)
		require.True(t, ok, l.Path)
		assert.Equal(t, l.Label, r.Label)
	}
}
