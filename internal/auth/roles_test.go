package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stockroom-dev/stockroom/internal/auth"
)

func TestRoleIsValid(t *testing.T) {
	tests := []struct {
		name string
		role auth.Role
		want bool
	}{
		{name: "admin", role: auth.RoleAdmin, want: true},
		{name: "editor", role: auth.RoleEditor, want: true},
		{name: "viewer", role: auth.RoleViewer, want: true},
		{name: "unknown", role: auth.Role("superuser"), want: false},
		{name: "empty", role: auth.Role(""), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsValid())
		})
	}
}

func TestParseRole(t *testing.T) {
	role, ok := auth.ParseRole("editor")
	assert.True(t, ok)
	assert.Equal(t, auth.RoleEditor, role)

	_, ok = auth.ParseRole("root")
	assert.False(t, ok)
}

func TestDefaultRole(t *testing.T) {
	assert.Equal(t, auth.RoleViewer, auth.DefaultRole)
}

func TestAllRoles(t *testing.T) {
	roles := auth.AllRoles()
	assert.Len(t, roles, 3)
	for _, role := range roles {
		assert.True(t, role.IsValid())
	}
}
