package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		input   string
		want    Role
		wantErr bool
	}{
		{"user", RoleUser, false},
		{"admin", RoleAdmin, false},
		{"owner", RoleOwner, false},
		{"", RoleUser, true},
		{"superadmin", RoleUser, true},
		{"Admin", RoleUser, true},
	}

	for _, tt := range tests {
		got, err := ParseRole(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
		} else {
			assert.NoError(t, err, "input %q", tt.input)
		}
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestRoleIsStaff(t *testing.T) {
	assert.False(t, RoleUser.IsStaff())
	assert.True(t, RoleAdmin.IsStaff())
	assert.True(t, RoleOwner.IsStaff())
}

func TestRoleIsOwner(t *testing.T) {
	assert.False(t, RoleUser.IsOwner())
	assert.False(t, RoleAdmin.IsOwner())
	assert.True(t, RoleOwner.IsOwner())
}

func TestRoleCanAssign(t *testing.T) {
	tests := []struct {
		actor  Role
		target Role
		want   bool
	}{
		{RoleOwner, RoleUser, true},
		{RoleOwner, RoleAdmin, true},
		{RoleOwner, RoleOwner, true},
		{RoleAdmin, RoleUser, true},
		{RoleAdmin, RoleAdmin, false},
		{RoleAdmin, RoleOwner, false},
		{RoleUser, RoleUser, false},
		{RoleUser, RoleAdmin, false},
		{RoleUser, RoleOwner, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.actor.CanAssign(tt.target), "%s assigning %s", tt.actor, tt.target)
	}
}
