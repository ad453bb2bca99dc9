package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseUserRole(t *testing.T) {
	for _, role := range AllRoles {
		parsed, ok := ParseUserRole(role.String())
		assert.True(t, ok, "role %q should parse", role)
		assert.Equal(t, role, parsed)
	}

	_, ok := ParseUserRole("Janitor")
	assert.False(t, ok)

	// Roles are case-sensitive.
	_, ok = ParseUserRole("carer")
	assert.False(t, ok)
}

func TestUserRoleIsValid(t *testing.T) {
	assert.True(t, RoleOfficeStaff.IsValid())
	assert.False(t, UserRole("").IsValid())
	assert.False(t, UserRole("Manager").IsValid())
}
