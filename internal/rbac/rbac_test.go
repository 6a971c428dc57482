package rbac_test

import (
	"testing"

	"doctrack/internal/rbac"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizer_Enforce(t *testing.T) {
	authz, err := rbac.NewAuthorizer()
	require.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		allowed  bool
	}{
		{"user can read documents", "user", "documents", "read", true},
		{"user can write documents", "user", "documents", "write", true},
		{"user cannot review documents", "user", "documents", "review", false},
		{"user cannot manage staff", "user", "staff", "write", false},
		{"user cannot provision", "user", "provisioning", "write", false},
		{"admin can review documents", "admin", "documents", "review", true},
		{"admin inherits user read", "admin", "documents", "read", true},
		{"admin can manage staff", "admin", "staff", "write", true},
		{"admin can provision", "admin", "provisioning", "write", true},
		{"unknown role denied", "auditor", "documents", "read", false},
		{"unknown resource denied", "admin", "payroll", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := authz.Enforce(tc.role, tc.resource, tc.action)
			assert.NoError(t, err)
			assert.Equal(t, tc.allowed, allowed)
		})
	}
}

func TestAuthorizer_PermissionsFor(t *testing.T) {
	authz, err := rbac.NewAuthorizer()
	require.NoError(t, err)

	userPerms, err := authz.PermissionsFor("user")
	require.NoError(t, err)
	assert.Contains(t, userPerms, rbac.Permission{Resource: "documents", Action: "write"})
	assert.NotContains(t, userPerms, rbac.Permission{Resource: "staff", Action: "write"})

	adminPerms, err := authz.PermissionsFor("admin")
	require.NoError(t, err)
	assert.Contains(t, adminPerms, rbac.Permission{Resource: "staff", Action: "write"})
	assert.Contains(t, adminPerms, rbac.Permission{Resource: "documents", Action: "read"})
	assert.Greater(t, len(adminPerms), len(userPerms))
}
