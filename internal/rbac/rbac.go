package rbac

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

// The role model is fixed: two roles, admin inheriting user. Policies are
// seeded at startup instead of loaded from the database, so the enforcer
// is read-only after construction and safe for concurrent use.

//go:generate mockgen -source=rbac.go -destination=mock/authorizer_mock.go -package=mock

type Authorizer interface {
	Enforce(role, resource, action string) (bool, error)
	PermissionsFor(role string) ([]Permission, error)
}

type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

const modelText = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

var policies = [][]string{
	{"user", "documents", "read"},
	{"user", "documents", "write"},
	{"user", "profiles", "read"},
	{"user", "positions", "read"},
	{"user", "offices", "read"},
	{"user", "branding", "read"},

	{"admin", "documents", "review"},
	{"admin", "profiles", "write"},
	{"admin", "staff", "read"},
	{"admin", "staff", "write"},
	{"admin", "positions", "write"},
	{"admin", "offices", "write"},
	{"admin", "branding", "write"},
	{"admin", "provisioning", "write"},
}

type authorizer struct {
	enforcer *casbin.Enforcer
}

func NewAuthorizer() (Authorizer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, fmt.Errorf("rbac model: %w", err)
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("rbac enforcer: %w", err)
	}

	for _, p := range policies {
		if _, err := e.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, fmt.Errorf("rbac seed policy %v: %w", p, err)
		}
	}

	if _, err := e.AddGroupingPolicy("admin", "user"); err != nil {
		return nil, fmt.Errorf("rbac seed grouping: %w", err)
	}

	return &authorizer{enforcer: e}, nil
}

func (a *authorizer) Enforce(role, resource, action string) (bool, error) {
	return a.enforcer.Enforce(role, resource, action)
}

func (a *authorizer) PermissionsFor(role string) ([]Permission, error) {
	rows, err := a.enforcer.GetImplicitPermissionsForUser(role)
	if err != nil {
		return nil, err
	}

	perms := make([]Permission, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		perms = append(perms, Permission{Resource: row[1], Action: row[2]})
	}
	return perms, nil
}
