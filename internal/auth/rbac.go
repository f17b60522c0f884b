package auth

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// NewEnforcer builds the in-memory role enforcer. Policies are static:
// admins can do everything, regular users get the operational surface
// minus user management, import and reset.
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	_, err = e.AddPolicies([][]string{
		{RoleAdmin, "*", "*"},
		{RoleUser, "employee", "read"},
		{RoleUser, "employee", "write"},
		{RoleUser, "equipment", "read"},
		{RoleUser, "equipment", "write"},
		{RoleUser, "serviceorder", "read"},
		{RoleUser, "serviceorder", "write"},
		{RoleUser, "dashboard", "read"},
		{RoleUser, "backup", "export"},
	})
	if err != nil {
		return nil, err
	}
	return e, nil
}
