package authz

import (
	"fmt"

	"github.com/xinna-pharma/internal/constants"
)

// RoleSeed 预置角色定义
type RoleSeed struct {
	Role     string
	Inherits string
	Policies []Policy
}

// BuiltinRoleSeeds 药房员工角色矩阵：收银 < 药剂师 < 管理员 < 店主
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: constants.StaffRoleCashier,
			Policies: []Policy{
				{Object: "/admin/me", Action: "GET"},
				{Object: "/admin/products", Action: "GET"},
				{Object: "/admin/products/low-stock", Action: "GET"},
				{Object: "/admin/orders", Action: "GET"},
				{Object: "/admin/orders/pending", Action: "GET"},
				{Object: "/admin/orders/:id", Action: "GET"},
				{Object: "/admin/orders/:id/status", Action: "PATCH"},
				{Object: "/admin/shipments", Action: "GET"},
				{Object: "/admin/shipments", Action: "POST"},
			},
		},
		{
			Role:     constants.StaffRolePharmacist,
			Inherits: constants.StaffRoleCashier,
			Policies: []Policy{
				{Object: "/admin/products", Action: "*"},
				{Object: "/admin/products/:id", Action: "*"},
				{Object: "/admin/distributors", Action: "*"},
				{Object: "/admin/purchases", Action: "GET"},
				{Object: "/admin/purchases", Action: "POST"},
				{Object: "/admin/purchases/:id", Action: "GET"},
			},
		},
		{
			Role:     constants.StaffRoleAdmin,
			Inherits: constants.StaffRolePharmacist,
			Policies: []Policy{
				{Object: "/admin/*", Action: "*"},
			},
		},
		{
			Role:     constants.StaffRoleOwner,
			Inherits: constants.StaffRoleAdmin,
		},
	}
}

// BootstrapBuiltinRoles 写入预置角色继承与策略；已存在的规则会被跳过，可重复执行
func (s *Service) BootstrapBuiltinRoles() error {
	if s == nil || s.enforcer == nil {
		return fmt.Errorf("authz service unavailable")
	}

	for _, seed := range BuiltinRoleSeeds() {
		subject, err := RoleSubject(seed.Role)
		if err != nil {
			return fmt.Errorf("builtin role %q: %w", seed.Role, err)
		}
		if seed.Inherits != "" {
			parent, err := RoleSubject(seed.Inherits)
			if err != nil {
				return fmt.Errorf("builtin role %q parent: %w", seed.Role, err)
			}
			if _, err := s.enforcer.AddGroupingPolicy(subject, parent); err != nil {
				return fmt.Errorf("link role inheritance failed: %w", err)
			}
		}

		for _, policy := range seed.Policies {
			action := NormalizeAction(policy.Action)
			if action == "" {
				return fmt.Errorf("builtin policy action is required")
			}
			if _, err := s.enforcer.AddPolicy(subject, NormalizeObject(policy.Object), action); err != nil {
				return fmt.Errorf("add builtin policy failed: %w", err)
			}
		}
	}
	return nil
}
