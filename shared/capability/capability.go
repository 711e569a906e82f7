// Package capability holds the normalized identity resolved once per request by the auth middleware.
package capability

import (
	"context"
	"roomops/shared/constant"
	"slices"
	"strings"
)

type Capability struct {
	UserID      string   `json:"user_id"`
	Role        string   `json:"role"`
	Departments []string `json:"departments"`
}

// New builds a Capability with the role and departments folded to lower snake case,
// so "Front Desk" and "front-desk" both resolve to "front_desk".
func New(userID, role string, departments []string) Capability {
	normalized := make([]string, 0, len(departments))

	for _, department := range departments {
		department = normalize(department)
		if department == constant.Empty || slices.Contains(normalized, department) {
			continue
		}

		normalized = append(normalized, department)
	}

	slices.Sort(normalized)

	return Capability{
		UserID:      userID,
		Role:        normalize(role),
		Departments: normalized,
	}
}

func normalize(value string) string {
	value = strings.ToLower(strings.TrimSpace(value))

	return strings.NewReplacer(" ", "_", "-", "_").Replace(value)
}

func (c Capability) HasRole(roles ...string) bool {
	return slices.Contains(roles, c.Role)
}

func (c Capability) InDepartment(department string) bool {
	return slices.Contains(c.Departments, normalize(department))
}

func (c Capability) IsAdmin() bool {
	return c.HasRole(constant.RoleAdmin, constant.RoleSuperAdmin)
}

// IsHousekeeping reports whether the holder may take housekeeping work, either by role or department membership.
func (c Capability) IsHousekeeping(department string) bool {
	return c.Role == constant.RoleHousekeeping || c.InDepartment(department)
}

func WithContext(ctx context.Context, c Capability) context.Context {
	return context.WithValue(ctx, constant.ContextKeyCapability, c)
}

func FromContext(ctx context.Context) (Capability, bool) {
	c, ok := ctx.Value(constant.ContextKeyCapability).(Capability)

	return c, ok
}
