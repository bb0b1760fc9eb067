// Package access holds actor roles and the single policy deciding which role
// may perform which privileged action. Every role check in the engine goes
// through Policy.Authorize.
package access

import (
	"fmt"
	"strings"

	"colis/internal/pkg/errs"
)

// ErrForbidden is matched by every error Authorize returns.
var ErrForbidden = errs.ErrForbidden

// Role is the role carried by an authenticated actor.
type Role string

const (
	RoleCustomer    Role = "CUSTOMER"
	RoleAgencyAdmin Role = "AGENCY_ADMIN"
	RoleSuperAdmin  Role = "SUPER_ADMIN"
	RoleAccountant  Role = "ACCOUNTANT"
)

// Action is a privileged operation guarded by the policy.
type Action string

const (
	ActionAppendTrackingEvent Action = "append tracking event"
	ActionUpdateTariff        Action = "update tariff"
	ActionCompleteShipment    Action = "complete shipment"
	ActionDeleteShipment      Action = "delete shipment"
	ActionCancelAnyShipment   Action = "cancel any shipment"
	ActionViewAnyShipment     Action = "view any shipment"
)

func knownRoles() map[Role]struct{} {
	return map[Role]struct{}{
		RoleCustomer:    {},
		RoleAgencyAdmin: {},
		RoleSuperAdmin:  {},
		RoleAccountant:  {},
	}
}

// ParseRole converts a header or config value into a Role.
func ParseRole(s string) (Role, error) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))
	if _, ok := knownRoles()[role]; !ok {
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
	return role, nil
}

// ParseRoles parses a list of role names, failing on the first unknown one.
func ParseRoles(values []string) ([]Role, error) {
	roles := make([]Role, 0, len(values))
	for _, v := range values {
		role, err := ParseRole(v)
		if err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	return roles, nil
}

// Policy maps each action to the set of roles allowed to perform it.
// Actions absent from the policy are denied to everyone.
type Policy struct {
	rules map[Action]map[Role]struct{}
}

// NewPolicy builds a policy from explicit rules.
func NewPolicy(rules map[Action][]Role) Policy {
	p := Policy{rules: make(map[Action]map[Role]struct{}, len(rules))}
	for action, roles := range rules {
		p.rules[action] = toSet(roles)
	}
	return p
}

// DefaultPolicy grants operational actions to the back-office roles.
func DefaultPolicy() Policy {
	operators := []Role{RoleAgencyAdmin, RoleSuperAdmin, RoleAccountant}
	return NewPolicy(map[Action][]Role{
		ActionAppendTrackingEvent: operators,
		ActionCompleteShipment:    operators,
		ActionCancelAnyShipment:   {RoleAgencyAdmin, RoleSuperAdmin},
		ActionDeleteShipment:      {RoleAgencyAdmin, RoleSuperAdmin},
		ActionViewAnyShipment:     operators,
		ActionUpdateTariff:        {RoleSuperAdmin},
	})
}

// WithRoles returns a copy of the policy where action is granted to roles only.
func (p Policy) WithRoles(action Action, roles []Role) Policy {
	next := Policy{rules: make(map[Action]map[Role]struct{}, len(p.rules)+1)}
	for a, set := range p.rules {
		next.rules[a] = set
	}
	next.rules[action] = toSet(roles)
	return next
}

// Allows reports whether role may perform action.
func (p Policy) Allows(role Role, action Action) bool {
	_, ok := p.rules[action][role]
	return ok
}

// Authorize returns a ForbiddenError naming the action when the role is not allowed.
func (p Policy) Authorize(role Role, action Action) error {
	if !p.Allows(role, action) {
		return errs.NewForbiddenError(string(action))
	}
	return nil
}

func toSet(roles []Role) map[Role]struct{} {
	set := make(map[Role]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}
