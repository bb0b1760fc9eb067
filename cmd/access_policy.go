package cmd

import (
	"fmt"
	"os"

	"colis/internal/core/domain/model/access"

	"gopkg.in/yaml.v3"
)

// policyFile is the on-disk form of an access policy override:
//
//	rules:
//	  appendTrackingEvent: [AGENCY_ADMIN]
//	  updateTariff: [SUPER_ADMIN]
type policyFile struct {
	Rules map[string][]string `yaml:"rules"`
}

var policyActions = map[string]access.Action{
	"appendTrackingEvent": access.ActionAppendTrackingEvent,
	"updateTariff":        access.ActionUpdateTariff,
	"completeShipment":    access.ActionCompleteShipment,
	"deleteShipment":      access.ActionDeleteShipment,
	"cancelAnyShipment":   access.ActionCancelAnyShipment,
	"viewAnyShipment":     access.ActionViewAnyShipment,
}

// BuildPolicy starts from the default policy, applies TRACKING_APPEND_ROLES,
// then the rules of ACCESS_POLICY_FILE when one is configured.
func BuildPolicy(cfg Config) (access.Policy, error) {
	policy := access.DefaultPolicy()

	trackingRoles, err := access.ParseRoles(cfg.TrackingAppendRoles)
	if err != nil {
		return access.Policy{}, fmt.Errorf("TRACKING_APPEND_ROLES: %w", err)
	}
	policy = policy.WithRoles(access.ActionAppendTrackingEvent, trackingRoles)

	if cfg.AccessPolicyFile == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(cfg.AccessPolicyFile)
	if err != nil {
		return access.Policy{}, err
	}
	return applyPolicyFile(policy, raw)
}

func applyPolicyFile(policy access.Policy, raw []byte) (access.Policy, error) {
	var file policyFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return access.Policy{}, fmt.Errorf("access policy: %w", err)
	}

	for name, values := range file.Rules {
		action, ok := policyActions[name]
		if !ok {
			return access.Policy{}, fmt.Errorf("access policy: unknown action %q", name)
		}
		roles, err := access.ParseRoles(values)
		if err != nil {
			return access.Policy{}, fmt.Errorf("access policy %s: %w", name, err)
		}
		policy = policy.WithRoles(action, roles)
	}
	return policy, nil
}
