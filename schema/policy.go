package schema

// Distinguished roles of the league.
const (
	HealerRole = "素问"
	DotRole    = "九灵"
)

// RolePolicy describes how records of a role are ranked inside a role group
// and which role-conditional metrics get an intensity bar.
type RolePolicy struct {
	RankMetric Metric
	Visualized []Metric
}

// BaseVisualizedMetrics receive an intensity bar regardless of role.
var BaseVisualizedMetrics = []Metric{
	Kills, Assists, DamageToPlayers, DamageToStructures, DamageTaken, Incapacitations, CrowdControl,
}

// DefaultRolePolicy applies to every role missing from RolePolicies.
var DefaultRolePolicy = RolePolicy{RankMetric: DamageToPlayers}

// RolePolicies maps the distinguished roles to their policy.
var RolePolicies = map[string]RolePolicy{
	HealerRole: {RankMetric: Healing, Visualized: []Metric{Healing, SpecialResourceB}},
	DotRole:    {RankMetric: SpecialResourceA, Visualized: []Metric{SpecialResourceA}},
}

// PolicyFor returns the policy of role, falling back to DefaultRolePolicy.
func PolicyFor(role string) RolePolicy {
	if p, ok := RolePolicies[role]; ok {
		return p
	}
	return DefaultRolePolicy
}

// VisualizedFor returns every metric that may carry a bar for a record of role.
func VisualizedFor(role string) []Metric {
	extra := PolicyFor(role).Visualized
	out := make([]Metric, 0, len(BaseVisualizedMetrics)+len(extra))
	out = append(out, BaseVisualizedMetrics...)
	return append(out, extra...)
}

