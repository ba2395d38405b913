package canonical

import (
	"fmt"

	"github.com/agentpress/agentpress/models"
)

// StrategyKind names the recommended canonical posture for a publish plan.
type StrategyKind string

const (
	// StrategySelf: each storefront keeps its own canonical.
	StrategySelf StrategyKind = "self"
	// StrategyPrimary: storefront copies should defer to a primary tenant.
	StrategyPrimary StrategyKind = "primary-tenant"
)

// Strategy is pre-publish editorial guidance, bucketed by how widely the
// article will syndicate. It is advice about setup, not a live decision:
// Decide remains the authority for what a rendered page actually emits.
type Strategy struct {
	Kind          StrategyKind `json:"kind" yaml:"kind"`
	MinUniqueness int          `json:"min_uniqueness" yaml:"min_uniqueness"`
	AgentCount    int          `json:"agent_count" yaml:"agent_count"`

	Notes  []string `json:"notes,omitempty" yaml:"notes,omitempty"`
	Errors []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// RecommendStrategy buckets by syndication breadth: up to 10 storefronts
// can each hold their own canonical with modest uniqueness; 11-50 should
// defer to a primary tenant; the show-everywhere flag demands both a
// primary tenant and the highest uniqueness bar.
func RecommendStrategy(article *models.Article) Strategy {
	count := len(article.SyndicatedAgents)

	var s Strategy
	switch {
	case article.ShowOnAllStorefronts:
		s = Strategy{
			Kind:          StrategyPrimary,
			MinUniqueness: 50,
			AgentCount:    count,
			Notes: []string{
				"network-wide publication: every storefront copy must clear the highest uniqueness bar",
			},
		}
	case count > 10:
		s = Strategy{
			Kind:          StrategyPrimary,
			MinUniqueness: 40,
			AgentCount:    count,
			Notes: []string{
				fmt.Sprintf("%d storefronts is wide enough that copies should defer to a primary tenant", count),
			},
		}
	default:
		s = Strategy{
			Kind:          StrategySelf,
			MinUniqueness: 30,
			AgentCount:    count,
			Notes: []string{
				"narrow syndication: per-storefront canonicals are fine if copies stay above the minimum score",
			},
		}
	}

	if s.Kind == StrategyPrimary && article.PrimaryTenant == nil {
		s.Errors = append(s.Errors,
			"no primary tenant set: wide syndication needs a primary tenant to hold canonical authority")
	}
	if s.Kind == StrategyPrimary && article.PrimaryTenant != nil && article.PrimaryTenant.PrimaryHost() == "" {
		s.Errors = append(s.Errors,
			fmt.Sprintf("primary tenant %q has no domain to build canonical URLs on", article.PrimaryTenant.Slug))
	}
	return s
}
