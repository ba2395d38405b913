// Package canonical decides which URL holds SEO authority for a rendered
// copy of a syndicated article. Two distinct questions live here and must
// stay separate: Decide answers "what canonical tag does this live render
// emit right now", RecommendStrategy answers "what should editors set up
// before publishing this widely". They are not interchangeable.
package canonical

import (
	"fmt"
	"strings"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/uniqueness"
)

// Status labels the branch a live canonical decision took.
type Status string

const (
	// StatusSafe: unique enough to stand on its own.
	StatusSafe Status = "safe"
	// StatusBorderline: self-canonical but close to the line; an alternate
	// URL pointing at the primary tenant is provided for hreflang use.
	StatusBorderline Status = "borderline"
	// StatusDeferred: canonical points at the primary tenant.
	StatusDeferred Status = "deferred"
	// StatusRiskAccepted: too similar but no primary tenant exists, so the
	// copy stays self-canonical with an explicit warning.
	StatusRiskAccepted Status = "risk-accepted"
	// StatusStructural: no rendered text was available; the decision fell
	// back to syndication structure alone.
	StatusStructural Status = "structural"
)

// Decision is the outcome of a live canonical evaluation.
type Decision struct {
	CanonicalURL      string `json:"canonical_url" yaml:"canonical_url"`
	IsSelfReferencing bool   `json:"is_self_referencing" yaml:"is_self_referencing"`
	Status            Status `json:"status" yaml:"status"`

	// AlternateURL is set on borderline decisions: the primary tenant's URL
	// for potential hreflang pairing.
	AlternateURL string `json:"alternate_url,omitempty" yaml:"alternate_url,omitempty"`

	// Score is the uniqueness score used, -1 when no text was available.
	Score int `json:"score" yaml:"score"`

	Warning string `json:"warning,omitempty" yaml:"warning,omitempty"`
}

// Uniqueness thresholds for syndicated copies.
const (
	safeScore       = 50
	borderlineScore = 30
)

// Decide runs the live canonical state machine for one rendered copy.
// renderedText may be empty when no render is available, in which case the
// decision is structural. It never fails; it only ever downgrades.
func Decide(article *models.Article, tenant *models.Tenant, agent *models.Agent,
	location *models.LocationData, renderedText, selfURL string) Decision {

	// Main-mode content always owns its URL, whatever the score.
	if article.SyndicationMode == models.SyndicationMain {
		return Decision{CanonicalURL: selfURL, IsSelfReferencing: true, Status: StatusSafe, Score: -1}
	}

	wide := article.SyndicationMode == models.SyndicationSyndicated || article.ShowOnAllStorefronts

	// Agent-specific content without wide syndication is inherently unique
	// to its storefront.
	if !wide {
		return Decision{CanonicalURL: selfURL, IsSelfReferencing: true, Status: StatusSafe, Score: -1}
	}

	primaryURL := PrimaryTenantURL(article)
	primaryDiffers := primaryURL != "" && (tenant == nil || article.PrimaryTenant.Slug != tenant.Slug)

	if renderedText == "" {
		// Structural fallback: no text to score.
		if primaryDiffers {
			return Decision{CanonicalURL: primaryURL, IsSelfReferencing: false, Status: StatusStructural, Score: -1}
		}
		return Decision{CanonicalURL: selfURL, IsSelfReferencing: true, Status: StatusStructural, Score: -1}
	}

	score := uniqueness.Score(renderedText, agent, location).Score

	switch {
	case score >= safeScore:
		return Decision{CanonicalURL: selfURL, IsSelfReferencing: true, Status: StatusSafe, Score: score}

	case score >= borderlineScore:
		return Decision{
			CanonicalURL:      selfURL,
			IsSelfReferencing: true,
			Status:            StatusBorderline,
			AlternateURL:      primaryURL,
			Score:             score,
		}

	case primaryDiffers:
		return Decision{CanonicalURL: primaryURL, IsSelfReferencing: false, Status: StatusDeferred, Score: score}

	default:
		return Decision{
			CanonicalURL:      selfURL,
			IsSelfReferencing: true,
			Status:            StatusRiskAccepted,
			Score:             score,
			Warning: fmt.Sprintf(
				"uniqueness score %d is below %d and no primary tenant is set; duplicate-content risk accepted",
				score, borderlineScore),
		}
	}
}

// PrimaryTenantURL builds the canonical target on the article's primary
// tenant: the agent-linked URL when the primary tenant has a linked agent,
// else the article URL at the primary host. Empty when no primary tenant
// or no domain exists.
func PrimaryTenantURL(article *models.Article) string {
	pt := article.PrimaryTenant
	if pt == nil {
		return ""
	}
	host := pt.PrimaryHost()
	if host == "" {
		return ""
	}
	if pt.LinkedAgent != nil && pt.LinkedAgent.Slug != "" {
		return fmt.Sprintf("https://%s/agents/%s/%s", host, pt.LinkedAgent.Slug, article.Slug)
	}
	return fmt.Sprintf("https://%s/%s", host, article.Slug)
}

// SelfURL joins a storefront base URL and an article slug.
func SelfURL(baseURL, slug string) string {
	base := strings.TrimRight(baseURL, "/")
	if base == "" {
		return "/" + slug
	}
	return base + "/" + slug
}
