// Package pipeline is the agent-oriented render path and the engine's public
// entry point: one call takes an article plus a storefront context and
// produces final text, SEO metadata, a uniqueness verdict, and a per-section
// trace. The whole pipeline is synchronous, allocates no external resources,
// and is safe to call from any number of goroutines.
package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/canonical"
	"github.com/agentpress/agentpress/pkg/generators"
	"github.com/agentpress/agentpress/pkg/overrides"
	"github.com/agentpress/agentpress/pkg/tokens"
	"github.com/agentpress/agentpress/pkg/uniqueness"
)

// Orchestrator composes the engine: token resolution, the generator
// registry, override merging, scoring, and canonical decisions. Build one
// at startup and share it; it is immutable after construction.
type Orchestrator struct {
	reg      *generators.Registry
	sections []compiledSection

	// now is overridable for tests; nil means time.Now.
	now func() time.Time
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

// WithClock fixes the time source, for deterministic rendering in tests.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// New builds an Orchestrator around a generator registry.
func New(reg *generators.Registry, opts ...Option) *Orchestrator {
	o := &Orchestrator{
		reg:      reg,
		sections: compileDefaults(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// RenderPostForAgent renders one article for one storefront. Inputs are
// read-only; any of agent, location, tenant, announcements may be nil. It
// never fails: missing data degrades to absent sections, lower scores, and
// advisory warnings, because a partial page beats a failed page.
func (o *Orchestrator) RenderPostForAgent(article *models.Article, agent *models.Agent,
	location *models.LocationData, tenant *models.Tenant, baseURL string,
	announcements []models.Announcement) models.RenderResult {

	now := o.now()

	// Tenant bundle values win over direct arguments, which win over the
	// article's own defaults.
	var bundle *models.TenantOverride
	if tenant != nil {
		bundle = article.OverrideFor(tenant.Slug)
	}
	agent, location = resolveEffective(article, tenant, bundle, agent, location)

	merged := mergeOverrides(article, bundle)

	introVariant, closingVariant := "", ""
	var customTokens map[string]string
	if bundle != nil {
		introVariant = bundle.IntroVariant
		closingVariant = bundle.ClosingVariant
		customTokens = bundle.CustomTokens
	}

	ctx := &models.RenderContext{
		Agent:         agent,
		Location:      location,
		Tenant:        tenant,
		Article:       article,
		Announcements: announcements,
		CustomTokens:  customTokens,
		Now:           now,
	}

	var sectionTraces []models.SectionTrace
	if article.UseTemplate {
		sectionTraces = o.renderDefaultSections(ctx, merged, introVariant, closingVariant)
	} else {
		sectionTraces = o.renderRawBody(ctx, merged)
	}

	parts := make([]string, len(sectionTraces))
	for i, s := range sectionTraces {
		parts[i] = s.Content
	}
	content := strings.Join(parts, "\n\n")

	report := uniqueness.Score(content, agent, location)

	selfURL := canonical.SelfURL(baseURL, article.Slug)
	decision := canonical.Decide(article, tenant, agent, location, content, selfURL)

	return models.RenderResult{
		Content:          content,
		Meta:             o.buildMeta(ctx, decision),
		Uniqueness:       report,
		Sections:         sectionTraces,
		CanonicalWarning: decision.Warning,
	}
}

// renderDefaultSections walks the fixed layout: evaluate the compiled
// condition, generate base text (swapping the variant slots), apply any
// matching override, and drop sections that end up empty.
func (o *Orchestrator) renderDefaultSections(ctx *models.RenderContext,
	merged map[string]overrides.Override, introVariant, closingVariant string) []models.SectionTrace {

	in := generators.Input{
		Agent:         ctx.Agent,
		Location:      ctx.Location,
		Announcements: ctx.Announcements,
		Now:           ctx.Now,
	}

	var traces []models.SectionTrace
	for _, cs := range o.sections {
		if !cs.cond.Eval(ctx.Agent, ctx.Location) {
			continue
		}

		name := cs.Generator
		switch cs.VariantSlot {
		case "intro":
			name = generators.IntroGenerator(introVariant)
		case "closing":
			name = generators.ClosingGenerator(closingVariant)
		}

		base, _ := o.reg.Generate(name, in)

		content := base
		overridden := false
		if ov, ok := merged[cs.ID]; ok {
			content = overrides.Apply(base, ov, ctx)
			overridden = true
		}

		if strings.TrimSpace(content) == "" {
			continue
		}

		traces = append(traces, models.SectionTrace{
			ID:            cs.ID,
			Name:          cs.Name,
			Content:       content,
			WasOverridden: overridden,
		})
	}
	return traces
}

// renderRawBody handles non-template articles: the authored body is token
// substituted as a single section. Overrides targeting "body" still apply.
func (o *Orchestrator) renderRawBody(ctx *models.RenderContext, merged map[string]overrides.Override) []models.SectionTrace {
	content := tokens.ReplaceTokens(ctx.Article.RawBody, ctx)

	overridden := false
	if ov, ok := merged["body"]; ok {
		content = overrides.Apply(content, ov, ctx)
		overridden = true
	}

	if strings.TrimSpace(content) == "" {
		return nil
	}
	return []models.SectionTrace{{
		ID:            "body",
		Name:          "Body",
		Content:       content,
		WasOverridden: overridden,
	}}
}

// buildMeta token-substitutes the SEO title and description. An article
// without an authored description gets a generated one that names the
// location, so every copy ships distinct head metadata.
func (o *Orchestrator) buildMeta(ctx *models.RenderContext, decision canonical.Decision) models.SEOMeta {
	title := tokens.ReplaceTokens(ctx.Article.Title, ctx)

	description := ctx.Article.MetaDescription
	if description == "" {
		description = fallbackDescription(ctx)
	}
	description = tokens.ReplaceTokens(description, ctx)

	return models.SEOMeta{
		Title:        title,
		Description:  description,
		CanonicalURL: decision.CanonicalURL,
		NoIndex:      decision.Status == canonical.StatusDeferred,
	}
}

func fallbackDescription(ctx *models.RenderContext) string {
	if l := ctx.Location; l != nil && l.Name != "" {
		if ctx.Agent != nil && ctx.Agent.Name != "" {
			return fmt.Sprintf("%s - local market insight for %s from %s.",
				ctx.Article.Title, l.Name, ctx.Agent.Name)
		}
		return fmt.Sprintf("%s - local market insight for %s.", ctx.Article.Title, l.Name)
	}
	return ctx.Article.Title
}

// resolveEffective applies the precedence chain for agent and location.
func resolveEffective(article *models.Article, tenant *models.Tenant, bundle *models.TenantOverride,
	agent *models.Agent, location *models.LocationData) (*models.Agent, *models.LocationData) {

	if bundle != nil && bundle.Agent != nil {
		agent = bundle.Agent
	}
	if agent == nil && tenant != nil {
		agent = tenant.LinkedAgent
	}

	if bundle != nil && bundle.Location != nil {
		location = bundle.Location
	}
	if location == nil {
		location = article.DefaultLocation
	}
	return agent, location
}

// mergeOverrides normalizes both override shapes and merges them with
// tenant precedence, indexed by section id.
func mergeOverrides(article *models.Article, bundle *models.TenantOverride) map[string]overrides.Override {
	base := overrides.NormalizeArticle(article.SectionOverrides)
	var tenantList []overrides.Override
	if bundle != nil {
		tenantList = overrides.NormalizeTenant(bundle.Sections)
	}
	return overrides.ByID(overrides.Merge(base, tenantList))
}
