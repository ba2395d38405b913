// Package renderer is the legacy declarative render path: an editor-authored
// section list rendered in order, with per-section visibility conditions and
// overrides. The newer agent pipeline (pkg/pipeline) shares its condition
// evaluator, token resolution, and generator registry but renders from a
// fixed default section list instead.
package renderer

import (
	"strings"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/conditions"
	"github.com/agentpress/agentpress/pkg/generators"
	"github.com/agentpress/agentpress/pkg/overrides"
	"github.com/agentpress/agentpress/pkg/tokens"
)

// CompiledSection pairs a template section with its condition, compiled once
// at template-load time.
type CompiledSection struct {
	Section models.Section
	Cond    conditions.Expr
}

// CompiledTemplate is a template ready for repeated rendering.
type CompiledTemplate struct {
	ID       string
	Sections []CompiledSection
}

// CompileTemplate compiles every section condition up front. The second
// return value lists fail-open warnings from unparsable conditions; the
// template still renders (permissively) when warnings exist.
func CompileTemplate(t *models.Template) (*CompiledTemplate, []string) {
	ct := &CompiledTemplate{ID: t.ID, Sections: make([]CompiledSection, 0, len(t.Sections))}
	var warns []string
	for _, s := range t.Sections {
		cond := conditions.Compile(s.Condition)
		if w := cond.Warning(); w != "" {
			warns = append(warns, w)
		}
		ct.Sections = append(ct.Sections, CompiledSection{Section: s, Cond: cond})
	}
	return ct, warns
}

// Renderer renders compiled templates. The registry is injected so tests
// can substitute doubles.
type Renderer struct {
	reg *generators.Registry
}

// New builds a Renderer around a generator registry.
func New(reg *generators.Registry) *Renderer {
	return &Renderer{reg: reg}
}

// RenderedSection is one surviving section plus the metadata the legacy
// scorer weighs.
type RenderedSection struct {
	ID            string
	Name          string
	Kind          models.SectionKind
	Content       string
	WasOverridden bool
}

// Render evaluates conditions, dispatches each section by kind, applies
// permitted overrides, and drops sections that end up empty. Concatenation
// order is template order, never priority order.
func (r *Renderer) Render(ct *CompiledTemplate, ctx *models.RenderContext, ovr []overrides.Override) (string, []RenderedSection) {
	byID := overrides.ByID(ovr)
	in := generators.Input{
		Agent:         ctx.Agent,
		Location:      ctx.Location,
		Announcements: ctx.Announcements,
		Now:           ctx.Clock(),
	}

	var rendered []RenderedSection
	for _, cs := range ct.Sections {
		if !cs.Cond.Eval(ctx.Agent, ctx.Location) {
			continue
		}

		base := r.baseContent(cs.Section, ctx, in)

		content := base
		overridden := false
		if o, ok := byID[cs.Section.ID]; ok && overridePermitted(cs.Section, o) {
			content = overrides.Apply(base, o, ctx)
			overridden = true
		}

		if strings.TrimSpace(content) == "" {
			continue
		}

		rendered = append(rendered, RenderedSection{
			ID:            cs.Section.ID,
			Name:          cs.Section.Name,
			Kind:          cs.Section.Kind,
			Content:       content,
			WasOverridden: overridden,
		})
	}

	parts := make([]string, len(rendered))
	for i, s := range rendered {
		parts[i] = s.Content
	}
	return strings.Join(parts, "\n\n"), rendered
}

// baseContent produces a section's pre-override text.
func (r *Renderer) baseContent(s models.Section, ctx *models.RenderContext, in generators.Input) string {
	switch s.Kind {
	case models.SectionStatic:
		return s.Body
	case models.SectionToken:
		return tokens.ReplaceTokens(s.Body, ctx)
	case models.SectionGenerated:
		// Unknown generator names are a reported no-op at validation time;
		// at render time they simply produce nothing.
		text, _ := r.reg.Generate(s.Body, in)
		return text
	default:
		return ""
	}
}

func overridePermitted(s models.Section, o overrides.Override) bool {
	switch o.Origin {
	case overrides.OriginArticle:
		return s.AllowsPostOverride()
	case overrides.OriginTenant:
		return s.AllowsTenantOverride()
	default:
		return true
	}
}
