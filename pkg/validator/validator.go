// Package validator checks templates at authoring time, so problems like a
// misspelled generator name surface to editors as a batch of issues instead
// of silently rendering empty sections in production.
package validator

import (
	"fmt"
	"strings"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/conditions"
	"github.com/agentpress/agentpress/pkg/generators"
	"github.com/agentpress/agentpress/pkg/tokens"
)

// Severity splits hard errors from advisory warnings.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Issue is one validation finding.
type Issue struct {
	Severity  Severity `json:"severity" yaml:"severity"`
	SectionID string   `json:"section_id,omitempty" yaml:"section_id,omitempty"`
	Message   string   `json:"message" yaml:"message"`
}

// Report collects every finding for one template. Validation never stops at
// the first problem.
type Report struct {
	TemplateID string  `json:"template_id" yaml:"template_id"`
	Issues     []Issue `json:"issues" yaml:"issues"`
}

// HasErrors reports whether any issue is a hard error.
func (r *Report) HasErrors() bool {
	for _, i := range r.Issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

func (r *Report) add(sev Severity, sectionID, format string, args ...interface{}) {
	r.Issues = append(r.Issues, Issue{
		Severity:  sev,
		SectionID: sectionID,
		Message:   fmt.Sprintf(format, args...),
	})
}

// ValidateTemplate checks every section of a template against the generator
// registry. sample, when non-nil, additionally checks token templates for
// tokens that resolve empty against representative data.
func ValidateTemplate(t *models.Template, reg *generators.Registry, sample *models.RenderContext) *Report {
	report := &Report{TemplateID: t.ID}

	if len(t.Sections) == 0 {
		report.add(SeverityError, "", "template has no sections")
		return report
	}

	seen := make(map[string]bool)
	for _, s := range t.Sections {
		if s.ID == "" {
			report.add(SeverityError, "", "section with kind %q has no id", s.Kind)
			continue
		}
		if seen[s.ID] {
			report.add(SeverityError, s.ID, "duplicate section id %q", s.ID)
		}
		seen[s.ID] = true

		validateKind(report, s, reg)
		validateCondition(report, s)
		if sample != nil {
			validateTokens(report, s, sample)
		}
	}
	return report
}

func validateKind(report *Report, s models.Section, reg *generators.Registry) {
	switch s.Kind {
	case models.SectionStatic, models.SectionToken:
		if strings.TrimSpace(s.Body) == "" {
			report.add(SeverityError, s.ID, "%s section has an empty body", s.Kind)
		}
	case models.SectionGenerated:
		if !reg.Has(s.Body) {
			report.add(SeverityError, s.ID,
				"unknown generator %q; it would render nothing (known: %s)",
				s.Body, strings.Join(reg.Names(), ", "))
		}
	default:
		report.add(SeverityError, s.ID, "unknown section kind %q", s.Kind)
	}
}

// validateCondition surfaces the fail-open fallback: an unparsable condition
// renders the section for every context, which is almost never what the
// author meant. Distinct from a condition that parses and evaluates false.
func validateCondition(report *Report, s models.Section) {
	if s.Condition == "" {
		return
	}
	if w := conditions.Compile(s.Condition).Warning(); w != "" {
		report.add(SeverityWarning, s.ID, "%s", w)
	}
}

func validateTokens(report *Report, s models.Section, sample *models.RenderContext) {
	if s.Kind != models.SectionToken {
		return
	}
	if missing := tokens.FindMissingTokens(s.Body, sample); len(missing) > 0 {
		report.add(SeverityWarning, s.ID,
			"tokens resolve empty against sample data and will pass through verbatim: %s",
			strings.Join(missing, ", "))
	}
}

// ValidateOverrides checks override target ids against a template's section
// set, catching edits that silently target nothing.
func ValidateOverrides(t *models.Template, article *models.Article) *Report {
	report := &Report{TemplateID: t.ID}

	ids := make(map[string]bool, len(t.Sections))
	for _, s := range t.Sections {
		ids[s.ID] = true
	}

	for _, o := range article.SectionOverrides {
		if !ids[o.SectionID] {
			report.add(SeverityWarning, o.SectionID,
				"article override targets section %q which is not in template %q", o.SectionID, t.ID)
		}
	}
	for _, bundle := range article.TenantOverrides {
		for _, o := range bundle.Sections {
			if !ids[o.SecID] {
				report.add(SeverityWarning, o.SecID,
					"tenant %q override targets section %q which is not in template %q",
					bundle.Tenant, o.SecID, t.ID)
			}
		}
	}
	return report
}
