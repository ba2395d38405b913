package validator

import (
	"strings"
	"testing"
	"time"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/generators"
)

func validTemplate() *models.Template {
	return &models.Template{
		ID: "city-guide",
		Sections: []models.Section{
			{ID: "intro", Kind: models.SectionToken, Body: "Welcome to {{CITY_NAME}}."},
			{ID: "market", Kind: models.SectionGenerated, Body: "market_stats", Condition: "cityData.medianHomePrice"},
			{ID: "legal", Kind: models.SectionStatic, Body: "Equal housing opportunity."},
		},
	}
}

func issueMessages(r *Report) string {
	msgs := make([]string, len(r.Issues))
	for i, issue := range r.Issues {
		msgs[i] = string(issue.Severity) + ": " + issue.Message
	}
	return strings.Join(msgs, "\n")
}

func TestValidateTemplateClean(t *testing.T) {
	report := ValidateTemplate(validTemplate(), generators.NewRegistry(), nil)
	if len(report.Issues) != 0 {
		t.Errorf("clean template produced issues:\n%s", issueMessages(report))
	}
	if report.HasErrors() {
		t.Error("HasErrors() = true for a clean template")
	}
}

func TestValidateTemplateNoSections(t *testing.T) {
	report := ValidateTemplate(&models.Template{ID: "empty"}, generators.NewRegistry(), nil)
	if !report.HasErrors() {
		t.Fatal("template with no sections must be an error")
	}
}

func TestValidateTemplateCollectsAllIssues(t *testing.T) {
	tpl := &models.Template{
		ID: "broken",
		Sections: []models.Section{
			{ID: "a", Kind: models.SectionStatic, Body: ""},                          // empty body
			{ID: "a", Kind: models.SectionToken, Body: "{{CITY_NAME}}"},              // duplicate id
			{ID: "b", Kind: models.SectionGenerated, Body: "no_such_generator"},      // unknown generator
			{ID: "c", Kind: "mystery", Body: "x"},                                    // unknown kind
			{ID: "d", Kind: models.SectionStatic, Body: "x", Condition: "not valid"}, // fail-open condition
		},
	}

	report := ValidateTemplate(tpl, generators.NewRegistry(), nil)

	// Validation never stops at the first problem.
	if len(report.Issues) < 5 {
		t.Fatalf("got %d issues, want all 5 problems reported:\n%s", len(report.Issues), issueMessages(report))
	}
	if !report.HasErrors() {
		t.Error("HasErrors() = false")
	}

	msgs := issueMessages(report)
	if !strings.Contains(msgs, "no_such_generator") {
		t.Errorf("unknown generator not named:\n%s", msgs)
	}
	if !strings.Contains(msgs, "duplicate section id") {
		t.Errorf("duplicate id not reported:\n%s", msgs)
	}
	if !strings.Contains(msgs, "always renders") {
		t.Errorf("fail-open condition warning missing:\n%s", msgs)
	}
}

func TestValidateTemplateUnknownGeneratorListsCatalog(t *testing.T) {
	tpl := &models.Template{
		ID:       "t",
		Sections: []models.Section{{ID: "x", Kind: models.SectionGenerated, Body: "markt_stats"}},
	}

	report := ValidateTemplate(tpl, generators.NewRegistry(), nil)
	if !strings.Contains(issueMessages(report), "market_stats") {
		t.Errorf("error message should list known generators for typo recovery:\n%s", issueMessages(report))
	}
}

func TestValidateTemplateMissingTokensAgainstSample(t *testing.T) {
	tpl := &models.Template{
		ID: "t",
		Sections: []models.Section{
			{ID: "intro", Kind: models.SectionToken, Body: "Call {{AGENT_PHONE}} in {{CITY_NAME}}"},
		},
	}
	sample := &models.RenderContext{
		Agent:    &models.Agent{Name: "Maria Santos"}, // no phone
		Location: &models.LocationData{Name: "Austin"},
		Article:  &models.Article{},
		Now:      time.Date(2025, time.July, 1, 0, 0, 0, 0, time.UTC),
	}

	report := ValidateTemplate(tpl, generators.NewRegistry(), sample)

	msgs := issueMessages(report)
	if !strings.Contains(msgs, "AGENT_PHONE") {
		t.Errorf("unresolvable token not reported:\n%s", msgs)
	}
	if strings.Contains(msgs, "CITY_NAME") {
		t.Errorf("resolvable token wrongly reported:\n%s", msgs)
	}
	if report.HasErrors() {
		t.Error("missing tokens are advisory, not errors")
	}
}

func TestValidateOverrides(t *testing.T) {
	article := &models.Article{
		SectionOverrides: []models.ArticleOverride{
			{SectionID: "intro", OverrideType: models.OverrideHide},
			{SectionID: "ghost", OverrideType: models.OverrideHide},
		},
		TenantOverrides: []models.TenantOverride{
			{
				Tenant: "maria-santos",
				Sections: []models.TenantSectionOverride{
					{SecID: "phantom", Type: models.OverrideReplace, Content: "x"},
				},
			},
		},
	}

	report := ValidateOverrides(validTemplate(), article)

	msgs := issueMessages(report)
	if !strings.Contains(msgs, `"ghost"`) {
		t.Errorf("dangling article override not reported:\n%s", msgs)
	}
	if !strings.Contains(msgs, `"phantom"`) {
		t.Errorf("dangling tenant override not reported:\n%s", msgs)
	}
	if strings.Contains(msgs, `"intro"`) {
		t.Errorf("valid override target wrongly reported:\n%s", msgs)
	}
	if report.HasErrors() {
		t.Error("dangling overrides are warnings, not errors")
	}
}
