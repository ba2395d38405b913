package models

import "time"

// RenderContext carries everything one rendering pass reads. It is built per
// call and never persisted.
type RenderContext struct {
	Agent         *Agent
	Location      *LocationData
	Tenant        *Tenant
	Article       *Article
	Announcements []Announcement

	// CustomTokens add or shadow token values for this pass.
	CustomTokens map[string]string

	// Now anchors time-derived output (season token, deal expiry). The zero
	// value means time.Now at resolution.
	Now time.Time
}

// Clock returns the context's time anchor, defaulting to the wall clock.
func (c *RenderContext) Clock() time.Time {
	if c.Now.IsZero() {
		return time.Now()
	}
	return c.Now
}

// UniquenessGrade is the qualitative band for a uniqueness score.
type UniquenessGrade string

const (
	GradeExcellent  UniquenessGrade = "excellent"
	GradeGood       UniquenessGrade = "good"
	GradeAcceptable UniquenessGrade = "acceptable"
	GradeRisky      UniquenessGrade = "risky"
	GradeDangerous  UniquenessGrade = "dangerous"
)

// UniquenessReport is the scorer's verdict plus advisory output.
type UniquenessReport struct {
	Score    int             `json:"score" yaml:"score"`
	Grade    UniquenessGrade `json:"grade" yaml:"grade"`
	IsUnique bool            `json:"is_unique" yaml:"is_unique"` // score >= 30

	DynamicRatio int `json:"dynamic_ratio" yaml:"dynamic_ratio"`
	TokenRatio   int `json:"token_ratio" yaml:"token_ratio"`
	StaticRatio  int `json:"static_ratio" yaml:"static_ratio"`

	Recommendations []string `json:"recommendations,omitempty" yaml:"recommendations,omitempty"`
	Warnings        []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// SEOMeta is the rendered page's head metadata.
type SEOMeta struct {
	Title        string `json:"title" yaml:"title"`
	Description  string `json:"description" yaml:"description"`
	CanonicalURL string `json:"canonical_url" yaml:"canonical_url"`
	NoIndex      bool   `json:"no_index" yaml:"no_index"`
}

// SectionTrace records one surviving section of a render pass.
type SectionTrace struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name,omitempty" yaml:"name,omitempty"`
	Content       string `json:"content" yaml:"content"`
	WasOverridden bool   `json:"was_overridden" yaml:"was_overridden"`
}

// RenderResult is the orchestrator's output for one article/tenant pass.
type RenderResult struct {
	Content    string           `json:"content" yaml:"content"`
	Meta       SEOMeta          `json:"meta" yaml:"meta"`
	Uniqueness UniquenessReport `json:"uniqueness" yaml:"uniqueness"`
	Sections   []SectionTrace   `json:"sections" yaml:"sections"`

	// CanonicalWarning carries the explicit duplicate-content-risk note when
	// a low-scoring syndicated copy has no primary tenant to defer to.
	CanonicalWarning string `json:"canonical_warning,omitempty" yaml:"canonical_warning,omitempty"`
}
