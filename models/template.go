package models

// SectionKind selects how a template section produces its base text.
type SectionKind string

const (
	// SectionStatic emits the body verbatim.
	SectionStatic SectionKind = "static"
	// SectionToken runs the token resolver over the body.
	SectionToken SectionKind = "token"
	// SectionGenerated dispatches to a named generator from the registry.
	SectionGenerated SectionKind = "generated"
)

// Section is one named, independently overridable block of a template.
type Section struct {
	ID   string      `yaml:"id" json:"id"`
	Name string      `yaml:"name,omitempty" json:"name,omitempty"`
	Kind SectionKind `yaml:"kind" json:"kind"`

	// Body is literal text for static sections, a token template for token
	// sections, and a generator name for generated sections.
	Body string `yaml:"body" json:"body"`

	// Condition is an optional visibility expression in the condition DSL.
	// Empty means always visible.
	Condition string `yaml:"condition,omitempty" json:"condition,omitempty"`

	// Override permissions. Both default to allowed.
	PostMayOverride   *bool `yaml:"postMayOverride,omitempty" json:"post_may_override,omitempty"`
	TenantMayOverride *bool `yaml:"tenantMayOverride,omitempty" json:"tenant_may_override,omitempty"`
}

// AllowsPostOverride reports whether article-level overrides may touch this section.
func (s *Section) AllowsPostOverride() bool {
	return s.PostMayOverride == nil || *s.PostMayOverride
}

// AllowsTenantOverride reports whether tenant-level overrides may touch this section.
func (s *Section) AllowsTenantOverride() bool {
	return s.TenantMayOverride == nil || *s.TenantMayOverride
}

// Template is an ordered list of sections. Order is significant: the rendered
// document concatenates sections in declaration order.
type Template struct {
	ID       string    `yaml:"id" json:"id"`
	Name     string    `yaml:"name,omitempty" json:"name,omitempty"`
	Sections []Section `yaml:"sections" json:"sections"`
}
