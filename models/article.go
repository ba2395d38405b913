package models

// SyndicationMode describes how widely an article is published across the network.
type SyndicationMode string

const (
	// SyndicationMain marks the network's own editorial content.
	SyndicationMain SyndicationMode = "main"
	// SyndicationAgentSpecific marks content authored for a single storefront.
	SyndicationAgentSpecific SyndicationMode = "agent-specific"
	// SyndicationSyndicated marks content republished across many storefronts.
	SyndicationSyndicated SyndicationMode = "syndicated"
)

// Article is the authored unit of content. It is a read-only input to the
// render pipeline: editors and the syndication driver mutate it, the engine
// never does.
type Article struct {
	ID              string          `yaml:"id" json:"id"`
	Title           string          `yaml:"title" json:"title"`
	Slug            string          `yaml:"slug" json:"slug"`
	MetaDescription string          `yaml:"metaDescription,omitempty" json:"meta_description,omitempty"`
	SyndicationMode SyndicationMode `yaml:"syndicationMode" json:"syndication_mode"`

	// ShowOnAllStorefronts publishes the article to every tenant regardless
	// of the syndicated-agents list.
	ShowOnAllStorefronts bool `yaml:"showOnAllStorefronts" json:"show_on_all_storefronts"`

	// UseTemplate selects template-based rendering over the raw body.
	UseTemplate bool      `yaml:"useTemplate" json:"use_template"`
	Template    *Template `yaml:"template,omitempty" json:"template,omitempty"`

	// RawBody is the authored body for non-template articles. Tokens are
	// substituted but no section machinery applies.
	RawBody string `yaml:"rawBody,omitempty" json:"raw_body,omitempty"`

	// SectionOverrides are article-level edits keyed by section id.
	SectionOverrides []ArticleOverride `yaml:"sectionOverrides,omitempty" json:"section_overrides,omitempty"`

	// TenantOverrides carry per-storefront customization bundles.
	TenantOverrides []TenantOverride `yaml:"tenantOverrides,omitempty" json:"tenant_overrides,omitempty"`

	// SyndicatedAgents lists the agent slugs this article has been pushed to.
	SyndicatedAgents []string `yaml:"syndicatedAgents,omitempty" json:"syndicated_agents,omitempty"`

	// PrimaryTenant names the storefront that holds canonical authority when
	// rendered copies are too similar to stand on their own.
	PrimaryTenant *Tenant `yaml:"primaryTenant,omitempty" json:"primary_tenant,omitempty"`

	// DefaultLocation is the article's own location-data link, used when
	// neither the tenant bundle nor the caller supplies one.
	DefaultLocation *LocationData `yaml:"defaultLocation,omitempty" json:"default_location,omitempty"`

	Language string `yaml:"language,omitempty" json:"language,omitempty"`
}

// OverrideType is one of the four section edit operations.
type OverrideType string

const (
	OverrideReplace OverrideType = "replace"
	OverridePrepend OverrideType = "prepend"
	OverrideAppend  OverrideType = "append"
	OverrideHide    OverrideType = "hide"
)

// ArticleOverride is the article-level override shape (the richer original
// schema). RichContent, when present, wins over Content.
type ArticleOverride struct {
	SectionID    string       `yaml:"sectionId" json:"section_id"`
	OverrideType OverrideType `yaml:"overrideType" json:"override_type"`
	Content      string       `yaml:"content,omitempty" json:"content,omitempty"`
	RichContent  string       `yaml:"richContent,omitempty" json:"rich_content,omitempty"`
}

// TenantSectionOverride is the shorter tenant-level override shape.
type TenantSectionOverride struct {
	SecID   string       `yaml:"secId" json:"sec_id"`
	Type    OverrideType `yaml:"type" json:"type"`
	Content string       `yaml:"content,omitempty" json:"content,omitempty"`
}

// TenantOverride bundles everything one storefront customizes on an article.
type TenantOverride struct {
	Tenant   string                  `yaml:"tenant" json:"tenant"`
	Agent    *Agent                  `yaml:"agent,omitempty" json:"agent,omitempty"`
	Location *LocationData           `yaml:"locationData,omitempty" json:"location_data,omitempty"`
	Sections []TenantSectionOverride `yaml:"sections,omitempty" json:"sections,omitempty"`

	// CustomTokens add or shadow token values for this storefront only.
	CustomTokens map[string]string `yaml:"customTokens,omitempty" json:"custom_tokens,omitempty"`

	// IntroVariant / ClosingVariant pick which interchangeable intro and
	// closing generator this storefront renders. Empty means standard.
	IntroVariant   string `yaml:"introVariant,omitempty" json:"intro_variant,omitempty"`
	ClosingVariant string `yaml:"closingVariant,omitempty" json:"closing_variant,omitempty"`
}

// OverrideFor returns the tenant override bundle for the given tenant slug.
func (a *Article) OverrideFor(tenantSlug string) *TenantOverride {
	for i := range a.TenantOverrides {
		if a.TenantOverrides[i].Tenant == tenantSlug {
			return &a.TenantOverrides[i]
		}
	}
	return nil
}
