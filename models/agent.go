package models

import (
	"sort"
	"time"
)

// Agent is a storefront owner profile. Every field is optional; generators
// return empty text when the fields they need are absent.
type Agent struct {
	Slug      string `yaml:"slug" json:"slug"`
	Name      string `yaml:"name" json:"name"`
	FirstName string `yaml:"firstName,omitempty" json:"first_name,omitempty"`
	LastName  string `yaml:"lastName,omitempty" json:"last_name,omitempty"`

	Phone string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Email string `yaml:"email,omitempty" json:"email,omitempty"`

	Address   string `yaml:"address,omitempty" json:"address,omitempty"`
	City      string `yaml:"city,omitempty" json:"city,omitempty"`
	State     string `yaml:"state,omitempty" json:"state,omitempty"`
	Brokerage string `yaml:"brokerage,omitempty" json:"brokerage,omitempty"`

	Website      string            `yaml:"website,omitempty" json:"website,omitempty"`
	SocialLinks  map[string]string `yaml:"socialLinks,omitempty" json:"social_links,omitempty"`
	WorkingHours string            `yaml:"workingHours,omitempty" json:"working_hours,omitempty"`

	YearsExperience int      `yaml:"yearsExperience,omitempty" json:"years_experience,omitempty"`
	Services        []string `yaml:"services,omitempty" json:"services,omitempty"`
	Certifications  []string `yaml:"certifications,omitempty" json:"certifications,omitempty"`
	SEOKeywords     []string `yaml:"seoKeywords,omitempty" json:"seo_keywords,omitempty"`
	KnowsAbout      []string `yaml:"knowsAbout,omitempty" json:"knows_about,omitempty"`
	AreasServed     []string `yaml:"areasServed,omitempty" json:"areas_served,omitempty"`
	Languages       []string `yaml:"languages,omitempty" json:"languages,omitempty"`

	Rating *Rating `yaml:"rating,omitempty" json:"rating,omitempty"`
	FAQs   []FAQ   `yaml:"faqs,omitempty" json:"faqs,omitempty"`

	// HotDeals are time-boxed promotions. Generators filter to active deals
	// and sort by priority before rendering.
	HotDeals []HotDeal `yaml:"hotDeals,omitempty" json:"hot_deals,omitempty"`
}

// Rating is aggregate review data for an agent.
type Rating struct {
	Value float64 `yaml:"value" json:"value"`
	Count int     `yaml:"count" json:"count"`
	Best  float64 `yaml:"best,omitempty" json:"best,omitempty"`
}

// FAQ is one authored question/answer pair.
type FAQ struct {
	Question string `yaml:"question" json:"question"`
	Answer   string `yaml:"answer" json:"answer"`
}

// HotDeal is a time-boxed promotion attached to an agent.
type HotDeal struct {
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description,omitempty" json:"description,omitempty"`
	Active      bool       `yaml:"active" json:"active"`
	Priority    int        `yaml:"priority,omitempty" json:"priority,omitempty"`
	ExpiresAt   *time.Time `yaml:"expiresAt,omitempty" json:"expires_at,omitempty"`
}

// ActiveDeals returns the agent's currently-active deals sorted by priority
// (highest first). Deals whose expiry has passed at `now` are excluded.
func (a *Agent) ActiveDeals(now time.Time) []HotDeal {
	var active []HotDeal
	for _, d := range a.HotDeals {
		if !d.Active {
			continue
		}
		if d.ExpiresAt != nil && d.ExpiresAt.Before(now) {
			continue
		}
		active = append(active, d)
	}
	sort.SliceStable(active, func(i, j int) bool {
		return active[i].Priority > active[j].Priority
	})
	return active
}
