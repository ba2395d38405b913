package models

import "time"

// AnnouncementScope bounds where an announcement shows. Callers pre-filter
// announcements to the relevant scope set before passing them to the engine.
type AnnouncementScope string

const (
	ScopeGlobal AnnouncementScope = "global"
	ScopeState  AnnouncementScope = "state"
	ScopeCity   AnnouncementScope = "city"
	ScopeAgent  AnnouncementScope = "agent"
)

// AnnouncementType classifies a short scoped message.
type AnnouncementType string

const (
	AnnouncementBanner       AnnouncementType = "banner"
	AnnouncementAlert        AnnouncementType = "alert"
	AnnouncementNews         AnnouncementType = "news"
	AnnouncementPromo        AnnouncementType = "promo"
	AnnouncementHotDeal      AnnouncementType = "hot-deal"
	AnnouncementMarketUpdate AnnouncementType = "market-update"
	AnnouncementEvent        AnnouncementType = "event"
)

// CTA is an optional call-to-action attached to an announcement.
type CTA struct {
	Text   string `yaml:"text" json:"text"`
	Link   string `yaml:"link" json:"link"`
	NewTab bool   `yaml:"newTab,omitempty" json:"new_tab,omitempty"`
}

// Announcement is a scoped, typed short message.
type Announcement struct {
	Scope    AnnouncementScope `yaml:"scope" json:"scope"`
	Type     AnnouncementType  `yaml:"type" json:"type"`
	Title    string            `yaml:"title" json:"title"`
	Excerpt  string            `yaml:"excerpt,omitempty" json:"excerpt,omitempty"`
	CTA      *CTA              `yaml:"cta,omitempty" json:"cta,omitempty"`
	Priority int               `yaml:"priority,omitempty" json:"priority,omitempty"`

	ExpiresAt *time.Time `yaml:"expiresAt,omitempty" json:"expires_at,omitempty"`
}

// Expired reports whether the announcement's expiry has passed at `now`.
func (a *Announcement) Expired(now time.Time) bool {
	return a.ExpiresAt != nil && a.ExpiresAt.Before(now)
}
