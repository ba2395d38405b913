// Package generators holds the catalog of section generators: pure functions
// that turn agent, location, and announcement data into self-contained blocks
// of text. Every generator returns the empty string when its minimum required
// data is absent - optional content disappears instead of rendering broken.
package generators

import (
	"sort"
	"time"

	"github.com/agentpress/agentpress/models"
)

// Input is the data one generator call may draw from. Any field may be nil
// or empty.
type Input struct {
	Agent         *models.Agent
	Location      *models.LocationData
	Announcements []models.Announcement

	// Now anchors time-boxed content (hot deals, announcement expiry).
	Now time.Time
}

// Func is a pure section generator.
type Func func(in Input) string

// Registry is the closed, named set of generators. It is built once at
// startup and read-only afterwards, so it is safe to share across
// concurrent render calls. It is passed explicitly into renderers rather
// than living as package state, which keeps test doubles possible.
type Registry struct {
	funcs map[string]Func
}

// NewRegistry builds the full generator catalog.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}

	// Market statistics group.
	r.register("market_stats", MarketStats)
	r.register("price_comparison", PriceComparison)
	r.register("cost_of_living", CostOfLiving)
	r.register("local_facts", LocalFacts)
	r.register("key_employers", KeyEmployers)

	// Community group.
	r.register("neighborhoods", Neighborhoods)
	r.register("schools", Schools)

	// Cultural and demographic group.
	r.register("places_of_worship", PlacesOfWorship)
	r.register("cultural_centers", CulturalCenters)
	r.register("cultural_events", CulturalEvents)
	r.register("diversity_overview", DiversityOverview)
	r.register("community_amenities", CommunityAmenities)
	r.register("languages_spoken", LanguagesSpoken)

	// Agent authority group.
	r.register("agent_expertise", AgentExpertise)
	r.register("agent_reviews", AgentReviews)
	r.register("agent_languages", AgentLanguages)
	r.register("areas_served", AreasServed)
	r.register("faq", FAQ)
	r.register("contact_cta", ContactCTA)

	// Time-boxed content.
	r.register("hot_deals", HotDeals)
	r.register("announcements", Announcements)

	// Interchangeable intro variants. Different tenants pick different
	// variants so syndicated copies open with structurally different prose.
	r.register("intro_standard", IntroStandard)
	r.register("intro_market", IntroMarket)
	r.register("intro_community", IntroCommunity)
	r.register("intro_personal", IntroPersonal)
	r.register("intro_question", IntroQuestion)

	// Interchangeable closing variants.
	r.register("closing_standard", ClosingStandard)
	r.register("closing_cta", ClosingCTA)
	r.register("closing_market", ClosingMarket)

	return r
}

func (r *Registry) register(name string, fn Func) {
	r.funcs[name] = fn
}

// Generate runs the named generator. The second return value reports whether
// the name is registered: looking up an unknown generator is a deliberate,
// reportable no-op, never a panic.
func (r *Registry) Generate(name string, in Input) (string, bool) {
	fn, ok := r.funcs[name]
	if !ok {
		return "", false
	}
	return fn(in), true
}

// Has reports whether a generator name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.funcs[name]
	return ok
}

// Names returns the sorted catalog, for validation messages.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IntroVariants and ClosingVariants enumerate the variant-eligible slots.
var (
	IntroVariants   = []string{"standard", "market", "community", "personal", "question"}
	ClosingVariants = []string{"standard", "cta", "market"}
)

// IntroGenerator maps a tenant's intro variant to its generator name,
// defaulting to the standard variant for unknown or empty values.
func IntroGenerator(variant string) string {
	for _, v := range IntroVariants {
		if v == variant {
			return "intro_" + v
		}
	}
	return "intro_standard"
}

// ClosingGenerator maps a tenant's closing variant to its generator name.
func ClosingGenerator(variant string) string {
	for _, v := range ClosingVariants {
		if v == variant {
			return "closing_" + v
		}
	}
	return "closing_standard"
}
