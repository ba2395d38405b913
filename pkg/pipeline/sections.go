package pipeline

import "github.com/agentpress/agentpress/pkg/conditions"

// DefaultSection is one slot of the fixed agent-pipeline layout.
type DefaultSection struct {
	ID        string
	Name      string
	Generator string
	Condition string

	// VariantSlot marks the intro/closing slots whose generator is swapped
	// per tenant configuration.
	VariantSlot string // "intro", "closing", or empty
}

// defaultSections is the fixed, ordered layout the agent pipeline renders.
// Order is significant: the final document concatenates in this order.
// Conditions gate sections on the data they need; a failed condition or an
// empty generator result simply drops the section.
var defaultSections = []DefaultSection{
	{ID: "intro", Name: "Introduction", Generator: "intro_standard", Condition: "cityData.name", VariantSlot: "intro"},
	{ID: "market_stats", Name: "Market Snapshot", Generator: "market_stats", Condition: "cityData.medianHomePrice"},
	{ID: "price_comparison", Name: "Price Comparison", Generator: "price_comparison", Condition: "cityData.stateMedianPrice"},
	{ID: "cost_of_living", Name: "Cost of Living", Generator: "cost_of_living", Condition: "cityData.medianHomePrice"},
	{ID: "neighborhoods", Name: "Neighborhoods", Generator: "neighborhoods", Condition: "cityData.neighborhoods.length > 0"},
	{ID: "schools", Name: "Schools", Generator: "schools", Condition: "cityData.schools.length > 0"},
	{ID: "local_facts", Name: "Quick Facts", Generator: "local_facts", Condition: "cityData.localFacts.length > 0"},
	{ID: "key_employers", Name: "Key Employers", Generator: "key_employers", Condition: "cityData.keyEmployers.length > 0"},
	{ID: "diversity_overview", Name: "Diversity", Generator: "diversity_overview", Condition: "cityData.demographics"},
	{ID: "cultural_events", Name: "Events", Generator: "cultural_events", Condition: "cityData.culturalEvents.length > 0"},
	{ID: "community_amenities", Name: "Amenities", Generator: "community_amenities", Condition: "cityData.communityAmenities.length > 0"},
	{ID: "languages_spoken", Name: "Languages", Generator: "languages_spoken", Condition: "cityData.languagesSpoken.length > 0"},
	{ID: "agent_expertise", Name: "About the Agent", Generator: "agent_expertise", Condition: "agent.name"},
	{ID: "areas_served", Name: "Areas Served", Generator: "areas_served", Condition: "agent.areasServed.length > 0"},
	{ID: "agent_reviews", Name: "Reviews", Generator: "agent_reviews", Condition: "agent.rating.value"},
	{ID: "faq", Name: "FAQ", Generator: "faq", Condition: "agent.faqs.length > 0"},
	{ID: "hot_deals", Name: "Current Offers", Generator: "hot_deals", Condition: "agent.hotDeals.length > 0"},
	{ID: "announcements", Name: "Announcements", Generator: "announcements"},
	{ID: "contact_cta", Name: "Contact", Generator: "contact_cta", Condition: "agent.name"},
	{ID: "closing", Name: "Closing", Generator: "closing_standard", Condition: "cityData.name", VariantSlot: "closing"},
}

// compiledSection is a default section with its condition compiled once.
type compiledSection struct {
	DefaultSection
	cond conditions.Expr
}

// compileDefaults compiles the fixed layout. Called once per orchestrator,
// not per render.
func compileDefaults() []compiledSection {
	out := make([]compiledSection, len(defaultSections))
	for i, s := range defaultSections {
		out[i] = compiledSection{DefaultSection: s, cond: conditions.Compile(s.Condition)}
	}
	return out
}

// DefaultSections exposes a copy of the fixed layout for validation and
// documentation tooling.
func DefaultSections() []DefaultSection {
	out := make([]DefaultSection, len(defaultSections))
	copy(out, defaultSections)
	return out
}
