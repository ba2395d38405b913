package models

// MarketTrend is the location's price-direction enumeration. It feeds the
// derived buyer/seller messaging tokens.
type MarketTrend string

const (
	TrendRising  MarketTrend = "rising"
	TrendStable  MarketTrend = "stable"
	TrendCooling MarketTrend = "cooling"
)

// LocationData holds city-level facts. Every field is optional; a missing
// field gates off the generator that would have rendered it.
type LocationData struct {
	Name  string `yaml:"name" json:"name"`
	State string `yaml:"state,omitempty" json:"state,omitempty"`
	Slug  string `yaml:"slug,omitempty" json:"slug,omitempty"`

	// Tier and Region group locations for batch syndication targeting.
	Tier   int    `yaml:"tier,omitempty" json:"tier,omitempty"`
	Region string `yaml:"region,omitempty" json:"region,omitempty"`

	Population int `yaml:"population,omitempty" json:"population,omitempty"`

	// Market statistics.
	MedianHomePrice int         `yaml:"medianHomePrice,omitempty" json:"median_home_price,omitempty"`
	MedianRent      int         `yaml:"medianRent,omitempty" json:"median_rent,omitempty"`
	PricePerSqft    int         `yaml:"pricePerSqft,omitempty" json:"price_per_sqft,omitempty"`
	DaysOnMarket    int         `yaml:"daysOnMarket,omitempty" json:"days_on_market,omitempty"`
	ActiveListings  int         `yaml:"activeListings,omitempty" json:"active_listings,omitempty"`
	YearOverYear    float64     `yaml:"yearOverYear,omitempty" json:"year_over_year,omitempty"`
	MarketTrend     MarketTrend `yaml:"marketTrend,omitempty" json:"market_trend,omitempty"`

	// StateMedianPrice supports price comparison against the wider market.
	StateMedianPrice int `yaml:"stateMedianPrice,omitempty" json:"state_median_price,omitempty"`

	Neighborhoods []Neighborhood `yaml:"neighborhoods,omitempty" json:"neighborhoods,omitempty"`
	Schools       []School       `yaml:"schools,omitempty" json:"schools,omitempty"`
	KeyEmployers  []string       `yaml:"keyEmployers,omitempty" json:"key_employers,omitempty"`
	LocalFacts    []string       `yaml:"localFacts,omitempty" json:"local_facts,omitempty"`

	Demographics *Demographics `yaml:"demographics,omitempty" json:"demographics,omitempty"`

	// Cultural and community data.
	PlacesOfWorship    []string `yaml:"placesOfWorship,omitempty" json:"places_of_worship,omitempty"`
	CulturalCenters    []string `yaml:"culturalCenters,omitempty" json:"cultural_centers,omitempty"`
	CulturalEvents     []string `yaml:"culturalEvents,omitempty" json:"cultural_events,omitempty"`
	CommunityAmenities []string `yaml:"communityAmenities,omitempty" json:"community_amenities,omitempty"`
	LanguagesSpoken    []string `yaml:"languagesSpoken,omitempty" json:"languages_spoken,omitempty"`
}

// Neighborhood is one named area within a city.
type Neighborhood struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	MedianPrice int    `yaml:"medianPrice,omitempty" json:"median_price,omitempty"`
}

// School is one school serving the city.
type School struct {
	Name   string `yaml:"name" json:"name"`
	Type   string `yaml:"type,omitempty" json:"type,omitempty"` // elementary, middle, high
	Rating int    `yaml:"rating,omitempty" json:"rating,omitempty"`
}

// Demographics summarizes the city's population mix.
type Demographics struct {
	MedianAge      float64 `yaml:"medianAge,omitempty" json:"median_age,omitempty"`
	MedianIncome   int     `yaml:"medianIncome,omitempty" json:"median_income,omitempty"`
	DiversityIndex float64 `yaml:"diversityIndex,omitempty" json:"diversity_index,omitempty"`
	ForeignBornPct float64 `yaml:"foreignBornPct,omitempty" json:"foreign_born_pct,omitempty"`
}
