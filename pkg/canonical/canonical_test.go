package canonical

import (
	"strings"
	"testing"

	"github.com/agentpress/agentpress/models"
)

const selfURL = "https://mariasantoshomes.com/living-in-austin"

func primaryTenant() *models.Tenant {
	return &models.Tenant{
		Name:    "Network HQ",
		Slug:    "network-hq",
		Domains: []models.Domain{{Host: "network.example.com", IsPrimary: true}},
	}
}

// richRenderedText scores well above the safe threshold against the paired
// agent and location fixtures.
const richRenderedText = `Austin Market Snapshot

The median home price in Austin currently sits at $550,000 and homes spend an
average of 45 days on the market. From Mueller to East Austin, each pocket of
the city has its own character. Maria Santos has helped buyers here for 14
years; call 512-555-0147.`

func richFixtures() (*models.Agent, *models.LocationData) {
	agent := &models.Agent{
		Name: "Maria Santos", Phone: "512-555-0147", Email: "maria@santoshomes.com",
		City: "Austin", Brokerage: "Santos Realty",
		Rating: &models.Rating{Value: 4.9, Count: 1200},
	}
	location := &models.LocationData{
		Name: "Austin", Population: 978908, MedianHomePrice: 550000,
		MedianRent: 1800, PricePerSqft: 310, DaysOnMarket: 45,
		MarketTrend:   models.TrendRising,
		Neighborhoods: []models.Neighborhood{{Name: "Mueller"}, {Name: "East Austin"}},
		Schools:       []models.School{{Name: "Austin High"}},
		Demographics:  &models.Demographics{MedianIncome: 86000, DiversityIndex: 0.7},
	}
	return agent, location
}

func TestDecideMainAlwaysSelf(t *testing.T) {
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationMain,
		PrimaryTenant:   primaryTenant(),
	}

	// Main-mode content owns its URL no matter how thin the render is.
	for _, text := range []string{"", "x", richRenderedText} {
		d := Decide(article, nil, nil, nil, text, selfURL)
		if !d.IsSelfReferencing || d.CanonicalURL != selfURL {
			t.Errorf("main-mode decision for text %q = %+v, want self-canonical", text, d)
		}
		if d.Status != StatusSafe {
			t.Errorf("main-mode status = %q, want %q", d.Status, StatusSafe)
		}
	}
}

func TestDecideAgentSpecificNarrowIsSelf(t *testing.T) {
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationAgentSpecific,
	}

	d := Decide(article, nil, nil, nil, "thin duplicate text", selfURL)
	if d.Status != StatusSafe || !d.IsSelfReferencing {
		t.Errorf("narrow agent-specific decision = %+v, want safe self-canonical", d)
	}
	if d.Score != -1 {
		t.Errorf("Score = %d, want -1 when no scoring was needed", d.Score)
	}
}

func TestDecideWideSafeScore(t *testing.T) {
	agent, location := richFixtures()
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationSyndicated,
		PrimaryTenant:   primaryTenant(),
	}

	d := Decide(article, &models.Tenant{Slug: "maria-santos"}, agent, location, richRenderedText, selfURL)
	if d.Status != StatusSafe {
		t.Fatalf("Status = %q (score %d), want %q", d.Status, d.Score, StatusSafe)
	}
	if !d.IsSelfReferencing {
		t.Error("safe decision must be self-referencing")
	}
}

func TestDecideWideLowScoreDefersToPrimary(t *testing.T) {
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationSyndicated,
		PrimaryTenant:   primaryTenant(),
	}

	// Thin text with no supporting data scores below the borderline.
	d := Decide(article, &models.Tenant{Slug: "maria-santos"}, nil, nil, "generic filler", selfURL)
	if d.Status != StatusDeferred {
		t.Fatalf("Status = %q (score %d), want %q", d.Status, d.Score, StatusDeferred)
	}
	if d.IsSelfReferencing {
		t.Error("deferred decision must not be self-referencing")
	}
	if d.CanonicalURL != "https://network.example.com/living-in-austin" {
		t.Errorf("CanonicalURL = %q, want the primary tenant URL", d.CanonicalURL)
	}
}

func TestDecideWideLowScoreNoPrimaryAcceptsRisk(t *testing.T) {
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationSyndicated,
	}

	d := Decide(article, &models.Tenant{Slug: "maria-santos"}, nil, nil, "generic filler", selfURL)
	if d.Status != StatusRiskAccepted {
		t.Fatalf("Status = %q, want %q", d.Status, StatusRiskAccepted)
	}
	if !d.IsSelfReferencing {
		t.Error("risk-accepted decision stays self-canonical")
	}
	if !strings.Contains(d.Warning, "duplicate-content risk") {
		t.Errorf("Warning = %q, want an explicit duplicate-content risk note", d.Warning)
	}
}

func TestDecideOnPrimaryTenantItselfNeverDefers(t *testing.T) {
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationSyndicated,
		PrimaryTenant:   primaryTenant(),
	}

	// Rendering on the primary tenant itself: deferring would point the
	// canonical at the page being rendered.
	d := Decide(article, primaryTenant(), nil, nil, "generic filler", selfURL)
	if d.Status == StatusDeferred {
		t.Fatalf("decision on the primary tenant deferred to itself: %+v", d)
	}
	if !d.IsSelfReferencing {
		t.Error("primary tenant's own copy must stay self-canonical")
	}
}

func TestDecideStructuralFallback(t *testing.T) {
	article := &models.Article{
		Slug:            "living-in-austin",
		SyndicationMode: models.SyndicationSyndicated,
		PrimaryTenant:   primaryTenant(),
	}

	d := Decide(article, &models.Tenant{Slug: "maria-santos"}, nil, nil, "", selfURL)
	if d.Status != StatusStructural {
		t.Fatalf("Status = %q, want %q with no rendered text", d.Status, StatusStructural)
	}
	if d.IsSelfReferencing {
		t.Error("structural fallback with a differing primary tenant should defer")
	}
	if d.Score != -1 {
		t.Errorf("Score = %d, want -1 with no text", d.Score)
	}
}

func TestPrimaryTenantURL(t *testing.T) {
	article := &models.Article{Slug: "living-in-austin"}

	if got := PrimaryTenantURL(article); got != "" {
		t.Errorf("PrimaryTenantURL with no primary tenant = %q, want empty", got)
	}

	article.PrimaryTenant = primaryTenant()
	if got := PrimaryTenantURL(article); got != "https://network.example.com/living-in-austin" {
		t.Errorf("PrimaryTenantURL = %q", got)
	}

	article.PrimaryTenant.LinkedAgent = &models.Agent{Slug: "maria-santos"}
	want := "https://network.example.com/agents/maria-santos/living-in-austin"
	if got := PrimaryTenantURL(article); got != want {
		t.Errorf("PrimaryTenantURL with linked agent = %q, want %q", got, want)
	}
}

func TestRecommendStrategy(t *testing.T) {
	narrow := &models.Article{SyndicatedAgents: make([]string, 5)}
	if s := RecommendStrategy(narrow); s.Kind != StrategySelf || s.MinUniqueness != 30 {
		t.Errorf("narrow strategy = %+v, want self/30", s)
	}

	wide := &models.Article{SyndicatedAgents: make([]string, 25), PrimaryTenant: primaryTenant()}
	if s := RecommendStrategy(wide); s.Kind != StrategyPrimary || s.MinUniqueness != 40 {
		t.Errorf("wide strategy = %+v, want primary/40", s)
	}

	everywhere := &models.Article{ShowOnAllStorefronts: true, PrimaryTenant: primaryTenant()}
	if s := RecommendStrategy(everywhere); s.Kind != StrategyPrimary || s.MinUniqueness != 50 {
		t.Errorf("network-wide strategy = %+v, want primary/50", s)
	}
}

func TestRecommendStrategyErrors(t *testing.T) {
	// 60 storefronts and nobody holds canonical authority.
	article := &models.Article{SyndicatedAgents: make([]string, 60)}
	s := RecommendStrategy(article)
	if len(s.Errors) == 0 {
		t.Fatal("wide syndication without a primary tenant must report an error")
	}

	article.PrimaryTenant = &models.Tenant{Slug: "hq"} // no domains
	s = RecommendStrategy(article)
	if len(s.Errors) == 0 {
		t.Fatal("primary tenant without a domain must report an error")
	}
}

func TestSelfURL(t *testing.T) {
	tests := []struct {
		base, slug, want string
	}{
		{"https://example.com", "guide", "https://example.com/guide"},
		{"https://example.com/", "guide", "https://example.com/guide"},
		{"", "guide", "/guide"},
	}
	for _, tt := range tests {
		if got := SelfURL(tt.base, tt.slug); got != tt.want {
			t.Errorf("SelfURL(%q, %q) = %q, want %q", tt.base, tt.slug, got, tt.want)
		}
	}
}
