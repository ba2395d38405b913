package generators

import (
	"strings"
	"testing"
	"time"

	"github.com/agentpress/agentpress/models"
)

var testNow = time.Date(2025, time.July, 10, 12, 0, 0, 0, time.UTC)

func richInput() Input {
	return Input{
		Agent: &models.Agent{
			Name:            "Maria Santos",
			Phone:           "512-555-0147",
			Email:           "maria@santoshomes.com",
			YearsExperience: 14,
			AreasServed:     []string{"Austin", "Round Rock"},
			Rating:          &models.Rating{Value: 4.9, Count: 1200},
		},
		Location: &models.LocationData{
			Name:             "Austin",
			State:            "TX",
			Population:       978908,
			MedianHomePrice:  550000,
			MedianRent:       1800,
			DaysOnMarket:     45,
			StateMedianPrice: 350000,
			MarketTrend:      models.TrendRising,
			Neighborhoods: []models.Neighborhood{
				{Name: "Mueller", MedianPrice: 650000},
				{Name: "East Austin"},
			},
			CommunityAmenities: []string{"greenbelt trails", "farmers markets"},
		},
		Now: testNow,
	}
}

func TestRegistryCatalog(t *testing.T) {
	reg := NewRegistry()

	required := []string{
		"market_stats", "price_comparison", "cost_of_living", "local_facts", "key_employers",
		"neighborhoods", "schools",
		"places_of_worship", "cultural_centers", "cultural_events",
		"diversity_overview", "community_amenities", "languages_spoken",
		"agent_expertise", "agent_reviews", "agent_languages", "areas_served",
		"faq", "contact_cta",
		"hot_deals", "announcements",
		"intro_standard", "intro_market", "intro_community", "intro_personal", "intro_question",
		"closing_standard", "closing_cta", "closing_market",
	}
	for _, name := range required {
		if !reg.Has(name) {
			t.Errorf("registry is missing %q", name)
		}
	}
	if got := len(reg.Names()); got != len(required) {
		t.Errorf("registry has %d generators, want %d", got, len(required))
	}
}

func TestGenerateUnknownIsNoOp(t *testing.T) {
	reg := NewRegistry()

	out, ok := reg.Generate("definitely_not_registered", richInput())
	if ok {
		t.Error("unknown generator reported ok = true")
	}
	if out != "" {
		t.Errorf("unknown generator produced output %q", out)
	}
}

func TestGeneratorsEmptyOnMissingData(t *testing.T) {
	reg := NewRegistry()

	// With no data at all, every generator must degrade to empty output
	// rather than rendering a broken fragment.
	empty := Input{Now: testNow}
	for _, name := range reg.Names() {
		out, ok := reg.Generate(name, empty)
		if !ok {
			t.Fatalf("Generate(%q) not found", name)
		}
		if out != "" {
			t.Errorf("%s rendered %q with no input data, want empty", name, out)
		}
	}
}

func TestMarketStats(t *testing.T) {
	out := MarketStats(richInput())
	if !strings.Contains(out, "$550,000") {
		t.Errorf("MarketStats missing formatted median price:\n%s", out)
	}
	if !strings.Contains(out, "45 days") {
		t.Errorf("MarketStats missing days on market:\n%s", out)
	}
}

func TestPriceComparison(t *testing.T) {
	out := PriceComparison(richInput())
	// 550k vs 350k statewide is 57% more.
	if !strings.Contains(out, "57% more") {
		t.Errorf("PriceComparison = %q, want a 57%% more comparison", out)
	}

	in := richInput()
	in.Location.StateMedianPrice = 0
	if out := PriceComparison(in); out != "" {
		t.Errorf("PriceComparison without a state median rendered %q, want empty", out)
	}
}

func TestHotDealsFiltersAndTruncates(t *testing.T) {
	expired := testNow.AddDate(0, 0, -1)
	future := testNow.AddDate(0, 1, 0)

	agent := &models.Agent{Name: "Maria Santos"}
	agent.HotDeals = []models.HotDeal{
		{Title: "Expired special", Active: true, Priority: 99, ExpiresAt: &expired},
		{Title: "Inactive special", Active: false, Priority: 98},
		{Title: "Deal A", Active: true, Priority: 1},
		{Title: "Deal B", Active: true, Priority: 2},
		{Title: "Deal C", Active: true, Priority: 3},
		{Title: "Deal D", Active: true, Priority: 4},
		{Title: "Deal E", Active: true, Priority: 5},
		{Title: "Top deal", Active: true, Priority: 10, ExpiresAt: &future},
	}

	out := HotDeals(Input{Agent: agent, Now: testNow})

	if strings.Contains(out, "Expired special") {
		t.Errorf("expired deal rendered:\n%s", out)
	}
	if strings.Contains(out, "Inactive special") {
		t.Errorf("inactive deal rendered:\n%s", out)
	}
	if !strings.Contains(out, "Top deal") {
		t.Errorf("highest priority deal missing:\n%s", out)
	}
	if !strings.Contains(out, "(through August 10, 2025)") {
		t.Errorf("expiry date not rendered:\n%s", out)
	}
	// 6 live deals truncate to 5: the lowest priority one drops.
	if strings.Contains(out, "Deal A") {
		t.Errorf("truncation kept the lowest-priority deal:\n%s", out)
	}
	if got := strings.Count(out, "\n- "); got != 5 {
		t.Errorf("rendered %d deals, want 5:\n%s", got, out)
	}
}

func TestAnnouncements(t *testing.T) {
	expired := testNow.AddDate(0, 0, -2)
	in := Input{
		Now: testNow,
		Announcements: []models.Announcement{
			{Title: "Old news", ExpiresAt: &expired},
			{Title: "Open house", Priority: 1, CTA: &models.CTA{Text: "RSVP", Link: "https://example.com/rsvp"}},
			{Title: "Rate watch", Priority: 5},
		},
	}

	out := Announcements(in)
	if strings.Contains(out, "Old news") {
		t.Errorf("expired announcement rendered:\n%s", out)
	}
	if !strings.Contains(out, "[RSVP -> https://example.com/rsvp]") {
		t.Errorf("CTA not rendered:\n%s", out)
	}
	if strings.Index(out, "Rate watch") > strings.Index(out, "Open house") {
		t.Errorf("announcements not priority ordered:\n%s", out)
	}
}

func TestIntroVariantsDiverge(t *testing.T) {
	in := richInput()

	outputs := map[string]string{}
	for _, variant := range IntroVariants {
		name := IntroGenerator(variant)
		out, ok := NewRegistry().Generate(name, in)
		if !ok {
			t.Fatalf("intro variant %q not registered", variant)
		}
		if out == "" {
			t.Fatalf("intro variant %q rendered empty with rich input", variant)
		}
		outputs[variant] = out
	}

	// Same input, structurally different prose: no two variants may match.
	for a, textA := range outputs {
		for b, textB := range outputs {
			if a < b && textA == textB {
				t.Errorf("intro variants %q and %q render identical text", a, b)
			}
		}
	}
}

func TestVariantFallsBackToStandard(t *testing.T) {
	if got := IntroGenerator(""); got != "intro_standard" {
		t.Errorf("IntroGenerator(\"\") = %q, want intro_standard", got)
	}
	if got := IntroGenerator("no-such-variant"); got != "intro_standard" {
		t.Errorf("IntroGenerator(unknown) = %q, want intro_standard", got)
	}
	if got := ClosingGenerator("cta"); got != "closing_cta" {
		t.Errorf("ClosingGenerator(cta) = %q, want closing_cta", got)
	}
	if got := ClosingGenerator("bogus"); got != "closing_standard" {
		t.Errorf("ClosingGenerator(unknown) = %q, want closing_standard", got)
	}
}

func TestIntroPersonalNeedsAgent(t *testing.T) {
	in := richInput()
	in.Agent = nil
	if out := IntroPersonal(in); out != "" {
		t.Errorf("IntroPersonal without an agent rendered %q, want empty", out)
	}
}

func TestClosingCTANeedsContact(t *testing.T) {
	in := richInput()
	in.Agent.Phone = ""
	in.Agent.Email = ""
	if out := ClosingCTA(in); out != "" {
		t.Errorf("ClosingCTA without contact info rendered %q, want empty", out)
	}
}
