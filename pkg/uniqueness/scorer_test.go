package uniqueness

import (
	"strings"
	"testing"

	"github.com/agentpress/agentpress/models"
)

func richLocation() *models.LocationData {
	return &models.LocationData{
		Name:            "Austin",
		State:           "TX",
		Population:      978908,
		MedianHomePrice: 550000,
		MedianRent:      1800,
		PricePerSqft:    310,
		DaysOnMarket:    45,
		MarketTrend:     models.TrendRising,
		Neighborhoods:   []models.Neighborhood{{Name: "Mueller"}, {Name: "East Austin"}},
		Schools:         []models.School{{Name: "Austin High"}},
		KeyEmployers:    []string{"Dell", "Oracle"},
		Demographics:    &models.Demographics{MedianIncome: 86000, DiversityIndex: 0.72},
	}
}

func richAgent() *models.Agent {
	return &models.Agent{
		Name:      "Maria Santos",
		Phone:     "512-555-0147",
		Email:     "maria@santoshomes.com",
		City:      "Austin",
		Brokerage: "Santos Realty",
		Rating:    &models.Rating{Value: 4.9, Count: 1200},
	}
}

// richText resembles real rendered output: city and agent mentions, currency,
// durations, and local names.
const richText = `Austin Market Snapshot

The median home price in Austin currently sits at $550,000. Buyers are paying
about $310 per square foot. Homes spend an average of 45 days on the market.

From Mueller to East Austin, each pocket of the city has its own character.
Major employers include Dell and Oracle, anchoring a local economy serving
978,908 residents.

Maria Santos has helped families settle here for over a decade. Call
512-555-0147 to talk through your options.`

func TestScoreRichContext(t *testing.T) {
	report := Score(richText, richAgent(), richLocation())

	if report.Score < 70 {
		t.Errorf("Score = %d, want >= 70 for a fully data-rich render", report.Score)
	}
	if report.Grade != models.GradeExcellent {
		t.Errorf("Grade = %q, want %q", report.Grade, models.GradeExcellent)
	}
	if !report.IsUnique {
		t.Error("IsUnique = false for a rich render")
	}
}

func TestScoreBareTemplate(t *testing.T) {
	text := "Buying a home is a big decision. Work with a professional you trust. " +
		strings.Repeat("Generic advice that applies to every city in the country. ", 5)

	report := Score(text, nil, nil)

	if report.Score >= 30 {
		t.Errorf("Score = %d, want < 30 for pure template text with no data", report.Score)
	}
	if report.IsUnique {
		t.Error("IsUnique = true for pure template text")
	}
	if report.Grade != models.GradeDangerous && report.Grade != models.GradeRisky {
		t.Errorf("Grade = %q, want risky or dangerous", report.Grade)
	}
}

// Adding data never lowers the score: each enrichment step must score at
// least as high as the one before it.
func TestScoreMonotonicWithRichness(t *testing.T) {
	text := richText

	bare := Score(text, nil, nil)

	cityOnly := Score(text, nil, &models.LocationData{Name: "Austin", MedianHomePrice: 550000})
	if cityOnly.Score < bare.Score {
		t.Errorf("adding city data lowered score: %d -> %d", bare.Score, cityOnly.Score)
	}

	withAgent := Score(text, richAgent(), &models.LocationData{Name: "Austin", MedianHomePrice: 550000})
	if withAgent.Score < cityOnly.Score {
		t.Errorf("adding agent data lowered score: %d -> %d", cityOnly.Score, withAgent.Score)
	}

	full := Score(text, richAgent(), richLocation())
	if full.Score < withAgent.Score {
		t.Errorf("adding full location data lowered score: %d -> %d", withAgent.Score, full.Score)
	}
}

func TestGradeBands(t *testing.T) {
	tests := []struct {
		score int
		want  models.UniquenessGrade
	}{
		{100, models.GradeExcellent},
		{70, models.GradeExcellent},
		{69, models.GradeGood},
		{50, models.GradeGood},
		{49, models.GradeAcceptable},
		{35, models.GradeAcceptable},
		{34, models.GradeRisky},
		{20, models.GradeRisky},
		{19, models.GradeDangerous},
		{0, models.GradeDangerous},
	}
	for _, tt := range tests {
		if got := gradeFor(tt.score); got != tt.want {
			t.Errorf("gradeFor(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestWarningsCityUnmentioned(t *testing.T) {
	location := richLocation()
	text := "A generic page that never names the city it is about."

	report := Score(text, nil, location)

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, `"Austin"`) {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want a city-unmentioned warning", report.Warnings)
	}
}

func TestWarningsThinContent(t *testing.T) {
	report := Score("short", nil, nil)

	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "300 words") {
			found = true
		}
	}
	if !found {
		t.Errorf("Warnings = %v, want a thin-content warning", report.Warnings)
	}
}

func TestRecommendationsNameMissingData(t *testing.T) {
	report := Score(richText, nil, &models.LocationData{Name: "Austin"})

	joined := strings.Join(report.Recommendations, " | ")
	for _, want := range []string{"median home price", "neighborhood", "school", "demographics", "agent"} {
		if !strings.Contains(joined, want) {
			t.Errorf("Recommendations missing %q advice: %v", want, report.Recommendations)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	for _, tc := range []struct {
		text     string
		agent    *models.Agent
		location *models.LocationData
	}{
		{"", nil, nil},
		{richText, richAgent(), richLocation()},
		{strings.Repeat("$1,000 in 10 days up 5% with 200 homes ", 200), richAgent(), richLocation()},
	} {
		report := Score(tc.text, tc.agent, tc.location)
		if report.Score < 0 || report.Score > 100 {
			t.Errorf("Score = %d, want within [0,100]", report.Score)
		}
	}
}
