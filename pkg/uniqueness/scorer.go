// Package uniqueness estimates how textually distinct a rendered page is
// from its syndicated siblings. The score gates canonical-URL decisions: a
// copy that scores too low defers SEO authority to the primary storefront.
package uniqueness

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/analytics"
)

// Content-mix caps. Dynamic and token ratios estimate how much of the page
// came from data versus fixed template prose.
const (
	dynamicFieldWeight = 8
	dynamicRegexWeight = 2
	dynamicCap         = 60

	tokenFieldWeight = 5
	tokenCap         = 30

	staticFloor = 10
)

// Pattern classes that mark data-driven text: currency amounts, durations,
// percentages, and property counts.
var (
	currencyPattern = regexp.MustCompile(`\$[\d,]+(\.\d+)?`)
	durationPattern = regexp.MustCompile(`\b\d+\s+(day|month|year)s?\b`)
	percentPattern  = regexp.MustCompile(`\b\d+(\.\d+)?%`)
	countPattern    = regexp.MustCompile(`\b[\d,]+\s+(home|house|propert|listing|resident)\w*`)
)

// Score runs the field-presence scoring algorithm over final rendered text.
// It never fails; missing inputs only lower the score.
func Score(text string, agent *models.Agent, location *models.LocationData) models.UniquenessReport {
	dynamic := dynamicRatio(text, location)
	token := tokenRatio(agent)

	static := 100 - dynamic - token
	if static < staticFloor {
		static = staticFloor
	}

	// Content-mix component, roughly <=50.
	score := float64(dynamic)*0.5 + float64(token)*0.4
	if penalty := 20 - float64(static)*0.2; penalty > 0 {
		score += penalty
	}

	// Data-richness component, <=25.
	cityFields := cityFieldCount(location)
	agentFields := agentFieldCount(agent)
	score += minf(float64(cityFields)*3, 15)
	score += minf(float64(agentFields)*2, 10)

	// Optional-data presence, <=15.
	score += dataPresenceBonus(location)

	// Text-signal component, <=10.
	score += textSignalBonus(text, agent, location)

	// Vocabulary component, <=5.
	score += analytics.UniqueWordRatio(text) * 5

	final := int(score)
	if final < 0 {
		final = 0
	}
	if final > 100 {
		final = 100
	}

	report := models.UniquenessReport{
		Score:        final,
		Grade:        gradeFor(final),
		IsUnique:     final >= 30,
		DynamicRatio: dynamic,
		TokenRatio:   token,
		StaticRatio:  static,
	}
	report.Recommendations = recommendations(text, agent, location)
	report.Warnings = warnings(report, text, location)
	return report
}

// dynamicRatio estimates data-driven content share: present location
// indicator fields weighted, plus regex scan of the rendered text.
func dynamicRatio(text string, location *models.LocationData) int {
	ratio := 0
	if location != nil {
		if location.Name != "" {
			ratio += dynamicFieldWeight
		}
		if location.MedianHomePrice > 0 {
			ratio += dynamicFieldWeight
		}
		if location.Population > 0 {
			ratio += dynamicFieldWeight
		}
		if location.Demographics != nil && location.Demographics.DiversityIndex > 0 {
			ratio += dynamicFieldWeight
		}
	}

	for _, p := range []*regexp.Regexp{currencyPattern, durationPattern, percentPattern, countPattern} {
		ratio += len(p.FindAllString(text, -1)) * dynamicRegexWeight
	}

	if ratio > dynamicCap {
		ratio = dynamicCap
	}
	return ratio
}

// tokenRatio estimates agent-personalized content share from agent
// indicator field presence.
func tokenRatio(agent *models.Agent) int {
	if agent == nil {
		return 0
	}
	ratio := 0
	if agent.Name != "" {
		ratio += tokenFieldWeight
	}
	if agent.Phone != "" {
		ratio += tokenFieldWeight
	}
	if agent.City != "" {
		ratio += tokenFieldWeight
	}
	if agent.Rating != nil && agent.Rating.Value > 0 {
		ratio += tokenFieldWeight
	}
	if ratio > tokenCap {
		ratio = tokenCap
	}
	return ratio
}

func cityFieldCount(l *models.LocationData) int {
	if l == nil {
		return 0
	}
	n := 0
	if l.Name != "" {
		n++
	}
	if l.MedianHomePrice > 0 {
		n++
	}
	if l.MedianRent > 0 {
		n++
	}
	if l.PricePerSqft > 0 {
		n++
	}
	if l.Population > 0 {
		n++
	}
	if l.DaysOnMarket > 0 {
		n++
	}
	if l.MarketTrend != "" {
		n++
	}
	return n
}

func agentFieldCount(a *models.Agent) int {
	if a == nil {
		return 0
	}
	n := 0
	if a.Name != "" {
		n++
	}
	if a.Phone != "" {
		n++
	}
	if a.Email != "" {
		n++
	}
	if a.City != "" {
		n++
	}
	if a.Brokerage != "" {
		n++
	}
	if a.Rating != nil && a.Rating.Value > 0 {
		n++
	}
	return n
}

// dataPresenceBonus awards up to 4 points per optional data family, <=15.
func dataPresenceBonus(l *models.LocationData) float64 {
	if l == nil {
		return 0
	}
	bonus := 0.0
	if len(l.Neighborhoods) > 0 {
		bonus += 4
	}
	if len(l.Schools) > 0 {
		bonus += 4
	}
	if l.Demographics != nil {
		bonus += 4
	}
	if len(l.CulturalCenters) > 0 || len(l.CulturalEvents) > 0 || len(l.PlacesOfWorship) > 0 {
		bonus += 4
	}
	if bonus > 15 {
		bonus = 15
	}
	return bonus
}

// textSignalBonus awards up to 4 points for local keywords, 3 for an agent
// mention, and 3 for a city mention, <=10.
func textSignalBonus(text string, agent *models.Agent, location *models.LocationData) float64 {
	lower := strings.ToLower(text)
	bonus := 0.0

	if location != nil {
		hits := 0
		for _, kw := range localKeywords(location) {
			if kw != "" && strings.Contains(lower, strings.ToLower(kw)) {
				hits++
			}
		}
		bonus += minf(float64(hits)*2, 4)
		if location.Name != "" && strings.Contains(lower, strings.ToLower(location.Name)) {
			bonus += 3
		}
	}
	if agent != nil && agent.Name != "" && strings.Contains(lower, strings.ToLower(agent.Name)) {
		bonus += 3
	}
	if bonus > 10 {
		bonus = 10
	}
	return bonus
}

// localKeywords pulls names that only this locality would mention.
func localKeywords(l *models.LocationData) []string {
	var kws []string
	for _, n := range l.Neighborhoods {
		kws = append(kws, n.Name)
	}
	for _, s := range l.Schools {
		kws = append(kws, s.Name)
	}
	kws = append(kws, l.KeyEmployers...)
	return kws
}

func gradeFor(score int) models.UniquenessGrade {
	switch {
	case score >= 70:
		return models.GradeExcellent
	case score >= 50:
		return models.GradeGood
	case score >= 35:
		return models.GradeAcceptable
	case score >= 20:
		return models.GradeRisky
	default:
		return models.GradeDangerous
	}
}

// recommendations suggests concrete data additions that would raise the
// score. Purely advisory.
func recommendations(text string, agent *models.Agent, location *models.LocationData) []string {
	var recs []string

	if location == nil {
		recs = append(recs, "link location data to this article; city facts are the largest uniqueness lever")
		return recs
	}
	if location.MedianHomePrice == 0 {
		recs = append(recs, "add a median home price so market sections can render")
	}
	if len(location.Neighborhoods) == 0 {
		recs = append(recs, "add neighborhood data for locally unique content")
	}
	if len(location.Schools) == 0 {
		recs = append(recs, "add school data for locally unique content")
	}
	if location.Demographics == nil {
		recs = append(recs, "add demographics to unlock the diversity overview")
	}
	if agent == nil || agent.Name == "" {
		recs = append(recs, "assign an agent so personalized sections can render")
	} else if agent.Rating == nil {
		recs = append(recs, "add agent reviews for a storefront-specific trust section")
	}
	return recs
}

// warnings flags risk conditions. Non-blocking by design: a partial page is
// preferable to a failed page, so these only ever advise.
func warnings(report models.UniquenessReport, text string, location *models.LocationData) []string {
	var warns []string

	if report.Score < 30 {
		warns = append(warns, fmt.Sprintf("critical: uniqueness score %d is below the safe threshold of 30", report.Score))
	}
	if report.StaticRatio > 70 {
		warns = append(warns, fmt.Sprintf("static content ratio %d%% exceeds 70%%; most of this page is shared template text", report.StaticRatio))
	}
	if report.DynamicRatio < 20 {
		warns = append(warns, fmt.Sprintf("dynamic content ratio %d%% is below 20%%; add location-driven sections", report.DynamicRatio))
	}
	if location != nil && location.Name != "" &&
		!strings.Contains(strings.ToLower(text), strings.ToLower(location.Name)) {
		warns = append(warns, fmt.Sprintf("city %q is never mentioned in the rendered text", location.Name))
	}
	if analytics.WordCount(text) < 300 {
		warns = append(warns, "rendered text is under 300 words; thin pages rank poorly regardless of uniqueness")
	}
	return warns
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
