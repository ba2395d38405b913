package renderer

import (
	"github.com/agentpress/agentpress/models"
	"github.com/agentpress/agentpress/pkg/analytics"
)

// Per-kind uniqueness weights for the legacy scorer. Generated sections are
// fully data-driven; token sections mix data into fixed prose; overridden
// static text was hand-edited for this copy; untouched static text is shared
// across every storefront.
const (
	weightGenerated        = 100.0
	weightToken            = 60.0
	weightOverriddenStatic = 80.0
	weightStatic           = 10.0
)

// ScoreSections is the legacy uniqueness estimate used by the declarative
// render path: each rendered section contributes its kind weight scaled by
// its share of the document's words, plus a location-data richness bonus.
//
// This deliberately coexists with pkg/uniqueness.Score, which the agent
// pipeline and canonical decisions use. The two algorithms answer the same
// question from different call paths and are kept separate on purpose; see
// DESIGN.md before unifying them.
func ScoreSections(sections []RenderedSection, location *models.LocationData) int {
	totalWords := 0
	wordCounts := make([]int, len(sections))
	for i, s := range sections {
		wordCounts[i] = analytics.WordCount(s.Content)
		totalWords += wordCounts[i]
	}
	if totalWords == 0 {
		return 0
	}

	score := 0.0
	for i, s := range sections {
		share := float64(wordCounts[i]) / float64(totalWords)
		score += sectionWeight(s) * share
	}

	score += richnessBonus(location)

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return int(score)
}

func sectionWeight(s RenderedSection) float64 {
	switch s.Kind {
	case models.SectionGenerated:
		return weightGenerated
	case models.SectionToken:
		return weightToken
	case models.SectionStatic:
		if s.WasOverridden {
			return weightOverriddenStatic
		}
		return weightStatic
	default:
		return weightStatic
	}
}

// richnessBonus adds up to 15 points for location data families present.
func richnessBonus(l *models.LocationData) float64 {
	if l == nil {
		return 0
	}
	bonus := 0.0
	if l.MedianHomePrice > 0 {
		bonus += 3
	}
	if l.Population > 0 {
		bonus += 3
	}
	if len(l.Neighborhoods) > 0 {
		bonus += 3
	}
	if len(l.Schools) > 0 {
		bonus += 3
	}
	if l.Demographics != nil {
		bonus += 3
	}
	return bonus
}
