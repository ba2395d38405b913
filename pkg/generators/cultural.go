package generators

import (
	"fmt"
	"strings"

	"github.com/agentpress/agentpress/pkg/tokens"
)

// PlacesOfWorship lists local congregations and faith centers.
func PlacesOfWorship(in Input) string {
	l := in.Location
	if l == nil || len(l.PlacesOfWorship) == 0 {
		return ""
	}
	return fmt.Sprintf("Places of Worship\n\n%s is home to %s.",
		l.Name, tokens.JoinPhrase(l.PlacesOfWorship))
}

// CulturalCenters lists museums, theaters, and similar institutions.
func CulturalCenters(in Input) string {
	l := in.Location
	if l == nil || len(l.CulturalCenters) == 0 {
		return ""
	}
	return fmt.Sprintf("Arts and Culture\n\nCultural life in %s centers on %s.",
		l.Name, tokens.JoinPhrase(l.CulturalCenters))
}

// CulturalEvents lists recurring festivals and community events.
func CulturalEvents(in Input) string {
	l := in.Location
	if l == nil || len(l.CulturalEvents) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Events Worth Planning Around\n\n")
	fmt.Fprintf(&sb, "Residents of %s look forward to:\n", l.Name)
	for _, e := range l.CulturalEvents {
		fmt.Fprintf(&sb, "- %s\n", e)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// DiversityOverview summarizes the demographic mix. Needs demographics with
// a non-zero diversity index.
func DiversityOverview(in Input) string {
	l := in.Location
	if l == nil || l.Demographics == nil || l.Demographics.DiversityIndex == 0 {
		return ""
	}
	d := l.Demographics

	var sb strings.Builder
	fmt.Fprintf(&sb, "A Community of Many Backgrounds\n\n")
	fmt.Fprintf(&sb, "%s scores %.2f on the diversity index.", l.Name, d.DiversityIndex)
	if d.ForeignBornPct > 0 {
		fmt.Fprintf(&sb, " About %.0f%% of residents were born outside the country.", d.ForeignBornPct)
	}
	if d.MedianAge > 0 {
		fmt.Fprintf(&sb, " The median age is %.0f.", d.MedianAge)
	}
	return sb.String()
}

// CommunityAmenities lists parks, libraries, and shared facilities.
func CommunityAmenities(in Input) string {
	l := in.Location
	if l == nil || len(l.CommunityAmenities) == 0 {
		return ""
	}
	return fmt.Sprintf("Community Amenities\n\nDay to day, residents rely on %s.",
		tokens.JoinPhrase(l.CommunityAmenities))
}

// LanguagesSpoken notes the languages heard around town.
func LanguagesSpoken(in Input) string {
	l := in.Location
	if l == nil || len(l.LanguagesSpoken) == 0 {
		return ""
	}
	if len(l.LanguagesSpoken) == 1 {
		return fmt.Sprintf("Languages\n\nMost conversation in %s happens in %s.",
			l.Name, l.LanguagesSpoken[0])
	}
	return fmt.Sprintf("Languages\n\nWalk through %s and you will hear %s.",
		l.Name, tokens.JoinPhrase(l.LanguagesSpoken))
}
