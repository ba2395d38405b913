package generators

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/agentpress/agentpress/pkg/tokens"
)

// MarketStats summarizes the city's current housing numbers. Needs at least
// a city name and a median home price.
func MarketStats(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" || l.MedianHomePrice == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s Market Snapshot\n\n", l.Name)
	fmt.Fprintf(&sb, "The median home price in %s currently sits at %s.", l.Name, tokens.Currency(l.MedianHomePrice))
	if l.YearOverYear != 0 {
		direction := "up"
		if l.YearOverYear < 0 {
			direction = "down"
		}
		fmt.Fprintf(&sb, " That is %s %.1f%% compared with a year ago.", direction, abs(l.YearOverYear))
	}
	sb.WriteString("\n")
	if l.PricePerSqft > 0 {
		fmt.Fprintf(&sb, "Buyers are paying about %s per square foot.\n", tokens.Currency(l.PricePerSqft))
	}
	if l.DaysOnMarket > 0 {
		fmt.Fprintf(&sb, "Homes spend an average of %d days on the market.\n", l.DaysOnMarket)
	}
	if l.ActiveListings > 0 {
		fmt.Fprintf(&sb, "There are %s active listings right now.\n", humanize.Comma(int64(l.ActiveListings)))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// PriceComparison puts the city's median against the state median. Needs both.
func PriceComparison(in Input) string {
	l := in.Location
	if l == nil || l.MedianHomePrice == 0 || l.StateMedianPrice == 0 {
		return ""
	}

	diff := l.MedianHomePrice - l.StateMedianPrice
	pct := float64(diff) / float64(l.StateMedianPrice) * 100

	var sb strings.Builder
	fmt.Fprintf(&sb, "How %s Compares\n\n", l.Name)
	switch {
	case diff > 0:
		fmt.Fprintf(&sb, "At %s, the median home in %s costs %.0f%% more than the %s statewide median of %s.",
			tokens.Currency(l.MedianHomePrice), l.Name, pct, l.State, tokens.Currency(l.StateMedianPrice))
	case diff < 0:
		fmt.Fprintf(&sb, "At %s, the median home in %s costs %.0f%% less than the %s statewide median of %s.",
			tokens.Currency(l.MedianHomePrice), l.Name, -pct, l.State, tokens.Currency(l.StateMedianPrice))
	default:
		fmt.Fprintf(&sb, "The median home in %s matches the %s statewide median of %s.",
			l.Name, l.State, tokens.Currency(l.StateMedianPrice))
	}
	return sb.String()
}

// CostOfLiving sketches monthly housing costs. Needs a median price; rent
// and income enrich it when present.
func CostOfLiving(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" || l.MedianHomePrice == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Cost of Living in %s\n\n", l.Name)
	fmt.Fprintf(&sb, "With a median home price of %s, %s sits", tokens.Currency(l.MedianHomePrice), l.Name)
	switch {
	case l.MedianHomePrice >= 750000:
		sb.WriteString(" at the premium end of the market.")
	case l.MedianHomePrice >= 400000:
		sb.WriteString(" in the mid range of the market.")
	default:
		sb.WriteString(" at the affordable end of the market.")
	}
	if l.MedianRent > 0 {
		fmt.Fprintf(&sb, " Renters pay a median of %s per month.", tokens.Currency(l.MedianRent))
	}
	if d := l.Demographics; d != nil && d.MedianIncome > 0 {
		fmt.Fprintf(&sb, " The median household income is %s.", tokens.Currency(d.MedianIncome))
	}
	return sb.String()
}

// LocalFacts renders the curated quick-facts list.
func LocalFacts(in Input) string {
	l := in.Location
	if l == nil || len(l.LocalFacts) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Quick Facts About %s\n\n", l.Name)
	for _, fact := range l.LocalFacts {
		fmt.Fprintf(&sb, "- %s\n", fact)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// KeyEmployers lists the area's major employers.
func KeyEmployers(in Input) string {
	l := in.Location
	if l == nil || len(l.KeyEmployers) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Who Hires in %s\n\n", l.Name)
	fmt.Fprintf(&sb, "Major employers in the area include %s.", tokens.JoinPhrase(l.KeyEmployers))
	if l.Population > 0 {
		fmt.Fprintf(&sb, " They anchor a local economy serving %s residents.", humanize.Comma(int64(l.Population)))
	}
	return sb.String()
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
