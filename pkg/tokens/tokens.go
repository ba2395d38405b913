package tokens

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/agentpress/agentpress/models"
)

// tokenPattern matches {{UPPER_SNAKE_NAME}} placeholders. Names are
// case-sensitive; anything else passes through untouched.
var tokenPattern = regexp.MustCompile(`\{\{([A-Z_]+)\}\}`)

// BuildTokenMap flattens a render context into a name -> text lookup.
// It is pure: the same context always yields the same map. Missing source
// fields produce empty values rather than absent keys only where a derived
// default exists; otherwise the key is simply not set.
func BuildTokenMap(ctx *models.RenderContext) map[string]string {
	m := make(map[string]string)

	if a := ctx.Agent; a != nil {
		set(m, "AGENT_NAME", a.Name)
		set(m, "AGENT_FIRST_NAME", firstName(a))
		set(m, "AGENT_LAST_NAME", a.LastName)
		set(m, "AGENT_PHONE", a.Phone)
		set(m, "AGENT_EMAIL", a.Email)
		set(m, "AGENT_ADDRESS", a.Address)
		set(m, "AGENT_CITY", a.City)
		set(m, "AGENT_STATE", a.State)
		set(m, "AGENT_BROKERAGE", a.Brokerage)
		set(m, "AGENT_WEBSITE", a.Website)
		set(m, "AGENT_HOURS", a.WorkingHours)
		if a.YearsExperience > 0 {
			set(m, "AGENT_YEARS", fmt.Sprintf("%d", a.YearsExperience))
		}
		set(m, "AGENT_SERVICES", JoinPhrase(a.Services))
		set(m, "AGENT_CERTIFICATIONS", JoinPhrase(a.Certifications))
		set(m, "AGENT_AREAS_SERVED", JoinPhrase(a.AreasServed))
		set(m, "AGENT_LANGUAGES", JoinPhrase(a.Languages))
		if r := a.Rating; r != nil && r.Value > 0 {
			set(m, "AGENT_RATING", strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.1f", r.Value), "0"), "."))
			set(m, "AGENT_REVIEW_COUNT", humanize.Comma(int64(r.Count)))
		}
	}

	if l := ctx.Location; l != nil {
		set(m, "CITY", l.Name)
		set(m, "CITY_NAME", l.Name)
		set(m, "STATE", l.State)
		if l.Population > 0 {
			set(m, "POPULATION", humanize.Comma(int64(l.Population)))
		}
		if l.MedianHomePrice > 0 {
			set(m, "MEDIAN_HOME_PRICE", Currency(l.MedianHomePrice))
		}
		if l.MedianRent > 0 {
			set(m, "MEDIAN_RENT", Currency(l.MedianRent))
		}
		if l.PricePerSqft > 0 {
			set(m, "PRICE_PER_SQFT", Currency(l.PricePerSqft))
		}
		if l.DaysOnMarket > 0 {
			set(m, "DAYS_ON_MARKET", fmt.Sprintf("%d", l.DaysOnMarket))
		}
		if l.ActiveListings > 0 {
			set(m, "ACTIVE_LISTINGS", humanize.Comma(int64(l.ActiveListings)))
		}
		if l.YearOverYear != 0 {
			set(m, "YEAR_OVER_YEAR", fmt.Sprintf("%.1f%%", l.YearOverYear))
		}
		set(m, "MARKET_TREND", string(l.MarketTrend))
		set(m, "NEIGHBORHOODS", JoinPhrase(neighborhoodNames(l.Neighborhoods)))
		set(m, "SCHOOLS", JoinPhrase(schoolNames(l.Schools)))
		set(m, "KEY_EMPLOYERS", JoinPhrase(l.KeyEmployers))
		set(m, "LANGUAGES_SPOKEN", JoinPhrase(l.LanguagesSpoken))
		if d := l.Demographics; d != nil {
			if d.MedianIncome > 0 {
				set(m, "MEDIAN_INCOME", Currency(d.MedianIncome))
			}
			if d.MedianAge > 0 {
				set(m, "MEDIAN_AGE", fmt.Sprintf("%.0f", d.MedianAge))
			}
		}
	}

	if p := ctx.Article; p != nil {
		set(m, "POST_TITLE", p.Title)
		set(m, "POST_SLUG", p.Slug)
	}

	if t := ctx.Tenant; t != nil {
		set(m, "TENANT_NAME", t.Name)
		set(m, "TENANT_DOMAIN", t.PrimaryHost())
	}

	if n := len(ctx.Announcements); n > 0 {
		set(m, "ANNOUNCEMENT_COUNT", fmt.Sprintf("%d", n))
	}

	addDerivedTokens(m, ctx)

	// Custom tokens shadow everything above.
	for k, v := range ctx.CustomTokens {
		m[k] = v
	}

	return m
}

// ReplaceTokens substitutes every known {{NAME}} placeholder in text.
// Unknown tokens are left in place so missing data stays visible in QA
// instead of silently vanishing. It never fails.
func ReplaceTokens(text string, ctx *models.RenderContext) string {
	if text == "" || !strings.Contains(text, "{{") {
		return text
	}
	m := BuildTokenMap(ctx)
	return tokenPattern.ReplaceAllStringFunc(text, func(match string) string {
		name := match[2 : len(match)-2]
		if v, ok := m[name]; ok && v != "" {
			return v
		}
		return match
	})
}

// ExtractTokens returns the de-duplicated token names referenced in text,
// in first-appearance order.
func ExtractTokens(text string) []string {
	seen := make(map[string]struct{})
	var names []string
	for _, match := range tokenPattern.FindAllStringSubmatch(text, -1) {
		name := match[1]
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names
}

// FindMissingTokens returns the tokens referenced in text whose resolved
// value is empty, for authoring-time warnings.
func FindMissingTokens(text string, ctx *models.RenderContext) []string {
	m := BuildTokenMap(ctx)
	var missing []string
	for _, name := range ExtractTokens(text) {
		if m[name] == "" {
			missing = append(missing, name)
		}
	}
	return missing
}

func set(m map[string]string, key, value string) {
	if value != "" {
		m[key] = value
	}
}

func firstName(a *models.Agent) string {
	if a.FirstName != "" {
		return a.FirstName
	}
	if a.Name != "" {
		return strings.Fields(a.Name)[0]
	}
	return ""
}

// Currency formats a whole-dollar amount with a $ sign and separators.
func Currency(amount int) string {
	return "$" + humanize.Comma(int64(amount))
}

// JoinPhrase joins items into a readable comma phrase: "a, b, and c".
func JoinPhrase(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	case 2:
		return items[0] + " and " + items[1]
	default:
		return strings.Join(items[:len(items)-1], ", ") + ", and " + items[len(items)-1]
	}
}

func neighborhoodNames(ns []models.Neighborhood) []string {
	names := make([]string, 0, len(ns))
	for _, n := range ns {
		names = append(names, n.Name)
	}
	return names
}

func schoolNames(ss []models.School) []string {
	names := make([]string, 0, len(ss))
	for _, s := range ss {
		names = append(names, s.Name)
	}
	return names
}
