package conditions

import "github.com/agentpress/agentpress/models"

// lookup resolves a validated path against the two scopes. Field names match
// the camelCase spelling template authors use in fixtures. Unknown fields
// resolve to (nil, false), which evaluates as absent rather than erroring.
func lookup(path []string, agent *models.Agent, cityData *models.LocationData) (interface{}, bool) {
	switch path[0] {
	case "agent":
		return lookupAgent(path[1:], agent)
	case "cityData":
		return lookupCity(path[1:], cityData)
	}
	return nil, false
}

func lookupAgent(path []string, a *models.Agent) (interface{}, bool) {
	if a == nil {
		return nil, false
	}
	switch path[0] {
	case "name":
		return a.Name, true
	case "phone":
		return a.Phone, true
	case "email":
		return a.Email, true
	case "city":
		return a.City, true
	case "state":
		return a.State, true
	case "brokerage":
		return a.Brokerage, true
	case "website":
		return a.Website, true
	case "workingHours":
		return a.WorkingHours, true
	case "yearsExperience":
		return a.YearsExperience, true
	case "services":
		return a.Services, true
	case "certifications":
		return a.Certifications, true
	case "seoKeywords":
		return a.SEOKeywords, true
	case "knowsAbout":
		return a.KnowsAbout, true
	case "areasServed":
		return a.AreasServed, true
	case "languages":
		return a.Languages, true
	case "faqs":
		return a.FAQs, true
	case "hotDeals":
		return a.HotDeals, true
	case "rating":
		if a.Rating == nil {
			return nil, false
		}
		if len(path) == 1 {
			return a.Rating, true
		}
		switch path[1] {
		case "value":
			return a.Rating.Value, true
		case "count":
			return a.Rating.Count, true
		}
	}
	return nil, false
}

func lookupCity(path []string, l *models.LocationData) (interface{}, bool) {
	if l == nil {
		return nil, false
	}
	switch path[0] {
	case "name":
		return l.Name, true
	case "state":
		return l.State, true
	case "population":
		return l.Population, true
	case "medianHomePrice":
		return l.MedianHomePrice, true
	case "medianRent":
		return l.MedianRent, true
	case "pricePerSqft":
		return l.PricePerSqft, true
	case "daysOnMarket":
		return l.DaysOnMarket, true
	case "activeListings":
		return l.ActiveListings, true
	case "stateMedianPrice":
		return l.StateMedianPrice, true
	case "marketTrend":
		return string(l.MarketTrend), true
	case "neighborhoods":
		return l.Neighborhoods, true
	case "schools":
		return l.Schools, true
	case "keyEmployers":
		return l.KeyEmployers, true
	case "localFacts":
		return l.LocalFacts, true
	case "placesOfWorship":
		return l.PlacesOfWorship, true
	case "culturalCenters":
		return l.CulturalCenters, true
	case "culturalEvents":
		return l.CulturalEvents, true
	case "communityAmenities":
		return l.CommunityAmenities, true
	case "languagesSpoken":
		return l.LanguagesSpoken, true
	case "demographics":
		if l.Demographics == nil {
			return nil, false
		}
		if len(path) == 1 {
			return l.Demographics, true
		}
		switch path[1] {
		case "medianAge":
			return l.Demographics.MedianAge, true
		case "medianIncome":
			return l.Demographics.MedianIncome, true
		case "diversityIndex":
			return l.Demographics.DiversityIndex, true
		case "foreignBornPct":
			return l.Demographics.ForeignBornPct, true
		}
	}
	return nil, false
}

// truthy reports whether a resolved value counts as present: non-empty
// string, non-zero number, non-empty slice, or non-nil struct pointer.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case string:
		return x != ""
	case int:
		return x != 0
	case float64:
		return x != 0
	case []string:
		return len(x) > 0
	case []models.Neighborhood:
		return len(x) > 0
	case []models.School:
		return len(x) > 0
	case []models.FAQ:
		return len(x) > 0
	case []models.HotDeal:
		return len(x) > 0
	case nil:
		return false
	default:
		return true
	}
}

// lengthOf returns the element count for slice values, the rune count for
// strings, and zero for everything else.
func lengthOf(v interface{}) int {
	switch x := v.(type) {
	case []string:
		return len(x)
	case []models.Neighborhood:
		return len(x)
	case []models.School:
		return len(x)
	case []models.FAQ:
		return len(x)
	case []models.HotDeal:
		return len(x)
	case string:
		return len([]rune(x))
	default:
		return 0
	}
}
