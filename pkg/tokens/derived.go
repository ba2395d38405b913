package tokens

import (
	"fmt"
	"time"

	"github.com/agentpress/agentpress/models"
)

// Season boundaries are fixed by month: Dec-Feb winter, Mar-May spring,
// Jun-Aug summer, Sep-Nov fall.
func seasonLabel(t time.Time) string {
	switch t.Month() {
	case time.December, time.January, time.February:
		return "winter"
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	default:
		return "fall"
	}
}

// trendMessage pairs buyer- and seller-facing copy for one market trend.
type trendMessage struct {
	buyer  string
	seller string
}

// trendMessages is the fixed market-trend lookup table. The copy is
// deliberately generic: the city and price specifics come from other tokens.
var trendMessages = map[models.MarketTrend]trendMessage{
	models.TrendRising: {
		buyer:  "With prices trending upward, buying sooner rather than later could lock in today's rates.",
		seller: "Rising prices mean strong seller leverage right now, and well-priced homes are moving quickly.",
	},
	models.TrendStable: {
		buyer:  "A steady market gives buyers time to compare options without racing the clock.",
		seller: "Stable pricing rewards sellers who present their homes well and price realistically.",
	},
	models.TrendCooling: {
		buyer:  "A cooling market is opening the door to negotiation, and buyers have more room to ask.",
		seller: "In a cooling market, realistic pricing and strong presentation make the difference.",
	},
}

// addDerivedTokens computes tokens that are not looked up verbatim: the
// current season label, trend-conditioned messaging, and the year.
func addDerivedTokens(m map[string]string, ctx *models.RenderContext) {
	now := ctx.Clock()
	m["SEASON"] = seasonLabel(now)
	m["CURRENT_YEAR"] = fmt.Sprintf("%d", now.Year())

	if ctx.Location != nil {
		if msg, ok := trendMessages[ctx.Location.MarketTrend]; ok {
			m["BUYER_MESSAGE"] = msg.buyer
			m["SELLER_MESSAGE"] = msg.seller
		}
	}
}
