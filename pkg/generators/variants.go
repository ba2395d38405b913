package generators

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/agentpress/agentpress/pkg/tokens"
)

// The intro and closing variants exist so different tenants open and close
// the same article with structurally different prose. Same facts in, visibly
// different paragraphs out - which is what keeps syndicated copies from
// reading identically.

// IntroStandard is the neutral default opening.
func IntroStandard(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Thinking about making a move in %s?", l.Name)
	if l.Population > 0 {
		fmt.Fprintf(&sb, " This community of %s residents has a lot going on beneath the surface.",
			humanize.Comma(int64(l.Population)))
	} else {
		sb.WriteString(" Here is what you should know before you start.")
	}
	sb.WriteString(" This guide walks through the numbers, the neighborhoods, and the people who can help.")
	return sb.String()
}

// IntroMarket opens with the numbers.
func IntroMarket(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	if l.MedianHomePrice > 0 {
		fmt.Fprintf(&sb, "The %s market tells a clear story: a median home price of %s",
			l.Name, tokens.Currency(l.MedianHomePrice))
		if l.DaysOnMarket > 0 {
			fmt.Fprintf(&sb, " and homes averaging %d days on the market", l.DaysOnMarket)
		}
		sb.WriteString(".")
	} else {
		fmt.Fprintf(&sb, "The %s market rewards buyers and sellers who do their homework.", l.Name)
	}
	if l.MarketTrend != "" {
		fmt.Fprintf(&sb, " Conditions are %s, and that shapes every decision below.", l.MarketTrend)
	} else {
		sb.WriteString(" The data below breaks down what that means for your next step.")
	}
	return sb.String()
}

// IntroCommunity opens with the people and places.
func IntroCommunity(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Ask anyone who lives in %s what keeps them there, and the answer is rarely just the houses.", l.Name)
	if len(l.Neighborhoods) > 0 {
		names := make([]string, 0, len(l.Neighborhoods))
		for _, n := range l.Neighborhoods {
			names = append(names, n.Name)
		}
		fmt.Fprintf(&sb, " From %s, each pocket of the city has its own character.", tokens.JoinPhrase(names))
	}
	if len(l.CommunityAmenities) > 0 {
		fmt.Fprintf(&sb, " Daily life is built around %s.", tokens.JoinPhrase(l.CommunityAmenities))
	}
	sb.WriteString(" Here is a look at the community behind the listings.")
	return sb.String()
}

// IntroPersonal opens in the agent's voice. Needs an agent name.
func IntroPersonal(in Input) string {
	a := in.Agent
	l := in.Location
	if a == nil || a.Name == "" || l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "I'm %s", a.Name)
	if a.YearsExperience > 0 {
		fmt.Fprintf(&sb, ", and after %d years helping people buy and sell in %s, I can tell you the market here rarely matches the headlines",
			a.YearsExperience, l.Name)
	} else {
		fmt.Fprintf(&sb, ", and I work with buyers and sellers across %s every week", l.Name)
	}
	sb.WriteString(". What follows is the picture I share with my own clients.")
	return sb.String()
}

// IntroQuestion opens with a hook question.
func IntroQuestion(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	if l.MedianHomePrice > 0 {
		fmt.Fprintf(&sb, "What does %s actually buy you in %s right now?",
			tokens.Currency(l.MedianHomePrice), l.Name)
	} else {
		fmt.Fprintf(&sb, "Is %s the right place for your next move?", l.Name)
	}
	sb.WriteString(" It is the question behind every call we get, and the honest answer depends on data most listings never show you. Let's dig in.")
	return sb.String()
}

// ClosingStandard is the neutral default sign-off.
func ClosingStandard(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Every market has its own rhythm, and %s is no exception.", l.Name)
	if a := in.Agent; a != nil && a.Name != "" {
		fmt.Fprintf(&sb, " When you are ready to act on any of this, %s can walk you through the next step.", a.Name)
	} else {
		sb.WriteString(" A local expert can help you turn these numbers into a plan.")
	}
	return sb.String()
}

// ClosingCTA sign-off pushes toward contact. Needs an agent with contact info.
func ClosingCTA(in Input) string {
	a := in.Agent
	if a == nil || a.Name == "" || (a.Phone == "" && a.Email == "") {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Don't navigate this alone. %s answers questions like these every day", a.Name)
	if a.Phone != "" {
		fmt.Fprintf(&sb, " - call %s", a.Phone)
		if a.Email != "" {
			fmt.Fprintf(&sb, " or write to %s", a.Email)
		}
	} else {
		fmt.Fprintf(&sb, " - write to %s", a.Email)
	}
	sb.WriteString(" and get an answer grounded in this market, not a national average.")
	return sb.String()
}

// ClosingMarket sign-off restates the market takeaway.
func ClosingMarket(in Input) string {
	l := in.Location
	if l == nil || l.Name == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The takeaway for %s:", l.Name)
	switch l.MarketTrend {
	case "rising":
		sb.WriteString(" prices are climbing, and waiting has a cost.")
	case "cooling":
		sb.WriteString(" the market is cooling, and prepared buyers have leverage.")
	case "stable":
		sb.WriteString(" steady conditions favor whoever is best prepared.")
	default:
		sb.WriteString(" know the numbers before you negotiate.")
	}
	if l.MedianHomePrice > 0 {
		fmt.Fprintf(&sb, " With the median at %s, small percentage swings are real money.", tokens.Currency(l.MedianHomePrice))
	}
	return sb.String()
}
