package generators

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/agentpress/agentpress/pkg/tokens"
)

// AgentExpertise presents the agent's experience and specialties.
func AgentExpertise(in Input) string {
	a := in.Agent
	if a == nil || a.Name == "" {
		return ""
	}
	if a.YearsExperience == 0 && len(a.KnowsAbout) == 0 && len(a.Certifications) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "About %s\n\n", a.Name)
	if a.YearsExperience > 0 {
		fmt.Fprintf(&sb, "%s brings %d years of experience", a.Name, a.YearsExperience)
		if a.Brokerage != "" {
			fmt.Fprintf(&sb, " with %s", a.Brokerage)
		}
		sb.WriteString(".")
	}
	if len(a.KnowsAbout) > 0 {
		fmt.Fprintf(&sb, " Specialties include %s.", tokens.JoinPhrase(a.KnowsAbout))
	}
	if len(a.Certifications) > 0 {
		fmt.Fprintf(&sb, " Credentials: %s.", tokens.JoinPhrase(a.Certifications))
	}
	return strings.TrimSpace(sb.String())
}

// AgentReviews summarizes the agent's rating. Needs a rating with reviews.
func AgentReviews(in Input) string {
	a := in.Agent
	if a == nil || a.Rating == nil || a.Rating.Count == 0 {
		return ""
	}
	r := a.Rating
	best := r.Best
	if best == 0 {
		best = 5
	}
	return fmt.Sprintf("What Clients Say\n\n%s holds a %.1f out of %.0f rating across %s client reviews.",
		a.Name, r.Value, best, humanize.Comma(int64(r.Count)))
}

// AgentLanguages notes which languages the agent works in.
func AgentLanguages(in Input) string {
	a := in.Agent
	if a == nil || len(a.Languages) == 0 {
		return ""
	}
	if len(a.Languages) == 1 {
		return fmt.Sprintf("Working Languages\n\n%s works with clients in %s.", a.Name, a.Languages[0])
	}
	return fmt.Sprintf("Working Languages\n\n%s serves clients in %s.", a.Name, tokens.JoinPhrase(a.Languages))
}

// AreasServed lists the agent's coverage area.
func AreasServed(in Input) string {
	a := in.Agent
	if a == nil || len(a.AreasServed) == 0 {
		return ""
	}
	return fmt.Sprintf("Areas Served\n\n%s covers %s.", a.Name, tokens.JoinPhrase(a.AreasServed))
}

// FAQ renders the agent's authored question/answer pairs.
func FAQ(in Input) string {
	a := in.Agent
	if a == nil || len(a.FAQs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Frequently Asked Questions\n")
	for _, f := range a.FAQs {
		if f.Question == "" || f.Answer == "" {
			continue
		}
		fmt.Fprintf(&sb, "\nQ: %s\nA: %s\n", f.Question, f.Answer)
	}
	out := strings.TrimRight(sb.String(), "\n")
	if out == "Frequently Asked Questions" {
		return ""
	}
	return out
}

// ContactCTA closes with the agent's contact details. Needs a name plus at
// least one way to reach them.
func ContactCTA(in Input) string {
	a := in.Agent
	if a == nil || a.Name == "" {
		return ""
	}
	if a.Phone == "" && a.Email == "" {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Get in Touch\n\nReady to talk it through? Reach %s", a.Name)
	if a.Phone != "" {
		fmt.Fprintf(&sb, " at %s", a.Phone)
	}
	if a.Email != "" {
		if a.Phone != "" {
			fmt.Fprintf(&sb, " or %s", a.Email)
		} else {
			fmt.Fprintf(&sb, " at %s", a.Email)
		}
	}
	sb.WriteString(".")
	if a.WorkingHours != "" {
		fmt.Fprintf(&sb, " Hours: %s.", a.WorkingHours)
	}
	return sb.String()
}
