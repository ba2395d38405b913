package generators

import (
	"fmt"
	"sort"
	"strings"
)

// maxPromoted caps how many deals or announcements one section renders.
const maxPromoted = 5

// HotDeals renders the agent's currently-active promotions: expired deals
// are excluded, the rest are priority-ordered and truncated to the top 5.
func HotDeals(in Input) string {
	if in.Agent == nil {
		return ""
	}
	deals := in.Agent.ActiveDeals(in.Now)
	if len(deals) == 0 {
		return ""
	}
	if len(deals) > maxPromoted {
		deals = deals[:maxPromoted]
	}

	var sb strings.Builder
	sb.WriteString("Current Offers\n")
	for _, d := range deals {
		fmt.Fprintf(&sb, "\n- %s", d.Title)
		if d.Description != "" {
			sb.WriteString(": " + d.Description)
		}
		if d.ExpiresAt != nil {
			fmt.Fprintf(&sb, " (through %s)", d.ExpiresAt.Format("January 2, 2006"))
		}
	}
	return sb.String()
}

// Announcements renders the pre-scoped announcement list: unexpired entries
// only, priority-ordered, top 5.
func Announcements(in Input) string {
	var live []int
	for i := range in.Announcements {
		if !in.Announcements[i].Expired(in.Now) {
			live = append(live, i)
		}
	}
	if len(live) == 0 {
		return ""
	}
	sort.SliceStable(live, func(a, b int) bool {
		return in.Announcements[live[a]].Priority > in.Announcements[live[b]].Priority
	})
	if len(live) > maxPromoted {
		live = live[:maxPromoted]
	}

	var sb strings.Builder
	sb.WriteString("Announcements\n")
	for _, i := range live {
		a := in.Announcements[i]
		fmt.Fprintf(&sb, "\n- %s", a.Title)
		if a.Excerpt != "" {
			sb.WriteString(": " + a.Excerpt)
		}
		if a.CTA != nil && a.CTA.Text != "" {
			fmt.Fprintf(&sb, " [%s -> %s]", a.CTA.Text, a.CTA.Link)
		}
	}
	return sb.String()
}
