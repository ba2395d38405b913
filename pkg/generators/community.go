package generators

import (
	"fmt"
	"strings"

	"github.com/agentpress/agentpress/pkg/tokens"
)

// Neighborhoods walks the city's named areas. Empty without a neighborhood list.
func Neighborhoods(in Input) string {
	l := in.Location
	if l == nil || len(l.Neighborhoods) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Neighborhoods of %s\n\n", l.Name)
	for _, n := range l.Neighborhoods {
		sb.WriteString("- " + n.Name)
		if n.Description != "" {
			sb.WriteString(": " + n.Description)
		}
		if n.MedianPrice > 0 {
			fmt.Fprintf(&sb, " (median %s)", tokens.Currency(n.MedianPrice))
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Schools lists the schools serving the city. Empty without a school list.
func Schools(in Input) string {
	l := in.Location
	if l == nil || len(l.Schools) == 0 {
		return ""
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Schools Serving %s\n\n", l.Name)
	for _, s := range l.Schools {
		sb.WriteString("- " + s.Name)
		if s.Type != "" {
			sb.WriteString(" (" + s.Type)
			if s.Rating > 0 {
				fmt.Fprintf(&sb, ", rated %d/10", s.Rating)
			}
			sb.WriteString(")")
		} else if s.Rating > 0 {
			fmt.Fprintf(&sb, " (rated %d/10)", s.Rating)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}
