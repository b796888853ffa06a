package cutoff

import (
	"fmt"
	"strings"
)

// Report renders the comparison as console lines in a fixed layout: banner,
// four-column table, computational impact and the recommendation block.
// Rows keep their input order.
func Report(rows []Row) []string {
	lines := make([]string, 0, 2*len(rows)+16)

	rule := strings.Repeat("=", 60)
	lines = append(lines,
		rule,
		"LENNARD-JONES POTENTIAL CUTOFF ANALYSIS",
		rule,
		fmt.Sprintf("%-10s %-15s %-10s %-20s", "Cutoff", "Potential", "% of ε", "Significance"),
		strings.Repeat("-", 60),
	)
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%-10s %-15.6f %-10.3f %-20s",
			row.Spec.Label, row.Potential, row.Percent, row.Tier))
	}

	lines = append(lines, "", "COMPUTATIONAL IMPACT:", strings.Repeat("-", 30))
	for _, row := range rows {
		lines = append(lines, fmt.Sprintf("%s: ~%.0f neighbors, %.2fx computational cost",
			row.Spec.Label, row.Neighbors, row.Cost))
	}

	lines = append(lines, "", "RECOMMENDATION:", strings.Repeat("-", 15))
	lines = append(lines, recommendation...)
	return lines
}

// The recommendation block is fixed prose about the three standard radii,
// not derived from the computed rows.
var recommendation = []string{
	"• 2.0σ:   Very efficient, potential = -0.0615ε (6.15%)",
	"• 2.5σ:   Standard choice, potential = -0.0163ε (1.63%)",
	"• 3.0σ:   High accuracy, potential = -0.0067ε (0.67%)",
	"",
	"2.0σ cutoff sacrifices some accuracy for maximum speed.",
	"2.5σ remains the best balance for most applications.",
}
