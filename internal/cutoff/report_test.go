package cutoff

import (
	"strings"
	"testing"

	"github.com/ljlab/ljcut/internal/potential"
)

func TestReportLayout(t *testing.T) {
	rows := NewComparator(potential.New()).Compare()
	lines := Report(rows)
	text := strings.Join(lines, "\n")

	for _, want := range []string{
		"LENNARD-JONES POTENTIAL CUTOFF ANALYSIS",
		"Cutoff",
		"Significance",
		"High",
		"Moderate",
		"Negligible",
		"COMPUTATIONAL IMPACT:",
		"~27 neighbors, 1.00x computational cost",
		"~52 neighbors, 1.95x computational cost",
		"~90 neighbors, 3.38x computational cost",
		"RECOMMENDATION:",
		"2.5σ remains the best balance for most applications.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportRowFormat(t *testing.T) {
	rows := NewComparator(potential.New()).Compare()
	lines := Report(rows)

	var row string
	for _, line := range lines {
		if strings.HasPrefix(line, "2.0σ") {
			row = line
			break
		}
	}
	if row == "" {
		t.Fatal("no table row for 2.0σ")
	}
	if !strings.Contains(row, "-0.061523") {
		t.Errorf("row %q missing six-decimal potential", row)
	}
	if !strings.Contains(row, "6.152") {
		t.Errorf("row %q missing three-decimal percentage", row)
	}
	if !strings.Contains(row, "High") {
		t.Errorf("row %q missing tier", row)
	}
}

func TestReportKeepsRowOrder(t *testing.T) {
	rows := NewComparator(potential.New()).Compare()
	text := strings.Join(Report(rows), "\n")

	i20 := strings.Index(text, "2.0σ")
	i25 := strings.Index(text, "2.5σ")
	i30 := strings.Index(text, "3.0σ")
	if i20 < 0 || i25 < 0 || i30 < 0 {
		t.Fatalf("missing cutoff labels: %d %d %d", i20, i25, i30)
	}
	if !(i20 < i25 && i25 < i30) {
		t.Errorf("rows out of order: 2.0σ at %d, 2.5σ at %d, 3.0σ at %d", i20, i25, i30)
	}
}

func TestReportRecommendationBlock(t *testing.T) {
	lines := Report(NewComparator(potential.New()).Compare())
	text := strings.Join(lines, "\n")

	// fixed prose, present regardless of the compared radii
	for _, want := range []string{
		"• 2.0σ:   Very efficient, potential = -0.0615ε (6.15%)",
		"• 2.5σ:   Standard choice, potential = -0.0163ε (1.63%)",
		"• 3.0σ:   High accuracy, potential = -0.0067ε (0.67%)",
		"2.0σ cutoff sacrifices some accuracy for maximum speed.",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("recommendation missing %q", want)
		}
	}

	// still present for a non-standard cutoff list
	c := NewComparator(potential.New())
	c.Specs = []Spec{{Distance: 2.2, Label: "2.2σ"}}
	single := strings.Join(Report(c.Compare()), "\n")
	if !strings.Contains(single, "RECOMMENDATION:") {
		t.Error("recommendation dropped for non-standard cutoff list")
	}
}
