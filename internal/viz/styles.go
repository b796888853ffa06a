package viz

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ljlab/ljcut/internal/cutoff"
)

var (
	// Report banner line
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00ffff"))

	// Section headings (COMPUTATIONAL IMPACT, RECOMMENDATION)
	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff"))

	// Horizontal rules
	RuleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688"))

	// Table header row
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	// Chart captions
	CaptionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666688")).
			Italic(true)
)

// CutoffColors follow the conventional red/blue/green ordering of the three
// standard radii; longer lists cycle.
var CutoffColors = []lipgloss.Style{
	lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#00ccff")),
	lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")),
}

// Tier colors: the hotter the color, the more of the well depth the
// truncation throws away.
var tierStyles = map[cutoff.Tier]lipgloss.Style{
	cutoff.TierHigh:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444")),
	cutoff.TierSignificant: lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaa00")),
	cutoff.TierModerate:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ffcc00")),
	cutoff.TierNegligible:  lipgloss.NewStyle().Foreground(lipgloss.Color("#00ff88")),
}

// TierStyle returns the display style for a significance tier.
func TierStyle(t cutoff.Tier) lipgloss.Style {
	return tierStyles[t]
}

// CutoffStyle returns the display style for the i-th cutoff in a list.
func CutoffStyle(i int) lipgloss.Style {
	if i < 0 {
		i = 0
	}
	return CutoffColors[i%len(CutoffColors)]
}
