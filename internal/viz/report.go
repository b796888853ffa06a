package viz

import (
	"strings"

	"github.com/ljlab/ljcut/internal/cutoff"
)

// RenderReport applies the style set to plain report lines. With color off
// the lines pass through untouched, so piped output stays byte-identical to
// [cutoff.Report].
func RenderReport(lines []string, color bool) string {
	if !color {
		return strings.Join(lines, "\n")
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = styleLine(line)
	}
	return strings.Join(out, "\n")
}

func styleLine(line string) string {
	switch {
	case line == "":
		return line
	case strings.HasPrefix(line, "="):
		return RuleStyle.Render(line)
	case strings.HasPrefix(line, "-"):
		return RuleStyle.Render(line)
	case strings.HasPrefix(line, "•"):
		return line
	case strings.HasPrefix(line, "Cutoff"):
		return HeaderStyle.Render(line)
	case line == strings.ToUpper(line) && strings.Contains(line, "ANALYSIS"):
		return TitleStyle.Render(line)
	case strings.HasSuffix(line, ":") && line == strings.ToUpper(line):
		return SectionStyle.Render(line)
	}
	return styleTierWord(line)
}

// styleTierWord colorizes the significance column inside a table row.
// A row holds at most one tier name.
func styleTierWord(line string) string {
	for _, tier := range []cutoff.Tier{
		cutoff.TierHigh,
		cutoff.TierSignificant,
		cutoff.TierModerate,
		cutoff.TierNegligible,
	} {
		name := tier.String()
		if idx := strings.LastIndex(line, name); idx >= 0 {
			return line[:idx] + TierStyle(tier).Render(name) + line[idx+len(name):]
		}
	}
	return line
}
