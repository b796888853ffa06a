package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/ljlab/ljcut/internal/analysis"
	"github.com/ljlab/ljcut/internal/cutoff"
	"github.com/ljlab/ljcut/internal/potential"
)

const svgBackground = "#0a0a0a"

// MarkerColors is the cutoff marker palette, cycling red/blue/green like the
// classic three-cutoff comparison figure.
var MarkerColors = []string{"#ff4444", "#00ccff", "#00ff88"}

// CurveSVG renders the sampled potential as an SVG figure: the curve as a
// path, a zero axis, a dashed vertical guide per cutoff and a circle marker
// at each (rc, V(rc)). The vertical viewport is fixed to [ymin, ymax]; the
// path lifts the pen across clipped or non-finite samples.
func CurveSVG(curve potential.Curve, rows []cutoff.Row, width, height int, ymin, ymax float64) string {
	if curve.Len() < 2 || width <= 0 || height <= 0 || ymax <= ymin {
		return ""
	}

	xmin, xmax := curve.R[0], curve.R[curve.Len()-1]
	if xmax <= xmin {
		return ""
	}

	mapX := func(x float64) (float64, bool) {
		if math.IsNaN(x) || math.IsInf(x, 0) || x < xmin || x > xmax {
			return 0, false
		}
		return (x - xmin) / (xmax - xmin) * float64(width), true
	}
	mapY := func(y float64) (float64, bool) {
		if math.IsNaN(y) || math.IsInf(y, 0) || y < ymin || y > ymax {
			return 0, false
		}
		return float64(height) - (y-ymin)/(ymax-ymin)*float64(height), true
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	if zy, ok := mapY(0); ok {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="#555555" stroke-width="1"/>
`, zy, width, zy))
	}

	for i, row := range rows {
		if gx, ok := mapX(row.Spec.Distance); ok {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="%s" stroke-width="1" stroke-dasharray="5 4" opacity="0.7"/>
`, gx, gx, height, MarkerColors[i%len(MarkerColors)]))
		}
	}

	sb.WriteString(`<path fill="none" stroke="#e6e6e6" stroke-width="1.5" d="`)
	pen := false
	for i := 0; i < curve.Len(); i++ {
		px, okx := mapX(curve.R[i])
		py, oky := mapY(curve.V[i])
		if !okx || !oky {
			pen = false
			continue
		}
		if pen {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" M%.1f,%.1f", px, py))
			pen = true
		}
	}
	sb.WriteString("\"/>\n")

	// markers over the path
	for i, row := range rows {
		px, okx := mapX(row.Spec.Distance)
		py, oky := mapY(row.Potential)
		if !okx || !oky {
			continue
		}
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="4" fill="%s"/>
`, px, py, MarkerColors[i%len(MarkerColors)]))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// ScanSVG renders a cutoff sweep as two side-by-side panels: discarded tail
// magnitude on a log10 scale and relative cost, both against cutoff radius.
func ScanSVG(scan analysis.Scan, width, height int) string {
	if len(scan.Points) < 2 || width <= 1 || height <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, svgBackground))

	panel := width / 2
	sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="0" x2="%d" y2="%d" stroke="#333333" stroke-width="1"/>
`, panel, panel, height))

	logMag := make([]float64, len(scan.Points))
	for i, p := range scan.Points {
		if p.Magnitude > 0 && !math.IsInf(p.Magnitude, 0) {
			logMag[i] = math.Log10(p.Magnitude)
		} else {
			logMag[i] = -6
		}
	}

	writePanel(&sb, scan.Cutoffs(), logMag, 0, panel, height, "#00ccff")
	writePanel(&sb, scan.Cutoffs(), scan.Costs(), panel, width-panel, height, "#ffaa00")

	sb.WriteString(fmt.Sprintf(`<text x="8" y="16" fill="#888899" font-family="monospace" font-size="12">log10 |V| at cutoff</text>
<text x="%d" y="16" fill="#888899" font-family="monospace" font-size="12">cost relative to %.1fσ</text>
`, panel+8, scan.Reference))

	sb.WriteString("</svg>")
	return sb.String()
}

// writePanel draws one autoscaled polyline into a horizontal slice of the
// figure, with 10% vertical padding like the curve bounds.
func writePanel(sb *strings.Builder, xs, ys []float64, x0, w, h int, color string) {
	if len(xs) < 2 || len(ys) < len(xs) || w <= 0 || h <= 0 {
		return
	}

	minX, maxX := xs[0], xs[0]
	minY, maxY := ys[0], ys[0]
	for i := range xs {
		if xs[i] < minX {
			minX = xs[i]
		}
		if xs[i] > maxX {
			maxX = xs[i]
		}
		if ys[i] < minY {
			minY = ys[i]
		}
		if ys[i] > maxY {
			maxY = ys[i]
		}
	}

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	inset := float64(w) * 0.05

	sb.WriteString(fmt.Sprintf(`<polyline fill="none" stroke="%s" stroke-width="1.5" points="`, color))
	for i := range xs {
		px := float64(x0) + inset + (xs[i]-minX)/rangeX*(float64(w)-2*inset)
		py := float64(h) - (ys[i]-minY)/rangeY*float64(h)
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
	}
	sb.WriteString("\"/>\n")
}
