package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ljlab/ljcut/internal/analysis"
	"github.com/ljlab/ljcut/internal/potential"
)

func TestCurveSVG(t *testing.T) {
	p := standardPayload(200)
	svg := CurveSVG(p.Curve, p.Rows, 900, 600, -1.2, 2.0)

	assert.True(t, strings.HasPrefix(svg, `<?xml version="1.0"`))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `width="900"`)
	assert.Contains(t, svg, "<path")
	assert.Contains(t, svg, "stroke-dasharray")

	// one colored marker per cutoff
	assert.Equal(t, 3, strings.Count(svg, "<circle"))
	for _, color := range MarkerColors {
		assert.Contains(t, svg, color)
	}
}

func TestCurveSVGClipsWall(t *testing.T) {
	lj := potential.New()
	curve := lj.Sample(0.9, 4.0, 500)
	svg := CurveSVG(curve, nil, 900, 600, -1.2, 2.0)
	require.NotEmpty(t, svg)

	// the repulsive wall exceeds the viewport, so the path restarts
	path := svg[strings.Index(svg, "<path"):]
	path = path[:strings.Index(path, "/>")]
	assert.GreaterOrEqual(t, strings.Count(path, "M"), 1)
	assert.NotContains(t, path, "Inf")
	assert.NotContains(t, path, "NaN")
}

func TestCurveSVGDegenerate(t *testing.T) {
	assert.Empty(t, CurveSVG(potential.Curve{}, nil, 900, 600, -1, 1))
	assert.Empty(t, CurveSVG(potential.New().Sample(2, 3, 5), nil, 0, 600, -1, 1))
	assert.Empty(t, CurveSVG(potential.New().Sample(2, 3, 5), nil, 900, 600, 1, -1))
}

func TestScanSVG(t *testing.T) {
	scan := analysis.ScanCutoffs(potential.New(), 1.8, 4.0, 50, 2.5)
	svg := ScanSVG(scan, 1000, 400)

	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Equal(t, 2, strings.Count(svg, "<polyline"))
	assert.Contains(t, svg, "log10 |V| at cutoff")
	assert.Contains(t, svg, "cost relative to 2.5σ")
}

func TestScanSVGDegenerate(t *testing.T) {
	assert.Empty(t, ScanSVG(analysis.Scan{}, 1000, 400))
}
