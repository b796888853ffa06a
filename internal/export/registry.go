package export

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/ljlab/ljcut/internal/viz"
)

// ErrUnknownFormat is returned for format names the registry does not hold.
var ErrUnknownFormat = errors.New("export: unknown format")

// WriterFunc renders a payload to one output format.
type WriterFunc func(io.Writer, Payload) error

// Figure dimensions for the SVG format.
const (
	svgWidth  = 900
	svgHeight = 600
)

func writeSVG(w io.Writer, p Payload) error {
	doc := CurveSVG(p.Curve, p.Rows, svgWidth, svgHeight, viz.CurveViewYMin, viz.CurveViewYMax)
	if doc == "" {
		return fmt.Errorf("export: curve too short to draw")
	}
	_, err := io.WriteString(w, doc)
	return err
}

func writeScanSVG(w io.Writer, p Payload) error {
	doc := ScanSVG(p.Scan, svgWidth, svgHeight)
	if doc == "" {
		return fmt.Errorf("export: sweep too short to draw")
	}
	_, err := io.WriteString(w, doc)
	return err
}

var writers = map[string]WriterFunc{
	"svg":  writeSVG,
	"csv":  WriteCSV,
	"json": WriteJSON,
}

var scanWriters = map[string]WriterFunc{
	"svg":  writeScanSVG,
	"csv":  WriteScanCSV,
	"json": WriteScanJSON,
}

func lookup(m map[string]WriterFunc, format string) (WriterFunc, error) {
	fn, ok := m[format]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownFormat, format, Formats())
	}
	return fn, nil
}

// Get looks up a curve-view format writer by name.
func Get(format string) (WriterFunc, error) {
	return lookup(writers, format)
}

// GetScan looks up a sweep-view format writer by name. The format names
// match [Get]; only the dataset differs.
func GetScan(format string) (WriterFunc, error) {
	return lookup(scanWriters, format)
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(writers))
	for name := range writers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
