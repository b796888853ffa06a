package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/ljlab/ljcut/internal/analysis"
	"github.com/ljlab/ljcut/internal/cutoff"
	"github.com/ljlab/ljcut/internal/potential"
)

// Payload gathers everything one export run can write: the potential, its
// sampled curve, the derived comparison rows and the cutoff sweep.
type Payload struct {
	LJ    potential.LennardJones
	Curve potential.Curve
	Rows  []cutoff.Row
	Scan  analysis.Scan
}

// Document is the JSON export shape.
type Document struct {
	Epsilon float64   `json:"epsilon"`
	Sigma   float64   `json:"sigma"`
	Cutoffs []RowDoc  `json:"cutoffs"`
	Samples int       `json:"samples"`
	R       []float64 `json:"r"`
	V       []float64 `json:"v"`
}

// RowDoc is one comparison row in JSON form.
type RowDoc struct {
	Label     string  `json:"label"`
	Distance  float64 `json:"distance"`
	Potential float64 `json:"potential"`
	Percent   float64 `json:"percent_of_epsilon"`
	Tier      string  `json:"significance"`
	Neighbors float64 `json:"est_neighbors"`
	Cost      float64 `json:"relative_cost"`
}

func buildDocument(p Payload) Document {
	doc := Document{
		Epsilon: p.LJ.Epsilon,
		Sigma:   p.LJ.Sigma,
		Cutoffs: make([]RowDoc, 0, len(p.Rows)),
		Samples: p.Curve.Len(),
		R:       p.Curve.R,
		V:       p.Curve.V,
	}
	for _, row := range p.Rows {
		doc.Cutoffs = append(doc.Cutoffs, RowDoc{
			Label:     row.Spec.Label,
			Distance:  row.Spec.Distance,
			Potential: row.Potential,
			Percent:   row.Percent,
			Tier:      row.Tier.String(),
			Neighbors: row.Neighbors,
			Cost:      row.Cost,
		})
	}
	return doc
}

// WriteJSON writes the payload as an indented JSON document.
func WriteJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildDocument(p))
}

// WriteCSV writes the sampled curve as r,v records with a header row.
func WriteCSV(w io.Writer, p Payload) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"r", "v"}); err != nil {
		return err
	}
	for i := 0; i < p.Curve.Len(); i++ {
		rec := []string{
			strconv.FormatFloat(p.Curve.R[i], 'f', 6, 64),
			strconv.FormatFloat(p.Curve.V[i], 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ScanDoc is the JSON export shape for the cutoff sweep.
type ScanDoc struct {
	Reference float64        `json:"reference"`
	Points    []ScanPointDoc `json:"points"`
}

// ScanPointDoc is one sweep point in JSON form.
type ScanPointDoc struct {
	Cutoff    float64 `json:"cutoff"`
	Magnitude float64 `json:"magnitude"`
	Cost      float64 `json:"cost"`
}

func buildScanDoc(s analysis.Scan) ScanDoc {
	doc := ScanDoc{
		Reference: s.Reference,
		Points:    make([]ScanPointDoc, 0, len(s.Points)),
	}
	for _, p := range s.Points {
		doc.Points = append(doc.Points, ScanPointDoc{
			Cutoff:    p.Cutoff,
			Magnitude: p.Magnitude,
			Cost:      p.Cost,
		})
	}
	return doc
}

// WriteScanJSON writes the payload's cutoff sweep as an indented JSON
// document.
func WriteScanJSON(w io.Writer, p Payload) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildScanDoc(p.Scan))
}

// WriteScanCSV writes the payload's cutoff sweep as cutoff,magnitude,cost
// records with a header row.
func WriteScanCSV(w io.Writer, p Payload) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"cutoff", "magnitude", "cost"}); err != nil {
		return err
	}
	for _, pt := range p.Scan.Points {
		rec := []string{
			strconv.FormatFloat(pt.Cutoff, 'f', 6, 64),
			strconv.FormatFloat(pt.Magnitude, 'f', 6, 64),
			strconv.FormatFloat(pt.Cost, 'f', 6, 64),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
