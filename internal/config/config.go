package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ljlab/ljcut/internal/analysis"
	"github.com/ljlab/ljcut/internal/cutoff"
	"github.com/ljlab/ljcut/internal/potential"
)

const (
	DefaultCurveMin     = 0.9
	DefaultCurveMax     = 4.0
	DefaultCurveSamples = 1000
	DefaultTailMin      = 2.0
	DefaultTailMax      = 4.0
	DefaultTailSamples  = 500
	DefaultScanMin      = 1.8
	DefaultScanMax      = 4.0
	DefaultScanSamples  = 50
)

type Config struct {
	Epsilon         float64      `yaml:"epsilon"`
	Sigma           float64      `yaml:"sigma"`
	Cutoffs         []CutoffSpec `yaml:"cutoffs"`
	Curve           RangeConfig  `yaml:"curve"`
	Tail            RangeConfig  `yaml:"tail"`
	Scan            RangeConfig  `yaml:"scan"`
	Density         float64      `yaml:"density"`
	ReportReference float64      `yaml:"report_reference"`
	ScanReference   float64      `yaml:"scan_reference"`
}

// CutoffSpec is one candidate radius, distance in units of σ.
type CutoffSpec struct {
	Distance float64 `yaml:"distance"`
	Label    string  `yaml:"label"`
}

// RangeConfig describes an evenly sampled distance range in units of σ.
type RangeConfig struct {
	Min     float64 `yaml:"min"`
	Max     float64 `yaml:"max"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Epsilon: potential.DefaultEpsilon,
		Sigma:   potential.DefaultSigma,
		Cutoffs: []CutoffSpec{
			{Distance: 2.0, Label: "2.0σ"},
			{Distance: 2.5, Label: "2.5σ"},
			{Distance: 3.0, Label: "3.0σ"},
		},
		Curve:           RangeConfig{Min: DefaultCurveMin, Max: DefaultCurveMax, Samples: DefaultCurveSamples},
		Tail:            RangeConfig{Min: DefaultTailMin, Max: DefaultTailMax, Samples: DefaultTailSamples},
		Scan:            RangeConfig{Min: DefaultScanMin, Max: DefaultScanMax, Samples: DefaultScanSamples},
		Density:         cutoff.DefaultDensity,
		ReportReference: cutoff.ReferenceCutoff,
		ScanReference:   analysis.ScanReference,
	}
}

// Load reads a YAML config, overlaying it on the defaults so partial files
// only override what they name.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Potential builds the configured pair potential.
func (c *Config) Potential() potential.LennardJones {
	return potential.LennardJones{Epsilon: c.Epsilon, Sigma: c.Sigma}
}

// Specs converts the configured cutoff list.
func (c *Config) Specs() []cutoff.Spec {
	specs := make([]cutoff.Spec, len(c.Cutoffs))
	for i, cs := range c.Cutoffs {
		specs[i] = cutoff.Spec{Distance: cs.Distance, Label: cs.Label}
	}
	return specs
}

// Comparator builds a comparator over the configured cutoffs.
func (c *Config) Comparator() *cutoff.Comparator {
	return &cutoff.Comparator{
		LJ:        c.Potential(),
		Specs:     c.Specs(),
		Reference: c.ReportReference,
		Density:   c.Density,
	}
}
