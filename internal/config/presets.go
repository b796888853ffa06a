package config

import "sort"

var Presets = map[string]*Config{
	// the textbook comparison in reduced units
	"reduced": {
		Epsilon: 1.0, Sigma: 1.0,
		Cutoffs: []CutoffSpec{
			{Distance: 2.0, Label: "2.0σ"},
			{Distance: 2.5, Label: "2.5σ"},
			{Distance: 3.0, Label: "3.0σ"},
		},
		Curve:   RangeConfig{Min: 0.9, Max: 4.0, Samples: 1000},
		Tail:    RangeConfig{Min: 2.0, Max: 4.0, Samples: 500},
		Scan:    RangeConfig{Min: 1.8, Max: 4.0, Samples: 50},
		Density: 0.8, ReportReference: 2.0, ScanReference: 2.5,
	},
	// aggressive truncation for throughput studies
	"coarse": {
		Epsilon: 1.0, Sigma: 1.0,
		Cutoffs: []CutoffSpec{
			{Distance: 1.8, Label: "1.8σ"},
			{Distance: 2.0, Label: "2.0σ"},
			{Distance: 2.2, Label: "2.2σ"},
		},
		Curve:   RangeConfig{Min: 0.9, Max: 3.0, Samples: 1000},
		Tail:    RangeConfig{Min: 1.5, Max: 3.0, Samples: 500},
		Scan:    RangeConfig{Min: 1.5, Max: 3.0, Samples: 50},
		Density: 0.8, ReportReference: 1.8, ScanReference: 2.0,
	},
	// conservative radii for tail-sensitive properties
	"longrange": {
		Epsilon: 1.0, Sigma: 1.0,
		Cutoffs: []CutoffSpec{
			{Distance: 3.0, Label: "3.0σ"},
			{Distance: 3.5, Label: "3.5σ"},
			{Distance: 4.0, Label: "4.0σ"},
		},
		Curve:   RangeConfig{Min: 0.9, Max: 5.0, Samples: 1000},
		Tail:    RangeConfig{Min: 2.5, Max: 5.0, Samples: 500},
		Scan:    RangeConfig{Min: 2.0, Max: 5.0, Samples: 60},
		Density: 0.8, ReportReference: 3.0, ScanReference: 2.5,
	},
	// argon in real units (ε in kJ/mol, σ in Å)
	"argon": {
		Epsilon: 0.997, Sigma: 3.4,
		Cutoffs: []CutoffSpec{
			{Distance: 2.0, Label: "2.0σ"},
			{Distance: 2.5, Label: "2.5σ"},
			{Distance: 3.0, Label: "3.0σ"},
		},
		Curve:   RangeConfig{Min: 0.9, Max: 4.0, Samples: 1000},
		Tail:    RangeConfig{Min: 2.0, Max: 4.0, Samples: 500},
		Scan:    RangeConfig{Min: 1.8, Max: 4.0, Samples: 50},
		Density: 0.8, ReportReference: 2.0, ScanReference: 2.5,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
