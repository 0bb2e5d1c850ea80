package diagconsts

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning holds every tunable constant the detectors and hint annotator
// read. Zero-value Tuning is never used directly — construct one via
// Default() or LoadTuning().
type Tuning struct {
	SlideW       float64 `yaml:"slideW" json:"slideW"`
	SlideH       float64 `yaml:"slideH" json:"slideH"`
	SafePadding  float64 `yaml:"safePadding" json:"safePadding"`
	OOBEpsPx     float64 `yaml:"oobEpsPx" json:"oobEpsPx"`
	MinOverlapAreaPx float64 `yaml:"minOverlapAreaPx" json:"minOverlapAreaPx"`
	TextOverlapSeverityMult float64 `yaml:"textOverlapSeverityMult" json:"textOverlapSeverityMult"`
	UnderflowRatio          float64 `yaml:"underflowRatio" json:"underflowRatio"`
	HintBufferPx            float64 `yaml:"hintBufferPx" json:"hintBufferPx"`
	WhitespaceCoverageMin    float64 `yaml:"whitespaceCoverageMin" json:"whitespaceCoverageMin"`
	TopologySeverity         int     `yaml:"topologySeverity" json:"topologySeverity"`
	DefaultZIndex            int     `yaml:"defaultZIndex" json:"defaultZIndex"`
	HighPriorityThreshold    int     `yaml:"highPriorityThreshold" json:"highPriorityThreshold"`
	HighPriorityPositionBudgetPx float64 `yaml:"highPriorityPositionBudgetPx" json:"highPriorityPositionBudgetPx"`
	HighPrioritySizeBudgetPx     float64 `yaml:"highPrioritySizeBudgetPx" json:"highPrioritySizeBudgetPx"`
	FontTiers                []FontTier `yaml:"fontTiers" json:"fontTiers"`
}

// Default returns the engine's default tunable constants.
func Default() Tuning {
	return Tuning{
		SlideW:                  1280,
		SlideH:                  720,
		SafePadding:             8,
		OOBEpsPx:                1,
		MinOverlapAreaPx:        100,
		TextOverlapSeverityMult: 2,
		UnderflowRatio:          1.5,
		HintBufferPx:            4,
		WhitespaceCoverageMin:   0.15,
		TopologySeverity:        1000,
		DefaultZIndex:           0,
		HighPriorityThreshold:   80,
		HighPriorityPositionBudgetPx: 100,
		HighPrioritySizeBudgetPx:     50,
		FontTiers:               DefaultFontTiers(),
	}
}

// LoadTuning reads a YAML file overlaying fields onto the defaults. Any
// field absent from the file keeps its default value. An empty FontTiers
// list in the file is treated as "not overridden" and keeps the default
// tier table.
func LoadTuning(path string) (Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("reading tuning file: %w", err)
	}
	return LoadTuningFromBytes(data)
}

// LoadTuningFromBytes parses a YAML tuning overlay from raw bytes, useful
// for tests and programmatic configuration.
func LoadTuningFromBytes(data []byte) (Tuning, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Tuning{}, fmt.Errorf("parsing tuning YAML: %w", err)
	}
	if len(cfg.FontTiers) == 0 {
		cfg.FontTiers = DefaultFontTiers()
	}
	return cfg, nil
}
