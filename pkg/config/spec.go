package config

import (
	"fmt"

	"k8s.io/utils/ptr"
)

// Engine defaults
const (
	// DefaultSnapUnit is the ruler increment border gaps are aligned to.
	DefaultSnapUnit = 0.25
	// DefaultSearchSpan is the distance searched either side of the requested border.
	DefaultSearchSpan = 0.5
	// DefaultMinStep is the smallest step taken across the search window.
	DefaultMinStep = 0.01
	// DefaultStepDivisor splits the search window into at most this many steps.
	DefaultStepDivisor = 100
	// DefaultEpsilon guards divisions and decides when a snap score is perfect.
	DefaultEpsilon = 1e-9
	// DefaultDisplayPrecision is the number of decimals the optimized border is rounded to.
	DefaultDisplayPrecision = 2

	// DefaultBladeThickness is the blade thickness used for the base paper area.
	DefaultBladeThickness = 15
	// DefaultBaseAreaWidth and DefaultBaseAreaHeight describe the paper the base
	// thickness is calibrated against (20x24).
	DefaultBaseAreaWidth  = 20
	DefaultBaseAreaHeight = 24
	// DefaultMaxScaleFactor caps how much thicker blades get on small paper.
	DefaultMaxScaleFactor = 2

	// DefaultCacheCapacity is the number of fit results kept before FIFO eviction.
	DefaultCacheCapacity = 100
)

// EngineSpec holds the tunables of the geometry engine.
type EngineSpec struct {
	// Border optimizer
	SnapUnit         float64 `yaml:"snapUnit,omitempty" json:"snapUnit,omitempty"`
	SearchSpan       float64 `yaml:"searchSpan,omitempty" json:"searchSpan,omitempty"`
	MinStep          float64 `yaml:"minStep,omitempty" json:"minStep,omitempty"`
	StepDivisor      float64 `yaml:"stepDivisor,omitempty" json:"stepDivisor,omitempty"`
	Epsilon          float64 `yaml:"epsilon,omitempty" json:"epsilon,omitempty"`
	DisplayPrecision *int    `yaml:"displayPrecision,omitempty" json:"displayPrecision,omitempty"`

	// Blade thickness scaling
	BladeThickness float64 `yaml:"bladeThickness,omitempty" json:"bladeThickness,omitempty"`
	BaseArea       float64 `yaml:"baseArea,omitempty" json:"baseArea,omitempty"`
	MaxScaleFactor float64 `yaml:"maxScaleFactor,omitempty" json:"maxScaleFactor,omitempty"`

	// Fit cache
	CacheCapacity int `yaml:"cacheCapacity,omitempty" json:"cacheCapacity,omitempty"`
}

// DefaultEngineSpec returns the spec the engine uses when nothing is configured.
func DefaultEngineSpec() EngineSpec {
	return EngineSpec{
		SnapUnit:         DefaultSnapUnit,
		SearchSpan:       DefaultSearchSpan,
		MinStep:          DefaultMinStep,
		StepDivisor:      DefaultStepDivisor,
		Epsilon:          DefaultEpsilon,
		DisplayPrecision: ptr.To(DefaultDisplayPrecision),
		BladeThickness:   DefaultBladeThickness,
		BaseArea:         DefaultBaseAreaWidth * DefaultBaseAreaHeight,
		MaxScaleFactor:   DefaultMaxScaleFactor,
		CacheCapacity:    DefaultCacheCapacity,
	}
}

// Validate checks for invalid configuration values.
func (s EngineSpec) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"snapUnit", s.SnapUnit},
		{"searchSpan", s.SearchSpan},
		{"minStep", s.MinStep},
		{"stepDivisor", s.StepDivisor},
		{"epsilon", s.Epsilon},
		{"bladeThickness", s.BladeThickness},
		{"baseArea", s.BaseArea},
		{"maxScaleFactor", s.MaxScaleFactor},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return fmt.Errorf("%s must be > 0, got %g", p.name, p.value)
		}
	}
	if p := s.Precision(); p < 0 {
		return fmt.Errorf("displayPrecision must be >= 0, got %d", p)
	}
	if s.CacheCapacity < 1 {
		return fmt.Errorf("cacheCapacity must be >= 1, got %d", s.CacheCapacity)
	}
	if s.MinStep > s.SearchSpan*2 {
		return fmt.Errorf("minStep (%g) should not exceed the search window (%g)", s.MinStep, s.SearchSpan*2)
	}
	return nil
}

// Precision returns the display precision, or DefaultDisplayPrecision when unset.
func (s EngineSpec) Precision() int {
	return ptr.Deref(s.DisplayPrecision, DefaultDisplayPrecision)
}

// Merge returns a copy of s where every non-zero field of override wins. A set
// DisplayPrecision wins even when it is zero.
func (s EngineSpec) Merge(override EngineSpec) EngineSpec {
	result := s

	if override.SnapUnit != 0 {
		result.SnapUnit = override.SnapUnit
	}
	if override.SearchSpan != 0 {
		result.SearchSpan = override.SearchSpan
	}
	if override.MinStep != 0 {
		result.MinStep = override.MinStep
	}
	if override.StepDivisor != 0 {
		result.StepDivisor = override.StepDivisor
	}
	if override.Epsilon != 0 {
		result.Epsilon = override.Epsilon
	}
	if override.DisplayPrecision != nil {
		result.DisplayPrecision = ptr.To(*override.DisplayPrecision)
	}
	if override.BladeThickness != 0 {
		result.BladeThickness = override.BladeThickness
	}
	if override.BaseArea != 0 {
		result.BaseArea = override.BaseArea
	}
	if override.MaxScaleFactor != 0 {
		result.MaxScaleFactor = override.MaxScaleFactor
	}
	if override.CacheCapacity != 0 {
		result.CacheCapacity = override.CacheCapacity
	}

	return result
}
