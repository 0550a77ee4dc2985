package v1alpha1

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"k8s.io/utils/ptr"
)

// Defaults applied by BorderCalculatorSpec.Default.
const (
	DefaultMinBorder   = 0.5
	DefaultRatioWidth  = 3.0
	DefaultRatioHeight = 2.0
)

// ErrInvalidSpec is returned by BorderCalculatorSpec.Validate.
var ErrInvalidSpec = errors.New("invalid border calculator spec")

// BorderCalculatorSpec describes one print to lay out on a sheet of paper.
// All dimensions are in the same unit, typically inches.
type BorderCalculatorSpec struct {
	// Paper is the sheet size as loaded, before orientation is applied.
	Paper Dimensions `json:"paper" yaml:"paper"`

	// Ratio is the aspect ratio of the negative, e.g. 3:2 for 35mm.
	// Defaults to 3:2 when both sides are zero.
	// +optional
	Ratio Dimensions `json:"ratio,omitempty" yaml:"ratio,omitempty"`

	// MinBorder is the narrowest border allowed on any edge. Defaults to 0.5.
	// +optional
	MinBorder *float64 `json:"minBorder,omitempty" yaml:"minBorder,omitempty"`

	// Landscape rotates the paper a quarter turn.
	// +optional
	Landscape *bool `json:"landscape,omitempty" yaml:"landscape,omitempty"`

	// RatioFlipped rotates the image a quarter turn relative to the paper.
	// +optional
	RatioFlipped *bool `json:"ratioFlipped,omitempty" yaml:"ratioFlipped,omitempty"`

	// Offset shifts the print off center. Offsets are ignored when unset.
	// +optional
	Offset *OffsetSpec `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// Dimensions is a width and height pair.
type Dimensions struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// OffsetSpec is a requested shift of the print from center.
type OffsetSpec struct {
	// Horizontal moves the print right when positive.
	Horizontal float64 `json:"horizontal" yaml:"horizontal"`
	// Vertical moves the print up when positive.
	Vertical float64 `json:"vertical" yaml:"vertical"`
	// IgnoreMinBorder lets the print move all the way to the paper edge.
	// +optional
	IgnoreMinBorder bool `json:"ignoreMinBorder,omitempty" yaml:"ignoreMinBorder,omitempty"`
}

// Default fills unset optional fields.
func (s *BorderCalculatorSpec) Default() {
	if s.Ratio.Width == 0 && s.Ratio.Height == 0 {
		s.Ratio = Dimensions{Width: DefaultRatioWidth, Height: DefaultRatioHeight}
	}
	if s.MinBorder == nil {
		s.MinBorder = ptr.To(DefaultMinBorder)
	}
	if s.Landscape == nil {
		s.Landscape = ptr.To(false)
	}
	if s.RatioFlipped == nil {
		s.RatioFlipped = ptr.To(false)
	}
}

// Validate reports every problem with the spec in one error wrapping ErrInvalidSpec.
func (s *BorderCalculatorSpec) Validate() error {
	var problems []string
	if s.Paper.Width <= 0 || s.Paper.Height <= 0 {
		problems = append(problems, fmt.Sprintf("paper must be positive, got %gx%g", s.Paper.Width, s.Paper.Height))
	}
	if s.Ratio.Width < 0 || s.Ratio.Height < 0 {
		problems = append(problems, fmt.Sprintf("ratio cannot be negative, got %g:%g", s.Ratio.Width, s.Ratio.Height))
	}
	if mb := ptr.Deref(s.MinBorder, DefaultMinBorder); mb < 0 {
		problems = append(problems, fmt.Sprintf("minBorder cannot be negative, got %g", mb))
	}
	for _, f := range s.numbers() {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			problems = append(problems, fmt.Sprintf("%s must be finite, got %g", f.name, f.value))
		}
	}
	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidSpec, strings.Join(problems, "; "))
}

type namedNumber struct {
	name  string
	value float64
}

func (s *BorderCalculatorSpec) numbers() []namedNumber {
	out := []namedNumber{
		{"paper.width", s.Paper.Width},
		{"paper.height", s.Paper.Height},
		{"ratio.width", s.Ratio.Width},
		{"ratio.height", s.Ratio.Height},
		{"minBorder", ptr.Deref(s.MinBorder, DefaultMinBorder)},
	}
	if s.Offset != nil {
		out = append(out,
			namedNumber{"offset.horizontal", s.Offset.Horizontal},
			namedNumber{"offset.vertical", s.Offset.Vertical})
	}
	return out
}

// DeepCopy returns an independent copy of the spec.
func (s *BorderCalculatorSpec) DeepCopy() *BorderCalculatorSpec {
	if s == nil {
		return nil
	}
	out := *s
	if s.MinBorder != nil {
		out.MinBorder = ptr.To(*s.MinBorder)
	}
	if s.Landscape != nil {
		out.Landscape = ptr.To(*s.Landscape)
	}
	if s.RatioFlipped != nil {
		out.RatioFlipped = ptr.To(*s.RatioFlipped)
	}
	if s.Offset != nil {
		o := *s.Offset
		out.Offset = &o
	}
	return &out
}

// BorderCalculatorStatus is the computed layout for a spec.
type BorderCalculatorStatus struct {
	// Paper is the sheet after orientation.
	Paper Dimensions `json:"paper" yaml:"paper"`

	// Print is the image area. Zero when the min border leaves no room.
	Print Dimensions `json:"print" yaml:"print"`

	// Offset is the shift actually applied after clamping.
	Offset OffsetStatus `json:"offset" yaml:"offset"`

	// Borders are the distances from each paper edge to the print.
	Borders Edges `json:"borders" yaml:"borders"`

	// Blades are the easel blade readings.
	Blades Edges `json:"blades" yaml:"blades"`

	// Easel is the easel and slot the paper goes in.
	Easel EaselStatus `json:"easel" yaml:"easel"`

	// BladeThickness is the display thickness of the easel blades.
	BladeThickness float64 `json:"bladeThickness" yaml:"bladeThickness"`

	// SuggestedMinBorder is a nearby min border that lands every border on a snap mark.
	SuggestedMinBorder float64 `json:"suggestedMinBorder" yaml:"suggestedMinBorder"`

	// Warnings are human-readable notes about the layout.
	// +optional
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// OffsetStatus is the clamped offset.
type OffsetStatus struct {
	Horizontal float64 `json:"horizontal" yaml:"horizontal"`
	Vertical   float64 `json:"vertical" yaml:"vertical"`
}

// Edges holds one value per edge.
type Edges struct {
	Left   float64 `json:"left" yaml:"left"`
	Right  float64 `json:"right" yaml:"right"`
	Top    float64 `json:"top" yaml:"top"`
	Bottom float64 `json:"bottom" yaml:"bottom"`
}

// EaselStatus describes the selected easel.
type EaselStatus struct {
	// Name is empty for oversize paper, which is treated as its own easel.
	// +optional
	Name   string  `json:"name,omitempty" yaml:"name,omitempty"`
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`

	// Slot is the easel opening as oriented to hold the paper.
	Slot Dimensions `json:"slot" yaml:"slot"`

	// NonStandard is set when the paper does not exactly match an easel.
	NonStandard bool `json:"nonStandard" yaml:"nonStandard"`
}

// BorderCalculator is a request document together with its computed status.
type BorderCalculator struct {
	APIVersion string `json:"apiVersion" yaml:"apiVersion"`
	Kind       string `json:"kind" yaml:"kind"`

	// Name labels the calculation, e.g. a print or negative identifier.
	// +optional
	Name string `json:"name,omitempty" yaml:"name,omitempty"`

	Spec BorderCalculatorSpec `json:"spec" yaml:"spec"`

	// +optional
	Status BorderCalculatorStatus `json:"status,omitempty" yaml:"status,omitempty"`
}

// NewBorderCalculator returns a document with apiVersion and kind set.
func NewBorderCalculator(name string, spec BorderCalculatorSpec) *BorderCalculator {
	return &BorderCalculator{
		APIVersion: GroupVersion,
		Kind:       Kind,
		Name:       name,
		Spec:       spec,
	}
}

// Validate checks the document header and spec.
func (b *BorderCalculator) Validate() error {
	if b.APIVersion != "" && b.APIVersion != GroupVersion {
		return fmt.Errorf("unsupported apiVersion %q, want %q", b.APIVersion, GroupVersion)
	}
	if b.Kind != "" && b.Kind != Kind {
		return fmt.Errorf("unsupported kind %q, want %q", b.Kind, Kind)
	}
	return b.Spec.Validate()
}

// DeepCopy returns an independent copy of the document.
func (b *BorderCalculator) DeepCopy() *BorderCalculator {
	if b == nil {
		return nil
	}
	out := *b
	out.Spec = *b.Spec.DeepCopy()
	if b.Status.Warnings != nil {
		out.Status.Warnings = append([]string(nil), b.Status.Warnings...)
	}
	return &out
}
