package common

import (
	"k8s.io/utils/ptr"

	"github.com/darkroomkit/easelcalc/api/v1alpha1"
	"github.com/darkroomkit/easelcalc/pkg/core"
)

// InputFromSpec converts an API spec into calculator input. Unset optional fields take
// their API defaults; spec itself is not modified.
func InputFromSpec(spec v1alpha1.BorderCalculatorSpec) Input {
	s := spec.DeepCopy()
	s.Default()

	in := Input{
		PaperWidth:   s.Paper.Width,
		PaperHeight:  s.Paper.Height,
		RatioWidth:   s.Ratio.Width,
		RatioHeight:  s.Ratio.Height,
		MinBorder:    ptr.Deref(s.MinBorder, v1alpha1.DefaultMinBorder),
		Landscape:    ptr.Deref(s.Landscape, false),
		RatioFlipped: ptr.Deref(s.RatioFlipped, false),
	}
	if s.Offset != nil {
		in.EnableOffset = true
		in.OffsetH = s.Offset.Horizontal
		in.OffsetV = s.Offset.Vertical
		in.IgnoreMinBorder = s.Offset.IgnoreMinBorder
	}
	return in
}

// StatusFromCalculation converts a calculation into its API status.
func StatusFromCalculation(c Calculation) v1alpha1.BorderCalculatorStatus {
	return v1alpha1.BorderCalculatorStatus{
		Paper:   dimensions(c.Paper),
		Print:   v1alpha1.Dimensions{Width: c.Print.PrintW, Height: c.Print.PrintH},
		Offset:  v1alpha1.OffsetStatus{Horizontal: c.Offsets.H, Vertical: c.Offsets.V},
		Borders: v1alpha1.Edges(c.Borders),
		Blades:  v1alpha1.Edges(c.Blades),
		Easel: v1alpha1.EaselStatus{
			Name:        c.Fit.EaselSize.Name,
			Width:       c.Fit.EaselSize.Width,
			Height:      c.Fit.EaselSize.Height,
			Slot:        dimensions(c.Fit.EffectiveSlot),
			NonStandard: c.Fit.IsNonStandardPaperSize,
		},
		BladeThickness:     c.BladeThickness,
		SuggestedMinBorder: c.OptimalMinBorder,
		Warnings:           c.Warnings,
	}
}

// Evaluate validates the document, runs the calculation and fills its status.
func (c *Calculator) Evaluate(bc *v1alpha1.BorderCalculator) error {
	if err := bc.Validate(); err != nil {
		return err
	}
	bc.Status = StatusFromCalculation(c.Calculate(InputFromSpec(bc.Spec)))
	return nil
}

func dimensions(s core.Size) v1alpha1.Dimensions {
	return v1alpha1.Dimensions{Width: s.Width, Height: s.Height}
}
