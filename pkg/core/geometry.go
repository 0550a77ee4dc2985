package core

import (
	"math"

	"github.com/darkroomkit/easelcalc/pkg/config"
)

// ComputePrintSize returns the largest print with aspect ratio ratioW:ratioH that fits
// inside the paper once minBorder is removed from every edge.
// Degenerate input yields a zero PrintSize.
func ComputePrintSize(paperW, paperH, ratioW, ratioH, minBorder float64) PrintSize {
	if paperW <= 0 || paperH <= 0 || ratioW <= 0 || ratioH <= 0 || minBorder < 0 {
		return PrintSize{}
	}

	availW := paperW - 2*minBorder
	availH := paperH - 2*minBorder
	if availW <= 0 || availH <= 0 {
		return PrintSize{}
	}

	ratio := ratioW / ratioH
	if availW/availH > ratio {
		// height is binding
		return PrintSize{PrintW: availH * ratio, PrintH: availH}
	}
	return PrintSize{PrintW: availW, PrintH: availW / ratio}
}

// BordersFromGaps converts centering slack and offsets into per-edge borders.
func BordersFromGaps(halfW, halfH, h, v float64) Borders {
	return Borders{
		Left:   halfW - h,
		Right:  halfW + h,
		Bottom: halfH - v,
		Top:    halfH + v,
	}
}

// ComputeBladeReadings returns the four blade positions for a print of printW x printH
// shifted by scaleX/scaleY.
func ComputeBladeReadings(printW, printH, scaleX, scaleY float64) BladeReadings {
	return BladeReadings{
		Left:   printW - 2*scaleX,
		Right:  printW + 2*scaleX,
		Top:    printH - 2*scaleY,
		Bottom: printH + 2*scaleY,
	}
}

// BladeThickness scales the configured blade thickness inversely with paper area,
// capped at spec.MaxScaleFactor. Non-positive dimensions return spec.BladeThickness.
func BladeThickness(paperW, paperH float64, spec config.EngineSpec) float64 {
	if paperW <= 0 || paperH <= 0 {
		return spec.BladeThickness
	}
	area := paperW * paperH
	scale := math.Min(spec.BaseArea/math.Max(area, spec.Epsilon), spec.MaxScaleFactor)
	return math.Round(spec.BladeThickness * scale)
}

// DefaultBladeThickness is BladeThickness with the default engine spec.
func DefaultBladeThickness(paperW, paperH float64) float64 {
	return BladeThickness(paperW, paperH, config.DefaultEngineSpec())
}
