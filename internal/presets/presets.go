// Package presets lists the paper sizes and aspect ratios darkroom printers usually
// pick from, and parses the "8x10" / "3:2" notation used for custom values.
package presets

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/darkroomkit/easelcalc/pkg/core"
)

// ErrInvalidFormat is returned when a size or ratio string cannot be parsed.
var ErrInvalidFormat = errors.New("invalid format")

// ErrUnknownPreset is returned by lookups for names not in the preset lists.
var ErrUnknownPreset = errors.New("unknown preset")

// PaperSize is a named paper size, portrait (width <= height).
type PaperSize struct {
	Name   string
	Width  float64
	Height float64
}

// Size returns the paper dimensions.
func (p PaperSize) Size() core.Size {
	return core.Size{Width: p.Width, Height: p.Height}
}

// AspectRatio is a named negative/print aspect ratio.
type AspectRatio struct {
	Name   string
	Width  float64
	Height float64
}

// PaperSizes are the standard photographic paper sizes, in inches.
var PaperSizes = []PaperSize{
	{Name: "4x5", Width: 4, Height: 5},
	{Name: "4x6", Width: 4, Height: 6},
	{Name: "5x7", Width: 5, Height: 7},
	{Name: "8x10", Width: 8, Height: 10},
	{Name: "11x14", Width: 11, Height: 14},
	{Name: "16x20", Width: 16, Height: 20},
	{Name: "20x24", Width: 20, Height: 24},
}

// AspectRatios are the common negative formats.
var AspectRatios = []AspectRatio{
	{Name: "3:2", Width: 3, Height: 2},
	{Name: "65:24", Width: 65, Height: 24},
	{Name: "6:4.5", Width: 6, Height: 4.5},
	{Name: "1:1", Width: 1, Height: 1},
	{Name: "6:7", Width: 6, Height: 7},
	{Name: "4:5", Width: 4, Height: 5},
	{Name: "5:4", Width: 5, Height: 4},
	{Name: "7:5", Width: 7, Height: 5},
	{Name: "16:9", Width: 16, Height: 9},
	{Name: "2:1", Width: 2, Height: 1},
}

// LookupPaper returns the preset paper with the given name.
func LookupPaper(name string) (PaperSize, error) {
	for _, p := range PaperSizes {
		if p.Name == name {
			return p, nil
		}
	}
	return PaperSize{}, fmt.Errorf("paper %q: %w", name, ErrUnknownPreset)
}

// LookupRatio returns the preset ratio with the given name.
func LookupRatio(name string) (AspectRatio, error) {
	for _, r := range AspectRatios {
		if r.Name == name {
			return r, nil
		}
	}
	return AspectRatio{}, fmt.Errorf("ratio %q: %w", name, ErrUnknownPreset)
}

// ParsePaperSize parses "WxH" (an upper-case X or a space-padded separator is accepted).
// Preset names parse to themselves since they use the same notation.
func ParsePaperSize(s string) (core.Size, error) {
	w, h, err := parsePair(s, "x")
	if err != nil {
		return core.Size{}, fmt.Errorf("paper size %q: %w", s, err)
	}
	return core.Size{Width: w, Height: h}, nil
}

// ParseAspectRatio parses "W:H", falling back to "WxH".
func ParseAspectRatio(s string) (AspectRatio, error) {
	sep := ":"
	if !strings.Contains(s, ":") {
		sep = "x"
	}
	w, h, err := parsePair(s, sep)
	if err != nil {
		return AspectRatio{}, fmt.Errorf("aspect ratio %q: %w", s, err)
	}
	return AspectRatio{Name: strings.TrimSpace(s), Width: w, Height: h}, nil
}

func parsePair(s, sep string) (float64, float64, error) {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(s)), sep)
	if len(parts) != 2 {
		return 0, 0, ErrInvalidFormat
	}
	a, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	b, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	if a <= 0 || b <= 0 {
		return 0, 0, fmt.Errorf("%w: dimensions must be positive", ErrInvalidFormat)
	}
	return a, b, nil
}
