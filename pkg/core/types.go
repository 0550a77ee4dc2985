/*
Copyright 2025 The easelcalc Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import (
	"fmt"
	"strconv"
)

// Size is a width/height pair in an abstract length unit (inches by convention).
// It is comparable and is used directly as a map key.
type Size struct {
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Area returns width times height.
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// Rotated returns s with width and height swapped.
func (s Size) Rotated() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// Contains reports whether o fits inside s without rotation.
func (s Size) Contains(o Size) bool {
	return o.Width <= s.Width && o.Height <= s.Height
}

// Oriented returns s swapped when landscape is set.
func (s Size) Oriented(landscape bool) Size {
	if landscape {
		return s.Rotated()
	}
	return s
}

// String formats s the way easels and paper are labelled, e.g. "8x10".
func (s Size) String() string {
	return formatDim(s.Width) + "x" + formatDim(s.Height)
}

func formatDim(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// EaselSize is one entry of the easel catalog.
type EaselSize struct {
	// Name is the label printed on the easel, e.g. "8x10".
	Name   string  `yaml:"name" json:"name"`
	Width  float64 `yaml:"width" json:"width"`
	Height float64 `yaml:"height" json:"height"`
}

// Size returns the easel dimensions as stored in the catalog.
func (e EaselSize) Size() Size {
	return Size{Width: e.Width, Height: e.Height}
}

// Area returns the easel area.
func (e EaselSize) Area() float64 {
	return e.Width * e.Height
}

// String returns the easel label, or its dimensions when unnamed.
func (e EaselSize) String() string {
	if e.Name != "" {
		return e.Name
	}
	return e.Size().String()
}

// FitResult is the outcome of fitting paper against the easel catalog.
type FitResult struct {
	// EaselSize is the chosen easel, or the paper itself when nothing fits.
	EaselSize EaselSize `yaml:"easelSize" json:"easelSize"`
	// EffectiveSlot is the part of the easel the paper occupies after orientation.
	// It is never smaller than the oriented paper on either axis.
	EffectiveSlot Size `yaml:"effectiveSlot" json:"effectiveSlot"`
	// IsNonStandardPaperSize is set whenever the paper is not an exact catalog match,
	// meaning the paper must be masked inside a larger easel (or is oversize).
	IsNonStandardPaperSize bool `yaml:"isNonStandardPaperSize" json:"isNonStandardPaperSize"`
}

// PrintSize is the image rectangle placed on the paper.
type PrintSize struct {
	PrintW float64 `yaml:"printW" json:"printW"`
	PrintH float64 `yaml:"printH" json:"printH"`
}

// IsZero reports whether the print is degenerate.
func (p PrintSize) IsZero() bool {
	return p.PrintW <= 0 || p.PrintH <= 0
}

// OffsetResult holds clamped print offsets and the centering slack they were bounded by.
type OffsetResult struct {
	H     float64 `yaml:"h" json:"h"`
	V     float64 `yaml:"v" json:"v"`
	HalfW float64 `yaml:"halfW" json:"halfW"`
	HalfH float64 `yaml:"halfH" json:"halfH"`
	// Warning is empty unless an offset had to be adjusted.
	Warning string `yaml:"warning,omitempty" json:"warning,omitempty"`
}

// Borders are the per-edge distances between print and paper edges.
type Borders struct {
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// BladeReadings are the ruler positions for each of the four easel blades.
type BladeReadings struct {
	Left   float64 `yaml:"left" json:"left"`
	Right  float64 `yaml:"right" json:"right"`
	Top    float64 `yaml:"top" json:"top"`
	Bottom float64 `yaml:"bottom" json:"bottom"`
}

// String renders readings compactly for log lines.
func (b BladeReadings) String() string {
	return fmt.Sprintf("L%.2f R%.2f T%.2f B%.2f", b.Left, b.Right, b.Top, b.Bottom)
}
