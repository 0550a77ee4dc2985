// Package core holds the value types and pure geometry of the easel engine.
//
// The types here describe paper, easels, print rectangles, offsets and the four blade
// readings a printer dials into an enlarging easel. The functions are pure arithmetic:
// they never fail and never allocate state. Degenerate input (zero or negative sizes,
// a zero ratio denominator) resolves to a zero value or a default, never to an error.
//
// Key Components:
//
//   - ComputePrintSize: largest print of a given aspect ratio inside paper minus borders
//   - BordersFromGaps: per-edge borders from centering slack and offsets
//   - ComputeBladeReadings: the ruler positions for the four blades
//   - BladeThickness: blade thickness scaled by paper area, for previews
//
// Example usage:
//
//	print := core.ComputePrintSize(8, 10, 3, 2, 0.5)
//	halfW := (8 - print.PrintW) / 2
//	halfH := (10 - print.PrintH) / 2
//	borders := core.BordersFromGaps(halfW, halfH, 0, 0)
//	readings := core.ComputeBladeReadings(print.PrintW, print.PrintH, 0, 0)
package core
