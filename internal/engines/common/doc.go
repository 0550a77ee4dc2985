// Package common composes the easelcalc engines into a border calculator.
//
// Architecture:
//
// The calculator follows a pipeline pattern:
//
//	Orientation → Print Sizer → Offset Clamper → Borders / Blades
//	                                 ↑
//	      Fit Cache → Fit Resolver   Border Optimizer (suggestion only)
//
// Example usage:
//
//	calc, err := common.NewCalculator(
//	    common.WithEngineSpec(cfg.Engine),
//	    common.WithCatalog(cfg.Catalog()),
//	    common.WithRegisterer(registry),
//	    common.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//
//	out := calc.Calculate(common.Input{
//	    PaperWidth: 8, PaperHeight: 10,
//	    RatioWidth: 3, RatioHeight: 2,
//	    MinBorder:  0.5,
//	})
//	log.Info("calculated", "blades", out.Blades.String(), "warnings", out.Warnings)
//
// Calculation Flow:
//
//  1. Orient
//     - Swap paper dimensions for landscape
//     - Swap ratio dimensions when the image is flipped
//
//  2. Size and place the print
//     - Largest print of the ratio inside the min border
//     - Clamp offsets with the min-border or paper-edge limiter
//     - Derive borders and blade readings from the clamped offsets
//
//  3. Fit the paper
//     - Resolve the easel slot through the shared fit cache
//     - Flag paper that needs masking or exceeds every easel
//
//  4. Suggest
//     - Search near the requested min border for one that lands every border on a
//       ruler mark
//
// Calculate never fails: degenerate input produces zero sizes and warnings rather than
// errors. Only construction (NewCalculator) and document evaluation (Evaluate) return
// errors.
package common
