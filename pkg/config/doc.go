// Package config defines the numeric tunables of the easel geometry engine.
//
// Every constant the engine relies on (snap increment, search window, step sizes,
// numeric epsilon, display precision, blade thickness scaling and fit cache capacity)
// lives in a single EngineSpec value so callers can run several independently
// configured engines side by side.
//
// Configuration Sources:
//
//  1. Command-line flags (highest priority)
//  2. Environment variables (EASELCALC_ENGINE_*)
//  3. YAML configuration file
//  4. DefaultEngineSpec (lowest priority)
//
// Loading and overlaying those sources is done by internal/config; this package only
// holds the value type, its defaults and validation.
//
// Example usage:
//
//	spec := config.DefaultEngineSpec()
//	spec = spec.Merge(config.EngineSpec{SnapUnit: 0.125})
//	if err := spec.Validate(); err != nil {
//	    return err
//	}
//	optimizer := solver.NewBorderOptimizer(spec)
//
// Validation rejects non-positive search and scaling parameters and negative display
// precision; everything else about user input is tolerated by the engine itself.
package config
