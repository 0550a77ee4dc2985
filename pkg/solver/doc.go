// Package solver implements the minimum-border search of the easel engine.
//
// Given paper, aspect ratio and a requested minimum border, the BorderOptimizer looks
// for a nearby border whose four resulting gaps land close to a ruler increment (the
// snap unit), so the blades can be set from readable marks without straying far from
// what was asked for.
//
// Search Strategy:
//
//  1. Window: [max(epsilon, start-span), start+span]
//  2. Step: max(minStep, window/divisor), candidates visited in ascending order
//  3. Score: sum over the four gaps of the distance to the nearest snap mark,
//     abandoning a candidate as soon as its partial score exceeds the best
//  4. Stop: immediately when a candidate snaps within epsilon
//
// Example usage:
//
//	opt := solver.NewBorderOptimizer(config.DefaultEngineSpec())
//	border := opt.OptimalMinBorder(8, 10, 3, 2, 0.5)
//
// The solver is designed to be:
//   - Deterministic: candidates are evaluated sequentially, ties go to the first found
//   - Bounded: the window and step are fixed by the EngineSpec
//   - Total: degenerate input returns the requested border unchanged
package solver
