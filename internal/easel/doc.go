// Package easel holds the catalog of standard enlarging easels and the resolver that
// fits arbitrary paper against it.
//
// The catalog is built once from a fixed list. It answers exact-match lookups in O(1)
// (either orientation) and exposes the list sorted by ascending area for the resolver's
// exhaustive minimum-waste search.
//
// Fit resolution:
//
//  1. Orient the paper (swap width/height for landscape)
//  2. Exact catalog match: the paper sits in its native easel
//  3. Otherwise: the smallest-waste easel that contains the paper, as-is or rotated
//  4. Otherwise: the paper itself, flagged non-standard (oversize)
//
// Resolution never fails. IsNonStandardPaperSize is set for every non-exact match,
// signalling that the paper has to be masked inside a larger easel.
package easel
