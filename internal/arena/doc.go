// Package arena provides a flat, fixed-size color table for iterative
// centroid updates.
//
// Centroids are never mutated field by field across iterations. Each update
// step writes a complete successor table, copying forward any row whose
// cluster received no members, and the caller swaps it in. This keeps the
// "empty cluster retains its previous value" rule visible in one place.
package arena
