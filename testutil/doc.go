// Package testutil provides testing utilities for pixclust.
//
// This package is intended for use in tests, benchmarks and examples only.
// It provides deterministic synthetic images and result invariant checks.
//
// # Synthetic Images
//
//	buf := testutil.Uniform(10, 10, core.RGB8{128, 128, 128})
//	buf := testutil.Halves(20, 10, black, white)
//
//	rng := testutil.NewRNG(seed)
//	buf := rng.ClusteredImage(64, 48, colors, 6) // bands with Gaussian noise
//
// # Invariant Checks
//
//	testutil.RequireValidResult(t, buf, res, true)
package testutil
