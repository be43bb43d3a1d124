// Package simonspeck implements the lane-level round functions for SIMON-128
// and SPECK-128 over 64-bit SIMD lanes, plus the pair-transpose that feeds
// them.
//
// A 128-bit vector is modeled as two 64-bit lanes ([vec128]). The rotate
// amount at every call site is fixed at compile time (SPECK's α=8, β=3;
// SIMON's f-function rotates by 1, 2, and 8), so rotates are named
// functions rather than a single function parameterized by a runtime shift
// count — Go has no template-style compile-time integer parameter, and a
// runtime branch on the shift amount would defeat the point of the R=8
// byte-permute specialization (see vector_amd64.go, vector_arm64.go).
//
// Key schedules are represented as either [ScalarSchedule] (broadcast by the
// kernel every round) or [SplatSchedule] (pre-duplicated into 128-bit
// slots); see keysource.go. Round-key expansion itself is out of scope for
// this package.
package simonspeck
