// Package simonspeck128simd implements the advanced block-processing driver
// for SIMON-128 and SPECK-128 bulk encryption: a buffer-level loop that reads
// a possibly non-block-aligned byte range, assembles it into SIMD lane
// pairs, dispatches to the six-block or two-block kernels in
// [github.com/arxcore/simonspeck128simd/internal/simonspeck], applies the
// XOR-chaining and counter-mode flags a mode-of-operation layer needs, and
// reports the number of trailing bytes it declined to touch.
//
// Round-key expansion, the outer block-cipher type, algorithm self-tests,
// and runtime backend dispatch all live outside this module: callers supply
// an already-expanded [github.com/arxcore/simonspeck128simd/internal/simonspeck.KeySource]
// and call one of the per-(cipher, direction) entry points in blocks.go.
package simonspeck128simd
