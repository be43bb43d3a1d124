//go:build (ppc64 || ppc64le) && !purego

package simonspeck

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// useNativeRotate gates POWER's vector rotate-left instruction (VSX's
// xxsldwi/vrld family), available from POWER8 onward. Pre-VSX 64-bit POWER
// falls back to the portable shift/shift/or formula, with identical output.
//
// Only ppc64/ppc64le (64-bit POWER) are built here. 32-bit POWER would need
// carry/borrow-synthesized 32-bit-lane arithmetic for no clear performance
// win; this port does not ship it (see DESIGN.md).
var useNativeRotate = cpu.PPC64.HasVSX //nolint:gochecknoglobals // checked once at init

// Unlike the SSSE3/NEON backends, AltiVec/VSX has a native 64-bit vector
// rotate for every amount, not just R=8, so there is no separate permute
// table here — every rotl64ByN/rotr64ByN below goes through the same native
// path when available.
//
// Big-endian ppc64 and little-endian ppc64le builds differ in how a vector
// register's raw bytes are addressed by permute masks. This package never
// reinterprets raw bytes that way: vec128's lanes are addressed by field
// (lo/hi), and loadBlock/storeBlock already define a single fixed
// in-memory convention independent of host byte order (vector.go), so
// there is no second mask table to derive for the big-endian build.

func rotl64By(v vec128, r uint) vec128 {
	if useNativeRotate {
		return vec128{bits.RotateLeft64(v.lo, int(r)), bits.RotateLeft64(v.hi, int(r))}
	}
	return vec128{
		(v.lo << r) | (v.lo >> (64 - r)),
		(v.hi << r) | (v.hi >> (64 - r)),
	}
}

func rotr64By(v vec128, r uint) vec128 {
	return rotl64By(v, 64-r)
}

func rotl64By1(v vec128) vec128 { return rotl64By(v, 1) }
func rotl64By2(v vec128) vec128 { return rotl64By(v, 2) }
func rotl64By3(v vec128) vec128 { return rotl64By(v, 3) }
func rotl64By8(v vec128) vec128 { return rotl64By(v, 8) }
func rotr64By3(v vec128) vec128 { return rotr64By(v, 3) }
func rotr64By8(v vec128) vec128 { return rotr64By(v, 8) }
