//go:build (!amd64 && !arm64 && !ppc64 && !ppc64le) || purego

package simonspeck

import "math/bits"

// On this build, rotates are the portable shift/shift/or formula for every
// amount, including R=8: there is no permute instruction to specialize
// against, so math/bits.RotateLeft64 is used directly (it itself lowers to
// a single ROL/ROR on architectures that have one, but that is the Go
// compiler's business, not this package's).

func rotl64By1(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 1), bits.RotateLeft64(v.hi, 1)} }
func rotl64By2(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 2), bits.RotateLeft64(v.hi, 2)} }
func rotl64By3(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 3), bits.RotateLeft64(v.hi, 3)} }
func rotl64By8(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 8), bits.RotateLeft64(v.hi, 8)} }

func rotr64By3(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, -3), bits.RotateLeft64(v.hi, -3)} }
func rotr64By8(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, -8), bits.RotateLeft64(v.hi, -8)} }
