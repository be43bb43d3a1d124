//go:build arm64 && !purego

package simonspeck

import "math/bits"

// rotl64Perm8 / rotr64Perm8 mirror vector_amd64.go's tables: the NEON
// vqtbl1q_u8 masks in speck128_simd.cpp (RotateLeft64<8> / RotateRight64<8>,
// guarded there by __aarch32__/__aarch64__) use the identical per-lane byte
// permutation as SSSE3's pshufb — NEON's table lookup is just a different
// instruction for the same byte shuffle. Unlike amd64, NEON is part of the
// arm64 baseline ISA (AArch64 mandates it), so there is no feature gate to
// check here.

func rotl64By1(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 1), bits.RotateLeft64(v.hi, 1)} }
func rotl64By2(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 2), bits.RotateLeft64(v.hi, 2)} }
func rotl64By3(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 3), bits.RotateLeft64(v.hi, 3)} }

func rotl64By8(v vec128) vec128 {
	return vec128{permuteLane(v.lo, rotl64Perm8), permuteLane(v.hi, rotl64Perm8)}
}

func rotr64By3(v vec128) vec128 {
	return vec128{bits.RotateLeft64(v.lo, -3), bits.RotateLeft64(v.hi, -3)}
}

func rotr64By8(v vec128) vec128 {
	return vec128{permuteLane(v.lo, rotr64Perm8), permuteLane(v.hi, rotr64Perm8)}
}

var rotl64Perm8 = [8]byte{7, 0, 1, 2, 3, 4, 5, 6}
var rotr64Perm8 = [8]byte{1, 2, 3, 4, 5, 6, 7, 0}

func permuteLane(x uint64, table [8]byte) uint64 {
	var in, out [8]byte
	putLEUint64(in[:], x)
	for i, j := range table {
		out[i] = in[j]
	}
	return leUint64(out[:])
}
