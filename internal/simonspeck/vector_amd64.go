//go:build amd64 && !purego

package simonspeck

import (
	"math/bits"

	"golang.org/x/sys/cpu"
)

// useSSSE3Permute mirrors internal/simpira1024's UseAESNI pattern: gate the
// byte-permute specialization behind the CPU feature it actually needs.
// Without SSSE3 (pre-2006 hardware, or a chip that trapped its cpuid bit),
// the shift/shift/or fallback still produces an identical result, just
// without the throughput win pshufb gives real SSSE3 silicon.
var useSSSE3Permute = cpu.X86.HasSSSE3 //nolint:gochecknoglobals // checked once at init

// rotl64Perm8 / rotr64Perm8 are the per-lane byte-permute indices from the
// SSSE3 pshufb masks in speck128_simd.cpp (RotateLeft64<8> /
// RotateRight64<8>): each 8-byte lane is shuffled independently, so the
// 16-byte _mm_set_epi8 mask reduces to one 8-entry table applied to both
// lanes.
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

func rotl64By1(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 1), bits.RotateLeft64(v.hi, 1)} }
func rotl64By2(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 2), bits.RotateLeft64(v.hi, 2)} }
func rotl64By3(v vec128) vec128 { return vec128{bits.RotateLeft64(v.lo, 3), bits.RotateLeft64(v.hi, 3)} }

func rotl64By8(v vec128) vec128 {
	if !useSSSE3Permute {
		return vec128{bits.RotateLeft64(v.lo, 8), bits.RotateLeft64(v.hi, 8)}
	}
	return vec128{permuteLane(v.lo, rotl64Perm8), permuteLane(v.hi, rotl64Perm8)}
}

func rotr64By3(v vec128) vec128 {
	return vec128{bits.RotateLeft64(v.lo, -3), bits.RotateLeft64(v.hi, -3)}
}

func rotr64By8(v vec128) vec128 {
	if !useSSSE3Permute {
		return vec128{bits.RotateLeft64(v.lo, -8), bits.RotateLeft64(v.hi, -8)}
	}
	return vec128{permuteLane(v.lo, rotr64Perm8), permuteLane(v.hi, rotr64Perm8)}
}
