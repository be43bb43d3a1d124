package simonspeck

// KeySource yields the round-key vector for round i, in whichever physical
// layout the caller's schedule uses. Kernels are written against
// this interface so the same pair/six-block code serves both layouts; only
// the cost of producing broadcastAt(i) differs between them on real SIMD
// hardware (an aligned 128-bit load for SplatSchedule vs a broadcast-load
// for ScalarSchedule) — a distinction this portable implementation does not
// model, since both resolve to the same vec128{k, k} value either way.
type KeySource interface {
	broadcastAt(i int) vec128
}

// ScalarSchedule holds one 64-bit word per round; the kernel broadcasts it
// into both lanes at each round. Used by SPECK's decrypt kernels and SIMON's
// decrypt kernels, mirroring the broadcast-load (_mm_loaddup_pd and
// equivalents) the reference decrypt kernels use.
type ScalarSchedule []uint64

func (s ScalarSchedule) broadcastAt(i int) vec128 {
	return broadcast64(s[i])
}

// SplatSchedule holds each round key duplicated into two adjacent 64-bit
// slots (16 bytes per round), matching a schedule already laid out for an
// aligned broadcast-load — used when the host ISA's aligned broadcast-load
// is cheaper than a scalar-to-vector broadcast. Index arithmetic for round i
// is subkeys[i*2], subkeys[i*2+1] (both equal). Used by SPECK's and SIMON's
// encrypt kernels.
type SplatSchedule []uint64

func (s SplatSchedule) broadcastAt(i int) vec128 {
	return loadSplat64(s[i*2], s[i*2+1])
}

// Splat duplicates a scalar round-key schedule into pre-splatted form. This
// is the one schedule-layout transform this package is responsible for —
// purely a memory-layout concern, not a key-derivation concern; round-key
// expansion itself is out of scope here.
func Splat(schedule []uint64) SplatSchedule {
	out := make(SplatSchedule, len(schedule)*2)
	for i, k := range schedule {
		out[i*2] = k
		out[i*2+1] = k
	}
	return out
}
