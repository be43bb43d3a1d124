package simonspeck //nolint:testpackage // need access to the unexported vec128/kernel internals

import "math/bits"

// speckTestKeySchedule is a test-only reference implementation of SPECK's
// round-key expansion, used solely to turn the master keys in the
// known-answer test vectors below into the round-key arrays the kernels
// consume. Round-key expansion is explicitly out of scope for the
// production core; this exists only so the tests below have something to
// feed SpeckEncryptPair/SpeckDecryptPair.
//
// SPECK's key schedule is the designers' own round function run over the
// key words, with the round index standing in for the round key and one
// extra XOR of the round index itself (see the SIMON and SPECK designers'
// paper, "Key Schedule"): with l[0..m-2] initialized from key words
// K[1..m-1] and rk[0] = K[0],
//
//	l[i+m-1] = (rotr64<8>(l[i]) + rk[i]) ⊕ i
//	rk[i+1]  = rotl64<3>(rk[i]) ⊕ l[i+m-1]
//
// words is given most-significant-word-first, matching the test vectors'
// display order (e.g. for a 128-bit key, words[0] = K_1, words[1] = K_0).
func speckTestKeySchedule(words []uint64, rounds int) ScalarSchedule {
	m := len(words)

	l := make([]uint64, rounds+m-2)
	for i := 0; i < m-1; i++ {
		l[i] = words[m-2-i]
	}

	rk := make(ScalarSchedule, rounds)
	rk[0] = words[m-1]

	for i := 0; i < rounds-1; i++ {
		next := bits.RotateLeft64(l[i], -8) + rk[i]
		next ^= uint64(i)
		l[i+m-1] = next
		rk[i+1] = bits.RotateLeft64(rk[i], 3) ^ next
	}

	return rk
}
