package simonspeck128simd

import "github.com/arxcore/simonspeck128simd/internal/simonspeck"

// SpeckEncryptBlocks runs SPECK-128 encryption over length bytes of in,
// writing out, using the flag contract in [Flags]. keys must be a
// SplatSchedule of length rounds*2, matching SpeckEncryptPair/SpeckEncryptSix's
// pre-splatted key requirement. It returns the number of trailing bytes not
// a multiple of 16 that it declined to process.
func SpeckEncryptBlocks(keys simonspeck.SplatSchedule, rounds int, in, xorIn, out []byte, length int, flags Flags) int {
	return AdvancedProcessBlocks128(simonspeck.SpeckEncryptPair, simonspeck.SpeckEncryptSix, keys, rounds, in, xorIn, out, length, flags)
}

// SpeckDecryptBlocks runs SPECK-128 decryption over length bytes of in,
// writing out, using the flag contract in [Flags]. keys must be a
// ScalarSchedule of length rounds, matching SpeckDecryptPair/SpeckDecryptSix's
// scalar-broadcast key requirement.
func SpeckDecryptBlocks(keys simonspeck.ScalarSchedule, rounds int, in, xorIn, out []byte, length int, flags Flags) int {
	return AdvancedProcessBlocks128(simonspeck.SpeckDecryptPair, simonspeck.SpeckDecryptSix, keys, rounds, in, xorIn, out, length, flags)
}

// SimonEncryptBlocks runs SIMON-128 encryption over length bytes of in,
// writing out, using the flag contract in [Flags]. keys must be a
// SplatSchedule of length rounds*2.
func SimonEncryptBlocks(keys simonspeck.SplatSchedule, rounds int, in, xorIn, out []byte, length int, flags Flags) int {
	return AdvancedProcessBlocks128(simonspeck.SimonEncryptPair, simonspeck.SimonEncryptSix, keys, rounds, in, xorIn, out, length, flags)
}

// SimonDecryptBlocks runs SIMON-128 decryption over length bytes of in,
// writing out, using the flag contract in [Flags]. keys must be a
// ScalarSchedule of length rounds.
func SimonDecryptBlocks(keys simonspeck.ScalarSchedule, rounds int, in, xorIn, out []byte, length int, flags Flags) int {
	return AdvancedProcessBlocks128(simonspeck.SimonDecryptPair, simonspeck.SimonDecryptSix, keys, rounds, in, xorIn, out, length, flags)
}
