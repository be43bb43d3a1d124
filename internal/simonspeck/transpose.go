package simonspeck

// unpackHi64 / unpackLo64 implement the pair-transpose that feeds the
// kernels:
//
//	Xv = unpack_hi64(block0, block1)   // (A.X, B.X)
//	Yv = unpack_lo64(block0, block1)   // (A.Y, B.Y)
//
// and its inverse:
//
//	block0 = unpack_lo64(Yv, Xv)
//	block1 = unpack_hi64(Yv, Xv)
//
// loadBlock already places X in the high field and Y in the low field
// (vector.go), so "unpack high" and "unpack low" here are a direct
// transliteration of vget_high_u64/vget_low_u64 and _mm_unpackhi/lo_epi64:
// take one lane from each operand.
func unpackHi64(a, b vec128) vec128 {
	return vec128{lo: a.hi, hi: b.hi}
}

func unpackLo64(a, b vec128) vec128 {
	return vec128{lo: a.lo, hi: b.lo}
}

// transposePair maps two adjacent blocks into the (Xv, Yv) form the kernels
// operate on.
func transposePair(block0, block1 *[16]byte) (xv, yv vec128) {
	b0, b1 := loadBlock(block0), loadBlock(block1)
	return unpackHi64(b0, b1), unpackLo64(b0, b1)
}

// detransposePair writes (Xv, Yv) back into two adjacent blocks; the exact
// inverse of transposePair.
func detransposePair(block0, block1 *[16]byte, xv, yv vec128) {
	storeBlock(block0, unpackLo64(yv, xv))
	storeBlock(block1, unpackHi64(yv, xv))
}
