package simonspeck

// SPECK-128 rotates α=8, β=3. Per round i, given state (x, y) and key k[i]:
//
//	encrypt: x ← (rotr64<8>(x) + y) ⊕ k[i]; y ← rotl64<3>(y) ⊕ x
//	decrypt: y ← rotr64<3>(y ⊕ x); x ← rotl64<8>((x ⊕ k[i]) − y)   (reverse order)

// SpeckEncryptPair runs one block-pair (two cipher blocks) through `rounds`
// SPECK-128 encryption rounds. keys must be a SplatSchedule of length
// rounds*2.
func SpeckEncryptPair(block0, block1 *[16]byte, keys KeySource, rounds int) {
	x, y := transposePair(block0, block1)
	for i := 0; i < rounds; i++ {
		rk := keys.broadcastAt(i)
		x = xor128(add64(rotr64By8(x), y), rk)
		y = xor128(rotl64By3(y), x)
	}
	detransposePair(block0, block1, x, y)
}

// SpeckDecryptPair is the exact inverse of SpeckEncryptPair. keys must be a
// ScalarSchedule of length rounds.
func SpeckDecryptPair(block0, block1 *[16]byte, keys KeySource, rounds int) {
	x, y := transposePair(block0, block1)
	for i := rounds - 1; i >= 0; i-- {
		rk := keys.broadcastAt(i)
		y = rotr64By3(xor128(y, x))
		x = rotl64By8(sub64(xor128(x, rk), y))
	}
	detransposePair(block0, block1, x, y)
}

// SpeckEncryptSix runs three independent block-pairs (six cipher blocks) in
// lockstep. Operation ordering within a round follows the data-dependency
// chain of the round function; reordering across the +/⊕ boundary would
// change the value, not just the timing, so each lane's five-op sequence
// below is kept in the same order as SpeckEncryptPair.
func SpeckEncryptSix(block0, block1, block2, block3, block4, block5 *[16]byte, keys KeySource, rounds int) {
	x1, y1 := transposePair(block0, block1)
	x2, y2 := transposePair(block2, block3)
	x3, y3 := transposePair(block4, block5)

	for i := 0; i < rounds; i++ {
		rk := keys.broadcastAt(i)

		x1 = rotr64By8(x1)
		x2 = rotr64By8(x2)
		x3 = rotr64By8(x3)
		x1 = add64(x1, y1)
		x2 = add64(x2, y2)
		x3 = add64(x3, y3)
		x1 = xor128(x1, rk)
		x2 = xor128(x2, rk)
		x3 = xor128(x3, rk)

		y1 = rotl64By3(y1)
		y2 = rotl64By3(y2)
		y3 = rotl64By3(y3)
		y1 = xor128(y1, x1)
		y2 = xor128(y2, x2)
		y3 = xor128(y3, x3)
	}

	detransposePair(block0, block1, x1, y1)
	detransposePair(block2, block3, x2, y2)
	detransposePair(block4, block5, x3, y3)
}

// SpeckDecryptSix is the six-block inverse of SpeckEncryptSix.
func SpeckDecryptSix(block0, block1, block2, block3, block4, block5 *[16]byte, keys KeySource, rounds int) {
	x1, y1 := transposePair(block0, block1)
	x2, y2 := transposePair(block2, block3)
	x3, y3 := transposePair(block4, block5)

	for i := rounds - 1; i >= 0; i-- {
		rk := keys.broadcastAt(i)

		y1 = xor128(y1, x1)
		y2 = xor128(y2, x2)
		y3 = xor128(y3, x3)
		y1 = rotr64By3(y1)
		y2 = rotr64By3(y2)
		y3 = rotr64By3(y3)

		x1 = xor128(x1, rk)
		x2 = xor128(x2, rk)
		x3 = xor128(x3, rk)
		x1 = sub64(x1, y1)
		x2 = sub64(x2, y2)
		x3 = sub64(x3, y3)
		x1 = rotl64By8(x1)
		x2 = rotl64By8(x2)
		x3 = rotl64By8(x3)
	}

	detransposePair(block0, block1, x1, y1)
	detransposePair(block2, block3, x2, y2)
	detransposePair(block4, block5, x3, y3)
}
