package simonspeck

// simonF is SIMON-128's round function: f(v) = rotl64<2>(v) ⊕ (rotl64<1>(v)
// ∧ rotl64<8>(v)). rotl64By1(v) and rotl64By8(v) are computed once and
// reused rather than recomputed for each operand that needs them.
func simonF(v vec128) vec128 {
	r1 := rotl64By1(v)
	r8 := rotl64By8(v)
	return xor128(rotl64By2(v), and128(r1, r8))
}

// SimonEncryptPair runs one block-pair through `rounds` SIMON-128 encryption
// rounds, processed two at a time with a trailing single round and a final
// (X, Y) swap when rounds is odd. keys must be a SplatSchedule of length
// rounds*2.
func SimonEncryptPair(block0, block1 *[16]byte, keys KeySource, rounds int) {
	x, y := transposePair(block0, block1)

	even := rounds &^ 1
	for i := 0; i < even-1; i += 2 {
		rk1 := keys.broadcastAt(i)
		y = xor128(xor128(y, simonF(x)), rk1)

		rk2 := keys.broadcastAt(i + 1)
		x = xor128(xor128(x, simonF(y)), rk2)
	}

	if rounds&1 == 1 {
		rk := keys.broadcastAt(rounds - 1)
		y = xor128(xor128(y, simonF(x)), rk)
		x, y = y, x
	}

	detransposePair(block0, block1, x, y)
}

// SimonDecryptPair is the exact inverse of SimonEncryptPair. keys must be a
// ScalarSchedule of length rounds.
func SimonDecryptPair(block0, block1 *[16]byte, keys KeySource, rounds int) {
	x, y := transposePair(block0, block1)

	if rounds&1 == 1 {
		x, y = y, x
		rk := keys.broadcastAt(rounds - 1)
		y = xor128(xor128(y, rk), simonF(x))
		rounds--
	}

	for i := rounds - 2; i >= 0; i -= 2 {
		rk1 := keys.broadcastAt(i + 1)
		x = xor128(xor128(x, simonF(y)), rk1)

		rk2 := keys.broadcastAt(i)
		y = xor128(xor128(y, simonF(x)), rk2)
	}

	detransposePair(block0, block1, x, y)
}

// SimonEncryptSix is the six-block (three independent pair) form of
// SimonEncryptPair.
func SimonEncryptSix(block0, block1, block2, block3, block4, block5 *[16]byte, keys KeySource, rounds int) {
	x1, y1 := transposePair(block0, block1)
	x2, y2 := transposePair(block2, block3)
	x3, y3 := transposePair(block4, block5)

	even := rounds &^ 1
	for i := 0; i < even-1; i += 2 {
		rk1 := keys.broadcastAt(i)
		y1 = xor128(xor128(y1, simonF(x1)), rk1)
		y2 = xor128(xor128(y2, simonF(x2)), rk1)
		y3 = xor128(xor128(y3, simonF(x3)), rk1)

		rk2 := keys.broadcastAt(i + 1)
		x1 = xor128(xor128(x1, simonF(y1)), rk2)
		x2 = xor128(xor128(x2, simonF(y2)), rk2)
		x3 = xor128(xor128(x3, simonF(y3)), rk2)
	}

	if rounds&1 == 1 {
		rk := keys.broadcastAt(rounds - 1)
		y1 = xor128(xor128(y1, simonF(x1)), rk)
		y2 = xor128(xor128(y2, simonF(x2)), rk)
		y3 = xor128(xor128(y3, simonF(x3)), rk)
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		x3, y3 = y3, x3
	}

	detransposePair(block0, block1, x1, y1)
	detransposePair(block2, block3, x2, y2)
	detransposePair(block4, block5, x3, y3)
}

// SimonDecryptSix is the six-block inverse of SimonEncryptSix.
func SimonDecryptSix(block0, block1, block2, block3, block4, block5 *[16]byte, keys KeySource, rounds int) {
	x1, y1 := transposePair(block0, block1)
	x2, y2 := transposePair(block2, block3)
	x3, y3 := transposePair(block4, block5)

	if rounds&1 == 1 {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
		x3, y3 = y3, x3

		rk := keys.broadcastAt(rounds - 1)
		y1 = xor128(xor128(y1, rk), simonF(x1))
		y2 = xor128(xor128(y2, rk), simonF(x2))
		y3 = xor128(xor128(y3, rk), simonF(x3))
		rounds--
	}

	for i := rounds - 2; i >= 0; i -= 2 {
		rk1 := keys.broadcastAt(i + 1)
		x1 = xor128(xor128(x1, simonF(y1)), rk1)
		x2 = xor128(xor128(x2, simonF(y2)), rk1)
		x3 = xor128(xor128(x3, simonF(y3)), rk1)

		rk2 := keys.broadcastAt(i)
		y1 = xor128(xor128(y1, simonF(x1)), rk2)
		y2 = xor128(xor128(y2, simonF(x2)), rk2)
		y3 = xor128(xor128(y3, simonF(x3)), rk2)
	}

	detransposePair(block0, block1, x1, y1)
	detransposePair(block2, block3, x2, y2)
	detransposePair(block4, block5, x3, y3)
}
