package simonspeck128simd

import (
	"encoding/binary"

	"github.com/arxcore/simonspeck128simd/internal/mem"
	"github.com/arxcore/simonspeck128simd/internal/simonspeck"
)

// Flags selects the buffer-handling behavior AdvancedProcessBlocks128 applies
// around each kernel call. The zero value processes in straight through to
// out with the two-block kernel only, no counter handling, forward
// iteration, and no XOR unless xorIn is non-nil (then it is XORed into the
// kernel output).
type Flags uint32

const (
	// FlagXORBeforeKernel XORs xorIn into the kernel's input before running
	// it. Whenever xorIn is non-nil and this flag is clear, the XOR is
	// applied to the kernel's output instead.
	FlagXORBeforeKernel Flags = 1 << iota
	// FlagAllowSixBlockKernel permits the six-block kernel; when clear, only
	// the two-block (and single-block-via-two-block) path runs.
	FlagAllowSixBlockKernel
	// FlagCounterInput treats the first 16 bytes of in as a big-endian
	// counter: the driver copies the pre-increment value into the kernel
	// input for each block and increments the low 8 bytes of the counter by
	// one afterward.
	FlagCounterInput
	// FlagDontAdvancePointers rewinds the in/out cursor after every block,
	// so every block is read from and written to the same 16-byte window.
	// The secondary xor stream always advances regardless of this flag.
	FlagDontAdvancePointers
	// FlagReverseDirection processes the length-byte window starting at its
	// last block and working towards the first, the pattern CBC-decrypt's
	// chained XOR needs.
	FlagReverseDirection
)

// PairKernel is the shape of a two-block cipher kernel: SpeckEncryptPair,
// SpeckDecryptPair, SimonEncryptPair, or SimonDecryptPair.
type PairKernel func(block0, block1 *[16]byte, keys simonspeck.KeySource, rounds int)

// SixKernel is the shape of a six-block cipher kernel: SpeckEncryptSix,
// SpeckDecryptSix, SimonEncryptSix, or SimonDecryptSix.
type SixKernel func(block0, block1, block2, block3, block4, block5 *[16]byte, keys simonspeck.KeySource, rounds int)

const blockSize = 16

// AdvancedProcessBlocks128 is the shared buffer-level driver behind every
// exported entry point in blocks.go. It consumes whole 16-byte blocks from
// the first length bytes of in (or, with FlagReverseDirection, from that
// same length-byte window read back to front), dispatches six blocks at a
// time to six while at least six blocks and FlagAllowSixBlockKernel remain,
// then two at a time, then a final single block run through the two-block
// kernel with a throwaway second lane, and returns the count of trailing
// bytes it declined to process (length not a multiple of 16).
//
// in, xorIn (if non-nil), and out must each have at least length bytes,
// except that with FlagCounterInput only the first 16 bytes of in are read.
// out may alias in for in-place operation.
func AdvancedProcessBlocks128(pair PairKernel, six SixKernel, keys simonspeck.KeySource, rounds int, in, xorIn, out []byte, length int, flags Flags) (bytesRemaining int) {
	reverse := flags&FlagReverseDirection != 0
	advance := flags&FlagDontAdvancePointers == 0
	total := length

	pos := func(processed, j int) int {
		idx := processed + j
		if reverse {
			return total - (idx+1)*blockSize
		}
		return idx * blockSize
	}

	// inOutPos is pos for the in/out cursors, which stay on a single 16-byte
	// window when FlagDontAdvancePointers is set.
	inOutPos := func(processed, j int) int {
		if !advance {
			return pos(processed, 0)
		}
		return pos(processed, j)
	}

	var inProcessed, outProcessed, xorProcessed int

	loadBlock := func(j int) [16]byte {
		var b [16]byte
		if flags&FlagCounterInput != 0 {
			copy(b[:], in[:blockSize])
			v := binary.BigEndian.Uint64(in[8:blockSize])
			binary.BigEndian.PutUint64(in[8:blockSize], v+1)
			return b
		}
		p := inOutPos(inProcessed, j)
		copy(b[:], in[p:p+blockSize])
		return b
	}

	xorBefore := func(b *[16]byte, j int) {
		if xorIn != nil && flags&FlagXORBeforeKernel != 0 {
			p := pos(xorProcessed, j)
			mem.XOR(b[:], b[:], xorIn[p:p+blockSize])
		}
	}

	xorAfter := func(b *[16]byte, j int) {
		if xorIn != nil && flags&FlagXORBeforeKernel == 0 {
			p := pos(xorProcessed, j)
			mem.XOR(b[:], b[:], xorIn[p:p+blockSize])
		}
	}

	storeBlock := func(j int, b [16]byte) {
		p := inOutPos(outProcessed, j)
		copy(out[p:p+blockSize], b[:])
	}

	advance6 := func() {
		if advance {
			inProcessed += 6
			outProcessed += 6
		}
		xorProcessed += 6
	}
	advance2 := func() {
		if advance {
			inProcessed += 2
			outProcessed += 2
		}
		xorProcessed += 2
	}
	advance1 := func() {
		if advance {
			inProcessed++
			outProcessed++
		}
		xorProcessed++
	}

	for length >= 6*blockSize && flags&FlagAllowSixBlockKernel != 0 {
		var blocks [6][16]byte
		for j := range blocks {
			blocks[j] = loadBlock(j)
		}
		for j := range blocks {
			xorBefore(&blocks[j], j)
		}

		six(&blocks[0], &blocks[1], &blocks[2], &blocks[3], &blocks[4], &blocks[5], keys, rounds)

		for j := range blocks {
			xorAfter(&blocks[j], j)
			storeBlock(j, blocks[j])
		}

		advance6()
		length -= 6 * blockSize
	}

	for length >= 2*blockSize {
		b0 := loadBlock(0)
		b1 := loadBlock(1)

		xorBefore(&b0, 0)
		xorBefore(&b1, 1)

		pair(&b0, &b1, keys, rounds)

		xorAfter(&b0, 0)
		xorAfter(&b1, 1)

		storeBlock(0, b0)
		storeBlock(1, b1)

		advance2()
		length -= 2 * blockSize
	}

	if length >= blockSize {
		b0 := loadBlock(0)
		b1 := b0 // unused second lane; only block 0's output is stored

		xorBefore(&b0, 0)

		pair(&b0, &b1, keys, rounds)

		xorAfter(&b0, 0)
		storeBlock(0, b0)

		advance1()
		length -= blockSize
	}

	return length
}
