package f14

import (
	"encoding/binary"
	"math/bits"
	"sync"

	"golang.org/x/sys/cpu"
)

// kernel is a capability chosen once per process and cached on each table, dispatching
// dynamically-selected SIMD kernels through a function-pointer table rather
// than re-detecting per call.
//
// All four operations are scoped to exactly one chunk (chunkSize bytes).
// matchTag/matchFree/matchEmpty return a 16-bit bitmask, bit i set iff
// chunk-local byte i matched; bits.TrailingZeros16 walks the set bits in
// ascending order, replacing the padded-index-list shape the base contract
// describes (find_all_tags's 0xFF-terminated list) with the bitmask idiom
// this domain's swiss-table style code already uses.
type kernel struct {
	name string

	// matchTag returns the bitmask of chunk-local bytes equal to tag.
	matchTag func(chunk []byte, tag byte) uint16

	// matchFree returns the bitmask of chunk-local bytes that are Empty
	// or Tombstone (high bit set).
	matchFree func(chunk []byte) uint16

	// matchEmpty returns the bitmask of chunk-local bytes that are
	// exactly Empty (not Tombstone).
	matchEmpty func(chunk []byte) uint16

	// fill writes value into every byte of ctrls.
	fill func(ctrls []byte, value byte)
}

var (
	kernelOnce   sync.Once
	activeKernel kernel
)

// selectKernel probes CPU capability once per process and caches the
// result. Both kernels this package ships are portable Go (no assembly):
// swarKernel is chosen when the cpu.X86/cpu.ARM64 probe reports SSE2 or
// ASIMD, and scalarKernel otherwise. The choice affects speed only —
// scalarKernel and swarKernel must and do agree on every input, verified
// in kernel_test.go.
func selectKernel() kernel {
	kernelOnce.Do(func() {
		if cpu.X86.HasSSE2 || cpu.ARM64.HasASIMD {
			activeKernel = swarKernel()
		} else {
			activeKernel = scalarKernel()
		}
	})

	return activeKernel
}

// scalarKernel is the byte-at-a-time reference kernel. It is always
// correct and serves as the oracle other kernels are checked against.
func scalarKernel() kernel {
	return kernel{
		name: "scalar",
		matchTag: func(chunk []byte, tag byte) uint16 {
			var mask uint16

			for i := 0; i < chunkSize; i++ {
				if chunk[i] == tag {
					mask |= 1 << uint(i)
				}
			}

			return mask
		},
		matchFree: func(chunk []byte) uint16 {
			var mask uint16

			for i := 0; i < chunkSize; i++ {
				if chunk[i]&0x80 != 0 {
					mask |= 1 << uint(i)
				}
			}

			return mask
		},
		matchEmpty: func(chunk []byte) uint16 {
			var mask uint16

			for i := 0; i < chunkSize; i++ {
				if chunk[i] == ctrlEmpty {
					mask |= 1 << uint(i)
				}
			}

			return mask
		},
		fill: func(ctrls []byte, value byte) {
			for i := range ctrls {
				ctrls[i] = value
			}
		},
	}
}

// swarKernel is a "SIMD within a register" kernel: it loads a 16-byte
// chunk as two uint64 words and tests all 8 bytes of each word at once
// using the classic byte-wise zero-test trick, instead of a per-byte Go
// loop. This is the same bit-trick family this domain's swiss-table style
// reference code uses (trailing-zero walks over a match bitmask) — ported
// here from a 32-bit/8-lane mask to a 16-bit/16-lane one split across two
// words.
func swarKernel() kernel {
	return kernel{
		name: "swar",
		matchTag: func(chunk []byte, tag byte) uint16 {
			needle := broadcastByte(tag)
			lo := binary.LittleEndian.Uint64(chunk[0:8])
			hi := binary.LittleEndian.Uint64(chunk[8:16])

			return packHighBits(hasZeroByte(lo^needle), hasZeroByte(hi^needle))
		},
		matchFree: func(chunk []byte) uint16 {
			lo := binary.LittleEndian.Uint64(chunk[0:8])
			hi := binary.LittleEndian.Uint64(chunk[8:16])

			// Empty and Tombstone are exactly the bytes with the high bit
			// set; no equality test is needed, unlike matchTag/matchEmpty.
			return packHighBits(lo&highBitsWord, hi&highBitsWord)
		},
		matchEmpty: func(chunk []byte) uint16 {
			needle := broadcastByte(ctrlEmpty)
			lo := binary.LittleEndian.Uint64(chunk[0:8])
			hi := binary.LittleEndian.Uint64(chunk[8:16])

			return packHighBits(hasZeroByte(lo^needle), hasZeroByte(hi^needle))
		},
		fill: func(ctrls []byte, value byte) {
			for i := range ctrls {
				ctrls[i] = value
			}
		},
	}
}

const (
	loBitsWord   uint64 = 0x0101010101010101
	highBitsWord uint64 = 0x8080808080808080
)

// broadcastByte replicates b into all 8 bytes of a uint64.
func broadcastByte(b byte) uint64 {
	return loBitsWord * uint64(b)
}

// hasZeroByte returns a word with the high bit of byte i set iff byte i of
// v is zero, and all other bits unspecified-but-ignorable (callers only
// ever read it through packHighBits, which only looks at the high bit of
// each byte).
func hasZeroByte(v uint64) uint64 {
	const lowSevenBits uint64 = 0x7F7F7F7F7F7F7F7F

	// Adding 0x7F to each byte's low 7 bits sets that byte's high bit iff
	// the low bits are nonzero, and never carries into the next byte, so
	// a zero byte cannot make its neighbor look zero too.
	return ^(((v & lowSevenBits) + lowSevenBits) | v | lowSevenBits)
}

// packHighBits compresses the high bit of each byte in lo and hi into a
// 16-bit mask: bit i sources from byte i of lo for i<8, byte i-8 of hi for
// i>=8. This is the portable-Go equivalent of a vector "move mask"
// instruction.
func packHighBits(lo, hi uint64) uint16 {
	var out uint16

	for i := 0; i < 8; i++ {
		if lo&(0x80<<uint(8*i)) != 0 {
			out |= 1 << uint(i)
		}

		if hi&(0x80<<uint(8*i)) != 0 {
			out |= 1 << uint(8+i)
		}
	}

	return out
}

// firstSetBit returns the index of the lowest set bit in mask and true, or
// (0, false) if mask is zero. Built on bits.TrailingZeros16 the same way
// this domain's swiss-table style reference code walks a match bitmask
// with bits.TrailingZeros32.
func firstSetBit(mask uint16) (int, bool) {
	if mask == 0 {
		return 0, false
	}

	return bits.TrailingZeros16(mask), true
}
