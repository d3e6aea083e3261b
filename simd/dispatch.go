package simd

import (
	"encoding/binary"
	"math/bits"

	"golang.org/x/sys/cpu"
)

// wideLanes reports whether the CPU has wide enough SIMD registers that
// reading two uint64 lanes per loop iteration (instead of one) pays for
// itself. There is no actual vector instruction behind this check — both
// paths below are plain Go — it only changes how many bytes memchrGeneric's
// fallback loop consumes per iteration, trading a little more per-iteration
// work for fewer iterations on the CPUs most likely to have a wide memory
// pipeline to back it up.
var wideLanes = cpu.X86.HasAVX2 || cpu.ARM64.HasASIMD

// memchrWide is memchrGeneric's 16-byte-per-iteration variant: two
// independent uint64 SWAR lanes computed back to back so the compiler can
// interleave their dependency chains instead of stalling on one 8-byte
// chunk at a time.
func memchrWide(haystack []byte, needle byte) int {
	haystackLen := len(haystack)
	if haystackLen < 16 {
		return memchrGeneric(haystack, needle)
	}

	needleMask := uint64(needle) * 0x0101010101010101
	const lo8 = 0x0101010101010101
	const hi8 = 0x8080808080808080

	idx := 0
	for idx+16 <= haystackLen {
		chunk0 := binary.LittleEndian.Uint64(haystack[idx:])
		chunk1 := binary.LittleEndian.Uint64(haystack[idx+8:])

		xor0 := chunk0 ^ needleMask
		xor1 := chunk1 ^ needleMask
		hasZero0 := (xor0 - lo8) & ^xor0 & hi8
		hasZero1 := (xor1 - lo8) & ^xor1 & hi8

		if hasZero0 != 0 {
			return idx + bits.TrailingZeros64(hasZero0)/8
		}
		if hasZero1 != 0 {
			return idx + 8 + bits.TrailingZeros64(hasZero1)/8
		}

		idx += 16
	}

	if idx < haystackLen {
		if rest := memchrGeneric(haystack[idx:], needle); rest != -1 {
			return idx + rest
		}
	}
	return -1
}
