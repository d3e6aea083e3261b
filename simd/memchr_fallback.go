package simd

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present in haystack.
//
// On every platform this function uses a pure Go implementation with the
// SWAR (SIMD Within A Register) technique: memchrWide (16 bytes per
// iteration) when wideLanes is set, memchrGeneric (8 bytes per iteration)
// otherwise.
//
// Performance characteristics (pure Go SWAR):
//   - Small inputs (< 8 bytes): byte-by-byte comparison
//   - Medium/large inputs: 2-5x faster than naive byte-by-byte
//
// See memchrGeneric and memchrWide for implementation details.
func Memchr(haystack []byte, needle byte) int {
	if wideLanes {
		return memchrWide(haystack, needle)
	}
	return memchrGeneric(haystack, needle)
}
