package format

// Alignment utilities for the FDT structure block. Tokens, node names and
// property values are padded so every token tag lands on a 4-byte boundary.

// Align4 returns n aligned up to the next 4-byte boundary.
//
// Example:
//
//	Align4(1) = 4
//	Align4(4) = 4
//	Align4(5) = 8
func Align4(n int) int {
	return (n + TokenAlignment - 1) &^ (TokenAlignment - 1)
}

// AlignTo returns n aligned up to the next multiple of align.
// align must be a power of two.
func AlignTo(n, align int) int {
	return (n + align - 1) &^ (align - 1)
}

// Aligned4 reports whether n sits on a 4-byte boundary.
func Aligned4(n int) bool {
	return n&(TokenAlignment-1) == 0
}
