package format

// Align returns n rounded up to the next multiple of alignment, which must be
// a power of two.
//
// Example:
//
//	Align(1, 16)  = 16
//	Align(16, 16) = 16
//	Align(17, 16) = 32
func Align(n, alignment int) int {
	return (n + alignment - 1) & ^(alignment - 1)
}

// Align16 returns n aligned up to the next 16-byte boundary, the alignment
// used between regenerated string table regions.
func Align16(n int) int {
	return Align(n, BlockAlignment)
}
