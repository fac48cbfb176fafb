package per

const (
	// MAX_CONSTRAINED_LENGTH is the bound below which a length determinant is a
	// constrained whole number. ITU-T X.691 11.9.3.3 / 11.9.4.1
	MAX_CONSTRAINED_LENGTH = 65536 // 64K

	// FRAGMENT_SIZE is the unit of the fragmentation procedure. ITU-T X.691 11.9.3.8
	FRAGMENT_SIZE = 16384 // 16K

	// NORMALLY_SMALL_LIMIT is the largest value held in the 6-bit form of a
	// normally small non-negative whole number. ITU-T X.691 11.6.1
	NORMALLY_SMALL_LIMIT = 63

	// MAX_SHORT_STRING_BITS is the largest bit-field that is never octet-aligned
	// for fixed-size strings. ITU-T X.691 16.9, 17.6, 30.5.6
	MAX_SHORT_STRING_BITS = 16
)
