package fp

import "math/bits"

// Reduce maps the 128-bit value hi*2^64 + lo to its canonical field
// representative. It is exported on its own, independent of Mul, so
// that consumers deriving elements from raw byte streams (for example
// the Rescue round-constant generator) can reduce accumulated integers
// directly.
//
// Write x = lo + 2^64*mid + 2^96*top, where mid is the low 32 bits of
// hi and top the high 32 bits. From p = 2^64 - 2^32 + 1:
//
//	2^64 ≡ 2^32 - 1 (mod p)
//	2^96 ≡ -1       (mod p)
//
// so x ≡ lo - top + (2^32 - 1)*mid. Both corrections below fire at
// most once: top < 2^32 bounds the borrow step, and the final sum is
// below 2^65 so one subtraction of Modulus clears the carry.
func Reduce(hi, lo uint64) Element {
	mid := hi & 0xFFFFFFFF
	top := hi >> 32

	diff, borrow := bits.Sub64(lo, top, 0)
	diff += borrow * Modulus

	// (2^32 - 1)*mid never overflows 64 bits since mid < 2^32.
	product := (mid << 32) - mid

	res, carry := bits.Add64(diff, product, 0)
	return New(res - carry*Modulus)
}
