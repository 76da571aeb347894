// Package fp implements arithmetic over the prime field F_p with
// p = 2^64 - 2^32 + 1. The prime's Solinas form lets a 128-bit product
// be reduced with shifts and single carry corrections instead of
// division, which is what makes the field attractive for NTT-friendly
// hash constructions such as Rescue.
package fp

import (
	"math/bits"
	"strconv"
)

// Modulus is the field order p = 2^64 - 2^32 + 1. It is fixed at build
// time; every Element is a canonical representative in [0, Modulus).
const Modulus uint64 = 0xFFFFFFFF00000001

// Element is a field element in canonical form. The zero value is the
// additive identity. Operations never mutate their receiver; the
// *Assign forms on *Element replace the bound value.
type Element uint64

const (
	// Zero is the additive identity.
	Zero Element = 0
	// One is the multiplicative identity.
	One Element = 1
)

// New returns v mod Modulus. This is the only constructor that reduces
// silently; FromBytes rejects out-of-range encodings instead.
func New(v uint64) Element {
	return Element(v % Modulus)
}

// Uint64 returns the canonical integer value of x.
func (x Element) Uint64() uint64 {
	return uint64(x)
}

// Add returns x + y. The operands are canonical, so the true sum is
// below 2*Modulus and a single subtraction conditioned on the carry
// restores the range.
func (x Element) Add(y Element) Element {
	sum, carry := bits.Add64(uint64(x), uint64(y), 0)
	return New(sum - carry*Modulus)
}

// Sub returns x - y, adding Modulus back once when the subtraction
// borrows.
func (x Element) Sub(y Element) Element {
	diff, borrow := bits.Sub64(uint64(x), uint64(y), 0)
	return New(diff + borrow*Modulus)
}

// Neg returns -x, mapping zero to zero.
func (x Element) Neg() Element {
	if x == Zero {
		return Zero
	}
	return Element(Modulus - uint64(x))
}

// Double returns x + x via a single doubled-overflow check. It matches
// x.Add(x) bit for bit.
func (x Element) Double() Element {
	sum, carry := bits.Add64(uint64(x), uint64(x), 0)
	return New(sum - carry*Modulus)
}

// Mul returns x * y, reducing the full 128-bit product.
func (x Element) Mul(y Element) Element {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return Reduce(hi, lo)
}

// Div returns x / y = x * y^-1. It panics if y is zero, like Inv.
func (x Element) Div(y Element) Element {
	return x.Mul(y.Inv())
}

// Square returns x * x.
func (x Element) Square() Element {
	return x.Mul(x)
}

// Cube returns x * x * x.
func (x Element) Cube() Element {
	return x.Square().Mul(x)
}

// AddAssign sets x to x + y.
func (x *Element) AddAssign(y Element) { *x = x.Add(y) }

// SubAssign sets x to x - y.
func (x *Element) SubAssign(y Element) { *x = x.Sub(y) }

// MulAssign sets x to x * y.
func (x *Element) MulAssign(y Element) { *x = x.Mul(y) }

// DivAssign sets x to x / y. It panics if y is zero.
func (x *Element) DivAssign(y Element) { *x = x.Div(y) }

// String renders the canonical value in decimal.
func (x Element) String() string {
	return strconv.FormatUint(uint64(x), 10)
}
