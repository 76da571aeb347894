package fp

// Exp returns x raised to the canonical integer value of pow, by
// square-and-multiply over the exponent bits, least significant first.
// Edge cases: pow == 0 yields One (including 0^0), and a zero base
// with a nonzero exponent yields Zero.
//
// The loop length and multiplication count depend on the exponent's
// bit length and Hamming weight, so Exp is not constant-time. Inv uses
// a fixed addition chain instead for exactly that reason.
func (x Element) Exp(pow Element) Element {
	if pow == Zero {
		return One
	}
	if x == Zero {
		return Zero
	}

	base := x
	res := One
	if pow&1 == 1 {
		res = base
	}
	for e := uint64(pow) >> 1; e > 0; e >>= 1 {
		base = base.Square()
		if e&1 == 1 {
			res = res.Mul(base)
		}
	}
	return res
}

// Inv returns x^-1 = x^(Modulus-2) by Fermat's little theorem, using a
// fixed chain of 72 squarings and multiplications. The exponent
//
//	0b1111111111111111111111111111111011111111111111111111111111111111
//
// is all ones except a single zero at bit 32, so the chain assembles
// runs of ones of length 2, 3, 6, 12, 24, 31 and 63 by repeated
// squaring blocks. The operation count is data-independent, unlike Exp.
//
// The inverse of zero is undefined; calling Inv on Zero is a contract
// violation and panics.
func (x Element) Inv() Element {
	if x == Zero {
		panic("fp: inverse of zero element")
	}

	t2 := x.Cube()              // x^0b11
	t3 := t2.Square().Mul(x)    // x^0b111
	t6 := expAcc(t3, 3, t3)     // x^(6 ones)
	t12 := expAcc(t6, 6, t6)    // x^(12 ones)
	t24 := expAcc(t12, 12, t12) // x^(24 ones)
	t30 := expAcc(t24, 6, t6)   // x^(30 ones)
	t31 := t30.Square().Mul(x)  // x^(31 ones)
	t63 := expAcc(t31, 32, t31) // x^(31 ones, one zero, 31 ones)
	return t63.Square().Mul(x)  // x^(31 ones, one zero, 32 ones) = x^(Modulus-2)
}

// expAcc squares base n times and multiplies the result by tail.
func expAcc(base Element, n int, tail Element) Element {
	res := base
	for i := 0; i < n; i++ {
		res = res.Square()
	}
	return res.Mul(tail)
}
