package fp

import (
	"math/big"
	"math/rand"
	"testing"
)

func reduceBig(hi, lo uint64) uint64 {
	x := new(big.Int).SetUint64(hi)
	x.Lsh(x, 64)
	x.Or(x, new(big.Int).SetUint64(lo))
	return x.Mod(x, new(big.Int).SetUint64(Modulus)).Uint64()
}

func TestReduceLowWordOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 1000; i++ {
		v := rng.Uint64()
		if got := Reduce(0, v); got != New(v) {
			t.Fatalf("Reduce(0,%d) = %v want %v", v, got, New(v))
		}
	}
}

func TestReduceEdges(t *testing.T) {
	cases := []struct{ hi, lo uint64 }{
		{0, 0},
		{0, Modulus - 1},
		{0, Modulus},
		{0, ^uint64(0)},
		{1, 0},                   // 2^64
		{0xFFFFFFFF, 0},          // mid saturated, top zero
		{0xFFFFFFFF00000000, 0},  // top saturated, mid zero
		{0xFFFFFFFF00000000, 1},  // borrow in the low-minus-top step
		{^uint64(0), ^uint64(0)}, // all bits set
	}
	for _, c := range cases {
		want := reduceBig(c.hi, c.lo)
		if got := Reduce(c.hi, c.lo); uint64(got) != want {
			t.Fatalf("Reduce(%#x,%#x) = %d want %d", c.hi, c.lo, got, want)
		}
	}
}

func TestReduceMatchesBigInt(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 2000; i++ {
		hi, lo := rng.Uint64(), rng.Uint64()
		want := reduceBig(hi, lo)
		got := Reduce(hi, lo)
		if uint64(got) != want {
			t.Fatalf("Reduce(%#x,%#x) = %d want %d", hi, lo, got, want)
		}
		if uint64(got) >= Modulus {
			t.Fatalf("Reduce(%#x,%#x) = %d not canonical", hi, lo, got)
		}
	}
}

func TestMulMatchesBigInt(t *testing.T) {
	p := new(big.Int).SetUint64(Modulus)
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 2000; i++ {
		a := New(rng.Uint64())
		b := New(rng.Uint64())
		prod := new(big.Int).SetUint64(uint64(a))
		prod.Mul(prod, new(big.Int).SetUint64(uint64(b)))
		want := prod.Mod(prod, p).Uint64()
		if got := a.Mul(b); uint64(got) != want {
			t.Fatalf("%v * %v = %v want %d", a, b, got, want)
		}
	}
	// largest possible product, (p-1)^2
	m := New(Modulus - 1)
	sq := new(big.Int).SetUint64(uint64(m))
	sq.Mul(sq, sq)
	want := sq.Mod(sq, p).Uint64()
	if got := m.Mul(m); uint64(got) != want {
		t.Fatalf("(p-1)^2 = %v want %d", got, want)
	}
}
