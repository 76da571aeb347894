package bench

import (
	"testing"

	"github.com/0xKanekiKen/rescue-prime/fp"
)

var sink fp.Element

func BenchmarkAdd(b *testing.B) {
	x := fp.New(0x123456789ABCDEF0)
	y := fp.New(fp.Modulus - 12345)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		r = x.Add(y)
	}
	sink = r
}

func BenchmarkMul(b *testing.B) {
	x := fp.New(0x123456789ABCDEF0)
	y := fp.New(fp.Modulus - 12345)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		r = x.Mul(y)
	}
	sink = r
}

func BenchmarkSquare(b *testing.B) {
	x := fp.New(0x123456789ABCDEF0)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		r = x.Square()
	}
	sink = r
}

func BenchmarkReduce(b *testing.B) {
	hi := uint64(0xFFFFFFFE00000001)
	lo := uint64(0x123456789ABCDEF0)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		r = fp.Reduce(hi, lo)
	}
	sink = r
}

func BenchmarkExp(b *testing.B) {
	x := fp.New(0x123456789ABCDEF0)
	pow := fp.New(fp.Modulus - 2)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		r = x.Exp(pow)
	}
	sink = r
}

func BenchmarkInv(b *testing.B) {
	x := fp.New(0x123456789ABCDEF0)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		r = x.Inv()
	}
	sink = r
}

func BenchmarkBytesRoundTrip(b *testing.B) {
	x := fp.New(fp.Modulus - 12345)
	var r fp.Element
	for i := 0; i < b.N; i++ {
		buf := x.Bytes()
		var err error
		r, err = fp.FromBytes(buf[:])
		if err != nil {
			b.Fatalf("FromBytes: %v", err)
		}
	}
	sink = r
}
