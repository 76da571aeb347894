package fp

import (
	"encoding/binary"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// RandomElement draws a uniform field element from prng by rejection:
// 8-byte blocks are decoded little-endian and redrawn while they fall
// outside [0, Modulus). The acceptance probability per draw is
// 1 - 2^-32, so the loop terminates after one iteration in practice.
// Sampling is deterministic under a PRNG from utils.NewKeyedPRNG.
func RandomElement(prng utils.PRNG) (Element, error) {
	var buf [ElementSize]byte
	for {
		if _, err := prng.Read(buf[:]); err != nil {
			return Zero, err
		}
		v := binary.LittleEndian.Uint64(buf[:])
		if v < Modulus {
			return Element(v), nil
		}
	}
}

// RandomVector draws n independent uniform field elements from prng.
func RandomVector(prng utils.PRNG, n int) ([]Element, error) {
	out := make([]Element, n)
	for i := range out {
		e, err := RandomElement(prng)
		if err != nil {
			return nil, err
		}
		out[i] = e
	}
	return out, nil
}
