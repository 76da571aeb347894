// Package rescue derives the public round constants of the
// Rescue-XLIX permutation over the fp Goldilocks field. The permutation
// itself lives with its consumers; this package covers the parameter
// set and the deterministic seed-to-constants expansion.
package rescue

import (
	"fmt"

	"golang.org/x/crypto/sha3"
)

// XOF models the extendable-output function that expands a seed into
// the byte stream sliced into per-element chunks.
type XOF interface {
	Expand(seed []byte, outLen int) []byte
}

// Shake256XOF is the SHAKE-256 backed implementation of XOF, the
// function the Rescue-XLIX paper specifies for constant generation.
type Shake256XOF struct{}

// Expand absorbs seed and squeezes outLen bytes.
func (Shake256XOF) Expand(seed []byte, outLen int) []byte {
	h := sha3.NewShake256()
	if _, err := h.Write(seed); err != nil {
		panic(fmt.Errorf("rescue: shake256 write seed: %w", err))
	}
	out := make([]byte, outLen)
	if _, err := h.Read(out); err != nil {
		panic(fmt.Errorf("rescue: shake256 read output: %w", err))
	}
	return out
}
