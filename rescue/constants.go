package rescue

import (
	"encoding/binary"
	"fmt"

	"github.com/0xKanekiKen/rescue-prime/fp"
)

// bytesPerElement is ceil(bits(Modulus)/8) + 1. The extra byte keeps
// the bias of the reduction below 2^-8 per element.
const bytesPerElement = 9

// RoundConstants derives the two constant tables of a Rescue-XLIX
// instance, one injected after the forward S-box layer of each round
// and one after the inverse layer. Both tables are Rounds x Width.
//
// The seed string "Rescue - XLIX (p,w,c,level" follows the reference
// generator byte for byte, unclosed parenthesis included; changing it
// would change every published constant. The XOF stream is sliced into
// 9-byte chunks, each read as a little-endian integer and mapped into
// the field through the standalone fp.Reduce. A nil xof selects
// Shake256XOF.
func RoundConstants(p *Params, xof XOF) (ark1, ark2 [][]fp.Element, err error) {
	if err := p.Validate(); err != nil {
		return nil, nil, err
	}
	if xof == nil {
		xof = Shake256XOF{}
	}

	numBytes := bytesPerElement * p.Width * p.Rounds * 2
	seed := fmt.Sprintf("Rescue - XLIX (%d,%d,%d,%d", fp.Modulus, p.Width, p.Capacity(), p.SecurityLevel)
	stream := xof.Expand([]byte(seed), numBytes)

	flat := make([]fp.Element, 2*p.Rounds*p.Width)
	for i := range flat {
		chunk := stream[i*bytesPerElement : (i+1)*bytesPerElement]
		// chunk as a little-endian 128-bit integer: the 9th byte is
		// the low byte of the high limb.
		lo := binary.LittleEndian.Uint64(chunk[:8])
		hi := uint64(chunk[8])
		flat[i] = fp.Reduce(hi, lo)
	}

	ark1 = splitRounds(flat[:p.Rounds*p.Width], p.Width)
	ark2 = splitRounds(flat[p.Rounds*p.Width:], p.Width)
	return ark1, ark2, nil
}

func splitRounds(flat []fp.Element, width int) [][]fp.Element {
	rounds := len(flat) / width
	out := make([][]fp.Element, rounds)
	for r := 0; r < rounds; r++ {
		out[r] = flat[r*width : (r+1)*width : (r+1)*width]
	}
	return out
}
