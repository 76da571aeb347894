package rescue

import "fmt"

// Params holds the public parameters of a Rescue-XLIX instance over
// the fp field. Width is the sponge state size in field elements, Rate
// the number of elements absorbed per permutation call, and Rounds the
// number of rounds N; each round uses two constant injections.
type Params struct {
	Rate          int
	Width         int
	Rounds        int
	SecurityLevel int // target security in bits
}

// Capacity returns the number of state elements untouched by absorb.
func (p *Params) Capacity() int {
	return p.Width - p.Rate
}

// Validate performs basic consistency checks on the parameter set.
func (p *Params) Validate() error {
	if p == nil {
		return fmt.Errorf("nil params")
	}
	if p.Width <= 0 {
		return fmt.Errorf("width must be >0")
	}
	if p.Rate <= 0 || p.Rate >= p.Width {
		return fmt.Errorf("rate (%d) must be in 1..width-1 (%d)", p.Rate, p.Width-1)
	}
	if p.Rounds <= 0 {
		return fmt.Errorf("rounds must be >0")
	}
	if p.SecurityLevel <= 0 {
		return fmt.Errorf("security level must be >0")
	}
	return nil
}
