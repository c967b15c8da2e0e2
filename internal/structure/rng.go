package structure

// RNG is a deterministic pseudo-random number generator (xorshift64).
type RNG struct {
	state uint64
}

// NewRNG creates a new RNG with the given seed.
func NewRNG(seed uint64) *RNG {
	if seed == 0 {
		seed = 88172645463325252 // Default seed
	}
	return &RNG{state: seed}
}

// Next returns the next random uint64.
func (r *RNG) Next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float returns a random float64 in [0, 1).
func (r *RNG) Float() float64 {
	return float64(r.Next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// RoundSeed derives the generator seed for an infinite round. The salt lets a
// run vary its layouts while staying reproducible.
func RoundSeed(salt int64, round int) uint64 {
	z := uint64(salt) + uint64(round)*0x9E3779B97F4A7C15 //#nosec G115 -- bit mixing only
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return z ^ (z >> 31)
}
