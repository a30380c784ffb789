package mazegen

// Park–Miller multiplicative congruential generator constants.
// The modulus is the Mersenne prime 2^31-1; zero is not a valid state.
const (
	lcgModulus    int64 = 2147483647
	lcgMultiplier int64 = 16807
)

// Rand is a deterministic pseudo-random stream seeded from an integer.
// Every component of a generation session draws from the same Rand, so a
// seed fully determines the produced maze. The generator is the minimal
// standard Park–Miller LCG: state' = state * 16807 mod (2^31 - 1).
type Rand struct {
	state int64
}

// NewRand creates a generator from the given seed. Zero and negative
// seeds are undefined for a multiplicative LCG and are normalized to a
// derived valid state deterministically, so every int64 yields a usable,
// reproducible stream.
func NewRand(seed int64) *Rand {
	return &Rand{state: normalizeSeed(seed)}
}

// normalizeSeed maps an arbitrary integer onto [1, 2^31-2].
func normalizeSeed(seed int64) int64 {
	seed %= lcgModulus
	if seed < 0 {
		seed += lcgModulus
	}
	if seed == 0 {
		seed = 1
	}
	return seed
}

// Float64 advances the stream and returns the next value in [0, 1).
func (r *Rand) Float64() float64 {
	r.state = (r.state * lcgMultiplier) % lcgModulus
	return float64(r.state-1) / float64(lcgModulus-1)
}

// Intn returns a value in [0, n) drawn from the stream.
// n must be positive; non-positive n yields 0 without advancing the stream.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Float64() * float64(n))
}

// InRange returns a value in [low, high) drawn from the stream.
func (r *Rand) InRange(low, high float64) float64 {
	if high <= low {
		return low
	}
	return low + r.Float64()*(high-low)
}
