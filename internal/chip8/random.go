package chip8

import (
	"math/rand"
	"time"
)

// Random produces masked random bytes for the RND instruction.
// No determinism is guaranteed across runs.
type Random struct {
	rng *rand.Rand
}

// NewRandom returns a time-seeded random byte source.
func NewRandom() *Random {
	return &Random{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Next returns a uniformly distributed byte ANDed with the given mask.
func (r *Random) Next(mask byte) byte {
	return byte(r.rng.Intn(256)) & mask
}
