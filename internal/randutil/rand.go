package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// A zero seed means "no preference" and is replaced with the current time.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(Seeds(seed)))
}

// Seed resolves a user supplied seed, replacing zero with a time based one.
// The result is what callers should log so a session can be replayed.
func Seed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

// Seeds derives the two 64-bit PCG seeds from a single int64
func Seeds(seed int64) (uint64, uint64) {
	u := uint64(Seed(seed))
	return mix(u), mix(u + goldenRatio64)
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
