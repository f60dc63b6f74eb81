package core

import "math/rand"

// SplitMix64 derives an independent seed for the given stream index
// from a master seed. Workers are seeded with consecutive indices so
// that seed assignment is deterministic and collision-free regardless
// of goroutine scheduling order.
func SplitMix64(seed, index uint64) uint64 {
	z := seed + (index+1)*0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// NewRand creates a rand.Rand stream from a 64-bit seed
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewSource(int64(seed)))
}
