// Package randutil builds the injectable random sources used for shuffling
// and equity sampling.
package randutil

import (
	rand "math/rand/v2"
	"time"
)

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// The helper centralises how we derive the two 64-bit seeds required by rand/v2
// so that all call sites get reproducible sequences.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// NewOrTime returns New(seed), or a time-seeded generator when seed is zero.
func NewOrTime(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return New(seed)
}

// Child derives an independent generator from parent, advancing parent once.
// Workers that need their own source draw it sequentially from the parent so
// that the parent's seed still determines every child.
func Child(parent *rand.Rand) *rand.Rand {
	s := parent.Uint64()
	return rand.New(rand.NewPCG(mix(s), mix(s+goldenRatio64)))
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}
