package utils

import (
	"math/rand/v2"
	"time"
)

// NewRNG returns a PCG source seeded with seed, or with the clock when seed is 0
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewPCG(uint64(seed), 0))
}
