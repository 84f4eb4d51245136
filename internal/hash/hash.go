// Package hash provides the deterministic 64-bit hash used for key
// placement. Every node in a deployment must agree on this function.
package hash

import (
	"github.com/spaolacci/murmur3"
)

// ringSeed is fixed for the lifetime of a deployment. Changing it remaps
// every key.
const ringSeed = 0xDEADBEEF

// Sum64 hashes arbitrary bytes with the MurmurHash3 x64 variant.
func Sum64(data []byte) uint64 {
	return murmur3.Sum64WithSeed(data, ringSeed)
}

// Sum64String hashes a string without the caller converting it first.
func Sum64String(s string) uint64 {
	return Sum64([]byte(s))
}
