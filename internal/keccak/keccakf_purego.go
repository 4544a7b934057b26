//go:build purego

package keccak

// Portable build: the permutation is the generic implementation.
func f1600(a *[25]uint64) {
	f1600Generic(a)
}
