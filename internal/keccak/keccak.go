// Package keccak implements the Keccak-f[1600] permutation and the legacy
// Keccak-512 hash (original 0x01 padding, predating SHA-3 domain separation)
// used by the FishHash light cache and dataset derivation.
//
// The permutation is exposed directly because the cSHAKE-based header hash
// variants operate on a raw 25-word state: they start from a precomputed
// initial state, fold header fields into individual words and run a single
// permutation. golang.org/x/crypto/sha3 exposes neither its permutation nor
// its state, so it serves only as the test oracle here.
package keccak

import "encoding/binary"

// rate of Keccak-512 in bytes (1600 - 2*512 bits).
const rate512 = 72

// F1600 applies the Keccak-f[1600] permutation to the state in place.
// Which implementation backs it is a build-time decision (see the purego
// build tag); all implementations are bit-identical.
func F1600(a *[25]uint64) {
	f1600(a)
}

// Sum512 computes the legacy Keccak-512 digest of data.
func Sum512(data []byte) [64]byte {
	var st [25]uint64
	for len(data) >= rate512 {
		for i := 0; i < rate512/8; i++ {
			st[i] ^= binary.LittleEndian.Uint64(data[i*8:])
		}
		f1600(&st)
		data = data[rate512:]
	}

	var block [rate512]byte
	copy(block[:], data)
	block[len(data)] ^= 0x01
	block[rate512-1] ^= 0x80
	for i := 0; i < rate512/8; i++ {
		st[i] ^= binary.LittleEndian.Uint64(block[i*8:])
	}
	f1600(&st)

	var out [64]byte
	for i := 0; i < 8; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], st[i])
	}
	return out
}

// rc holds the round constants for the iota step.
var rc = [24]uint64{
	0x0000000000000001, 0x0000000000008082, 0x800000000000808a,
	0x8000000080008000, 0x000000000000808b, 0x0000000080000001,
	0x8000000080008081, 0x8000000000008009, 0x000000000000008a,
	0x0000000000000088, 0x0000000080008009, 0x000000008000000a,
	0x000000008000808b, 0x800000000000008b, 0x8000000000008089,
	0x8000000000008003, 0x8000000000008002, 0x8000000000000080,
	0x000000000000800a, 0x800000008000000a, 0x8000000080008081,
	0x8000000000008080, 0x0000000080000001, 0x8000000080008008,
}
