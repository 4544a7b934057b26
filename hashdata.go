package fishhash

import "encoding/binary"

// Fixed-width byte buffers with little-endian word views. All FishHash
// state lives in these three sizes; nothing below this file touches raw
// byte offsets. The sizes are fixed at the type level, so an out-of-range
// word index is a programming error that fails fast via the bounds check.

// hash256 is a 256-bit buffer (the digest size).
type hash256 [32]byte

// hash512 is a 512-bit buffer (light cache item size).
type hash512 [64]byte

// hash1024 is a 1024-bit buffer (dataset item size).
type hash1024 [128]byte

func (h *hash256) setWord32(i int, v uint32) {
	binary.LittleEndian.PutUint32(h[i*4:], v)
}

func (h *hash512) word32(i int) uint32 {
	return binary.LittleEndian.Uint32(h[i*4:])
}

func (h *hash512) setWord32(i int, v uint32) {
	binary.LittleEndian.PutUint32(h[i*4:], v)
}

// xor returns the element-wise XOR of h and other.
func (h *hash512) xor(other *hash512) hash512 {
	var out hash512
	for i := range out {
		out[i] = h[i] ^ other[i]
	}
	return out
}

func (h *hash1024) word32(i int) uint32 {
	return binary.LittleEndian.Uint32(h[i*4:])
}

func (h *hash1024) setWord32(i int, v uint32) {
	binary.LittleEndian.PutUint32(h[i*4:], v)
}

func (h *hash1024) word64(i int) uint64 {
	return binary.LittleEndian.Uint64(h[i*8:])
}

func (h *hash1024) setWord64(i int, v uint64) {
	binary.LittleEndian.PutUint64(h[i*8:], v)
}

// hash1024FromPair concatenates two 512-bit halves. This is the only way a
// hash1024 is ever built.
func hash1024FromPair(first, second *hash512) hash1024 {
	var out hash1024
	copy(out[:64], first[:])
	copy(out[64:], second[:])
	return out
}
