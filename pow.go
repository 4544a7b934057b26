package fishhash

import (
	"encoding/binary"

	"github.com/zeebo/blake3"

	"github.com/opd-ai/go-fishhash/internal/keccak"
)

// The simpler keyed header-hash variants that accompany FishHash. Which
// variant applies to a given block is network policy decided by the
// caller; all of them share the build-once, finalize-per-nonce shape. The
// FishHash variant itself is reached through Hasher.Hash with an
// externally assembled header.

// PendingHash is a header hash that has absorbed everything except the
// nonce. FinalizeWithNonce may be called many times on the same pending
// state with different nonces.
type PendingHash interface {
	FinalizeWithNonce(nonce uint64) [32]byte
}

// powInitialState is the sponge state of cSHAKE256("ProofOfWorkHash")
// after absorbing the domain block, with the message padding pre-folded
// in: word 10 carries the 0x04 pad byte (the message is always exactly 80
// bytes) and word 16 the final 0x80 rate byte. Finalizing therefore needs
// only one permutation.
var powInitialState = [25]uint64{
	0x113cff0da1f6d83d, 0x29bf8855b7027e3c, 0x1e5f2e720efb44d2,
	0x1ba5a4a3f59869a0, 0x7b2fafca875e2d65, 0x4aef61d629dce246,
	0x183a981ead415b10, 0x776bf60c789bc29c, 0xf8ebf13388663140,
	0x2e651c3c43285ff0, 0x0f96070540f14a0a, 0x44e367875b299152,
	0xec70f1a425b13715, 0xe6c85d8f82e9da89, 0xb21a601f85b4b223,
	0x3485549064a36a46, 0x0f06dd1c7a2f851a, 0xc1a2021d563bb142,
	0xba1de5e4451668e4, 0xd102574105095f8d, 0x89ca4e849bcecf4a,
	0x48b09427a8742edb, 0xb1fcce9ce78b5272, 0x5d1129cf82afa5bc,
	0x02b97c786f824383,
}

// heavyInitialState is the sponge state of cSHAKE256("HeavyHash") with the
// padding for a 32-byte message pre-folded into words 4 and 16.
var heavyInitialState = [25]uint64{
	0x3ad74c52b2248509, 0x79629b0e2f9f4216, 0x7a14ff4816c7f8ee,
	0x11a75f4c80056498, 0xe720e0df44eeceda, 0x72c7d82e14f34069,
	0xc100ff2a938935ba, 0x5e219040250fc462, 0x8039f9a60dcf6a48,
	0xa0bcaa9f792a3d0c, 0xf431c05dd0a9a226, 0xd31f4cc354c18c3f,
	0x6c6b7d01a769cc3d, 0x2ec65bd3562493e4, 0x4ef74b3a99cdb044,
	0x774c86835434f2b0, 0x07e961b036bc9416, 0x7e8f1db17765cc07,
	0xea8fdb80bac46d39, 0xb992f2d37b34ca58, 0xc776c5048481b957,
	0x47c39f675112c22e, 0x92bb399db5290c0a, 0x549ae0312f9fc615,
	0x1619327d10b9da35,
}

// PowHash is the cSHAKE256("ProofOfWorkHash") header hash. The absorbed
// message is prePowHash || timestamp || 32 zero bytes || nonce, all
// little-endian, exactly one sponge block.
type PowHash struct {
	state [25]uint64
}

// NewPowHash absorbs the pre-PoW header hash and timestamp.
func NewPowHash(prePowHash [32]byte, timestamp uint64) PowHash {
	p := PowHash{state: powInitialState}
	for i := 0; i < 4; i++ {
		p.state[i] ^= binary.LittleEndian.Uint64(prePowHash[i*8:])
	}
	p.state[4] ^= timestamp
	return p
}

// FinalizeWithNonce folds the nonce in and squeezes the digest. The
// receiver is copied, so the pending state can finalize many nonces.
func (p PowHash) FinalizeWithNonce(nonce uint64) [32]byte {
	p.state[9] ^= nonce
	keccak.F1600(&p.state)

	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], p.state[i])
	}
	return out
}

// HeavyHash computes the one-shot cSHAKE256("HeavyHash") digest of a
// 32-byte value.
func HeavyHash(in [32]byte) [32]byte {
	state := heavyInitialState
	for i := 0; i < 4; i++ {
		state[i] ^= binary.LittleEndian.Uint64(in[i*8:])
	}
	keccak.F1600(&state)

	var out [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(out[i*8:], state[i])
	}
	return out
}

// HeavyPowHash chains the cSHAKE header hash through HeavyHash, giving the
// heavy variant the same finalize-per-nonce shape as the others.
type HeavyPowHash struct {
	pow PowHash
}

// NewHeavyPowHash absorbs the pre-PoW header hash and timestamp.
func NewHeavyPowHash(prePowHash [32]byte, timestamp uint64) HeavyPowHash {
	return HeavyPowHash{pow: NewPowHash(prePowHash, timestamp)}
}

// FinalizeWithNonce finalizes the inner header hash and applies HeavyHash.
func (h HeavyPowHash) FinalizeWithNonce(nonce uint64) [32]byte {
	return HeavyHash(h.pow.FinalizeWithNonce(nonce))
}

// Blake3PowHash is the BLAKE3 header hash variant: BLAKE3-256 of
// prePowHash || timestamp || 32 zero bytes || nonce, little-endian.
type Blake3PowHash struct {
	// block holds the absorbed prefix; the nonce lands in the last 8
	// bytes at finalize time.
	block [80]byte
}

// NewBlake3PowHash absorbs the pre-PoW header hash, timestamp and zero
// padding block.
func NewBlake3PowHash(prePowHash [32]byte, timestamp uint64) Blake3PowHash {
	var b Blake3PowHash
	copy(b.block[:32], prePowHash[:])
	binary.LittleEndian.PutUint64(b.block[32:], timestamp)
	// bytes 40..72 stay zero
	return b
}

// FinalizeWithNonce fills in the nonce and returns the digest. The
// receiver is copied, so the pending state can finalize many nonces.
func (b Blake3PowHash) FinalizeWithNonce(nonce uint64) [32]byte {
	binary.LittleEndian.PutUint64(b.block[72:], nonce)
	return blake3.Sum256(b.block[:])
}
