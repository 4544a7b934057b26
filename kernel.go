package fishhash

import "github.com/zeebo/blake3"

// numDatasetAccesses is the number of mixing rounds per hash; each round
// fetches three dataset items.
const numDatasetAccesses = 32

// kernel derives a 256-bit value from a 512-bit seed by 32 rounds of
// pseudo-random dataset accesses and mixing. This loop is what makes
// FishHash memory-hard: the three fetch indexes depend on the evolving mix,
// forcing random access across the multi-gigabyte item space.
func kernel(ctx *Context, seed *hash512) hash256 {
	mix := hash1024FromPair(seed, seed)

	for i := 0; i < numDatasetAccesses; i++ {
		p0 := mix.word32(0) % fullDatasetNumItems
		p1 := mix.word32(4) % fullDatasetNumItems
		p2 := mix.word32(8) % fullDatasetNumItems

		fetch0 := ctx.lookup(p0)
		fetch1 := ctx.lookup(p1)
		fetch2 := ctx.lookup(p2)

		for j := 0; j < 32; j++ {
			fetch1.setWord32(j, fnv1(mix.word32(j), fetch1.word32(j)))
			fetch2.setWord32(j, mix.word32(j)^fetch2.word32(j))
		}

		// 64-bit multiply and add both wrap; the overflow is part of the
		// mixing, not a bug.
		for j := 0; j < 16; j++ {
			mix.setWord64(j, fetch0.word64(j)*fetch1.word64(j)+fetch2.word64(j))
		}
	}

	// Collapse 32 words to 8 with a 4:1 fnv1 reduction.
	var out hash256
	for i := 0; i < 32; i += 4 {
		h1 := fnv1(mix.word32(i), mix.word32(i+1))
		h2 := fnv1(h1, mix.word32(i+2))
		h3 := fnv1(h2, mix.word32(i+3))
		out.setWord32(i/4, h3)
	}
	return out
}

// Hash computes the FishHash digest of the header bytes using ctx.
// Synchronization is the caller's problem at this level; use Hasher for a
// concurrency-safe surface.
func Hash(ctx *Context, header []byte) [32]byte {
	var out hash256
	hashInto(&out, ctx, header)
	return out
}

// hashInto computes the full FishHash digest of header into out:
// BLAKE3 XOF of the header gives the 512-bit kernel seed, and BLAKE3-256
// of seed||kernel output compresses to the final digest.
func hashInto(out *hash256, ctx *Context, header []byte) {
	var seed hash512
	h := blake3.New()
	h.Write(header)
	h.Digest().Read(seed[:])

	mixHash := kernel(ctx, &seed)

	var finalData [96]byte
	copy(finalData[:64], seed[:])
	copy(finalData[64:], mixHash[:])

	*out = blake3.Sum256(finalData[:])
}
