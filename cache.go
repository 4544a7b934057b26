package fishhash

import "github.com/opd-ai/go-fishhash/internal/keccak"

const (
	// lightCacheNumItems is the number of 64-byte items in the light cache
	// (~72 MB total).
	lightCacheNumItems = 1179641

	// lightCacheRounds is the number of full randomization passes applied
	// after the initial chained fill.
	lightCacheRounds = 3
)

// lightCacheSeed is the fixed 256-bit seed the whole light cache derives
// from. FishHash uses a single permanent seed; there are no epochs.
var lightCacheSeed = [32]byte{
	0xeb, 0x01, 0x63, 0xae, 0xf2, 0xab, 0x1c, 0x5a,
	0x66, 0x31, 0x0c, 0x1c, 0x14, 0xd6, 0x0f, 0x42,
	0x55, 0xa9, 0xb3, 0x9b, 0x0e, 0xdf, 0x26, 0x53,
	0x98, 0x44, 0xf1, 0x17, 0xad, 0x67, 0x21, 0x19,
}

// buildLightCache fills cache deterministically from lightCacheSeed.
// Item 0 is Keccak-512 of the seed, every following item is Keccak-512 of
// its predecessor, then lightCacheRounds in-place passes mix distant items
// together.
//
// The passes are strictly sequential: each item is rewritten using values
// already updated earlier in the same pass. Parallelizing a pass would
// break this read-after-write ordering and produce a different cache.
func buildLightCache(cache []hash512) {
	item := hash512(keccak.Sum512(lightCacheSeed[:]))
	cache[0] = item
	for i := 1; i < lightCacheNumItems; i++ {
		item = keccak.Sum512(item[:])
		cache[i] = item
	}

	for round := 0; round < lightCacheRounds; round++ {
		for i := uint32(0); i < lightCacheNumItems; i++ {
			// First parent: low word of the item itself.
			v := cache[i].word32(0) % lightCacheNumItems
			// Second parent: the previous index, wrapping at 0.
			w := (lightCacheNumItems + i - 1) % lightCacheNumItems

			x := cache[v].xor(&cache[w])
			cache[i] = keccak.Sum512(x[:])
		}
	}
}
