package fishhash

import (
	"runtime"
	"sync"

	"github.com/opd-ai/go-fishhash/internal/keccak"
)

const (
	// fullDatasetNumItems is the number of 128-byte items in the full
	// dataset (~4.6 GB total).
	fullDatasetNumItems = 37748717

	// fullDatasetItemParents is the number of light cache accesses mixed
	// into each dataset item.
	fullDatasetItemParents = 512

	// fnvPrime is the 32-bit FNV-1 prime.
	fnvPrime = 0x01000193
)

// fnv1 is the FNV-1 mixing step. The multiply wraps on overflow; that
// wraparound is part of the algorithm.
func fnv1(u, v uint32) uint32 {
	return (u * fnvPrime) ^ v
}

// fnv1Hash512 applies fnv1 word-wise across two 512-bit buffers.
func fnv1Hash512(u, v *hash512) hash512 {
	var r hash512
	for i := 0; i < 16; i++ {
		r.setWord32(i, fnv1(u.word32(i), v.word32(i)))
	}
	return r
}

// calculateDatasetItem derives the 1024-bit dataset item at index purely
// from the light cache. It is the function the full dataset memoizes:
// deterministic, so recomputing an item always reproduces the stored value.
func calculateDatasetItem(cache []hash512, index uint32) hash1024 {
	seed0 := index * 2
	seed1 := seed0 + 1

	mix0 := cache[seed0%lightCacheNumItems]
	mix1 := cache[seed1%lightCacheNumItems]

	mix0.setWord32(0, mix0.word32(0)^seed0)
	mix1.setWord32(0, mix1.word32(0)^seed1)

	mix0 = keccak.Sum512(mix0[:])
	mix1 = keccak.Sum512(mix1[:])

	for j := uint32(0); j < fullDatasetItemParents; j++ {
		t0 := fnv1(seed0^j, mix0.word32(int(j%16)))
		t1 := fnv1(seed1^j, mix1.word32(int(j%16)))
		mix0 = fnv1Hash512(&mix0, &cache[t0%lightCacheNumItems])
		mix1 = fnv1Hash512(&mix1, &cache[t1%lightCacheNumItems])
	}

	mix0 = keccak.Sum512(mix0[:])
	mix1 = keccak.Sum512(mix1[:])

	return hash1024FromPair(&mix0, &mix1)
}

// prebuildDataset fills every item of the dataset from the light cache
// using the given number of workers. Each worker owns a disjoint index
// range, so the fill needs no locking; afterwards the dataset is read-only
// for lookups and safe to share across goroutines.
func prebuildDataset(dataset []hash1024, cache []hash512, workers int) {
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	itemsPerWorker := len(dataset) / workers

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * itemsPerWorker
		end := start + itemsPerWorker
		if w == workers-1 {
			end = len(dataset)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				dataset[i] = calculateDatasetItem(cache, uint32(i))
			}
		}(start, end)
	}
	wg.Wait()
}
