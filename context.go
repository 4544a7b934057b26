package fishhash

// Context owns the memory backing FishHash: the immutable light cache and,
// for fast mode, the lazily filled full dataset.
//
// A Context is not safe for concurrent use on its own. The light cache is
// read-only after construction and may be shared freely, but lookup's
// check-zero-then-fill on the full dataset is an unsynchronized
// read-modify-write. Use Hasher for concurrent hashing, or call
// PrebuildDataset first, after which the dataset is never written again.
type Context struct {
	lightCache  []hash512
	fullDataset []hash1024
}

// NewContext builds the light cache and, if fullDataset is true, allocates
// the zero-initialized full dataset (~4.6 GB, filled lazily by lookups).
// Building the light cache costs a few seconds of CPU; contexts are meant
// to be created once and reused for many hashes.
func NewContext(fullDataset bool) *Context {
	ctx := &Context{
		lightCache: make([]hash512, lightCacheNumItems),
	}
	buildLightCache(ctx.lightCache)

	if fullDataset {
		ctx.fullDataset = make([]hash1024, fullDatasetNumItems)
	}
	return ctx
}

// PrebuildDataset fills the entire full dataset up front using the given
// number of workers (<= 0 means one per CPU). It is a no-op for light-mode
// contexts. After it returns, lookups never write, so the Context may be
// shared across goroutines without locking.
func (ctx *Context) PrebuildDataset(workers int) {
	if ctx.fullDataset == nil {
		return
	}
	prebuildDataset(ctx.fullDataset, ctx.lightCache, workers)
}

// lookup returns the dataset item at index. Without a full dataset the
// item is recomputed from the light cache on every call; with one, an
// all-zero first word marks an unfilled slot and triggers a fill.
//
// A legitimately derived item whose first 64-bit word is zero is
// indistinguishable from an unfilled slot and gets recomputed on every
// lookup. That is inherited from the reference algorithm: recomputation is
// deterministic, so the only cost is redundant work.
func (ctx *Context) lookup(index uint32) hash1024 {
	if ctx.fullDataset == nil {
		return calculateDatasetItem(ctx.lightCache, index)
	}

	item := &ctx.fullDataset[index]
	if item.word64(0) == 0 {
		*item = calculateDatasetItem(ctx.lightCache, index)
	}
	return *item
}
