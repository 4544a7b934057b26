// Package fishhash provides a pure-Go implementation of the FishHash
// proof-of-work algorithm, an Ethash-style memory-hard hash used by
// FishHash-based blockchains.
//
// FishHash derives a large pseudo-random dataset from a fixed seed. In
// light mode only the ~72 MB light cache is kept and dataset items are
// recomputed on the fly (cheap to set up, used for verification). In fast
// mode a ~4.6 GB dataset memoizes the items (expensive memory, used for
// mining many nonces).
//
// Example usage:
//
//	config := fishhash.Config{Mode: fishhash.LightMode}
//	hasher, err := fishhash.New(config)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer hasher.Close()
//
//	digest := hasher.Hash(headerBytes)
package fishhash

import (
	"fmt"
	"sync"
)

// Mode represents the FishHash operational mode.
type Mode int

const (
	// LightMode keeps only the light cache and recomputes dataset items
	// on every lookup. Suitable for verification.
	LightMode Mode = iota

	// FastMode allocates the full ~4.6 GB dataset and memoizes dataset
	// items across calls. Recommended for mining.
	FastMode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case LightMode:
		return "LightMode"
	case FastMode:
		return "FastMode"
	default:
		return fmt.Sprintf("Mode(%d)", m)
	}
}

// Config specifies the configuration for a FishHash hasher.
type Config struct {
	// Mode determines memory usage and performance characteristics.
	Mode Mode
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Mode != LightMode && c.Mode != FastMode {
		return fmt.Errorf("fishhash: invalid mode: %v", c.Mode)
	}
	return nil
}

// Hasher computes FishHash digests. It is safe for concurrent use.
//
// In fast mode, concurrent callers would race on the dataset's lazy
// check-zero-then-fill lookups, so Hash serializes them behind a mutex. A
// lost race would only cause redundant recomputation (fills are
// deterministic), but a torn 128-byte store could be read half-written, so
// the lock is required for correctness. Call PrebuildDataset to pay the
// full fill cost once up front; from then on lookups only read shared
// memory and hashing runs fully parallel. Light mode never writes shared
// state and is parallel from the start.
type Hasher struct {
	config   Config
	ctx      *Context
	prebuilt bool
	closed   bool
	mu       sync.RWMutex // protects closed and prebuilt
	fillMu   sync.Mutex   // serializes lazy dataset fills in fast mode
}

// New creates a new FishHash hasher with the specified configuration.
// Building the light cache takes a few seconds; in fast mode the dataset
// allocation (~4.6 GB) happens here too, so memory exhaustion surfaces
// before any hashing begins.
func New(config Config) (*Hasher, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Hasher{
		config: config,
		ctx:    NewContext(config.Mode == FastMode),
	}, nil
}

// Hash computes the FishHash digest of the header bytes.
// This method is safe for concurrent use by multiple goroutines.
func (h *Hasher) Hash(header []byte) [32]byte {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		panic("fishhash: Hash called on closed hasher")
	}

	needLock := h.config.Mode == FastMode && !h.prebuilt
	if needLock {
		h.fillMu.Lock()
		defer h.fillMu.Unlock()
	}

	var out hash256
	hashInto(&out, h.ctx, header)
	return out
}

// PrebuildDataset fills the full dataset up front using the given number
// of workers (<= 0 means one per CPU) and lifts the fast-mode hashing
// lock. It is a no-op in light mode.
func (h *Hasher) PrebuildDataset(workers int) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed || h.prebuilt || h.config.Mode != FastMode {
		return
	}

	h.ctx.PrebuildDataset(workers)
	h.prebuilt = true
}

// Close releases the hasher's references to its cache and dataset so the
// memory can be reclaimed. After Close, the hasher must not be used.
func (h *Hasher) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}

	h.closed = true
	h.ctx = nil
	return nil
}

// IsReady returns true if the hasher is ready to compute hashes.
func (h *Hasher) IsReady() bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return !h.closed
}
