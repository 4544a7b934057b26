package fishhash

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"math/bits"
	"testing"
)

func TestConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "light mode",
			config:  Config{Mode: LightMode},
			wantErr: false,
		},
		{
			name:    "fast mode",
			config:  Config{Mode: FastMode},
			wantErr: false,
		},
		{
			name:    "unknown mode",
			config:  Config{Mode: Mode(42)},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestModeString(t *testing.T) {
	if LightMode.String() != "LightMode" {
		t.Errorf("LightMode.String() = %q", LightMode.String())
	}
	if FastMode.String() != "FastMode" {
		t.Errorf("FastMode.String() = %q", FastMode.String())
	}
	if Mode(99).String() != "Mode(99)" {
		t.Errorf("Mode(99).String() = %q", Mode(99).String())
	}
}

// testHasher wraps the shared light context in a Hasher so facade tests do
// not pay for another cache build.
func testHasher(t *testing.T) *Hasher {
	t.Helper()
	return &Hasher{
		config: Config{Mode: LightMode},
		ctx:    lightTestContext(t),
	}
}

// Reference digests computed with an independent implementation of the
// whole pipeline (seed XOF, kernel, final compression).
func TestHashVectors(t *testing.T) {
	// The 80-byte header layout used by the header-assembly step:
	// prePowHash || timestamp || 32 zero bytes || nonce.
	var header [80]byte
	for i := 0; i < 32; i++ {
		header[i] = 0x2a
	}
	binary.LittleEndian.PutUint64(header[32:], 5435345234)
	binary.LittleEndian.PutUint64(header[72:], 432432432)

	tests := []struct {
		name   string
		header []byte
		want   string
	}{
		{
			name:   "assembled header",
			header: header[:],
			want:   "a3ae52bd40f9912f212d25821d160c3031fa72053676dd836e35a5f2bd62218a",
		},
		{
			name:   "raw 32-byte pre-image",
			header: bytes.Repeat([]byte{0x2a}, 32),
			want:   "55c003a5d309698be665624b82db0a26f7f5bc7ef5561b450f3894d126d8dde6",
		},
	}

	h := testHasher(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, _ := hex.DecodeString(tt.want)
			got := h.Hash(tt.header)
			if !bytes.Equal(got[:], want) {
				t.Errorf("Hash = %x, want %x", got, want)
			}
		})
	}
}

func TestKernelVector(t *testing.T) {
	ctx := lightTestContext(t)

	var seed hash512
	for i := range seed {
		seed[i] = byte(i)
	}

	want, _ := hex.DecodeString(
		"b846e72b4808118692a08d80f35c41d511ab17f19c86f89a0152fb36b17ea400")
	got := kernel(ctx, &seed)
	if !bytes.Equal(got[:], want) {
		t.Errorf("kernel = %x, want %x", got, want)
	}
}

func TestHashDeterminism(t *testing.T) {
	h := testHasher(t)
	header := []byte("fishhash determinism header")

	first := h.Hash(header)
	second := h.Hash(header)
	if first != second {
		t.Errorf("same input hashed to %x and %x", first, second)
	}

	// The bare context entry point and the facade agree.
	if direct := Hash(h.ctx, header); direct != first {
		t.Errorf("Hash(ctx) = %x, Hasher.Hash = %x", direct, first)
	}
}

// TestAvalanche flips single input bits and checks that roughly half of
// the 256 output bits change. Loose statistical bounds to stay flake-free.
func TestAvalanche(t *testing.T) {
	h := testHasher(t)

	base := bytes.Repeat([]byte{0x2a}, 32)
	baseDigest := h.Hash(base)

	// Independently computed digest for the one-bit flip of the first byte.
	wantFlip, _ := hex.DecodeString(
		"5aa20aa978a180fa640fc04e57327e00458ff3e7d4d0f39a4911e2bce4295372")

	for _, bit := range []int{0, 77, 255} {
		flipped := append([]byte(nil), base...)
		flipped[bit/8] ^= 1 << (bit % 8)

		digest := h.Hash(flipped)
		if bit == 0 && !bytes.Equal(digest[:], wantFlip) {
			t.Errorf("bit-flip digest = %x, want %x", digest, wantFlip)
		}

		diff := 0
		for i := range digest {
			diff += bits.OnesCount8(digest[i] ^ baseDigest[i])
		}
		if diff < 64 || diff > 192 {
			t.Errorf("bit %d: %d of 256 output bits changed, want roughly half", bit, diff)
		}
	}
}

func TestHasherClose(t *testing.T) {
	h := &Hasher{config: Config{Mode: LightMode}, ctx: lightTestContext(t)}

	if !h.IsReady() {
		t.Error("new hasher not ready")
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() = %v", err)
	}
	if h.IsReady() {
		t.Error("closed hasher still ready")
	}
	if err := h.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}

	defer func() {
		if recover() == nil {
			t.Error("Hash on closed hasher did not panic")
		}
	}()
	h.Hash([]byte("input"))
}

func TestHashConcurrent(t *testing.T) {
	h := testHasher(t)
	header := []byte("concurrent header")
	want := h.Hash(header)

	done := make(chan [32]byte, 8)
	for i := 0; i < 8; i++ {
		go func() { done <- h.Hash(header) }()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Fatalf("concurrent hash = %x, want %x", got, want)
		}
	}
}

func BenchmarkHashLight(b *testing.B) {
	h := &Hasher{config: Config{Mode: LightMode}, ctx: lightTestContext(b)}
	header := bytes.Repeat([]byte{0x2a}, 32)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h.Hash(header)
	}
}
