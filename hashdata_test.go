package fishhash

import (
	"bytes"
	"testing"
)

func TestHash512WordAccess(t *testing.T) {
	var h hash512
	for i := range h {
		h[i] = byte(i)
	}

	// Words are little-endian views of the byte array.
	if got, want := h.word32(0), uint32(0x03020100); got != want {
		t.Errorf("word32(0) = %#x, want %#x", got, want)
	}
	if got, want := h.word32(15), uint32(0x3f3e3d3c); got != want {
		t.Errorf("word32(15) = %#x, want %#x", got, want)
	}

	h.setWord32(3, 0xdeadbeef)
	if got := h.word32(3); got != 0xdeadbeef {
		t.Errorf("word32(3) after setWord32 = %#x, want 0xdeadbeef", got)
	}
	if h[12] != 0xef || h[15] != 0xde {
		t.Errorf("setWord32 wrote %x, want little-endian byte order", h[12:16])
	}
}

func TestHash1024WordAccess(t *testing.T) {
	var h hash1024
	h.setWord64(15, 0x1122334455667788)
	if got := h.word64(15); got != 0x1122334455667788 {
		t.Errorf("word64(15) = %#x, want 0x1122334455667788", got)
	}
	if h[120] != 0x88 || h[127] != 0x11 {
		t.Errorf("setWord64 wrote %x, want little-endian byte order", h[120:])
	}

	// 32-bit and 64-bit views alias the same bytes.
	if got, want := h.word32(30), uint32(0x55667788); got != want {
		t.Errorf("word32(30) = %#x, want %#x", got, want)
	}
}

func TestHash512Xor(t *testing.T) {
	var a, b hash512
	for i := range a {
		a[i] = byte(i)
		b[i] = 0xff
	}

	x := a.xor(&b)
	for i := range x {
		if x[i] != byte(i)^0xff {
			t.Fatalf("xor byte %d = %#x, want %#x", i, x[i], byte(i)^0xff)
		}
	}

	// Inputs must be untouched.
	if b[0] != 0xff || a[1] != 1 {
		t.Error("xor modified its inputs")
	}
}

func TestHash1024FromPair(t *testing.T) {
	var first, second hash512
	for i := range first {
		first[i] = 0xaa
		second[i] = 0xbb
	}

	h := hash1024FromPair(&first, &second)
	if !bytes.Equal(h[:64], first[:]) {
		t.Error("first half does not match first input")
	}
	if !bytes.Equal(h[64:], second[:]) {
		t.Error("second half does not match second input")
	}
}
