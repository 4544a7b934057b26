package keccak

import "math/bits"

// Lane rotation offsets indexed by source lane, and the pi step destination
// for each source lane.
var (
	rhoOffsets = [25]int{
		0, 1, 62, 28, 27,
		36, 44, 6, 55, 20,
		3, 10, 43, 25, 39,
		41, 45, 15, 21, 8,
		18, 2, 61, 56, 14,
	}
	piDest = [25]int{
		0, 10, 20, 5, 15,
		16, 1, 11, 21, 6,
		7, 17, 2, 12, 22,
		23, 8, 18, 3, 13,
		14, 24, 9, 19, 4,
	}
)

// f1600Generic is the portable reference permutation. It is compiled on
// every target so the cross-implementation test can always compare it
// against the selected f1600.
func f1600Generic(a *[25]uint64) {
	var b [5]uint64
	var c [25]uint64

	for round := 0; round < 24; round++ {
		// theta
		for x := 0; x < 5; x++ {
			b[x] = a[x] ^ a[x+5] ^ a[x+10] ^ a[x+15] ^ a[x+20]
		}
		for x := 0; x < 5; x++ {
			d := b[(x+4)%5] ^ bits.RotateLeft64(b[(x+1)%5], 1)
			for y := 0; y < 25; y += 5 {
				a[y+x] ^= d
			}
		}

		// rho and pi
		for i := 0; i < 25; i++ {
			c[piDest[i]] = bits.RotateLeft64(a[i], rhoOffsets[i])
		}

		// chi
		for y := 0; y < 25; y += 5 {
			for x := 0; x < 5; x++ {
				a[y+x] = c[y+x] ^ (^c[y+(x+1)%5] & c[y+(x+2)%5])
			}
		}

		// iota
		a[0] ^= rc[round]
	}
}
