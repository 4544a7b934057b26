//go:build !purego

package keccak

import "math/bits"

// f1600 is the default permutation: one fully inlined round body with the
// state hoisted into locals so the compiler keeps lanes in registers and
// elides bounds checks. Must stay bit-identical to f1600Generic, which the
// cross-check test enforces.
func f1600(a *[25]uint64) {
	a0 := a[0]
	a1 := a[1]
	a2 := a[2]
	a3 := a[3]
	a4 := a[4]
	a5 := a[5]
	a6 := a[6]
	a7 := a[7]
	a8 := a[8]
	a9 := a[9]
	a10 := a[10]
	a11 := a[11]
	a12 := a[12]
	a13 := a[13]
	a14 := a[14]
	a15 := a[15]
	a16 := a[16]
	a17 := a[17]
	a18 := a[18]
	a19 := a[19]
	a20 := a[20]
	a21 := a[21]
	a22 := a[22]
	a23 := a[23]
	a24 := a[24]

	for r := 0; r < 24; r++ {
		// theta
		b0 := a0 ^ a5 ^ a10 ^ a15 ^ a20
		b1 := a1 ^ a6 ^ a11 ^ a16 ^ a21
		b2 := a2 ^ a7 ^ a12 ^ a17 ^ a22
		b3 := a3 ^ a8 ^ a13 ^ a18 ^ a23
		b4 := a4 ^ a9 ^ a14 ^ a19 ^ a24
		d0 := b4 ^ bits.RotateLeft64(b1, 1)
		d1 := b0 ^ bits.RotateLeft64(b2, 1)
		d2 := b1 ^ bits.RotateLeft64(b3, 1)
		d3 := b2 ^ bits.RotateLeft64(b4, 1)
		d4 := b3 ^ bits.RotateLeft64(b0, 1)
		a0 ^= d0
		a1 ^= d1
		a2 ^= d2
		a3 ^= d3
		a4 ^= d4
		a5 ^= d0
		a6 ^= d1
		a7 ^= d2
		a8 ^= d3
		a9 ^= d4
		a10 ^= d0
		a11 ^= d1
		a12 ^= d2
		a13 ^= d3
		a14 ^= d4
		a15 ^= d0
		a16 ^= d1
		a17 ^= d2
		a18 ^= d3
		a19 ^= d4
		a20 ^= d0
		a21 ^= d1
		a22 ^= d2
		a23 ^= d3
		a24 ^= d4
		// rho and pi
		c0 := a0
		c10 := bits.RotateLeft64(a1, 1)
		c20 := bits.RotateLeft64(a2, 62)
		c5 := bits.RotateLeft64(a3, 28)
		c15 := bits.RotateLeft64(a4, 27)
		c16 := bits.RotateLeft64(a5, 36)
		c1 := bits.RotateLeft64(a6, 44)
		c11 := bits.RotateLeft64(a7, 6)
		c21 := bits.RotateLeft64(a8, 55)
		c6 := bits.RotateLeft64(a9, 20)
		c7 := bits.RotateLeft64(a10, 3)
		c17 := bits.RotateLeft64(a11, 10)
		c2 := bits.RotateLeft64(a12, 43)
		c12 := bits.RotateLeft64(a13, 25)
		c22 := bits.RotateLeft64(a14, 39)
		c23 := bits.RotateLeft64(a15, 41)
		c8 := bits.RotateLeft64(a16, 45)
		c18 := bits.RotateLeft64(a17, 15)
		c3 := bits.RotateLeft64(a18, 21)
		c13 := bits.RotateLeft64(a19, 8)
		c14 := bits.RotateLeft64(a20, 18)
		c24 := bits.RotateLeft64(a21, 2)
		c9 := bits.RotateLeft64(a22, 61)
		c19 := bits.RotateLeft64(a23, 56)
		c4 := bits.RotateLeft64(a24, 14)
		// chi
		a0 = c0 ^ (^c1 & c2)
		a1 = c1 ^ (^c2 & c3)
		a2 = c2 ^ (^c3 & c4)
		a3 = c3 ^ (^c4 & c0)
		a4 = c4 ^ (^c0 & c1)
		a5 = c5 ^ (^c6 & c7)
		a6 = c6 ^ (^c7 & c8)
		a7 = c7 ^ (^c8 & c9)
		a8 = c8 ^ (^c9 & c5)
		a9 = c9 ^ (^c5 & c6)
		a10 = c10 ^ (^c11 & c12)
		a11 = c11 ^ (^c12 & c13)
		a12 = c12 ^ (^c13 & c14)
		a13 = c13 ^ (^c14 & c10)
		a14 = c14 ^ (^c10 & c11)
		a15 = c15 ^ (^c16 & c17)
		a16 = c16 ^ (^c17 & c18)
		a17 = c17 ^ (^c18 & c19)
		a18 = c18 ^ (^c19 & c15)
		a19 = c19 ^ (^c15 & c16)
		a20 = c20 ^ (^c21 & c22)
		a21 = c21 ^ (^c22 & c23)
		a22 = c22 ^ (^c23 & c24)
		a23 = c23 ^ (^c24 & c20)
		a24 = c24 ^ (^c20 & c21)
		// iota
		a0 ^= rc[r]
	}

	a[0] = a0
	a[1] = a1
	a[2] = a2
	a[3] = a3
	a[4] = a4
	a[5] = a5
	a[6] = a6
	a[7] = a7
	a[8] = a8
	a[9] = a9
	a[10] = a10
	a[11] = a11
	a[12] = a12
	a[13] = a13
	a[14] = a14
	a[15] = a15
	a[16] = a16
	a[17] = a17
	a[18] = a18
	a[19] = a19
	a[20] = a20
	a[21] = a21
	a[22] = a22
	a[23] = a23
	a[24] = a24
}
