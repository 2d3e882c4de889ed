// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

import (
	"encoding/binary"
	"math/bits"
)

// Additive constants of rounds 2 and 3.
const (
	md4K2 = 0x5a827999
	md4K3 = 0x6ed9eba1
)

// Message word order of rounds 2 and 3; round 1 takes the words in order.
var (
	md4X2 = [16]uint8{0, 4, 8, 12, 1, 5, 9, 13, 2, 6, 10, 14, 3, 7, 11, 15}
	md4X3 = [16]uint8{0, 8, 4, 12, 2, 10, 6, 14, 1, 9, 5, 13, 3, 11, 7, 15}
)

// Per-step rotations, repeating every four steps.
var (
	md4Shift1 = [4]int{3, 7, 11, 19}
	md4Shift2 = [4]int{3, 5, 9, 13}
	md4Shift3 = [4]int{3, 9, 11, 15}
)

// selection
func md4F(x, y, z uint32) uint32 { return z ^ (x & (y ^ z)) }

// majority
func md4G(x, y, z uint32) uint32 { return (x & y) | (z & (x | y)) }

// parity
func md4H(x, y, z uint32) uint32 { return x ^ y ^ z }

// blockMD4 processes every whole 64 byte block in p into s.
func blockMD4(s *[4]uint32, p []byte) {
	a, b, c, d := s[0], s[1], s[2], s[3]

	var x [16]uint32
	for len(p) >= MD4BlockSize {
		aa, bb, cc, dd := a, b, c, d

		for i := range x {
			x[i] = binary.LittleEndian.Uint32(p[4*i:])
		}

		// Round 1.
		for i := uint(0); i < 16; i++ {
			xi := x[i]
			r := md4Shift1[i%4]
			a = bits.RotateLeft32(a+md4F(b, c, d)+xi, r)
			a, b, c, d = d, a, b, c
		}

		// Round 2.
		for i := uint(0); i < 16; i++ {
			xi := x[md4X2[i]]
			r := md4Shift2[i%4]
			a = bits.RotateLeft32(a+md4G(b, c, d)+xi+md4K2, r)
			a, b, c, d = d, a, b, c
		}

		// Round 3.
		for i := uint(0); i < 16; i++ {
			xi := x[md4X3[i]]
			r := md4Shift3[i%4]
			a = bits.RotateLeft32(a+md4H(b, c, d)+xi+md4K3, r)
			a, b, c, d = d, a, b, c
		}

		a += aa
		b += bb
		c += cc
		d += dd

		p = p[MD4BlockSize:]
	}

	s[0], s[1], s[2], s[3] = a, b, c, d
}
