// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

// MD2BlockSize - block size of MD2 in bytes
const MD2BlockSize = 16

// MD2 substitution table built from the digits of pi (RFC 1319).
var md2S = [256]byte{
	0x29, 0x2e, 0x43, 0xc9, 0xa2, 0xd8, 0x7c, 0x01, 0x3d, 0x36, 0x54, 0xa1, 0xec, 0xf0, 0x06, 0x13,
	0x62, 0xa7, 0x05, 0xf3, 0xc0, 0xc7, 0x73, 0x8c, 0x98, 0x93, 0x2b, 0xd9, 0xbc, 0x4c, 0x82, 0xca,
	0x1e, 0x9b, 0x57, 0x3c, 0xfd, 0xd4, 0xe0, 0x16, 0x67, 0x42, 0x6f, 0x18, 0x8a, 0x17, 0xe5, 0x12,
	0xbe, 0x4e, 0xc4, 0xd6, 0xda, 0x9e, 0xde, 0x49, 0xa0, 0xfb, 0xf5, 0x8e, 0xbb, 0x2f, 0xee, 0x7a,
	0xa9, 0x68, 0x79, 0x91, 0x15, 0xb2, 0x07, 0x3f, 0x94, 0xc2, 0x10, 0x89, 0x0b, 0x22, 0x5f, 0x21,
	0x80, 0x7f, 0x5d, 0x9a, 0x5a, 0x90, 0x32, 0x27, 0x35, 0x3e, 0xcc, 0xe7, 0xbf, 0xf7, 0x97, 0x03,
	0xff, 0x19, 0x30, 0xb3, 0x48, 0xa5, 0xb5, 0xd1, 0xd7, 0x5e, 0x92, 0x2a, 0xac, 0x56, 0xaa, 0xc6,
	0x4f, 0xb8, 0x38, 0xd2, 0x96, 0xa4, 0x7d, 0xb6, 0x76, 0xfc, 0x6b, 0xe2, 0x9c, 0x74, 0x04, 0xf1,
	0x45, 0x9d, 0x70, 0x59, 0x64, 0x71, 0x87, 0x20, 0x86, 0x5b, 0xcf, 0x65, 0xe6, 0x2d, 0xa8, 0x02,
	0x1b, 0x60, 0x25, 0xad, 0xae, 0xb0, 0xb9, 0xf6, 0x1c, 0x46, 0x61, 0x69, 0x34, 0x40, 0x7e, 0x0f,
	0x55, 0x47, 0xa3, 0x23, 0xdd, 0x51, 0xaf, 0x3a, 0xc3, 0x5c, 0xf9, 0xce, 0xba, 0xc5, 0xea, 0x26,
	0x2c, 0x53, 0x0d, 0x6e, 0x85, 0x28, 0x84, 0x09, 0xd3, 0xdf, 0xcd, 0xf4, 0x41, 0x81, 0x4d, 0x52,
	0x6a, 0xdc, 0x37, 0xc8, 0x6c, 0xc1, 0xab, 0xfa, 0x24, 0xe1, 0x7b, 0x08, 0x0c, 0xbd, 0xb1, 0x4a,
	0x78, 0x88, 0x95, 0x8b, 0xe3, 0x63, 0xe8, 0x6d, 0xe9, 0xcb, 0xd5, 0xfe, 0x3b, 0x00, 0x1d, 0x39,
	0xf2, 0xef, 0xb7, 0x0e, 0x66, 0x58, 0xd0, 0xe4, 0xa6, 0x77, 0x72, 0xf8, 0xeb, 0x75, 0x4b, 0x0a,
	0x31, 0x44, 0x50, 0xb4, 0x8f, 0xed, 0x1f, 0x1a, 0xdb, 0x99, 0x8d, 0x33, 0x9f, 0x11, 0x83, 0x14,
}

// md2Digest - Type for computing MD2
type md2Digest struct {
	checksum [MD2BlockSize]byte
	x        [3 * MD2BlockSize]byte // hash state, last block, their xor
	buf      [MD2BlockSize]byte
	nx       int
	final    bool
}

// NewMD2 - returns a new Hasher computing the MD2 digest.
func NewMD2() Hasher {
	return new(md2Digest)
}

// Size - Return size of checksum
func (d *md2Digest) Size() int { return Size }

// BlockSize - Return blocksize of checksum
func (d *md2Digest) BlockSize() int { return MD2BlockSize }

func (d *md2Digest) DigestSizeBits() int { return Size * 8 }

// Reset - reset digest to its initial values
func (d *md2Digest) Reset() {
	*d = md2Digest{}
}

// Write to digest
func (d *md2Digest) Write(p []byte) (nn int, err error) {
	if d.final {
		return 0, ErrFinalized
	}

	nn = len(p)
	for len(p) > 0 {
		n := copy(d.buf[d.nx:], p)
		d.nx += n
		p = p[n:]

		// if 16 bytes are filled compress and update checksum
		if d.nx == MD2BlockSize {
			d.compress()
			d.updateChecksum()
			d.nx = 0
		}
	}
	return
}

// compress runs the 18 round MD2 transformation over the pending block.
func (d *md2Digest) compress() {
	for i := 0; i < MD2BlockSize; i++ {
		d.x[16+i] = d.buf[i]
		d.x[32+i] = d.x[i] ^ d.buf[i]
	}

	var t byte
	for round := 0; round < 18; round++ {
		for i := range d.x {
			d.x[i] ^= md2S[t]
			t = d.x[i]
		}
		t += byte(round)
	}
}

// updateChecksum folds the pending block into the running checksum.
// The input byte is xored with the carry before the table lookup: RFC 1319
// prose gets this backwards, but its reference code and test vectors don't.
func (d *md2Digest) updateChecksum() {
	l := d.checksum[MD2BlockSize-1]
	for i := 0; i < MD2BlockSize; i++ {
		d.checksum[i] ^= md2S[d.buf[i]^l]
		l = d.checksum[i]
	}
}

func (d *md2Digest) Finalize() error {
	if d.final {
		return ErrFinalized
	}
	if d.nx >= MD2BlockSize {
		panic(&InvalidStateError{Algorithm: MD2, Pending: d.nx, BlockSize: MD2BlockSize})
	}

	// Padding. Fill the block with k copies of k, with k in [1,16].
	k := byte(MD2BlockSize - d.nx)
	for i := d.nx; i < MD2BlockSize; i++ {
		d.buf[i] = k
	}
	d.compress()
	d.updateChecksum()

	// The checksum is compressed as a trailing block of its own.
	d.buf = d.checksum
	d.compress()

	d.nx = 0
	d.final = true
	return nil
}

func (d *md2Digest) sum() (s [Size]byte) {
	copy(s[:], d.x[:Size])
	return
}

func (d *md2Digest) Digest(out []byte) error {
	s := d.sum()
	return copyDigest(out, &s, d.final)
}

// Sum - Return MD2 sum in bytes. The receiver is left untouched so
// the caller can keep writing.
func (d *md2Digest) Sum(in []byte) []byte {
	d0 := *d
	if !d0.final {
		d0.Finalize()
	}
	s := d0.sum()
	return append(in, s[:]...)
}
