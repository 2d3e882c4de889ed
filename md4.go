// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

import (
	"encoding/binary"
)

// MD4BlockSize - block size of MD4 in bytes
const MD4BlockSize = 64

// MD4 initialization constants
const (
	init0 = 0x67452301
	init1 = 0xefcdab89
	init2 = 0x98badcfe
	init3 = 0x10325476
)

// md4Digest - Type for computing MD4
type md4Digest struct {
	s     [4]uint32
	x     [MD4BlockSize]byte
	nx    int
	len   uint64
	final bool
}

// NewMD4 - returns a new Hasher computing the MD4 digest.
func NewMD4() Hasher {
	d := new(md4Digest)
	d.Reset()
	return d
}

// Size - Return size of checksum
func (d *md4Digest) Size() int { return Size }

// BlockSize - Return blocksize of checksum
func (d *md4Digest) BlockSize() int { return MD4BlockSize }

func (d *md4Digest) DigestSizeBits() int { return Size * 8 }

// Reset - reset digest to its initial values
func (d *md4Digest) Reset() {
	d.s[0], d.s[1], d.s[2], d.s[3] = init0, init1, init2, init3
	d.x = [MD4BlockSize]byte{}
	d.nx = 0
	d.len = 0
	d.final = false
}

// Write to digest
func (d *md4Digest) Write(p []byte) (nn int, err error) {
	if d.final {
		return 0, ErrFinalized
	}
	nn = len(p)
	d.len += uint64(nn)
	d.write(p)
	return
}

// write absorbs p without touching the length counter, so that
// padding can be pushed through the same path.
func (d *md4Digest) write(p []byte) {
	if d.nx > 0 {
		n := copy(d.x[d.nx:], p)
		d.nx += n
		if d.nx == MD4BlockSize {
			blockMD4(&d.s, d.x[:])
			d.nx = 0
		}
		p = p[n:]
	}
	if len(p) >= MD4BlockSize {
		n := len(p) &^ (MD4BlockSize - 1)
		blockMD4(&d.s, p[:n])
		p = p[n:]
	}
	if len(p) > 0 {
		d.nx = copy(d.x[:], p)
	}
}

func (d *md4Digest) Finalize() error {
	if d.final {
		return ErrFinalized
	}
	if d.nx >= MD4BlockSize {
		panic(&InvalidStateError{Algorithm: MD4, Pending: d.nx, BlockSize: MD4BlockSize})
	}

	len := d.len
	// Padding.  Add a 1 bit and 0 bits until 56 bytes mod 64.
	var tmp [64]byte
	tmp[0] = 0x80
	if len%64 < 56 {
		d.write(tmp[0 : 56-len%64])
	} else {
		d.write(tmp[0 : 64+56-len%64])
	}

	// Length in bits.
	len <<= 3
	binary.LittleEndian.PutUint64(tmp[:], len)
	d.write(tmp[0:8])

	d.final = true
	return nil
}

func (d *md4Digest) sum() (s [Size]byte) {
	binary.LittleEndian.PutUint32(s[0:], d.s[0])
	binary.LittleEndian.PutUint32(s[4:], d.s[1])
	binary.LittleEndian.PutUint32(s[8:], d.s[2])
	binary.LittleEndian.PutUint32(s[12:], d.s[3])
	return
}

func (d *md4Digest) Digest(out []byte) error {
	s := d.sum()
	return copyDigest(out, &s, d.final)
}

// Sum - Return MD4 sum in bytes. The receiver is left untouched so
// the caller can keep writing.
func (d *md4Digest) Sum(in []byte) []byte {
	d0 := *d
	if !d0.final {
		d0.Finalize()
	}
	s := d0.sum()
	return append(in, s[:]...)
}
