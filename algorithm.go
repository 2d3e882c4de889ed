// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownAlgorithm is returned by ParseAlgorithm for names it does not know.
var ErrUnknownAlgorithm = errors.New("mdlegacy: unknown algorithm")

// Algorithm identifies one of the supported digests.
type Algorithm int

const (
	MD2 Algorithm = iota + 1
	MD4
)

// Algorithms returns every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{MD2, MD4}
}

// ParseAlgorithm maps a name such as "md4" to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "md2":
		return MD2, nil
	case "md4":
		return MD4, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) String() string {
	switch a {
	case MD2:
		return "MD2"
	case MD4:
		return "MD4"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Available reports whether a names a supported algorithm.
func (a Algorithm) Available() bool {
	return a == MD2 || a == MD4
}

// BlockSize - Return blocksize of the algorithm
func (a Algorithm) BlockSize() int {
	switch a {
	case MD2:
		return MD2BlockSize
	case MD4:
		return MD4BlockSize
	}
	panic("mdlegacy: requested block size of unknown algorithm " + a.String())
}

// New returns a fresh engine for a. It panics if a is not available.
func (a Algorithm) New() Hasher {
	switch a {
	case MD2:
		return NewMD2()
	case MD4:
		return NewMD4()
	}
	panic("mdlegacy: requested engine of unknown algorithm " + a.String())
}

// Sum returns the digest of data under a.
func Sum(a Algorithm, data []byte) (sum [Size]byte) {
	h := a.New()
	h.Write(data)
	h.Finalize()
	h.Digest(sum[:])
	return
}

// SumMD2 returns the MD2 digest of data.
func SumMD2(data []byte) [Size]byte { return Sum(MD2, data) }

// SumMD4 returns the MD4 digest of data.
func SumMD4(data []byte) [Size]byte { return Sum(MD4, data) }
