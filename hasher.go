// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

// Package mdlegacy implements the legacy MD2 (RFC 1319) and MD4 (RFC 1320)
// message digests behind a single streaming interface.
//
// MD2 and MD4 are cryptographically broken. Use them only where
// compatibility with legacy systems, not security, is the goal.
package mdlegacy

import (
	"errors"
	"fmt"
	"hash"
)

// Size - size of an MD2 or MD4 digest in bytes
const Size = 16

// Hasher is the streaming contract every engine implements.
//
// Feed input with Write, call Finalize exactly once, then read
// the digest with Digest. A Hasher is not safe for concurrent use.
type Hasher interface {
	hash.Hash

	// Finalize pads the pending input and fixes the digest.
	// Calling it a second time returns ErrFinalized.
	Finalize() error

	// Digest copies the finalized digest into out.
	Digest(out []byte) error

	// DigestSizeBits returns the digest length in bits.
	DigestSizeBits() int
}

var (
	// ErrFinalized is returned when writing to, or finalizing, an engine that was already finalized.
	ErrFinalized = errors.New("mdlegacy: digest already finalized, reset first before writing again")

	// ErrNotFinalized is returned by Digest before Finalize was called.
	ErrNotFinalized = errors.New("mdlegacy: digest not finalized")
)

// InsufficientBufferError is returned by Digest when the output
// buffer cannot hold the digest. The engine is left untouched.
type InsufficientBufferError struct {
	Need int
	Got  int
}

func (e *InsufficientBufferError) Error() string {
	return fmt.Sprintf("mdlegacy: digest buffer too small: need %d bytes, got %d", e.Need, e.Got)
}

// InvalidStateError reports a pending block that reached the block size
// before padding. It is only ever raised with panic: it means the
// buffering loop is broken, not that the input was bad.
type InvalidStateError struct {
	Algorithm Algorithm
	Pending   int
	BlockSize int
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("mdlegacy: %s: pending length %d not below block size %d", e.Algorithm, e.Pending, e.BlockSize)
}

// copyDigest implements Digest for both engines.
func copyDigest(out []byte, sum *[Size]byte, final bool) error {
	if len(out) < Size {
		return &InsufficientBufferError{Need: Size, Got: len(out)}
	}
	if !final {
		return ErrNotFinalized
	}
	copy(out, sum[:])
	return nil
}
