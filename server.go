// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

import (
	"context"
	"errors"
	"runtime"
	"sync/atomic"

	"github.com/klauspost/cpuid"
	"github.com/remeh/sizedwaitgroup"
)

// ErrServerClosed is returned by a Server after Close.
var ErrServerClosed = errors.New("mdlegacy: server closed")

// Server - Type to hash many independent messages in parallel.
// Every message gets its own engine, so engines are never shared.
type Server struct {
	alg         Algorithm
	concurrency int
	closed      uint32
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithConcurrency caps the number of messages hashed at the same time.
// Values below 1 are ignored.
func WithConcurrency(n int) ServerOption {
	return func(s *Server) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

// defaultConcurrency - one worker per logical core
func defaultConcurrency() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// NewServer - Create new object for parallel hashing with alg.
// It panics if alg is not available.
func NewServer(alg Algorithm, opts ...ServerOption) *Server {
	if !alg.Available() {
		panic("mdlegacy: server for unknown algorithm " + alg.String())
	}
	s := &Server{alg: alg, concurrency: defaultConcurrency()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Algorithm returns the digest computed by the server.
func (s *Server) Algorithm() Algorithm { return s.alg }

// Concurrency returns the maximum number of messages hashed at once.
func (s *Server) Concurrency() int { return s.concurrency }

// NewHash returns a fresh engine for the server's algorithm.
func (s *Server) NewHash() Hasher { return s.alg.New() }

// SumAll returns the digest of every input, in input order.
func (s *Server) SumAll(inputs [][]byte) ([][Size]byte, error) {
	return s.SumAllContext(context.Background(), inputs)
}

// SumAllContext is SumAll with cancellation. Cancellation stops new
// messages from being started; messages already running complete.
func (s *Server) SumAllContext(ctx context.Context, inputs [][]byte) ([][Size]byte, error) {
	if atomic.LoadUint32(&s.closed) != 0 {
		return nil, ErrServerClosed
	}

	sums := make([][Size]byte, len(inputs))
	swg := sizedwaitgroup.New(s.concurrency)
	var err error
	for _, l := range scheduleLanes(inputs) {
		// AddWithContext picks at random when a slot is free as well.
		if err = ctx.Err(); err != nil {
			break
		}
		if err = swg.AddWithContext(ctx); err != nil {
			break
		}
		go func(pos uint) {
			defer swg.Done()
			sums[pos] = Sum(s.alg, inputs[pos])
		}(l.pos)
	}
	swg.Wait()
	if err != nil {
		return nil, err
	}
	return sums, nil
}

// Close stops the server from accepting new batches.
func (s *Server) Close() {
	atomic.StoreUint32(&s.closed, 1)
}
