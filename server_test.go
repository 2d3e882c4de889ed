// Copyright (c) 2020 MinIO Inc. All rights reserved.
// Use of this source code is governed by a license that can be
// found in the LICENSE file.

package mdlegacy

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"testing"

	"golang.org/x/crypto/md4"
)

func TestServerGolden(t *testing.T) {
	for _, tc := range []struct {
		alg    Algorithm
		golden []digestTest
	}{
		{MD2, goldenMD2},
		{MD4, goldenMD4},
	} {
		t.Run(tc.alg.String(), func(t *testing.T) {
			server := NewServer(tc.alg)
			defer server.Close()

			inputs := make([][]byte, len(tc.golden))
			for i := range tc.golden {
				inputs[i] = []byte(tc.golden[i].in)
			}
			sums, err := server.SumAll(inputs)
			if err != nil {
				t.Fatal(err)
			}
			for i := range sums {
				if got := fmt.Sprintf("%x", sums[i]); got != tc.golden[i].want {
					t.Errorf("TestServerGolden[%d], got %v, want %v", i, got, tc.golden[i].want)
				}
			}
		})
	}
}

func testServerSimulator(t *testing.T, concurrency, iterations, maxSize int, server *Server) {
	// Use deterministic RNG.
	rng := rand.New(rand.NewSource(0xabad1dea))

	for i := 0; i < iterations; i++ {
		inputs := make([][]byte, concurrency)
		for j := range inputs {
			inputs[j] = bytes.Repeat([]byte{0x61 + byte(i^j)}, rng.Intn(maxSize))
		}
		sums, err := server.SumAll(inputs)
		if err != nil {
			t.Fatal(err)
		}
		for j := range inputs {
			ref := md4.New()
			ref.Write(inputs[j])
			if want := ref.Sum(nil); !bytes.Equal(sums[j][:], want) {
				t.Fatalf("iteration %d input %d: got %x, want %x", i, j, sums[j], want)
			}
		}
	}
}

func TestServerSimulator(t *testing.T) {
	iterations := 40
	if testing.Short() {
		iterations = 4
	}

	t.Run("c16", func(t *testing.T) {
		server := NewServer(MD4)
		t.Cleanup(server.Close)
		t.Parallel()
		testServerSimulator(t, 16, iterations, 100<<10, server)
	})
	t.Run("c1", func(t *testing.T) {
		server := NewServer(MD4, WithConcurrency(1))
		t.Cleanup(server.Close)
		t.Parallel()
		testServerSimulator(t, 1, iterations, 1<<20, server)
	})
	t.Run("c19", func(t *testing.T) {
		server := NewServer(MD4, WithConcurrency(3))
		t.Cleanup(server.Close)
		t.Parallel()
		testServerSimulator(t, 19, iterations*2, 10<<10, server)
	})
}

func TestServerNewHashParallel(t *testing.T) {
	server := NewServer(MD2)
	defer server.Close()

	want := SumMD2([]byte(digits80))
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			h := server.NewHash()
			rng := rand.New(rand.NewSource(int64(i)))
			if got := testChunked(h, []byte(digits80), rng); got != want {
				t.Errorf("goroutine %d, got %x, want %x", i, got, want)
			}
		}()
	}
	wg.Wait()
}

func TestServerOptions(t *testing.T) {
	server := NewServer(MD4, WithConcurrency(5), WithConcurrency(0))
	if server.Concurrency() != 5 {
		t.Errorf("Concurrency, got %d, want 5", server.Concurrency())
	}
	if server.Algorithm() != MD4 {
		t.Errorf("Algorithm, got %v", server.Algorithm())
	}
	if NewServer(MD2).Concurrency() < 1 {
		t.Error("default concurrency below 1")
	}
}

func TestServerClosed(t *testing.T) {
	server := NewServer(MD4)
	server.Close()
	if _, err := server.SumAll([][]byte{[]byte("abc")}); !errors.Is(err, ErrServerClosed) {
		t.Errorf("SumAll after Close, got %v, want %v", err, ErrServerClosed)
	}
	// Engines do not depend on the server.
	if got := fmt.Sprintf("%x", server.NewHash().Sum(nil)); got != goldenMD4[0].want {
		t.Errorf("NewHash after Close, got %s", got)
	}
}

func TestServerCanceled(t *testing.T) {
	server := NewServer(MD2, WithConcurrency(1))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := server.SumAllContext(ctx, [][]byte{[]byte("a"), []byte("b")}); !errors.Is(err, context.Canceled) {
		t.Errorf("got %v, want %v", err, context.Canceled)
	}
}

func TestServerEmptyBatch(t *testing.T) {
	sums, err := NewServer(MD2).SumAll(nil)
	if err != nil || len(sums) != 0 {
		t.Errorf("got %v, %v", sums, err)
	}
}
