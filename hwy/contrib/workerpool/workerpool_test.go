// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"math"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

func TestNew(t *testing.T) {
	for _, tc := range []struct{ in, want int }{
		{4, 4},
		{1, 1},
		{0, runtime.GOMAXPROCS(0)},
		{-3, runtime.GOMAXPROCS(0)},
	} {
		pool := New(tc.in)
		if got := pool.NumWorkers(); got != tc.want {
			t.Errorf("New(%d).NumWorkers() = %d, want %d", tc.in, got, tc.want)
		}
		pool.Close()
	}
}

// TestCoverage checks that the three loops visit every index exactly once for
// a spread of sizes, including sizes below the worker count.
func TestCoverage(t *testing.T) {
	pool := New(4)
	defer pool.Close()

	loops := map[string]func(n int, visit func(i int)){
		"ParallelFor": func(n int, visit func(int)) {
			pool.ParallelFor(n, func(start, end int) {
				for i := start; i < end; i++ {
					visit(i)
				}
			})
		},
		"ParallelForAtomic": func(n int, visit func(int)) {
			pool.ParallelForAtomic(n, visit)
		},
		"ParallelForAtomicBatched": func(n int, visit func(int)) {
			pool.ParallelForAtomicBatched(n, 7, func(start, end int) {
				for i := start; i < end; i++ {
					visit(i)
				}
			})
		},
	}
	for name, loop := range loops {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 3, 5, 64, 101} {
				hits := make([]atomic.Int32, n)
				loop(n, func(i int) { hits[i].Add(1) })
				for i := range hits {
					if h := hits[i].Load(); h != 1 {
						t.Errorf("n=%d: index %d visited %d times", n, i, h)
					}
				}
			}
		})
	}
}

func TestBatchedZeroBatch(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	var total atomic.Int32
	pool.ParallelForAtomicBatched(10, 0, func(start, end int) {
		total.Add(int32(end - start))
	})
	if total.Load() != 10 {
		t.Errorf("covered %d indices, want 10", total.Load())
	}
}

// TestMaxReduction mirrors how the sweep folds per-chunk maxima.
func TestMaxReduction(t *testing.T) {
	pool := New(3)
	defer pool.Close()

	xs := make([]float64, 1000)
	for i := range xs {
		xs[i] = math.Sin(float64(i))
	}
	var (
		mu   sync.Mutex
		best = math.Inf(-1)
	)
	pool.ParallelFor(len(xs), func(start, end int) {
		m := math.Inf(-1)
		for _, x := range xs[start:end] {
			m = max(m, x)
		}
		mu.Lock()
		best = max(best, m)
		mu.Unlock()
	})

	want := math.Inf(-1)
	for _, x := range xs {
		want = max(want, x)
	}
	if best != want {
		t.Errorf("max = %v, want %v", best, want)
	}
}

func TestSharedPool(t *testing.T) {
	pool := New(2)
	defer pool.Close()

	var wg sync.WaitGroup
	sums := make([]int64, 4)
	for g := range sums {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var s atomic.Int64
			pool.ParallelForAtomic(200, func(i int) { s.Add(int64(i)) })
			sums[g] = s.Load()
		}()
	}
	wg.Wait()
	for g, s := range sums {
		if s != 199*200/2 {
			t.Errorf("caller %d: sum = %d, want %d", g, s, 199*200/2)
		}
	}
}

func TestClose(t *testing.T) {
	pool := New(4)
	pool.Close()
	pool.Close()

	n := 100
	results := make([]int, n)
	pool.ParallelFor(n, func(start, end int) {
		for i := start; i < end; i++ {
			results[i] = i * 2
		}
	})
	pool.ParallelForAtomic(n, func(i int) { results[i]++ })
	for i, r := range results {
		if r != i*2+1 {
			t.Errorf("results[%d] = %d, want %d", i, r, i*2+1)
		}
	}
}

func BenchmarkParallelFor(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	for b.Loop() {
		pool.ParallelFor(1000, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}

func BenchmarkParallelForAtomicBatched(b *testing.B) {
	pool := New(0)
	defer pool.Close()
	for b.Loop() {
		pool.ParallelForAtomicBatched(1000, 64, func(start, end int) {
			for j := start; j < end; j++ {
				_ = j * j
			}
		})
	}
}
