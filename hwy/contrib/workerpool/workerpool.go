// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool runs index ranges on a fixed set of goroutines that
// live as long as the Pool. The accuracy tools use it to evaluate large
// argument samples: the math/big reference is slow and uneven in cost, so
// the atomic variants hand out work in small batches.
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//	pool.ParallelForAtomicBatched(len(xs), 64, func(start, end int) {
//		for i := start; i < end; i++ {
//			refs[i] = reference.Sin(xs[i])
//		}
//	})
//
// A Pool may be shared by several goroutines; each call waits only for its
// own work.
package workerpool

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Pool is a set of persistent workers.
type Pool struct {
	workers int
	tasks   chan task
	once    sync.Once
	closed  atomic.Bool
}

type task struct {
	run  func()
	done *sync.WaitGroup
}

// New starts a pool of n workers, or GOMAXPROCS workers when n <= 0.
func New(n int) *Pool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	p := &Pool{workers: n, tasks: make(chan task, 2*n)}
	for range n {
		go p.loop()
	}
	return p
}

func (p *Pool) loop() {
	for t := range p.tasks {
		t.run()
		t.done.Done()
	}
}

// NumWorkers returns the number of workers.
func (p *Pool) NumWorkers() int { return p.workers }

// Close stops the workers once queued work drains. It is safe to call more
// than once; calls made after Close run on the caller's goroutine.
func (p *Pool) Close() {
	p.once.Do(func() {
		p.closed.Store(true)
		close(p.tasks)
	})
}

// fanOut runs body on k workers and waits for all of them.
func (p *Pool) fanOut(k int, body func(worker int)) {
	var wg sync.WaitGroup
	wg.Add(k)
	for w := range k {
		p.tasks <- task{run: func() { body(w) }, done: &wg}
	}
	wg.Wait()
}

// serial reports whether a call over n units should run inline, and how
// many workers it gets otherwise.
func (p *Pool) serial(n int) (workers int, inline bool) {
	workers = min(p.workers, n)
	return workers, p.closed.Load() || workers <= 1
}

// ParallelFor splits [0, n) into one contiguous chunk per worker and calls
// fn(start, end) for each.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	workers, inline := p.serial(n)
	if inline {
		fn(0, n)
		return
	}
	chunk := (n + workers - 1) / workers
	p.fanOut((n+chunk-1)/chunk, func(w int) {
		start := w * chunk
		fn(start, min(start+chunk, n))
	})
}

// ParallelForAtomic calls fn(i) for every i in [0, n); workers claim the
// next index as they finish the previous one.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	p.ParallelForAtomicBatched(n, 1, func(start, end int) {
		for i := start; i < end; i++ {
			fn(i)
		}
	})
}

// ParallelForAtomicBatched is ParallelForAtomic with batchSize indices per
// claim; fn receives [start, end).
func (p *Pool) ParallelForAtomicBatched(n, batchSize int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	batchSize = max(batchSize, 1)
	workers, inline := p.serial((n + batchSize - 1) / batchSize)
	if inline {
		fn(0, n)
		return
	}
	var next atomic.Int64
	p.fanOut(workers, func(int) {
		for {
			start := int(next.Add(int64(batchSize))) - batchSize
			if start >= n {
				return
			}
			fn(start, min(start+batchSize, n))
		}
	})
}
