package ulp

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
	"github.com/ajroetker/go-emath/hwy/contrib/workerpool"
)

// Result is the outcome of measuring one function at one precision on one
// backend.
type Result struct {
	Func      math.Func
	Precision int
	Backend   string
	Samples   int
	MaxULP    float64
	// WorstX and WorstY are the arguments that produced MaxULP.
	WorstX, WorstY float64
	Bound          float64
}

// Within reports whether the measured error respects the published bound.
func (r Result) Within() bool { return r.MaxULP <= r.Bound }

// Sweep measures functions over their sampling domains. The zero value is
// not usable; set Samples and Pool.
type Sweep struct {
	Samples int
	Seed    int64

	// Pool evaluates the reference and the kernels in parallel chunks.
	Pool *workerpool.Pool

	// Logger receives progress at Debug level. Nil disables logging.
	Logger *slog.Logger
}

// Run measures every (function, precision, backend) triple. Functions run
// concurrently; each one's samples are split across the pool. Results come
// back ordered by function, then precision, then backend.
func (s *Sweep) Run(ctx context.Context, fns []math.Func, precisions []int, backends []math.Backend) ([]Result, error) {
	if s.Samples <= 0 {
		return nil, fmt.Errorf("ulp: sweep needs a positive sample count, got %d", s.Samples)
	}
	if s.Pool == nil {
		return nil, fmt.Errorf("ulp: sweep needs a worker pool")
	}
	for _, p := range precisions {
		if err := CheckPrecision(p); err != nil {
			return nil, err
		}
	}

	per := len(precisions) * len(backends)
	results := make([]Result, len(fns)*per)
	g, ctx := errgroup.WithContext(ctx)
	for i, fn := range fns {
		g.Go(func() error {
			for j, p := range precisions {
				if err := ctx.Err(); err != nil {
					return err
				}
				rs, err := s.measure(fn, p, backends)
				if err != nil {
					return fmt.Errorf("%v/%d: %w", fn, p, err)
				}
				copy(results[i*per+j*len(backends):], rs)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Sweep) measure(fn math.Func, precision int, backends []math.Backend) ([]Result, error) {
	dom, err := DomainOf(fn, precision)
	if err != nil {
		return nil, err
	}
	xs, ys := dom.Samples(s.Samples, s.Seed+int64(fn)*1000+int64(precision), precision)
	refs := make([]*big.Float, len(xs))
	s.Pool.ParallelForAtomicBatched(len(xs), 64, func(start, end int) {
		for i := start; i < end; i++ {
			refs[i] = Reference(fn, xs[i], ys[i])
		}
	})
	s.log("reference ready", "func", fn, "precision", precision, "samples", len(xs))

	out := make([]Result, len(backends))
	for bi, b := range backends {
		eval := Evaluator(b, fn, precision)
		var mu sync.Mutex
		r := Result{
			Func:      fn,
			Precision: precision,
			Backend:   b.Name,
			Samples:   len(xs),
			Bound:     math.ULPBound(fn, precision),
		}
		s.Pool.ParallelFor(len(xs), func(start, end int) {
			var m, wx, wy float64
			for i := start; i < end; i++ {
				if e := eval(xs[i], ys[i], refs[i]); e > m {
					m, wx, wy = e, xs[i], ys[i]
				}
			}
			mu.Lock()
			if m > r.MaxULP {
				r.MaxULP, r.WorstX, r.WorstY = m, wx, wy
			}
			mu.Unlock()
		})
		s.log("measured", "func", fn, "precision", precision, "backend", b.Name, "max_ulp", r.MaxULP)
		out[bi] = r
	}
	return out, nil
}

func (s *Sweep) log(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, args...)
	}
}

// Evaluator returns a function that runs backend b's kernel for fn at the
// given precision and returns its error against ref.
func Evaluator(b math.Backend, fn math.Func, precision int) func(x, y float64, ref *big.Float) float64 {
	if precision == 32 {
		if k := b.Kernels32.Binary(fn); k != nil {
			return func(x, y float64, ref *big.Float) float64 {
				return CountULP32(k(float32(x), float32(y)), ref)
			}
		}
		k := b.Kernels32.Unary(fn)
		return func(x, _ float64, ref *big.Float) float64 {
			return CountULP32(k(float32(x)), ref)
		}
	}
	if k := b.Kernels64.Binary(fn); k != nil {
		return func(x, y float64, ref *big.Float) float64 {
			return CountULP64(k(x, y), ref)
		}
	}
	k := b.Kernels64.Unary(fn)
	return func(x, _ float64, ref *big.Float) float64 {
		return CountULP64(k(x), ref)
	}
}
