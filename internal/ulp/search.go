package ulp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdmath "math"
	"math/big"
	"math/rand"

	"github.com/ajroetker/go-emath/hwy/contrib/math"
	"github.com/ajroetker/go-emath/hwy/contrib/workerpool"
)

// ErrNotSearchable is returned for a function whose kernel does not take a
// caller-supplied coefficient table.
var ErrNotSearchable = errors.New("ulp: function has no searchable table")

// Search looks for a coefficient table with a lower maximum error by random
// perturbation of the shipped one. Each candidate moves every coefficient
// by n·ε for a random n, in a random direction, and candidates are scored
// on a fixed grid of arguments.
type Search struct {
	Func       math.Func
	Precision  int
	Iterations int
	Seed       int64

	// MaxSteps caps n. Zero picks 1023 for 64-bit and 85500 for 32-bit.
	MaxSteps int

	// Batch is how many candidates are generated before they are scored in
	// parallel. Zero means 256.
	Batch int

	Pool   *workerpool.Pool
	Logger *slog.Logger
}

// SearchResult is the best table found.
type SearchResult struct {
	Table    []float64
	MaxULP   float64
	Baseline float64 // maximum error of the shipped table on the same grid
	Tried    int
}

// Improved reports whether the search beat the shipped table.
func (r SearchResult) Improved() bool { return r.MaxULP < r.Baseline }

type scorer struct {
	xs   []float64
	refs []*big.Float
	eval func(x float64, table []float64) float64
	ulp  func(got float64, ref *big.Float) float64
}

// grid returns the scoring arguments: k·0.005 over [-10, 10) for exp and
// over [-1, 1) for asin.
func grid(fn math.Func) []float64 {
	n := 2000
	if fn == math.FuncAsin {
		n = 200
	}
	xs := make([]float64, 0, 2*n)
	for k := -n; k < n; k++ {
		xs = append(xs, float64(k)*0.005)
	}
	return xs
}

func newScorer(fn math.Func, precision int, pool *workerpool.Pool) (*scorer, error) {
	s := &scorer{xs: grid(fn)}
	switch {
	case fn == math.FuncExp && precision == 64:
		s.eval = math.ExpWithTable64
		s.ulp = CountULP64
	case fn == math.FuncAsin && precision == 32:
		for i, x := range s.xs {
			s.xs[i] = float64(float32(x))
		}
		s.eval = func(x float64, table []float64) float64 {
			return float64(math.AsinWithTable32(float32(x), table))
		}
		s.ulp = func(got float64, ref *big.Float) float64 { return CountULP32(float32(got), ref) }
	default:
		return nil, fmt.Errorf("%w: %v/%d", ErrNotSearchable, fn, precision)
	}
	s.refs = make([]*big.Float, len(s.xs))
	pool.ParallelForAtomicBatched(len(s.xs), 64, func(start, end int) {
		for i := start; i < end; i++ {
			s.refs[i] = Reference(fn, s.xs[i], 0)
		}
	})
	return s, nil
}

func (s *scorer) score(table []float64) float64 {
	var m float64
	for i, x := range s.xs {
		m = max(m, s.ulp(s.eval(x, table), s.refs[i]))
	}
	return m
}

// Run executes the search. It stops early, returning the best table so far
// together with the context error, when ctx is done.
func (s *Search) Run(ctx context.Context) (SearchResult, error) {
	if err := CheckPrecision(s.Precision); err != nil {
		return SearchResult{}, err
	}
	if s.Pool == nil {
		return SearchResult{}, fmt.Errorf("ulp: search needs a worker pool")
	}
	initial, ok := math.DefaultTable(s.Func, s.Precision)
	if !ok {
		return SearchResult{}, fmt.Errorf("%w: %v/%d", ErrNotSearchable, s.Func, s.Precision)
	}
	sc, err := newScorer(s.Func, s.Precision, s.Pool)
	if err != nil {
		return SearchResult{}, err
	}

	best := SearchResult{Table: initial, Baseline: sc.score(initial)}
	best.MaxULP = best.Baseline
	s.log("baseline", "func", s.Func, "precision", s.Precision, "max_ulp", best.Baseline)

	rng := rand.New(rand.NewSource(s.Seed))
	batch := s.Batch
	if batch <= 0 {
		batch = 256
	}
	cands := make([][]float64, batch)
	scores := make([]float64, batch)
	for best.Tried < s.Iterations {
		if err := ctx.Err(); err != nil {
			return best, err
		}
		n := min(batch, s.Iterations-best.Tried)
		for i := range n {
			cands[i] = s.perturb(rng, initial)
		}
		s.Pool.ParallelForAtomic(n, func(i int) {
			scores[i] = sc.score(cands[i])
		})
		for i := range n {
			if scores[i] < best.MaxULP {
				best.MaxULP, best.Table = scores[i], cands[i]
				s.log("improved", "tried", best.Tried+i+1, "max_ulp", best.MaxULP)
			}
		}
		best.Tried += n
	}
	return best, nil
}

// perturb returns a copy of table with every coefficient moved by a random
// multiple of the precision's machine epsilon. The step count is drawn
// uniformly from [0, m] where m is itself uniform in [0, MaxSteps], which
// favours small moves.
func (s *Search) perturb(rng *rand.Rand, table []float64) []float64 {
	eps, steps := 0x1p-52, 1023
	if s.Precision == 32 {
		eps, steps = 0x1p-23, 85500
	}
	if s.MaxSteps > 0 {
		steps = s.MaxSteps
	}
	out := make([]float64, len(table))
	for i, c := range table {
		m := rng.Intn(steps + 1)
		d := float64(rng.Intn(m+1)) * eps
		if rng.Intn(2) == 0 {
			d = -d
		}
		v := c + d
		if s.Precision == 32 {
			v = float64(float32(v))
		}
		if stdmath.IsNaN(v) || stdmath.IsInf(v, 0) {
			v = c
		}
		out[i] = v
	}
	return out
}

func (s *Search) log(msg string, args ...any) {
	if s.Logger != nil {
		s.Logger.Debug(msg, args...)
	}
}
