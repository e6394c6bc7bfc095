package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/fxarb/matrix"
)

// Detect runs Bellman–Ford from Options.Source over the dense cost matrix and
// reports every negative cycle surfaced by the final relaxation scan.
//
// Preconditions and validation (in order):
//  1. cost must be non-nil (ErrNilMatrix).
//  2. cost must be square (ErrNonSquare).
//  3. Source must lie in [0, n) (ErrSourceOutOfRange).
//  4. Every cell must be finite (ErrNonFiniteCost).
//
// A 1×1 matrix runs zero rounds and always converges.
//
// Complexity:
//
//   - Time:  O(n³)
//   - Space: O(n²) for the flat cost copy, O(n) for the vectors.
func Detect(cost matrix.Matrix, opts ...Option) (*Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the matrix and copy it into a flat buffer.
	w, n, err := loadCosts(cost)
	if err != nil {
		return nil, err
	}

	// 3) Validate the source index.
	if cfg.Source < 0 || cfg.Source >= n {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrSourceOutOfRange, cfg.Source, n)
	}

	// 4) Run the state machine.
	r := &runner{
		n:       n,
		w:       w,
		options: cfg,
		dist:    make([]float64, n),
		prev:    make([]int, n),
	}
	r.init()
	r.relaxRounds()
	r.scan()

	return &Result{
		Dist:        r.dist,
		Prev:        r.prev,
		State:       r.state,
		Rounds:      r.rounds,
		Relaxations: r.relaxations,
		Cycles:      r.cycles,
	}, nil
}

// loadCosts validates cost and copies it into a row-major slice so the hot
// loops never go through the interface.
func loadCosts(cost matrix.Matrix) ([]float64, int, error) {
	if err := matrix.ValidateSquare(cost); err != nil {
		switch {
		case errors.Is(err, matrix.ErrNilMatrix):
			return nil, 0, ErrNilMatrix
		default:
			return nil, 0, fmt.Errorf("%w: %dx%d", ErrNonSquare, cost.Rows(), cost.Cols())
		}
	}

	if err := matrix.ValidateFinite(cost); err != nil {
		var ee *matrix.EntryError
		if errors.As(err, &ee) {
			return nil, 0, fmt.Errorf("%w: cell (%d,%d)=%g", ErrNonFiniteCost, ee.Row, ee.Col, ee.Value)
		}
		return nil, 0, fmt.Errorf("bellmanford: validate costs: %w", err)
	}

	n := cost.Rows()
	w := make([]float64, n*n)
	var (
		i, j int
		err  error
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if w[i*n+j], err = cost.At(i, j); err != nil {
				return nil, 0, fmt.Errorf("bellmanford: read cost(%d,%d): %w", i, j, err)
			}
		}
	}

	return w, n, nil
}

// runner holds the mutable state for a single Detect execution.
type runner struct {
	n           int       // number of vertices
	w           []float64 // flat row-major costs, w[u*n+v] = cost u→v
	options     Options   // Source and Deduplicate
	dist        []float64 // dist[v] = best known cost from Source
	prev        []int     // prev[v] = predecessor of v on the best known path
	state       State     // current phase
	rounds      int       // completed relaxation rounds
	relaxations int       // successful updates
	cycles      [][]int   // reconstructed cycles
	seen        map[string]struct{}
}

// init seeds the vectors: dist[source]=0, others +Inf; all prev = NoPredecessor.
func (r *runner) init() {
	var v int
	for v = 0; v < r.n; v++ {
		r.dist[v] = math.Inf(1)
		r.prev[v] = NoPredecessor
	}
	r.dist[r.options.Source] = 0
	if r.options.Deduplicate {
		r.seen = make(map[string]struct{})
	}
	r.state = StateInitialized
}

// relaxRounds performs exactly n-1 rounds. Round k+1 observes every update
// made in round k, and updates inside a round are visible to later edges of
// the same round (in-place relaxation).
func (r *runner) relaxRounds() {
	r.state = StateRelaxing
	var round, u, v, base int
	var du, cand float64
	for round = 0; round < r.n-1; round++ {
		for u = 0; u < r.n; u++ {
			du = r.dist[u]
			if math.IsInf(du, 1) {
				continue // unreached vertices cannot relax anything
			}
			base = u * r.n
			for v = 0; v < r.n; v++ {
				if u == v {
					continue
				}
				cand = du + r.w[base+v]
				if cand < r.dist[v] {
					r.dist[v] = cand
					r.prev[v] = u
					r.relaxations++
				}
			}
		}
		r.rounds++
	}
}

// scan checks every edge once more. Each edge that can still be relaxed
// proves a negative cycle and triggers a reconstruction.
func (r *runner) scan() {
	r.state = StateConverged
	var u, v, base int
	for u = 0; u < r.n; u++ {
		if math.IsInf(r.dist[u], 1) {
			continue
		}
		base = u * r.n
		for v = 0; v < r.n; v++ {
			if u == v {
				continue
			}
			if r.dist[u]+r.w[base+v] < r.dist[v] {
				r.state = StateCycleFound
				r.record(reconstruct(r.prev, u, v))
			}
		}
	}
}

// record appends a reconstructed cycle, honoring Deduplicate.
func (r *runner) record(cycle []int) {
	if cycle == nil {
		return
	}
	if r.seen != nil {
		key := cycleKey(cycle)
		if _, dup := r.seen[key]; dup {
			return
		}
		r.seen[key] = struct{}{}
	}
	r.cycles = append(r.cycles, cycle)
}
