package bellmanford

import "errors"

// NoPredecessor marks a vertex that has not been reached by relaxation.
const NoPredecessor = -1

// Sentinel errors returned by Detect.
var (
	// ErrNilMatrix indicates that a nil cost matrix was passed to Detect.
	ErrNilMatrix = errors.New("bellmanford: cost matrix is nil")

	// ErrNonSquare indicates that the cost matrix is not square.
	ErrNonSquare = errors.New("bellmanford: cost matrix must be square")

	// ErrSourceOutOfRange indicates that Source(i) does not name a vertex.
	ErrSourceOutOfRange = errors.New("bellmanford: source index out of range")

	// ErrNonFiniteCost indicates a NaN or ±Inf edge weight. Such weights
	// silently suppress relaxations, so they are rejected up front.
	ErrNonFiniteCost = errors.New("bellmanford: cost matrix contains NaN or Inf")
)

// State is the lifecycle phase of a detection run.
type State int

const (
	// StateInitialized: vectors seeded, no round executed yet.
	StateInitialized State = iota
	// StateRelaxing: inside the n-1 relaxation rounds.
	StateRelaxing
	// StateConverged: the detection scan found no relaxable edge.
	StateConverged
	// StateCycleFound: at least one edge was still relaxable.
	StateCycleFound
)

// String returns the upper-case phase name.
func (s State) String() string {
	switch s {
	case StateInitialized:
		return "INITIALIZED"
	case StateRelaxing:
		return "RELAXING"
	case StateConverged:
		return "CONVERGED"
	case StateCycleFound:
		return "CYCLE_FOUND"
	default:
		return "UNKNOWN"
	}
}

// Result holds the outcome of a single Detect call.
//
// Dist and Prev are the relaxation state after the n-1 rounds (the detection
// scan does not mutate them). Cycles lists vertex indices with the first
// index repeated at the end, e.g. [0 1 2 0].
type Result struct {
	Dist        []float64 // Dist[v] = best cost found from Source; +Inf if unreached
	Prev        []int     // Prev[v] = predecessor of v, or NoPredecessor
	State       State     // StateConverged or StateCycleFound
	Rounds      int       // relaxation rounds executed, always n-1
	Relaxations int       // successful distance updates across all rounds
	Cycles      [][]int   // one entry per qualifying edge (or per distinct cycle with dedup)
}

// HasCycle reports whether any negative cycle was reconstructed.
func (r *Result) HasCycle() bool { return r != nil && len(r.Cycles) > 0 }

// Options configures Detect.
//
// Source      – index of the start vertex. Default 0.
// Deduplicate – drop rotations of an already reported cycle. Default false.
type Options struct {
	Source      int
	Deduplicate bool
}

// Option represents a functional option for configuring Detect.
type Option func(*Options)

// Source sets the start vertex index. Validated in Detect.
func Source(idx int) Option {
	return func(o *Options) {
		o.Source = idx
	}
}

// WithDeduplicate makes Detect report each distinct cycle once.
// Cycles are compared after rotating them to start at their smallest index.
func WithDeduplicate() Option {
	return func(o *Options) {
		o.Deduplicate = true
	}
}

// DefaultOptions returns Options with source 0 and duplicates preserved.
func DefaultOptions() Options {
	return Options{Source: 0, Deduplicate: false}
}
