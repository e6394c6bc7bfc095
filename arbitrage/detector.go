package arbitrage

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/fxarb/bellmanford"
	"github.com/katalvlaran/fxarb/matrix"
)

// DefaultMaxCurrencies bounds the snapshot size so the O(n³) relaxation
// keeps a predictable worst case.
const DefaultMaxCurrencies = 256

// Detector validates snapshots and reports their arbitrage loops.
// It holds configuration only; every Detect call owns its own state, so a
// single Detector may serve concurrent callers.
type Detector struct {
	logger        logrus.FieldLogger
	maxCurrencies int
	dedup         bool
	source        int
}

// Option configures a Detector.
type Option func(*Detector)

// WithLogger sets the structured logger. Defaults to a discarding logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Detector) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithMaxCurrencies sets the snapshot size bound. Values ≤ 0 disable it.
func WithMaxCurrencies(n int) Option {
	return func(d *Detector) {
		d.maxCurrencies = n
	}
}

// WithDeduplicate reports each distinct loop once instead of once per
// relaxable edge.
func WithDeduplicate(on bool) Option {
	return func(d *Detector) {
		d.dedup = on
	}
}

// WithSource selects the start currency index for relaxation. Every
// currency is reachable in a complete rate graph, so the choice only
// affects which duplicates are reported, not whether arbitrage is found.
// Detect fails with ErrSource for snapshots with idx or fewer currencies.
func WithSource(idx int) Option {
	return func(d *Detector) {
		d.source = idx
	}
}

// NewDetector builds a Detector with DefaultMaxCurrencies, duplicates
// preserved and source index 0.
func NewDetector(opts ...Option) *Detector {
	quiet := logrus.New()
	quiet.SetOutput(io.Discard)

	d := &Detector{
		logger:        quiet,
		maxCurrencies: DefaultMaxCurrencies,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Detect validates snap, transforms its rates and returns every loop found.
// The snapshot is read, never modified. An arbitrage-free market yields an
// empty, non-nil slice.
func (d *Detector) Detect(snap MarketSnapshot) ([]Cycle, error) {
	started := time.Now()
	log := d.logger.WithField("currencies", snap.Size())

	// 1) Bound the input before doing any O(n²) work.
	if d.maxCurrencies > 0 && snap.Size() > d.maxCurrencies {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, snap.Size(), d.maxCurrencies)
	}

	// 2) Shape and domain validation.
	rates, err := snap.rateMatrix()
	if err != nil {
		log.WithError(err).Debug("snapshot rejected")
		return nil, err
	}
	if d.source >= snap.Size() {
		return nil, fmt.Errorf("%w: index %d, %d currencies", ErrSource, d.source, snap.Size())
	}

	// 3) Rate Transformer: cost = -ln(rate), fresh matrix.
	cost, err := matrix.NegLog(rates)
	if err != nil {
		return nil, fmt.Errorf("arbitrage: transform rates: %w", err)
	}

	// 4) Cycle Detector.
	opts := []bellmanford.Option{bellmanford.Source(d.source)}
	if d.dedup {
		opts = append(opts, bellmanford.WithDeduplicate())
	}
	res, err := bellmanford.Detect(cost, opts...)
	if err != nil {
		return nil, fmt.Errorf("arbitrage: detect: %w", err)
	}

	// 5) Map indices back to labels.
	cycles := make([]Cycle, 0, len(res.Cycles))
	for _, idx := range res.Cycles {
		cycles = append(cycles, snap.label(idx))
	}

	log.WithFields(logrus.Fields{
		"state":       res.State.String(),
		"cycles":      len(cycles),
		"relaxations": res.Relaxations,
		"duration":    time.Since(started),
	}).Debug("detection finished")

	return cycles, nil
}

// label maps a cycle of indices to currency labels.
func (s MarketSnapshot) label(idx []int) Cycle {
	out := make(Cycle, len(idx))
	for i, v := range idx {
		out[i] = s.Currencies[v]
	}

	return out
}

// HasArbitrage answers only whether snap contains any profitable loop, using
// an all-pairs closure instead of the single-source relaxation. It applies
// the same validation and size bound as Detect.
func (d *Detector) HasArbitrage(snap MarketSnapshot) (bool, error) {
	if d.maxCurrencies > 0 && snap.Size() > d.maxCurrencies {
		return false, fmt.Errorf("%w: %d > %d", ErrTooLarge, snap.Size(), d.maxCurrencies)
	}
	rates, err := snap.rateMatrix()
	if err != nil {
		return false, err
	}
	cost, err := matrix.NegLog(rates)
	if err != nil {
		return false, fmt.Errorf("arbitrage: transform rates: %w", err)
	}
	found, err := matrix.HasNegativeCycle(cost)
	if err != nil {
		return false, fmt.Errorf("arbitrage: closure: %w", err)
	}
	d.logger.WithFields(logrus.Fields{
		"currencies": snap.Size(),
		"arbitrage":  found,
	}).Debug("arbitrage check finished")

	return found, nil
}
