// Package bellmanford_test contains unit tests for negative-cycle detection.
// They cover input validation, convergence on arbitrage-free markets, planted
// and concrete arbitrage loops, determinism and the deduplication option.
package bellmanford_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/fxarb/bellmanford"
	"github.com/katalvlaran/fxarb/matrix"
)

// ------------------------------------------------------------------------
// Helpers
// ------------------------------------------------------------------------

// costsFromRates runs the log transform and fails the test on error.
func costsFromRates(t *testing.T, rates [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromRows(rates)
	if err != nil {
		t.Fatalf("FromRows: %v", err)
	}
	c, err := matrix.NegLog(m)
	if err != nil {
		t.Fatalf("NegLog: %v", err)
	}
	return c
}

// isRotation reports whether closed cycle got is a rotation of closed cycle want.
func isRotation(got, want []int) bool {
	if len(got) != len(want) {
		return false
	}
	g := bellmanford.Canonical(got)
	w := bellmanford.Canonical(want)
	for i := range g {
		if g[i] != w[i] {
			return false
		}
	}
	return true
}

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestDetect_NilMatrix(t *testing.T) {
	_, err := bellmanford.Detect(nil)
	if !errors.Is(err, bellmanford.ErrNilMatrix) {
		t.Fatalf("Expected ErrNilMatrix, got %v", err)
	}
}

func TestDetect_NonSquare(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	_, err := bellmanford.Detect(m)
	if !errors.Is(err, bellmanford.ErrNonSquare) {
		t.Fatalf("Expected ErrNonSquare, got %v", err)
	}
}

func TestDetect_SourceOutOfRange(t *testing.T) {
	m, _ := matrix.NewDense(3, 3)
	for _, src := range []int{-1, 3} {
		_, err := bellmanford.Detect(m, bellmanford.Source(src))
		if !errors.Is(err, bellmanford.ErrSourceOutOfRange) {
			t.Errorf("Source(%d): expected ErrSourceOutOfRange, got %v", src, err)
		}
	}
}

func TestDetect_NonFiniteCost(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{0, math.NaN()}, {0, 0}})
	_, err := bellmanford.Detect(m)
	if !errors.Is(err, bellmanford.ErrNonFiniteCost) {
		t.Fatalf("Expected ErrNonFiniteCost, got %v", err)
	}
	if !strings.Contains(err.Error(), "cell (0,1)") {
		t.Errorf("Expected offending cell in %q", err.Error())
	}

	inf, _ := matrix.FromRows([][]float64{{0, 1}, {math.Inf(-1), 0}})
	if _, err = bellmanford.Detect(inf); !errors.Is(err, bellmanford.ErrNonFiniteCost) {
		t.Fatalf("Expected ErrNonFiniteCost for -Inf, got %v", err)
	}
}

// ------------------------------------------------------------------------
// 2. Convergence
// ------------------------------------------------------------------------

func TestDetect_SingleVertex(t *testing.T) {
	m, _ := matrix.FromRows([][]float64{{0}})
	res, err := bellmanford.Detect(m)
	if err != nil {
		t.Fatal(err)
	}
	if res.Rounds != 0 {
		t.Errorf("Rounds = %d; want 0", res.Rounds)
	}
	if res.State != bellmanford.StateConverged || res.HasCycle() {
		t.Errorf("expected CONVERGED without cycles, got %s %v", res.State, res.Cycles)
	}
	if res.Dist[0] != 0 || res.Prev[0] != bellmanford.NoPredecessor {
		t.Errorf("unexpected seed state: dist=%v prev=%v", res.Dist, res.Prev)
	}
}

func TestDetect_NonNegativeWeights_Distances(t *testing.T) {
	// 0→1 (1), 1→2 (2), 0→2 (5): shortest 0→2 goes through 1.
	m, _ := matrix.FromRows([][]float64{
		{0, 1, 5},
		{9, 0, 2},
		{9, 9, 0},
	})
	res, err := bellmanford.Detect(m)
	if err != nil {
		t.Fatal(err)
	}
	if res.Dist[2] != 3 || res.Prev[2] != 1 || res.Prev[1] != 0 {
		t.Errorf("dist=%v prev=%v", res.Dist, res.Prev)
	}
	if res.Rounds != 2 {
		t.Errorf("Rounds = %d; want 2", res.Rounds)
	}
	if res.State != bellmanford.StateConverged {
		t.Errorf("State = %s; want CONVERGED", res.State)
	}
}

func TestDetect_NoArbitrage_ConsistentRates(t *testing.T) {
	// Values 1, 2, 1, 2 give rates in {0.5, 1, 2}: rate[i][j] = p[i]/p[j]
	// is reciprocal and transitive, so no loop can gain.
	p := []float64{1, 2, 1, 2}
	rates := make([][]float64, len(p))
	for i := range p {
		rates[i] = make([]float64, len(p))
		for j := range p {
			rates[i][j] = p[i] / p[j]
		}
	}

	res, err := bellmanford.Detect(costsFromRates(t, rates))
	if err != nil {
		t.Fatal(err)
	}
	if res.HasCycle() || res.State != bellmanford.StateConverged {
		t.Fatalf("expected no cycles, got %v (%s)", res.Cycles, res.State)
	}
}

func TestDetect_AllOnes(t *testing.T) {
	rates := [][]float64{{1, 1, 1}, {1, 1, 1}, {1, 1, 1}}
	res, err := bellmanford.Detect(costsFromRates(t, rates))
	if err != nil {
		t.Fatal(err)
	}
	if res.HasCycle() {
		t.Fatalf("expected no cycles, got %v", res.Cycles)
	}
}

// ------------------------------------------------------------------------
// 3. Negative cycles
// ------------------------------------------------------------------------

func TestDetect_ConcreteScenario(t *testing.T) {
	// A→B→C→A = 2 * 3 * 0.4 = 2.4.
	rates := [][]float64{
		{1, 2, 1},
		{0.5, 1, 3},
		{1, 0.4, 1},
	}
	res, err := bellmanford.Detect(costsFromRates(t, rates))
	if err != nil {
		t.Fatal(err)
	}
	if res.State != bellmanford.StateCycleFound {
		t.Fatalf("State = %s; want CYCLE_FOUND", res.State)
	}
	found := false
	for _, c := range res.Cycles {
		if isRotation(c, []int{0, 1, 2, 0}) {
			found = true
		}
		if c[0] != c[len(c)-1] {
			t.Errorf("cycle %v is not closed", c)
		}
		if len(c) < 3 {
			t.Errorf("degenerate cycle %v", c)
		}
	}
	if !found {
		t.Fatalf("A→B→C→A not reported; got %v", res.Cycles)
	}
}

func TestDetect_PlantedFivePercent(t *testing.T) {
	// Forward legs of the triangle carry the 5% gain; reverse legs carry a
	// small spread so the triangle is the only profitable loop.
	g := math.Cbrt(1.05)
	ab, bc, ca := 0.9*g, 150.0*g, 1/(0.9*150.0)*g
	spread := 0.995
	rates := [][]float64{
		{1, ab, spread / ca},
		{spread / ab, 1, bc},
		{ca, spread / bc, 1},
	}

	res, err := bellmanford.Detect(costsFromRates(t, rates))
	if err != nil {
		t.Fatal(err)
	}
	if !res.HasCycle() {
		t.Fatal("expected the planted cycle")
	}
	for _, c := range res.Cycles {
		if !isRotation(c, []int{0, 1, 2, 0}) {
			t.Errorf("unexpected cycle %v; want a rotation of [0 1 2 0]", c)
		}
	}
}

func TestDetect_Deterministic(t *testing.T) {
	rates := [][]float64{
		{1, 0.23, 0.25, 16.43, 18.21, 4.94},
		{4.34, 1, 1.11, 71.40, 79.09, 21.44},
		{3.93, 0.90, 1, 64.52, 71.48, 19.37},
		{0.061, 0.014, 0.015, 1, 1.11, 0.30},
		{0.055, 0.013, 0.014, 0.90, 1, 0.27},
		{0.20, 0.047, 0.052, 3.33, 3.69, 1},
	}
	first, err := bellmanford.Detect(costsFromRates(t, rates))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		again, err := bellmanford.Detect(costsFromRates(t, rates))
		if err != nil {
			t.Fatal(err)
		}
		if len(again.Cycles) != len(first.Cycles) {
			t.Fatalf("run %d: %d cycles; want %d", i, len(again.Cycles), len(first.Cycles))
		}
		for k := range first.Cycles {
			if !sameInts(first.Cycles[k], again.Cycles[k]) {
				t.Fatalf("run %d: cycle %d = %v; want %v", i, k, again.Cycles[k], first.Cycles[k])
			}
		}
	}
}

// sampleRates is a six-currency market (PLN, EUR, USD, RUB, INR, MXN) in
// which several relaxable edges lead back to the same loops.
var sampleRates = [][]float64{
	{1, 0.23, 0.25, 16.43, 18.21, 4.94},
	{4.34, 1, 1.11, 71.40, 79.09, 21.44},
	{3.93, 0.90, 1, 64.52, 71.48, 19.37},
	{0.061, 0.014, 0.015, 1, 1.11, 0.30},
	{0.055, 0.013, 0.014, 0.90, 1, 0.27},
	{0.20, 0.047, 0.052, 3.33, 3.69, 1},
}

func TestDetect_KeepsOneCyclePerEdge(t *testing.T) {
	res, err := bellmanford.Detect(costsFromRates(t, sampleRates))
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Cycles) != 12 {
		t.Fatalf("Expected 12 cycles, got %d: %v", len(res.Cycles), res.Cycles)
	}
	usdMxn := []int{2, 5, 2}
	repeats := 0
	for _, c := range res.Cycles {
		if isRotation(c, usdMxn) {
			repeats++
		}
	}
	if repeats < 2 {
		t.Errorf("Expected USD-MXN loop reported per edge, got %d times in %v", repeats, res.Cycles)
	}
}

func TestDetect_Deduplicate(t *testing.T) {
	res, err := bellmanford.Detect(costsFromRates(t, sampleRates), bellmanford.WithDeduplicate())
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Cycles) != 8 {
		t.Fatalf("Expected 8 distinct cycles, got %d: %v", len(res.Cycles), res.Cycles)
	}
	for i := range res.Cycles {
		for j := i + 1; j < len(res.Cycles); j++ {
			if isRotation(res.Cycles[i], res.Cycles[j]) {
				t.Errorf("cycle %v repeats %v", res.Cycles[j], res.Cycles[i])
			}
		}
	}
}

func TestDetect_SourceDoesNotHideReachableCycle(t *testing.T) {
	rates := [][]float64{
		{1, 2, 1},
		{0.5, 1, 3},
		{1, 0.4, 1},
	}
	for src := 0; src < 3; src++ {
		res, err := bellmanford.Detect(costsFromRates(t, rates), bellmanford.Source(src))
		if err != nil {
			t.Fatal(err)
		}
		if !res.HasCycle() {
			t.Errorf("Source(%d): expected a cycle", src)
		}
	}
}

func TestState_String(t *testing.T) {
	if bellmanford.StateCycleFound.String() != "CYCLE_FOUND" {
		t.Errorf("got %q", bellmanford.StateCycleFound.String())
	}
	if bellmanford.State(42).String() != "UNKNOWN" {
		t.Errorf("got %q", bellmanford.State(42).String())
	}
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
