package bellmanford_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/fxarb/bellmanford"
	"github.com/katalvlaran/fxarb/matrix"
)

// TestDetect_AgreesWithFloydWarshall cross-checks the single-source detector
// against the all-pairs closure on random complete rate graphs.
func TestDetect_AgreesWithFloydWarshall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := 2 + rng.Intn(6)
		rates := make([][]float64, n)
		for i := range rates {
			rates[i] = make([]float64, n)
			for j := range rates[i] {
				if i == j {
					rates[i][j] = 1
					continue
				}
				rates[i][j] = 0.5 + 1.5*rng.Float64()
			}
		}
		cost := costsFromRates(t, rates)

		res, err := bellmanford.Detect(cost)
		if err != nil {
			t.Fatal(err)
		}
		want, err := matrix.HasNegativeCycle(cost)
		if err != nil {
			t.Fatal(err)
		}
		if got := res.State == bellmanford.StateCycleFound; got != want {
			t.Fatalf("trial %d: Bellman–Ford says %v, Floyd–Warshall says %v for %v", trial, got, want, rates)
		}
		for _, c := range res.Cycles {
			if c[0] != c[len(c)-1] || len(c) < 3 {
				t.Fatalf("trial %d: malformed cycle %v", trial, c)
			}
			sum := 0.0
			for k := 0; k+1 < len(c); k++ {
				w, _ := cost.At(c[k], c[k+1])
				sum += w
			}
			if sum >= 0 {
				t.Fatalf("trial %d: cycle %v has non-negative cost %g", trial, c, sum)
			}
		}
	}
}
