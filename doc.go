// Package fxarb finds currency-arbitrage loops in a dense matrix of
// exchange rates.
//
// What is inside:
//
//	matrix/      : row-major Dense storage, validators and the -ln(rate) transform
//	bellmanford/ : single-source relaxation that surfaces negative cycles
//	arbitrage/   : MarketSnapshot validation, Detector facade and Reporters
//	internal/    : config, logging, snapshot files and the HTTP API
//	cmd/fxarb/   : CLI: detect one snapshot or serve the HTTP API
//
// How it works:
//
//	A loop A→B→C→A is profitable when rate[A][B]·rate[B][C]·rate[C][A] > 1.
//	Taking cost = -ln(rate) turns that into cost[A][B]+cost[B][C]+cost[C][A] < 0,
//	a negative cycle, which Bellman–Ford detects after n-1 relaxation rounds.
//
// Quick example:
//
//	snap := arbitrage.MarketSnapshot{
//	    Currencies: []string{"A", "B", "C"},
//	    Rates:      [][]float64{{1, 2, 1}, {0.5, 1, 3}, {1, 0.4, 1}},
//	}
//	cycles, err := arbitrage.NewDetector().Detect(snap)
//	// cycles[0].String() == "B --> C --> A --> B"
package fxarb
