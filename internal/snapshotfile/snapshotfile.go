// Package snapshotfile reads market snapshots from JSON documents of the form
//
//	{"currencies": ["USD", "EUR"], "rates": [[1, 0.9], [1.1, 1]]}
//
// Load also runs arbitrage.MarketSnapshot.Validate so that a bad file is
// reported with its path. Decode only decodes.
package snapshotfile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sugawarayuuta/sonnet"

	"github.com/katalvlaran/fxarb/arbitrage"
)

// ErrEmpty is returned for an empty document.
var ErrEmpty = errors.New("snapshotfile: empty document")

// Load reads, decodes and validates the snapshot stored at path.
func Load(path string) (arbitrage.MarketSnapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return arbitrage.MarketSnapshot{}, fmt.Errorf("snapshotfile: open %s: %w", path, err)
	}
	defer f.Close()

	snap, err := Decode(f)
	if err != nil {
		return arbitrage.MarketSnapshot{}, fmt.Errorf("snapshotfile: %s: %w", path, err)
	}
	if err = snap.Validate(); err != nil {
		return arbitrage.MarketSnapshot{}, fmt.Errorf("snapshotfile: %s: %w", path, err)
	}

	return snap, nil
}

// Decode reads one snapshot document from r.
func Decode(r io.Reader) (arbitrage.MarketSnapshot, error) {
	var snap arbitrage.MarketSnapshot

	buf, err := io.ReadAll(r)
	if err != nil {
		return snap, fmt.Errorf("snapshotfile: read: %w", err)
	}
	if len(buf) == 0 {
		return snap, ErrEmpty
	}
	if err = sonnet.Unmarshal(buf, &snap); err != nil {
		return snap, fmt.Errorf("snapshotfile: decode: %w", err)
	}

	return snap, nil
}
