package arbitrage

import (
	"errors"
	"fmt"
	"io"

	"github.com/sugawarayuuta/sonnet"
)

// Supported report formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by NewReporter for an unsupported format.
var ErrUnknownFormat = errors.New("arbitrage: unknown report format")

// Reporter renders detected cycles.
type Reporter interface {
	Report(cycles []Cycle) error
}

// NewReporter returns a Reporter for format ("text" or "json") writing to w.
func NewReporter(format string, w io.Writer) (Reporter, error) {
	switch format {
	case FormatText, "":
		return &TextReporter{W: w}, nil
	case FormatJSON:
		return &JSONReporter{W: w}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// TextReporter prints one block per cycle:
//
//	Arbitrage Opportunity:
//	PLN --> EUR --> PLN
//
// and a single line when nothing was found.
type TextReporter struct {
	W io.Writer
}

// Report implements Reporter.
func (r *TextReporter) Report(cycles []Cycle) error {
	if len(cycles) == 0 {
		_, err := fmt.Fprintln(r.W, "No arbitrage opportunities found.")
		return err
	}
	for _, c := range cycles {
		if _, err := fmt.Fprintf(r.W, "Arbitrage Opportunity:\n%s\n\n", c); err != nil {
			return err
		}
	}

	return nil
}

// JSONReporter writes {"cycles":[[...],...],"count":N} followed by a newline.
type JSONReporter struct {
	W io.Writer
}

// CycleReport is the structured form of a detection outcome.
type CycleReport struct {
	Cycles []Cycle `json:"cycles"`
	Count  int     `json:"count"`
}

// Report implements Reporter.
func (r *JSONReporter) Report(cycles []Cycle) error {
	if cycles == nil {
		cycles = []Cycle{}
	}
	buf, err := sonnet.Marshal(CycleReport{Cycles: cycles, Count: len(cycles)})
	if err != nil {
		return fmt.Errorf("arbitrage: encode report: %w", err)
	}
	buf = append(buf, '\n')
	_, err = r.W.Write(buf)

	return err
}
