package arbitrage

import "strings"

// Arrow separates currencies in the text rendering of a Cycle.
const Arrow = " --> "

// Cycle is a closed conversion loop: the first and last labels are equal,
// e.g. ["USD" "EUR" "PLN" "USD"].
type Cycle []string

// String joins the labels with Arrow.
func (c Cycle) String() string {
	return strings.Join(c, Arrow)
}
