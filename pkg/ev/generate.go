package ev

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Order is the emission order for a generated bracket sequence.
type Order int

const (
	// ZeroMinusPlus emits the metered exposure first, then each
	// under/over pair by increasing offset: 0, -1, 1, -2, 2.
	ZeroMinusPlus Order = iota
	// MinusZeroPlus emits all offsets sorted ascending: -2, -1, 0, 1, 2.
	MinusZeroPlus
)

func (o Order) String() string {
	switch o {
	case ZeroMinusPlus:
		return "zero-minus-plus"
	case MinusZeroPlus:
		return "minus-zero-plus"
	default:
		return "unknown"
	}
}

// ParseOrder parses an order name as used on the command line and in config.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "zero-minus-plus", "zerominusplus":
		return ZeroMinusPlus, nil
	case "minus-zero-plus", "minuszeroplus":
		return MinusZeroPlus, nil
	default:
		return ZeroMinusPlus, fmt.Errorf("unknown bracket order %q", s)
	}
}

// Generate synthesizes a default sequence string for a bracket of numImages
// exposures stepped by step EV. Offsets are expressed in tenths of a stop as
// n/10 tokens, rounded to the nearest tenth. Returns "" for zero images.
//
// The output is exactly what ParseSequence accepts; it exists to pre-fill
// the user-editable sequence, not to drive matching directly.
func Generate(step float64, numImages int, order Order) string {
	if numImages <= 0 {
		return ""
	}

	var tokens []string
	switch order {
	case ZeroMinusPlus:
		tokens = append(tokens, "0/10")
		for i := 1; i <= (numImages-1)/2; i++ {
			tenths := int(math.Round(step * float64(i) * 10))
			tokens = append(tokens, fmt.Sprintf("-%d/10", tenths))
			tokens = append(tokens, fmt.Sprintf("%d/10", tenths))
		}
	case MinusZeroPlus:
		offsets := make([]int, 0, numImages)
		for i := 0; i < numImages; i++ {
			index := i - (numImages-1)/2
			offsets = append(offsets, int(math.Round(step*float64(index)*10)))
		}
		sort.Ints(offsets)
		for _, tenths := range offsets {
			tokens = append(tokens, fmt.Sprintf("%d/10", tenths))
		}
	}

	return strings.Join(tokens, ", ")
}
