// Package matcher implements the windowed exposure-sequence matcher.
//
// A window of exactly len(target) consecutive records slides over the
// collected files with stride 1. Every matching window is emitted
// independently: overlapping runs are NOT deduplicated here. If "at most one
// action per file" semantics are ever wanted, that is a separate
// post-processing stage, deliberately absent today.
package matcher

import (
	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/logging"
	"github.com/brackt/brackt/pkg/types"
)

// FindRuns returns every window of files that matches the target sequence
// under the given mode, in window order.
//
// Absolute mode requires each record's bias to equal the target value at the
// same position, by exact rational comparison. Delta mode requires the
// offsets relative to the window's record at the target's zero entry to
// equal the target values; it is invariant to the whole bracket's absolute
// EV level. Records with absent bias never match in either mode.
func FindRuns(files []types.FileRecord, target []ev.Value, mode types.MatchMode) []types.MatchedRun {
	logger := logging.GetLogger("matcher")

	n := len(target)
	if n == 0 {
		logger.Warn().Msg("Sequence length is zero, cannot match")
		return nil
	}
	if len(files) < n {
		return nil
	}

	zeroIndex := -1
	if mode == types.MatchDelta {
		zeroIndex = findZeroIndex(target)
		if zeroIndex < 0 {
			// Without a zero anchor there is nothing to measure deltas
			// against; the whole pass is skipped rather than failing
			// window by window.
			logger.Warn().Msg("Delta mode requires a 0 value in the sequence to act as a reference")
			return nil
		}
	}

	var runs []types.MatchedRun
	for i := 0; i+n <= len(files); i++ {
		window := files[i : i+n]

		var matched bool
		switch mode {
		case types.MatchAbsolute:
			matched = matchAbsolute(window, target)
		case types.MatchDelta:
			matched = matchDelta(window, target, zeroIndex)
		}

		if matched {
			logger.Debug().
				Str("first", window[0].Path).
				Int("length", n).
				Msg("bracket run matched")
			runs = append(runs, types.MatchedRun(window))
		}
	}
	return runs
}

func findZeroIndex(target []ev.Value) int {
	for i, v := range target {
		if v.IsZero() {
			return i
		}
	}
	return -1
}

func matchAbsolute(window []types.FileRecord, target []ev.Value) bool {
	for i, record := range window {
		if record.Bias == nil || !record.Bias.Equal(target[i]) {
			return false
		}
	}
	return true
}

func matchDelta(window []types.FileRecord, target []ev.Value, zeroIndex int) bool {
	base := window[zeroIndex].Bias
	if base == nil {
		return false
	}
	for i, record := range window {
		if record.Bias == nil || !record.Bias.Sub(*base).Equal(target[i]) {
			return false
		}
	}
	return true
}
