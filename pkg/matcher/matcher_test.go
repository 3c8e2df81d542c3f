package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/testutil"
	"github.com/brackt/brackt/pkg/types"
)

func records(t *testing.T, biases ...[2]int64) []types.FileRecord {
	t.Helper()
	out := make([]types.FileRecord, len(biases))
	for i, b := range biases {
		out[i] = testutil.Record(pathFor(i), testutil.BiasPtr(t, b[0], b[1]))
	}
	return out
}

func pathFor(i int) string {
	return "/photos/img" + string(rune('a'+i)) + ".nef"
}

func TestFindRunsAbsolute(t *testing.T) {
	target := ev.ParseSequence("0/10, -10/10, 10/10")
	require.Len(t, target, 3)

	tests := []struct {
		name   string
		biases [][2]int64
		want   int
	}{
		{
			name:   "exact match",
			biases: [][2]int64{{0, 10}, {-10, 10}, {10, 10}},
			want:   1,
		},
		{
			name:   "different denominators still match",
			biases: [][2]int64{{0, 1}, {-1, 1}, {1, 1}},
			want:   1,
		},
		{
			name:   "permuted window does not match",
			biases: [][2]int64{{-10, 10}, {0, 10}, {10, 10}},
			want:   0,
		},
		{
			name:   "shifted bracket does not match absolute",
			biases: [][2]int64{{5, 10}, {-5, 10}, {15, 10}},
			want:   0,
		},
		{
			name:   "match in the middle of a longer list",
			biases: [][2]int64{{30, 10}, {0, 10}, {-10, 10}, {10, 10}, {30, 10}},
			want:   1,
		},
		{
			name:   "fewer files than target",
			biases: [][2]int64{{0, 10}, {-10, 10}},
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runs := FindRuns(records(t, tt.biases...), target, types.MatchAbsolute)
			assert.Len(t, runs, tt.want)
		})
	}
}

func TestFindRunsAbsoluteAbsentBiasNeverMatches(t *testing.T) {
	target := ev.ParseSequence("0/10, -10/10, 10/10")
	files := []types.FileRecord{
		testutil.Record("/photos/a.nef", testutil.BiasPtr(t, 0, 10)),
		testutil.Record("/photos/b.nef", nil), // metadata had no bias
		testutil.Record("/photos/c.nef", testutil.BiasPtr(t, 10, 10)),
	}

	assert.Empty(t, FindRuns(files, target, types.MatchAbsolute))
}

func TestFindRunsDelta(t *testing.T) {
	// Zero anchor at index 0: every bias is measured against the first
	// file of the window.
	target := ev.ParseSequence("0/10, -10/10, 10/10")

	t.Run("shifted bracket matches", func(t *testing.T) {
		// +0.5 EV compensation on the whole bracket.
		files := records(t, [2]int64{5, 10}, [2]int64{-5, 10}, [2]int64{15, 10})
		runs := FindRuns(files, target, types.MatchDelta)
		require.Len(t, runs, 1)
		assert.Equal(t, files[0].Path, runs[0][0].Path)
	})

	t.Run("unshifted bracket matches too", func(t *testing.T) {
		files := records(t, [2]int64{0, 10}, [2]int64{-10, 10}, [2]int64{10, 10})
		assert.Len(t, FindRuns(files, target, types.MatchDelta), 1)
	})

	t.Run("wrong spacing does not match", func(t *testing.T) {
		files := records(t, [2]int64{5, 10}, [2]int64{-5, 10}, [2]int64{25, 10})
		assert.Empty(t, FindRuns(files, target, types.MatchDelta))
	})

	t.Run("absent base bias fails the window", func(t *testing.T) {
		files := []types.FileRecord{
			testutil.Record("/photos/a.nef", nil),
			testutil.Record("/photos/b.nef", testutil.BiasPtr(t, -10, 10)),
			testutil.Record("/photos/c.nef", testutil.BiasPtr(t, 10, 10)),
		}
		assert.Empty(t, FindRuns(files, target, types.MatchDelta))
	})
}

func TestFindRunsDeltaAnchorMidSequence(t *testing.T) {
	// Anchor at index 1: deltas are measured against the middle file.
	target := ev.ParseSequence("-10/10, 0/10, 10/10")
	files := records(t, [2]int64{-5, 10}, [2]int64{5, 10}, [2]int64{15, 10})

	runs := FindRuns(files, target, types.MatchDelta)
	assert.Len(t, runs, 1)
}

func TestFindRunsDeltaWithoutZeroAnchor(t *testing.T) {
	// No zero entry anywhere: delta matching is skipped for the whole
	// pass, with a diagnostic, and must not panic.
	target := ev.ParseSequence("-10/10, 10/10")
	files := records(t, [2]int64{-10, 10}, [2]int64{10, 10})

	assert.Empty(t, FindRuns(files, target, types.MatchDelta))
}

func TestFindRunsOverlappingMatches(t *testing.T) {
	// Windows are emitted independently; overlapping matches share files.
	target := ev.ParseSequence("0/10, 0/10, 0/10")
	files := records(t, [2]int64{0, 10}, [2]int64{0, 10}, [2]int64{0, 10}, [2]int64{0, 10})

	runs := FindRuns(files, target, types.MatchAbsolute)
	require.Len(t, runs, 2)
	assert.Equal(t, files[1].Path, runs[0][1].Path)
	assert.Equal(t, files[1].Path, runs[1][0].Path, "middle file appears in both runs")
}

func TestFindRunsEmptyTarget(t *testing.T) {
	files := records(t, [2]int64{0, 10})
	assert.Empty(t, FindRuns(files, nil, types.MatchAbsolute))
}

func TestFindRunsPreservesWindowOrder(t *testing.T) {
	target := ev.ParseSequence("0/10, 0/10")
	files := records(t, [2]int64{0, 10}, [2]int64{0, 10}, [2]int64{0, 10})

	runs := FindRuns(files, target, types.MatchAbsolute)
	require.Len(t, runs, 2)
	assert.Equal(t, files[0].Path, runs[0][0].Path)
	assert.Equal(t, files[1].Path, runs[1][0].Path)
}
