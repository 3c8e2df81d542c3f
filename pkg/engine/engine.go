// Package engine wires scanner, matcher and actions into one pass over a
// directory.
//
// A pass runs on a single dedicated goroutine; the caller polls the shared
// progress counters for display. There is no cancellation: once dispatched,
// a pass runs to completion and clears the running flag itself.
package engine

import (
	"github.com/rs/zerolog"

	"github.com/brackt/brackt/pkg/actions"
	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/logging"
	"github.com/brackt/brackt/pkg/matcher"
	"github.com/brackt/brackt/pkg/progress"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/scanner"
	"github.com/brackt/brackt/pkg/types"
)

// Request describes one detection pass.
type Request struct {
	// Root is the directory to scan. Subdirectories are not descended
	// into.
	Root string
	// Sequence is the user-supplied textual exposure sequence.
	Sequence string
	// Extensions are the accepted file extensions, without leading dots.
	Extensions []string
	// Mode selects absolute or delta comparison.
	Mode types.MatchMode
	// Action selects what happens to matched runs.
	Action types.Action
	// BracketOnly restricts candidates to auto-bracket exposure mode.
	BracketOnly bool
}

// Engine owns the engine's collaborators and the counters shared with the
// presentation layer.
type Engine struct {
	fs       types.FS
	scanner  *scanner.Scanner
	executor *actions.Executor
	counters *progress.Counters
	logger   zerolog.Logger
}

// New creates an Engine over the given filesystem and metadata extractor.
func New(fsys types.FS, extractor rawmeta.Extractor) *Engine {
	return &Engine{
		fs:       fsys,
		scanner:  scanner.New(fsys, extractor),
		executor: actions.NewExecutor(fsys),
		counters: &progress.Counters{},
		logger:   logging.GetLogger("engine"),
	}
}

// Counters returns the shared progress counters. They are reset at each
// dispatch and only incremented while a pass runs.
func (e *Engine) Counters() *progress.Counters {
	return e.counters
}

// Start validates the request, dispatches exactly one worker goroutine and
// returns a channel closed when the pass completes.
//
// The only user-visible pre-flight failure is an exposure sequence with
// fewer than two parsed values; everything that goes wrong later is logged
// and skipped. Starting while a pass is already running fails with
// ErrEngineBusy.
func (e *Engine) Start(req Request) (<-chan struct{}, error) {
	sequence := ev.ParseSequence(req.Sequence)
	if len(sequence) < 2 {
		return nil, errors.Newf(errors.ErrSequenceInvalid,
			"invalid or single-value exposure bias sequence: %q", req.Sequence)
	}

	if !e.counters.StartRunning() {
		return nil, errors.New(errors.ErrEngineBusy, "a pass is already running")
	}
	e.counters.Reset()

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer e.counters.SetRunning(false)
		e.run(req, sequence)
	}()
	return done, nil
}

func (e *Engine) run(req Request, sequence []ev.Value) {
	if info, err := e.fs.Stat(req.Root); err != nil || !info.IsDir() {
		e.logger.Warn().Str("root", req.Root).Msg("Scan root does not exist")
		return
	}

	e.counters.SetTotal(int64(e.scanner.CountFiles(req.Root, req.Extensions)))

	records := e.scanner.Collect(req.Root, scanner.Options{
		Extensions:  req.Extensions,
		BracketOnly: req.BracketOnly,
	}, e.counters)

	runs := matcher.FindRuns(records, sequence, req.Mode)
	for _, run := range runs {
		e.counters.IncFound()
		e.executor.Execute(req.Root, run, req.Action)
	}

	e.logger.Info().
		Str("root", req.Root).
		Int("candidates", len(records)).
		Int("brackets", len(runs)).
		Msg("pass complete")
}
