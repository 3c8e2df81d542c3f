package run

import (
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/brackt/brackt/pkg/config"
	"github.com/brackt/brackt/pkg/engine"
	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/filesystem"
	"github.com/brackt/brackt/pkg/progress"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/style"
	"github.com/brackt/brackt/pkg/types"
)

// NewCommand creates the run command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run DIR",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.ExactArgs(1),
		RunE:    execute,
	}

	cmd.Flags().StringP("sequence", "s", "", "Exposure bias sequence (e.g. '0/10, -10/10, 10/10'); generated from config when omitted")
	cmd.Flags().StringP("mode", "m", "", "Comparison mode: absolute or delta")
	cmd.Flags().StringP("action", "a", "", "Action on matched runs: move or textfile")
	cmd.Flags().Bool("bracket-only", false, "Only consider files shot in 'Auto bracket' exposure mode")
	cmd.Flags().StringSlice("extensions", nil, "Accepted file extensions (overrides config)")

	return cmd
}

func execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	req, err := buildRequest(cmd, args[0], cfg)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	eng := engine.New(fsys, rawmeta.NewExtractor(fsys))

	done, err := eng.Start(req)
	if err != nil {
		return err
	}

	waitWithProgress(done, eng.Counters())

	cmd.Println(style.RenderSummary(eng.Counters().Processed(), eng.Counters().Found()))
	return nil
}

func buildRequest(cmd *cobra.Command, root string, cfg config.Config) (engine.Request, error) {
	flags := cmd.Flags()

	seqText, _ := flags.GetString("sequence")
	if seqText == "" {
		order, err := ev.ParseOrder(cfg.Sequence.Order)
		if err != nil {
			return engine.Request{}, errors.Wrap(err, errors.ErrConfigParse, "invalid sequence order in config")
		}
		seqText = ev.Generate(cfg.Sequence.Step, cfg.Sequence.Images, order)
	}

	modeName, _ := flags.GetString("mode")
	if modeName == "" {
		modeName = cfg.Scan.Mode
	}
	mode, ok := types.ParseMatchMode(modeName)
	if !ok {
		return engine.Request{}, errors.Newf(errors.ErrInvalidInput, "unknown mode %q (want absolute or delta)", modeName)
	}

	actionName, _ := flags.GetString("action")
	if actionName == "" {
		actionName = cfg.Scan.Action
	}
	action, ok := types.ParseAction(actionName)
	if !ok {
		return engine.Request{}, errors.Newf(errors.ErrInvalidInput, "unknown action %q (want move or textfile)", actionName)
	}

	extensions, _ := flags.GetStringSlice("extensions")
	if len(extensions) == 0 {
		extensions = cfg.Extensions
	}

	bracketOnly := cfg.Scan.BracketOnly
	if flags.Changed("bracket-only") {
		bracketOnly, _ = flags.GetBool("bracket-only")
	}

	return engine.Request{
		Root:        root,
		Sequence:    seqText,
		Extensions:  extensions,
		Mode:        mode,
		Action:      action,
		BracketOnly: bracketOnly,
	}, nil
}

// waitWithProgress polls the engine's counters into a spinner until the pass
// completes. Non-interactive output just waits.
func waitWithProgress(done <-chan struct{}, counters *progress.Counters) {
	if !style.IsTerminal() {
		<-done
		return
	}

	spinner, err := pterm.DefaultSpinner.Start("Scanning files...")
	if err != nil {
		<-done
		return
	}

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			spinner.Success(progressText(counters))
			return
		case <-ticker.C:
			spinner.UpdateText(progressText(counters))
		}
	}
}

func progressText(counters *progress.Counters) string {
	return pterm.Sprintf("Processed %d/%d files, %d bracketings found",
		counters.Processed(), counters.Total(), counters.Found())
}
