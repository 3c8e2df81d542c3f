package inspect

import (
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/ev"
	"github.com/brackt/brackt/pkg/filesystem"
	"github.com/brackt/brackt/pkg/rawmeta"
	"github.com/brackt/brackt/pkg/style"
)

// NewCommand creates the inspect command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "inspect FILE...",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		Args:    cobra.MinimumNArgs(1),
		RunE:    execute,
	}

	cmd.Flags().String("format", "text", "Output format: text or yaml")
	cmd.Flags().Bool("as-sequence", false, "Print the files' biases as a sequence string for 'run --sequence'")

	return cmd
}

// fileReport is one file's exposure information for structured output.
type fileReport struct {
	File         string `yaml:"file"`
	ExposureBias string `yaml:"exposure_bias,omitempty"`
	ExposureMode string `yaml:"exposure_mode,omitempty"`
	Error        string `yaml:"error,omitempty"`
}

func execute(cmd *cobra.Command, args []string) error {
	fsys := filesystem.NewOS()
	extractor := rawmeta.NewExtractor(fsys)

	var reports []fileReport
	var biases []ev.Value

	for _, path := range args {
		report := fileReport{File: filepath.Base(path)}

		meta, err := extractor.Extract(path)
		switch {
		case err != nil:
			report.Error = "could not read metadata"
		case meta.Bias == nil:
			report.Error = "no exposure bias found"
		default:
			report.ExposureBias = meta.Bias.String()
			biases = append(biases, *meta.Bias)
		}
		if meta.Mode != nil {
			report.ExposureMode = meta.Mode.String()
		}

		reports = append(reports, report)
	}

	if asSequence, _ := cmd.Flags().GetBool("as-sequence"); asSequence {
		cmd.Println(ev.FormatSequence(biases))
		return nil
	}

	format, _ := cmd.Flags().GetString("format")
	switch format {
	case "yaml":
		out, err := yaml.Marshal(reports)
		if err != nil {
			return errors.Wrap(err, errors.ErrUnknown, "failed to marshal report")
		}
		cmd.Print(string(out))
	case "text":
		rows := make([]style.InspectRow, len(reports))
		for i, r := range reports {
			rows[i] = style.InspectRow{
				Filename: r.File,
				Bias:     orDash(r.ExposureBias),
				Mode:     orDash(r.ExposureMode),
				Note:     r.Error,
			}
		}
		cmd.Println(style.RenderInspectTable(rows))
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown format %q (want text or yaml)", format)
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
