package sequence

import (
	"github.com/spf13/cobra"

	"github.com/brackt/brackt/pkg/config"
	"github.com/brackt/brackt/pkg/errors"
	"github.com/brackt/brackt/pkg/ev"
)

// NewCommand creates the sequence command
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sequence",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		RunE:    execute,
	}

	cmd.Flags().Float64("step", 0, "EV step between exposures")
	cmd.Flags().Int("images", 0, "Number of images in the bracket (odd counts center on 0)")
	cmd.Flags().String("order", "", "Emission order: zero-minus-plus or minus-zero-plus")

	return cmd
}

func execute(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	step := cfg.Sequence.Step
	if flags.Changed("step") {
		step, _ = flags.GetFloat64("step")
	}
	if step <= 0 {
		return errors.Newf(errors.ErrInvalidInput, "step must be positive, got %v", step)
	}

	images := cfg.Sequence.Images
	if flags.Changed("images") {
		images, _ = flags.GetInt("images")
	}
	if images < 0 {
		return errors.Newf(errors.ErrInvalidInput, "images must not be negative, got %d", images)
	}

	orderName := cfg.Sequence.Order
	if flags.Changed("order") {
		orderName, _ = flags.GetString("order")
	}
	order, err := ev.ParseOrder(orderName)
	if err != nil {
		return errors.Wrap(err, errors.ErrInvalidInput, "invalid order")
	}

	cmd.Println(ev.Generate(step, images, order))
	return nil
}
