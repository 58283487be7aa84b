package upcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
)

type BootstrapperFactory interface {
	Bootstrapper() Bootstrapper
}

type Bootstrapper interface {
	Up(ctx context.Context, headless bool) (bootstrap.LaunchResult, error)
}

func NewCmd(factory BootstrapperFactory) *cobra.Command {
	const (
		upUse   = "up [--headless]"
		upShort = "install dependencies and launch the dashboard"
		upLong  = "probes for a Python runtime, installs the packages from requirements.txt " +
			"when needed and runs the dashboard in the foreground on port 8501 until it is stopped."
	)

	cmd := &cobra.Command{
		Use:   upUse,
		Short: upShort,
		Long:  upLong,
		Args:  cobra.NoArgs,
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		result, err := factory.Bootstrapper().Up(cmd.Context(), opts.Headless)
		if err != nil {
			return fmt.Errorf("bringing dashboard up: %w", err)
		}

		// Child exit is a normal shutdown regardless of its exit code.
		out := cmd.OutOrStdout()
		if result.Status.Signaled {
			fmt.Fprintf(out, "dashboard stopped (%s)\n", result.Status.Signal)
		} else {
			fmt.Fprintf(out, "dashboard stopped (exit code %d)\n", result.Status.Code)
		}

		return nil
	}

	return cmd
}

type options struct {
	Headless bool
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.BoolVar(
		&o.Headless,
		"headless",
		o.Headless,
		"Do not open a browser window for the dashboard. Defaults to false.",
	)
}
