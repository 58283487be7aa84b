package packagecmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ykkai-w/DMR-ML-Pro/internal/cli"
	internalcmd "github.com/ykkai-w/DMR-ML-Pro/internal/cmd"
	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

type ReleaserFactory interface {
	Releaser() Releaser
}

type Releaser interface {
	PackageSource(ctx context.Context, source, name string, opts ...internalcmd.PackageSourceOption) (packaging.Result, error)
}

func NewCmd(releaserFactory ReleaserFactory) *cobra.Command {
	const (
		packageUse   = "package package_name [--source source_path] [--output output_path]"
		packageShort = "build a sanitized release archive of the application tree"
		packageLong  = "copies the application tree into a staging directory, strips caches, " +
			"secrets and subscriber data, rewrites the API token assignment to an environment " +
			"lookup and compresses the result into {package_name}.zip."
	)

	cmd := &cobra.Command{
		Use:   packageUse,
		Short: packageShort,
		Long:  packageLong,
		Args:  cobra.ExactArgs(1),
	}

	var opts options

	opts.AddFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		name := args[0]
		if name == "" {
			return fmt.Errorf("%w: package name empty", internalcmd.ErrInvalidArgs)
		}

		result, err := releaserFactory.Releaser().PackageSource(
			cmd.Context(), opts.Source, name,
			internalcmd.WithOutputDir(opts.Output),
		)
		if err != nil {
			return fmt.Errorf("packaging %s: %w", name, err)
		}

		printer := cli.NewPrinter(
			cli.WithOut{Out: cmd.OutOrStdout()},
			cli.WithErr{Err: cmd.ErrOrStderr()},
		)

		return printer.PrintPackageReport(result)
	}

	return cmd
}

type options struct {
	Source string
	Output string
}

func (o *options) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(
		&o.Source,
		"source",
		"s",
		".",
		"Application tree to package. Defaults to the working directory.",
	)
	flags.StringVarP(
		&o.Output,
		"output",
		"o",
		".",
		"Directory receiving the staging tree and the final archive. Defaults to the working directory.",
	)
}
