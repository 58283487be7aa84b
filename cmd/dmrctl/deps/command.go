package deps

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/inspectcmd"
	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/packagecmd"
	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/rootcmd"
	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/upcmd"
	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/versioncmd"
	internalcmd "github.com/ykkai-w/DMR-ML-Pro/internal/cmd"
)

const (
	// ReturnCodeSuccess is passed to os.Exit() when no error is reported.
	ReturnCodeSuccess = 0
	// ReturnCodeError is passed to os.Exit() if a command reports an error.
	ReturnCodeError = 1
)

// Run assembles the CLI and executes it, mapping every failure to exit
// code 1. Errors that carry a remediation hint get the hint printed after
// the error itself.
func Run(ctx context.Context) int {
	container, err := Build()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return ReturnCodeError
	}

	code := ReturnCodeSuccess
	if err := container.Invoke(func(rootCmd *cobra.Command) {
		if execErr := rootCmd.ExecuteContext(ctx); execErr != nil {
			var remediable internalcmd.Remediable
			if errors.As(execErr, &remediable) {
				fmt.Fprintln(rootCmd.ErrOrStderr(), remediable.Remediation())
			}

			code = ReturnCodeError
		}
	}); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)

		return ReturnCodeError
	}

	return code
}

func ProvideIOStreams() rootcmd.IOStreams {
	return rootcmd.IOStreams{
		In:     os.Stdin,
		Out:    os.Stdout,
		ErrOut: os.Stderr,
	}
}

func ProvideArgs() []string {
	return os.Args[1:]
}

type RootSubCommandResult struct {
	dig.Out

	SubCommand *cobra.Command `group:"rootSubCommands"`
}

func ProvideUpCmd(bootstrapperFactory upcmd.BootstrapperFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: upcmd.NewCmd(
			bootstrapperFactory,
		),
	}
}

func ProvideBootstrapperFactory(f LogFactory) upcmd.BootstrapperFactory {
	return &defaultBootstrapperFactory{
		logFactory: f,
	}
}

type defaultBootstrapperFactory struct {
	logFactory LogFactory
}

func (f *defaultBootstrapperFactory) Bootstrapper() upcmd.Bootstrapper {
	return internalcmd.NewBootstrap(
		internalcmd.WithLog{
			Log: f.logFactory.Logger(),
		},
	)
}

func ProvidePackageCmd(releaserFactory packagecmd.ReleaserFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: packagecmd.NewCmd(
			releaserFactory,
		),
	}
}

func ProvideReleaserFactory(f LogFactory) packagecmd.ReleaserFactory {
	return &defaultReleaserFactory{
		logFactory: f,
	}
}

type defaultReleaserFactory struct {
	logFactory LogFactory
}

func (f *defaultReleaserFactory) Releaser() packagecmd.Releaser {
	return internalcmd.NewRelease(
		internalcmd.WithLog{
			Log: f.logFactory.Logger(),
		},
	)
}

func ProvideInspectCmd(rendererFactory inspectcmd.RendererFactory) RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: inspectcmd.NewCmd(
			rendererFactory,
		),
	}
}

func ProvideRendererFactory(f LogFactory) inspectcmd.RendererFactory {
	return &defaultRendererFactory{
		logFactory: f,
	}
}

type defaultRendererFactory struct {
	logFactory LogFactory
}

func (f *defaultRendererFactory) Renderer() inspectcmd.Renderer {
	return internalcmd.NewInspect(
		internalcmd.WithLog{
			Log: f.logFactory.Logger(),
		},
	)
}

func ProvideVersionCmd() RootSubCommandResult {
	return RootSubCommandResult{
		SubCommand: versioncmd.NewCmd(),
	}
}
