package inspectcmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

type RendererFactory interface {
	Renderer() Renderer
}

type Renderer interface {
	RenderSource(ctx context.Context, source string) (string, error)
}

func NewCmd(rendererFactory RendererFactory) *cobra.Command {
	const (
		inspectUse   = "inspect [source_path]"
		inspectShort = "show the files a release archive would contain"
		inspectLong  = "renders the application tree with the release sanitization rules applied, " +
			"without staging or writing anything."
	)

	cmd := &cobra.Command{
		Use:   inspectUse,
		Short: inspectShort,
		Long:  inspectLong,
		Args:  cobra.MaximumNArgs(1),
	}

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		source := "."
		if len(args) == 1 {
			source = args[0]
		}

		rendered, err := rendererFactory.Renderer().RenderSource(cmd.Context(), source)
		if err != nil {
			return fmt.Errorf("inspecting %s: %w", source, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), rendered)

		return nil
	}

	return cmd
}
