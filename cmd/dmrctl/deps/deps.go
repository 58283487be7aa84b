package deps

import (
	"go.uber.org/dig"

	"github.com/ykkai-w/DMR-ML-Pro/cmd/dmrctl/rootcmd"
)

func Build() (*dig.Container, error) {
	container := dig.New()

	for _, c := range constructors() {
		if err := container.Provide(c); err != nil {
			return nil, err
		}
	}

	return container, nil
}

func constructors() []any {
	return []any{
		rootcmd.ProvideRootCmd,
		ProvideIOStreams,
		ProvideArgs,
		ProvideLogFactory,
		ProvideUpCmd,
		ProvideBootstrapperFactory,
		ProvidePackageCmd,
		ProvideReleaserFactory,
		ProvideInspectCmd,
		ProvideRendererFactory,
		ProvideVersionCmd,
	}
}
