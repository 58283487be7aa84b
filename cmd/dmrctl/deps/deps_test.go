package deps

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	t.Parallel()

	container, err := Build()
	require.NoError(t, err)

	require.NoError(t, container.Invoke(func(rootCmd *cobra.Command) {
		assert.NotEmpty(t, rootCmd.Commands())
	}))
}
