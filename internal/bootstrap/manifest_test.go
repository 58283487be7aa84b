package bootstrap_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
)

func TestLoadManifest(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "requirements.txt")
	require.NoError(t, os.WriteFile(path, []byte(`# dashboard dependencies
streamlit>=1.28
pandas==2.1.1

tushare
scikit-learn~=1.3
--extra-index-url https://example.invalid/simple
plotly[express]>=5.0 ; python_version >= "3.8"
`), 0o644))

	manifest, err := bootstrap.LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, path, manifest.Path)
	assert.Equal(t, []string{
		"streamlit", "pandas", "tushare", "scikit-learn", "plotly",
	}, manifest.Packages)
}

func TestLoadManifestMissing(t *testing.T) {
	t.Parallel()

	_, err := bootstrap.LoadManifest(filepath.Join(t.TempDir(), "requirements.txt"))
	require.Error(t, err)
}
