package packaging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

func TestZipArchiver(t *testing.T) {
	t.Parallel()

	staging := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(staging, "models"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "run.py"), []byte("print('hi')\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(staging, "models", "risk.py"), []byte("pass\n"), 0o644))

	dst := filepath.Join(t.TempDir(), "out.zip")

	count, err := packaging.ZipArchiver{}.Archive(dst, staging, "dmr_pro")
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	assert.Equal(t, []string{
		"dmr_pro/models/",
		"dmr_pro/models/risk.py",
		"dmr_pro/run.py",
	}, archiveNames(t, dst))
}

func TestZipArchiverUnwritableDestination(t *testing.T) {
	t.Parallel()

	_, err := packaging.ZipArchiver{}.Archive(
		filepath.Join(t.TempDir(), "missing", "out.zip"), t.TempDir(), "x")
	require.Error(t, err)
}
