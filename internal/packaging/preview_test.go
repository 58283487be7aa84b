package packaging_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

func TestPreviewSource(t *testing.T) {
	t.Parallel()

	source := writeSourceTree(t)

	preview, err := packaging.PreviewSource(source, packaging.DefaultRules())
	require.NoError(t, err)

	assert.Equal(t, []string{
		"app_dashboard.py",
		"config.py",
		"models/",
		"models/risk.py",
		"reports/",
		"reports/__init__.py",
		"requirements.txt",
		"run.py",
	}, preview.Shipped)

	assert.Equal(t, []string{
		".DS_Store",
		".env",
		"cache_dmr_pro",
		"models/__pycache__",
		"reports/.DS_Store",
		"subscribers.json",
	}, preview.Excluded)
}

func TestPreviewSourceMissing(t *testing.T) {
	t.Parallel()

	_, err := packaging.PreviewSource(t.TempDir()+"/nope", packaging.DefaultRules())
	require.Error(t, err)
}
