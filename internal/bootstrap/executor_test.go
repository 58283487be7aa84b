package bootstrap_test

import (
	"context"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
)

func TestOSExecutorRun(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	ctx := context.Background()
	executor := bootstrap.NewOSExecutor()

	for name, tc := range map[string]struct {
		Script   string
		Expected bootstrap.ExitStatus
	}{
		"clean exit": {
			Script:   "exit 0",
			Expected: bootstrap.ExitStatus{Code: 0},
		},
		"non-zero exit": {
			Script:   "exit 3",
			Expected: bootstrap.ExitStatus{Code: 3},
		},
		"killed": {
			Script: "kill -9 $$",
			Expected: bootstrap.ExitStatus{
				Code:     137,
				Signaled: true,
				Signal:   "killed",
			},
		},
	} {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			status, err := executor.Run(ctx, nil, "sh", "-c", tc.Script)
			require.NoError(t, err)
			assert.Equal(t, tc.Expected, status)
		})
	}
}

func TestOSExecutorRunNotFound(t *testing.T) {
	t.Parallel()

	executor := bootstrap.NewOSExecutor()

	_, err := executor.Run(context.Background(), nil, "definitely-not-a-command-dmrctl")
	require.Error(t, err)
}

func TestOSExecutorOutput(t *testing.T) {
	t.Parallel()
	skipOnWindows(t)

	executor := bootstrap.NewOSExecutor()

	out, status, err := executor.Output(context.Background(), "sh", "-c", "echo chicken")
	require.NoError(t, err)
	assert.Equal(t, 0, status.Code)
	assert.Equal(t, "chicken", strings.TrimSpace(out))
}

func skipOnWindows(t *testing.T) {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
}
