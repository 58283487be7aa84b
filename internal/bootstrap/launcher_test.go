package bootstrap_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
)

var launchArgs = []string{
	"-m", "streamlit", "run", "app_dashboard.py",
	"--server.port", "8501",
	"--server.headless", "true",
}

func TestLaunchHeadless(t *testing.T) {
	t.Parallel()

	executor := &executorMock{}
	executor.
		On("Run", mock.Anything, mock.Anything, "python3", launchArgs).
		Return(bootstrap.ExitStatus{Code: 0}, nil)
	opener := &openerMock{}

	cfg := testConfig()
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env") // absent

	result, err := bootstrap.Launch(context.Background(), executor, opener, cfg, testRuntime, true)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Status.Code)
	opener.AssertNotCalled(t, "Open", mock.Anything)
}

func TestLaunchOpensBrowser(t *testing.T) {
	t.Parallel()

	executor := &executorMock{}
	executor.
		On("Run", mock.Anything, mock.Anything, "python3", mock.Anything).
		Return(bootstrap.ExitStatus{Code: 0}, nil)
	opener := &openerMock{}
	opener.On("Open", "http://localhost:8501").Return(nil)

	cfg := testConfig()
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env")

	_, err := bootstrap.Launch(context.Background(), executor, opener, cfg, testRuntime, false)
	require.NoError(t, err)
	opener.AssertExpectations(t)
}

func TestLaunchBrowserFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	executor := &executorMock{}
	executor.
		On("Run", mock.Anything, mock.Anything, "python3", mock.Anything).
		Return(bootstrap.ExitStatus{Code: 0}, nil)
	opener := &openerMock{}
	opener.On("Open", mock.Anything).Return(errors.New("no display"))

	cfg := testConfig()
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env")

	_, err := bootstrap.Launch(context.Background(), executor, opener, cfg, testRuntime, false)
	require.NoError(t, err)
}

func TestLaunchKilledChildIsNormalShutdown(t *testing.T) {
	t.Parallel()

	executor := &executorMock{}
	executor.
		On("Run", mock.Anything, mock.Anything, "python3", mock.Anything).
		Return(bootstrap.ExitStatus{Code: 137, Signaled: true, Signal: "killed"}, nil)
	opener := &openerMock{}

	cfg := testConfig()
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env")

	result, err := bootstrap.Launch(context.Background(), executor, opener, cfg, testRuntime, true)
	require.NoError(t, err)
	assert.True(t, result.Status.Signaled)
	assert.Equal(t, 137, result.Status.Code)
}

func TestLaunchPassesEnvFile(t *testing.T) {
	t.Parallel()

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TUSHARE_TOKEN=abc123\n"), 0o600))

	var childEnv []string

	executor := &executorMock{}
	executor.
		On("Run", mock.Anything, mock.Anything, "python3", mock.Anything).
		Run(func(args mock.Arguments) {
			childEnv = args.Get(1).([]string)
		}).
		Return(bootstrap.ExitStatus{Code: 0}, nil)
	opener := &openerMock{}

	cfg := testConfig()
	cfg.EnvFile = envFile

	_, err := bootstrap.Launch(context.Background(), executor, opener, cfg, testRuntime, true)
	require.NoError(t, err)
	assert.Contains(t, childEnv, "TUSHARE_TOKEN=abc123")
}

func TestLaunchStartFailure(t *testing.T) {
	t.Parallel()

	executor := &executorMock{}
	executor.
		On("Run", mock.Anything, mock.Anything, "python3", mock.Anything).
		Return(bootstrap.ExitStatus{Code: -1}, errors.New("executable file not found"))
	opener := &openerMock{}

	cfg := testConfig()
	cfg.EnvFile = filepath.Join(t.TempDir(), ".env")

	_, err := bootstrap.Launch(context.Background(), executor, opener, cfg, testRuntime, true)
	require.Error(t, err)
}
