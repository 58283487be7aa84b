package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-logr/logr"
	"github.com/joho/godotenv"
)

// LaunchResult is the outcome of running the dashboard child process.
// Any termination, crashes and signal kills included, counts as a normal
// shutdown: the launcher supervises but never restarts.
type LaunchResult struct {
	Status ExitStatus
}

// BrowserOpener opens a URL in the user's browser.
type BrowserOpener interface {
	Open(url string) error
}

// Launch starts the dashboard entrypoint as a foreground child bound to the
// configured port and blocks until it terminates. There is no timeout: the
// child is a long-running service stopped by the user's interrupt or by
// closing the terminal. A non-nil error only means the child could not be
// started.
func Launch(ctx context.Context, executor Executor, opener BrowserOpener, cfg Config, rt RuntimeInfo, headless bool) (LaunchResult, error) {
	log := logr.FromContextOrDiscard(ctx)

	env, err := childEnvironment(cfg.EnvFile)
	if err != nil {
		return LaunchResult{}, err
	}

	if !headless {
		if err := opener.Open(cfg.DashboardURL()); err != nil {
			log.Info("could not open a browser, open the dashboard manually",
				"url", cfg.DashboardURL(), "reason", err.Error())
		}
	}

	log.Info("starting dashboard", "entrypoint", cfg.Entrypoint, "url", cfg.DashboardURL())

	status, err := executor.Run(ctx, env,
		rt.Command, "-m", "streamlit", "run", cfg.Entrypoint,
		"--server.port", strconv.Itoa(cfg.Port),
		"--server.headless", strconv.FormatBool(headless))
	if err != nil {
		return LaunchResult{}, fmt.Errorf("starting dashboard process: %w", err)
	}

	return LaunchResult{Status: status}, nil
}

// childEnvironment is the parent environment extended with the env file's
// values. Variables already set in the parent win, matching godotenv's
// non-overloading Load semantics. A missing env file is not an error.
func childEnvironment(envFile string) ([]string, error) {
	if envFile == "" {
		return nil, nil
	}

	fileEnv, err := godotenv.Read(envFile)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading env file %s: %w", envFile, err)
	}

	env := os.Environ()
	present := map[string]struct{}{}
	for _, kv := range env {
		if i := strings.IndexByte(kv, '='); i >= 0 {
			present[kv[:i]] = struct{}{}
		}
	}

	for k, v := range fileEnv {
		if _, ok := present[k]; ok {
			continue
		}
		env = append(env, k+"="+v)
	}

	return env, nil
}
