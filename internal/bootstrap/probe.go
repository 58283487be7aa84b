package bootstrap

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/go-logr/logr"
)

// RuntimeInfo describes the detected script-execution runtime.
type RuntimeInfo struct {
	// Command is the interpreter command that answered the version probe.
	Command string
	// Version is the trimmed output of the version command.
	Version string
}

// RuntimeMissingError reports that no runtime candidate answered the
// version probe. It is fatal: a language runtime cannot be auto-installed
// safely, so the caller must surface Remediation and terminate.
type RuntimeMissingError struct {
	Candidates     []string
	MinimumVersion string
}

func (e *RuntimeMissingError) Error() string {
	return fmt.Sprintf("no runtime found, tried: %s", strings.Join(e.Candidates, ", "))
}

// Remediation returns platform-specific install instructions.
func (e *RuntimeMissingError) Remediation() string {
	var hint string
	switch runtime.GOOS {
	case "darwin":
		hint = "brew install python3"
	case "windows":
		hint = "download the installer from https://www.python.org/downloads/"
	default:
		hint = "sudo apt install python3 python3-pip (or your distribution's equivalent)"
	}

	return fmt.Sprintf("install Python %s or newer: %s", e.MinimumVersion, hint)
}

// Probe determines whether a compatible runtime is installed by invoking
// each candidate's version command in order. The first candidate that
// starts and exits zero wins.
func Probe(ctx context.Context, executor Executor, cfg Config) (RuntimeInfo, error) {
	log := logr.FromContextOrDiscard(ctx)

	for _, candidate := range cfg.RuntimeCandidates {
		out, status, err := executor.Output(ctx, candidate, cfg.VersionArg)
		if err != nil || status.Code != 0 {
			log.V(1).Info("runtime candidate unavailable", "command", candidate)

			continue
		}

		info := RuntimeInfo{
			Command: candidate,
			Version: strings.TrimSpace(out),
		}
		log.Info("runtime detected", "command", info.Command, "version", info.Version)

		return info, nil
	}

	return RuntimeInfo{}, &RuntimeMissingError{
		Candidates:     cfg.RuntimeCandidates,
		MinimumVersion: cfg.MinimumVersion,
	}
}
