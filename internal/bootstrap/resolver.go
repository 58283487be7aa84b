package bootstrap

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
)

// InstallFailedError reports a non-zero package manager exit. It carries
// the exact manual command to re-run, because network or permission
// failures need human intervention, not a blind retry.
type InstallFailedError struct {
	Runtime      RuntimeInfo
	ManifestPath string
	Status       ExitStatus
}

func (e *InstallFailedError) Error() string {
	return fmt.Sprintf("dependency install exited with code %d", e.Status.Code)
}

// Remediation returns the manual install command.
func (e *InstallFailedError) Remediation() string {
	return fmt.Sprintf("run manually: %s -m pip install -r %s", e.Runtime.Command, e.ManifestPath)
}

// Ensure makes the manifest's packages importable. A single sentinel import
// stands in for the whole manifest: if it succeeds the full manifest is
// assumed satisfied and pip is not invoked at all. This trades completeness
// for speed and can under-detect missing transitive packages.
func Ensure(ctx context.Context, executor Executor, cfg Config, rt RuntimeInfo, manifest Manifest) error {
	log := logr.FromContextOrDiscard(ctx)

	_, status, err := executor.Output(ctx, rt.Command, "-c", fmt.Sprintf("import %s", cfg.Sentinel))
	if err == nil && status.Code == 0 {
		log.V(1).Info("sentinel import succeeded, assuming manifest satisfied",
			"sentinel", cfg.Sentinel, "packages", len(manifest.Packages))

		return nil
	}

	log.Info("installing dependencies", "manifest", manifest.Path, "packages", len(manifest.Packages))

	// --quiet keeps pip's progress output down; errors still reach stderr.
	status, err = executor.Run(ctx, nil,
		rt.Command, "-m", "pip", "install", "-r", manifest.Path, "--quiet")
	if err != nil {
		return fmt.Errorf("invoking pip: %w", err)
	}
	if status.Code != 0 {
		return &InstallFailedError{
			Runtime:      rt,
			ManifestPath: manifest.Path,
			Status:       status,
		}
	}

	return nil
}
