package cmd

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/pkg/browser"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
)

// NewBootstrap returns the service behind "dmrctl up".
func NewBootstrap(opts ...BootstrapOption) *Bootstrap {
	var cfg BootstrapConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Bootstrap{cfg: cfg}
}

// Bootstrap runs the three gated stages of making a machine serve the
// dashboard: runtime probe, dependency resolution, foreground launch.
type Bootstrap struct {
	cfg BootstrapConfig
}

type BootstrapConfig struct {
	Log      logr.Logger
	Executor bootstrap.Executor
	Opener   bootstrap.BrowserOpener
	Runtime  bootstrap.Config
}

func (c *BootstrapConfig) Option(opts ...BootstrapOption) {
	for _, opt := range opts {
		opt.ConfigureBootstrap(c)
	}
}

func (c *BootstrapConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
	if c.Executor == nil {
		c.Executor = bootstrap.NewOSExecutor()
	}
	if c.Opener == nil {
		c.Opener = systemBrowser{}
	}
	c.Runtime.Default()
}

type BootstrapOption interface {
	ConfigureBootstrap(*BootstrapConfig)
}

// Up runs probe, ensure and launch in order, each stage gating the next,
// and blocks until the dashboard child process terminates. Child exit for
// any reason is a normal shutdown, not an error.
func (b *Bootstrap) Up(ctx context.Context, headless bool) (bootstrap.LaunchResult, error) {
	ctx = logr.NewContext(ctx, b.cfg.Log)

	rt, err := bootstrap.Probe(ctx, b.cfg.Executor, b.cfg.Runtime)
	if err != nil {
		return bootstrap.LaunchResult{}, fmt.Errorf("probing runtime: %w", err)
	}

	manifest, err := bootstrap.LoadManifest(b.cfg.Runtime.ManifestPath)
	if err != nil {
		return bootstrap.LaunchResult{}, fmt.Errorf("loading manifest: %w", err)
	}

	if err := bootstrap.Ensure(ctx, b.cfg.Executor, b.cfg.Runtime, rt, manifest); err != nil {
		return bootstrap.LaunchResult{}, fmt.Errorf("resolving dependencies: %w", err)
	}

	result, err := bootstrap.Launch(ctx, b.cfg.Executor, b.cfg.Opener, b.cfg.Runtime, rt, headless)
	if err != nil {
		return bootstrap.LaunchResult{}, fmt.Errorf("launching dashboard: %w", err)
	}

	b.cfg.Log.Info("dashboard stopped",
		"code", result.Status.Code, "signaled", result.Status.Signaled)

	return result, nil
}

type systemBrowser struct{}

func (systemBrowser) Open(url string) error {
	return browser.OpenURL(url)
}
