package cmd

import (
	"context"

	"github.com/go-logr/logr"

	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

// NewRelease returns the service behind "dmrctl package".
func NewRelease(opts ...ReleaseOption) *Release {
	var cfg ReleaseConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Release{cfg: cfg}
}

// Release cuts a sanitized, shareable archive of the application tree.
type Release struct {
	cfg ReleaseConfig
}

type ReleaseConfig struct {
	Log      logr.Logger
	Rules    packaging.Rules
	Archiver packaging.Archiver
}

func (c *ReleaseConfig) Option(opts ...ReleaseOption) {
	for _, opt := range opts {
		opt.ConfigureRelease(c)
	}
}

func (c *ReleaseConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
	if len(c.Rules.Deletes) == 0 && len(c.Rules.Rewrites) == 0 {
		c.Rules = packaging.DefaultRules()
	}
	if c.Archiver == nil {
		c.Archiver = packaging.ZipArchiver{}
	}
}

type ReleaseOption interface {
	ConfigureRelease(*ReleaseConfig)
}

// PackageSource stages, sanitizes and archives the source tree under the
// given package name.
func (r *Release) PackageSource(ctx context.Context, source, name string, opts ...PackageSourceOption) (packaging.Result, error) {
	var cfg PackageSourceConfig

	cfg.Option(opts...)

	ctx = logr.NewContext(ctx, r.cfg.Log)

	return packaging.Package(ctx, source, name, packaging.Config{
		Rules:     r.cfg.Rules,
		OutputDir: cfg.OutputDir,
		Archiver:  r.cfg.Archiver,
	})
}

type PackageSourceConfig struct {
	OutputDir string
}

func (c *PackageSourceConfig) Option(opts ...PackageSourceOption) {
	for _, opt := range opts {
		opt.ConfigurePackageSource(c)
	}
}

type PackageSourceOption interface {
	ConfigurePackageSource(*PackageSourceConfig)
}
