package cmd

import (
	"github.com/go-logr/logr"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

type WithLog struct{ Log logr.Logger }

func (w WithLog) ConfigureBootstrap(c *BootstrapConfig) {
	c.Log = w.Log
}

func (w WithLog) ConfigureRelease(c *ReleaseConfig) {
	c.Log = w.Log
}

func (w WithLog) ConfigureInspect(c *InspectConfig) {
	c.Log = w.Log
}

type WithExecutor struct{ Executor bootstrap.Executor }

func (w WithExecutor) ConfigureBootstrap(c *BootstrapConfig) {
	c.Executor = w.Executor
}

type WithBrowserOpener struct{ Opener bootstrap.BrowserOpener }

func (w WithBrowserOpener) ConfigureBootstrap(c *BootstrapConfig) {
	c.Opener = w.Opener
}

type WithRuntimeConfig struct{ Config bootstrap.Config }

func (w WithRuntimeConfig) ConfigureBootstrap(c *BootstrapConfig) {
	c.Runtime = w.Config
}

type WithRules struct{ Rules packaging.Rules }

func (w WithRules) ConfigureRelease(c *ReleaseConfig) {
	c.Rules = w.Rules
}

func (w WithRules) ConfigureInspect(c *InspectConfig) {
	c.Rules = w.Rules
}

type WithOutputDir string

func (w WithOutputDir) ConfigurePackageSource(c *PackageSourceConfig) {
	c.OutputDir = string(w)
}

type WithArchiver struct{ Archiver packaging.Archiver }

func (w WithArchiver) ConfigureRelease(c *ReleaseConfig) {
	c.Archiver = w.Archiver
}
