package cmd

import (
	"testing"

	"github.com/go-logr/logr/testr"
	"github.com/stretchr/testify/assert"

	"github.com/ykkai-w/DMR-ML-Pro/internal/bootstrap"
	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

func TestWithLog(t *testing.T) {
	t.Parallel()

	log := testr.New(t)
	option := WithLog{Log: log}

	bootstrapConfig := &BootstrapConfig{}
	option.ConfigureBootstrap(bootstrapConfig)
	assert.Equal(t, log, bootstrapConfig.Log)

	releaseConfig := &ReleaseConfig{}
	option.ConfigureRelease(releaseConfig)
	assert.Equal(t, log, releaseConfig.Log)

	inspectConfig := &InspectConfig{}
	option.ConfigureInspect(inspectConfig)
	assert.Equal(t, log, inspectConfig.Log)
}

func TestWithExecutor_ConfigureBootstrap(t *testing.T) {
	t.Parallel()

	executor := &executorMock{}
	option := WithExecutor{Executor: executor}
	config := &BootstrapConfig{}

	option.ConfigureBootstrap(config)

	assert.Equal(t, executor, config.Executor)
}

func TestWithBrowserOpener_ConfigureBootstrap(t *testing.T) {
	t.Parallel()

	opener := &openerMock{}
	option := WithBrowserOpener{Opener: opener}
	config := &BootstrapConfig{}

	option.ConfigureBootstrap(config)

	assert.Equal(t, opener, config.Opener)
}

func TestWithRuntimeConfig_ConfigureBootstrap(t *testing.T) {
	t.Parallel()

	runtime := bootstrap.Config{Port: 9999}
	option := WithRuntimeConfig{Config: runtime}
	config := &BootstrapConfig{}

	option.ConfigureBootstrap(config)

	assert.Equal(t, 9999, config.Runtime.Port)
}

func TestWithRules(t *testing.T) {
	t.Parallel()

	rules := packaging.Rules{Deletes: []packaging.DeleteRule{packaging.NewDeleteRule("tmp")}}
	option := WithRules{Rules: rules}

	releaseConfig := &ReleaseConfig{}
	option.ConfigureRelease(releaseConfig)
	assert.Len(t, releaseConfig.Rules.Deletes, 1)

	inspectConfig := &InspectConfig{}
	option.ConfigureInspect(inspectConfig)
	assert.Len(t, inspectConfig.Rules.Deletes, 1)
}

func TestWithOutputDir_ConfigurePackageSource(t *testing.T) {
	t.Parallel()

	option := WithOutputDir("/some/dist")
	config := &PackageSourceConfig{}

	option.ConfigurePackageSource(config)

	assert.Equal(t, "/some/dist", config.OutputDir)
}

func TestWithArchiver_ConfigureRelease(t *testing.T) {
	t.Parallel()

	option := WithArchiver{Archiver: brokenArchiver{}}
	config := &ReleaseConfig{}

	option.ConfigureRelease(config)

	assert.Equal(t, brokenArchiver{}, config.Archiver)
}
