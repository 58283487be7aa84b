package cmd

import (
	"context"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/disiqueira/gotree"
	"github.com/go-logr/logr"

	"github.com/ykkai-w/DMR-ML-Pro/internal/packaging"
)

// NewInspect returns the service behind "dmrctl inspect".
func NewInspect(opts ...InspectOption) *Inspect {
	var cfg InspectConfig

	cfg.Option(opts...)
	cfg.Default()

	return &Inspect{cfg: cfg}
}

// Inspect renders the files a release would ship, without staging anything.
type Inspect struct {
	cfg InspectConfig
}

type InspectConfig struct {
	Log   logr.Logger
	Rules packaging.Rules
}

func (c *InspectConfig) Option(opts ...InspectOption) {
	for _, opt := range opts {
		opt.ConfigureInspect(c)
	}
}

func (c *InspectConfig) Default() {
	if c.Log.GetSink() == nil {
		c.Log = logr.Discard()
	}
	if len(c.Rules.Deletes) == 0 && len(c.Rules.Rewrites) == 0 {
		c.Rules = packaging.DefaultRules()
	}
}

type InspectOption interface {
	ConfigureInspect(*InspectConfig)
}

// RenderSource returns a tree view of the source paths that survive the
// sanitization rule set. It shares the rule evaluation with packaging, so
// the rendering and a cut release always agree.
func (i *Inspect) RenderSource(ctx context.Context, source string) (string, error) {
	i.cfg.Log.Info("previewing release contents", "source", source)

	preview, err := packaging.PreviewSource(source, i.cfg.Rules)
	if err != nil {
		return "", fmt.Errorf("previewing source tree: %w", err)
	}

	i.cfg.Log.V(1).Info("excluded from release", "paths", preview.Excluded)

	root := gotree.New(filepath.Base(filepath.Clean(source)))
	nodes := map[string]gotree.Tree{"": root}

	// Shipped is sorted, so a parent directory always precedes its
	// children.
	for _, p := range preview.Shipped {
		isDir := strings.HasSuffix(p, "/")
		clean := strings.TrimSuffix(p, "/")

		parent := path.Dir(clean)
		if parent == "." {
			parent = ""
		}

		node := nodes[parent].Add(path.Base(clean))
		if isDir {
			nodes[clean] = node
		}
	}

	return root.Print(), nil
}
