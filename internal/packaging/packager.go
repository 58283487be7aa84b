package packaging

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/go-logr/logr"
)

// Stage identifies the packaging pipeline step an error occurred in.
type Stage string

const (
	StageStage    Stage = "stage"
	StageCopy     Stage = "copy"
	StageSanitize Stage = "sanitize"
	StageRewrite  Stage = "rewrite"
	StageArchive  Stage = "archive"
)

// Error wraps a pipeline failure with the stage it happened in, so the
// final report can name exactly what went wrong.
type Error struct {
	Stage Stage
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func stageError(stage Stage, err error) *Error {
	return &Error{Stage: stage, Err: err}
}

// Result describes a completed packaging run.
type Result struct {
	ArchivePath string
	Size        int64
	FileCount   int
}

// Config carries the fixed values of a packaging run.
type Config struct {
	// Rules is the sanitization rule set applied to the staged tree.
	Rules Rules
	// OutputDir holds the transient staging directory and the final
	// archive. Relative paths resolve against the working directory.
	OutputDir string
	// Archiver compresses the staged tree.
	Archiver Archiver
}

// Default fills unset fields.
func (c *Config) Default() {
	if len(c.Rules.Deletes) == 0 && len(c.Rules.Rewrites) == 0 {
		c.Rules = DefaultRules()
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}
	if c.Archiver == nil {
		c.Archiver = ZipArchiver{}
	}
}

// Package copies the source tree into a staging directory named after the
// package, sanitizes and rewrites it and compresses it into
// "{name}.zip". The stages run strictly in order and any failure aborts
// the rest, except cleanup of the staging directory, which is guaranteed
// on all exit paths.
func Package(ctx context.Context, source, name string, cfg Config) (Result, error) {
	cfg.Default()
	log := logr.FromContextOrDiscard(ctx)

	staging := filepath.Join(cfg.OutputDir, name)
	archivePath := filepath.Join(cfg.OutputDir, name+".zip")

	log.Info("staging release", "source", source, "staging", staging)

	if err := os.RemoveAll(staging); err != nil {
		return Result{}, stageError(StageStage, fmt.Errorf("removing stale staging dir: %w", err))
	}
	if err := os.MkdirAll(staging, 0o755); err != nil {
		return Result{}, stageError(StageStage, fmt.Errorf("creating staging dir: %w", err))
	}
	defer func() {
		// The staging tree must never outlive the run, even when a later
		// stage failed: it may still hold a partially sanitized copy.
		if err := os.RemoveAll(staging); err != nil {
			log.Info("could not remove staging dir", "path", staging, "reason", err.Error())
		}
	}()

	if err := copyTree(source, staging, archivePath); err != nil {
		return Result{}, stageError(StageCopy, err)
	}

	if err := sanitize(ctx, staging, cfg.Rules.Deletes); err != nil {
		return Result{}, stageError(StageSanitize, err)
	}

	if err := rewrite(ctx, staging, cfg.Rules.Rewrites); err != nil {
		return Result{}, stageError(StageRewrite, err)
	}

	log.Info("compressing release", "archive", archivePath)

	count, err := cfg.Archiver.Archive(archivePath, staging, name)
	if err != nil {
		return Result{}, stageError(StageArchive, err)
	}

	info, err := os.Stat(archivePath)
	if err != nil {
		return Result{}, stageError(StageArchive, fmt.Errorf("archive not produced: %w", err))
	}

	return Result{
		ArchivePath: archivePath,
		Size:        info.Size(),
		FileCount:   count,
	}, nil
}

// copyTree recursively copies source into staging, preserving relative
// structure and file modes. The staging directory and the archive path are
// skipped so nesting the output location inside the source cannot recurse.
func copyTree(source, staging, archivePath string) error {
	absStaging, err := filepath.Abs(staging)
	if err != nil {
		return err
	}
	absArchive, err := filepath.Abs(archivePath)
	if err != nil {
		return err
	}

	walker := func(srcPath string, entry fs.DirEntry, ioErr error) error {
		if ioErr != nil {
			return fmt.Errorf("access %s: %w", srcPath, ioErr)
		}

		abs, err := filepath.Abs(srcPath)
		if err != nil {
			return err
		}
		if abs == absStaging || abs == absArchive {
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		rel, err := filepath.Rel(source, srcPath)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		dst := filepath.Join(staging, rel)

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", srcPath, err)
		}

		if entry.IsDir() {
			return os.MkdirAll(dst, info.Mode().Perm())
		}

		return copyFile(srcPath, dst, info.Mode().Perm())
	}

	if err := filepath.WalkDir(source, walker); err != nil {
		return fmt.Errorf("walk source tree: %w", err)
	}

	return nil
}

func copyFile(src, dst string, perm fs.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()

		return fmt.Errorf("copy %s: %w", src, err)
	}

	return out.Close()
}

// sanitize deletes every staged path matching a delete rule. Deleting a
// path that does not exist is not an error, so repeated runs are
// idempotent.
func sanitize(ctx context.Context, staging string, rules []DeleteRule) error {
	log := logr.FromContextOrDiscard(ctx).V(1)

	walker := func(path string, entry fs.DirEntry, ioErr error) error {
		if ioErr != nil {
			if os.IsNotExist(ioErr) {
				return nil
			}

			return fmt.Errorf("access %s: %w", path, ioErr)
		}
		if path == staging {
			return nil
		}

		rel, err := filepath.Rel(staging, path)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		for _, rule := range rules {
			if !rule.Matches(relSlash) {
				continue
			}

			log.Info("removing excluded path", "path", relSlash, "pattern", rule.Pattern)
			if err := os.RemoveAll(path); err != nil {
				return fmt.Errorf("remove %s: %w", path, err)
			}
			if entry.IsDir() {
				return filepath.SkipDir
			}

			break
		}

		return nil
	}

	if err := filepath.WalkDir(staging, walker); err != nil {
		return fmt.Errorf("walk staging tree: %w", err)
	}

	return nil
}

// rewrite applies every rewrite rule to its staged target file. A missing
// target is a skip, not a failure.
func rewrite(ctx context.Context, staging string, rules []RewriteRule) error {
	log := logr.FromContextOrDiscard(ctx).V(1)

	for _, rule := range rules {
		target := filepath.Join(staging, filepath.FromSlash(rule.File))

		info, err := os.Stat(target)
		if os.IsNotExist(err) {
			log.Info("rewrite target not staged, skipping", "file", rule.File)

			continue
		}
		if err != nil {
			return fmt.Errorf("stat %s: %w", rule.File, err)
		}

		content, err := os.ReadFile(target)
		if err != nil {
			return fmt.Errorf("read %s: %w", rule.File, err)
		}

		rewritten := rule.Pattern.ReplaceAll(content, []byte(rule.Replacement))
		if err := os.WriteFile(target, rewritten, info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", rule.File, err)
		}

		log.Info("rewrote credential assignment", "file", rule.File)
	}

	return nil
}
