package packaging

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/klauspost/compress/zip"
)

// Archiver compresses a staged tree into a single archive file. It is an
// interface so tests can force archive failures without breaking the
// filesystem underneath the packager.
type Archiver interface {
	// Archive writes the staging directory's contents to dst, nested under
	// a single top-level directory named topLevel. It returns the number
	// of files written.
	Archive(dst, staging, topLevel string) (int, error)
}

// ZipArchiver writes deflate-compressed zip archives.
type ZipArchiver struct{}

func (ZipArchiver) Archive(dst, staging, topLevel string) (int, error) {
	out, err := os.Create(dst)
	if err != nil {
		return 0, fmt.Errorf("create archive %s: %w", dst, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)
	count := 0

	walker := func(p string, entry fs.DirEntry, ioErr error) error {
		if ioErr != nil {
			return fmt.Errorf("access %s: %w", p, ioErr)
		}
		if p == staging {
			return nil
		}

		rel, err := filepath.Rel(staging, p)
		if err != nil {
			return err
		}
		name := path.Join(topLevel, filepath.ToSlash(rel))

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", p, err)
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return fmt.Errorf("header for %s: %w", rel, err)
		}
		header.Name = name
		header.Method = zip.Deflate

		if entry.IsDir() {
			header.Name += "/"
			if _, err := zw.CreateHeader(header); err != nil {
				return fmt.Errorf("add directory %s: %w", rel, err)
			}

			return nil
		}

		w, err := zw.CreateHeader(header)
		if err != nil {
			return fmt.Errorf("add file %s: %w", rel, err)
		}

		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("open %s: %w", p, err)
		}
		defer f.Close()

		if _, err := io.Copy(w, f); err != nil {
			return fmt.Errorf("compress %s: %w", rel, err)
		}
		count++

		return nil
	}

	if err := filepath.WalkDir(staging, walker); err != nil {
		return 0, err
	}

	if err := zw.Close(); err != nil {
		return 0, fmt.Errorf("finalize archive: %w", err)
	}

	return count, out.Close()
}
