package packaging

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
)

// Preview computes which paths of a source tree would ship in a release,
// without touching the filesystem. Excluded reports the paths the delete
// rules would remove; Shipped is the remaining tree, sorted, directories
// carrying a trailing slash.
type Preview struct {
	Shipped  []string
	Excluded []string
}

// PreviewSource applies the rule set virtually to the source tree. It is
// the dry-run counterpart of Package: both derive from the same rules, so
// the preview and the final archive contents agree.
func PreviewSource(source string, rules Rules) (Preview, error) {
	var preview Preview

	walker := func(p string, entry fs.DirEntry, ioErr error) error {
		if ioErr != nil {
			return fmt.Errorf("access %s: %w", p, ioErr)
		}
		if p == source {
			return nil
		}

		rel, err := filepath.Rel(source, p)
		if err != nil {
			return err
		}
		relSlash := filepath.ToSlash(rel)

		if rules.Excluded(relSlash) {
			preview.Excluded = append(preview.Excluded, relSlash)
			if entry.IsDir() {
				return filepath.SkipDir
			}

			return nil
		}

		if entry.IsDir() {
			relSlash += "/"
		}
		preview.Shipped = append(preview.Shipped, relSlash)

		return nil
	}

	if err := filepath.WalkDir(source, walker); err != nil {
		return Preview{}, fmt.Errorf("walk source tree: %w", err)
	}

	sort.Strings(preview.Shipped)
	sort.Strings(preview.Excluded)

	return preview, nil
}
