package bootstrap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Manifest is the declarative list of packages the dashboard requires,
// read once per run from a pip requirements file.
type Manifest struct {
	Path     string
	Packages []string
}

// LoadManifest reads a requirements file and extracts the ordered package
// identifiers. Version specifiers and environment markers are stripped for
// identification purposes only; installation always passes the file itself
// to pip untouched.
func LoadManifest(path string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open manifest %s: %w", path, err)
	}
	defer f.Close()

	manifest := Manifest{Path: path}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "-") {
			continue
		}

		manifest.Packages = append(manifest.Packages, packageIdentifier(line))
	}
	if err := scanner.Err(); err != nil {
		return Manifest{}, fmt.Errorf("read manifest %s: %w", path, err)
	}

	return manifest, nil
}

func packageIdentifier(line string) string {
	if i := strings.IndexAny(line, "=<>!~[; "); i >= 0 {
		line = line[:i]
	}

	return line
}
