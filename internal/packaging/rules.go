package packaging

import (
	"regexp"

	"github.com/gobwas/glob"
)

// DeleteRule marks paths that must not appear in a release. Patterns match
// slash-separated paths relative to the staged tree root, case-sensitive.
type DeleteRule struct {
	Pattern string

	compiled glob.Glob
}

// NewDeleteRule compiles a glob pattern with '/' as the separator, so "*"
// stays within one path segment and "**" crosses segments.
func NewDeleteRule(pattern string) DeleteRule {
	return DeleteRule{
		Pattern:  pattern,
		compiled: glob.MustCompile(pattern, '/'),
	}
}

// Matches reports whether the relative slash path is excluded.
func (r DeleteRule) Matches(relPath string) bool {
	return r.compiled.Match(relPath)
}

// RewriteRule replaces content in a single staged file. A missing target
// file skips the rule instead of failing the run.
type RewriteRule struct {
	// File is the target path relative to the staged tree root.
	File string
	// Pattern selects the content to replace.
	Pattern *regexp.Regexp
	// Replacement substitutes every match.
	Replacement string
}

// Rules is the fixed, ordered sanitization rule set applied to a staging
// tree.
type Rules struct {
	Deletes  []DeleteRule
	Rewrites []RewriteRule
}

// Excluded reports whether any delete rule matches the relative slash path.
func (r Rules) Excluded(relPath string) bool {
	for _, rule := range r.Deletes {
		if rule.Matches(relPath) {
			return true
		}
	}

	return false
}

var tokenAssignment = regexp.MustCompile(`(?m)^TOKEN\s*=\s*"[^"]*"`)

// DefaultRules returns the rule set for the shipped application: the local
// data cache, compiled bytecode, OS metadata, the subscriber list and local
// env files are stripped, and a literal API token assignment in config.py
// is replaced with a runtime environment lookup.
func DefaultRules() Rules {
	return Rules{
		Deletes: []DeleteRule{
			NewDeleteRule("cache_dmr_pro"),
			NewDeleteRule("__pycache__"),
			NewDeleteRule("**/__pycache__"),
			NewDeleteRule(".DS_Store"),
			NewDeleteRule("**/.DS_Store"),
			NewDeleteRule("subscribers.json"),
			NewDeleteRule(".env"),
		},
		Rewrites: []RewriteRule{
			{
				File:        "config.py",
				Pattern:     tokenAssignment,
				Replacement: `TOKEN = os.environ.get("TUSHARE_TOKEN", "")`,
			},
		},
	}
}
