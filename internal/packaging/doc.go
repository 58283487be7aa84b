// Package packaging produces a sanitized release archive of the dashboard
// application tree.
//
// A run stages a copy of the source tree, strips caches, secrets and
// subscriber data from it, rewrites the credential assignment in the
// configuration file to an environment-variable fallback and compresses the
// result into a single zip archive with one top-level directory. The
// staging directory is removed on every exit path, so a failed run never
// leaks a partially sanitized tree to disk.
package packaging
