// Package bootstrap prepares a machine to run the DMR-ML Pro dashboard.
//
// It probes for a compatible Python runtime, ensures the packages listed in
// the dependency manifest are installed and launches the dashboard as a
// blocking foreground child process. The three stages are strictly
// sequential and every failure is fatal: nothing in here retries, because
// every failure mode (missing interpreter, network-dependent install,
// disk I/O) needs a human, not a loop.
package bootstrap
