package bootstrap

import "fmt"

// Config carries every fixed value the bootstrap pipeline depends on.
// Components receive it explicitly so tests can substitute alternates;
// nothing in this package reads ambient globals.
type Config struct {
	// RuntimeCandidates are interpreter commands tried in order by Probe.
	RuntimeCandidates []string
	// VersionArg is passed to a candidate to check for its presence.
	VersionArg string
	// MinimumVersion is the runtime version named in remediation text.
	MinimumVersion string
	// ManifestPath is the dependency manifest consumed by pip.
	ManifestPath string
	// Sentinel is the import checked to decide whether the full manifest
	// is assumed satisfied.
	Sentinel string
	// Entrypoint is the dashboard application script.
	Entrypoint string
	// Port is the fixed local port the dashboard binds to.
	Port int
	// EnvFile is loaded into the child environment when present.
	EnvFile string
}

// Default fills unset fields with the values of the shipped application.
func (c *Config) Default() {
	if len(c.RuntimeCandidates) == 0 {
		c.RuntimeCandidates = []string{"python3", "python"}
	}
	if c.VersionArg == "" {
		c.VersionArg = "--version"
	}
	if c.MinimumVersion == "" {
		c.MinimumVersion = "3.8"
	}
	if c.ManifestPath == "" {
		c.ManifestPath = "requirements.txt"
	}
	if c.Sentinel == "" {
		c.Sentinel = "streamlit"
	}
	if c.Entrypoint == "" {
		c.Entrypoint = "app_dashboard.py"
	}
	if c.Port == 0 {
		c.Port = 8501
	}
	if c.EnvFile == "" {
		c.EnvFile = ".env"
	}
}

// DashboardURL is the address the launched dashboard serves on.
func (c Config) DashboardURL() string {
	return fmt.Sprintf("http://localhost:%d", c.Port)
}
