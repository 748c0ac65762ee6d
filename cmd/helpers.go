package cmd

import (
	"github.com/potkit/potview/internal/config"
	"github.com/potkit/potview/internal/jail"
)

// loadSystemConf builds the system configuration from the configured layers
// and applies command-line overrides. The result is not necessarily valid;
// commands that need a complete configuration must check IsValid themselves.
func loadSystemConf() *config.SystemConf {
	paths := config.DefaultPaths()
	if configDir != "" {
		paths = config.PathsIn(configDir)
	}

	conf := config.Load(paths)
	if fsRoot != "" {
		root := fsRoot
		conf.FSRoot = &root
	}
	return conf
}

// getProbe returns the run-state probe for the host.
func getProbe() *jail.Probe {
	return jail.NewProbe()
}
