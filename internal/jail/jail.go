// Package jail queries the live jail state of a pot host via jls(8).
package jail

import (
	"context"
	"os/exec"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/potkit/potview/internal/config"
	"github.com/potkit/potview/internal/errors"
	"github.com/potkit/potview/internal/logging"
	"github.com/potkit/potview/internal/pot"
)

// DefaultCommand is the host's jail-listing utility.
const DefaultCommand = "/usr/sbin/jls"

// Probe checks which jails are alive by invoking the jail-listing utility
// once per name and inspecting its exit status only.
type Probe struct {
	// Command is the jls binary to invoke.
	Command string
}

// NewProbe returns a probe using the host's default jls path.
func NewProbe() *Probe {
	return &Probe{Command: DefaultCommand}
}

// IsRunning reports whether the named jail is currently active. An unknown
// jail makes jls exit non-zero, which maps to false; failing to spawn jls at
// all is the only error.
func (p *Probe) IsRunning(ctx context.Context, name string) (bool, error) {
	logging.Debug("probing jail", "command", shellquote.Join(p.Command, "-j", name))

	cmd := exec.CommandContext(ctx, p.Command, "-j", name)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return false, nil
		}
		return false, errors.ProbeFailed(name, err)
	}
	return true, nil
}

// Running returns the names of the pots that are currently active. A pot
// whose probe fails is counted as not running and enumeration continues.
func (p *Probe) Running(ctx context.Context, sys *config.SystemConf) []string {
	var running []string
	for _, name := range pot.Names(sys) {
		ok, err := p.IsRunning(ctx, name)
		if err != nil {
			logging.Warn("jail probe failed", "pot", name, "error", err)
			continue
		}
		if ok {
			running = append(running, name)
		}
	}
	return running
}
