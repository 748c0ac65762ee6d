package cmd

import (
	"sort"

	"github.com/spf13/cobra"

	"github.com/potkit/potview/internal/errors"
	"github.com/potkit/potview/internal/pot"
	"github.com/potkit/potview/internal/tui"
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Interactively browse the pot inventory",
	Long: `Open an interactive picker over the resolved pot inventory and print
the network configuration of the selected pot.`,
	RunE: runPick,
}

func init() {
	rootCmd.AddCommand(pickCmd)
}

func runPick(cmd *cobra.Command, args []string) error {
	conf := loadSystemConf()
	if !conf.IsValid() {
		return errors.IncompleteConfig()
	}

	pots := pot.List(conf)
	if len(pots) == 0 {
		logInfo("No pots found")
		return nil
	}

	sort.Slice(pots, func(i, j int) bool { return pots[i].Name < pots[j].Name })

	probe := getProbe()
	ctx := cmd.Context()

	entries := make([]tui.PotEntry, len(pots))
	for i, p := range pots {
		running, err := probe.IsRunning(ctx, p.Name)
		if err != nil {
			logWarning("could not probe %s: %v", p.Name, err)
		}
		entries[i] = tui.PotEntry{Conf: p, Running: running}
	}

	entry, err := tui.RunPicker(entries)
	if err != nil {
		return err
	}
	if entry == nil {
		return nil
	}

	addr := "-"
	if entry.Conf.IPAddr != nil {
		addr = entry.Conf.IPAddr.String()
	}
	status := "stopped"
	if entry.Running {
		status = "running"
	}
	logInfo("%s: type=%s ip=%s status=%s", entry.Conf.Name, entry.Conf.NetworkType, addr, status)
	return nil
}
