package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/potkit/potview/internal/errors"
	"github.com/potkit/potview/internal/pot"
)

var psRunningOnly bool

var psCmd = &cobra.Command{
	Use:   "ps",
	Short: "List pots and their network configuration",
	RunE:  runPs,
}

func init() {
	psCmd.Flags().BoolVar(&psRunningOnly, "running", false, "Show only running pots")
	rootCmd.AddCommand(psCmd)
}

func runPs(cmd *cobra.Command, args []string) error {
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

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tTYPE\tIP\tSTATUS")

	for _, p := range pots {
		running, err := probe.IsRunning(ctx, p.Name)
		if err != nil {
			logWarning("could not probe %s: %v", p.Name, err)
		}
		if psRunningOnly && !running {
			continue
		}

		addr := "-"
		if p.IPAddr != nil {
			addr = p.IPAddr.String()
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Name, p.NetworkType, addr, formatStatus(running))
	}

	return w.Flush()
}

func formatStatus(running bool) string {
	if running {
		return "✓ running"
	}
	return "● stopped"
}
