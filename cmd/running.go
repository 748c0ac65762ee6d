package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

var runningCmd = &cobra.Command{
	Use:   "running",
	Short: "List the names of running pots",
	Long: `Print the name of every pot whose jail is currently active, one per
line. Pots whose probe fails are counted as not running.`,
	RunE: runRunning,
}

func init() {
	rootCmd.AddCommand(runningCmd)
}

func runRunning(cmd *cobra.Command, args []string) error {
	conf := loadSystemConf()

	names := getProbe().Running(cmd.Context(), conf)
	if len(names) == 0 {
		logInfo("No running pots")
		return nil
	}

	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
