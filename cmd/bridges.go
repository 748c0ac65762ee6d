package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/potkit/potview/internal/bridge"
)

var bridgesCmd = &cobra.Command{
	Use:   "bridges",
	Short: "List the bridge definitions",
	Long: `List every valid bridge definition found under <fs_root>/bridges/.
Files that cannot be read or do not validate are skipped.`,
	RunE: runBridges,
}

func init() {
	rootCmd.AddCommand(bridgesCmd)
}

func runBridges(cmd *cobra.Command, args []string) error {
	conf := loadSystemConf()

	bridges := bridge.List(conf)
	if len(bridges) == 0 {
		logInfo("No bridge definitions found")
		return nil
	}

	sort.Slice(bridges, func(i, j int) bool { return bridges[i].Name < bridges[j].Name })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNETWORK\tGATEWAY")
	for _, b := range bridges {
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.Network, b.Gateway)
	}
	return w.Flush()
}
