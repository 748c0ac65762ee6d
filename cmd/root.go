package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/potkit/potview/internal/logging"
)

var (
	verbose    bool
	jsonOutput bool
	configDir  string
	fsRoot     string
)

var rootCmd = &cobra.Command{
	Use:   "potview",
	Short: "Read-only discovery of a pot jail host",
	Long: `potview inspects the configuration of a host running the pot jail
manager without changing anything on it.

It reads the layered system configuration, the bridge definitions under
<fs_root>/bridges/ and the pot directories under <fs_root>/jails/, and
queries jls(8) for the live state of each pot.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(verbose, jsonOutput, os.Stderr)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output logs in JSON format")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory holding pot.conf and pot.default.conf")
	rootCmd.PersistentFlags().StringVar(&fsRoot, "fs-root", "", "Override the POT_FS_ROOT of the loaded configuration")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Helper aliases for user-facing output (delegates to logging package)
var (
	logInfo    = logging.UserInfo
	logWarning = logging.UserWarning
)
