package cmd

import (
	"fmt"
	"net/netip"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/potkit/potview/internal/config"
	"github.com/potkit/potview/internal/errors"
)

var configCheck bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the merged system configuration",
	Long: `Show the pot system configuration after merging the defaults layer
with the local override layer. Fields missing from both layers, or whose
values failed to parse, are shown as (unset).`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configCheck, "check", false, "Exit non-zero if the configuration is incomplete")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	conf := loadSystemConf()

	if configCheck {
		if !conf.IsValid() {
			return errors.IncompleteConfig()
		}
		logInfo("system configuration is complete")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", config.KeyZFSRoot, orUnset(conf.ZFSRoot))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyFSRoot, orUnset(conf.FSRoot))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyNetwork, prefixOrUnset(conf.Network))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyNetmask, addrOrUnset(conf.Netmask))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyGateway, addrOrUnset(conf.Gateway))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyExtIf, orUnset(conf.ExtIf))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyDNSName, orUnset(conf.DNSName))
	fmt.Fprintf(w, "%s\t%s\n", config.KeyDNSIP, addrOrUnset(conf.DNSIP))
	if err := w.Flush(); err != nil {
		return err
	}

	if !conf.IsValid() {
		logWarning("system configuration is incomplete")
	}
	return nil
}

func orUnset(s *string) string {
	if s == nil {
		return "(unset)"
	}
	return *s
}

func addrOrUnset(a *netip.Addr) string {
	if a == nil {
		return "(unset)"
	}
	return a.String()
}

func prefixOrUnset(p *netip.Prefix) string {
	if p == nil {
		return "(unset)"
	}
	return p.String()
}
