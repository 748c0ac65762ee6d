// Package config loads and merges the pot system configuration.
//
// # Configuration Layers
//
// The pot manager keeps its global settings in two sh-style KEY=value files:
//
//   - pot.default.conf: defaults shipped with the installation
//   - pot.conf: local overrides edited by the administrator
//
// Load reads both layers and merges the override onto the defaults. A layer
// that cannot be read contributes nothing; a field that fails to parse stays
// unset. Loading therefore never fails, but the result is only usable once
// IsValid reports that all eight fields are present.
//
// # Recognized Keys
//
//	POT_ZFS_ROOT   ZFS dataset holding pot images
//	POT_FS_ROOT    base directory with the bridges/ and jails/ subtrees
//	POT_EXTIF      external network interface
//	POT_NETWORK    internal pot network in CIDR form
//	POT_NETMASK    netmask of that network
//	POT_GATEWAY    gateway address for pots
//	POT_DNS_NAME   name of the pot acting as DNS resolver
//	POT_DNS_IP     address of that resolver
//
// # Parsing Rules
//
// Lines are trimmed and full-line # comments dropped. The value is whatever
// follows the first = up to the first space, which strips trailing inline
// comments but also truncates values containing spaces and keeps surrounding
// quote characters. These quirks match the pot shell scripts that write the
// files and are relied upon by existing installations.
package config
