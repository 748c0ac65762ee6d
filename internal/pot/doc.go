// Package pot enumerates the pots defined on a host and resolves each pot's
// network configuration.
//
// Every directory directly under <fs_root>/jails/ is one pot; its persisted
// settings live in conf/pot.conf inside that directory. Two generations of
// that file exist in the wild:
//
//   - the current schema carries a network_type key
//     (inherit, alias, public-bridge, private-bridge) plus an ip key for the
//     bridged types;
//   - the legacy schema carries ip4 (an address or the literal "inherit") and
//     a vnet flag.
//
// Resolve understands both, preferring the current schema when the
// network_type key is present. A pot whose configuration is absent or
// semantically incomplete is skipped rather than reported; a field that is
// present but does not parse as an address is a real error for that pot and
// is surfaced to the caller. List keeps enumerating either way.
package pot
