package pot

import (
	"net/netip"
	"os"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/potkit/potview/internal/config"
	"github.com/potkit/potview/internal/errors"
	"github.com/potkit/potview/internal/logging"
)

// NetType is a pot's networking mode.
type NetType string

const (
	NetTypeInherit       NetType = "inherit"
	NetTypeAlias         NetType = "alias"
	NetTypePublicBridge  NetType = "public-bridge"
	NetTypePrivateBridge NetType = "private-bridge"
)

// ParseNetType maps a network_type value to its NetType. The second return
// value reports whether the string names a known mode.
func ParseNetType(s string) (NetType, bool) {
	switch NetType(s) {
	case NetTypeInherit, NetTypeAlias, NetTypePublicBridge, NetTypePrivateBridge:
		return NetType(s), true
	}
	return "", false
}

// Conf is a pot's resolved network configuration. IPAddr is nil for pots
// that inherit the host network.
type Conf struct {
	Name        string
	IPAddr      *netip.Addr
	NetworkType NetType
}

// verbatim holds the raw pot.conf values before schema resolution.
type verbatim struct {
	vnet        *string
	ip4         *string
	ip          *string
	networkType *string
}

// parseVerbatim reads the raw keys out of pot.conf text. Unlike the system
// and bridge files, values here keep the full remainder after the first =
// with no whitespace truncation; the file is machine-written and carries no
// inline comments.
func parseVerbatim(text string) verbatim {
	var vb verbatim
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSuffix(raw, "\r")
		if v, ok := strings.CutPrefix(line, "vnet="); ok {
			vb.vnet = &v
		}
		if v, ok := strings.CutPrefix(line, "ip4="); ok {
			vb.ip4 = &v
		}
		if v, ok := strings.CutPrefix(line, "ip="); ok {
			vb.ip = &v
		}
		if v, ok := strings.CutPrefix(line, "network_type="); ok {
			vb.networkType = &v
		}
	}
	return vb
}

// Names returns the directory basenames of every pot directly under the
// jails directory. Order is whatever the filesystem enumeration yields.
func Names(sys *config.SystemConf) []string {
	if sys.FSRoot == nil {
		return nil
	}
	dir := filepath.Join(*sys.FSRoot, "jails")
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debug("jails directory not readable", "dir", dir, "error", err)
		return nil
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			names = append(names, entry.Name())
		}
	}
	return names
}

// Resolve reads and interprets a pot's persisted configuration. A nil Conf
// with a nil error means the pot has no usable configuration and should be
// skipped; a non-nil error means the configuration is present but corrupt.
func Resolve(name string, sys *config.SystemConf) (*Conf, error) {
	if sys.FSRoot == nil {
		return nil, nil
	}
	// The pot name came from a directory listing in the normal case, but
	// callers can pass arbitrary names; keep the lookup inside fs_root.
	path, err := securejoin.SecureJoin(*sys.FSRoot, filepath.Join("jails", name, "conf", "pot.conf"))
	if err != nil {
		logging.Debug("rejecting pot name", "pot", name, "error", err)
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("pot configuration not readable", "pot", name, "path", path, "error", err)
		return nil, nil
	}
	return resolve(name, string(data))
}

func resolve(name, text string) (*Conf, error) {
	vb := parseVerbatim(text)
	conf := &Conf{Name: name, NetworkType: NetTypeInherit}

	switch {
	case vb.networkType != nil:
		nt, ok := ParseNetType(*vb.networkType)
		if !ok {
			logging.Debug("unrecognized network type", "pot", name, "value", *vb.networkType)
			return nil, nil
		}
		if nt == NetTypeAlias {
			// Alias pots hold addresses on the host interface, not an
			// inventory entry of their own.
			return nil, nil
		}
		conf.NetworkType = nt
		if nt == NetTypePublicBridge || nt == NetTypePrivateBridge {
			if vb.ip == nil {
				return nil, nil
			}
			addr, err := netip.ParseAddr(*vb.ip)
			if err != nil {
				return nil, errors.InvalidAddress(name, "ip", *vb.ip)
			}
			conf.IPAddr = &addr
		}

	case vb.ip4 != nil:
		// Legacy schema, written by pot releases that predate network_type.
		if *vb.ip4 == "inherit" {
			conf.NetworkType = NetTypeInherit
			return conf, nil
		}
		addr, err := netip.ParseAddr(*vb.ip4)
		if err != nil {
			return nil, errors.InvalidAddress(name, "ip4", *vb.ip4)
		}
		conf.IPAddr = &addr
		if vb.vnet == nil {
			return nil, nil
		}
		if *vb.vnet == "true" {
			conf.NetworkType = NetTypePublicBridge
		} else {
			conf.NetworkType = NetTypeAlias
		}

	default:
		return nil, nil
	}

	return conf, nil
}

// List resolves the configuration of every pot under the jails directory.
// Pots without a usable configuration are skipped; pots with a corrupt one
// are reported and skipped. The result is empty when the system
// configuration itself is incomplete.
func List(sys *config.SystemConf) []Conf {
	if !sys.IsValid() {
		return nil
	}

	var pots []Conf
	for _, name := range Names(sys) {
		conf, err := Resolve(name, sys)
		if err != nil {
			logging.Warn("skipping pot with corrupt configuration", "pot", name, "error", err)
			continue
		}
		if conf == nil {
			continue
		}
		pots = append(pots, *conf)
	}
	return pots
}
