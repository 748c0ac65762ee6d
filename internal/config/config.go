package config

import (
	"net/netip"
	"os"
	"path/filepath"

	"github.com/potkit/potview/internal/logging"
)

const (
	DefaultConfigDir = "/usr/local/etc/pot"

	// DefaultConfName is the defaults layer shipped with the installation.
	DefaultConfName = "pot.default.conf"

	// OverrideConfName is the layer edited by the administrator.
	OverrideConfName = "pot.conf"
)

// Recognized keys of the system configuration files.
const (
	KeyZFSRoot = "POT_ZFS_ROOT"
	KeyFSRoot  = "POT_FS_ROOT"
	KeyExtIf   = "POT_EXTIF"
	KeyDNSName = "POT_DNS_NAME"
	KeyNetwork = "POT_NETWORK"
	KeyNetmask = "POT_NETMASK"
	KeyGateway = "POT_GATEWAY"
	KeyDNSIP   = "POT_DNS_IP"
)

var systemKeys = []string{
	KeyZFSRoot,
	KeyFSRoot,
	KeyExtIf,
	KeyDNSName,
	KeyNetwork,
	KeyNetmask,
	KeyGateway,
	KeyDNSIP,
}

// Paths locates the configuration layers on the host.
type Paths struct {
	ConfigDir    string
	DefaultConf  string
	OverrideConf string
}

// DefaultPaths returns the default path configuration.
func DefaultPaths() *Paths {
	return PathsIn(DefaultConfigDir)
}

// PathsIn returns the path configuration rooted at configDir.
func PathsIn(configDir string) *Paths {
	return &Paths{
		ConfigDir:    configDir,
		DefaultConf:  filepath.Join(configDir, DefaultConfName),
		OverrideConf: filepath.Join(configDir, OverrideConfName),
	}
}

// SystemConf is the global pot configuration. A nil field means the key was
// missing from both layers or its value did not parse.
type SystemConf struct {
	ZFSRoot *string
	FSRoot  *string
	Network *netip.Prefix
	Netmask *netip.Addr
	Gateway *netip.Addr
	ExtIf   *string
	DNSName *string
	DNSIP   *netip.Addr
}

// Parse builds a SystemConf from one layer of KEY=value text. It never fails:
// unrecognized keys are ignored and values that do not parse into their typed
// field leave the field unset.
func Parse(text string) *SystemConf {
	values := ParseKVLines(text, systemKeys)
	conf := &SystemConf{}
	conf.ZFSRoot = stringValue(values, KeyZFSRoot)
	conf.FSRoot = stringValue(values, KeyFSRoot)
	conf.ExtIf = stringValue(values, KeyExtIf)
	conf.DNSName = stringValue(values, KeyDNSName)
	conf.Network = prefixValue(values, KeyNetwork)
	conf.Netmask = addrValue(values, KeyNetmask)
	conf.Gateway = addrValue(values, KeyGateway)
	conf.DNSIP = addrValue(values, KeyDNSIP)
	return conf
}

func stringValue(values map[string]string, key string) *string {
	if v, ok := values[key]; ok {
		return &v
	}
	return nil
}

func addrValue(values map[string]string, key string) *netip.Addr {
	v, ok := values[key]
	if !ok {
		return nil
	}
	addr, err := netip.ParseAddr(v)
	if err != nil {
		return nil
	}
	return &addr
}

func prefixValue(values map[string]string, key string) *netip.Prefix {
	v, ok := values[key]
	if !ok {
		return nil
	}
	prefix, err := netip.ParsePrefix(v)
	if err != nil {
		return nil
	}
	return &prefix
}

// Merge overlays rhs onto c. Every field present on rhs replaces the
// corresponding field of c; absent rhs fields leave c untouched.
func (c *SystemConf) Merge(rhs *SystemConf) {
	if rhs.ZFSRoot != nil {
		c.ZFSRoot = rhs.ZFSRoot
	}
	if rhs.FSRoot != nil {
		c.FSRoot = rhs.FSRoot
	}
	if rhs.Network != nil {
		c.Network = rhs.Network
	}
	if rhs.Netmask != nil {
		c.Netmask = rhs.Netmask
	}
	if rhs.Gateway != nil {
		c.Gateway = rhs.Gateway
	}
	if rhs.ExtIf != nil {
		c.ExtIf = rhs.ExtIf
	}
	if rhs.DNSName != nil {
		c.DNSName = rhs.DNSName
	}
	if rhs.DNSIP != nil {
		c.DNSIP = rhs.DNSIP
	}
}

// IsValid reports whether every field of the configuration is set.
func (c *SystemConf) IsValid() bool {
	return c.ZFSRoot != nil &&
		c.FSRoot != nil &&
		c.Network != nil &&
		c.Netmask != nil &&
		c.Gateway != nil &&
		c.ExtIf != nil &&
		c.DNSName != nil &&
		c.DNSIP != nil
}

// Load reads the defaults layer and the override layer and merges the
// override onto the defaults. A layer that cannot be read contributes an
// empty configuration, so Load never fails; callers must check IsValid
// before relying on the result.
func Load(paths *Paths) *SystemConf {
	conf := loadLayer(paths.DefaultConf)
	conf.Merge(loadLayer(paths.OverrideConf))
	return conf
}

func loadLayer(path string) *SystemConf {
	data, err := os.ReadFile(path)
	if err != nil {
		logging.Debug("configuration layer not readable", "path", path, "error", err)
		return &SystemConf{}
	}
	return Parse(string(data))
}
