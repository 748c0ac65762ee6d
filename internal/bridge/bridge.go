// Package bridge discovers the network bridges defined on a pot host.
//
// Each bridge is described by one KEY=value file directly under
// <fs_root>/bridges/. A definition must carry a name, a network in CIDR form
// and a gateway inside that network; files that do not are dropped from the
// listing.
package bridge

import (
	"net/netip"
	"os"
	"path/filepath"

	"github.com/potkit/potview/internal/config"
	"github.com/potkit/potview/internal/errors"
	"github.com/potkit/potview/internal/logging"
)

// Conf describes one virtual network bridge available to pots.
type Conf struct {
	Name    string
	Network netip.Prefix
	Gateway netip.Addr
}

const (
	keyName    = "name"
	keyNet     = "net"
	keyGateway = "gateway"
)

var bridgeKeys = []string{keyName, keyNet, keyGateway}

// Parse builds a bridge configuration from the text of one definition file.
// All three fields are mandatory; a missing or unparseable field fails the
// whole definition, as does a gateway outside the network.
func Parse(text string) (*Conf, error) {
	values := config.ParseKVLines(text, bridgeKeys)

	name, ok := values[keyName]
	if !ok {
		return nil, errors.BridgeFieldMissing(keyName)
	}

	network, err := netip.ParsePrefix(values[keyNet])
	if err != nil {
		return nil, errors.BridgeFieldMissing(keyNet)
	}

	gateway, err := netip.ParseAddr(values[keyGateway])
	if err != nil {
		return nil, errors.BridgeFieldMissing(keyGateway)
	}

	if !network.Contains(gateway) {
		return nil, errors.GatewayNotInNetwork(gateway.String(), network.String())
	}

	return &Conf{
		Name:    name,
		Network: network,
		Gateway: gateway,
	}, nil
}

// Files returns the regular files directly inside the bridges directory.
// Subdirectories are skipped and the order is whatever the filesystem
// enumeration yields.
func Files(conf *config.SystemConf) []string {
	if conf.FSRoot == nil {
		return nil
	}
	dir := filepath.Join(*conf.FSRoot, "bridges")
	entries, err := os.ReadDir(dir)
	if err != nil {
		logging.Debug("bridges directory not readable", "dir", dir, "error", err)
		return nil
	}

	var files []string
	for _, entry := range entries {
		if entry.Type().IsRegular() {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files
}

// List parses every bridge definition under the filesystem root. Files that
// cannot be read or do not validate are dropped; List itself never fails.
func List(conf *config.SystemConf) []Conf {
	var bridges []Conf
	for _, path := range Files(conf) {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		b, err := Parse(string(data))
		if err != nil {
			logging.Warn("dropping bridge definition", "path", path, "error", err)
			continue
		}
		bridges = append(bridges, *b)
	}
	return bridges
}
