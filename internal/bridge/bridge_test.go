package bridge

import (
	"net/netip"
	"os"
	"path/filepath"
	"testing"

	"github.com/potkit/potview/internal/config"
)

func TestParseRejectsIncomplete(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"net only", "net=10.192.0.24/29"},
		{"gateway only", "gateway=10.192.0.24"},
		{"name only", "name=test-bridge"},
		{"net without prefix length", "name=test-bridge\nnet=10.192.0.24\ngateway=10.192.0.25"},
		{"garbage gateway", "name=test-bridge\nnet=10.192.0.24/29\ngateway=nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(tt.text); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", tt.text)
			}
		})
	}
}

func TestParseRejectsGatewayOutsideNetwork(t *testing.T) {
	_, err := Parse("net=10.192.0.24/29\ngateway=10.192.1.25\nname=test-bridge")
	if err == nil {
		t.Fatal("Parse succeeded with a gateway outside the network")
	}
}

func TestParseValid(t *testing.T) {
	b, err := Parse("name=test-bridge\nnet=10.192.0.24/29\ngateway=10.192.0.25")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Name != "test-bridge" {
		t.Errorf("Name = %q, want test-bridge", b.Name)
	}
	if want := netip.MustParsePrefix("10.192.0.24/29"); b.Network != want {
		t.Errorf("Network = %v, want %v", b.Network, want)
	}
	if want := netip.MustParseAddr("10.192.0.25"); b.Gateway != want {
		t.Errorf("Gateway = %v, want %v", b.Gateway, want)
	}
}

func TestParseValidWithComments(t *testing.T) {
	b, err := Parse("# public bridge\nname=public # shared\nnet=10.192.0.0/24\ngateway=10.192.0.1")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if b.Name != "public" {
		t.Errorf("Name = %q, want public", b.Name)
	}
}

func confWithFSRoot(t *testing.T, root string) *config.SystemConf {
	t.Helper()
	return &config.SystemConf{FSRoot: &root}
}

func TestFiles(t *testing.T) {
	root := t.TempDir()
	bridgesDir := filepath.Join(root, "bridges")
	if err := os.MkdirAll(filepath.Join(bridgesDir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range []string{"public", "private"} {
		if err := os.WriteFile(filepath.Join(bridgesDir, name), []byte("x"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	files := Files(confWithFSRoot(t, root))
	if len(files) != 2 {
		t.Fatalf("Files returned %d entries, want 2: %v", len(files), files)
	}
	for _, f := range files {
		if filepath.Dir(f) != bridgesDir {
			t.Errorf("file %s is not directly inside %s", f, bridgesDir)
		}
	}
}

func TestFilesNoFSRoot(t *testing.T) {
	if files := Files(&config.SystemConf{}); files != nil {
		t.Errorf("Files without fs_root = %v, want nil", files)
	}
}

func TestFilesMissingDir(t *testing.T) {
	if files := Files(confWithFSRoot(t, filepath.Join(t.TempDir(), "nope"))); files != nil {
		t.Errorf("Files with missing bridges dir = %v, want nil", files)
	}
}

func TestListDropsInvalid(t *testing.T) {
	root := t.TempDir()
	bridgesDir := filepath.Join(root, "bridges")
	if err := os.MkdirAll(bridgesDir, 0o755); err != nil {
		t.Fatal(err)
	}

	valid := "name=public\nnet=10.192.0.0/24\ngateway=10.192.0.1"
	invalid := "name=broken\nnet=10.192.0.0/24\ngateway=172.16.0.1"
	if err := os.WriteFile(filepath.Join(bridgesDir, "public"), []byte(valid), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(bridgesDir, "broken"), []byte(invalid), 0o644); err != nil {
		t.Fatal(err)
	}

	bridges := List(confWithFSRoot(t, root))
	if len(bridges) != 1 {
		t.Fatalf("List returned %d bridges, want 1: %v", len(bridges), bridges)
	}
	if bridges[0].Name != "public" {
		t.Errorf("Name = %q, want public", bridges[0].Name)
	}
}
