package config

import "testing"

func TestParseKVLines(t *testing.T) {
	keys := []string{"name", "net"}

	tests := []struct {
		name string
		text string
		want map[string]string
	}{
		{"empty", "", map[string]string{}},
		{"single", "name=public", map[string]string{"name": "public"}},
		{"last wins", "name=a\nname=b", map[string]string{"name": "b"}},
		{"unrecognized ignored", "name=a\ngateway=10.0.0.1", map[string]string{"name": "a"}},
		{"comment line", "# name=a\nnet=10.0.0.0/24", map[string]string{"net": "10.0.0.0/24"}},
		{"indented comment", "  # name=a", map[string]string{}},
		{"trailing comment truncated", "name=a # the name", map[string]string{"name": "a"}},
		{"space truncates value", "name=two words", map[string]string{"name": "two"}},
		{"empty value is present", "name=", map[string]string{"name": ""}},
		{"crlf", "name=a\r\nnet=10.0.0.0/24\r\n", map[string]string{"name": "a", "net": "10.0.0.0/24"}},
		{"prefix must match key", "names=a", map[string]string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseKVLines(tt.text, keys)
			if len(got) != len(tt.want) {
				t.Fatalf("ParseKVLines(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for k, v := range tt.want {
				gv, ok := got[k]
				if !ok || gv != v {
					t.Errorf("ParseKVLines(%q)[%q] = %q (present=%v), want %q", tt.text, k, gv, ok, v)
				}
			}
		})
	}
}
