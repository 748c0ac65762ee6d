package config

import "strings"

// ParseKVLines extracts the recognized keys from sh-style KEY=value text.
//
// Lines are trimmed, full-line # comments are skipped, and the value is the
// text after the first = truncated at the first space. The truncation is what
// discards trailing inline comments; it also means a quoted value keeps its
// quotes and a value containing a space loses everything after it. The last
// occurrence of a key wins. Keys not listed in keys are ignored.
func ParseKVLines(text string, keys []string) map[string]string {
	values := make(map[string]string)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if strings.HasPrefix(line, "#") {
			continue
		}
		for _, key := range keys {
			if !strings.HasPrefix(line, key+"=") {
				continue
			}
			value := line[len(key)+1:]
			if i := strings.IndexByte(value, ' '); i >= 0 {
				value = value[:i]
			}
			values[key] = value
		}
	}
	return values
}
