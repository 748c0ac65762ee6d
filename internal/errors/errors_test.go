package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(ExitBridgeConfig, "bridge definition is missing net")
	if got := plain.Error(); got != "bridge definition is missing net" {
		t.Errorf("Error() = %q", got)
	}

	cause := fmt.Errorf("permission denied")
	wrapped := Wrap(ExitProbeFailed, "cannot probe jail web", cause)
	if got := wrapped.Error(); got != "cannot probe jail web: permission denied" {
		t.Errorf("Error() = %q", got)
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("no such file")
	err := ProbeFailed("web", cause)

	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause is not found by errors.Is")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil-cause pot error", IncompleteConfig(), ExitConfigError},
		{"bridge error", BridgeFieldMissing("net"), ExitBridgeConfig},
		{"pot entry error", InvalidAddress("web", "ip", "nope"), ExitPotConfig},
		{"probe error", ProbeFailed("web", fmt.Errorf("spawn")), ExitProbeFailed},
		{"foreign error", fmt.Errorf("something else"), ExitGeneralError},
		{"wrapped pot error", fmt.Errorf("outer: %w", IncompleteConfig()), ExitConfigError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConstructorMessages(t *testing.T) {
	err := InvalidAddress("web", "ip4", "10.0.0")
	for _, part := range []string{"web", "ip4", "10.0.0"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("InvalidAddress message %q is missing %q", err.Error(), part)
		}
	}

	err = GatewayNotInNetwork("172.16.0.1", "10.192.0.0/24")
	if !strings.Contains(err.Error(), "172.16.0.1") || !strings.Contains(err.Error(), "10.192.0.0/24") {
		t.Errorf("GatewayNotInNetwork message %q is missing detail", err.Error())
	}
}
