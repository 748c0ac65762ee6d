package main

import (
	"os"

	"github.com/potkit/potview/cmd"
	"github.com/potkit/potview/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
