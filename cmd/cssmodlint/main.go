// Package main provides the cssmodlint CLI, a linter for CSS modules used from
// TypeScript and JavaScript React components.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/yacobolo/cssmodlint/internal/csslint"
)

// errDiagnostics is returned by lint when it reported at least one warning.
// It maps to exit status 1 and prints nothing further.
var errDiagnostics = errors.New("diagnostics found")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(os.Stderr, err))
}

// exitCode reports err on w and returns the process exit status:
// 0 on success, 1 when diagnostics were found, 2 on any other error.
func exitCode(w io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, errDiagnostics):
		return 1
	default:
		fmt.Fprintln(w, csslint.RenderStyle(csslint.StyleRed, "Error: "+err.Error(), csslint.ShouldUseColors(k.Bool("color"))))
		return 2
	}
}
