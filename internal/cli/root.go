// Package cli wires the cerrgen command line. Commands stay thin: they parse
// flags, call the library, and report issues; all generation semantics live in
// the root package.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	cerrgen "github.com/reoring/cerrgen"
	"github.com/reoring/cerrgen/i18n"
)

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "cerrgen",
		Short:        "Generate a C error-code enum header and toString stub from a schema document",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			setupLogger(debug)
		},
	}
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to stderr")
	cmd.AddCommand(generateCmd(), validateCmd())
	return cmd
}

func setupLogger(debug bool) {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// reportIssues prints each schema violation on its own line and collapses the
// error returned to cobra into a one-line summary. Non-issue errors pass
// through unchanged.
func reportIssues(w io.Writer, err error) error {
	iss, ok := cerrgen.AsIssues(err)
	if !ok {
		return err
	}
	for _, it := range iss {
		msg := it.Message
		if msg == "" {
			msg = i18n.T(it.Code, nil)
		}
		fmt.Fprintf(w, "%s: %s\n", it.Path, msg)
	}
	return fmt.Errorf("schema validation failed (%d issues)", len(iss))
}
