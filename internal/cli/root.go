package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mangrovedao/mangrove-strats/internal/config"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. main
// calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// NewRootCommand builds the packgen command tree. Logs go to the command's
// stderr; reports and layouts go to its stdout.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:           "packgen",
		Short:         "packgen packs struct fields into a single 256-bit word",
		Long:          `packgen reads struct definitions, checks that each fits in one 256-bit word and generates Solidity accessors that pack and unpack the fields with shifts and masks.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}

			ctx := withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("packgen %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newLayoutCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute runs the packgen CLI with ctx, which main cancels on SIGINT.
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

// addConfigFlag registers the required --config flag shared by commands that
// read a definitions file.
func addConfigFlag(cmd *cobra.Command, path *string) {
	cmd.Flags().StringVarP(path, "config", "c", "", "definitions file (.yaml, .yml, .toml, .json, .jsonc)")
	_ = cmd.MarkFlagRequired("config")
}

// loadDefinitions reads the definitions file at path.
func loadDefinitions(ctx context.Context, path string) (*config.File, error) {
	logger := loggerFromContext(ctx)

	f, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}

	logger.Debug("loaded definitions", "path", path, "structs", len(f.Structs))

	return f, nil
}
