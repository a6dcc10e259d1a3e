package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/mangrovedao/mangrove-strats/internal/common"
	"github.com/mangrovedao/mangrove-strats/internal/gen"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

func newCheckCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report every rule violation in a definitions file",
		Long:  `check validates all structs instead of stopping at the first failure and prints one line per problem. Field names the generated Solidity cannot use are reported too. It exits non-zero on any error; warnings and infos are printed only.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), cmd.OutOrStdout(), path)
		},
	}

	addConfigFlag(cmd, &path)

	return cmd
}

func runCheck(ctx context.Context, w io.Writer, path string) error {
	logger := loggerFromContext(ctx)

	f, err := loadDefinitions(ctx, path)
	if err != nil {
		return err
	}

	defs := f.Defs()
	if common.IsEmpty(defs) {
		logger.Warn("no structs defined", "path", path)
	}

	res := layout.Check(defs)
	res.Merge(*gen.Lint(defs))

	for _, d := range res.All() {
		fmt.Fprintf(w, "%s: %s\n", d.Severity, d)
	}

	if err := res.Error(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logger.Info("all structs fit", "structs", len(defs))

	return nil
}
