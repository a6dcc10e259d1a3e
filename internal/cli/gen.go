package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mangrovedao/mangrove-strats/internal/config"
	"github.com/mangrovedao/mangrove-strats/internal/gen"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

// genOpts holds the command-line flags for the gen command. Non-empty values
// override the definitions file's output block.
type genOpts struct {
	config   string
	output   string
	filename string
	pragma   string
	license  string
}

func newGenCmd() *cobra.Command {
	var opts genOpts

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate Solidity accessors for every struct",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGen(cmd.Context(), opts)
		},
	}

	addConfigFlag(cmd, &opts.config)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output directory (default: output.dir, or the definitions file's directory)")
	cmd.Flags().StringVar(&opts.filename, "filename", "", "filename template over the struct layout")
	cmd.Flags().StringVar(&opts.pragma, "pragma", "", "solidity version constraint")
	cmd.Flags().StringVar(&opts.license, "license", "", "SPDX license identifier")

	return cmd
}

func runGen(ctx context.Context, opts genOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	f, err := loadDefinitions(ctx, opts.config)
	if err != nil {
		return err
	}

	defs := f.Defs()

	layouts, err := layout.BuildAll(defs)
	if err != nil {
		return fmt.Errorf("%s: %w", opts.config, err)
	}

	lint := gen.Lint(defs)
	for _, d := range lint.Warnings {
		logger.Warn(d.Message, "struct", d.Struct, "field", d.Field, "code", d.Code)
	}

	if err := lint.Error(); err != nil {
		return fmt.Errorf("%s: %w", opts.config, err)
	}

	for _, s := range layouts {
		logger.Debug("built layout", "struct", s.Name, "bits", s.TotalBits, "unused", s.UnusedBits())
	}

	files, err := gen.NewGenerator(generatorConfig(f.Output, opts)).Generate(layouts)
	if err != nil {
		return err
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	dir := outputDir(f.Output, opts)

	written, err := gen.WriteFiles(files, dir)
	if err != nil {
		return err
	}

	for _, path := range written {
		logger.Info("wrote", "file", path)
	}

	prog.done(fmt.Sprintf("Generated %d files for %d structs in %s, %d unchanged",
		len(files), len(layouts), dir, len(files)-len(written)))

	return nil
}

// generatorConfig merges gen defaults, the file's output block and flags.
func generatorConfig(out config.Output, opts genOpts) gen.Config {
	cfg := gen.DefaultConfig()

	for _, pick := range []struct {
		dst        *string
		file, flag string
	}{
		{&cfg.Filename, out.Filename, opts.filename},
		{&cfg.Pragma, out.Pragma, opts.pragma},
		{&cfg.License, out.License, opts.license},
	} {
		switch {
		case pick.flag != "":
			*pick.dst = pick.flag
		case pick.file != "":
			*pick.dst = pick.file
		}
	}

	return cfg
}

// outputDir resolves where files go. A relative output.dir is taken relative
// to the definitions file.
func outputDir(out config.Output, opts genOpts) string {
	switch {
	case opts.output != "":
		return opts.output
	case out.Dir == "":
		return filepath.Dir(opts.config)
	case filepath.IsAbs(out.Dir):
		return out.Dir
	default:
		return filepath.Join(filepath.Dir(opts.config), out.Dir)
	}
}
