package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/mangrovedao/mangrove-strats/internal/common"
	"github.com/mangrovedao/mangrove-strats/internal/config"
)

// starterFile is written by init: an offer list entry that fills the word and
// a partially packed struct.
func starterFile() *config.File {
	return &config.File{
		Version: config.DefaultVersion,
		Output: config.Output{
			Dir:      "generated",
			Filename: config.DefaultFilename,
			Pragma:   config.DefaultPragma,
			License:  config.DefaultLicense,
		},
		Structs: config.Structs{
			{Name: "offer", Fields: []config.FieldDef{
				{Name: "prev", Type: "uint", Bits: 32},
				{Name: "next", Type: "uint", Bits: 32},
				{Name: "wants", Type: "uint", Bits: 96},
				{Name: "gives", Type: "uint", Bits: 96},
			}},
			{Name: "offerDetail", Fields: []config.FieldDef{
				{Name: "maker", Type: "address", Bits: 160},
				{Name: "gasreq", Type: "uint", Bits: 24},
				{Name: "kilo_offer_gasbase", Type: "uint", Bits: 9},
				{Name: "gasprice", Type: "uint", Bits: 16},
			}},
		},
	}
}

func newInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a starter definitions file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "structs.yaml"
			if arg, ok := common.First(args); ok {
				path = arg
			}

			return runInit(cmd, path, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	return cmd
}

func runInit(cmd *cobra.Command, path string, force bool) error {
	logger := loggerFromContext(cmd.Context())

	if !force {
		_, err := os.Stat(path)
		if err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("checking %s: %w", path, err)
		}
	}

	if err := config.WriteFile(starterFile(), path); err != nil {
		return err
	}

	logger.Info("wrote starter definitions", "file", path)

	return nil
}
