package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

const (
	formatYAML = "yaml" // layout facts as YAML
	formatDump = "dump" // go-spew dump of the layout values
)

// structFacts is the printable summary of a StructLayout.
type structFacts struct {
	Name       string       `yaml:"name"`
	Packed     string       `yaml:"packed"`
	Unpacked   string       `yaml:"unpacked"`
	TotalBits  int          `yaml:"total_bits"`
	UnusedBits int          `yaml:"unused_bits"`
	Fields     []fieldFacts `yaml:"fields"`
}

// fieldFacts describes one field; expressions use their s-expression form.
type fieldFacts struct {
	Name    string        `yaml:"name"`
	Type    layout.Kind   `yaml:"type"`
	Bits    int           `yaml:"bits"`
	Before  int           `yaml:"before"`
	Mask    string        `yaml:"mask"`
	Extract string        `yaml:"extract"`
	Inject  string        `yaml:"inject"`
	Symbols []symbolFacts `yaml:"symbols,flow"`
}

type symbolFacts struct {
	Name  string `yaml:"name"`
	Value uint64 `yaml:"value"`
}

func newLayoutCmd() *cobra.Command {
	var (
		path   string
		format string
		only   string
	)

	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the computed layout of every struct",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLayout(cmd.Context(), cmd.OutOrStdout(), path, format, only)
		},
	}

	addConfigFlag(cmd, &path)
	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "output format: yaml or dump")
	cmd.Flags().StringVarP(&only, "struct", "s", "", "print only the named struct")

	return cmd
}

func runLayout(ctx context.Context, w io.Writer, path, format, only string) error {
	if format != formatYAML && format != formatDump {
		return fmt.Errorf("unknown format %q: use %s or %s", format, formatYAML, formatDump)
	}

	f, err := loadDefinitions(ctx, path)
	if err != nil {
		return err
	}

	var layouts []*layout.StructLayout

	if only == "" {
		layouts, err = layout.BuildAll(f.Defs())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	} else {
		def, ok := f.Lookup(only)
		if !ok {
			return fmt.Errorf("%s: no struct named %q", path, only)
		}

		s, err := layout.Build(def.Def())
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		layouts = []*layout.StructLayout{s}
	}

	if format == formatDump {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, layouts)

		return nil
	}

	facts := make([]structFacts, 0, len(layouts))
	for _, s := range layouts {
		facts = append(facts, newStructFacts(s))
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)

	if err := enc.Encode(facts); err != nil {
		return fmt.Errorf("encoding layouts: %w", err)
	}

	return enc.Close()
}

func newStructFacts(s *layout.StructLayout) structFacts {
	word := expr.Ref{Name: "word"}
	value := expr.Ref{Name: "value"}

	facts := structFacts{
		Name:       s.Name,
		Packed:     s.Packed,
		Unpacked:   s.Unpacked,
		TotalBits:  s.TotalBits,
		UnusedBits: s.UnusedBits(),
		Fields:     make([]fieldFacts, 0, len(s.Fields)),
	}

	for _, f := range s.Fields {
		ff := fieldFacts{
			Name:    f.Name,
			Type:    f.Type,
			Bits:    f.Bits,
			Before:  f.Offset,
			Mask:    f.Mask.String(),
			Extract: f.Extract(word).String(),
			Inject:  f.Inject(value).String(),
		}

		for _, sym := range expr.Syms(f.Set(word, value)) {
			ff.Symbols = append(ff.Symbols, symbolFacts{Name: sym.Name, Value: sym.Value})
		}

		facts.Fields = append(facts.Fields, ff)
	}

	return facts
}
