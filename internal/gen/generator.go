package gen

import (
	"bytes"
	"fmt"
	"path"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/mangrovedao/mangrove-strats/internal/expr"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

// Config holds configuration for code generation.
type Config struct {
	// Filename is a text/template executed with the *layout.StructLayout to
	// name each struct's file.
	Filename string
	// UtilitiesFilename names the shared file with uint_of_bool and ONES.
	UtilitiesFilename string
	// Pragma is the solidity version constraint.
	Pragma string
	// License is the SPDX license identifier.
	License string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{
		Filename:          "{{.Capitalized}}.post.sol",
		UtilitiesFilename: "StructUtilities.post.sol",
		Pragma:            "^0.8.17",
		License:           "MIT",
	}
}

// GeneratedFile represents a generated source file.
type GeneratedFile struct {
	// Filename is relative to the output directory (e.g., "Offer.post.sol").
	Filename string
	// Content is the generated source.
	Content []byte
}

// Generator renders struct layouts into Solidity files.
type Generator struct {
	config Config
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	return &Generator{config: config}
}

// Generate renders one file per layout plus the shared utilities file, which
// comes first. Output is deterministic for a given input.
func (g *Generator) Generate(layouts []*layout.StructLayout) ([]GeneratedFile, error) {
	nameTmpl, err := template.New("filename").Option("missingkey=error").Parse(g.config.Filename)
	if err != nil {
		return nil, fmt.Errorf("parsing filename template: %w", err)
	}

	utilities, err := g.execute(utilitiesTemplate, g.header())
	if err != nil {
		return nil, fmt.Errorf("generating %s: %w", g.config.UtilitiesFilename, err)
	}

	files := []GeneratedFile{{Filename: g.config.UtilitiesFilename, Content: utilities}}
	owner := map[string]string{g.config.UtilitiesFilename: ""}

	for _, s := range layouts {
		var name bytes.Buffer
		if err := nameTmpl.Execute(&name, s); err != nil {
			return nil, fmt.Errorf("naming file for struct %s: %w", s.Name, err)
		}

		filename := strings.TrimSpace(name.String())
		if filename == "" {
			return nil, fmt.Errorf("filename template produced an empty name for struct %s", s.Name)
		}

		filename = path.Clean(filename)

		imp, err := importPath(filename, g.config.UtilitiesFilename)
		if err != nil {
			return nil, fmt.Errorf("struct %s: %w", s.Name, err)
		}

		if prev, dup := owner[filename]; dup {
			return nil, fmt.Errorf("struct %s: file %s is already generated for %q", s.Name, filename, prev)
		}

		if len(s.Fields) == 0 {
			return nil, fmt.Errorf("struct %s has no fields to emit", s.Name)
		}

		owner[filename] = s.Name

		content, err := g.execute(structTemplate, g.buildTemplateData(s, imp))
		if err != nil {
			return nil, fmt.Errorf("generating struct %s: %w", s.Name, err)
		}

		files = append(files, GeneratedFile{Filename: filename, Content: content})
	}

	return files, nil
}

func (g *Generator) execute(t *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	return buf.Bytes(), nil
}

// headerData is shared by every generated file.
type headerData struct {
	License    string
	Pragma     string
	Preamble   string
	OnesConst  string
	UintOfBool string
}

// templateData holds all data needed for the struct template.
type templateData struct {
	headerData
	Layout *layout.StructLayout
	Fields []fieldData
	Unused int
	// Import is the utilities file as seen from this struct's file.
	Import string
	// Pack builds the packed word from the __<name> arguments.
	Pack string
}

// fieldData holds the rendered accessors of one field.
type fieldData struct {
	Name   string
	Type   string
	Bits   int
	Before int
	Mask   string
	// Get reads the field from __packed.
	Get string
	// Set returns __packed with the field replaced by val.
	Set string
}

func (g *Generator) header() headerData {
	return headerData{
		License:    g.config.License,
		Pragma:     g.config.Pragma,
		Preamble:   preamble,
		OnesConst:  OnesConst,
		UintOfBool: layout.UintOfBool,
	}
}

// buildTemplateData renders every expression of a layout.
func (g *Generator) buildTemplateData(s *layout.StructLayout, imp string) *templateData {
	word := s.Unwrap(expr.Ref{Name: "__packed"})
	args := make([]expr.Expr, len(s.Fields))

	data := &templateData{
		headerData: g.header(),
		Layout:     s,
		Unused:     s.UnusedBits(),
		Import:     imp,
	}

	for i, f := range s.Fields {
		args[i] = expr.Ref{Name: "__" + f.Name}
		set := expr.Or(expr.And(word, expr.Ref{Name: f.MaskName}), f.Inject(expr.Ref{Name: "val"}))

		data.Fields = append(data.Fields, fieldData{
			Name:   f.Name,
			Type:   solidityType(f.Type),
			Bits:   f.Bits,
			Before: f.Offset,
			Mask:   Render(f.Mask),
			Get:    Render(f.Extract(word)),
			Set:    Render(s.Wrap(set)),
		})
	}

	data.Pack = Render(s.Pack(args))

	return data
}

// importPath returns the relative import a file at filename uses to reach
// target. Both names are slash-separated and relative to the output
// directory, which neither may leave.
func importPath(filename, target string) (string, error) {
	for _, name := range []string{filename, target} {
		clean := filepath.Clean(filepath.FromSlash(name))
		if filepath.IsAbs(clean) || clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)) {
			return "", fmt.Errorf("file %s is outside the output directory", name)
		}
	}

	rel, err := filepath.Rel(filepath.Dir(filepath.FromSlash(filename)), filepath.FromSlash(target))
	if err != nil {
		return "", fmt.Errorf("resolving import of %s: %w", target, err)
	}

	rel = filepath.ToSlash(rel)
	if !strings.HasPrefix(rel, "../") {
		rel = "./" + rel
	}

	return rel, nil
}
