package config

import (
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

// File is a parsed definitions file.
type File struct {
	Version string  `yaml:"version" toml:"version" json:"version"`
	Output  Output  `yaml:"output,omitempty" toml:"output" json:"output"`
	Structs Structs `yaml:"structs" toml:"structs" json:"structs"`
}

// Output holds emission settings. Command-line flags take precedence.
type Output struct {
	// Dir is the directory generated files are written to.
	Dir string `yaml:"dir,omitempty" toml:"dir" json:"dir,omitempty"`
	// Filename is a text/template over the struct layout.
	Filename string `yaml:"filename,omitempty" toml:"filename" json:"filename,omitempty"`
	// Pragma is the solidity version constraint.
	Pragma string `yaml:"pragma,omitempty" toml:"pragma" json:"pragma,omitempty"`
	// License is the SPDX license identifier.
	License string `yaml:"license,omitempty" toml:"license" json:"license,omitempty"`
}

// Structs is the ordered list of struct definitions.
type Structs []StructDef

// StructDef is one struct of the file.
type StructDef struct {
	Name   string     `yaml:"name" toml:"name" json:"name"`
	Fields []FieldDef `yaml:"fields" toml:"fields" json:"fields"`
}

// FieldDef is one field of a struct. Type is kept as written so that unknown
// names reach validation.
type FieldDef struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	Type string `yaml:"type" toml:"type" json:"type"`
	Bits int    `yaml:"bits" toml:"bits" json:"bits"`
}

// Defs converts the file's structs into layout definitions, keeping order.
func (f *File) Defs() []layout.StructDef {
	defs := make([]layout.StructDef, 0, len(f.Structs))

	for _, s := range f.Structs {
		defs = append(defs, s.Def())
	}

	return defs
}

// Def converts one struct into a layout definition. Unknown type names map to
// layout.KindInvalid and are kept as written for error messages.
func (s StructDef) Def() layout.StructDef {
	def := layout.StructDef{
		Name:   s.Name,
		Fields: make([]layout.FieldSpec, 0, len(s.Fields)),
	}

	for _, fd := range s.Fields {
		def.Fields = append(def.Fields, layout.FieldSpec{
			Name:     fd.Name,
			Type:     layout.ParseKind(fd.Type),
			Bits:     fd.Bits,
			TypeName: fd.Type,
		})
	}

	return def
}

// Lookup returns the struct named name.
func (f *File) Lookup(name string) (StructDef, bool) {
	for _, s := range f.Structs {
		if s.Name == name {
			return s, true
		}
	}

	return StructDef{}, false
}
