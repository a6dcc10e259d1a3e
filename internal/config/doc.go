// Package config loads struct definition files.
//
// A definitions file lists the structs to pack, in order, with their fields
// in declaration order:
//
//	version: "1"
//	output:
//	  dir: ./src/preprocessed
//	  filename: "{{.Capitalized}}.post.sol"
//	structs:
//	  - name: offer
//	    fields:
//	      - {name: prev, type: uint, bits: 32}
//	      - {name: next, type: uint, bits: 32}
//	      - {name: wants, type: uint, bits: 96}
//	      - {name: gives, type: uint, bits: 96}
//
// YAML files may also use the compact form where structs is a mapping from
// struct name to field list; mapping order is preserved.
//
// The format is picked from the file extension: .yaml/.yml, .toml, or
// .json/.jsonc (JSON with comments and trailing commas).
package config
