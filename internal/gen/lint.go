package gen

import (
	"fmt"

	"github.com/mangrovedao/mangrove-strats/internal/diagnostic"
	"github.com/mangrovedao/mangrove-strats/internal/layout"
)

// Diagnostic codes reported by Lint.
const (
	CodeReservedName = "reserved_name"
	CodeShadowedName = "shadowed_name"
)

// clashingNames are generated names a field getter would redeclare with the
// same signature, or a generated parameter a field argument would duplicate.
var clashingNames = map[string]string{
	"to_struct": "its getter redeclares the generated to_struct(packed)",
	"unpack":    "its getter redeclares the generated unpack(packed)",
	"packed":    "its unpack result __packed duplicates the packed parameter",
}

// shadowingNames compile but overload or shadow a generated function.
var shadowingNames = map[string]string{
	"eq":              "its accessors overload the generated eq",
	"pack":            "its library accessors shadow the file-level pack",
	"t_of_struct":     "its library accessors shadow the file-level t_of_struct",
	layout.UintOfBool: "its library accessors shadow the file-level " + layout.UintOfBool,
	OnesConst:         "its library accessors shadow the " + OnesConst + " constant",
}

var solidityKeywords = map[string]bool{}

func init() {
	for _, kw := range []string{
		"abstract", "address", "after", "alias", "anonymous", "apply", "as", "assembly", "auto",
		"bool", "break", "byte", "bytes", "calldata", "case", "catch", "constant", "constructor",
		"continue", "contract", "copyof", "days", "default", "define", "delete", "do", "else",
		"emit", "enum", "error", "ether", "event", "external", "fallback", "false", "final",
		"for", "function", "gwei", "hours", "if", "immutable", "implements", "import", "in",
		"indexed", "inline", "int", "interface", "internal", "is", "let", "library", "macro",
		"mapping", "match", "memory", "minutes", "modifier", "mutable", "new", "null", "of",
		"override", "partial", "payable", "pragma", "private", "promise", "public", "pure",
		"receive", "reference", "relocatable", "return", "returns", "revert", "sealed",
		"seconds", "sizeof", "static", "storage", "string", "struct", "super", "supports",
		"switch", "this", "throw", "true", "try", "type", "typedef", "typeof", "uint",
		"unchecked", "using", "var", "view", "virtual", "weeks", "wei", "while",
	} {
		solidityKeywords[kw] = true
	}
}

// Lint reports field names the generated Solidity cannot use as written.
// Keywords and same-signature clashes are errors; overloads and shadowing are
// warnings.
func Lint(defs []layout.StructDef) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}

	for _, def := range defs {
		for _, f := range def.Fields {
			if solidityKeywords[f.Name] {
				res.AddError(CodeReservedName, fmt.Sprintf("%s is a Solidity keyword", f.Name), def.Name, f.Name)
				continue
			}

			if why, ok := clashingNames[f.Name]; ok {
				res.AddError(CodeReservedName, why, def.Name, f.Name)
				continue
			}

			if why, ok := shadowingNames[f.Name]; ok {
				res.AddWarning(CodeShadowedName, why, def.Name, f.Name)
			}
		}
	}

	return res
}
