package layout

import (
	"errors"
	"fmt"

	"github.com/mangrovedao/mangrove-strats/internal/diagnostic"
)

// BuildAll builds every definition in order and stops at the first failure.
// A malformed layout would produce silently wrong accessors, so no partial
// result is returned.
func BuildAll(defs []StructDef) ([]*StructLayout, error) {
	layouts := make([]*StructLayout, 0, len(defs))
	seen := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		if _, dup := seen[def.Name]; dup {
			return nil, &ValidationError{Kind: DuplicateStruct, Struct: def.Name}
		}

		seen[def.Name] = struct{}{}

		s, err := Build(def)
		if err != nil {
			return nil, err
		}

		layouts = append(layouts, s)
	}

	return layouts, nil
}

// Check runs the same rules as BuildAll but reports one diagnostic per failing
// struct instead of stopping. Valid structs that leave bits unused get an info
// diagnostic.
func Check(defs []StructDef) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	seen := make(map[string]struct{}, len(defs))

	for _, def := range defs {
		if _, dup := seen[def.Name]; dup {
			report(res, &ValidationError{Kind: DuplicateStruct, Struct: def.Name})
			continue
		}

		seen[def.Name] = struct{}{}

		s, err := Build(def)
		if err != nil {
			report(res, err)
			continue
		}

		if unused := s.UnusedBits(); unused > 0 {
			res.AddInfo("unused_bits", fmt.Sprintf("%d low-order bits unused", unused), s.Name, "")
		}
	}

	return res
}

func report(res *diagnostic.Diagnostics, err error) {
	var verr *ValidationError
	if !errors.As(err, &verr) {
		res.AddError("internal", err.Error(), "", "")
		return
	}

	res.AddError(verr.Kind.Code(), verr.rule(), verr.Struct, verr.Field)
}
