package gen

import "text/template"

const preamble = `/* ************************************************** *
            GENERATED FILE. DO NOT EDIT.
 * ************************************************** */`

var funcs = template.FuncMap{
	"sep": func(i int) string {
		if i == 0 {
			return ""
		}

		return ", "
	},
}

var utilitiesTemplate = template.Must(template.New("utilities").Parse(`{{.Preamble}}

// SPDX-License-Identifier: {{.License}}
pragma solidity {{.Pragma}};

/* since you can't convert bool to uint in an expression without conditionals,
 * we add a file-level function and rely on compiler optimization
 */
function {{.UintOfBool}}(bool b) pure returns (uint u) {
  assembly { u := b }
}

uint constant {{.OnesConst}} = type(uint).max;
`))

var structTemplate = template.Must(template.New("struct").Funcs(funcs).Parse(`{{.Preamble}}

// SPDX-License-Identifier: {{.License}}
pragma solidity {{.Pragma}};

import {{"{"}}{{.UintOfBool}}, {{.OnesConst}}{{"}"}} from "{{.Import}}";
{{- $packed := .Layout.Packed}}
{{- $unpacked := .Layout.Unpacked}}

struct {{$unpacked}} {
{{- range .Fields}}
  {{.Type}} {{.Name}};
{{- end}}
}

// {{.Layout.TotalBits}} bits used, {{.Unused}} low-order bits free
type {{$packed}} is uint;
using Library for {{$packed}} global;

// number of bits in each field
{{- range .Fields}}
uint constant {{.Name}}_bits = {{.Bits}};
{{- end}}

// number of bits before each field
{{- range .Fields}}
uint constant {{.Name}}_before = {{.Before}};
{{- end}}

// focus-mask: 1s at field location, 0s elsewhere
{{- range .Fields}}
uint constant {{.Name}}_mask = {{.Mask}};
{{- end}}

library Library {
  function to_struct({{$packed}} __packed) internal pure returns ({{$unpacked}} memory __s) { unchecked {
{{- range .Fields}}
    __s.{{.Name}} = {{.Get}};
{{- end}}
  }}

  function eq({{$packed}} __packed1, {{$packed}} __packed2) internal pure returns (bool) { unchecked {
    return {{$packed}}.unwrap(__packed1) == {{$packed}}.unwrap(__packed2);
  }}

  function unpack({{$packed}} __packed) internal pure returns ({{range $i, $f := .Fields}}{{sep $i}}{{$f.Type}} __{{$f.Name}}{{end}}) { unchecked {
{{- range .Fields}}
    __{{.Name}} = {{.Get}};
{{- end}}
  }}
{{range .Fields}}
  function {{.Name}}({{$packed}} __packed) internal pure returns({{.Type}}) { unchecked {
    return {{.Get}};
  }}

  function {{.Name}}({{$packed}} __packed, {{.Type}} val) internal pure returns({{$packed}}) { unchecked {
    return {{.Set}};
  }}
{{end -}}
}

function t_of_struct({{$unpacked}} memory __s) pure returns ({{$packed}}) { unchecked {
  return pack({{range $i, $f := .Fields}}{{sep $i}}__s.{{$f.Name}}{{end}});
}}

function pack({{range $i, $f := .Fields}}{{sep $i}}{{$f.Type}} __{{$f.Name}}{{end}}) pure returns ({{$packed}}) { unchecked {
  return {{.Pack}};
}}
`))
