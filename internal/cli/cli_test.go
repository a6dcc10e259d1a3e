package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/mangrovedao/mangrove-strats/internal/config"
)

const validYAML = `
output:
  dir: sol
structs:
  - name: offer
    fields:
      - {name: prev, type: uint, bits: 32}
      - {name: next, type: uint, bits: 32}
      - {name: wants, type: uint, bits: 96}
      - {name: gives, type: uint, bits: 96}
  - name: global
    fields:
      - {name: monitor, type: address, bits: 160}
      - {name: useOracle, type: bool, bits: 1}
`

const invalidYAML = `
structs:
  offerDetail:
    - {name: tick, type: uint, bits: 24}
    - {name: provision, type: uint, bits: 96}
    - {name: maker, type: address, bits: 160}
  global:
    - {name: monitor, type: address, bits: 128}
  local:
    - {name: active, type: bool, bits: 1}
`

func writeDefs(t *testing.T, name, data string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	root := NewRootCommand()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.ExecuteContext(context.Background())

	return stdout.String(), stderr.String(), err
}

func TestGen(t *testing.T) {
	path := writeDefs(t, "structs.yaml", validYAML)

	_, logs, err := run(t, "gen", "-c", path)
	require.NoError(t, err)

	dir := filepath.Join(filepath.Dir(path), "sol")
	for _, name := range []string{"StructUtilities.post.sol", "Offer.post.sol", "Global.post.sol"} {
		assert.FileExists(t, filepath.Join(dir, name))
	}

	src, err := os.ReadFile(filepath.Join(dir, "Global.post.sol"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "uint constant useOracle_before = 160;")
	assert.Contains(t, logs, "Generated 3 files for 2 structs")

	// A second run leaves everything untouched.
	_, logs, err = run(t, "gen", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "3 unchanged")
}

func TestGen_FlagsOverrideFile(t *testing.T) {
	path := writeDefs(t, "structs.yaml", validYAML)
	out := filepath.Join(t.TempDir(), "out")

	_, _, err := run(t, "gen", "-c", path, "-o", out, "--pragma", ">=0.8.20", "--filename", "{{.Name}}.sol")
	require.NoError(t, err)

	src, err := os.ReadFile(filepath.Join(out, "offer.sol"))
	require.NoError(t, err)
	assert.Contains(t, string(src), "pragma solidity >=0.8.20;")
}

func TestGen_FailsFast(t *testing.T) {
	path := writeDefs(t, "structs.yaml", invalidYAML)

	_, _, err := run(t, "gen", "-c", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `struct "offerDetail": bitsize 280 > 256`)

	_, statErr := os.Stat(filepath.Join(filepath.Dir(path), "StructUtilities.post.sol"))
	assert.True(t, os.IsNotExist(statErr), "nothing is written when a struct fails")
}

func TestGen_FieldNames(t *testing.T) {
	path := writeDefs(t, "structs.yaml", `
structs:
  odd:
    - {name: pack, type: uint, bits: 8}
`)

	_, logs, err := run(t, "gen", "-c", path)
	require.NoError(t, err)
	assert.Contains(t, logs, "its library accessors shadow the file-level pack")

	path = writeDefs(t, "structs.yaml", `
structs:
  odd:
    - {name: unpack, type: uint, bits: 8}
`)

	_, _, err = run(t, "gen", "-c", path)
	assert.ErrorContains(t, err, "[odd] unpack: [reserved_name] its getter redeclares the generated unpack(packed)")
	assert.NoFileExists(t, filepath.Join(filepath.Dir(path), "Odd.post.sol"))
}

func TestGen_RequiresConfig(t *testing.T) {
	_, _, err := run(t, "gen")
	assert.ErrorContains(t, err, `required flag(s) "config" not set`)
}

func TestCheck(t *testing.T) {
	path := writeDefs(t, "structs.yaml", invalidYAML)

	out, _, err := run(t, "check", "-c", path)
	assert.ErrorContains(t, err, "[offerDetail]: [layout_overflow] bitsize 280 > 256; [global] monitor:")

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "error: [offerDetail]: [layout_overflow] bitsize 280 > 256", lines[0])
	assert.Equal(t, "error: [global] monitor: [invalid_address_width] addresses must have 160 bits, got 128", lines[1])
	assert.Equal(t, "info: [local]: [unused_bits] 255 low-order bits unused", lines[2])
}

func TestCheck_FieldNames(t *testing.T) {
	path := writeDefs(t, "structs.yaml", `
structs:
  odd:
    - {name: eq, type: uint, bits: 8}
    - {name: gasprice, type: uint, bits: 248}
`)

	out, _, err := run(t, "check", "-c", path)
	require.NoError(t, err, "warnings alone do not fail")
	assert.Equal(t, "warning: [odd] eq: [shadowed_name] its accessors overload the generated eq\n", out)

	path = writeDefs(t, "structs.yaml", `
structs:
  odd:
    - {name: address, type: address, bits: 160}
`)

	out, _, err = run(t, "check", "-c", path)
	assert.ErrorContains(t, err, "[odd] address: [reserved_name] address is a Solidity keyword")
	assert.Contains(t, out, "error: [odd] address: [reserved_name] address is a Solidity keyword\n")
	assert.Contains(t, out, "info: [odd]: [unused_bits] 96 low-order bits unused\n")
}

func TestCheck_Valid(t *testing.T) {
	path := writeDefs(t, "structs.toml", `
[[structs]]
name = "offer"

  [[structs.fields]]
  name = "prev"
  type = "uint"
  bits = 256
`)

	out, logs, err := run(t, "check", "-c", path)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, logs, "all structs fit")
}

func TestLayout_YAML(t *testing.T) {
	path := writeDefs(t, "structs.jsonc", `{
  // offers only
  "structs": [
    {"name": "offer", "fields": [
      {"name": "prev", "type": "uint", "bits": 32},
      {"name": "next", "type": "uint", "bits": 32},
    ]},
  ],
}`)

	out, _, err := run(t, "layout", "-c", path)
	require.NoError(t, err)

	var facts []structFacts
	require.NoError(t, yaml.Unmarshal([]byte(out), &facts))
	require.Len(t, facts, 1)

	s := facts[0]
	assert.Equal(t, "OfferPacked", s.Packed)
	assert.Equal(t, 64, s.TotalBits)
	assert.Equal(t, 192, s.UnusedBits)
	require.Len(t, s.Fields, 2)
	assert.Equal(t, 32, s.Fields[1].Before)
	assert.Equal(t, "(shr (shl word next_before) (sub 256 next_bits))", s.Fields[1].Extract)
	assert.Equal(t, []symbolFacts{{Name: "next_bits", Value: 32}, {Name: "next_before", Value: 32}}, s.Fields[1].Symbols)
	assert.Contains(t, out, "type: uint")
}

func TestLayout_DumpAndSelect(t *testing.T) {
	path := writeDefs(t, "structs.yaml", validYAML)

	out, _, err := run(t, "layout", "-c", path, "--format", "dump", "--struct", "global")
	require.NoError(t, err)
	assert.Contains(t, out, `Name: (string) (len=6) "global"`)
	assert.NotContains(t, out, "OfferPacked")

	// Only the selected struct is built.
	broken := writeDefs(t, "structs.yaml", validYAML+`
  - name: broken
    fields:
      - {name: wide, type: uint, bits: 300}
`)
	out, _, err = run(t, "layout", "-c", broken, "--struct", "offer")
	require.NoError(t, err)
	assert.Contains(t, out, "OfferPacked")

	_, _, err = run(t, "layout", "-c", broken, "--struct", "broken")
	assert.ErrorContains(t, err, "broken")

	_, _, err = run(t, "layout", "-c", path, "--struct", "missing")
	assert.ErrorContains(t, err, `no struct named "missing"`)

	_, _, err = run(t, "layout", "-c", path, "--format", "xml")
	assert.ErrorContains(t, err, `unknown format "xml"`)
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "structs.toml")

	_, _, err := run(t, "init", path)
	require.NoError(t, err)

	f, err := config.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, starterFile(), f)

	_, _, err = run(t, "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, _, err = run(t, "init", path, "--force")
	assert.NoError(t, err)

	// Without an argument the file lands in the working directory.
	t.Chdir(t.TempDir())
	_, _, err = run(t, "init")
	require.NoError(t, err)
	assert.FileExists(t, "structs.yaml")

	// The starter file is itself valid.
	_, _, err = run(t, "check", "-c", path)
	assert.NoError(t, err)
}

func TestVersion(t *testing.T) {
	SetVersion("v1.2.3", "abc123", "2026-01-01")
	t.Cleanup(func() { SetVersion("", "", "") })

	out, _, err := run(t, "--version")
	require.NoError(t, err)
	assert.Equal(t, "packgen v1.2.3\ncommit: abc123\nbuilt: 2026-01-01\n", out)
}

func TestExampleDefinitions(t *testing.T) {
	for _, name := range []string{"structs.yaml", "structs.jsonc"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join("..", "..", "examples", name)

			_, _, err := run(t, "check", "-c", path)
			require.NoError(t, err)

			out := t.TempDir()
			_, _, err = run(t, "gen", "-c", path, "-o", out)
			require.NoError(t, err)
			assert.FileExists(t, filepath.Join(out, "StructUtilities.post.sol"))
		})
	}
}
