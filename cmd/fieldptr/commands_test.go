package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/fieldptr/pkg/display"
	"github.com/arthur-debert/fieldptr/pkg/errors"
	"github.com/arthur-debert/fieldptr/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const caseTOML = `
name = "cli-demo"

[[fields]]
name = "temperature"

[[fields]]
name = "boundary_temperature"
location = "boundary_faces"

[[fields]]
name = "species_o3"

[models.atmospheric]
enabled = true
species = ["species_o3"]
`

func writeCase(t *testing.T) string {
	t.Helper()
	return testutil.NewTestEnvironment(t).WriteCase("case.toml", caseTOML)
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	testutil.NewTestEnvironment(t)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestBindText(t *testing.T) {
	out, err := runCmd(t, "bind", writeCase(t))
	require.NoError(t, err)

	assert.Contains(t, out, "ROLE")
	assert.Contains(t, out, "temperature")
	assert.Contains(t, out, "boundary_temperature")
	assert.Contains(t, out, "<absent>")
}

func TestBindJSON(t *testing.T) {
	out, err := runCmd(t, "bind", writeCase(t), "--format", "json")
	require.NoError(t, err)

	var table display.Table
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	assert.Equal(t, "cli-demo", table.Case)

	found := map[string]string{}
	for _, row := range table.Rows {
		if row.Present {
			found[row.Role] = row.Field
		}
	}
	assert.Equal(t, map[string]string{
		"t":         "temperature",
		"t_b":       "boundary_temperature",
		"pot_t":     "temperature",
		"chemistry": "species_o3",
	}, found)
}

func TestBindMissingCase(t *testing.T) {
	_, err := runCmd(t, "bind", filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad), "got %v", err)
}

func TestLookup(t *testing.T) {
	path := writeCase(t)

	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{name: "scalar role", args: []string{"t"}, expected: "temperature#0"},
		{name: "explicit index", args: []string{"chemistry", "0"}, expected: "species_o3#2"},
		{name: "past the end", args: []string{"chemistry", "5"}, expected: "<absent>"},
		{name: "absent field", args: []string{"h"}, expected: "<absent>"},
		{name: "never mapped", args: []string{"ntdrp"}, expected: "<absent>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCmd(t, append([]string{"lookup", path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, strings.TrimSpace(out))
		})
	}
}

func TestLookupYAML(t *testing.T) {
	out, err := runCmd(t, "lookup", writeCase(t), "t_b", "--format", "yaml")
	require.NoError(t, err)
	assert.Contains(t, out, "field: boundary_temperature")
	assert.Contains(t, out, "location: boundary_faces")
}

func TestLookupErrors(t *testing.T) {
	path := writeCase(t)

	tests := []struct {
		name     string
		args     []string
		wantCode errors.ErrorCode
	}{
		{name: "unknown role", args: []string{"lookup", path, "pressure"}, wantCode: errors.ErrRoleUnknown},
		{name: "bad index", args: []string{"lookup", path, "t", "one"}, wantCode: errors.ErrInvalidInput},
		{name: "negative index", args: []string{"lookup", "--", path, "t", "-1"}, wantCode: errors.ErrRoleIndex},
		{name: "strict absent field", args: []string{"lookup", "--strict", path, "h"}, wantCode: errors.ErrFieldNotFound},
		{name: "strict past the end", args: []string{"lookup", "--strict", path, "chemistry", "5"}, wantCode: errors.ErrFieldNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCmd(t, tt.args...)
			assert.True(t, errors.IsErrorCode(err, tt.wantCode), "got %v", err)
		})
	}
}

func TestLookupStrictFound(t *testing.T) {
	out, err := runCmd(t, "lookup", "--strict", writeCase(t), "t")
	require.NoError(t, err)
	assert.Equal(t, "temperature#0", strings.TrimSpace(out))
}

func TestRoles(t *testing.T) {
	out, err := runCmd(t, "roles")
	require.NoError(t, err)
	assert.Contains(t, out, "hybrid_blend")
	assert.Contains(t, out, "chemistry")

	out, err = runCmd(t, "roles", "--explain")
	require.NoError(t, err)
	assert.Contains(t, out, "# Field pointer roles")
	assert.Contains(t, out, "`t_poro`")
}

func TestInvalidFormat(t *testing.T) {
	_, err := runCmd(t, "roles", "--format", "xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), "got %v", err)
}

func TestVersion(t *testing.T) {
	out, err := runCmd(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "fieldptr version dev")
}

func TestCompletion(t *testing.T) {
	for _, shell := range []string{"bash", "zsh", "fish", "powershell"} {
		t.Run(shell, func(t *testing.T) {
			out, err := runCmd(t, "completion", shell)
			require.NoError(t, err)
			assert.Contains(t, out, "fieldptr")
		})
	}
}

func TestNoCommand(t *testing.T) {
	_, err := runCmd(t)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestVerboseWritesLogFile(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WriteCase("case.toml", caseTOML)

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"-vv", "bind", path})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(env.LogFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Setup complete")
}

func TestBindWithOverlay(t *testing.T) {
	env := testutil.NewTestEnvironment(t)
	path := env.WriteCase("case.toml", caseTOML)
	overlay := env.WriteCase("extra.yaml", `
fields:
  - name: enthalpy
bindings:
  - role: chemistry
    field: enthalpy
    index: 1
`)

	out, err := runCmd(t, "lookup", path, "h", "--overlay", overlay)
	require.NoError(t, err)
	assert.Equal(t, "enthalpy#3", strings.TrimSpace(out))

	out, err = runCmd(t, "lookup", path, "chemistry", "1", "-o", overlay)
	require.NoError(t, err)
	assert.Equal(t, "enthalpy#3", strings.TrimSpace(out))
}
