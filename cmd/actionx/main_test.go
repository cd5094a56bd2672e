package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const todoManifest = `name: todo
actions:
  TODO:
    ADD: identity
    REMOVE: [identity, stamp]
  SYNC: args
identity: [RESET]
`

func writeManifest(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestInspectTree(t *testing.T) {
	path := writeManifest(t, "todo.yaml", todoManifest)

	out, _, err := run(t, "inspect", path)
	require.NoError(t, err)
	want := "" +
		"reset     RESET\n" +
		"sync      SYNC\n" +
		"todo/\n" +
		"  add     TODO/ADD\n" +
		"  remove  TODO/REMOVE  +meta\n"
	assert.Equal(t, want, out)
}

func TestInspectFormats(t *testing.T) {
	path := writeManifest(t, "todo.yaml", todoManifest)

	out, _, err := run(t, "inspect", path, "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"reset":"RESET","sync":"SYNC","todo":{"add":"TODO/ADD","remove":"TODO/REMOVE"}}`, out)

	out, _, err = run(t, "inspect", path, "--format", "dot")
	require.NoError(t, err)
	assert.Contains(t, out, "digraph Actions {")

	_, errOut, err := run(t, "inspect", path, "--format", "svg")
	require.Error(t, err)
	assert.Contains(t, errOut, "configuration validation failed")
}

func TestInspectNamespaceOverride(t *testing.T) {
	path := writeManifest(t, "todo.yaml", todoManifest)

	out, _, err := run(t, "inspect", path, "--namespace", "::", "--format", "json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"reset":"RESET","sync":"SYNC","todo":{"add":"TODO::ADD","remove":"TODO::REMOVE"}}`, out)
}

func TestDispatch(t *testing.T) {
	path := writeManifest(t, "todo.yaml", todoManifest)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "string argument",
			args: []string{"todo.add", "buy milk"},
			want: `{"type":"TODO/ADD","payload":"buy milk"}`,
		},
		{
			name: "json argument",
			args: []string{"todo.add", `{"id":1}`},
			want: `{"type":"TODO/ADD","payload":{"id":1}}`,
		},
		{
			name: "no arguments",
			args: []string{"reset"},
			want: `{"type":"RESET"}`,
		},
		{
			name: "all arguments",
			args: []string{"sync", "1", "true", "x"},
			want: `{"type":"SYNC","payload":[1,true,"x"]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := run(t, append([]string{"dispatch", path}, tt.args...)...)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, out)
		})
	}
}

func TestDispatchMeta(t *testing.T) {
	path := writeManifest(t, "todo.yaml", todoManifest)

	out, _, err := run(t, "dispatch", path, "todo.remove", "3")
	require.NoError(t, err)

	var action struct {
		Type    string         `json:"type"`
		Payload float64        `json:"payload"`
		Meta    map[string]any `json:"meta"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &action))
	assert.Equal(t, "TODO/REMOVE", action.Type)
	assert.Equal(t, float64(3), action.Payload)
	assert.Contains(t, action.Meta, "at")
	assert.EqualValues(t, 1, action.Meta["args"])
}

func TestDispatchUnknownCreator(t *testing.T) {
	path := writeManifest(t, "todo.yaml", todoManifest)

	_, errOut, err := run(t, "dispatch", path, "todo.edit")
	require.Error(t, err)
	assert.Contains(t, errOut, `no action creator at "todo.edit"`)
	assert.Contains(t, errOut, "todo.add")
}

func TestBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		body    string
		wantErr string
	}{
		{name: "unknown transform", file: "bad.yaml", body: "actions:\n  ADD: shout\n", wantErr: "unknown transform"},
		{name: "unknown format", file: "todo.toml", body: "", wantErr: "unknown manifest format"},
		{name: "collision", file: "dup.json", body: `{"actions":{"FOO_BAR":"identity","fooBar":"identity"}}`, wantErr: "fooBar"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeManifest(t, tt.file, tt.body)
			_, errOut, err := run(t, "inspect", path)
			require.Error(t, err)
			assert.Contains(t, errOut, tt.wantErr)
		})
	}
}

func TestLogLevelFromEnvironment(t *testing.T) {
	t.Setenv("ACTIONX_LOG_LEVEL", "info")
	path := writeManifest(t, "todo.yaml", todoManifest)

	_, errOut, err := run(t, "inspect", path)
	require.NoError(t, err)
	assert.Contains(t, errOut, "manifest loaded")
	assert.Contains(t, errOut, "name=todo")
}
