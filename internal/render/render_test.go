package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/actionx"
)

func sampleCreators(t *testing.T) actionx.CreatorMap {
	t.Helper()
	creators, err := actionx.CreateActions(actionx.ActionMap{
		"TODO": actionx.ActionMap{
			"ADD": actionx.Transform(actionx.Identity),
			"REMOVE": actionx.TransformWithMeta{
				Meta: func(...any) any { return "m" },
			},
		},
	}, []string{"RESET"})
	require.NoError(t, err)
	return creators
}

func TestExportTree(t *testing.T) {
	v := &Visualizer{}
	want := "" +
		"reset     RESET\n" +
		"todo/\n" +
		"  add     TODO/ADD\n" +
		"  remove  TODO/REMOVE  +meta\n"
	assert.Equal(t, want, v.ExportTree(sampleCreators(t)))
}

func TestExportTreeCustomIndent(t *testing.T) {
	v := &Visualizer{Indent: "\t"}
	out := v.ExportTree(sampleCreators(t))
	assert.Contains(t, out, "todo/\n\tadd")
}

func TestExportDOT(t *testing.T) {
	v := &Visualizer{}
	dot := v.ExportDOT(sampleCreators(t))

	assert.Contains(t, dot, "digraph Actions {")
	assert.Contains(t, dot, `"reset" [label="reset\nRESET"];`)
	assert.Contains(t, dot, `subgraph "cluster_todo" {`)
	assert.Contains(t, dot, `label="todo";`)
	assert.Contains(t, dot, `"todo.add" [label="add\nTODO/ADD"];`)
	assert.Contains(t, dot, `"todo.remove" [label="remove\nTODO/REMOVE" style="rounded,filled" fillcolor=lightblue];`)

	assert.Equal(t, dot, v.ExportDOT(sampleCreators(t)), "output must be deterministic")
}

func TestExportJSON(t *testing.T) {
	v := &Visualizer{}
	data, err := v.ExportJSON(sampleCreators(t))
	require.NoError(t, err)
	assert.JSONEq(t, `{"reset":"RESET","todo":{"add":"TODO/ADD","remove":"TODO/REMOVE"}}`, string(data))
}

func TestExportEmpty(t *testing.T) {
	v := &Visualizer{}
	assert.Empty(t, v.ExportTree(actionx.CreatorMap{}))
	assert.Equal(t, "digraph Actions {\n  rankdir=LR;\n  node [shape=box, fontsize=10, style=rounded];\n}\n", v.ExportDOT(actionx.CreatorMap{}))
}
