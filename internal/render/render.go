// Package render exports a CreatorMap as a text tree, Graphviz DOT or JSON.
// Output is deterministic: keys are always visited in sorted order.
package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/comalice/actionx"
)

// Visualizer renders creator trees.
type Visualizer struct {
	// Indent is used once per nesting level in ExportTree. Defaults to two spaces.
	Indent string
}

// ExportTree renders one line per namespace and creator:
//
//	todo/
//	  add      TODO/ADD
//	  remove   TODO/REMOVE  +meta
//	reset      RESET
func (v *Visualizer) ExportTree(m actionx.CreatorMap) string {
	indent := v.Indent
	if indent == "" {
		indent = "  "
	}
	width := keyWidth(m, 0, len(indent))

	var buf bytes.Buffer
	writeTree(&buf, m, 0, indent, width)
	return buf.String()
}

func writeTree(buf *bytes.Buffer, m actionx.CreatorMap, depth int, indent string, width int) {
	prefix := strings.Repeat(indent, depth)
	for _, key := range m.Keys() {
		switch n := m[key].(type) {
		case actionx.CreatorMap:
			fmt.Fprintf(buf, "%s%s/\n", prefix, key)
			writeTree(buf, n, depth+1, indent, width)
		case *actionx.ActionCreator:
			label := prefix + key
			line := fmt.Sprintf("%-*s  %s", width, label, n.Type())
			if n.HasMeta() {
				line += "  +meta"
			}
			buf.WriteString(line + "\n")
		}
	}
}

// keyWidth is the widest indented creator key, used to align action types.
func keyWidth(m actionx.CreatorMap, depth, indentLen int) int {
	width := 0
	for key, n := range m {
		w := depth*indentLen + len(key)
		if sub, ok := n.(actionx.CreatorMap); ok {
			w = keyWidth(sub, depth+1, indentLen)
		}
		if w > width {
			width = w
		}
	}
	return width
}

// ExportDOT generates Graphviz DOT source with one cluster per namespace.
func (v *Visualizer) ExportDOT(m actionx.CreatorMap) string {
	var buf bytes.Buffer
	buf.WriteString(`digraph Actions {
  rankdir=LR;
  node [shape=box, fontsize=10, style=rounded];
`)
	writeDOT(&buf, m, nil, 1)
	buf.WriteString("}\n")
	return buf.String()
}

func writeDOT(buf *bytes.Buffer, m actionx.CreatorMap, path []string, depth int) {
	pad := strings.Repeat("  ", depth)
	for _, key := range m.Keys() {
		full := append(append([]string(nil), path...), key)
		id := strings.Join(full, ".")
		switch n := m[key].(type) {
		case actionx.CreatorMap:
			fmt.Fprintf(buf, "%ssubgraph \"cluster_%s\" {\n", pad, id)
			fmt.Fprintf(buf, "%s  label=%q;\n", pad, key)
			writeDOT(buf, n, full, depth+1)
			fmt.Fprintf(buf, "%s}\n", pad)
		case *actionx.ActionCreator:
			style := ""
			if n.HasMeta() {
				style = " style=\"rounded,filled\" fillcolor=lightblue"
			}
			fmt.Fprintf(buf, "%s%q [label=%q%s];\n", pad, id, key+"\n"+n.Type(), style)
		}
	}
}

// ExportJSON maps every key to its action type, keeping the nesting.
func (v *Visualizer) ExportJSON(m actionx.CreatorMap) ([]byte, error) {
	return json.MarshalIndent(typeTree(m), "", "  ")
}

func typeTree(m actionx.CreatorMap) map[string]any {
	out := make(map[string]any, len(m))
	for key, n := range m {
		switch n := n.(type) {
		case actionx.CreatorMap:
			out[key] = typeTree(n)
		case *actionx.ActionCreator:
			out[key] = n.Type()
		}
	}
	return out
}
