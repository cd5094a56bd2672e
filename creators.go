package actionx

import (
	"sort"

	"github.com/comalice/actionx/internal/primitives"
)

// Node is an entry of a CreatorMap: either an *ActionCreator or a nested CreatorMap.
type Node interface {
	isNode()
}

// CreatorMap holds action creators keyed by camel-cased name, nested the
// same way as the ActionMap they were built from.
type CreatorMap map[string]Node

func (CreatorMap) isNode() {}

// Creator returns the creator at path, e.g. Creator("todo", "add").
func (m CreatorMap) Creator(path ...string) (*ActionCreator, bool) {
	if len(path) == 0 {
		return nil, false
	}
	parent, ok := m.Namespace(path[:len(path)-1]...)
	if !ok {
		return nil, false
	}
	c, ok := parent[path[len(path)-1]].(*ActionCreator)
	return c, ok
}

// Namespace returns the nested map at path. An empty path returns m itself.
func (m CreatorMap) Namespace(path ...string) (CreatorMap, bool) {
	current := m
	for _, key := range path {
		next, ok := current[key].(CreatorMap)
		if !ok {
			return nil, false
		}
		current = next
	}
	return current, true
}

// Walk calls fn for every creator in m, depth first in key order.
func (m CreatorMap) Walk(fn func(path []string, c *ActionCreator)) {
	m.walk(nil, fn)
}

func (m CreatorMap) walk(prefix []string, fn func(path []string, c *ActionCreator)) {
	for _, key := range m.Keys() {
		path := append(append([]string(nil), prefix...), key)
		switch n := m[key].(type) {
		case *ActionCreator:
			fn(path, n)
		case CreatorMap:
			n.walk(path, fn)
		}
	}
}

// Keys returns the top-level keys of m in sorted order.
func (m CreatorMap) Keys() []string {
	return primitives.SortedKeys(m)
}

// Types returns every action type reachable from m, sorted.
func (m CreatorMap) Types() []string {
	var types []string
	m.Walk(func(_ []string, c *ActionCreator) {
		types = append(types, c.Type())
	})
	sort.Strings(types)
	return types
}

// Len counts the creators reachable from m.
func (m CreatorMap) Len() int {
	n := 0
	m.Walk(func([]string, *ActionCreator) { n++ })
	return n
}
