// Package namespace flattens nested maps into separator-joined paths and
// rebuilds the nesting afterwards.
//
// Flatten turns {"TODO": {"ADD": f}} into {"TODO/ADD": f}; Unflatten turns the
// flat form back into a Tree, optionally renaming each path segment.
package namespace

import (
	"errors"
	"fmt"
	"strings"

	"github.com/comalice/actionx/internal/primitives"
)

// MaxDepth bounds nesting. Maps are expected to be trees, so hitting the
// bound almost always means a map contains itself.
const MaxDepth = 64

var (
	ErrMalformed = errors.New("malformed action map")
	ErrCollision = errors.New("namespace collision")
)

// Tree is the nested form rebuilt by Unflatten.
type Tree[L any] struct {
	Leaves   map[string]L
	Branches map[string]*Tree[L]
}

// NewTree returns an empty tree.
func NewTree[L any]() *Tree[L] {
	return &Tree[L]{
		Leaves:   make(map[string]L),
		Branches: make(map[string]*Tree[L]),
	}
}

// Len counts the leaves of t and all its branches.
func (t *Tree[L]) Len() int {
	n := len(t.Leaves)
	for _, b := range t.Branches {
		n += b.Len()
	}
	return n
}

// Flatten walks m and returns its leaves keyed by their full path, with path
// segments joined by sep. branch reports whether a value is a nested map and
// returns its children.
func Flatten[V any](m map[string]V, sep string, branch func(V) (map[string]V, bool)) (map[string]V, error) {
	if sep == "" {
		return nil, fmt.Errorf("%w: empty namespace separator", ErrMalformed)
	}
	flat := make(map[string]V)
	if err := flatten(m, sep, branch, "", 0, flat); err != nil {
		return nil, err
	}
	return flat, nil
}

func flatten[V any](m map[string]V, sep string, branch func(V) (map[string]V, bool), prefix string, depth int, flat map[string]V) error {
	if depth >= MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d levels at %q", ErrMalformed, MaxDepth, prefix)
	}
	for _, key := range primitives.SortedKeys(m) {
		path := key
		if prefix != "" {
			path = prefix + sep + key
		}
		if children, ok := branch(m[key]); ok {
			if err := flatten(children, sep, branch, path, depth+1, flat); err != nil {
				return err
			}
			continue
		}
		if _, dup := flat[path]; dup {
			return fmt.Errorf("%w: %q is declared twice", ErrCollision, path)
		}
		flat[path] = m[key]
	}
	return nil
}

// Unflatten splits every key of flat on sep and nests the values accordingly.
// rename is applied to each segment; nil keeps segments as they are.
func Unflatten[L any](flat map[string]L, sep string, rename func(string) string) (*Tree[L], error) {
	if sep == "" {
		return nil, fmt.Errorf("%w: empty namespace separator", ErrMalformed)
	}
	if rename == nil {
		rename = func(s string) string { return s }
	}

	root := NewTree[L]()
	for _, key := range primitives.SortedKeys(flat) {
		segments := strings.Split(key, sep)
		node := root
		for _, seg := range segments[:len(segments)-1] {
			name := rename(seg)
			if _, isLeaf := node.Leaves[name]; isLeaf {
				return nil, fmt.Errorf("%w: %q is both an action and a namespace in %q", ErrCollision, name, key)
			}
			child, ok := node.Branches[name]
			if !ok {
				child = NewTree[L]()
				node.Branches[name] = child
			}
			node = child
		}

		name := rename(segments[len(segments)-1])
		if _, isBranch := node.Branches[name]; isBranch {
			return nil, fmt.Errorf("%w: %q is both an action and a namespace in %q", ErrCollision, name, key)
		}
		if _, dup := node.Leaves[name]; dup {
			return nil, fmt.Errorf("%w: %q maps to %q more than once", ErrCollision, key, name)
		}
		node.Leaves[name] = flat[key]
	}
	return root, nil
}
