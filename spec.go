package actionx

import (
	"fmt"

	"github.com/comalice/actionx/internal/primitives"
)

// Spec describes one entry of an ActionMap. It is one of Transform,
// TransformWithMeta or a nested ActionMap.
type Spec interface {
	isSpec()
}

// Transform is a leaf whose actions carry only a payload.
type Transform PayloadFunc

// TransformWithMeta is a leaf whose actions carry a payload and Meta.
// A nil Payload defaults to Identity; Meta is required.
type TransformWithMeta struct {
	Payload PayloadFunc
	Meta    MetaFunc
}

// ActionMap maps action type names to leaves or nested namespaces.
type ActionMap map[string]Spec

func (Transform) isSpec()         {}
func (TransformWithMeta) isSpec() {}
func (ActionMap) isSpec()         {}

// validateLeaf checks a flattened entry before any creator is built.
func validateLeaf(actionType string, s Spec) error {
	switch leaf := s.(type) {
	case Transform:
		if leaf != nil {
			return nil
		}
	case TransformWithMeta:
		if leaf.Meta != nil {
			return nil
		}
	}
	return &ConfigError{
		Type:   actionType,
		Reason: "expected payload function or payload/meta pair",
	}
}

// creatorFor builds the creator for a leaf that passed validateLeaf.
func creatorFor(actionType string, s Spec) *ActionCreator {
	if leaf, ok := s.(TransformWithMeta); ok {
		return CreateAction(actionType, leaf.Payload, leaf.Meta)
	}
	return CreateAction(actionType, PayloadFunc(s.(Transform)), nil)
}

// ParseActionMap converts loosely typed input, such as a map[string]any built
// by hand or decoded from a document, into an ActionMap.
//
// Leaves may be a Spec, a PayloadFunc, func(...any) any, func(any) any,
// func() any, or a two element []any holding a payload function (or nil for
// Identity) and a meta function. Nested map[string]any values become nested
// namespaces. Anything else is a configuration error.
func ParseActionMap(v any) (ActionMap, error) {
	return parseActionMap("", v)
}

func parseActionMap(path string, v any) (ActionMap, error) {
	switch m := v.(type) {
	case ActionMap:
		return m, nil
	case map[string]Spec:
		return ActionMap(m), nil
	case map[string]any:
		out := make(ActionMap, len(m))
		for _, k := range primitives.SortedKeys(m) {
			spec, err := parseSpec(join(path, k), m[k])
			if err != nil {
				return nil, err
			}
			out[k] = spec
		}
		return out, nil
	default:
		return nil, &ConfigError{
			Type:   path,
			Reason: fmt.Sprintf("%s, got %T", expectedArguments, v),
		}
	}
}

func parseSpec(path string, v any) (Spec, error) {
	switch x := v.(type) {
	case Spec:
		return x, nil
	case map[string]any, map[string]Spec:
		return parseActionMap(path, x)
	case []any:
		if len(x) != 2 {
			return nil, &ConfigError{
				Type:   path,
				Reason: fmt.Sprintf("expected [payload, meta] pair, got %d elements", len(x)),
			}
		}
		var payload PayloadFunc
		if x[0] != nil {
			fn, ok := asFunc(x[0])
			if !ok {
				return nil, &ConfigError{Type: path, Reason: fmt.Sprintf("payload transform is %T, not a function", x[0])}
			}
			payload = fn
		}
		meta, ok := asFunc(x[1])
		if !ok {
			return nil, &ConfigError{Type: path, Reason: fmt.Sprintf("meta transform is %T, not a function", x[1])}
		}
		return TransformWithMeta{Payload: payload, Meta: MetaFunc(meta)}, nil
	}

	if fn, ok := asFunc(v); ok {
		return Transform(fn), nil
	}
	return nil, &ConfigError{
		Type:   path,
		Reason: fmt.Sprintf("expected function or [payload, meta] pair, got %T", v),
	}
}

// asFunc adapts the function shapes ParseActionMap accepts to PayloadFunc.
func asFunc(v any) (PayloadFunc, bool) {
	switch fn := v.(type) {
	case PayloadFunc:
		return fn, fn != nil
	case MetaFunc:
		return PayloadFunc(fn), fn != nil
	case func(...any) any:
		return fn, fn != nil
	case func(any) any:
		if fn == nil {
			return nil, false
		}
		return func(args ...any) any { return fn(Identity(args...)) }, true
	case func() any:
		if fn == nil {
			return nil, false
		}
		return func(...any) any { return fn() }, true
	}
	return nil, false
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}
