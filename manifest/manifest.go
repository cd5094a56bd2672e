// Package manifest loads declarative action manifests from YAML or JSON and
// builds action creators from them.
//
// A manifest names its transforms instead of holding functions:
//
//	name: todo
//	namespace: /
//	actions:
//	  TODO:
//	    ADD: identity                # payload transform
//	    REMOVE: [identity, stamp]    # payload and meta transforms
//	    CLEAR: [null, stamp]         # identity payload, meta only
//	identity: [RESET, UNDO]
//
// Names are resolved against a Registry when the manifest is built.
package manifest

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/comalice/actionx"
	"github.com/comalice/actionx/internal/primitives"
)

var validate = validator.New()

// Manifest is the document form of a CreateActions call.
type Manifest struct {
	Name      string         `json:"name,omitempty" yaml:"name,omitempty" validate:"omitempty,max=128"`
	Namespace string         `json:"namespace,omitempty" yaml:"namespace,omitempty" validate:"omitempty,max=16"`
	Actions   map[string]any `json:"actions,omitempty" yaml:"actions,omitempty"`
	Identity  []string       `json:"identity,omitempty" yaml:"identity,omitempty" validate:"dive,required"`
}

// Validate checks the manifest shape without resolving transform names.
func (m *Manifest) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("manifest fields: %w", err)
	}
	if len(m.Actions) == 0 && len(m.Identity) == 0 {
		return errors.New("manifest declares no actions")
	}
	return checkActions("", m.Actions)
}

func checkActions(path string, actions map[string]any) error {
	for _, key := range primitives.SortedKeys(actions) {
		full := joinPath(path, key)
		switch v := actions[key].(type) {
		case string:
			if v == "" {
				return fmt.Errorf("action %s: empty transform name", full)
			}
		case []any:
			if len(v) != 2 {
				return fmt.Errorf("action %s: expected [payload, meta], got %d elements", full, len(v))
			}
			if v[0] != nil {
				if _, ok := v[0].(string); !ok {
					return fmt.Errorf("action %s: payload transform must be a name or null", full)
				}
			}
			if name, ok := v[1].(string); !ok || name == "" {
				return fmt.Errorf("action %s: meta transform must be a name", full)
			}
		case map[string]any:
			if err := checkActions(full, v); err != nil {
				return err
			}
		default:
			return fmt.Errorf("action %s: unsupported value %T", full, v)
		}
	}
	return nil
}

// ActionMap resolves transform names against reg.
// A manifest without actions resolves to a nil map.
func (m *Manifest) ActionMap(reg *Registry) (actionx.ActionMap, error) {
	if len(m.Actions) == 0 {
		return nil, nil
	}
	return resolve("", m.Actions, reg)
}

func resolve(path string, actions map[string]any, reg *Registry) (actionx.ActionMap, error) {
	out := make(actionx.ActionMap, len(actions))
	for _, key := range primitives.SortedKeys(actions) {
		full := joinPath(path, key)
		switch v := actions[key].(type) {
		case string:
			fn, err := reg.Lookup(v)
			if err != nil {
				return nil, &actionx.ConfigError{Type: full, Reason: "cannot resolve payload transform", Err: err}
			}
			out[key] = actionx.Transform(fn)
		case []any:
			leaf, err := resolvePair(full, v, reg)
			if err != nil {
				return nil, err
			}
			out[key] = leaf
		case map[string]any:
			nested, err := resolve(full, v, reg)
			if err != nil {
				return nil, err
			}
			out[key] = nested
		default:
			return nil, &actionx.ConfigError{Type: full, Reason: fmt.Sprintf("unsupported manifest value %T", v)}
		}
	}
	return out, nil
}

func resolvePair(path string, pair []any, reg *Registry) (actionx.Spec, error) {
	if len(pair) != 2 {
		return nil, &actionx.ConfigError{Type: path, Reason: fmt.Sprintf("expected [payload, meta], got %d elements", len(pair))}
	}
	var leaf actionx.TransformWithMeta
	if name, ok := pair[0].(string); ok && name != "" {
		fn, err := reg.Lookup(name)
		if err != nil {
			return nil, &actionx.ConfigError{Type: path, Reason: "cannot resolve payload transform", Err: err}
		}
		leaf.Payload = fn
	}
	name, _ := pair[1].(string)
	fn, err := reg.Lookup(name)
	if err != nil {
		return nil, &actionx.ConfigError{Type: path, Reason: "cannot resolve meta transform", Err: err}
	}
	leaf.Meta = actionx.MetaFunc(fn)
	return leaf, nil
}

// Build validates the manifest and creates its action creators.
// The manifest namespace, when set, comes before opts so callers can override it.
func (m *Manifest) Build(reg *Registry, opts ...actionx.Option) (actionx.CreatorMap, error) {
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
	}
	if reg == nil {
		reg = NewRegistry()
	}
	actionMap, err := m.ActionMap(reg)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
	}
	if m.Namespace != "" {
		opts = append([]actionx.Option{actionx.WithNamespace(m.Namespace)}, opts...)
	}
	creators, err := actionx.CreateActions(actionMap, m.Identity, opts...)
	if err != nil {
		return nil, fmt.Errorf("manifest %q: %w", m.Name, err)
	}
	return creators, nil
}

// Digest returns a short content hash of the manifest. Map keys are encoded in
// sorted order, so equal manifests hash equally whatever their source format.
func (m *Manifest) Digest() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("json marshal: %w", err)
	}
	sum := sha256.Sum256(data)
	return fmt.Sprintf("%x", sum[:8]), nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "/" + key
}
