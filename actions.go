package actionx

import (
	"maps"

	"github.com/comalice/actionx/internal/namespace"
	"github.com/comalice/actionx/internal/primitives"
)

// CreateActions builds creators for every leaf of actionMap plus one identity
// creator per name in identity.
//
// Nested maps keep their shape in the result, with every key camel-cased; the
// generated action types join the original keys with the configured namespace
// ("TODO/ADD"). Identity creators always sit at the top level and replace a
// map entry of the same name. A nil actionMap builds identity creators only.
//
// Any invalid input fails the whole call; no partial result is returned.
func CreateActions(actionMap ActionMap, identity []string, opts ...Option) (CreatorMap, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := validateIdentity(identity); err != nil {
		return nil, err
	}

	if actionMap == nil {
		if len(identity) == 0 {
			return nil, &ConfigError{Reason: expectedArguments}
		}
		creators, err := identityCreators(identity)
		if err != nil {
			return nil, err
		}
		cfg.Logger.Debug("built identity action creators", "count", len(creators))
		return creators, nil
	}

	creators, err := creatorsFromActionMap(actionMap, cfg)
	if err != nil {
		return nil, err
	}
	identities, err := identityCreators(identity)
	if err != nil {
		return nil, err
	}
	for key := range identities {
		if _, clash := creators[key]; clash {
			cfg.Logger.Warn("identity action replaces action map entry", "key", key)
		}
	}
	maps.Copy(creators, identities)

	cfg.Logger.Debug("built action creators",
		"count", creators.Len(),
		"identity", len(identities),
		"namespace", cfg.Namespace,
	)
	return creators, nil
}

// CreateIdentityActions builds a flat map of identity creators keyed by the
// camel-cased type, e.g. "ADD_TODO" becomes "addTodo".
func CreateIdentityActions(types []string, opts ...Option) (CreatorMap, error) {
	return CreateActions(nil, types, opts...)
}

func validateIdentity(types []string) error {
	for _, t := range types {
		if t == "" {
			return &ConfigError{Reason: expectedArguments + ", got empty action type"}
		}
	}
	return nil
}

func creatorsFromActionMap(actionMap ActionMap, cfg Config) (CreatorMap, error) {
	flat, err := namespace.Flatten(actionMap, cfg.Namespace, asNamespace)
	if err != nil {
		return nil, &ConfigError{Reason: "cannot flatten action map", Err: err}
	}

	types := primitives.SortedKeys(flat)
	for _, t := range types {
		if err := validateLeaf(t, flat[t]); err != nil {
			return nil, err
		}
	}
	flatCreators := primitives.ToMap(types, func(acc map[string]*ActionCreator, t string) map[string]*ActionCreator {
		acc[t] = creatorFor(t, flat[t])
		return acc
	})

	tree, err := namespace.Unflatten(flatCreators, cfg.Namespace, primitives.CamelCase)
	if err != nil {
		return nil, &ConfigError{Reason: "cannot nest action creators", Err: err}
	}
	return fromTree(tree), nil
}

func identityCreators(types []string) (CreatorMap, error) {
	seen := make(map[string]string, len(types))
	for _, t := range types {
		key := primitives.CamelCase(t)
		if prev, ok := seen[key]; ok && prev != t {
			return nil, &ConfigError{Type: t, Reason: "camel-cased name collides with " + prev}
		}
		seen[key] = t
	}

	return primitives.ToMap(types, func(acc map[string]Node, t string) map[string]Node {
		acc[primitives.CamelCase(t)] = CreateAction(t, Identity, nil)
		return acc
	}), nil
}

func asNamespace(s Spec) (map[string]Spec, bool) {
	m, ok := s.(ActionMap)
	return m, ok
}

func fromTree(t *namespace.Tree[*ActionCreator]) CreatorMap {
	m := make(CreatorMap, len(t.Leaves)+len(t.Branches))
	for key, c := range t.Leaves {
		m[key] = c
	}
	for key, branch := range t.Branches {
		m[key] = fromTree(branch)
	}
	return m
}
