// Package actionx builds action creators from declarative action maps.
//
// An action is a small message record that drives a state transition:
//
//	Action{Type: "TODO/ADD", Payload: "buy milk"}
//
// CreateAction builds a single creator. CreateActions builds a whole tree of
// them from a nested ActionMap and a list of identity action types:
//
//	creators, err := actionx.CreateActions(actionx.ActionMap{
//		"TODO": actionx.ActionMap{
//			"ADD":    actionx.Transform(actionx.Identity),
//			"REMOVE": actionx.TransformWithMeta{Meta: stamp},
//		},
//	}, []string{"RESET"})
//
//	add, _ := creators.Creator("todo", "add")
//	add.Create("buy milk") // Action{Type: "TODO/ADD", Payload: "buy milk"}
package actionx

// Action is the message produced by an ActionCreator.
// Error is set when Payload holds an error value.
type Action struct {
	Type    string `json:"type" yaml:"type"`
	Payload any    `json:"payload,omitempty" yaml:"payload,omitempty"`
	Error   bool   `json:"error,omitempty" yaml:"error,omitempty"`
	Meta    any    `json:"meta,omitempty" yaml:"meta,omitempty"`
}

// PayloadFunc computes an action payload from the creator's call arguments.
type PayloadFunc func(args ...any) any

// MetaFunc computes action metadata from the creator's call arguments.
type MetaFunc func(args ...any) any

// Identity returns its first argument unchanged, or nil when called with none.
func Identity(args ...any) any {
	if len(args) == 0 {
		return nil
	}
	return args[0]
}

// ActionCreator builds actions of a single type.
// Creators are immutable and safe for concurrent use.
type ActionCreator struct {
	actionType string
	payload    PayloadFunc
	meta       MetaFunc
}

// CreateAction returns a creator for actionType.
// A nil payload transform defaults to Identity; a nil meta transform means
// actions carry no Meta.
func CreateAction(actionType string, payload PayloadFunc, meta MetaFunc) *ActionCreator {
	if payload == nil {
		payload = Identity
	}
	return &ActionCreator{
		actionType: actionType,
		payload:    payload,
		meta:       meta,
	}
}

// Type returns the action type this creator produces.
func (c *ActionCreator) Type() string {
	return c.actionType
}

// String returns the action type, so a creator can stand in for its type
// wherever a fmt.Stringer is accepted.
func (c *ActionCreator) String() string {
	return c.actionType
}

// HasMeta reports whether created actions carry Meta.
func (c *ActionCreator) HasMeta() bool {
	return c.meta != nil
}

// Create builds an action from args.
//
// When the first argument is an error it becomes the payload as is and the
// payload transform is not called. Panics raised by a transform reach the
// caller unchanged.
func (c *ActionCreator) Create(args ...any) Action {
	var payload any
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			payload = err
		}
	}
	if payload == nil {
		payload = c.payload(args...)
	}

	action := Action{Type: c.actionType}
	if payload != nil {
		action.Payload = payload
	}
	if _, isErr := payload.(error); isErr {
		action.Error = true
	}
	if c.meta != nil {
		action.Meta = c.meta(args...)
	}
	return action
}

// Matches reports whether a was produced for this creator's type.
func (c *ActionCreator) Matches(a Action) bool {
	return a.Type == c.actionType
}

func (*ActionCreator) isNode() {}
