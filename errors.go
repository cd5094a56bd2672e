package actionx

import (
	"errors"
	"fmt"

	"github.com/comalice/actionx/internal/namespace"
)

var (
	// ErrConfig matches every *ConfigError via errors.Is.
	ErrConfig = errors.New("invalid action configuration")

	// ErrMalformedActionMap is wrapped when an action map nests too deeply,
	// which is how a self-referencing map shows up.
	ErrMalformedActionMap = namespace.ErrMalformed
)

const expectedArguments = "expected optional object followed by string action types"

// ConfigError reports a malformed argument to CreateActions.
// Type names the offending action type when one is known.
type ConfigError struct {
	Type   string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	msg := e.Reason
	if e.Type != "" {
		msg = fmt.Sprintf("%s for %s", e.Reason, e.Type)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
