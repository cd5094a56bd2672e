// Package primitives holds the naming and folding helpers the action builder
// is made of. Nothing here knows about actions.
package primitives

import (
	"strings"

	"github.com/iancoleman/strcase"
)

const segmentSeparator = "/"

// CamelCase converts SCREAMING_SNAKE, kebab-case and space separated names to
// camelCase. Slash separated segments are converted one by one, so
// "APP/LOAD_ITEMS" becomes "app/loadItems".
func CamelCase(s string) string {
	parts := strings.Split(s, segmentSeparator)
	for i, p := range parts {
		parts[i] = strcase.ToLowerCamel(p)
	}
	return strings.Join(parts, segmentSeparator)
}
