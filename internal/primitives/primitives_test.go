package primitives

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCamelCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"FOO", "foo"},
		{"ACTION_ONE", "actionOne"},
		{"action-two", "actionTwo"},
		{"ACTION THREE", "actionThree"},
		{"alreadyCamel", "alreadyCamel"},
		{"APP/LOAD_ITEMS", "app/loadItems"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, CamelCase(tt.in))
		})
	}
}

func TestToMap(t *testing.T) {
	t.Run("starts empty", func(t *testing.T) {
		got := ToMap(nil, func(acc map[string]int, k string) map[string]int {
			acc[k] = len(k)
			return acc
		})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("visits keys in order", func(t *testing.T) {
		var order []string
		got := ToMap([]string{"a", "bb", "ccc"}, func(acc map[string]int, k string) map[string]int {
			order = append(order, k)
			acc[k] = len(acc)
			return acc
		})
		assert.Equal(t, []string{"a", "bb", "ccc"}, order)
		assert.Equal(t, map[string]int{"a": 0, "bb": 1, "ccc": 2}, got)
	})
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]bool{"c": true, "a": true, "b": false}))
	assert.Empty(t, SortedKeys(map[string]int{}))
}
