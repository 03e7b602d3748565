package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseAlias(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Alias
	}{
		{name: "plain alias is lower-cased and trimmed", raw: "  TP ", want: Alias{Name: "tp"}},
		{name: "function alias", raw: "spawn -f home", want: Alias{Name: "spawn", Function: "home"}},
		{name: "function keeps its case", raw: "Warp -f goToWarp", want: Alias{Name: "warp", Function: "goToWarp"}},
		{name: "missing name falls back to function", raw: "-f Home", want: Alias{Name: "home", Function: "Home"}},
		{name: "marker without function is plain", raw: "back -f", want: Alias{Name: "back"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAlias(tt.raw))
		})
	}
}

func TestParseAliases(t *testing.T) {
	raw := []string{"s -f spawn", "Home", "w -f warp", "back"}

	t.Run("every alias is processed", func(t *testing.T) {
		names, functions := parseAliases(raw, false)

		assert.Equal(t, []string{"s", "home", "w", "back"}, names)
		assert.Len(t, functions, 2)
		assert.Equal(t, "spawn", functions["s"].Function)
		assert.Equal(t, "warp", functions["w"].Function)
	})

	t.Run("legacy handling stops at the first plain alias", func(t *testing.T) {
		names, functions := parseAliases(raw, true)

		assert.Equal(t, []string{"s", "home"}, names)
		assert.Len(t, functions, 1)
		assert.Contains(t, functions, "s")
	})

	t.Run("plain aliases only leave no function map", func(t *testing.T) {
		names, functions := parseAliases([]string{"a", "b"}, false)

		assert.Equal(t, []string{"a", "b"}, names)
		assert.Nil(t, functions)
	})

	t.Run("blank tokens are skipped", func(t *testing.T) {
		names, _ := parseAliases([]string{" ", "x"}, false)
		assert.Equal(t, []string{"x"}, names)
	})
}
