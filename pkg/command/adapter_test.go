package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_Kind(t *testing.T) {
	rec := &recorder{}

	global, err := New(Spec{Name: "spawn", Executor: rec.executor()})
	require.NoError(t, err)
	assert.Equal(t, Global, global.Adapter().Kind())
	_, ok := global.Adapter().Plugin()
	assert.False(t, ok)

	plugin := testPlugin{name: "Essentials"}
	scoped, err := New(Spec{Name: "spawn", Plugin: plugin, Executor: rec.executor()})
	require.NoError(t, err)
	assert.Equal(t, PluginScoped, scoped.Adapter().Kind())
	owner, ok := scoped.Adapter().Plugin()
	require.True(t, ok)
	assert.Equal(t, "Essentials", owner.Name())
	assert.Equal(t, "plugin", PluginScoped.String())
}

func TestAdapter_Execute(t *testing.T) {
	for _, result := range []bool{true, false} {
		rec := &recorder{result: result}
		cmd := newGameCommand(t, rec)

		got := cmd.Adapter().Execute(newTestSender(), "g", []string{"tp", "player1"})

		assert.Equal(t, result, got)
		require.Len(t, rec.calls, 1)
		assert.Equal(t, "game teleport", rec.calls[0].command)
		assert.Equal(t, "g", rec.calls[0].label)
	}
}

func TestAdapter_TabComplete(t *testing.T) {
	rec := &recorder{}

	t.Run("without completer", func(t *testing.T) {
		cmd, err := New(Spec{Name: "spawn", Executor: rec.executor()})
		require.NoError(t, err)

		got := cmd.Adapter().TabComplete(newTestSender(), "spawn", []string{""}, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("forwards everything to the completer", func(t *testing.T) {
		var gotCmd *Command
		var gotLoc *Location
		var gotLabel string
		completer := TabCompleterFunc(func(sender Sender, cmd *Command, label string, args []string, loc *Location) []string {
			gotCmd, gotLoc, gotLabel = cmd, loc, label
			return []string{"world", "world_nether"}
		})
		cmd, err := New(Spec{Name: "spawn", Executor: rec.executor(), TabCompleter: completer})
		require.NoError(t, err)

		loc := &Location{World: "world", X: 1, Y: 64, Z: -3}
		got := cmd.Adapter().TabComplete(newTestSender(), "sp", []string{"wor"}, loc)

		assert.Equal(t, []string{"world", "world_nether"}, got)
		assert.Same(t, cmd, gotCmd)
		assert.Same(t, loc, gotLoc)
		assert.Equal(t, "sp", gotLabel)
	})

	t.Run("nil suggestions become empty", func(t *testing.T) {
		completer := TabCompleterFunc(func(Sender, *Command, string, []string, *Location) []string { return nil })
		cmd, err := New(Spec{Name: "spawn", Executor: rec.executor(), TabCompleter: completer})
		require.NoError(t, err)

		got := cmd.Adapter().TabComplete(newTestSender(), "spawn", nil, nil)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}
