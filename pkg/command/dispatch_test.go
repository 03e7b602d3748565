package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGameCommand builds "game" with sub-commands teleport (alias tp) and give.
func newGameCommand(t *testing.T, rec *recorder) *Command {
	t.Helper()

	cmd, err := NewBuilder("game").
		ExecutorFunc(rec.executor()).
		SubCommand(
			NewBuilder("teleport").Aliases("tp").ExecutorFunc(rec.executor()),
			NewBuilder("give").ExecutorFunc(rec.executor()),
		).
		Build()
	require.NoError(t, err)
	return cmd
}

func TestExecute_NoSubCommands(t *testing.T) {
	argSets := [][]string{
		nil,
		{},
		{"one"},
		{"teleport", "player1"},
	}

	for _, args := range argSets {
		rec := &recorder{result: true}
		cmd, err := New(Spec{Name: "spawn", Executor: rec.executor()})
		require.NoError(t, err)

		ok := cmd.Execute(newTestSender(), "spawn", args)

		assert.True(t, ok)
		require.Len(t, rec.calls, 1)
		assert.Equal(t, "spawn", rec.calls[0].command)
		assert.Equal(t, args, rec.calls[0].args)
	}
}

func TestExecute_SubCommands(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantCommand string
		wantArgs    []string
	}{
		{name: "alias routes to teleport", args: []string{"tp", "player1"}, wantCommand: "game teleport", wantArgs: []string{"player1"}},
		{name: "name routes ignoring case", args: []string{"TELEPORT", "a", "b"}, wantCommand: "game teleport", wantArgs: []string{"a", "b"}},
		{name: "alias matches ignoring case", args: []string{"Tp"}, wantCommand: "game teleport", wantArgs: []string{}},
		{name: "second sub-command", args: []string{"give", "diamond", "64"}, wantCommand: "game give", wantArgs: []string{"diamond", "64"}},
		{name: "unknown first argument falls back", args: []string{"fly", "on"}, wantCommand: "game", wantArgs: []string{"fly", "on"}},
		{name: "empty args use own executor", args: []string{}, wantCommand: "game", wantArgs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{result: true}
			cmd := newGameCommand(t, rec)

			ok := cmd.Execute(newTestSender(), "game", tt.args)

			assert.True(t, ok)
			require.Len(t, rec.calls, 1, "exactly one executor runs")
			assert.Equal(t, tt.wantCommand, rec.calls[0].command)
			assert.Equal(t, tt.wantArgs, rec.calls[0].args)
			assert.Equal(t, "game", rec.calls[0].label)
		})
	}
}

func TestExecute_DoesNotMutateArgs(t *testing.T) {
	rec := &recorder{}
	cmd := newGameCommand(t, rec)
	args := []string{"tp", "player1"}

	cmd.Execute(newTestSender(), "game", args)

	assert.Equal(t, []string{"tp", "player1"}, args)
}

func TestExecute_Nested(t *testing.T) {
	rec := &recorder{result: true}
	cmd, err := New(Spec{
		Name:     "a",
		Executor: rec.executor(),
		SubCommands: []SubCommandBuilder{
			Spec{
				Name:     "b",
				Executor: rec.executor(),
				SubCommands: []SubCommandBuilder{
					Spec{Name: "c", Aliases: []string{"see"}, Executor: rec.executor()},
				},
			},
		},
	})
	require.NoError(t, err)

	cmd.Execute(newTestSender(), "a", []string{"b", "SEE", "x"})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "a b c", rec.calls[0].command)
	assert.Equal(t, []string{"x"}, rec.calls[0].args)
}

func TestExecute_FirstMatchWins(t *testing.T) {
	rec := &recorder{}
	cmd, err := New(Spec{
		Name:     "root",
		Executor: rec.executor(),
		SubCommands: []SubCommandBuilder{
			Spec{Name: "first", Aliases: []string{"x"}, Executor: rec.executor()},
			Spec{Name: "second", Aliases: []string{"x"}, Executor: rec.executor()},
		},
	})
	require.NoError(t, err)

	cmd.Execute(newTestSender(), "root", []string{"x"})

	require.Len(t, rec.calls, 1)
	assert.Equal(t, "root first", rec.calls[0].command)
}

func TestExecute_ReturnsExecutorResult(t *testing.T) {
	rec := &recorder{result: false}
	cmd := newGameCommand(t, rec)

	assert.False(t, cmd.Execute(newTestSender(), "game", []string{"give"}))
}

func TestExecute_PanicsPropagate(t *testing.T) {
	cmd, err := New(Spec{
		Name: "boom",
		Executor: ExecutorFunc(func(Sender, *Command, string, []string) bool {
			panic("executor failed")
		}),
	})
	require.NoError(t, err)

	assert.PanicsWithValue(t, "executor failed", func() {
		cmd.Execute(newTestSender(), "boom", nil)
	})
}
