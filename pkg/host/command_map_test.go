package host

import (
	"testing"

	"github.com/kcaldas/craftkit/pkg/command"
	"github.com/kcaldas/craftkit/pkg/events"
	"github.com/kcaldas/craftkit/pkg/logging"
	"github.com/kcaldas/craftkit/pkg/sender"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testPlugin string

func (p testPlugin) Name() string { return string(p) }

type call struct {
	path  string
	label string
	args  []string
}

func newMap() *CommandMap {
	return NewCommandMap(logging.NewDisabledLogger())
}

func buildGame(t *testing.T, calls *[]call, plugin command.Plugin) *command.Command {
	t.Helper()

	exec := command.ExecutorFunc(func(s command.Sender, c *command.Command, label string, args []string) bool {
		*calls = append(*calls, call{path: c.Path(), label: label, args: args})
		return true
	})
	complete := command.TabCompleterFunc(func(s command.Sender, c *command.Command, label string, args []string, loc *command.Location) []string {
		return []string{"teleport", "give"}
	})

	cmd, err := command.New(command.Spec{
		Name:         "game",
		Aliases:      []string{"g"},
		Plugin:       plugin,
		Executor:     exec,
		TabCompleter: complete,
		SubCommands: []command.SubCommandBuilder{
			command.Spec{Name: "teleport", Aliases: []string{"tp"}, Executor: exec},
			command.Spec{Name: "give", Executor: exec},
		},
	})
	require.NoError(t, err)
	return cmd
}

func TestCommandMap_Register(t *testing.T) {
	var calls []call
	m := newMap()
	cmd := buildGame(t, &calls, testPlugin("Arcade"))

	assert.True(t, m.Register("Arcade", cmd.Adapter()))
	assert.Equal(t, []string{"arcade:g", "arcade:game", "g", "game"}, m.Labels())

	for _, label := range []string{"game", "G", "arcade:game"} {
		a, ok := m.Get(label)
		require.True(t, ok, label)
		assert.Same(t, cmd.Adapter(), a)
	}
	assert.Len(t, m.Commands(), 1)
}

func TestCommandMap_RegisterConflict(t *testing.T) {
	var calls []call
	m := newMap()
	first := buildGame(t, &calls, testPlugin("Arcade"))
	second := buildGame(t, &calls, testPlugin("Minigames"))

	require.True(t, m.Register("arcade", first.Adapter()))
	assert.False(t, m.Register("minigames", second.Adapter()))

	a, _ := m.Get("game")
	assert.Same(t, first.Adapter(), a, "the first registration keeps the plain label")
	a, _ = m.Get("minigames:game")
	assert.Same(t, second.Adapter(), a)
	assert.Len(t, m.Commands(), 2)
}

func TestCommandMap_Dispatch(t *testing.T) {
	var calls []call
	m := newMap()
	m.RegisterAll("arcade", buildGame(t, &calls, nil))

	ok, err := m.Dispatch(sender.NewPlayer("Steve"), "/G tp player1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.Len(t, calls, 1)
	assert.Equal(t, "game teleport", calls[0].path)
	assert.Equal(t, "G", calls[0].label)
	assert.Equal(t, []string{"player1"}, calls[0].args)
}

func TestCommandMap_DispatchUnknown(t *testing.T) {
	m := newMap()

	_, err := m.Dispatch(sender.NewPlayer("Steve"), "/nothing here")
	assert.ErrorIs(t, err, ErrUnknownCommand)

	_, err = m.Dispatch(sender.NewPlayer("Steve"), "   ")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestCommandMap_PermissionPreCheck(t *testing.T) {
	var calls []call
	exec := command.ExecutorFunc(func(s command.Sender, c *command.Command, label string, args []string) bool {
		calls = append(calls, call{path: c.Path()})
		return true
	})
	cmd, err := command.New(command.Spec{Name: "ban", Permission: "admin.ban", Executor: exec})
	require.NoError(t, err)

	m := newMap()
	m.RegisterAll("", cmd)
	player := sender.NewPlayer("Steve")

	ok, err := m.Dispatch(player, "ban Herobrine")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, calls)
	assert.Equal(t, []string{sender.StripColors(NoPermissionMessage)}, player.Messages())

	player.Grant("admin.*", true)
	_, err = m.Dispatch(player, "ban Herobrine")
	require.NoError(t, err)
	assert.Len(t, calls, 1)
}

func TestCommandMap_TabComplete(t *testing.T) {
	var calls []call
	m := newMap()
	m.RegisterAll("arcade", buildGame(t, &calls, nil))
	player := sender.NewPlayer("Steve")

	assert.Equal(t, []string{"/g", "/game"}, m.TabComplete(player, "/g", nil))
	assert.Equal(t, []string{"/arcade:g", "/arcade:game"}, m.TabComplete(player, "arc", nil))
	assert.Equal(t, []string{"teleport", "give"}, m.TabComplete(player, "/game ", nil))
	assert.Equal(t, []string{}, m.TabComplete(player, "/missing ", nil))
}

func TestCommandMap_Unregister(t *testing.T) {
	var calls []call
	m := newMap()
	plugin := testPlugin("Arcade")
	m.RegisterAll("arcade", buildGame(t, &calls, plugin))

	global, err := command.New(command.Spec{Name: "spawn", Executor: command.ExecutorFunc(func(command.Sender, *command.Command, string, []string) bool { return true })})
	require.NoError(t, err)
	m.RegisterAll("", global)

	assert.Equal(t, 4, m.Unregister(plugin))
	assert.Equal(t, []string{"spawn"}, m.Labels())
}

func TestCommandMap_PublishesDispatches(t *testing.T) {
	var calls []call
	m := newMap()
	m.RegisterAll("arcade", buildGame(t, &calls, nil))

	denied, err := command.New(command.Spec{
		Name:       "stop",
		Permission: "server.stop",
		Executor:   command.ExecutorFunc(func(command.Sender, *command.Command, string, []string) bool { return true }),
	})
	require.NoError(t, err)
	m.RegisterAll("", denied)

	var published []events.CommandDispatched
	m.Events().Subscribe(events.TopicCommandDispatched, func(e any) {
		published = append(published, e.(events.CommandDispatched))
	})

	player := sender.NewPlayer("Steve")
	_, err = m.Dispatch(player, "game give apple")
	require.NoError(t, err)
	_, err = m.Dispatch(player, "stop")
	require.NoError(t, err)
	_, err = m.Dispatch(player, "unknown")
	require.Error(t, err)

	require.Len(t, published, 2)
	assert.Equal(t, "game", published[0].Command)
	assert.Equal(t, []string{"give", "apple"}, published[0].Args)
	assert.True(t, published[0].Result)
	assert.False(t, published[0].Denied)
	assert.True(t, published[1].Denied)
	assert.Same(t, player, published[1].Sender)
}
