package cli

import (
	"fmt"
	"strings"

	"github.com/kcaldas/craftkit/pkg/command"
	"github.com/kcaldas/craftkit/pkg/plugin"
)

// echoHandlers stand in for plugin code: every command reports what it was
// resolved to, and completes with its sub-command names.
func echoHandlers(p *plugin.Plugin) plugin.Handlers {
	tabCompleters := make(map[string]command.TabCompleter)
	for name := range p.Descriptor().Commands {
		tabCompleters[strings.ToLower(name)] = command.TabCompleterFunc(completeSubCommands)
	}

	return plugin.Handlers{
		Default:       command.ExecutorFunc(echo),
		TabCompleters: tabCompleters,
	}
}

func echo(sender command.Sender, cmd *command.Command, label string, args []string) bool {
	msg := "&7" + cmd.Path()
	if len(args) > 0 {
		msg += " &f" + strings.Join(args, " ")
	}
	if alias, ok := cmd.Alias(strings.ToLower(label)); ok {
		msg += fmt.Sprintf(" &8(function %s)", alias.Function)
	}
	sender.SendMessage(msg)
	return true
}

// completeSubCommands walks the typed arguments down the tree and suggests
// the children of the deepest match whose name starts with the last word.
func completeSubCommands(sender command.Sender, cmd *command.Command, label string, args []string, loc *command.Location) []string {
	node := cmd
	for len(args) > 1 {
		next := child(node, args[0])
		if next == nil {
			return nil
		}
		node, args = next, args[1:]
	}

	prefix := ""
	if len(args) == 1 {
		prefix = strings.ToLower(args[0])
	}
	var out []string
	for _, sub := range node.SubCommands() {
		if strings.HasPrefix(sub.Name(), prefix) {
			out = append(out, sub.Name())
		}
	}
	return out
}

func child(cmd *command.Command, token string) *command.Command {
	for _, sub := range cmd.SubCommands() {
		if strings.EqualFold(sub.Name(), token) {
			return sub
		}
		for _, a := range sub.Aliases() {
			if strings.EqualFold(a, token) {
				return sub
			}
		}
	}
	return nil
}
