package command

import "strings"

// Execute routes an invocation to the matching sub-command, consuming the
// first argument on every hop, or to this command's own executor when no
// sub-command matches. Exactly one executor runs per call. Executor panics
// are not recovered here.
func (c *Command) Execute(sender Sender, label string, args []string) bool {
	if len(args) > 0 {
		if sub := c.findSubCommand(args[0]); sub != nil {
			rest := make([]string, len(args)-1)
			copy(rest, args[1:])
			return sub.Execute(sender, label, rest)
		}
	}
	return c.executor.OnCommand(sender, c, label, args)
}

// findSubCommand returns the first sub-command, in declaration order, whose
// name or alias equals token ignoring case.
func (c *Command) findSubCommand(token string) *Command {
	for _, sub := range c.subCommands {
		if sub.matches(token) {
			return sub
		}
	}
	return nil
}

func (c *Command) matches(token string) bool {
	if strings.EqualFold(token, c.name) {
		return true
	}
	if !c.HasAliases() {
		return false
	}
	lower := strings.ToLower(token)
	for _, a := range c.aliases {
		if a == lower {
			return true
		}
	}
	return false
}
