// Package command binds named commands and their sub-command trees onto a
// host server's command registry. A Command owns its executor, optional
// tab-completer and an immutable list of sub-commands; the Adapter is what
// gets registered with the host.
package command

import (
	"errors"
	"strings"
)

var (
	ErrMissingName     = errors.New("command name cannot be empty")
	ErrMissingExecutor = errors.New("command executor cannot be nil")
)

// Sender is whoever issued a command: the console, a player, a command block.
type Sender interface {
	Name() string
	SendMessage(message string)
	HasPermission(permission string) bool
}

// Plugin is the owner of a plugin-scoped command. The command borrows it and
// never controls its lifecycle.
type Plugin interface {
	Name() string
}

// Location is the optional world position passed along with tab completion.
type Location struct {
	World string
	X     float64
	Y     float64
	Z     float64
}

// Executor handles a command invocation and reports whether it succeeded.
type Executor interface {
	OnCommand(sender Sender, cmd *Command, label string, args []string) bool
}

// ExecutorFunc adapts a plain function to Executor.
type ExecutorFunc func(sender Sender, cmd *Command, label string, args []string) bool

func (f ExecutorFunc) OnCommand(sender Sender, cmd *Command, label string, args []string) bool {
	return f(sender, cmd, label, args)
}

// TabCompleter produces suggestions for partial input. loc is nil when the
// host has no location for the sender.
type TabCompleter interface {
	OnTabComplete(sender Sender, cmd *Command, label string, args []string, loc *Location) []string
}

// TabCompleterFunc adapts a plain function to TabCompleter.
type TabCompleterFunc func(sender Sender, cmd *Command, label string, args []string, loc *Location) []string

func (f TabCompleterFunc) OnTabComplete(sender Sender, cmd *Command, label string, args []string, loc *Location) []string {
	return f(sender, cmd, label, args, loc)
}

// SubCommandBuilder produces a fully built sub-command for the given parent.
// It is consumed once, when the parent is constructed.
type SubCommandBuilder interface {
	BuildSubCommand(parent *Command) (*Command, error)
}

// Spec describes a command. Empty strings and nil interfaces mean absent.
type Spec struct {
	Name         string
	Description  string
	Usage        string
	Aliases      []string // raw tokens, may carry "-f" functions
	Permission   string
	Plugin       Plugin
	Executor     Executor
	TabCompleter TabCompleter
	SubCommands  []SubCommandBuilder

	// StopAtFirstPlainAlias keeps the legacy alias handling where the list
	// is abandoned after the first alias without a function marker.
	StopAtFirstPlainAlias bool
}

// BuildSubCommand lets a Spec literal be used directly as a sub-command.
func (s Spec) BuildSubCommand(parent *Command) (*Command, error) {
	return newCommand(s, parent)
}

// Command is a named, invocable unit with metadata and an optional tree of
// sub-commands. It is immutable once New returns.
type Command struct {
	name         string
	description  string
	usage        string
	aliases      []string
	aliasMap     map[string]Alias
	permission   string
	plugin       Plugin
	executor     Executor
	tabCompleter TabCompleter
	subCommands  []*Command
	parent       *Command
	adapter      *Adapter
}

// New builds a root command and all of its sub-commands.
func New(spec Spec) (*Command, error) {
	return newCommand(spec, nil)
}

func newCommand(spec Spec, parent *Command) (*Command, error) {
	if strings.TrimSpace(spec.Name) == "" {
		return nil, ErrMissingName
	}
	if spec.Executor == nil {
		return nil, ErrMissingExecutor
	}

	plugin := spec.Plugin
	if plugin == nil && parent != nil {
		plugin = parent.plugin
	}

	c := &Command{
		name:         strings.ToLower(spec.Name),
		description:  spec.Description,
		usage:        spec.Usage,
		permission:   spec.Permission,
		plugin:       plugin,
		executor:     spec.Executor,
		tabCompleter: spec.TabCompleter,
		parent:       parent,
	}
	c.adapter = newAdapter(c)

	if spec.Aliases != nil {
		c.aliases, c.aliasMap = parseAliases(spec.Aliases, spec.StopAtFirstPlainAlias)
		c.adapter.setAliases(c.aliases)
	}
	if spec.Description != "" {
		c.adapter.setDescription(spec.Description)
	}
	if spec.Usage != "" {
		c.adapter.setUsage(spec.Usage)
	}
	if spec.Permission != "" {
		c.adapter.setPermission(spec.Permission)
	}

	if spec.SubCommands != nil {
		c.subCommands = make([]*Command, 0, len(spec.SubCommands))
		for _, b := range spec.SubCommands {
			sub, err := b.BuildSubCommand(c)
			if err != nil {
				return nil, &BuildError{Parent: c.Path(), Err: err}
			}
			sub.parent = c
			c.subCommands = append(c.subCommands, sub)
		}
	}

	return c, nil
}

// BuildError reports which parent a failing sub-command belonged to.
type BuildError struct {
	Parent string
	Err    error
}

func (e *BuildError) Error() string {
	return "building sub-command of " + e.Parent + ": " + e.Err.Error()
}

func (e *BuildError) Unwrap() error { return e.Err }

func (c *Command) Name() string        { return c.name }
func (c *Command) Description() string { return c.description }
func (c *Command) Usage() string       { return c.usage }
func (c *Command) Permission() string  { return c.permission }
func (c *Command) Executor() Executor  { return c.executor }
func (c *Command) Adapter() *Adapter   { return c.adapter }

// Aliases returns the normalized alias names in declaration order.
func (c *Command) Aliases() []string {
	return append([]string(nil), c.aliases...)
}

func (c *Command) HasAliases() bool { return len(c.aliases) > 0 }

func (c *Command) Plugin() (Plugin, bool) {
	return c.plugin, c.plugin != nil
}

func (c *Command) TabCompleter() (TabCompleter, bool) {
	return c.tabCompleter, c.tabCompleter != nil
}

// SubCommands returns the children in declaration order.
func (c *Command) SubCommands() []*Command {
	return append([]*Command(nil), c.subCommands...)
}

func (c *Command) HasSubCommands() bool { return len(c.subCommands) > 0 }

func (c *Command) Parent() (*Command, bool) {
	return c.parent, c.parent != nil
}

// AliasMap returns a copy of the aliases that were declared with a function.
func (c *Command) AliasMap() map[string]Alias {
	if c.aliasMap == nil {
		return nil
	}
	m := make(map[string]Alias, len(c.aliasMap))
	for k, v := range c.aliasMap {
		m[k] = v
	}
	return m
}

// Alias looks up an alias registered through the "-f" convention. Plain
// aliases are not in the map.
func (c *Command) Alias(name string) (Alias, bool) {
	a, ok := c.aliasMap[name]
	return a, ok
}

// Path is the space separated chain of names from the root, e.g. "admin tp".
func (c *Command) Path() string {
	if c.parent == nil {
		return c.name
	}
	return c.parent.Path() + " " + c.name
}
