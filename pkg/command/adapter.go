package command

// AdapterKind tells whether an adapter belongs to a plugin.
type AdapterKind int

const (
	Global AdapterKind = iota
	PluginScoped
)

func (k AdapterKind) String() string {
	switch k {
	case PluginScoped:
		return "plugin"
	default:
		return "global"
	}
}

// Adapter is the object handed to the host command registry. It mirrors the
// command's metadata and forwards execution and tab completion back to it.
type Adapter struct {
	command     *Command
	kind        AdapterKind
	plugin      Plugin
	description string
	usage       string
	permission  string
	aliases     []string
}

func newAdapter(c *Command) *Adapter {
	a := &Adapter{command: c, kind: Global}
	if c.plugin != nil {
		a.kind = PluginScoped
		a.plugin = c.plugin
	}
	return a
}

func (a *Adapter) setDescription(description string) { a.description = description }
func (a *Adapter) setUsage(usage string)             { a.usage = usage }
func (a *Adapter) setPermission(permission string)   { a.permission = permission }
func (a *Adapter) setAliases(aliases []string)       { a.aliases = append([]string(nil), aliases...) }

func (a *Adapter) Kind() AdapterKind   { return a.kind }
func (a *Adapter) Command() *Command   { return a.command }
func (a *Adapter) Name() string        { return a.command.name }
func (a *Adapter) Description() string { return a.description }
func (a *Adapter) Usage() string       { return a.usage }
func (a *Adapter) Permission() string  { return a.permission }
func (a *Adapter) Aliases() []string   { return append([]string(nil), a.aliases...) }

// Plugin is only populated for plugin-scoped adapters.
func (a *Adapter) Plugin() (Plugin, bool) {
	return a.plugin, a.kind == PluginScoped
}

// Execute is the host's entry point. The dispatch result is returned as is.
func (a *Adapter) Execute(sender Sender, label string, args []string) bool {
	return a.command.Execute(sender, label, args)
}

// TabComplete forwards to the command's tab-completer. Without one, or when
// the completer returns nil, the result is an empty slice.
func (a *Adapter) TabComplete(sender Sender, alias string, args []string, loc *Location) []string {
	tc, ok := a.command.TabCompleter()
	if !ok {
		return []string{}
	}
	suggestions := tc.OnTabComplete(sender, a.command, alias, args, loc)
	if suggestions == nil {
		return []string{}
	}
	return suggestions
}
