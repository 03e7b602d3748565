package command

// Builder assembles a Spec fluently. The same builder works for root
// commands (Build) and for sub-commands handed to a parent.
type Builder struct {
	spec Spec
}

func NewBuilder(name string) *Builder {
	return &Builder{spec: Spec{Name: name}}
}

func (b *Builder) Description(description string) *Builder {
	b.spec.Description = description
	return b
}

func (b *Builder) Usage(usage string) *Builder {
	b.spec.Usage = usage
	return b
}

// Aliases appends raw alias tokens; "name -f function" declares a function.
func (b *Builder) Aliases(aliases ...string) *Builder {
	b.spec.Aliases = append(b.spec.Aliases, aliases...)
	return b
}

func (b *Builder) Permission(permission string) *Builder {
	b.spec.Permission = permission
	return b
}

func (b *Builder) Plugin(plugin Plugin) *Builder {
	b.spec.Plugin = plugin
	return b
}

func (b *Builder) Executor(executor Executor) *Builder {
	b.spec.Executor = executor
	return b
}

func (b *Builder) ExecutorFunc(fn ExecutorFunc) *Builder {
	b.spec.Executor = fn
	return b
}

func (b *Builder) TabCompleter(completer TabCompleter) *Builder {
	b.spec.TabCompleter = completer
	return b
}

func (b *Builder) SubCommand(subs ...SubCommandBuilder) *Builder {
	b.spec.SubCommands = append(b.spec.SubCommands, subs...)
	return b
}

// LegacyAliases switches on the early-exit alias handling.
func (b *Builder) LegacyAliases() *Builder {
	b.spec.StopAtFirstPlainAlias = true
	return b
}

// Spec returns a copy of the spec assembled so far.
func (b *Builder) Spec() Spec {
	return b.spec
}

func (b *Builder) Build() (*Command, error) {
	return New(b.spec)
}

func (b *Builder) BuildSubCommand(parent *Command) (*Command, error) {
	return newCommand(b.spec, parent)
}
