package plugin

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/kcaldas/craftkit/pkg/command"
	"github.com/kcaldas/craftkit/pkg/config"
	"github.com/kcaldas/craftkit/pkg/events"
	"github.com/kcaldas/craftkit/pkg/host"
	"github.com/kcaldas/craftkit/pkg/logging"
)

// Handlers maps lower-case command paths ("homes", "homes set") to their executor and
// optional tab-completer. Default runs for any path without an executor.
type Handlers struct {
	Executors     map[string]command.Executor
	TabCompleters map[string]command.TabCompleter
	Default       command.Executor
}

func (h Handlers) executor(path string) command.Executor {
	if e, ok := h.Executors[path]; ok && e != nil {
		return e
	}
	return h.Default
}

func (h Handlers) tabCompleter(path string) command.TabCompleter {
	return h.TabCompleters[path]
}

// Plugin is a loaded plugin: its descriptor, data folder and commands.
type Plugin struct {
	descriptor *Descriptor
	configs    *config.ConfigManager
	logger     logging.Logger
	commands   []*command.Command
	enabled    bool
}

// New creates the plugin and its data folder at <dataRoot>/<name>.
func New(d *Descriptor, dataRoot string) (*Plugin, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	configs, err := config.NewConfigManager(filepath.Join(dataRoot, d.Name))
	if err != nil {
		return nil, err
	}
	return &Plugin{
		descriptor: d,
		configs:    configs,
		logger:     logging.NewPluginLogger(d.Name),
	}, nil
}

func (p *Plugin) Name() string                   { return p.descriptor.Name }
func (p *Plugin) Descriptor() *Descriptor        { return p.descriptor }
func (p *Plugin) Configs() *config.ConfigManager { return p.configs }
func (p *Plugin) Logger() logging.Logger         { return p.logger }
func (p *Plugin) IsEnabled() bool                { return p.enabled }

// Commands returns the commands built by the last BuildCommands call.
func (p *Plugin) Commands() []*command.Command {
	return append([]*command.Command(nil), p.commands...)
}

// BuildCommands turns the descriptor's commands into command trees owned by
// this plugin, in file order.
func (p *Plugin) BuildCommands(h Handlers) ([]*command.Command, error) {
	names := p.commandNames()
	cmds := make([]*command.Command, 0, len(names))

	for _, name := range names {
		spec, err := p.spec(name, p.descriptor.Commands[name], h)
		if err != nil {
			return nil, err
		}
		spec.Plugin = p
		cmd, err := command.New(spec)
		if err != nil {
			return nil, fmt.Errorf("plugin %s: command %s: %w", p.Name(), name, err)
		}
		cmds = append(cmds, cmd)
	}

	p.commands = cmds
	return cmds, nil
}

// commandNames follows Order and appends anything it misses, sorted.
func (p *Plugin) commandNames() []string {
	seen := make(map[string]bool, len(p.descriptor.Commands))
	names := make([]string, 0, len(p.descriptor.Commands))
	for _, n := range p.descriptor.Order {
		if _, ok := p.descriptor.Commands[n]; ok && !seen[n] {
			names = append(names, n)
			seen[n] = true
		}
	}
	var rest []string
	for n := range p.descriptor.Commands {
		if !seen[n] {
			rest = append(rest, n)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

func (p *Plugin) spec(path string, d CommandDescriptor, h Handlers) (command.Spec, error) {
	key := strings.ToLower(path)
	executor := h.executor(key)
	if executor == nil {
		return command.Spec{}, fmt.Errorf("plugin %s: no executor for %q: %w", p.Name(), path, command.ErrMissingExecutor)
	}

	spec := command.Spec{
		Name:         lastWord(path),
		Description:  d.Description,
		Usage:        d.Usage,
		Permission:   d.Permission,
		Executor:     executor,
		TabCompleter: h.tabCompleter(key),
	}
	if len(d.Aliases) > 0 {
		spec.Aliases = []string(d.Aliases)
	}
	for _, sub := range d.SubCommands {
		subSpec, err := p.spec(path+" "+sub.Name, sub.CommandDescriptor, h)
		if err != nil {
			return command.Spec{}, err
		}
		spec.SubCommands = append(spec.SubCommands, subSpec)
	}
	return spec, nil
}

func lastWord(path string) string {
	if i := strings.LastIndexByte(path, ' '); i >= 0 {
		return path[i+1:]
	}
	return path
}

// Enable builds the commands and registers them under the plugin's name.
func (p *Plugin) Enable(cmap *host.CommandMap, h Handlers) error {
	if p.enabled {
		return nil
	}
	cmds, err := p.BuildCommands(h)
	if err != nil {
		return err
	}
	cmap.RegisterAll(p.Name(), cmds...)
	p.enabled = true
	p.logger.Info("enabled plugin", "version", p.descriptor.Version, "commands", len(cmds))
	cmap.Events().Publish(events.TopicPluginEnabled, p.stateEvent())
	return nil
}

// Disable removes the plugin's commands from cmap.
func (p *Plugin) Disable(cmap *host.CommandMap) {
	if !p.enabled {
		return
	}
	cmap.Unregister(p)
	p.enabled = false
	p.logger.Info("disabled plugin")
	cmap.Events().Publish(events.TopicPluginDisabled, p.stateEvent())
}

func (p *Plugin) stateEvent() events.PluginStateChanged {
	return events.PluginStateChanged{
		Plugin:   p.Name(),
		Version:  p.descriptor.Version,
		Commands: len(p.commands),
	}
}
