// Package host is a minimal server command registry. It stores command
// adapters under their labels, runs the permission pre-check and routes raw
// input lines to the adapter.
package host

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/kcaldas/craftkit/pkg/command"
	"github.com/kcaldas/craftkit/pkg/events"
	"github.com/kcaldas/craftkit/pkg/logging"
)

var ErrUnknownCommand = errors.New("unknown command")

// NoPermissionMessage is sent when the permission pre-check fails.
const NoPermissionMessage = "&cI'm sorry, but you do not have permission to perform this command."

// CommandMap maps labels to adapters. Registration may happen from any
// goroutine; dispatch only reads.
type CommandMap struct {
	known  map[string]*command.Adapter
	mu     sync.RWMutex
	logger logging.Logger
	events *events.Bus
}

func NewCommandMap(logger logging.Logger) *CommandMap {
	if logger == nil {
		logger = logging.NewComponentLogger("host")
	}
	return &CommandMap{
		known:  make(map[string]*command.Adapter),
		logger: logger,
		events: events.NewBus(),
	}
}

// Events is the bus dispatches are published on.
func (m *CommandMap) Events() *events.Bus { return m.events }

// Register adds a under "prefix:name", its name and its aliases. Labels that
// are already taken are left alone; the prefixed label always points to a.
// It reports whether the plain name was free.
func (m *CommandMap) Register(fallbackPrefix string, a *command.Adapter) bool {
	prefix := strings.ToLower(strings.TrimSpace(fallbackPrefix))
	name := a.Name()

	m.mu.Lock()
	defer m.mu.Unlock()

	if prefix != "" {
		m.known[prefix+":"+name] = a
	}

	registered := m.claim(name, a)
	for _, alias := range a.Aliases() {
		if !m.claim(alias, a) {
			m.logger.Debug("alias already taken", "alias", alias, "command", name)
		}
		if prefix != "" {
			m.known[prefix+":"+alias] = a
		}
	}

	m.logger.Debug("registered command", "command", name, "prefix", prefix, "kind", a.Kind().String(), "plain", registered)
	return registered
}

func (m *CommandMap) claim(label string, a *command.Adapter) bool {
	if _, taken := m.known[label]; taken {
		return false
	}
	m.known[label] = a
	return true
}

// RegisterAll registers every command's adapter under prefix.
func (m *CommandMap) RegisterAll(fallbackPrefix string, cmds ...*command.Command) {
	for _, c := range cmds {
		m.Register(fallbackPrefix, c.Adapter())
	}
}

// Unregister drops every label that points to an adapter owned by plugin.
func (m *CommandMap) Unregister(plugin command.Plugin) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	removed := 0
	for label, a := range m.known {
		if owner, ok := a.Plugin(); ok && owner.Name() == plugin.Name() {
			delete(m.known, label)
			removed++
		}
	}
	m.logger.Debug("unregistered plugin commands", "plugin", plugin.Name(), "labels", removed)
	return removed
}

// Get returns the adapter registered under label.
func (m *CommandMap) Get(label string) (*command.Adapter, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.known[strings.ToLower(label)]
	return a, ok
}

// Commands lists the distinct adapters sorted by name.
func (m *CommandMap) Commands() []*command.Adapter {
	m.mu.RLock()
	defer m.mu.RUnlock()

	seen := make(map[*command.Adapter]bool)
	list := make([]*command.Adapter, 0, len(m.known))
	for _, a := range m.known {
		if seen[a] {
			continue
		}
		seen[a] = true
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name() < list[j].Name()
	})
	return list
}

// Labels returns every registered label, sorted.
func (m *CommandMap) Labels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	labels := make([]string, 0, len(m.known))
	for label := range m.known {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Dispatch runs a raw input line such as "/tp Steve". The returned bool is
// the command's own result. A sender without the command's permission gets
// NoPermissionMessage and the call counts as handled.
func (m *CommandMap) Dispatch(sender command.Sender, line string) (bool, error) {
	label, args := splitLine(line)
	if label == "" {
		return false, fmt.Errorf("%w: empty input", ErrUnknownCommand)
	}

	a, ok := m.Get(label)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownCommand, label)
	}

	event := events.CommandDispatched{Sender: sender, Label: label, Command: a.Name(), Args: args}

	if perm := a.Permission(); perm != "" && !sender.HasPermission(perm) {
		m.logger.Debug("permission denied", "sender", sender.Name(), "command", a.Name(), "permission", perm)
		sender.SendMessage(NoPermissionMessage)
		event.Denied = true
		m.events.Publish(events.TopicCommandDispatched, event)
		return true, nil
	}

	m.logger.Debug("dispatching command", "sender", sender.Name(), "label", label, "args", len(args))
	event.Result = a.Execute(sender, label, args)
	m.events.Publish(events.TopicCommandDispatched, event)
	return event.Result, nil
}

// TabComplete suggests labels while the first word is being typed and
// defers to the command afterwards. Labels the sender lacks permission for
// are skipped.
func (m *CommandMap) TabComplete(sender command.Sender, line string, loc *command.Location) []string {
	line = strings.TrimPrefix(line, "/")
	space := strings.IndexByte(line, ' ')

	if space < 0 {
		prefix := strings.ToLower(line)
		suggestions := []string{}
		for _, label := range m.Labels() {
			if !strings.HasPrefix(label, prefix) {
				continue
			}
			if a, ok := m.Get(label); ok && a.Permission() != "" && !sender.HasPermission(a.Permission()) {
				continue
			}
			suggestions = append(suggestions, "/"+label)
		}
		return suggestions
	}

	label := line[:space]
	a, ok := m.Get(label)
	if !ok {
		return []string{}
	}
	// Keep the trailing empty argument so completers know a new word starts.
	args := strings.Split(line[space+1:], " ")
	return a.TabComplete(sender, label, args, loc)
}

func splitLine(line string) (string, []string) {
	fields := strings.Fields(strings.TrimPrefix(strings.TrimSpace(line), "/"))
	if len(fields) == 0 {
		return "", nil
	}
	return fields[0], fields[1:]
}
