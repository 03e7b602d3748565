// Package sender provides the command senders craftkit ships with: the
// server console and players.
package sender

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
)

const ConsoleName = "CONSOLE"

// Console writes messages to an output stream. It holds every permission.
type Console struct {
	out    io.Writer
	colors bool
	mu     sync.Mutex
}

// NewConsole renders colour codes only when out is a terminal.
func NewConsole(out io.Writer) *Console {
	return &Console{out: out, colors: isTerminal(out)}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (c *Console) Name() string                { return ConsoleName }
func (c *Console) HasPermission(_ string) bool { return true }
func (c *Console) ColorsEnabled() bool         { return c.colors }

func (c *Console) SendMessage(message string) {
	if c.colors {
		message = RenderColors(message)
	} else {
		message = StripColors(message)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	fmt.Fprintln(c.out, message)
}

// Player is an in-game sender identified by UUID.
type Player struct {
	id          uuid.UUID
	name        string
	operator    bool
	permissions map[string]bool
	messages    []string
	mu          sync.RWMutex
}

// NewPlayer creates a player with a random id.
func NewPlayer(name string) *Player {
	return NewPlayerWithID(uuid.New(), name)
}

func NewPlayerWithID(id uuid.UUID, name string) *Player {
	return &Player{id: id, name: name, permissions: make(map[string]bool)}
}

func (p *Player) ID() uuid.UUID { return p.id }
func (p *Player) Name() string  { return p.name }

func (p *Player) IsOperator() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.operator
}

func (p *Player) SetOperator(op bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.operator = op
}

// Grant sets a permission node. A node ending in ".*" covers every child,
// and "*" covers everything.
func (p *Player) Grant(permission string, value bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.permissions[strings.ToLower(permission)] = value
}

func (p *Player) Revoke(permission string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.permissions, strings.ToLower(permission))
}

// HasPermission checks the exact node first, then wildcard parents from the
// most specific to "*". Operators pass unless the node is explicitly denied.
func (p *Player) HasPermission(permission string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	node := strings.ToLower(permission)
	if v, ok := p.permissions[node]; ok {
		return v
	}
	for i := strings.LastIndex(node, "."); i > 0; i = strings.LastIndex(node[:i], ".") {
		if v, ok := p.permissions[node[:i]+".*"]; ok {
			return v
		}
	}
	if v, ok := p.permissions["*"]; ok {
		return v
	}
	return p.operator
}

// SendMessage records the message with colour codes stripped.
func (p *Player) SendMessage(message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.messages = append(p.messages, StripColors(message))
}

// Messages returns everything sent to the player so far.
func (p *Player) Messages() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]string(nil), p.messages...)
}
