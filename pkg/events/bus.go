// Package events is the server event bus. Handlers run synchronously, in
// subscription order, on the goroutine that publishes, like server events
// fired from the main thread.
package events

import (
	"sync"

	"github.com/kcaldas/craftkit/pkg/command"
)

const (
	TopicCommandDispatched = "command.dispatched"
	TopicPluginEnabled     = "plugin.enabled"
	TopicPluginDisabled    = "plugin.disabled"
)

// CommandDispatched is published after a command line reached an adapter.
type CommandDispatched struct {
	Sender  command.Sender
	Label   string
	Command string
	Args    []string
	Denied  bool // permission pre-check failed, the executor did not run
	Result  bool
}

// PluginStateChanged is published on TopicPluginEnabled and TopicPluginDisabled.
type PluginStateChanged struct {
	Plugin   string
	Version  string
	Commands int
}

// Bus delivers events by topic. It supports unsubscribe and subscribe-once.
type Bus struct {
	subscribers map[string][]subscriberInfo
	mu          sync.RWMutex
	nextID      int
}

type subscriberInfo struct {
	id      int
	handler func(any)
	once    bool
}

func NewBus() *Bus {
	return &Bus{
		subscribers: make(map[string][]subscriberInfo),
		nextID:      1,
	}
}

// Subscribe registers handler for topic and returns an unsubscribe function.
func (b *Bus) Subscribe(topic string, handler func(any)) func() {
	return b.subscribe(topic, handler, false)
}

// SubscribeOnce registers a handler that is dropped after its first event.
func (b *Bus) SubscribeOnce(topic string, handler func(any)) func() {
	return b.subscribe(topic, handler, true)
}

func (b *Bus) subscribe(topic string, handler func(any), once bool) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.subscribers[topic] = append(b.subscribers[topic], subscriberInfo{id: id, handler: handler, once: once})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.remove(topic, id)
	}
}

// Publish calls every handler of topic before returning. Handlers may
// subscribe or unsubscribe while being called.
func (b *Bus) Publish(topic string, event any) {
	b.mu.Lock()
	subs := append([]subscriberInfo(nil), b.subscribers[topic]...)
	for _, s := range subs {
		if s.once {
			b.remove(topic, s.id)
		}
	}
	b.mu.Unlock()

	for _, s := range subs {
		s.handler(event)
	}
}

// Count returns the number of handlers on topic.
func (b *Bus) Count(topic string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers[topic])
}

// Clear removes all subscribers
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = make(map[string][]subscriberInfo)
}

// remove keeps subscription order; callers hold the lock.
func (b *Bus) remove(topic string, id int) {
	subs := b.subscribers[topic]
	for i, s := range subs {
		if s.id != id {
			continue
		}
		subs = append(subs[:i:i], subs[i+1:]...)
		if len(subs) == 0 {
			delete(b.subscribers, topic)
		} else {
			b.subscribers[topic] = subs
		}
		return
	}
}
