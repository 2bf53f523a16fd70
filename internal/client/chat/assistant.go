// Package chat is the CLI's echo assistant. It never calls out: every
// message is answered locally with "You said: <message>" after a delay.
package chat

import (
	"strings"
	"sync"
	"time"
)

// DefaultDelay is the reply latency used when none is configured.
const DefaultDelay = 500 * time.Millisecond

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role Role
	Text string
	At   time.Time
}

// Assistant keeps the chat log and answers every message after a fixed
// delay. Replies are delivered in send order.
type Assistant struct {
	delay time.Duration
	now   func() time.Time

	mu       sync.Mutex
	closed   bool
	messages []Message
	queue    []pendingReply
	timer    *time.Timer
}

type pendingReply struct {
	text  string
	due   time.Time
	reply chan Message
}

func NewAssistant(delay time.Duration) *Assistant {
	if delay < 0 {
		delay = DefaultDelay
	}
	return &Assistant{
		delay: delay,
		now:   time.Now,
	}
}

// Send appends text as a user message and schedules the echo reply. Blank
// input and sends after Close are ignored and return nil. The returned
// channel yields the reply once and is then closed; it is closed without a
// value if the assistant is closed first.
func (a *Assistant) Send(text string) <-chan Message {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return nil
	}

	a.messages = append(a.messages, Message{Role: RoleUser, Text: text, At: a.now()})

	reply := make(chan Message, 1)
	a.queue = append(a.queue, pendingReply{text: text, due: time.Now().Add(a.delay), reply: reply})
	if len(a.queue) == 1 {
		a.scheduleLocked()
	}
	return reply
}

// scheduleLocked arms the timer for the head of the queue.
func (a *Assistant) scheduleLocked() {
	a.timer = time.AfterFunc(time.Until(a.queue[0].due), a.deliver)
}

// deliver answers the head of the queue and every later entry that is
// already due, then re-arms the timer for the rest.
func (a *Assistant) deliver() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed || len(a.queue) == 0 {
		return
	}

	now := time.Now()
	n := 1
	for n < len(a.queue) && !a.queue[n].due.After(now) {
		n++
	}
	for _, p := range a.queue[:n] {
		m := Message{Role: RoleAssistant, Text: "You said: " + p.text, At: a.now()}
		a.messages = append(a.messages, m)
		p.reply <- m
		close(p.reply)
	}
	a.queue = a.queue[n:]

	a.timer = nil
	if len(a.queue) > 0 {
		a.scheduleLocked()
	}
}

// Messages returns a copy of the log in arrival order.
func (a *Assistant) Messages() []Message {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]Message, len(a.messages))
	copy(out, a.messages)
	return out
}

// Pending reports how many replies are still scheduled.
func (a *Assistant) Pending() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.queue)
}

// Close cancels every scheduled reply. No message is appended afterwards.
func (a *Assistant) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	for _, p := range a.queue {
		close(p.reply)
	}
	a.queue = nil
}
