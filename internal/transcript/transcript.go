// Package transcript holds the chat message log shared by the TUI and the
// command processor. Messages are append-only; the single permitted mutation
// is replacing the content of a message addressed by its id, which is how a
// loading placeholder becomes a final answer.
package transcript

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"hiredesk/internal/entity"
)

// Sender identifies who produced a message.
type Sender string

const (
	SenderUser      Sender = "user"
	SenderAssistant Sender = "assistant"
)

// EntityRef records which entity a generated answer pertained to.
type EntityRef struct {
	Kind entity.Kind
	ID   string
	Name string
}

// RefFor builds an EntityRef for an entity, or nil for a nil entity.
func RefFor(e entity.Entity) *EntityRef {
	if e == nil {
		return nil
	}
	return &EntityRef{
		Kind: e.EntityKind(),
		ID:   e.EntityID(),
		Name: e.DisplayName(),
	}
}

// Message is a single chat transcript entry.
type Message struct {
	ID        string
	Sender    Sender
	Content   string
	Time      time.Time
	IsLoading bool
	Entity    *EntityRef
}

// Transcript is a thread-safe message log.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{}
}

// Add appends a message and returns its generated id.
func (t *Transcript) Add(sender Sender, content string) string {
	return t.add(Message{Sender: sender, Content: content})
}

// AddLoading appends an assistant placeholder that a later Resolve replaces.
func (t *Transcript) AddLoading(content string) string {
	return t.add(Message{Sender: SenderAssistant, Content: content, IsLoading: true})
}

func (t *Transcript) add(m Message) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	m.ID = uuid.NewString()
	m.Time = time.Now()
	t.messages = append(t.messages, m)
	return m.ID
}

// Resolve replaces the content of the message with the given id, clears its
// loading flag, and attaches the entity reference. Returns false if no such
// message exists.
func (t *Transcript) Resolve(id, content string, ref *EntityRef) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i := range t.messages {
		if t.messages[i].ID == id {
			t.messages[i].Content = content
			t.messages[i].IsLoading = false
			t.messages[i].Entity = ref
			return true
		}
	}
	return false
}

// Messages returns a snapshot of the log.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

// Last returns the most recent message and true, or a zero Message and false
// when the transcript is empty.
func (t *Transcript) Last() (Message, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}

// Clear drops all messages.
func (t *Transcript) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.messages = nil
}

// Len returns the number of messages.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.messages)
}
