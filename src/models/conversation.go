package models

import "time"

// DefaultConversationTitle is used until the first message derives a title.
const DefaultConversationTitle = "New Conversation"

// Conversation is an ordered, titled sequence of messages with
// creation/update timestamps. Messages are append-only; individual messages
// are never mutated or removed.
type Conversation struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Messages  []Message `json:"messages"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Clone returns a deep copy with its own message slice, so callers can
// append without aliasing the original snapshot.
func (c *Conversation) Clone() *Conversation {
	if c == nil {
		return nil
	}
	out := *c
	out.Messages = make([]Message, len(c.Messages))
	copy(out.Messages, c.Messages)
	return &out
}
