// message.go - Defines the Message struct for representing assistant chat
// messages across the application.

package models

import "time"

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message represents one turn in a conversation.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`

	// Loading marks a transient placeholder rendered while a reply is being
	// generated. The store never persists a message with this flag set.
	Loading bool `json:"is_loading,omitempty"`
}
