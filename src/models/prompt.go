package models

// SuggestedPrompt is a pre-written prompt shown to seed a new conversation.
type SuggestedPrompt struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Category string `json:"category,omitempty"`
}
