package assistant

import "github.com/mehuljariwala/sentient-ai-assistant/src/models"

// SuggestedPrompts is the fixed set of prompts offered to seed a new
// conversation. It is read-only; callers must not modify it.
var SuggestedPrompts = []models.SuggestedPrompt{
	{ID: "1", Text: "What's the meaning of life?"},
	{ID: "2", Text: "How do you define love?"},
	{ID: "3", Text: "What's the meaning of AI?"},
	{ID: "4", Text: "What is Sentient?"},
}
