package assistant

import "github.com/mehuljariwala/sentient-ai-assistant/src/models"

// State is an immutable snapshot of the store. Every transition replaces the
// whole snapshot rather than editing it in place, so observers holding an
// older State never see a partially-updated structure.
type State struct {
	// Conversations is ordered newest-first; new conversations prepend.
	Conversations []*models.Conversation
	// Current points at one element of Conversations, or nil.
	Current *models.Conversation
	// Loading is true strictly while a response generation is in flight.
	Loading bool
}

// clone copies the snapshot with a fresh conversation slice. The conversation
// pointers themselves are shared; mutations always swap in cloned
// conversations, never edit the pointees.
func (s State) clone() State {
	out := s
	out.Conversations = make([]*models.Conversation, len(s.Conversations))
	copy(out.Conversations, s.Conversations)
	return out
}

// conversation returns the list entry with the given id, or nil.
func (s State) conversation(id string) *models.Conversation {
	for _, c := range s.Conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// replaceConversation swaps the entry with conv.ID for conv, keeping order.
// Unknown ids are a no-op.
func (s *State) replaceConversation(conv *models.Conversation) {
	for i, c := range s.Conversations {
		if c.ID == conv.ID {
			s.Conversations[i] = conv
			return
		}
	}
}
