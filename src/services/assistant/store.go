// Package assistant holds the client-side conversation state machine: the
// conversation store and the mock response generator it drives. The store
// owns ordering and title-derivation rules; presentation components only read
// snapshots and invoke actions.
package assistant

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v4"

	"github.com/mehuljariwala/sentient-ai-assistant/src/models"
)

// titleLimit is how many characters of the first message become the title.
const titleLimit = 50

// Store holds the conversation collection, the active conversation and the
// loading flag, and exposes the five actions the UI drives. All mutation is
// whole-snapshot replace; readers never observe a half-applied transition.
//
// Each Store is an independent instance; nothing is process-global.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []func(State)

	// sendLocks serializes SendMessage per conversation so a second send
	// cannot interleave with a pending generation on the same conversation.
	sendLocks map[string]*sync.Mutex

	gen    Generator
	logger *slog.Logger

	now               func() time.Time
	newMessageID      func() string
	newConversationID func() string
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used for generation-failure diagnostics.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) { s.logger = logger }
}

// WithClock replaces the timestamp source for deterministic tests.
func WithClock(now func() time.Time) StoreOption {
	return func(s *Store) { s.now = now }
}

// WithMessageIDs replaces the message id source.
func WithMessageIDs(newID func() string) StoreOption {
	return func(s *Store) { s.newMessageID = newID }
}

// WithConversationIDs replaces the conversation id source.
func WithConversationIDs(newID func() string) StoreOption {
	return func(s *Store) { s.newConversationID = newID }
}

// NewStore builds a store around the given generator.
func NewStore(gen Generator, opts ...StoreOption) *Store {
	s := &Store{
		sendLocks:         make(map[string]*sync.Mutex),
		gen:               gen,
		logger:            slog.Default(),
		now:               time.Now,
		newMessageID:      uuid.NewString,
		newConversationID: shortuuid.New,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns the current state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Subscribe registers fn to be called with every new snapshot, in transition
// order. fn runs with the store locked and must not call back into the store.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// mutate applies one atomic state replace and notifies subscribers.
func (s *Store) mutate(apply func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.state.clone()
	apply(&next)
	s.state = next
	for _, fn := range s.subs {
		fn(next)
	}
}

// CreateNewConversation builds an empty conversation, prepends it to the
// collection and makes it current. Collection and pointer change in the same
// replace.
func (s *Store) CreateNewConversation() *models.Conversation {
	now := s.now()
	conv := &models.Conversation{
		ID:        s.newConversationID(),
		Title:     models.DefaultConversationTitle,
		Messages:  []models.Message{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.mutate(func(st *State) {
		st.Conversations = append([]*models.Conversation{conv}, st.Conversations...)
		st.Current = conv
	})
	return conv
}

// SetCurrentConversation replaces the active-conversation reference without
// touching the collection. The reference is not validated against the
// collection; that is the caller's responsibility.
func (s *Store) SetCurrentConversation(conv *models.Conversation) {
	s.mutate(func(st *State) {
		st.Current = conv
	})
}

// SendMessage appends the user message, awaits the generator and appends the
// reply. A nil current conversation is a defined no-op. Generation failure is
// logged and swallowed: the user message stays appended, the loading flag is
// cleared and no reply appears.
//
// Both appends target the conversation id captured at entry. If the current
// conversation is reassigned mid-flight, the reply still lands on the
// originating conversation in the collection and the new current is left
// untouched.
func (s *Store) SendMessage(ctx context.Context, content string) {
	s.mu.Lock()
	current := s.state.Current
	if current == nil {
		s.mu.Unlock()
		return
	}
	convID := current.ID
	lock, ok := s.sendLocks[convID]
	if !ok {
		lock = &sync.Mutex{}
		s.sendLocks[convID] = lock
	}
	s.mu.Unlock()

	lock.Lock()
	defer lock.Unlock()

	userMsg := models.Message{
		ID:        s.newMessageID(),
		Role:      models.RoleUser,
		Content:   content,
		Timestamp: s.now(),
	}
	s.mutate(func(st *State) {
		s.appendMessage(st, convID, userMsg, true)
		st.Loading = true
	})

	reply, err := s.gen.Generate(ctx, content)
	if err != nil {
		s.logger.Error("response generation failed",
			"conversation_id", convID,
			"error", err)
		s.mutate(func(st *State) {
			st.Loading = false
		})
		return
	}

	assistantMsg := models.Message{
		ID:        s.newMessageID(),
		Role:      models.RoleAssistant,
		Content:   reply,
		Timestamp: s.now(),
	}
	s.mutate(func(st *State) {
		s.appendMessage(st, convID, assistantMsg, false)
		st.Loading = false
	})
}

// appendMessage clones the conversation with the message appended and swaps
// it into both views. The title is derived from the first message only.
func (s *Store) appendMessage(st *State, convID string, msg models.Message, deriveTitle bool) {
	conv := st.conversation(convID)
	if conv == nil {
		// Deleted while the send was in flight; drop silently.
		return
	}
	next := conv.Clone()
	if deriveTitle && len(conv.Messages) == 0 {
		next.Title = firstChars(msg.Content, titleLimit)
	}
	next.Messages = append(next.Messages, msg)
	next.UpdatedAt = msg.Timestamp
	st.replaceConversation(next)
	if st.Current != nil && st.Current.ID == convID {
		st.Current = next
	}
}

// DeleteConversation removes the conversation with the given id. Deleting the
// current conversation leaves no conversation selected. Unknown ids are a
// no-op.
func (s *Store) DeleteConversation(id string) {
	s.mutate(func(st *State) {
		kept := st.Conversations[:0:0]
		for _, c := range st.Conversations {
			if c.ID != id {
				kept = append(kept, c)
			}
		}
		st.Conversations = kept
		if st.Current != nil && st.Current.ID == id {
			st.Current = nil
		}
		// mutate holds s.mu, which also guards sendLocks. An in-flight
		// send keeps its own reference; its append already drops silently.
		delete(s.sendLocks, id)
	})
}

// ClearAllConversations empties the collection and the current reference.
func (s *Store) ClearAllConversations() {
	s.mutate(func(st *State) {
		st.Conversations = nil
		st.Current = nil
		s.sendLocks = make(map[string]*sync.Mutex)
	})
}

// firstChars returns the first n characters (runes) of text, no ellipsis.
func firstChars(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	return string(runes[:n])
}
