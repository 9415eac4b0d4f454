package app

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mehuljariwala/sentient-ai-assistant/src/components/chat"
	"github.com/mehuljariwala/sentient-ai-assistant/src/components/common"
	"github.com/mehuljariwala/sentient-ai-assistant/src/components/sidebar"
	"github.com/mehuljariwala/sentient-ai-assistant/src/services/assistant"
)

func newTestApp() (*App, *assistant.Store) {
	gen := assistant.NewMockGenerator(
		assistant.WithSleep(func(context.Context, time.Duration) error { return nil }),
	)
	store := assistant.NewStore(gen)
	return New(store, common.DefaultLayoutConfig()), store
}

// drain applies msg and keeps executing returned commands until none remain.
func drain(t *testing.T, a *App, msg tea.Msg) {
	t.Helper()
	model, cmd := a.Update(msg)
	require.Same(t, a, model)
	for cmd != nil {
		out := cmd()
		if out == nil {
			return
		}
		if batch, ok := out.(tea.BatchMsg); ok {
			for _, sub := range batch {
				if sub != nil {
					drain(t, a, sub())
				}
			}
			return
		}
		model, cmd = a.Update(out)
		require.Same(t, a, model)
	}
}

func TestInitCreatesConversationOnFirstMount(t *testing.T) {
	a, store := newTestApp()
	a.Init()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	st := store.Snapshot()
	require.Len(t, st.Conversations, 1)
	require.NotNil(t, st.Current)
	assert.Equal(t, "New Conversation", st.Current.Title)
	assert.Empty(t, st.Current.Messages)
}

func TestInitKeepsExistingConversations(t *testing.T) {
	a, store := newTestApp()
	existing := store.CreateNewConversation()
	a.Init()

	st := store.Snapshot()
	require.Len(t, st.Conversations, 1)
	assert.Equal(t, existing.ID, st.Conversations[0].ID)
}

func TestSubmitCreatesConversationAndAppendsReply(t *testing.T) {
	a, store := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	drain(t, a, chat.SubmitMsg{Content: "What is Sentient?"})

	st := store.Snapshot()
	require.Len(t, st.Conversations, 1)
	require.NotNil(t, st.Current)
	require.Len(t, st.Current.Messages, 2)
	assert.Equal(t, "What is Sentient?", st.Current.Messages[0].Content)
	assert.Contains(t, st.Current.Messages[1].Content, "Sentient refers to")
	assert.False(t, st.Loading)
}

func TestPromptSelectionSendsPromptText(t *testing.T) {
	a, store := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	drain(t, a, chat.PromptSelectedMsg{Text: "How do you define love?"})

	st := store.Snapshot()
	require.NotNil(t, st.Current)
	require.Len(t, st.Current.Messages, 2)
	assert.Contains(t, st.Current.Messages[1].Content, "complex and multifaceted emotion")
}

func TestCtrlNCreatesConversation(t *testing.T) {
	a, store := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	drain(t, a, tea.KeyMsg{Type: tea.KeyCtrlN})
	drain(t, a, tea.KeyMsg{Type: tea.KeyCtrlN})

	st := store.Snapshot()
	assert.Len(t, st.Conversations, 2)
	require.NotNil(t, st.Current)
	assert.Equal(t, st.Conversations[0].ID, st.Current.ID)
}

func TestSidebarMessagesDriveStore(t *testing.T) {
	a, store := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	drain(t, a, sidebar.NewConversationMsg{})
	first := store.Snapshot().Current
	require.NotNil(t, first)

	drain(t, a, sidebar.NewConversationMsg{})
	drain(t, a, sidebar.ConversationSelectedMsg{Conversation: first})
	assert.Equal(t, first.ID, store.Snapshot().Current.ID)

	drain(t, a, sidebar.DeleteConversationMsg{ID: first.ID})
	st := store.Snapshot()
	assert.Len(t, st.Conversations, 1)
	assert.Nil(t, st.Current)

	drain(t, a, sidebar.ClearConversationsMsg{})
	assert.Empty(t, store.Snapshot().Conversations)
}

func TestStateMsgRefreshesView(t *testing.T) {
	a, store := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	conv := store.CreateNewConversation()
	drain(t, a, StateMsg{State: store.Snapshot()})

	assert.Contains(t, a.View(), conv.Title)
}

func TestNarrowLayoutShowsChrome(t *testing.T) {
	a, store := newTestApp()
	store.CreateNewConversation()
	drain(t, a, StateMsg{State: store.Snapshot()})
	drain(t, a, tea.WindowSizeMsg{Width: 60, Height: 30})

	view := a.View()
	assert.Contains(t, view, "Home")
	assert.Contains(t, view, "History")
	assert.Contains(t, view, "Discover")
}

func TestTabCyclesFocus(t *testing.T) {
	a, _ := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	require.Equal(t, focusComposer, a.focus)
	drain(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusSidebar, a.focus)
	drain(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusChat, a.focus)
	drain(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusComposer, a.focus)

	drain(t, a, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, focusComposer, a.focus)
}

func TestNarrowLayoutSkipsSidebarFocus(t *testing.T) {
	a, _ := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 60, Height: 30})

	drain(t, a, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusChat, a.focus)
}

func TestCtrlCQuitsWithoutSelection(t *testing.T) {
	a, _ := newTestApp()
	drain(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})

	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
