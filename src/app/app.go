// Package app wires the conversation store and the UI components into the
// root bubbletea model.
package app

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mehuljariwala/sentient-ai-assistant/src/components/chat"
	"github.com/mehuljariwala/sentient-ai-assistant/src/components/common"
	"github.com/mehuljariwala/sentient-ai-assistant/src/components/navbar"
	"github.com/mehuljariwala/sentient-ai-assistant/src/components/sidebar"
	"github.com/mehuljariwala/sentient-ai-assistant/src/services/assistant"
)

// StateMsg delivers a store snapshot to the UI. The store subscription in
// main feeds these through Program.Send; Update also synthesizes one after
// every store call it makes itself.
type StateMsg struct {
	State assistant.State
}

// sendDoneMsg marks the completion of a SendMessage command.
type sendDoneMsg struct{}

type focusArea int

const (
	focusComposer focusArea = iota
	focusSidebar
	focusChat
)

// App is the root model: a sidebar plus chat column in wide layouts, a
// header/chat/nav stack in narrow ones.
type App struct {
	store  *assistant.Store
	layout *common.ResponsiveLayout

	sidebar   *sidebar.Model
	chatView  *chat.View
	composer  *chat.Composer
	header    *navbar.Header
	bottomNav *navbar.BottomNav

	state assistant.State
	focus focusArea
	ready bool
}

// New builds the root model around the given store.
func New(store *assistant.Store, layoutCfg common.LayoutConfig) *App {
	a := &App{
		store:     store,
		layout:    common.NewResponsiveLayout(layoutCfg),
		sidebar:   sidebar.New(),
		chatView:  chat.NewView(),
		composer:  chat.NewComposer(),
		header:    navbar.NewHeader(),
		bottomNav: navbar.NewBottomNav(),
	}
	a.setFocus(focusComposer)
	a.applyState(store.Snapshot())
	return a
}

// Init starts the cursor blink and, on a first mount with no conversations,
// creates the initial one so the user always lands in a selected chat.
func (a *App) Init() tea.Cmd {
	if len(a.store.Snapshot().Conversations) == 0 {
		a.store.CreateNewConversation()
	}
	return tea.Batch(a.refresh(), chat.Blink())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.onResize(msg.Width, msg.Height)
		return a, nil

	case StateMsg:
		return a, a.applyState(msg.State)

	case sendDoneMsg:
		return a, a.refresh()

	case sidebar.ConversationSelectedMsg:
		a.store.SetCurrentConversation(msg.Conversation)
		a.setFocus(focusComposer)
		return a, a.refresh()

	case sidebar.NewConversationMsg:
		a.store.CreateNewConversation()
		a.setFocus(focusComposer)
		return a, a.refresh()

	case sidebar.DeleteConversationMsg:
		a.store.DeleteConversation(msg.ID)
		return a, a.refresh()

	case sidebar.ClearConversationsMsg:
		a.store.ClearAllConversations()
		return a, a.refresh()

	case chat.SubmitMsg:
		return a, a.sendMessage(msg.Content)

	case chat.PromptSelectedMsg:
		a.setFocus(focusComposer)
		return a, a.sendMessage(msg.Text)

	case chat.SpinnerTickMsg:
		var cmd tea.Cmd
		a.chatView, cmd = a.chatView.Update(msg)
		return a, cmd

	case chat.BlinkMsg:
		var cmd tea.Cmd
		a.composer, cmd = a.composer.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		return a.handleKeyPress(msg)
	}

	// Component-internal messages (status expiry and the like).
	var cmds []tea.Cmd
	var cmd tea.Cmd
	a.chatView, cmd = a.chatView.Update(msg)
	cmds = append(cmds, cmd)
	a.composer, cmd = a.composer.Update(msg)
	cmds = append(cmds, cmd)
	return a, tea.Batch(cmds...)
}

func (a *App) handleKeyPress(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		// Copy takes priority over quit when a message is selected.
		if a.chatView.HasSelection() {
			return a, a.chatView.CopySelected()
		}
		return a, tea.Quit
	case "ctrl+n":
		a.store.CreateNewConversation()
		a.setFocus(focusComposer)
		return a, a.refresh()
	case "tab":
		a.cycleFocus()
		return a, nil
	case "esc":
		a.setFocus(focusComposer)
		return a, nil
	}

	var cmd tea.Cmd
	switch a.focus {
	case focusComposer:
		a.composer, cmd = a.composer.Update(key)
	case focusSidebar:
		a.sidebar, cmd = a.sidebar.Update(key)
	case focusChat:
		a.chatView, cmd = a.chatView.Update(key)
	}
	return a, cmd
}

// sendMessage runs the store's send on a background goroutine via a command,
// creating a conversation first if none is selected. The in-flight state
// transitions arrive through the store subscription; the final sendDoneMsg
// covers programs run without one.
func (a *App) sendMessage(content string) tea.Cmd {
	store := a.store
	if store.Snapshot().Current == nil {
		store.CreateNewConversation()
	}
	cmd := func() tea.Msg {
		store.SendMessage(context.Background(), content)
		return sendDoneMsg{}
	}
	return tea.Batch(a.refresh(), cmd)
}

// refresh re-applies the latest snapshot and returns any follow-up command.
func (a *App) refresh() tea.Cmd {
	return a.applyState(a.store.Snapshot())
}

func (a *App) applyState(st assistant.State) tea.Cmd {
	wasLoading := a.state.Loading
	a.state = st

	currentID := ""
	if st.Current != nil {
		currentID = st.Current.ID
	}
	a.sidebar.SetConversations(st.Conversations, currentID)
	a.chatView.SetConversation(st.Current, st.Loading)
	a.composer.SetDisabled(st.Loading)
	a.composer.SetFollowUp(st.Current != nil && len(st.Current.Messages) > 0)

	if st.Loading && !wasLoading {
		return chat.TickSpinner()
	}
	return nil
}

func (a *App) onResize(width, height int) {
	a.layout.UpdateSize(width, height)
	a.ready = true

	if a.layout.IsWide() {
		sw, sh := a.layout.SidebarDimensions()
		a.sidebar.OnResize(sw, sh)
		cw, ch := a.layout.ContentDimensions()
		a.chatView.OnResize(cw, ch-4) // composer box and mode line
		a.composer.OnResize(cw)
	} else {
		cw, ch := a.layout.ContentDimensions()
		a.header.OnResize(cw)
		a.bottomNav.OnResize(cw)
		a.chatView.OnResize(cw, ch-4)
		a.composer.OnResize(cw)
		if a.focus == focusSidebar {
			// The sidebar is hidden in narrow layouts.
			a.setFocus(focusComposer)
		}
	}
}

func (a *App) cycleFocus() {
	switch a.focus {
	case focusComposer:
		if a.layout.IsWide() {
			a.setFocus(focusSidebar)
		} else {
			a.setFocus(focusChat)
		}
	case focusSidebar:
		a.setFocus(focusChat)
	case focusChat:
		a.setFocus(focusComposer)
	}
}

func (a *App) setFocus(focus focusArea) {
	a.focus = focus
	a.composer.SetFocused(focus == focusComposer)
	a.sidebar.SetFocused(focus == focusSidebar)
	a.chatView.SetFocused(focus == focusChat)
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Starting Sentient..."
	}

	if a.layout.IsWide() {
		content := lipgloss.JoinVertical(lipgloss.Left,
			a.chatView.View(),
			a.composer.View(),
		)
		return lipgloss.JoinHorizontal(lipgloss.Top,
			a.sidebar.View(),
			" ",
			content,
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		a.header.View(),
		a.chatView.View(),
		a.composer.View(),
		a.bottomNav.View(),
	)
}
