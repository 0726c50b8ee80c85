package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Screen names a routable screen.
type Screen string

const (
	ScreenItemList   Screen = "ItemList"
	ScreenItemDetail Screen = "ItemDetail"
	ScreenCreateItem Screen = "CreateItem"
)

// Params carries navigation parameters, e.g. {"itemId": int64(3)}.
type Params map[string]any

// ItemID returns the "itemId" parameter.
func (p Params) ItemID() (int64, bool) {
	switch v := p["itemId"].(type) {
	case int64:
		return v, true
	case int:
		return int64(v), true
	}
	return 0, false
}

// Refresh reports whether the target screen should fetch on entry.
func (p Params) Refresh() bool {
	v, _ := p["refresh"].(bool)
	return v
}

// Navigator requests a screen change. Callers never inspect the result.
type Navigator interface {
	NavigateTo(screen Screen, params Params) tea.Cmd
}

type navigateMsg struct {
	screen Screen
	params Params
}

// router is the Navigator used by the running program: navigation is a
// message handled by the root model like any other event.
type router struct{}

func (router) NavigateTo(screen Screen, params Params) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{screen: screen, params: params}
	}
}

// navigate tears down the current screen and mounts the next one.
func (m Model) navigate(msg navigateMsg) (Model, tea.Cmd) {
	if m.current == ScreenItemList && msg.screen != ScreenItemList {
		// Leaving the list drops any fetch it started.
		m.store.Abandon()
	}

	m.current = msg.screen
	switch msg.screen {
	case ScreenItemDetail:
		id, _ := msg.params.ItemID()
		m.detail = newDetailView(id)
		return m, nil
	case ScreenCreateItem:
		m.create = newCreateView()
		cmd := m.create.input.Focus()
		return m, cmd
	default:
		m.current = ScreenItemList
		m.list = newListView(m.nav, m.locale)
		refresh := msg.params.Refresh() || m.staleList
		m.staleList = false
		return m.mountList(refresh)
	}
}
