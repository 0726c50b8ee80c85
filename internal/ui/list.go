package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/five82/roster/internal/items"
	"github.com/five82/roster/internal/state"
)

// listView is the per-visit state of the item list screen. A fresh one is
// created every time the screen is entered, so search text and sort order
// reset on re-entry.
type listView struct {
	nav       Navigator
	prefs     items.Preferences
	search    textinput.Model
	searching bool
	selected  int
	confirmID int64

	deriver  items.Deriver
	view     state.View
	snapshot state.Snapshot
}

func newListView(nav Navigator, locale language.Tag) listView {
	ti := textinput.New()
	ti.Placeholder = "Search items..."
	ti.Prompt = "/"
	ti.CharLimit = 100
	ti.Width = 40

	return listView{
		nav:     nav,
		prefs:   items.Preferences{Order: items.SortAsc},
		search:  ti,
		deriver: items.Deriver{Locale: locale},
	}
}

// mountList activates the list screen. The first visit (status Idle), a
// visit after a failed fetch, and an explicit refresh request all fetch.
func (m Model) mountList(refresh bool) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.store.Status() {
	case state.Idle, state.Failed:
		cmd = m.beginFetch()
	default:
		if refresh {
			cmd = m.beginFetch()
		}
	}
	m.syncList()
	return m, cmd
}

// syncList recomputes the derived view from the store and the screen's
// preferences, keeping the selection on the same item when it survives.
func (m *Model) syncList() {
	var selectedID int64
	if it := m.list.selectedItem(); it != nil {
		selectedID = it.ID
	}

	m.list.snapshot = m.store.Snapshot()
	m.list.view = m.list.snapshot.View(m.list.prefs, &m.list.deriver)

	count := len(m.list.view.Items)
	if count == 0 {
		m.list.selected = 0
		return
	}
	if selectedID > 0 {
		if idx := items.Index(m.list.view.Items, selectedID); idx >= 0 {
			m.list.selected = idx
			return
		}
	}
	if m.list.selected >= count {
		m.list.selected = count - 1
	}
}

func (l listView) selectedItem() *items.Item {
	if l.selected < 0 || l.selected >= len(l.view.Items) {
		return nil
	}
	it := l.view.Items[l.selected]
	return &it
}

// SetSearchQuery replaces the filter text.
func (l *listView) SetSearchQuery(q string) {
	l.prefs.Query = q
}

// ToggleSortOrder flips the title ordering.
func (l *listView) ToggleSortOrder() {
	l.prefs.Order = l.prefs.Order.Toggle()
}

// handleListKey processes keyboard input for the list screen.
func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		return m.handleSearchKey(msg)
	}
	if m.list.confirmID != 0 {
		return m.handleConfirmKey(msg)
	}
	if handled, next, cmd := m.handleGlobalKey(msg); handled {
		return next, cmd
	}

	count := len(m.list.view.Items)
	switch {
	case key.Matches(msg, m.keys.Search):
		m.list.searching = true
		cmd := m.list.search.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.ToggleSort):
		m.list.ToggleSortOrder()
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.Retry):
		cmd := m.beginFetch()
		m.syncList()
		return m, cmd

	case key.Matches(msg, m.keys.DismissNotice):
		m.store.DismissNotice()
		m.syncList()
		return m, nil

	case key.Matches(msg, m.keys.Create):
		return m, m.list.nav.NavigateTo(ScreenCreateItem, nil)

	case key.Matches(msg, m.keys.Open):
		if it := m.list.selectedItem(); it != nil {
			return m, m.list.nav.NavigateTo(ScreenItemDetail, Params{"itemId": it.ID})
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		it := m.list.selectedItem()
		if it == nil {
			return m, nil
		}
		if m.prefs.ShouldConfirmDelete() {
			m.list.confirmID = it.ID
			return m, nil
		}
		cmd := m.requestDelete(it.ID)
		m.syncList()
		return m, cmd

	case key.Matches(msg, m.keys.Down):
		if m.list.selected < count-1 {
			m.list.selected++
		}
	case key.Matches(msg, m.keys.Up):
		if m.list.selected > 0 {
			m.list.selected--
		}
	case key.Matches(msg, m.keys.Top):
		m.list.selected = 0
	case key.Matches(msg, m.keys.Bottom):
		if count > 0 {
			m.list.selected = count - 1
		}
	}
	return m, nil
}

func (m Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.list.searching = false
		m.list.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.list.searching = false
		m.list.search.Blur()
		m.list.search.SetValue("")
		m.list.SetSearchQuery("")
		m.syncList()
		return m, nil
	}

	var cmd tea.Cmd
	m.list.search, cmd = m.list.search.Update(msg)
	m.list.SetSearchQuery(m.list.search.Value())
	m.syncList()
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	id := m.list.confirmID
	switch {
	case key.Matches(msg, m.keys.Yes):
		m.list.confirmID = 0
		cmd := m.requestDelete(id)
		m.syncList()
		return m, cmd
	case key.Matches(msg, m.keys.No):
		m.list.confirmID = 0
	}
	return m, nil
}

// renderList renders the list screen body.
func (m Model) renderList() string {
	styles := m.theme.Styles()
	contentHeight := max(m.height-2, 3) // header + command bar

	var top []string
	top = append(top, m.renderSearchLine())
	if banner := m.renderListBanner(); banner != "" {
		top = append(top, banner)
	}

	boxHeight := max(contentHeight-len(top), 3)
	innerWidth := max(m.width-2, 10)

	var body string
	switch {
	case len(m.list.view.Items) > 0:
		body = m.renderRows(innerWidth, boxHeight-2)
	case m.list.view.Status == state.Loading:
		body = m.spinner.View() + " " + styles.MutedText.Render("Loading items...")
	case m.list.prefs.Query != "":
		body = styles.MutedText.Render(fmt.Sprintf("No items match %q", m.list.prefs.Query))
	case m.list.view.Status == state.Failed:
		body = styles.MutedText.Render("Nothing to show. Press r to retry.")
	default:
		body = styles.MutedText.Render("No items yet. Press n to create one.")
	}

	box := m.renderTitledBox(m.listTitle(), body, m.width, boxHeight, true)
	return strings.Join(append(top, box), "\n")
}

func (m Model) listTitle() string {
	total := len(m.list.snapshot.Items)
	visible := len(m.list.view.Items)
	if m.list.prefs.Query == "" {
		return fmt.Sprintf("Items (%d)", total)
	}
	return fmt.Sprintf("Items (%d/%d)", visible, total)
}

func (m Model) renderSearchLine() string {
	styles := m.theme.Styles()
	var search string
	switch {
	case m.list.searching:
		search = m.list.search.View()
	case m.list.prefs.Query != "":
		search = styles.AccentText.Render("/" + m.list.prefs.Query)
	default:
		search = styles.FaintText.Render("/ to search")
	}
	sort := "Sort: A→Z"
	if m.list.prefs.Order == items.SortDesc {
		sort = "Sort: Z→A"
	}
	return search + "  " + styles.MutedText.Render(sort)
}

// renderListBanner shows, in priority order, a delete confirmation, the
// fetch error and the mutation notice.
func (m Model) renderListBanner() string {
	styles := m.theme.Styles()
	if id := m.list.confirmID; id != 0 {
		title := fmt.Sprintf("#%d", id)
		if idx := items.Index(m.list.snapshot.Items, id); idx >= 0 {
			title = m.list.snapshot.Items[idx].Title
		}
		return styles.WarningText.Render(fmt.Sprintf("Delete %q? (y/n)", truncate(title, 40)))
	}
	var parts []string
	if m.list.view.Err != "" {
		parts = append(parts, styles.DangerText.Render("Error: "+m.list.view.Err)+
			styles.MutedText.Render("  r to retry"))
	}
	if m.list.view.Notice != "" {
		parts = append(parts, styles.WarningText.Render(m.list.view.Notice)+
			styles.MutedText.Render("  x to dismiss"))
	}
	return strings.Join(parts, "  ")
}

// renderRows renders the derived items as styled rows.
func (m Model) renderRows(width, height int) string {
	list := m.list.view.Items
	start, end := visibleWindow(len(list), m.list.selected, height)

	var lines []string
	for i := start; i < end; i++ {
		lines = append(lines, m.formatRow(list[i], width, i == m.list.selected))
	}
	return strings.Join(lines, "\n")
}

// formatRow formats one item: "#ID Title" plus a pending-delete marker.
func (m Model) formatRow(it items.Item, width int, selected bool) string {
	bgColor := m.theme.FocusBg
	if selected {
		bgColor = m.theme.SelectionBg
	}
	bg := NewBgStyle(bgColor)

	var idStyle, titleStyle, markStyle lipgloss.Style
	if selected {
		sel := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		idStyle, titleStyle, markStyle = sel, sel, sel
	} else {
		styles := m.theme.Styles()
		idStyle, titleStyle, markStyle = styles.MutedText, styles.Text, styles.WarningText
	}

	idStr := fmt.Sprintf("#%d", it.ID)
	mark := ""
	if m.list.snapshot.IsDeleting(it.ID) {
		mark = "deleting…"
	}
	titleWidth := max(width-len(idStr)-len([]rune(mark))-3, 10)

	row := bg.Render(idStr, idStyle) + bg.Space() + bg.Render(truncate(it.Title, titleWidth), titleStyle)
	if mark != "" {
		row += bg.Spaces(2) + bg.Render(mark, markStyle)
	}
	return bg.FillLine(row, width)
}
