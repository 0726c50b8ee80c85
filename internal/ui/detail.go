package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// detailView shows a single item looked up by id in the canonical
// collection.
type detailView struct {
	id int64
}

func newDetailView(id int64) detailView {
	return detailView{id: id}
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if handled, next, cmd := m.handleGlobalKey(msg); handled {
		return next, cmd
	}
	if key.Matches(msg, m.keys.Back) {
		return m, m.nav.NavigateTo(ScreenItemList, nil)
	}
	return m, nil
}

func (m Model) renderDetail() string {
	styles := m.theme.Styles()
	height := max(m.height-2, 3)

	title := fmt.Sprintf("Item #%d", m.detail.id)
	it, ok := m.store.Lookup(m.detail.id)
	if !ok {
		body := styles.MutedText.Render("Item no longer exists.")
		return m.renderTitledBox(title, body, m.width, height, true)
	}

	label := styles.MutedText.Width(8)
	lines := []string{
		label.Render("ID") + styles.Text.Render(fmt.Sprintf("%d", it.ID)),
		label.Render("Title") + styles.Text.Bold(true).Render(it.Title),
	}
	if m.store.Snapshot().IsDeleting(it.ID) {
		lines = append(lines, "", styles.WarningText.Render("Delete pending…"))
	}
	return m.renderTitledBox(title, strings.Join(lines, "\n"), m.width, height, true)
}
