package ui

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/items"
	"github.com/five82/roster/internal/state"
)

// createView is the new-item form.
type createView struct {
	input  textinput.Model
	err    string
	saving bool
}

func newCreateView() createView {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = "> "
	ti.CharLimit = 200
	ti.Width = 50
	return createView{input: ti}
}

func (m Model) handleCreateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, m.nav.NavigateTo(ScreenItemList, nil)
	case tea.KeyEnter:
		if m.create.saving {
			return m, nil
		}
		draft, err := m.store.BeginCreate(items.Draft{Title: m.create.input.Value()})
		switch {
		case errors.Is(err, items.ErrEmptyTitle):
			m.create.err = "Title is required."
			return m, nil
		case errors.Is(err, state.ErrCreateInFlight):
			m.create.err = "Another item is still being saved."
			return m, nil
		case err != nil:
			m.create.err = err.Error()
			return m, nil
		}
		m.create.err = ""
		m.create.saving = true
		return m, tea.Batch(createCmd(m.ctx, m.service, draft), m.spinner.Tick)
	}

	var cmd tea.Cmd
	m.create.input, cmd = m.create.input.Update(msg)
	return m, cmd
}

func (m Model) renderCreate() string {
	styles := m.theme.Styles()
	height := max(m.height-2, 3)

	lines := []string{
		styles.MutedText.Render("Title"),
		m.create.input.View(),
		"",
	}
	switch {
	case m.create.saving:
		lines = append(lines, m.spinner.View()+" "+styles.MutedText.Render("Saving..."))
	case m.create.err != "":
		lines = append(lines, styles.DangerText.Render(m.create.err))
	default:
		if notice := m.store.Snapshot().Notice; notice != nil {
			lines = append(lines, styles.WarningText.Render(notice.Error()))
		}
	}

	return m.renderTitledBox("New item", strings.Join(lines, "\n"), m.width, height, true)
}
