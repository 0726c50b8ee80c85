package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/roster/internal/state"
)

// renderHeader renders the status bar: logo, fetch status, item count,
// pending mutations, endpoint and the last change to the collection.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	snap := m.store.Snapshot()
	compact := m.width < LayoutCompactWidth

	parts := []string{bg.Render("roster", styles.Logo)}

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.StatusColor(snap.Status)))
	status := "● " + strings.ToUpper(snap.Status.String())
	if snap.Status == state.Loading {
		status = m.spinner.View() + " LOADING"
	}
	parts = append(parts, bg.Render(status, statusStyle))

	parts = append(parts,
		bg.Render("Items:", styles.MutedText)+bg.Space()+
			bg.Render(fmt.Sprintf("%d", len(snap.Items)), styles.Text))

	if snap.Creating {
		parts = append(parts, bg.Render("Saving…", styles.InfoText))
	}
	if n := len(snap.Deleting); n > 0 {
		parts = append(parts, bg.Render(fmt.Sprintf("Deleting: %d", n), styles.WarningText))
	}

	if !compact && m.endpoint != "" {
		parts = append(parts, bg.Render(truncate(m.endpoint, 40), styles.FaintText))
	}

	if !snap.LastUpdated.IsZero() {
		parts = append(parts, bg.Render(snap.LastUpdated.Format("15:04:05")+
			" ("+humanizeSince(snap.LastUpdated, time.Now())+")", styles.MutedText))
	}

	return styles.Header.Width(m.width).Render(bg.Join(parts, "  "))
}

// renderCommandBar renders the key hints for the active screen.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd

	switch {
	case m.current == ScreenItemDetail:
		commands = []cmd{{"esc", "Back"}, {"?", "More"}}
	case m.current == ScreenCreateItem:
		commands = []cmd{{"enter", "Save"}, {"esc", "Cancel"}}
	case m.list.searching:
		commands = []cmd{{"enter", "Apply"}, {"esc", "Clear"}}
	case m.list.confirmID != 0:
		commands = []cmd{{"y", "Delete"}, {"n", "Keep"}}
	default:
		commands = []cmd{
			{"/", "Search"},
			{"s", "Sort " + m.list.prefs.Order.String()},
			{"n", "New"},
			{"d", "Delete"},
			{"r", "Reload"},
			{"enter", "Open"},
			{"?", "More"},
		}
		if m.list.view.Notice != "" {
			commands = append(commands, cmd{"x", "Dismiss"})
		}
	}

	colon := bg.Render(":", styles.FaintText)
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return styles.Header.Width(m.width).Render(bg.Join(segments, "  "))
}
