package ui

import (
	"context"
	"fmt"
	"log"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"

	"github.com/five82/roster/internal/items"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Service   items.Service
	Store     *state.Store
	Navigator Navigator
	Locale    language.Tag
	Prefs     prefs.Prefs
	PrefsPath string
	Endpoint  string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	service   items.Service
	store     *state.Store
	nav       Navigator
	keys      keyMap
	locale    language.Tag
	prefs     prefs.Prefs
	prefsPath string
	endpoint  string

	// UI state
	theme    Theme
	width    int
	height   int
	ready    bool
	showHelp bool
	spinner  spinner.Model

	// Screens
	current Screen
	list    listView
	detail  detailView
	create  createView

	// noticeSeq identifies the latest scheduled notice expiry.
	noticeSeq int

	// staleList is set when a create settled away from the list; the next
	// list mount fetches.
	staleList bool
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	nav := opts.Navigator
	if nav == nil {
		nav = router{}
	}

	locale := opts.Locale
	if locale == language.Und {
		locale = items.DefaultLocale
	}

	p := opts.Prefs
	if p.Theme == "" {
		p.Theme = prefs.Defaults().Theme
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	theme := GetTheme(p.Theme)
	sp := spinner.New(spinner.WithSpinner(spinner.MiniDot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Info))

	return Model{
		ctx:       ctx,
		service:   opts.Service,
		store:     store,
		nav:       nav,
		keys:      DefaultKeyMap(),
		locale:    locale,
		prefs:     p,
		prefsPath: prefsPath,
		endpoint:  opts.Endpoint,
		theme:     theme,
		spinner:   sp,
		current:   ScreenItemList,
		list:      newListView(nav, locale),
	}
}

// Init implements tea.Model. The list is the initial screen and mounts
// like any other visit.
func (m Model) Init() tea.Cmd {
	return m.nav.NavigateTo(ScreenItemList, nil)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case navigateMsg:
		return m.navigate(msg)

	case fetchResultMsg:
		m.store.FinishFetch(msg.ticket, msg.items, msg.err)
		m.syncList()
		return m, nil

	case deleteResultMsg:
		m.store.FinishDelete(msg.id, msg.err)
		m.syncList()
		if msg.err != nil {
			return m.scheduleNoticeClear()
		}
		return m, nil

	case createResultMsg:
		m.store.FinishCreate(msg.item, msg.err)
		if msg.err != nil {
			m.create.saving = false
			m.syncList()
			return m.scheduleNoticeClear()
		}
		switch m.current {
		case ScreenCreateItem:
			return m, m.nav.NavigateTo(ScreenItemList, Params{"refresh": true})
		case ScreenItemList:
			// The form was left before the server answered.
			cmd := m.beginFetch()
			m.syncList()
			return m, cmd
		}
		m.staleList = true
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.store.DismissNotice()
			m.syncList()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// busy reports whether a spinner is on screen.
func (m Model) busy() bool {
	return m.store.Status() == state.Loading || m.create.saving
}

func (m Model) scheduleNoticeClear() (tea.Model, tea.Cmd) {
	m.noticeSeq++
	return m, clearNoticeCmd(m.noticeSeq)
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	if m.showHelp {
		return m.renderHelp()
	}

	var body string
	switch m.current {
	case ScreenItemDetail:
		body = m.renderDetail()
	case ScreenCreateItem:
		body = m.renderCreate()
	default:
		body = m.renderList()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(),
		body,
		m.renderCommandBar(),
	)
}

// handleKey routes keyboard input to the active screen.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	switch m.current {
	case ScreenItemDetail:
		return m.handleDetailKey(msg)
	case ScreenCreateItem:
		return m.handleCreateKey(msg)
	default:
		return m.handleListKey(msg)
	}
}

// handleGlobalKey handles keys shared by screens that are not capturing
// text input.
func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true, m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return true, m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.spinner.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.Info))
		m.prefs.Theme = m.theme.Name
		if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
			log.Printf("save prefs: %v", err)
		}
		return true, m, nil
	}
	return false, m, nil
}

// Run starts the Bubble Tea program and blocks until the user quits or ctx
// is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.Service == nil {
		return fmt.Errorf("ui requires an item service")
	}
	if opts.Context == nil {
		opts.Context = ctx
	}

	p := tea.NewProgram(New(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
