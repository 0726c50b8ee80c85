package ui

import (
	"context"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/roster/internal/items"
	"github.com/five82/roster/internal/state"
)

const noticeTTL = 6 * time.Second

// Messages

type fetchResultMsg struct {
	ticket state.Ticket
	items  []items.Item
	err    error
}

type deleteResultMsg struct {
	id  int64
	err error
}

type createResultMsg struct {
	item items.Item
	err  error
}

type clearNoticeMsg struct {
	seq int
}

// Commands

func fetchCmd(ctx context.Context, svc items.Service, ticket state.Ticket) tea.Cmd {
	return func() tea.Msg {
		list, err := svc.List(ctx)
		if err != nil {
			log.Printf("list items failed: %v", err)
		}
		return fetchResultMsg{ticket: ticket, items: list, err: err}
	}
}

func deleteCmd(ctx context.Context, svc items.Service, id int64) tea.Cmd {
	return func() tea.Msg {
		err := svc.Delete(ctx, id)
		if err != nil {
			log.Printf("delete item %d failed: %v", id, err)
		}
		return deleteResultMsg{id: id, err: err}
	}
}

func createCmd(ctx context.Context, svc items.Service, draft items.Draft) tea.Cmd {
	return func() tea.Msg {
		item, err := svc.Create(ctx, draft)
		if err != nil {
			log.Printf("create item %q failed: %v", draft.Title, err)
		}
		return createResultMsg{item: item, err: err}
	}
}

func clearNoticeCmd(seq int) tea.Cmd {
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

// beginFetch asks the store for a fetch ticket and, when granted, returns
// the command that performs it along with the spinner tick.
func (m Model) beginFetch() tea.Cmd {
	ticket, ok := m.store.BeginFetch()
	if !ok {
		return nil
	}
	return tea.Batch(fetchCmd(m.ctx, m.service, ticket), m.spinner.Tick)
}

// requestDelete issues a delete when the store allows it.
func (m Model) requestDelete(id int64) tea.Cmd {
	if !m.store.BeginDelete(id) {
		return nil
	}
	return deleteCmd(m.ctx, m.service, id)
}
