package state

import (
	"errors"
	"sync"
	"time"

	"github.com/five82/roster/internal/items"
)

// FetchStatus is the lifecycle state of the most recent list fetch.
type FetchStatus int

const (
	Idle FetchStatus = iota
	Loading
	Succeeded
	Failed
)

func (s FetchStatus) String() string {
	switch s {
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "idle"
	}
}

// ErrCreateInFlight is returned by BeginCreate while another create is pending.
var ErrCreateInFlight = errors.New("a create is already in progress")

// Ticket identifies one fetch attempt. Responses carrying a ticket that is
// no longer current are dropped.
type Ticket uint64

// Snapshot is a copy of the core state handed to readers.
type Snapshot struct {
	Items       []items.Item
	Status      FetchStatus
	Err         error // set only while Status == Failed
	Notice      error // last mutation failure, until dismissed
	Revision    uint64
	LastUpdated time.Time // last successful fetch or confirmed delete
	Creating    bool
	Deleting    []int64
}

// Store owns the fetch lifecycle and the canonical collection. The zero
// value is ready to use.
type Store struct {
	mu sync.RWMutex

	items       []items.Item
	status      FetchStatus
	prevStatus  FetchStatus
	err         error
	notice      error
	revision    uint64
	lastUpdated time.Time

	ticket   Ticket
	creating bool
	deleting map[int64]struct{}
}

// BeginFetch moves the store to Loading and returns the ticket the caller
// must hand back to FinishFetch. It returns false, and the caller must not
// call the remote store, when a fetch is already in flight.
func (s *Store) BeginFetch() (Ticket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status == Loading {
		return 0, false
	}
	s.ticket++
	s.prevStatus = s.status
	s.status = Loading
	s.err = nil
	return s.ticket, true
}

// FinishFetch settles the fetch identified by t. A nil err replaces the
// collection wholesale; a non-nil err moves to Failed and keeps the
// last-known-good collection. Responses for stale tickets are ignored and
// FinishFetch reports false.
func (s *Store) FinishFetch(t Ticket, list []items.Item, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Loading || t != s.ticket {
		return false
	}
	if err != nil {
		var fe *items.FetchError
		if !errors.As(err, &fe) {
			err = &items.FetchError{Err: err}
		}
		s.status = Failed
		s.err = err
		return true
	}
	s.items = items.Clone(list)
	s.revision++
	s.status = Succeeded
	s.lastUpdated = time.Now()
	return true
}

// Abandon invalidates an in-flight fetch, typically because the view that
// issued it was torn down. The status returns to what it was before the
// fetch began so the next view can fetch again.
func (s *Store) Abandon() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.status != Loading {
		return
	}
	s.ticket++
	s.status = s.prevStatus
	if s.status == Failed {
		// The error that caused Failed was cleared by BeginFetch.
		s.status = Idle
	}
}

// BeginDelete reports whether a delete for id should be sent to the remote
// store. It is a no-op when id is not in the collection or a delete for it
// is already pending.
func (s *Store) BeginDelete(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if items.Index(s.items, id) < 0 {
		return false
	}
	if _, pending := s.deleting[id]; pending {
		return false
	}
	if s.deleting == nil {
		s.deleting = make(map[int64]struct{})
	}
	s.deleting[id] = struct{}{}
	return true
}

// FinishDelete settles a delete started with BeginDelete. On success the
// item is removed from the collection; on failure the collection and fetch
// status are left untouched and the failure becomes the notice.
func (s *Store) FinishDelete(id int64, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.deleting, id)
	if err != nil {
		s.notice = mutationError("delete", id, err)
		return
	}
	idx := items.Index(s.items, id)
	if idx < 0 {
		return
	}
	next := make([]items.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	s.revision++
	s.lastUpdated = time.Now()
}

// BeginCreate validates the draft and marks a create as pending.
func (s *Store) BeginCreate(draft items.Draft) (items.Draft, error) {
	draft, err := draft.Validate()
	if err != nil {
		return draft, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creating {
		return draft, ErrCreateInFlight
	}
	s.creating = true
	return draft, nil
}

// FinishCreate settles a create. The collection is never edited here; the
// created item becomes visible through the next fetch.
func (s *Store) FinishCreate(_ items.Item, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.creating = false
	if err != nil {
		s.notice = mutationError("create", 0, err)
	}
}

// DismissNotice clears the current mutation notice.
func (s *Store) DismissNotice() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notice = nil
}

// Status returns the current fetch status.
func (s *Store) Status() FetchStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Lookup returns the item with the given id from the collection.
func (s *Store) Lookup(id int64) (items.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := items.Index(s.items, id)
	if idx < 0 {
		return items.Item{}, false
	}
	return s.items[idx], true
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Items:       items.Clone(s.items),
		Status:      s.status,
		Err:         s.err,
		Notice:      s.notice,
		Revision:    s.revision,
		LastUpdated: s.lastUpdated,
		Creating:    s.creating,
	}
	for id := range s.deleting {
		snap.Deleting = append(snap.Deleting, id)
	}
	return snap
}

func mutationError(op string, id int64, err error) error {
	var me *items.MutationError
	if errors.As(err, &me) {
		return err
	}
	return &items.MutationError{Op: op, ID: id, Err: err}
}
