package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/roster/internal/items"
)

func loaded(t *testing.T, list ...items.Item) *Store {
	t.Helper()
	var s Store
	ticket, ok := s.BeginFetch()
	require.True(t, ok)
	require.True(t, s.FinishFetch(ticket, list, nil))
	return &s
}

func TestStore_ZeroValueIsIdle(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	assert.Equal(t, Idle, snap.Status)
	assert.Empty(t, snap.Items)
	assert.NoError(t, snap.Err)
	assert.NoError(t, snap.Notice)
}

func TestStore_FetchSuccessReplacesCollection(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "old"})
	rev := s.Snapshot().Revision

	ticket, ok := s.BeginFetch()
	require.True(t, ok)
	assert.Equal(t, Loading, s.Status())

	before := time.Now()
	require.True(t, s.FinishFetch(ticket, []items.Item{{ID: 2, Title: "new"}, {ID: 3, Title: "newer"}}, nil))

	snap := s.Snapshot()
	assert.Equal(t, Succeeded, snap.Status)
	assert.Equal(t, []items.Item{{ID: 2, Title: "new"}, {ID: 3, Title: "newer"}}, snap.Items)
	assert.Greater(t, snap.Revision, rev)
	assert.False(t, snap.LastUpdated.Before(before))
}

func TestStore_ScenarioC_FetchFailureKeepsCollection(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "Banana"}, items.Item{ID: 2, Title: "apple"})
	prev := s.Snapshot()

	ticket, ok := s.BeginFetch()
	require.True(t, ok)
	require.True(t, s.FinishFetch(ticket, nil, errors.New("network down")))

	snap := s.Snapshot()
	assert.Equal(t, prev.LastUpdated, snap.LastUpdated, "a failed fetch is not a refresh")
	assert.Equal(t, Failed, snap.Status)
	require.Error(t, snap.Err)
	assert.Equal(t, "network down", snap.Err.Error())
	var fe *items.FetchError
	assert.ErrorAs(t, snap.Err, &fe)
	assert.Equal(t, prev.Items, snap.Items)
	assert.Equal(t, prev.Revision, snap.Revision)

	v := s.View(items.Preferences{})
	assert.Equal(t, "network down", v.Err)
	assert.Len(t, v.Items, 2, "failed fetch keeps the last-known-good list visible")
}

func TestStore_ErrorClearedOnNextAttempt(t *testing.T) {
	var s Store
	ticket, _ := s.BeginFetch()
	s.FinishFetch(ticket, nil, errors.New("boom"))
	require.Error(t, s.Snapshot().Err)

	ticket, ok := s.BeginFetch()
	require.True(t, ok, "failed -> loading must be allowed")
	assert.NoError(t, s.Snapshot().Err)
	assert.Empty(t, s.View(items.Preferences{}).Err)

	s.FinishFetch(ticket, []items.Item{{ID: 1, Title: "a"}}, nil)
	assert.Equal(t, Succeeded, s.Status())
	assert.NoError(t, s.Snapshot().Err)
}

func TestStore_AtMostOneFetchInFlight(t *testing.T) {
	var s Store
	first, ok := s.BeginFetch()
	require.True(t, ok)

	_, ok = s.BeginFetch()
	assert.False(t, ok, "second BeginFetch while loading must be a no-op")
	assert.Equal(t, Loading, s.Status())

	assert.True(t, s.FinishFetch(first, []items.Item{{ID: 1, Title: "a"}}, nil))

	_, ok = s.BeginFetch()
	assert.True(t, ok, "succeeded -> loading must be allowed")
}

func TestStore_StaleTicketIsDropped(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "kept"})

	ticket, ok := s.BeginFetch()
	require.True(t, ok)
	s.Abandon()
	assert.Equal(t, Succeeded, s.Status(), "abandon restores the pre-fetch status")

	assert.False(t, s.FinishFetch(ticket, []items.Item{{ID: 9, Title: "late"}}, nil))
	assert.False(t, s.FinishFetch(ticket, nil, errors.New("late failure")))

	snap := s.Snapshot()
	assert.Equal(t, Succeeded, snap.Status)
	assert.Equal(t, []items.Item{{ID: 1, Title: "kept"}}, snap.Items)
	assert.NoError(t, snap.Err)

	next, ok := s.BeginFetch()
	require.True(t, ok)
	assert.NotEqual(t, ticket, next)
	assert.False(t, s.FinishFetch(ticket, nil, nil), "old ticket stays stale after a new fetch starts")
	assert.True(t, s.FinishFetch(next, nil, nil))
}

func TestStore_AbandonFromIdleAndFailed(t *testing.T) {
	var s Store
	s.BeginFetch()
	s.Abandon()
	assert.Equal(t, Idle, s.Status())

	ticket, _ := s.BeginFetch()
	s.FinishFetch(ticket, nil, errors.New("boom"))
	s.BeginFetch()
	s.Abandon()
	assert.Equal(t, Idle, s.Status(), "abandoning a retry after failure returns to idle")

	s.Abandon()
	assert.Equal(t, Idle, s.Status(), "abandon without a fetch in flight is a no-op")
}

func TestStore_ScenarioD_DeleteRemovesItem(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "Banana"}, items.Item{ID: 2, Title: "apple"})
	prefs := items.Preferences{}
	before := s.View(prefs)
	require.GreaterOrEqual(t, items.Index(before.Items, 1), 0)

	require.True(t, s.BeginDelete(1))
	assert.True(t, s.Snapshot().IsDeleting(1))
	s.FinishDelete(1, nil)

	snap := s.Snapshot()
	assert.Equal(t, []items.Item{{ID: 2, Title: "apple"}}, snap.Items)
	assert.False(t, snap.IsDeleting(1))
	assert.Equal(t, Succeeded, snap.Status)
	assert.Greater(t, snap.Revision, before.Revision)

	after := s.View(prefs)
	assert.Equal(t, -1, items.Index(after.Items, 1))
}

func TestStore_DeletePreconditionMissingID(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"})
	ticket, _ := s.BeginFetch()
	s.FinishFetch(ticket, nil, errors.New("boom"))
	prev := s.Snapshot()

	assert.False(t, s.BeginDelete(42))

	snap := s.Snapshot()
	assert.Equal(t, prev.Items, snap.Items)
	assert.Equal(t, prev.Err, snap.Err)
	assert.Equal(t, prev.Revision, snap.Revision)
}

func TestStore_DeleteIsIdempotent(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"}, items.Item{ID: 2, Title: "b"})

	require.True(t, s.BeginDelete(1))
	assert.False(t, s.BeginDelete(1), "delete already in flight")

	s.FinishDelete(1, nil)
	assert.False(t, s.BeginDelete(1), "deleted id is no longer in the collection")
	assert.Len(t, s.Snapshot().Items, 1)
}

func TestStore_DeleteFailureSetsNoticeOnly(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"})
	prev := s.Snapshot()

	require.True(t, s.BeginDelete(1))
	s.FinishDelete(1, errors.New("forbidden"))

	snap := s.Snapshot()
	assert.Equal(t, prev.Items, snap.Items)
	assert.Equal(t, Succeeded, snap.Status)
	assert.NoError(t, snap.Err)
	require.Error(t, snap.Notice)
	var me *items.MutationError
	require.ErrorAs(t, snap.Notice, &me)
	assert.Equal(t, "delete", me.Op)
	assert.Equal(t, int64(1), me.ID)
	assert.Equal(t, "delete item 1: forbidden", s.View(items.Preferences{}).Notice)

	assert.True(t, s.BeginDelete(1), "a failed delete can be retried")

	s.DismissNotice()
	assert.NoError(t, s.Snapshot().Notice)
}

func TestStore_DeleteAfterRefetchDroppedItem(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"}, items.Item{ID: 2, Title: "b"})
	require.True(t, s.BeginDelete(1))

	ticket, _ := s.BeginFetch()
	s.FinishFetch(ticket, []items.Item{{ID: 2, Title: "b"}}, nil)
	rev := s.Snapshot().Revision

	s.FinishDelete(1, nil)
	snap := s.Snapshot()
	assert.Equal(t, []items.Item{{ID: 2, Title: "b"}}, snap.Items)
	assert.Equal(t, rev, snap.Revision)
}

func TestStore_DeleteNeverTriggersFetch(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"})
	require.True(t, s.BeginDelete(1))
	s.FinishDelete(1, nil)
	assert.Equal(t, Succeeded, s.Status())
}

func TestStore_CreateLifecycle(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"})
	prev := s.Snapshot()

	_, err := s.BeginCreate(items.Draft{Title: "  "})
	assert.ErrorIs(t, err, items.ErrEmptyTitle)

	draft, err := s.BeginCreate(items.Draft{Title: " milk "})
	require.NoError(t, err)
	assert.Equal(t, "milk", draft.Title)
	assert.True(t, s.Snapshot().Creating)

	_, err = s.BeginCreate(items.Draft{Title: "eggs"})
	assert.ErrorIs(t, err, ErrCreateInFlight)

	s.FinishCreate(items.Item{ID: 2, Title: "milk"}, nil)
	snap := s.Snapshot()
	assert.False(t, snap.Creating)
	assert.Equal(t, prev.Items, snap.Items, "create success does not edit the collection")
	assert.NoError(t, snap.Notice)

	_, err = s.BeginCreate(items.Draft{Title: "eggs"})
	require.NoError(t, err)
	s.FinishCreate(items.Item{}, errors.New("quota exceeded"))
	snap = s.Snapshot()
	assert.Equal(t, "create item: quota exceeded", snap.Notice.Error())
	assert.Equal(t, Succeeded, snap.Status)
}

func TestStore_SnapshotIsIndependent(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "a"})

	snap := s.Snapshot()
	snap.Items[0].Title = "mutated"

	got, ok := s.Lookup(1)
	require.True(t, ok)
	assert.Equal(t, "a", got.Title)

	_, ok = s.Lookup(5)
	assert.False(t, ok)
}

func TestStore_FinishFetchCopiesInput(t *testing.T) {
	var s Store
	list := []items.Item{{ID: 1, Title: "a"}}
	ticket, _ := s.BeginFetch()
	s.FinishFetch(ticket, list, nil)

	list[0].Title = "mutated"
	got, _ := s.Lookup(1)
	assert.Equal(t, "a", got.Title)
}

func TestSnapshotView_UsesDeriver(t *testing.T) {
	s := loaded(t, items.Item{ID: 1, Title: "Banana"}, items.Item{ID: 2, Title: "apple"})
	var d items.Deriver
	prefs := items.Preferences{Order: items.SortDesc}

	first := s.Snapshot().View(prefs, &d)
	second := s.Snapshot().View(prefs, &d)
	assert.Equal(t, []items.Item{{ID: 1, Title: "Banana"}, {ID: 2, Title: "apple"}}, first.Items)
	assert.Same(t, &first.Items[0], &second.Items[0])
}

func TestFetchStatus_String(t *testing.T) {
	cases := map[FetchStatus]string{
		Idle:      "idle",
		Loading:   "loading",
		Succeeded: "succeeded",
		Failed:    "failed",
	}
	for status, want := range cases {
		assert.Equal(t, want, status.String())
	}
}
