package app

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/five82/roster/internal/items"
	"github.com/five82/roster/internal/state"
)

var (
	// ErrFetchInFlight is returned when a fetch is already running.
	ErrFetchInFlight = errors.New("fetch already in progress")
	// ErrUnknownItem is returned when a delete targets an id that is not in
	// the loaded collection or is already being deleted.
	ErrUnknownItem = errors.New("item not in list")
)

// Refresh performs one fetch through store and blocks until it settles.
func Refresh(ctx context.Context, store *state.Store, svc items.Service) error {
	ticket, ok := store.BeginFetch()
	if !ok {
		return ErrFetchInFlight
	}
	list, err := svc.List(ctx)
	if err != nil {
		log.Printf("list items failed: %v", err)
	}
	store.FinishFetch(ticket, list, err)
	if err != nil {
		return &items.FetchError{Err: err}
	}
	return nil
}

// Delete removes id through store and blocks until the remote store
// answers. The collection must already hold id.
func Delete(ctx context.Context, store *state.Store, svc items.Service, id int64) error {
	if !store.BeginDelete(id) {
		return fmt.Errorf("delete item %d: %w", id, ErrUnknownItem)
	}
	err := svc.Delete(ctx, id)
	if err != nil {
		log.Printf("delete item %d failed: %v", id, err)
	}
	store.FinishDelete(id, err)
	if err != nil {
		return store.Snapshot().Notice
	}
	return nil
}

// Create posts draft through store and blocks until the remote store
// answers. The collection is not updated; call Refresh to observe the item.
func Create(ctx context.Context, store *state.Store, svc items.Service, draft items.Draft) (items.Item, error) {
	draft, err := store.BeginCreate(draft)
	if err != nil {
		return items.Item{}, err
	}
	item, err := svc.Create(ctx, draft)
	if err != nil {
		log.Printf("create item %q failed: %v", draft.Title, err)
	}
	store.FinishCreate(item, err)
	if err != nil {
		return items.Item{}, store.Snapshot().Notice
	}
	return item, nil
}
