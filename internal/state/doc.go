// Package state implements the list synchronization core for roster.
//
// # Overview
//
// Store owns three things: the fetch lifecycle, the canonical item
// collection (last-known server truth) and the pending mutations. It never
// talks to the network itself. Callers ask the Store for permission to
// issue a remote call, perform the call, then hand the result back:
//
//	ticket, ok := store.BeginFetch()
//	if ok {
//		list, err := service.List(ctx)
//		store.FinishFetch(ticket, list, err)
//	}
//
// The UI runs the remote call inside a tea.Cmd and feeds the result back
// through Update; the CLI runs it inline. Both go through the same methods.
//
// # Fetch Lifecycle
//
//	Idle ──BeginFetch──> Loading ──FinishFetch(ok)──> Succeeded
//	                        │                             │
//	                        └──FinishFetch(err)──> Failed │
//	                                                 │    │
//	                 BeginFetch (retry / re-entry) <─┴────┘
//
//   - BeginFetch while Loading returns false: at most one fetch in flight.
//   - A successful fetch replaces the collection wholesale.
//   - A failed fetch keeps the previous collection and records the error.
//     The error is cleared when the next fetch begins.
//   - Abandon invalidates the in-flight ticket. A late response carrying
//     that ticket is dropped and FinishFetch reports false.
//
// # Mutations
//
// Deletes are applied only after the remote store confirms them, so there
// is nothing to roll back:
//
//   - BeginDelete is a no-op for ids that are not in the collection or
//     already being deleted.
//   - FinishDelete removes the item on success. On failure it records a
//     notice and leaves both the collection and the fetch status alone.
//
// Creates never edit the collection. A failed create records a notice; a
// successful one is picked up by the next fetch.
//
// # Revisions
//
// Every change to the collection bumps Snapshot.Revision. The UI keys its
// items.Deriver on it so an unchanged collection with unchanged preferences
// yields the identical derived slice.
//
// # Concurrency Model
//
// All fields are guarded by a sync.RWMutex. Snapshot returns copies, so
// readers never observe later mutations. The zero value is ready to use:
//
//	store := &state.Store{}
package state
