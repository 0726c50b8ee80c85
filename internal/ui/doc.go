// Package ui provides the Bubble Tea terminal interface for roster.
//
// # Screens
//
// Three screens are routed through a Navigator:
//
//   - ItemList: the searchable, sortable list with delete and reload
//   - ItemDetail: one item, looked up by the "itemId" parameter
//   - CreateItem: a single-field form that posts a new item
//
// Navigation is itself a message. router.NavigateTo returns a command that
// yields navigateMsg, and the root Model tears down the current screen and
// mounts the next one. Leaving the list abandons any fetch it started.
//
// # Event Flow
//
//  1. The list mounts and asks state.Store for a fetch ticket.
//  2. fetchCmd calls items.Service.List off the update loop.
//  3. fetchResultMsg is applied with FinishFetch; stale tickets are ignored.
//  4. syncList re-derives the visible rows from the store snapshot and the
//     screen's search text and sort order.
//
// Deletes and creates follow the same Begin/command/Finish shape. A failed
// mutation leaves a notice in the store that expires after noticeTTL or on x.
//
// # Usage Example
//
//	err := ui.Run(ctx, ui.Options{
//		Service: client,
//		Store:   &state.Store{},
//		Locale:  cfg.Language(),
//		Prefs:   p,
//	})
package ui
