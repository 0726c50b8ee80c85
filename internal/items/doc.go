// Package items defines the record types shared by the remote client, the
// list core and the UI, together with the pure derivation of the displayed
// list.
//
// # Types
//
//   - Item: a record with a stable int64 ID and a title
//   - Draft: a create request, validated with Draft.Validate
//   - Service: the remote store contract (List, Create, Delete)
//   - FetchError / MutationError: store failures, both unwrap to the cause
//
// # Derivation
//
// Derive is the only way the displayed sequence is produced:
//
//	view := items.Derive(collection, items.Preferences{Query: "an", Order: items.SortAsc})
//
// It keeps items whose lower-cased title contains the lower-cased query,
// then stable-sorts them with a locale-aware collator
// (golang.org/x/text/collate). Descending order swaps the comparator
// arguments instead of reversing the ascending result, so items with equal
// titles keep their collection order in both directions.
//
// Derive never fails and never mutates its input. Deriver adds a one-entry
// memo on top of it: callers that pass the same collection revision and the
// same preferences get the same slice back, which lets the UI skip work
// when nothing changed.
package items
