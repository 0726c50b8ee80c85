package state

import (
	"slices"

	"github.com/five82/roster/internal/items"
)

// View is the render-relevant output handed to the presentation layer.
type View struct {
	Items    []items.Item
	Status   FetchStatus
	Err      string
	Notice   string
	Revision uint64
}

// View derives the displayed list for prefs from the current state.
func (s *Store) View(prefs items.Preferences) View {
	return s.Snapshot().View(prefs, nil)
}

// View builds the render output for prefs. A non-nil deriver is used to
// return the identical slice when neither the collection nor prefs changed.
func (snap Snapshot) View(prefs items.Preferences, d *items.Deriver) View {
	v := View{
		Status:   snap.Status,
		Revision: snap.Revision,
	}
	if d != nil {
		v.Items = d.Derive(snap.Revision, snap.Items, prefs)
	} else {
		v.Items = items.Derive(snap.Items, prefs)
	}
	if snap.Status == Failed && snap.Err != nil {
		v.Err = snap.Err.Error()
	}
	if snap.Notice != nil {
		v.Notice = snap.Notice.Error()
	}
	return v
}

// IsDeleting reports whether a delete for id is pending in the snapshot.
func (snap Snapshot) IsDeleting(id int64) bool {
	return slices.Contains(snap.Deleting, id)
}
