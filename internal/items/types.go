package items

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Item is a uniquely identified titled record as served by the remote store.
type Item struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
}

// Draft is a create request. The server assigns the ID.
type Draft struct {
	Title string `json:"title"`
}

// Service is the remote item store the list core issues commands against.
// Implementations may be slow or fail; every failure carries a
// human-readable message.
type Service interface {
	List(ctx context.Context) ([]Item, error)
	Create(ctx context.Context, draft Draft) (Item, error)
	Delete(ctx context.Context, id int64) error
}

var (
	// ErrEmptyTitle is returned when a draft has no title after trimming.
	ErrEmptyTitle = errors.New("title is required")
	// ErrInvalidID is returned for non-positive item IDs.
	ErrInvalidID = errors.New("invalid item id")
)

// Validate trims the draft title and rejects empty titles.
func (d Draft) Validate() (Draft, error) {
	d.Title = strings.TrimSpace(d.Title)
	if d.Title == "" {
		return d, ErrEmptyTitle
	}
	return d, nil
}

// FetchError reports a failed List call.
type FetchError struct {
	Err error
}

func (e *FetchError) Error() string {
	if e == nil || e.Err == nil {
		return "fetch failed"
	}
	return e.Err.Error()
}

func (e *FetchError) Unwrap() error { return e.Err }

// MutationError reports a failed Create or Delete call. ID is zero for creates.
type MutationError struct {
	Op  string
	ID  int64
	Err error
}

func (e *MutationError) Error() string {
	msg := "unknown error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s item %d: %s", e.Op, e.ID, msg)
	}
	return fmt.Sprintf("%s item: %s", e.Op, msg)
}

func (e *MutationError) Unwrap() error { return e.Err }

// Index returns the position of id in list, or -1.
func Index(list []Item, id int64) int {
	for i, it := range list {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// Clone returns an independent copy of list. Nil and empty inputs yield nil.
func Clone(list []Item) []Item {
	if len(list) == 0 {
		return nil
	}
	dup := make([]Item, len(list))
	copy(dup, list)
	return dup
}
