package items

import (
	"errors"
	"testing"
)

func TestDraftValidate(t *testing.T) {
	d, err := Draft{Title: "  milk  "}.Validate()
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if d.Title != "milk" {
		t.Fatalf("Title = %q, want %q", d.Title, "milk")
	}

	if _, err := (Draft{Title: " \t "}).Validate(); !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("Validate blank error = %v, want ErrEmptyTitle", err)
	}
}

func TestErrorsUnwrap(t *testing.T) {
	cause := errors.New("network down")

	var fe error = &FetchError{Err: cause}
	if fe.Error() != "network down" {
		t.Fatalf("FetchError.Error() = %q, want %q", fe.Error(), "network down")
	}
	if !errors.Is(fe, cause) {
		t.Fatalf("FetchError should unwrap to cause")
	}

	var me error = &MutationError{Op: "delete", ID: 7, Err: cause}
	if me.Error() != "delete item 7: network down" {
		t.Fatalf("MutationError.Error() = %q", me.Error())
	}
	var target *MutationError
	if !errors.As(me, &target) || target.ID != 7 {
		t.Fatalf("errors.As MutationError failed: %#v", target)
	}

	create := &MutationError{Op: "create", Err: cause}
	if create.Error() != "create item: network down" {
		t.Fatalf("MutationError.Error() = %q", create.Error())
	}
}

func TestIndexAndClone(t *testing.T) {
	list := []Item{{ID: 1, Title: "a"}, {ID: 2, Title: "b"}}
	if got := Index(list, 2); got != 1 {
		t.Fatalf("Index = %d, want 1", got)
	}
	if got := Index(list, 9); got != -1 {
		t.Fatalf("Index missing = %d, want -1", got)
	}

	dup := Clone(list)
	dup[0].Title = "changed"
	if list[0].Title != "a" {
		t.Fatalf("Clone shares backing array")
	}
	if Clone(nil) != nil {
		t.Fatalf("Clone(nil) should be nil")
	}
}
