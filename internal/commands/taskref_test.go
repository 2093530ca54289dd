package commands

import (
	"errors"
	"testing"

	"ltask/internal/task"
)

func TestParseTaskRef_Position(t *testing.T) {
	ref, err := ParseTaskRef([]string{"5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.ByID {
		t.Error("expected ByID to be false")
	}
	if ref.Num != 5 {
		t.Errorf("expected Num 5, got %d", ref.Num)
	}
}

func TestParseTaskRef_ID(t *testing.T) {
	ref, err := ParseTaskRef([]string{"#1712345678901"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ref.ByID {
		t.Error("expected ByID to be true")
	}
	if ref.ID != 1712345678901 {
		t.Errorf("expected ID 1712345678901, got %d", ref.ID)
	}
}

func TestParseTaskRef_IgnoresExtraArgs(t *testing.T) {
	ref, err := ParseTaskRef([]string{"2", "new", "text"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Num != 2 {
		t.Errorf("expected Num 2, got %d", ref.Num)
	}
}

func TestParseTaskRef_NoArgs_Error(t *testing.T) {
	_, err := ParseTaskRef([]string{})
	if err != ErrTaskRefRequired {
		t.Errorf("expected ErrTaskRefRequired, got %v", err)
	}
}

func TestParseTaskRef_Invalid_Error(t *testing.T) {
	for _, arg := range []string{"abc", "#", "#x1", "1a", "-1", "+2", "٣", "99999999999999999999"} {
		_, err := ParseTaskRef([]string{arg})
		if err == nil {
			t.Errorf("expected error for %q", arg)
			continue
		}
		expectedMsg := "invalid task reference: " + arg
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
	}
}

func TestTaskRef_Resolve(t *testing.T) {
	c := task.Seed()

	got, err := TaskRef{Num: 2}.Resolve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 2 {
		t.Errorf("expected task #2, got %+v", got)
	}

	got, err = TaskRef{ID: 1, ByID: true}.Resolve(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Text != "Buy milk" {
		t.Errorf("expected 'Buy milk', got %q", got.Text)
	}
}

func TestTaskRef_Resolve_Errors(t *testing.T) {
	c := task.Seed()

	for _, num := range []int{0, 4} {
		_, err := TaskRef{Num: num}.Resolve(c)
		if !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Num %d: expected ErrOutOfRange, got %v", num, err)
		}
	}

	_, err := TaskRef{ID: 7, ByID: true}.Resolve(c)
	if !errors.Is(err, ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
	if err.Error() != "task not found: #7" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	_, err = TaskRef{Num: 1}.Resolve(nil)
	if !errors.Is(err, ErrOutOfRange) {
		t.Errorf("empty collection: expected ErrOutOfRange, got %v", err)
	}
}
