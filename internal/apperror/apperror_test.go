package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "tagged error", err: MissingClaim("email"), want: KindMissingClaim},
		{name: "wrapped tagged error", err: fmt.Errorf("sync: %w", Conflict("follow", nil)), want: KindConflict},
		{name: "plain error defaults to persistence", err: errors.New("boom"), want: KindPersistence},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsMatchesOnKind(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", UnresolvedDate("UFC 300", "not-a-date"))
	if !errors.Is(err, &AppError{Kind: KindUnresolvedDate}) {
		t.Error("expected errors.Is to match on Kind through wrapping")
	}
	if errors.Is(err, &AppError{Kind: KindConflict}) {
		t.Error("expected mismatched Kind not to match")
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	t.Parallel()

	cause := errors.New("duplicate key value violates unique constraint")
	err := Conflict("follow", cause)
	if !errors.Is(err, cause) {
		t.Error("expected wrapped cause to be reachable via errors.Is")
	}
}

func TestMessages(t *testing.T) {
	t.Parallel()

	if got := MissingClaim("email").Error(); got != "identity token missing required email claim" {
		t.Errorf("unexpected message: %q", got)
	}
	if got := UnresolvedDate("UFC 300", "soon").Error(); got != `invalid date "soon" for event: UFC 300` {
		t.Errorf("unexpected message: %q", got)
	}
}
