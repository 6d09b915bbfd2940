package lib

import (
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestMapSqliteError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"no rows", sql.ErrNoRows, ErrNotFound},
		{"wrapped no rows", fmt.Errorf("select: %w", sql.ErrNoRows), ErrNotFound},
		{"unique by message", errors.New("constraint failed: UNIQUE constraint failed: categories.name"), ErrConflict},
		{"passthrough", errors.New("disk I/O error"), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapSqliteError(tt.in)
			if tt.want == nil {
				if got != tt.in {
					t.Fatalf("MapSqliteError() = %v, want passthrough %v", got, tt.in)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Fatalf("MapSqliteError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorPredicates(t *testing.T) {
	t.Parallel()

	if !IsNotFound(fmt.Errorf("op: %w", ErrNotFound)) {
		t.Fatalf("IsNotFound() = false for a wrapped ErrNotFound")
	}
	if !IsUniqueViolation(ErrConflict) {
		t.Fatalf("IsUniqueViolation() = false for ErrConflict")
	}
	if IsNotFound(ErrConflict) || IsUniqueViolation(ErrNotFound) {
		t.Fatalf("predicates overlap")
	}
}
