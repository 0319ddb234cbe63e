package store

import (
	"errors"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"ledgerkeep/internal/domain"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{name: "nil passes through", in: nil, want: nil},
		{name: "no rows becomes not found", in: pgx.ErrNoRows, want: domain.ErrNotFound},
		{
			name: "unique violation becomes conflict",
			in:   &pgconn.PgError{Code: "23505", ConstraintName: "uk_account_name_owner"},
			want: domain.ErrConflict,
		},
		{
			name: "fk violation becomes foreign key error",
			in:   &pgconn.PgError{Code: "23503", ConstraintName: "fk_account_id_name_owner_type"},
			want: domain.ErrForeignKey,
		},
		{
			name: "check violation becomes check error",
			in:   &pgconn.PgError{Code: "23514", ConstraintName: "ck_description_lowercase"},
			want: domain.ErrCheckViolation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("mapError(nil) = %v", got)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("mapError(%v) = %v, want wrapping %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMapErrorPassesThroughUnknown(t *testing.T) {
	sentinel := errors.New("connection reset")
	if got := mapError(sentinel); !errors.Is(got, sentinel) {
		t.Errorf("unknown error was rewritten: %v", got)
	}

	pgErr := &pgconn.PgError{Code: "40001"} // serialization failure
	if got := mapError(pgErr); !errors.Is(got, pgErr) {
		t.Errorf("unmapped pg error was rewritten: %v", got)
	}
}

func TestMapErrorKeepsConstraintName(t *testing.T) {
	got := mapError(&pgconn.PgError{Code: "23505", ConstraintName: "unique_transaction_fields"})
	if got == nil || !errors.Is(got, domain.ErrConflict) {
		t.Fatalf("unexpected mapping: %v", got)
	}
	if want := "unique_transaction_fields"; !strings.Contains(got.Error(), want) {
		t.Errorf("error %q does not name constraint %q", got.Error(), want)
	}
}
