package attendance

import (
	"context"

	domain "presenca/internal/domain/attendance"
)

// PresentRow is one present=true record joined with the member's name,
// used by the grouped-by-day presence view.
type PresentRow struct {
	ServiceDate string
	MemberName  string
}

// Store persists attendance Records.
//
// ReplaceDay and UpsertDay are both date-atomic: either every record for the
// date is applied or none of the mutation is. They converge to the same final
// state for the same inputs.
type Store interface {
	ReplaceDay(ctx context.Context, serviceDate string, records []domain.Record) error
	UpsertDay(ctx context.Context, records []domain.Record) error
	ListByDate(ctx context.Context, serviceDate string) ([]domain.Record, error)
	ListPresentWithNames(ctx context.Context) ([]PresentRow, error)
	DeleteByDate(ctx context.Context, serviceDate string) (int, error)
}
