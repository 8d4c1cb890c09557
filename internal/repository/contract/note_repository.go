package contract

import (
	"context"

	"notesy-be/internal/entity"
	"notesy-be/internal/repository/specification"
)

// NoteChanges carries a sparse update: only non-nil fields are applied.
type NoteChanges struct {
	Title       *string
	Description *string
	Marked      *bool
}

type NoteRepository interface {
	Create(ctx context.Context, note *entity.Note) error
	// UpdateFields applies the non-nil fields of changes to every row matching
	// the specs. Matching zero rows is not an error.
	UpdateFields(ctx context.Context, changes NoteChanges, specs ...specification.Specification) error
	// Delete removes every row matching the specs. Matching zero rows is not an error.
	Delete(ctx context.Context, specs ...specification.Specification) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Note, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Note, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
