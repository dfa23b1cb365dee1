package records

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuanphamm/supplydash-backend/internal/cascade"
	"github.com/tuanphamm/supplydash-backend/pkg/db"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service layers entity CRUD on top of the cascade coordinator: plain reads
// and inserts go straight to the repository, while identity changes and
// deletes are delegated to the coordinator so references never dangle.
type Service[T Model] struct {
	repo  *Repository[T]
	coord *cascade.Coordinator
	spec  cascade.Spec
}

// NewService wires a record service for one entity.
func NewService[T Model](repo *Repository[T], coord *cascade.Coordinator, spec cascade.Spec) (*Service[T], error) {
	if repo == nil {
		return nil, fmt.Errorf("repository required")
	}
	if coord == nil {
		return nil, fmt.Errorf("cascade coordinator required")
	}
	return &Service[T]{repo: repo, coord: coord, spec: spec}, nil
}

// List returns a page of rows and the unpaged total.
func (s *Service[T]) List(ctx context.Context, page pagination.Params, scopes ...Scope) ([]T, int64, error) {
	rows, total, err := s.repo.List(ctx, page, scopes...)
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("listing %ss", s.spec.Entity))
	}
	return rows, total, nil
}

// Get loads one row by identity.
func (s *Service[T]) Get(ctx context.Context, id int) (*T, error) {
	row, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %d not found", s.spec.Entity, id))
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("loading %s %d", s.spec.Entity, id))
	}
	return row, nil
}

// Create inserts a new row. A client-supplied identity that collides with an
// existing row surfaces as a conflict.
func (s *Service[T]) Create(ctx context.Context, row *T) error {
	if err := s.repo.Create(ctx, row); err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("%s %d already exists", s.spec.Entity, (*row).RecordID()))
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("creating %s", s.spec.Entity))
	}
	return nil
}

// Update overwrites the row addressed by id with the supplied record. When
// the record carries a different identity, the row and every reference to it
// are renumbered first, in the same transaction as the overwrite.
func (s *Service[T]) Update(ctx context.Context, id int, row *T) error {
	newID := (*row).RecordID()
	if newID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "record identity must be positive")
	}

	if newID != id {
		return s.coord.RenumberIdentity(ctx, s.spec, id, newID, func(tx *gorm.DB) error {
			if err := tx.Save(row).Error; err != nil {
				return fmt.Errorf("overwriting %s %d: %w", s.spec.Entity, newID, err)
			}
			return nil
		})
	}

	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("checking %s %d", s.spec.Entity, id))
	}
	if !exists {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %d not found", s.spec.Entity, id))
	}
	if err := s.repo.Save(ctx, row); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("updating %s %d", s.spec.Entity, id))
	}
	return nil
}

// Delete removes the row and all rows referencing it.
func (s *Service[T]) Delete(ctx context.Context, id int) error {
	return s.coord.CascadeDelete(ctx, s.spec, id)
}
