package links

import (
	"context"
	"errors"
	"fmt"

	"github.com/tuanphamm/supplydash-backend/pkg/db"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Service manages one association table. Rows are addressed by their
// composite key, always in (left, right) declaration order.
type Service[T any] struct {
	db  *gorm.DB
	res Resource
}

// NewService wires an association service for the given resource.
func NewService[T any](conn *gorm.DB, res Resource) (*Service[T], error) {
	if conn == nil {
		return nil, fmt.Errorf("db connection required")
	}
	return &Service[T]{db: conn, res: res}, nil
}

// Resource returns the association declaration this service manages.
func (s *Service[T]) Resource() Resource {
	return s.res
}

// List returns one page of association rows with the unpaged total.
// Either key may be supplied to filter on one endpoint.
func (s *Service[T]) List(ctx context.Context, page pagination.Params, leftID, rightID *int) ([]T, int64, error) {
	query := s.db.WithContext(ctx).Table(s.res.Table)
	if leftID != nil {
		query = query.Where(fmt.Sprintf("%s = ?", s.res.Left.Column), *leftID)
	}
	if rightID != nil {
		query = query.Where(fmt.Sprintf("%s = ?", s.res.Right.Column), *rightID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("counting %s", s.res.Name))
	}

	var rows []T
	err := query.
		Order(fmt.Sprintf("%s, %s", s.res.Left.Column, s.res.Right.Column)).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("listing %s", s.res.Name))
	}
	return rows, total, nil
}

// Get loads the row for one composite key.
func (s *Service[T]) Get(ctx context.Context, leftID, rightID int) (*T, error) {
	var row T
	err := s.db.WithContext(ctx).
		Table(s.res.Table).
		Where(fmt.Sprintf("%s = ? AND %s = ?", s.res.Left.Column, s.res.Right.Column), leftID, rightID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, s.pairNotFound(leftID, rightID)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("loading %s", s.res.Name))
	}
	return &row, nil
}

// Create inserts a new association row after verifying both endpoints exist.
// A duplicate composite key surfaces as a conflict.
func (s *Service[T]) Create(ctx context.Context, row *T, leftID, rightID int) error {
	if err := s.checkParent(ctx, s.res.Left, leftID); err != nil {
		return err
	}
	if err := s.checkParent(ctx, s.res.Right, rightID); err != nil {
		return err
	}

	if err := s.db.WithContext(ctx).Table(s.res.Table).Create(row).Error; err != nil {
		if db.IsUniqueViolation(err, "") {
			return pkgerrors.New(pkgerrors.CodeConflict,
				fmt.Sprintf("%s (%d, %d) already exists", s.res.Name, leftID, rightID))
		}
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("creating %s", s.res.Name))
	}
	return nil
}

// Update overwrites the non-key payload of an existing association row.
// Values are keyed by column name so zero values overwrite too.
func (s *Service[T]) Update(ctx context.Context, values map[string]any, leftID, rightID int) error {
	if len(values) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s has no updatable fields", s.res.Name))
	}
	result := s.db.WithContext(ctx).
		Table(s.res.Table).
		Where(fmt.Sprintf("%s = ? AND %s = ?", s.res.Left.Column, s.res.Right.Column), leftID, rightID).
		Updates(values)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, fmt.Sprintf("updating %s", s.res.Name))
	}
	if result.RowsAffected == 0 {
		return s.pairNotFound(leftID, rightID)
	}
	return nil
}

// Delete removes the row for one composite key.
func (s *Service[T]) Delete(ctx context.Context, leftID, rightID int) error {
	stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ? AND %s = ?",
		s.res.Table, s.res.Left.Column, s.res.Right.Column)
	result := s.db.WithContext(ctx).Exec(stmt, leftID, rightID)
	if result.Error != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, result.Error, fmt.Sprintf("deleting %s", s.res.Name))
	}
	if result.RowsAffected == 0 {
		return s.pairNotFound(leftID, rightID)
	}
	return nil
}

func (s *Service[T]) checkParent(ctx context.Context, ep Endpoint, id int) error {
	var count int64
	stmt := fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE %s = ?", ep.ParentTable, ep.ParentColumn)
	if err := s.db.WithContext(ctx).Raw(stmt, id).Scan(&count).Error; err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, fmt.Sprintf("checking %s %d", ep.ParentTable, id))
	}
	if count == 0 {
		return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %d not found", ep.ParentTable, id))
	}
	return nil
}

func (s *Service[T]) pairNotFound(leftID, rightID int) error {
	return pkgerrors.New(pkgerrors.CodeNotFound,
		fmt.Sprintf("%s (%d, %d) not found", s.res.Name, leftID, rightID))
}
