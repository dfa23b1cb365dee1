package records

import (
	"context"
	"fmt"

	"github.com/tuanphamm/supplydash-backend/pkg/pagination"
	"gorm.io/gorm"
)

// Model is satisfied by every primary entity row.
type Model interface {
	RecordID() int
	TableName() string
}

// Scope narrows a list query (filters, ordering).
type Scope func(*gorm.DB) *gorm.DB

// Repository provides typed persistence for one entity table.
type Repository[T Model] struct {
	db       *gorm.DB
	idColumn string
}

// NewRepository builds a repository for T keyed on the given identity column.
func NewRepository[T Model](db *gorm.DB, idColumn string) *Repository[T] {
	return &Repository[T]{db: db, idColumn: idColumn}
}

// List returns one page of rows plus the total count across all pages.
// Scopes apply to both the page query and the count.
func (r *Repository[T]) List(ctx context.Context, page pagination.Params, scopes ...Scope) ([]T, int64, error) {
	var zero T
	query := r.db.WithContext(ctx).Table(zero.TableName())
	for _, scope := range scopes {
		query = scope(query)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting %s: %w", zero.TableName(), err)
	}

	var rows []T
	err := query.
		Order(r.idColumn).
		Offset(page.Offset()).
		Limit(page.Limit()).
		Find(&rows).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing %s: %w", zero.TableName(), err)
	}
	return rows, total, nil
}

// FindByID loads a single row. Returns gorm.ErrRecordNotFound when absent.
func (r *Repository[T]) FindByID(ctx context.Context, id int) (*T, error) {
	var row T
	err := r.db.WithContext(ctx).
		Where(fmt.Sprintf("%s = ?", r.idColumn), id).
		First(&row).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// Exists reports whether a row with the given identity is present.
func (r *Repository[T]) Exists(ctx context.Context, id int) (bool, error) {
	var zero T
	var count int64
	err := r.db.WithContext(ctx).
		Table(zero.TableName()).
		Where(fmt.Sprintf("%s = ?", r.idColumn), id).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking %s %d: %w", zero.TableName(), id, err)
	}
	return count > 0, nil
}

// Create inserts a new row.
func (r *Repository[T]) Create(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Create(row).Error
}

// Save overwrites the full row identified by the record's own id.
func (r *Repository[T]) Save(ctx context.Context, row *T) error {
	return r.db.WithContext(ctx).Save(row).Error
}
