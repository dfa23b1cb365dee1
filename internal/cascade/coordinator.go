package cascade

import (
	"context"
	"fmt"
	"time"

	"github.com/tuanphamm/supplydash-backend/pkg/config"
	"github.com/tuanphamm/supplydash-backend/pkg/db"
	pkgerrors "github.com/tuanphamm/supplydash-backend/pkg/errors"
	"github.com/tuanphamm/supplydash-backend/pkg/logger"
	"github.com/tuanphamm/supplydash-backend/pkg/metrics"
	"github.com/tuanphamm/supplydash-backend/pkg/retry"
	"gorm.io/gorm"
)

// Dependent names a table column that references an entity identity.
//
// When Via is set the dependent does not reference the entity directly;
// its rows are matched through the intermediate table instead:
//
//	DELETE FROM Table WHERE Column IN (SELECT ViaKey FROM Via WHERE ViaRef = ?)
//
// Via dependents participate in deletes only. Renumbering an entity never
// rewrites them because their key values belong to the intermediate rows.
type Dependent struct {
	Table  string
	Column string

	Via    string
	ViaKey string
	ViaRef string
}

// Spec declares an entity's identity column and every table referencing it.
// Dependents are processed in declared order; list via dependents before the
// intermediate table they resolve through.
type Spec struct {
	Entity     string
	Table      string
	IDColumn   string
	Dependents []Dependent
}

// Coordinator runs identity renumbers and cascading deletes as single
// transactions, retrying the whole unit on transient store failures.
type Coordinator struct {
	client   *db.Client
	logg     *logger.Logger
	retryCfg config.RetryConfig
	metrics  *metrics.CascadeMetrics
}

// NewCoordinator constructs a cascade coordinator.
func NewCoordinator(client *db.Client, logg *logger.Logger, retryCfg config.RetryConfig, m *metrics.CascadeMetrics) (*Coordinator, error) {
	if client == nil {
		return nil, fmt.Errorf("db client required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Coordinator{
		client:   client,
		logg:     logg,
		retryCfg: retryCfg,
		metrics:  m,
	}, nil
}

// RenumberIdentity moves an entity row from oldID to newID and rewrites every
// direct dependent reference to match. Callers may pass follow-up functions
// that run inside the same transaction after the primary key moves, so a
// record overwrite commits or rolls back together with the rewrite.
// Renumbering to the same id is a no-op and skips the follow-ups.
func (c *Coordinator) RenumberIdentity(ctx context.Context, spec Spec, oldID, newID int, then ...func(tx *gorm.DB) error) error {
	if newID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "new identity must be positive")
	}
	if oldID == newID {
		return nil
	}

	ctx = c.logg.WithEntity(ctx, spec.Entity, oldID)
	ctx = c.logg.WithOperation(ctx, "renumber")

	start := time.Now()
	err := c.policy(spec.Entity, "renumber").Do(ctx, func(ctx context.Context) error {
		return c.client.WithTx(ctx, func(tx *gorm.DB) error {
			exists, err := rowExists(tx, spec.Table, spec.IDColumn, oldID)
			if err != nil {
				return err
			}
			if !exists {
				return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %d not found", spec.Entity, oldID))
			}

			taken, err := rowExists(tx, spec.Table, spec.IDColumn, newID)
			if err != nil {
				return err
			}
			if taken {
				return pkgerrors.New(pkgerrors.CodeConflict, fmt.Sprintf("%s %d already exists", spec.Entity, newID))
			}

			for _, dep := range spec.Dependents {
				if dep.Via != "" {
					continue
				}
				// Identifiers come from static specs, never request input.
				stmt := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", dep.Table, dep.Column, dep.Column)
				if err := tx.Exec(stmt, newID, oldID).Error; err != nil {
					return fmt.Errorf("renumbering %s.%s: %w", dep.Table, dep.Column, err)
				}
			}

			stmt := fmt.Sprintf("UPDATE %s SET %s = ? WHERE %s = ?", spec.Table, spec.IDColumn, spec.IDColumn)
			if err := tx.Exec(stmt, newID, oldID).Error; err != nil {
				return fmt.Errorf("renumbering %s: %w", spec.Table, err)
			}

			for _, fn := range then {
				if err := fn(tx); err != nil {
					return err
				}
			}
			return nil
		})
	})

	c.metrics.ObserveDuration(spec.Entity, "renumber", time.Since(start))
	if err != nil {
		c.metrics.IncFailure(spec.Entity, "renumber")
		c.logg.Error(ctx, "identity renumber rolled back", err)
		return c.normalize(err)
	}

	c.metrics.IncSuccess(spec.Entity, "renumber")
	c.logg.Info(ctx, fmt.Sprintf("identity renumbered to %d", newID))
	return nil
}

// CascadeDelete removes the entity row and every dependent row referencing
// it, in one transaction. Dependents are removed in declared order before
// the primary row so no orphaned reference survives a commit.
func (c *Coordinator) CascadeDelete(ctx context.Context, spec Spec, id int) error {
	ctx = c.logg.WithEntity(ctx, spec.Entity, id)
	ctx = c.logg.WithOperation(ctx, "cascade_delete")

	start := time.Now()
	err := c.policy(spec.Entity, "cascade_delete").Do(ctx, func(ctx context.Context) error {
		return c.client.WithTx(ctx, func(tx *gorm.DB) error {
			exists, err := rowExists(tx, spec.Table, spec.IDColumn, id)
			if err != nil {
				return err
			}
			if !exists {
				return pkgerrors.New(pkgerrors.CodeNotFound, fmt.Sprintf("%s %d not found", spec.Entity, id))
			}

			for _, dep := range spec.Dependents {
				var stmt string
				if dep.Via != "" {
					stmt = fmt.Sprintf("DELETE FROM %s WHERE %s IN (SELECT %s FROM %s WHERE %s = ?)",
						dep.Table, dep.Column, dep.ViaKey, dep.Via, dep.ViaRef)
				} else {
					stmt = fmt.Sprintf("DELETE FROM %s WHERE %s = ?", dep.Table, dep.Column)
				}
				if err := tx.Exec(stmt, id).Error; err != nil {
					return fmt.Errorf("deleting dependents in %s: %w", dep.Table, err)
				}
			}

			stmt := fmt.Sprintf("DELETE FROM %s WHERE %s = ?", spec.Table, spec.IDColumn)
			if err := tx.Exec(stmt, id).Error; err != nil {
				return fmt.Errorf("deleting %s: %w", spec.Table, err)
			}
			return nil
		})
	})

	c.metrics.ObserveDuration(spec.Entity, "cascade_delete", time.Since(start))
	if err != nil {
		c.metrics.IncFailure(spec.Entity, "cascade_delete")
		c.logg.Error(ctx, "cascade delete rolled back", err)
		return c.normalize(err)
	}

	c.metrics.IncSuccess(spec.Entity, "cascade_delete")
	c.logg.Info(ctx, "cascade delete committed")
	return nil
}

func (c *Coordinator) policy(entity, op string) *retry.Policy {
	p := retry.NewPolicy(c.retryCfg)
	p.OnRetry = func(err error) {
		c.metrics.IncRetry(entity, op)
	}
	return p
}

// normalize maps raw store failures onto the API error taxonomy. Typed
// errors produced inside the transaction pass through untouched.
func (c *Coordinator) normalize(err error) error {
	if typed := pkgerrors.As(err); typed != nil {
		return typed
	}
	if retry.IsTransient(err) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store unavailable after retries")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "cascade transaction failed")
}

func rowExists(tx *gorm.DB, table, column string, id int) (bool, error) {
	var count int64
	stmt := fmt.Sprintf("SELECT COUNT(1) FROM %s WHERE %s = ?", table, column)
	if err := tx.Raw(stmt, id).Scan(&count).Error; err != nil {
		return false, fmt.Errorf("checking %s.%s=%d: %w", table, column, id, err)
	}
	return count > 0, nil
}
