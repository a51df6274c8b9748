package repository

import (
	"context"
	"errors"
	"fmt"

	"catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrPersistence is the parent of every storage failure a repository
	// reports, including the more specific classes below.
	ErrPersistence = errors.New("persistence failure")
	// ErrDuplicateKey is returned when an insert or update breaks a
	// primary-key or unique index.
	ErrDuplicateKey = fmt.Errorf("%w: duplicate key", ErrPersistence)
	// ErrConstraintViolation is returned when a foreign key or check
	// constraint rejects the write, e.g. deleting a supplier that still has
	// dependents.
	ErrConstraintViolation = fmt.Errorf("%w: constraint violation", ErrPersistence)
	// ErrNotFound is returned by Update and Remove when the id matches no
	// row. Reads report "not found" as a nil result instead.
	ErrNotFound = errors.New("record not found")
)

// Repository is the CRUD contract shared by every aggregate. Writes run
// against whatever session the repository was obtained from; inside
// Store.Do nothing is durable until the unit of work commits.
type Repository[T model.Aggregate] interface {
	Add(ctx context.Context, entity T) error
	Update(ctx context.Context, entity T) error
	Remove(ctx context.Context, id uuid.UUID) error
	GetAll(ctx context.Context, sorts ...Sort) ([]T, error)
	// GetByID returns nil and no error when the id does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (T, error)
}

// Sort orders GetAll results by one column.
type Sort struct {
	Column string
	Desc   bool
}

func Asc(column string) Sort  { return Sort{Column: column} }
func Desc(column string) Sort { return Sort{Column: column, Desc: true} }

type entityPtr[E any] interface {
	*E
	model.Aggregate
}

// gormRepository implements Repository for one table. E is the struct
// type, P its pointer; the split lets reads allocate rows without
// reflection.
type gormRepository[E any, P entityPtr[E]] struct {
	db *gorm.DB
}

func (r gormRepository[E, P]) Add(ctx context.Context, entity P) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error)
}

// Update replaces every column of the row with the entity's values. The
// row must exist; that is detected from the affected row count, not by a
// prior read.
func (r gormRepository[E, P]) Update(ctx context.Context, entity P) error {
	res := r.db.WithContext(ctx).
		Model(entity).
		Select("*").
		Omit("ID", "CreatedAt", clause.Associations).
		Updates(entity)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r gormRepository[E, P]) Remove(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(P(new(E)))
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r gormRepository[E, P]) GetAll(ctx context.Context, sorts ...Sort) ([]P, error) {
	q := r.db.WithContext(ctx)
	for _, s := range sorts {
		q = q.Order(clause.OrderByColumn{Column: clause.Column{Name: s.Column}, Desc: s.Desc})
	}
	return r.find(q)
}

func (r gormRepository[E, P]) GetByID(ctx context.Context, id uuid.UUID) (P, error) {
	return r.take(r.db.WithContext(ctx), "id = ?", id)
}

// take loads a single row, turning gorm.ErrRecordNotFound into a nil result.
func (r gormRepository[E, P]) take(q *gorm.DB, query any, args ...any) (P, error) {
	var row E
	err := q.Where(query, args...).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translate(err)
	}
	return P(&row), nil
}

func (r gormRepository[E, P]) find(q *gorm.DB) ([]P, error) {
	var rows []E
	if err := q.Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	out := make([]P, len(rows))
	for i := range rows {
		out[i] = P(&rows[i])
	}
	return out, nil
}

// translate maps driver errors (already normalized by gorm's
// TranslateError) onto the repository taxonomy. Cancellation is passed
// through untouched so callers can tell an abort from a store failure.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return err
	case errors.Is(err, ErrPersistence), errors.Is(err, ErrNotFound):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrDuplicateKey, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated), errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %v", ErrPersistence, err)
	}
}
