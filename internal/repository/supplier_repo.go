package repository

import (
	"context"

	"catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupplierRepository adds the two read shapes used by the supplier screens.
// GetWithAddress never touches the products table; GetWithProductsAndAddress
// loads the whole aggregate for edit and delete flows. Both return nil when
// the id does not exist.
type SupplierRepository interface {
	Repository[*model.Supplier]
	GetWithAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	GetWithProductsAndAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	GetByDocument(ctx context.Context, document string) (*model.Supplier, error)
}

type supplierRepo struct {
	gormRepository[model.Supplier, *model.Supplier]
}

func NewSupplierRepository(db *gorm.DB) SupplierRepository {
	return &supplierRepo{gormRepository[model.Supplier, *model.Supplier]{db: db}}
}

// Add and Update store the document as bare digits so the unique index
// compares tax numbers, not the way they were typed.
func (r *supplierRepo) Add(ctx context.Context, s *model.Supplier) error {
	s.Document = model.NormalizeDocument(s.Document)
	return r.gormRepository.Add(ctx, s)
}

func (r *supplierRepo) Update(ctx context.Context, s *model.Supplier) error {
	s.Document = model.NormalizeDocument(s.Document)
	return r.gormRepository.Update(ctx, s)
}

func (r *supplierRepo) GetWithAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	return r.take(r.db.WithContext(ctx).Preload("Address"), "id = ?", id)
}

func (r *supplierRepo) GetWithProductsAndAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	q := r.db.WithContext(ctx).
		Preload("Products", func(db *gorm.DB) *gorm.DB { return db.Order("name") }).
		Preload("Address")
	return r.take(q, "id = ?", id)
}

func (r *supplierRepo) GetByDocument(ctx context.Context, document string) (*model.Supplier, error) {
	return r.take(r.db.WithContext(ctx), "document = ?", model.NormalizeDocument(document))
}
