package repository

import (
	"context"

	"catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProductRepository defines the product reads on top of the generic CRUD.
// The *WithSupplier queries join the owning supplier in the same statement
// so list views never issue one query per row.
type ProductRepository interface {
	Repository[*model.Product]
	GetBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*model.Product, error)
	GetAllWithSupplier(ctx context.Context) ([]*model.Product, error)
	GetWithSupplier(ctx context.Context, id uuid.UUID) (*model.Product, error)
}

type productRepo struct {
	gormRepository[model.Product, *model.Product]
}

func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepo{gormRepository[model.Product, *model.Product]{db: db}}
}

func (r *productRepo) GetBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*model.Product, error) {
	return r.find(r.db.WithContext(ctx).Where("supplier_id = ?", supplierID).Order("name"))
}

func (r *productRepo) GetAllWithSupplier(ctx context.Context) ([]*model.Product, error) {
	return r.find(r.db.WithContext(ctx).Joins("Supplier").Order("products.name"))
}

func (r *productRepo) GetWithSupplier(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return r.take(r.db.WithContext(ctx).Joins("Supplier"), "products.id = ?", id)
}
