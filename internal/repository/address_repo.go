package repository

import (
	"context"

	"catalog/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AddressRepository interface {
	Repository[*model.Address]
	GetBySupplier(ctx context.Context, supplierID uuid.UUID) (*model.Address, error)
}

type addressRepo struct {
	gormRepository[model.Address, *model.Address]
}

func NewAddressRepository(db *gorm.DB) AddressRepository {
	return &addressRepo{gormRepository[model.Address, *model.Address]{db: db}}
}

func (r *addressRepo) GetBySupplier(ctx context.Context, supplierID uuid.UUID) (*model.Address, error) {
	return r.take(r.db.WithContext(ctx), "supplier_id = ?", supplierID)
}
