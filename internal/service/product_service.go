package service

import (
	"context"

	"catalog/internal/model"
	"catalog/internal/notification"
	"catalog/internal/repository"

	"github.com/google/uuid"
)

const (
	msgProductSupplierMissing  = "The selected supplier does not exist."
	msgProductSupplierInactive = "The selected supplier is inactive."
)

// ProductService defines the business operations for products.
type ProductService interface {
	Add(ctx context.Context, p *model.Product) (notification.Result, error)
	Update(ctx context.Context, p *model.Product) (notification.Result, error)
	Remove(ctx context.Context, id uuid.UUID) (notification.Result, error)

	GetAll(ctx context.Context) ([]*model.Product, error)
	GetAllWithSupplier(ctx context.Context) ([]*model.Product, error)
	GetWithSupplier(ctx context.Context, id uuid.UUID) (*model.Product, error)
	GetBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*model.Product, error)
}

type productService struct {
	store repository.Store
}

func NewProductService(store repository.Store) ProductService {
	return &productService{store: store}
}

func (s *productService) Add(ctx context.Context, p *model.Product) (notification.Result, error) {
	n := notification.New()
	ok, err := s.check(ctx, n, p)
	if err != nil {
		return notification.Result{}, err
	}
	if !ok {
		return publish(ctx, n), nil
	}

	err = s.store.Do(ctx, func(uow repository.Store) error {
		return uow.Products().Add(ctx, p)
	})
	if err != nil {
		return notification.Result{}, err
	}
	return publish(ctx, n), nil
}

func (s *productService) Update(ctx context.Context, p *model.Product) (notification.Result, error) {
	n := notification.New()
	ok, err := s.check(ctx, n, p)
	if err != nil {
		return notification.Result{}, err
	}
	if !ok {
		return publish(ctx, n), nil
	}

	err = s.store.Do(ctx, func(uow repository.Store) error {
		return uow.Products().Update(ctx, p)
	})
	if err != nil {
		return notification.Result{}, err
	}
	return publish(ctx, n), nil
}

// Remove deletes unconditionally; nothing references a product.
func (s *productService) Remove(ctx context.Context, id uuid.UUID) (notification.Result, error) {
	err := s.store.Do(ctx, func(uow repository.Store) error {
		return uow.Products().Remove(ctx, id)
	})
	if err != nil {
		return notification.Result{}, err
	}
	return notification.Result{}, nil
}

func (s *productService) GetAll(ctx context.Context) ([]*model.Product, error) {
	return s.store.Products().GetAll(ctx, repository.Asc("name"))
}

func (s *productService) GetAllWithSupplier(ctx context.Context) ([]*model.Product, error) {
	return s.store.Products().GetAllWithSupplier(ctx)
}

func (s *productService) GetWithSupplier(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.store.Products().GetWithSupplier(ctx, id)
}

func (s *productService) GetBySupplier(ctx context.Context, supplierID uuid.UUID) ([]*model.Product, error) {
	return s.store.Products().GetBySupplier(ctx, supplierID)
}

// check runs the field rules and then the supplier rule. The supplier is
// only looked up once the product itself is well-formed.
func (s *productService) check(ctx context.Context, n *notification.Notifier, p *model.Product) (bool, error) {
	if !validateProduct(n, p) {
		return false, nil
	}
	sup, err := s.store.Suppliers().GetByID(ctx, p.SupplierID)
	if err != nil {
		return false, err
	}
	switch {
	case sup == nil:
		n.Notify(msgProductSupplierMissing)
		return false, nil
	case !sup.Active:
		n.Notify(msgProductSupplierInactive)
		return false, nil
	}
	return true, nil
}
