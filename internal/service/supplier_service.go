package service

import (
	"context"

	"catalog/internal/model"
	"catalog/internal/notification"
	"catalog/internal/repository"

	"github.com/google/uuid"
)

const (
	msgDocumentTaken       = "A supplier with this document is already registered."
	msgSupplierNotFound    = "Supplier not found."
	msgAddressMismatch     = "The address does not belong to this supplier."
	msgSupplierHasProducts = "The supplier has %d registered product(s); remove them before deleting the supplier."
)

// SupplierService is the only entry point for supplier mutations. Business
// rule failures come back in the Result and leave the store untouched; the
// error return is reserved for storage failures.
type SupplierService interface {
	Add(ctx context.Context, s *model.Supplier) (notification.Result, error)
	Update(ctx context.Context, s *model.Supplier) (notification.Result, error)
	UpdateAddress(ctx context.Context, a *model.Address) (notification.Result, error)
	Remove(ctx context.Context, id uuid.UUID) (notification.Result, error)

	GetAll(ctx context.Context) ([]*model.Supplier, error)
	GetWithAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	GetWithProductsAndAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
}

type supplierService struct {
	store repository.Store
}

func NewSupplierService(store repository.Store) SupplierService {
	return &supplierService{store: store}
}

// Add stores the supplier and, in the same unit of work, the address
// attached to it. The document is kept as bare digits, so the same tax
// number typed with or without punctuation counts as one.
func (s *supplierService) Add(ctx context.Context, sup *model.Supplier) (notification.Result, error) {
	n := notification.New()
	if sup.ID == uuid.Nil {
		sup.ID = uuid.New()
	}
	sup.Document = model.NormalizeDocument(sup.Document)
	if !validateSupplier(n, sup) {
		return publish(ctx, n), nil
	}
	if sup.Address != nil {
		sup.AttachAddress(sup.Address)
		if !validateFields(n, sup.Address) {
			return publish(ctx, n), nil
		}
	}

	taken, err := s.documentTaken(ctx, sup)
	if err != nil {
		return notification.Result{}, err
	}
	if taken {
		n.Notify(msgDocumentTaken)
		return publish(ctx, n), nil
	}

	err = s.store.Do(ctx, func(uow repository.Store) error {
		if err := uow.Suppliers().Add(ctx, sup); err != nil {
			return err
		}
		if sup.Address != nil {
			return uow.Addresses().Add(ctx, sup.Address)
		}
		return nil
	})
	if err != nil {
		return notification.Result{}, err
	}
	return publish(ctx, n), nil
}

// Update replaces the supplier row. An attached address is written in the
// same unit of work (added when the supplier had none).
func (s *supplierService) Update(ctx context.Context, sup *model.Supplier) (notification.Result, error) {
	n := notification.New()
	sup.Document = model.NormalizeDocument(sup.Document)
	if !validateSupplier(n, sup) {
		return publish(ctx, n), nil
	}

	var current *model.Address
	if sup.Address != nil {
		sup.AttachAddress(sup.Address)
		if !validateFields(n, sup.Address) {
			return publish(ctx, n), nil
		}
		var err error
		current, err = s.store.Addresses().GetBySupplier(ctx, sup.ID)
		if err != nil {
			return notification.Result{}, err
		}
		if current != nil && current.ID != sup.Address.ID {
			n.Notify(msgAddressMismatch)
			return publish(ctx, n), nil
		}
	}

	taken, err := s.documentTaken(ctx, sup)
	if err != nil {
		return notification.Result{}, err
	}
	if taken {
		n.Notify(msgDocumentTaken)
		return publish(ctx, n), nil
	}

	err = s.store.Do(ctx, func(uow repository.Store) error {
		if err := uow.Suppliers().Update(ctx, sup); err != nil {
			return err
		}
		if sup.Address == nil {
			return nil
		}
		if current == nil {
			return uow.Addresses().Add(ctx, sup.Address)
		}
		return uow.Addresses().Update(ctx, sup.Address)
	})
	if err != nil {
		return notification.Result{}, err
	}
	return publish(ctx, n), nil
}

// UpdateAddress writes only the address; name and document are neither
// validated nor touched.
func (s *supplierService) UpdateAddress(ctx context.Context, a *model.Address) (notification.Result, error) {
	n := notification.New()
	if !validateFields(n, a) {
		return publish(ctx, n), nil
	}

	sup, err := s.store.Suppliers().GetWithAddress(ctx, a.SupplierID)
	if err != nil {
		return notification.Result{}, err
	}
	if sup == nil {
		n.Notify(msgSupplierNotFound)
		return publish(ctx, n), nil
	}
	if sup.Address != nil && sup.Address.ID != a.ID {
		n.Notify(msgAddressMismatch)
		return publish(ctx, n), nil
	}

	err = s.store.Do(ctx, func(uow repository.Store) error {
		if sup.Address == nil {
			return uow.Addresses().Add(ctx, a)
		}
		return uow.Addresses().Update(ctx, a)
	})
	if err != nil {
		return notification.Result{}, err
	}
	return publish(ctx, n), nil
}

// Remove refuses to delete a supplier that still has products. The store
// would reject it too, but with a constraint error instead of a message the
// user can act on.
func (s *supplierService) Remove(ctx context.Context, id uuid.UUID) (notification.Result, error) {
	n := notification.New()

	sup, err := s.store.Suppliers().GetWithProductsAndAddress(ctx, id)
	if err != nil {
		return notification.Result{}, err
	}
	if sup == nil {
		n.Notify(msgSupplierNotFound)
		return publish(ctx, n), nil
	}
	if len(sup.Products) > 0 {
		n.Notifyf(msgSupplierHasProducts, len(sup.Products))
		return publish(ctx, n), nil
	}

	err = s.store.Do(ctx, func(uow repository.Store) error {
		if sup.Address != nil {
			if err := uow.Addresses().Remove(ctx, sup.Address.ID); err != nil {
				return err
			}
		}
		return uow.Suppliers().Remove(ctx, id)
	})
	if err != nil {
		return notification.Result{}, err
	}
	return publish(ctx, n), nil
}

func (s *supplierService) GetAll(ctx context.Context) ([]*model.Supplier, error) {
	return s.store.Suppliers().GetAll(ctx, repository.Asc("name"))
}

func (s *supplierService) GetWithAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	return s.store.Suppliers().GetWithAddress(ctx, id)
}

func (s *supplierService) GetWithProductsAndAddress(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	return s.store.Suppliers().GetWithProductsAndAddress(ctx, id)
}

// documentTaken reports whether another supplier already uses sup's
// document. The unique index on suppliers.document settles concurrent
// writers; this read only exists to produce a readable message.
func (s *supplierService) documentTaken(ctx context.Context, sup *model.Supplier) (bool, error) {
	other, err := s.store.Suppliers().GetByDocument(ctx, sup.Document)
	if err != nil {
		return false, err
	}
	return other != nil && other.ID != sup.ID, nil
}
