package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store hands out the aggregate repositories bound to one session and
// opens units of work over it.
type Store interface {
	Suppliers() SupplierRepository
	Products() ProductRepository
	Addresses() AddressRepository

	// Do runs fn inside a single transaction. Every repository taken from
	// uow stages its writes there; they become durable together when fn
	// returns nil and are discarded when fn returns an error, panics, or
	// ctx is cancelled before commit.
	Do(ctx context.Context, fn func(uow Store) error) error
}

type gormStore struct{ db *gorm.DB }

func NewStore(db *gorm.DB) Store { return &gormStore{db: db} }

func (s *gormStore) Suppliers() SupplierRepository { return NewSupplierRepository(s.db) }
func (s *gormStore) Products() ProductRepository   { return NewProductRepository(s.db) }
func (s *gormStore) Addresses() AddressRepository  { return NewAddressRepository(s.db) }

func (s *gormStore) Do(ctx context.Context, fn func(uow Store) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&gormStore{db: tx})
		return fnErr
	})
	if err != nil && fnErr == nil {
		// begin or commit failed; fn itself succeeded
		return translate(err)
	}
	return err
}
