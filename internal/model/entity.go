package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Aggregate is the contract every persisted root satisfies. Repositories are
// parameterized over it.
type Aggregate interface {
	Identity() uuid.UUID
	IsActive() bool
}

// Entity carries the identity and visibility flag shared by all tables.
// The ID is generated client-side, never by the database, so services can
// wire relationships (address → supplier) before anything is saved.
type Entity struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Active    bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewEntity returns an active entity with a fresh random identity.
func NewEntity() Entity {
	return Entity{ID: uuid.New(), Active: true}
}

func (e Entity) Identity() uuid.UUID { return e.ID }

func (e Entity) IsActive() bool { return e.Active }

// BeforeCreate fills the id of zero-value structs that skipped the
// constructors. An id that is already set is never touched.
func (e *Entity) BeforeCreate(_ *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
