// Package store persists saved deals: the parameter snapshot and its
// computed analysis, stored verbatim and keyed by an opaque identifier.
package store

import (
	"errors"
	"time"

	"github.com/dxbflip/flipcalc/internal/config"
	"github.com/dxbflip/flipcalc/internal/engine"
	"github.com/google/uuid"
)

// ErrNotFound is returned when no saved deal exists for the given id.
var ErrNotFound = errors.New("deal not found")

// SavedDeal is one persisted (parameters, calculations) pair. The store
// never reinterprets either value.
type SavedDeal struct {
	ID           uuid.UUID           `json:"id"`
	Name         string              `json:"name"`
	Params       config.Deal         `json:"params"`
	Calculations engine.Calculations `json:"calculations"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// Storage defines the interface for saved-deal persistence.
type Storage interface {
	CreateDeal(deal *SavedDeal) error
	GetDeal(id uuid.UUID) (*SavedDeal, error)
	UpdateDeal(deal *SavedDeal) error
	DeleteDeal(id uuid.UUID) error
	ListDeals() ([]*SavedDeal, error)

	Close() error
}
