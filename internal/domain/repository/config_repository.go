package repository

import (
	"context"
	"errors"

	"botauth/internal/domain/entity"
)

// ErrConfigNotFound is returned when no superuser password has been stored yet.
var ErrConfigNotFound = errors.New("config not found")

// ConfigRepository persists the superuser credential row.
type ConfigRepository interface {
	// Current returns the authoritative config row, the one with the lowest id.
	Current(ctx context.Context) (*entity.Config, error)

	// Create persists a new config row.
	Create(ctx context.Context, cfg *entity.Config) error

	// Update overwrites the stored hash of an existing row.
	Update(ctx context.Context, cfg *entity.Config) error

	// Count returns the number of physical config rows.
	Count(ctx context.Context) (int64, error)
}
