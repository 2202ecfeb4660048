package repository

import (
	"context"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
)

// SettingsRepository defines the interface for pharmacy settings access.
// Settings are a singleton row; Get returns nil when no row exists yet.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.PharmacySettings, error)
	Create(ctx context.Context, settings *entity.PharmacySettings) error
	Update(ctx context.Context, settings *entity.PharmacySettings) error
}
