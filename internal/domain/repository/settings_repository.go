package repository

import (
	"context"

	"github.com/laundrypro/laundry-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single-row admin settings.
// Get returns the well-known settings row; there is never more than one.
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.AdminSettings, error)
	GetByEmail(ctx context.Context, email string) (*entity.AdminSettings, error)
	Create(ctx context.Context, settings *entity.AdminSettings) error
	Update(ctx context.Context, settings *entity.AdminSettings) error
}
