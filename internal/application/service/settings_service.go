package service

import (
	"context"
	"strings"

	"github.com/totalpharma/pdv-api/internal/domain/entity"
	"github.com/totalpharma/pdv-api/internal/domain/repository"
	"github.com/totalpharma/pdv-api/pkg/apperror"
)

// SettingsService handles pharmacy settings business logic
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the pharmacy settings, creating defaults if the
// seed row is missing.
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.PharmacySettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.PharmacySettings{
			StoreName:        "Farmacia",
			DefaultAreaCode:  "11",
			ReminderLeadDays: 3,
			ReceiptWidth:     48,
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	StoreName          *string
	StoreAddress       *string
	StorePhone         *string
	DefaultAreaCode    *string
	ReminderLeadDays   *int
	DefaultDeliveryFee *int64
	ReceiptWidth       *int
}

// UpdateSettings updates the pharmacy settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.PharmacySettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.StoreName != nil {
		if strings.TrimSpace(*input.StoreName) == "" {
			return nil, apperror.NewBadRequestError("Store name cannot be empty")
		}
		settings.StoreName = strings.TrimSpace(*input.StoreName)
	}
	if input.StoreAddress != nil {
		settings.StoreAddress = strings.TrimSpace(*input.StoreAddress)
	}
	if input.StorePhone != nil {
		settings.StorePhone = strings.TrimSpace(*input.StorePhone)
	}
	if input.DefaultAreaCode != nil {
		code := strings.TrimSpace(*input.DefaultAreaCode)
		if len(code) != 2 {
			return nil, apperror.NewBadRequestError("Area code must be two digits")
		}
		settings.DefaultAreaCode = code
	}
	if input.ReminderLeadDays != nil {
		if *input.ReminderLeadDays < 0 {
			return nil, apperror.NewBadRequestError("Reminder lead days cannot be negative")
		}
		settings.ReminderLeadDays = *input.ReminderLeadDays
	}
	if input.DefaultDeliveryFee != nil {
		if *input.DefaultDeliveryFee < 0 {
			return nil, apperror.NewBadRequestError("Delivery fee cannot be negative")
		}
		settings.DefaultDeliveryFee = *input.DefaultDeliveryFee
	}
	if input.ReceiptWidth != nil {
		if *input.ReceiptWidth != 32 && *input.ReceiptWidth != 48 {
			return nil, apperror.NewBadRequestError("Receipt width must be 32 or 48")
		}
		settings.ReceiptWidth = *input.ReceiptWidth
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
