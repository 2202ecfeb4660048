package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/totalpharma/pdv-api/internal/application/service"
	"github.com/totalpharma/pdv-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the pharmacy settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the pharmacy settings (admin only)
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req struct {
		StoreName          *string `json:"store_name"`
		StoreAddress       *string `json:"store_address"`
		StorePhone         *string `json:"store_phone"`
		DefaultAreaCode    *string `json:"default_area_code"`
		ReminderLeadDays   *int    `json:"reminder_lead_days"`
		DefaultDeliveryFee *int64  `json:"default_delivery_fee"`
		ReceiptWidth       *int    `json:"receipt_width"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		StoreName:          req.StoreName,
		StoreAddress:       req.StoreAddress,
		StorePhone:         req.StorePhone,
		DefaultAreaCode:    req.DefaultAreaCode,
		ReminderLeadDays:   req.ReminderLeadDays,
		DefaultDeliveryFee: req.DefaultDeliveryFee,
		ReceiptWidth:       req.ReceiptWidth,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
