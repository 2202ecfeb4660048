package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/totalpharma/pdv-api/internal/application/service"
	"github.com/totalpharma/pdv-api/internal/presentation/http/dto/response"
	"github.com/totalpharma/pdv-api/pkg/pagination"
)

// ReminderHandler handles reminder-related HTTP requests
type ReminderHandler struct {
	reminderService *service.ReminderService
}

// NewReminderHandler creates a new reminder handler
func NewReminderHandler(reminderService *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{reminderService: reminderService}
}

// Due returns today's worklist: pending reminders due today or overdue
func (h *ReminderHandler) Due(c *gin.Context) {
	reminders, err := h.reminderService.DueReminders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Due reminders retrieved successfully", reminders)
}

// Upcoming returns all pending reminders classified for the worklist
func (h *ReminderHandler) Upcoming(c *gin.Context) {
	reminders, err := h.reminderService.UpcomingReminders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Upcoming reminders retrieved successfully", reminders)
}

// List handles listing reminders with optional status filter
func (h *ReminderHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	var status *int
	if value := c.Query("status"); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			response.BadRequest(c, "Invalid status filter")
			return
		}
		status = &parsed
	}

	result, err := h.reminderService.ListReminders(c.Request.Context(), params, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Reminders retrieved successfully", result)
}

// Create schedules a manual reminder
func (h *ReminderHandler) Create(c *gin.Context) {
	var req struct {
		Phone        string `json:"phone" binding:"required"`
		Name         string `json:"name" binding:"required"`
		Medication   string `json:"medication" binding:"required"`
		DurationDays int    `json:"duration_days" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reminder, err := h.reminderService.Schedule(c.Request.Context(), &service.ScheduleInput{
		CustomerPhone: req.Phone,
		CustomerName:  req.Name,
		Medication:    req.Medication,
		DurationDays:  req.DurationDays,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Reminder scheduled successfully", reminder)
}

// Conclude marks a reminder as handled
func (h *ReminderHandler) Conclude(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid reminder ID")
		return
	}

	reminder, err := h.reminderService.Conclude(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminder concluded successfully", reminder)
}

// Delete removes a reminder created by mistake
func (h *ReminderHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid reminder ID")
		return
	}

	if err := h.reminderService.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Message returns the WhatsApp nudge text for a reminder
func (h *ReminderHandler) Message(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid reminder ID")
		return
	}

	text, err := h.reminderService.Message(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Reminder message built successfully", gin.H{"message": text})
}
