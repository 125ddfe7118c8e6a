package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/audit"
	"github.com/smartque/smartque-api/internal/domain/appointment"
	"github.com/smartque/smartque-api/internal/domain/user"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/middleware"
	"github.com/smartque/smartque-api/internal/models"
	appointmentuc "github.com/smartque/smartque-api/internal/usecase/appointment"
)

type AdminHandler struct {
	db        *gorm.DB
	setStatus *appointmentuc.SetAppointmentStatus
	audit     *audit.Dispatcher
}

func NewAdminHandler(
	db *gorm.DB,
	setStatus *appointmentuc.SetAppointmentStatus,
	auditor *audit.Dispatcher,
) *AdminHandler {
	return &AdminHandler{
		db:        db,
		setStatus: setStatus,
		audit:     auditor,
	}
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	var users []models.User
	if err := h.db.Order("created_at DESC").Find(&users).Error; err != nil {
		httperr.Internal(c, "Failed to fetch users")
		return
	}

	httpresp.OK(c, gin.H{"users": users})
}

type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid user id")
		return
	}

	var req UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Role is required")
		return
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		httperr.From(c, err, "Invalid role")
		return
	}

	var target models.User
	if err := h.db.First(&target, id).Error; err != nil {
		httperr.NotFound(c, "User not found")
		return
	}

	target.Role = string(role)
	if err := h.db.Save(&target).Error; err != nil {
		httperr.Internal(c, "Failed to update user")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_role_changed",
		Entity:   "user",
		EntityID: &target.ID,
		Metadata: map[string]string{"role": string(role)},
	})

	httpresp.OK(c, gin.H{
		"message": "User role updated",
		"user":    userJSON(&target),
	})
}

// ListAppointments accepts optional ?status= and ?date= (YYYY-MM-DD) filters.
func (h *AdminHandler) ListAppointments(c *gin.Context) {
	q := h.db.Model(&models.Appointment{})

	if raw := c.Query("status"); raw != "" {
		status, err := appointment.ParseStatus(raw)
		if err != nil {
			httperr.From(c, err, "Invalid status")
			return
		}
		q = q.Where("status = ?", string(status))
	}

	if raw := c.Query("date"); raw != "" {
		day, err := appointment.ParseDay(raw)
		if err != nil {
			httperr.From(c, err, "Invalid date")
			return
		}
		dayStart, dayEnd := appointment.DayWindow(day)
		q = q.Where("date_time BETWEEN ? AND ?", dayStart, dayEnd)
	}

	var appointments []models.Appointment
	if err := q.Order("date_time DESC").Find(&appointments).Error; err != nil {
		httperr.Internal(c, "Failed to fetch appointments")
		return
	}

	httpresp.OK(c, gin.H{"appointments": appointments})
}

type SetStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *AdminHandler) SetAppointmentStatus(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid appointment id")
		return
	}

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Status is required")
		return
	}

	ap, err := h.setStatus.Execute(c.Request.Context(), id, req.Status, actorID)
	if err != nil {
		httperr.From(c, err, "Failed to update appointment status")
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Appointment status updated",
		"appointment": ap,
	})
}
