package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/audit"
	"github.com/smartque/smartque-api/internal/db"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/middleware"
	"github.com/smartque/smartque-api/internal/models"
)

// ServiceHandler manages the departments a business exposes for booking.
type ServiceHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewServiceHandler(db *gorm.DB, auditor *audit.Dispatcher) *ServiceHandler {
	return &ServiceHandler{db: db, audit: auditor}
}

func (h *ServiceHandler) List(c *gin.Context) {
	var departments []models.Department
	if err := h.db.Order("name ASC").Find(&departments).Error; err != nil {
		httperr.Internal(c, "Failed to fetch services")
		return
	}

	httpresp.OK(c, gin.H{"services": departments})
}

type CreateServiceRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (h *ServiceHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Service name is required")
		return
	}

	department := models.Department{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.db.Create(&department).Error; err != nil {
		if db.IsUniqueViolation(err) {
			httperr.BadRequest(c, "A service with this name already exists")
			return
		}
		httperr.Internal(c, "Failed to create service")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_created",
		Entity:   "department",
		EntityID: &department.ID,
		Metadata: map[string]string{"name": department.Name},
	})

	httpresp.Created(c, gin.H{
		"message": "Service created",
		"service": department,
	})
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid service id")
		return
	}

	var department models.Department
	if err := h.db.First(&department, id).Error; err != nil {
		httperr.NotFound(c, "Service not found")
		return
	}

	if err := h.db.Delete(&department).Error; err != nil {
		httperr.Internal(c, "Failed to delete service")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "service_deleted",
		Entity:   "department",
		EntityID: &department.ID,
		Metadata: map[string]string{"name": department.Name},
	})

	httpresp.OK(c, gin.H{"message": "Service deleted"})
}
