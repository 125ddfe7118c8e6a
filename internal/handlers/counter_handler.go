package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartque/smartque-api/internal/audit"
	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/middleware"
	"github.com/smartque/smartque-api/internal/models"
)

type CounterHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewCounterHandler(db *gorm.DB, auditor *audit.Dispatcher) *CounterHandler {
	return &CounterHandler{db: db, audit: auditor}
}

func (h *CounterHandler) List(c *gin.Context) {
	var counters []models.Counter
	if err := h.db.Preload("Department").Order("id ASC").Find(&counters).Error; err != nil {
		httperr.Internal(c, "Failed to fetch counters")
		return
	}

	httpresp.OK(c, gin.H{"counters": counters})
}

type CreateCounterRequest struct {
	Name         string `json:"name" binding:"required"`
	DepartmentID *uint  `json:"departmentId"`
}

func (h *CounterHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Counter name is required")
		return
	}

	if req.DepartmentID != nil {
		var count int64
		if err := h.db.Model(&models.Department{}).
			Where("id = ?", *req.DepartmentID).Count(&count).Error; err != nil {
			httperr.Internal(c, "Failed to create counter")
			return
		}
		if count == 0 {
			httperr.NotFound(c, "Department not found")
			return
		}
	}

	counter := models.Counter{
		Name:         req.Name,
		DepartmentID: req.DepartmentID,
		IsActive:     true,
	}
	if err := h.db.Create(&counter).Error; err != nil {
		httperr.Internal(c, "Failed to create counter")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "counter_created",
		Entity:   "counter",
		EntityID: &counter.ID,
		Metadata: map[string]string{"name": counter.Name},
	})

	httpresp.Created(c, gin.H{
		"message": "Counter created",
		"counter": counter,
	})
}

type UpdateCounterRequest struct {
	Name         *string `json:"name"`
	DepartmentID *uint   `json:"departmentId"`
	IsActive     *bool   `json:"isActive"`
}

// Update patches only the fields present in the body.
func (h *CounterHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid counter id")
		return
	}

	var req UpdateCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	var counter models.Counter
	if err := h.db.First(&counter, id).Error; err != nil {
		httperr.NotFound(c, "Counter not found")
		return
	}

	if req.Name != nil {
		counter.Name = *req.Name
	}
	if req.DepartmentID != nil {
		counter.DepartmentID = req.DepartmentID
	}
	if req.IsActive != nil {
		counter.IsActive = *req.IsActive
	}

	if err := h.db.Save(&counter).Error; err != nil {
		httperr.Internal(c, "Failed to update counter")
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "counter_updated",
		Entity:   "counter",
		EntityID: &counter.ID,
	})

	httpresp.OK(c, gin.H{
		"message": "Counter updated",
		"counter": counter,
	})
}
