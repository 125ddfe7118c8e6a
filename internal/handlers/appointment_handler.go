package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/smartque/smartque-api/internal/httperr"
	"github.com/smartque/smartque-api/internal/httpresp"
	"github.com/smartque/smartque-api/internal/middleware"
	appointmentuc "github.com/smartque/smartque-api/internal/usecase/appointment"
)

type AppointmentHandler struct {
	book       *appointmentuc.BookAppointment
	list       *appointmentuc.ListUserAppointments
	cancel     *appointmentuc.CancelAppointment
	reschedule *appointmentuc.RescheduleAppointment
	nextQueue  *appointmentuc.NextQueueNumber
	position   *appointmentuc.QueuePosition
}

func NewAppointmentHandler(
	book *appointmentuc.BookAppointment,
	list *appointmentuc.ListUserAppointments,
	cancel *appointmentuc.CancelAppointment,
	reschedule *appointmentuc.RescheduleAppointment,
	nextQueue *appointmentuc.NextQueueNumber,
	position *appointmentuc.QueuePosition,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		list:       list,
		cancel:     cancel,
		reschedule: reschedule,
		nextQueue:  nextQueue,
		position:   position,
	}
}

type BookAppointmentRequest struct {
	DoctorName      string  `json:"doctorName"`
	DepartmentName  string  `json:"departmentName"`
	DateTime        string  `json:"dateTime"`
	QueueNumber     string  `json:"queueNumber"`
	ConsultationFee float64 `json:"consultationFee"`
}

type RescheduleRequest struct {
	NewDateTime string `json:"newDateTime"`
}

func (h *AppointmentHandler) Book(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.DateTime == "" {
		httperr.BadRequest(c, "Missing required fields")
		return
	}
	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		httperr.From(c, err, "Invalid date/time")
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), appointmentuc.BookAppointmentInput{
		UserID:          userID,
		DoctorName:      req.DoctorName,
		DepartmentName:  req.DepartmentName,
		DateTime:        dateTime,
		QueueNumber:     req.QueueNumber,
		ConsultationFee: req.ConsultationFee,
	})
	if err != nil {
		httperr.From(c, err, "Failed to book appointment")
		return
	}

	httpresp.Created(c, gin.H{
		"message":     "Appointment booked successfully",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) ListForUser(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		httperr.From(c, err, "Invalid user id")
		return
	}

	appointments, err := h.list.Execute(c.Request.Context(), userID)
	if err != nil {
		httperr.From(c, err, "Failed to fetch appointments")
		return
	}

	httpresp.OK(c, gin.H{"appointments": appointments})
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid appointment id")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), id, userID)
	if err != nil {
		httperr.From(c, err, "Failed to cancel appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Appointment cancelled successfully",
		"appointment": ap,
	})
}

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid appointment id")
		return
	}

	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.NewDateTime == "" {
		httperr.BadRequest(c, "New date/time is required")
		return
	}
	newDateTime, err := parseDateTime(req.NewDateTime)
	if err != nil {
		httperr.From(c, err, "Invalid date/time")
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), id, newDateTime, userID)
	if err != nil {
		httperr.From(c, err, "Failed to reschedule appointment")
		return
	}

	httpresp.OK(c, gin.H{
		"message":     "Appointment rescheduled successfully",
		"appointment": ap,
	})
}

// NextQueue is public so the booking form can show the number before login
// completes.
func (h *AppointmentHandler) NextQueue(c *gin.Context) {
	department := c.Query("department")

	day, err := domainDay(c.Query("date"))
	if err != nil {
		httperr.From(c, err, "Invalid date")
		return
	}

	number, err := h.nextQueue.Execute(c.Request.Context(), department, day)
	if err != nil {
		httperr.From(c, err, "Failed to compute queue number")
		return
	}

	httpresp.OK(c, gin.H{"queueNumber": number})
}

func (h *AppointmentHandler) QueuePosition(c *gin.Context) {
	id, err := pathID(c, "id")
	if err != nil {
		httperr.From(c, err, "Invalid appointment id")
		return
	}

	ap, position, err := h.position.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.From(c, err, "Failed to compute queue position")
		return
	}

	httpresp.OK(c, gin.H{
		"currentQueuePosition": position,
		"queueNumber":          ap.QueueNumber,
		"departmentName":       ap.DepartmentName,
	})
}

func pathID(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, httperr.ErrValidation("Invalid id")
	}
	return uint(id), nil
}
