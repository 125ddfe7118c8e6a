package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/smartque/smartque-api/internal/queue"
	appointmentuc "github.com/smartque/smartque-api/internal/usecase/appointment"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedSequencer struct {
	n int64
}

func (f fixedSequencer) Reserve(
	context.Context, string, time.Time, queue.SeedFunc,
) (int64, error) {
	return f.n, nil
}

// Clients read the reserved number from the queueNumber key.
func TestNextQueueResponseShape(t *testing.T) {
	h := NewAppointmentHandler(
		nil, nil, nil, nil,
		appointmentuc.NewNextQueueNumber(nil, fixedSequencer{n: 5}),
		nil,
	)

	r := gin.New()
	r.GET("/api/appointments/next-queue", h.NextQueue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(
		http.MethodGet, "/api/appointments/next-queue?department=Dermatology", nil,
	)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"queueNumber":"5"`)
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestNextQueueRequiresDepartment(t *testing.T) {
	h := NewAppointmentHandler(
		nil, nil, nil, nil,
		appointmentuc.NewNextQueueNumber(nil, fixedSequencer{n: 1}),
		nil,
	)

	r := gin.New()
	r.GET("/api/appointments/next-queue", h.NextQueue)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/appointments/next-queue", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)
}
