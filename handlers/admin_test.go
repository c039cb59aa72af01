package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shreeji/handlers"
	"shreeji/models"
	"shreeji/services/booking"
	"shreeji/services/contact"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeContactService struct {
	messages  []models.ContactInquiry
	submitErr error
}

func (s *fakeContactService) Submit(_ context.Context, _ contact.InquiryInput) error {
	return s.submitErr
}

func (s *fakeContactService) ListMessages(_ context.Context) ([]models.ContactInquiry, error) {
	return s.messages, nil
}

func newAdminRouter(bookings booking.BookingService, contacts contact.ContactService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := handlers.NewAdminHandler(bookings, contacts, zap.NewNop())
	router := gin.New()
	router.GET("/api/admin/bookings", h.ListBookingsHandler)
	router.PATCH("/api/admin/bookings/:id/status", h.UpdateBookingStatusHandler)
	router.GET("/api/admin/messages", h.ListMessagesHandler)
	return router
}

func TestUpdateBookingStatusHandlerSuccess(t *testing.T) {
	svc := &fakeBookingService{}
	router := newAdminRouter(svc, &fakeContactService{})

	req, _ := http.NewRequest("PATCH", "/api/admin/bookings/doc-1/status", strings.NewReader(`{"status":"Ready"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Equal(t, models.StatusReady, svc.lastStatus)
}

func TestUpdateBookingStatusHandlerInvalidStatus(t *testing.T) {
	svc := &fakeBookingService{updateErr: booking.ErrInvalidStatus}
	router := newAdminRouter(svc, &fakeContactService{})

	req, _ := http.NewRequest("PATCH", "/api/admin/bookings/doc-1/status", strings.NewReader(`{"status":"Shipped"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid status value.")
}

func TestUpdateBookingStatusHandlerNotFound(t *testing.T) {
	svc := &fakeBookingService{updateErr: booking.ErrBookingNotFound}
	router := newAdminRouter(svc, &fakeContactService{})

	req, _ := http.NewRequest("PATCH", "/api/admin/bookings/missing/status", strings.NewReader(`{"status":"Ready"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListMessagesHandler(t *testing.T) {
	contacts := &fakeContactService{
		messages: []models.ContactInquiry{{Name: "Rohit Gupta", Message: "Bulk passport photos?"}},
	}
	router := newAdminRouter(&fakeBookingService{}, contacts)

	req, _ := http.NewRequest("GET", "/api/admin/messages", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Rohit Gupta")
}
