package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/merakistudio/interior-api/internal/domain/booking"
	"github.com/merakistudio/interior-api/internal/models"
	usecase "github.com/merakistudio/interior-api/internal/usecase/booking"
)

type stubBookingRepo struct {
	bookings []models.Booking
}

func (s *stubBookingRepo) SlotExists(_ context.Context, dayStart, dayEnd time.Time, slot string) (bool, error) {
	for _, b := range s.bookings {
		if !b.BookingDate.Before(dayStart) && !b.BookingDate.After(dayEnd) && b.BookingTime == slot {
			return true, nil
		}
	}
	return false, nil
}

func (s *stubBookingRepo) CountForDay(_ context.Context, dayStart, dayEnd time.Time) (int64, error) {
	var n int64
	for _, b := range s.bookings {
		if !b.BookingDate.Before(dayStart) && !b.BookingDate.After(dayEnd) {
			n++
		}
	}
	return n, nil
}

func (s *stubBookingRepo) Create(_ context.Context, b *models.Booking) error {
	s.bookings = append(s.bookings, *b)
	return nil
}

func (s *stubBookingRepo) List(context.Context) ([]models.Booking, error) {
	return s.bookings, nil
}

func (s *stubBookingRepo) Update(context.Context, string, map[string]any) (*models.Booking, error) {
	return nil, domain.ErrNotFound
}

func (s *stubBookingRepo) Delete(context.Context, string) error {
	return domain.ErrNotFound
}

var _ domain.Repository = (*stubBookingRepo)(nil)

func bookingRouter(repo domain.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := NewBookingHandler(usecase.NewSubmitBooking(repo, "UTC"), repo)

	r := gin.New()
	r.POST("/api/bookings", h.Create)
	r.GET("/api/bookings", h.List)
	r.PATCH("/api/bookings/:id", h.Update)
	r.DELETE("/api/bookings/:id", h.Delete)
	return r
}

func jsonBody(t *testing.T, body any) *bytes.Reader {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)
	return bytes.NewReader(raw)
}

func postJSON(t *testing.T, r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, jsonBody(t, body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func validBookingBody(date, slot string) map[string]any {
	return map[string]any{
		"clientName":  "Asha Verma",
		"email":       "asha@example.com",
		"phone":       "+91 98765 43210",
		"serviceType": "Full Home Design",
		"bookingDate": date,
		"bookingTime": slot,
	}
}

func TestBookingCreate(t *testing.T) {
	r := bookingRouter(&stubBookingRepo{})

	w := postJSON(t, r, "/api/bookings", validBookingBody("2026-09-14", "10:00"))
	require.Equal(t, http.StatusCreated, w.Code)

	var b models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &b))
	assert.Equal(t, "pending", b.Status)
	assert.Equal(t, "10:00", b.BookingTime)
}

func TestBookingCreate_MissingDateAndTime(t *testing.T) {
	r := bookingRouter(&stubBookingRepo{})

	body := validBookingBody("", "")
	delete(body, "bookingDate")
	delete(body, "bookingTime")

	w := postJSON(t, r, "/api/bookings", body)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Date and Time are required")
}

func TestBookingCreate_MissingContactFields(t *testing.T) {
	r := bookingRouter(&stubBookingRepo{})

	w := postJSON(t, r, "/api/bookings", map[string]any{
		"bookingDate": "2026-09-14",
		"bookingTime": "10:00",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingCreate_SlotTakenAndDayFull(t *testing.T) {
	r := bookingRouter(&stubBookingRepo{})

	for _, slot := range []string{"10:00", "12:00", "14:00", "16:00"} {
		w := postJSON(t, r, "/api/bookings", validBookingBody("2026-09-14", slot))
		require.Equal(t, http.StatusCreated, w.Code, slot)
	}

	w := postJSON(t, r, "/api/bookings", validBookingBody("2026-09-14", "10:00"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(),
		"This time slot is already booked. Please choose another.")

	w = postJSON(t, r, "/api/bookings", validBookingBody("2026-09-14", "18:00"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(),
		"All slots for this date are fully booked.")
}

func TestBookingList(t *testing.T) {
	repo := &stubBookingRepo{}
	r := bookingRouter(repo)

	postJSON(t, r, "/api/bookings", validBookingBody("2026-09-14", "10:00"))

	req := httptest.NewRequest(http.MethodGet, "/api/bookings", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var bookings []models.Booking
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
	assert.Len(t, bookings, 1)
}

func TestBookingUpdate_InvalidStatus(t *testing.T) {
	r := bookingRouter(&stubBookingRepo{})

	raw, _ := json.Marshal(map[string]any{"status": "archived"})
	req := httptest.NewRequest(http.MethodPatch,
		"/api/bookings/66f0c0ffee0c0ffee0c0ffee", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBookingUpdateAndDelete_NotFound(t *testing.T) {
	r := bookingRouter(&stubBookingRepo{})

	raw, _ := json.Marshal(map[string]any{"status": "confirmed"})
	req := httptest.NewRequest(http.MethodPatch,
		"/api/bookings/66f0c0ffee0c0ffee0c0ffee", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)

	req = httptest.NewRequest(http.MethodDelete,
		"/api/bookings/66f0c0ffee0c0ffee0c0ffee", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
