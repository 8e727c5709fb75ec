package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	domain "github.com/merakistudio/interior-api/internal/domain/booking"
	"github.com/merakistudio/interior-api/internal/httperr"
	"github.com/merakistudio/interior-api/internal/httpresp"
	usecase "github.com/merakistudio/interior-api/internal/usecase/booking"
)

// ======================================================
// BOOKING HANDLER
// ======================================================

type BookingHandler struct {
	submit *usecase.SubmitBooking
	repo   domain.Repository
}

func NewBookingHandler(submit *usecase.SubmitBooking, repo domain.Repository) *BookingHandler {
	return &BookingHandler{
		submit: submit,
		repo:   repo,
	}
}

// createBookingRequest leaves date and time unbound on purpose: their
// absence is a business rule with its own message, not a generic 400.
type createBookingRequest struct {
	ClientName string `json:"clientName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`

	Location    string `json:"location"`
	Budget      string `json:"budget"`
	Message     string `json:"message"`
	ServiceType string `json:"serviceType"`

	BookingDate string `json:"bookingDate"`
	BookingTime string `json:"bookingTime"`
}

type updateBookingRequest struct {
	Status  *string `json:"status"`
	Message *string `json:"message"`
	Phone   *string `json:"phone"`
}

// ---- POST /api/bookings ----

func (h *BookingHandler) Create(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "All required fields must be filled")
		return
	}

	b, err := h.submit.Execute(c.Request.Context(), usecase.SubmitBookingInput{
		ClientName:  req.ClientName,
		Email:       req.Email,
		Phone:       req.Phone,
		Location:    req.Location,
		Budget:      req.Budget,
		Message:     req.Message,
		ServiceType: req.ServiceType,
		Date:        req.BookingDate,
		Time:        req.BookingTime,
	})
	if err != nil {
		h.writeSubmitError(c, err)
		return
	}

	httpresp.Created(c, b)
}

func (h *BookingHandler) writeSubmitError(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "missing_date_or_time"):
		httperr.BadRequest(c, "missing_date_or_time", "Date and Time are required")
	case httperr.IsBusiness(err, "invalid_date"):
		httperr.BadRequest(c, "invalid_date", "Booking date is not a valid date")
	case httperr.IsBusiness(err, "slot_taken"):
		httperr.BadRequest(c, "slot_taken",
			"This time slot is already booked. Please choose another.")
	case httperr.IsBusiness(err, "day_full"):
		httperr.BadRequest(c, "day_full",
			"All slots for this date are fully booked.")
	default:
		log.Error().Err(err).Msg("booking submission failed")
		httperr.Internal(c, "booking_failed", "Error creating booking")
	}
}

// ---- GET /api/bookings ----

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.repo.List(c.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("listing bookings failed")
		httperr.Internal(c, "list_failed", "Error fetching bookings")
		return
	}
	httpresp.OK(c, bookings)
}

// ---- PATCH /api/bookings/:id ----

func (h *BookingHandler) Update(c *gin.Context) {
	var req updateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body")
		return
	}

	fields := map[string]any{}
	if req.Status != nil {
		if !domain.IsValid(domain.Status(*req.Status)) {
			httperr.BadRequest(c, "invalid_status", "Invalid booking status")
			return
		}
		fields["status"] = *req.Status
	}
	if req.Message != nil {
		fields["message"] = *req.Message
	}
	if req.Phone != nil {
		fields["phone"] = *req.Phone
	}

	if len(fields) == 0 {
		httperr.BadRequest(c, "empty_update", "No fields to update")
		return
	}

	b, err := h.repo.Update(c.Request.Context(), c.Param("id"), fields)
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("updating booking failed")
		httperr.Internal(c, "update_failed", "Error updating booking")
		return
	}

	httpresp.OK(c, b)
}

// ---- DELETE /api/bookings/:id ----

func (h *BookingHandler) Delete(c *gin.Context) {
	err := h.repo.Delete(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrNotFound) {
		httperr.NotFound(c, "booking_not_found", "Booking not found")
		return
	}
	if err != nil {
		log.Error().Err(err).Str("id", c.Param("id")).Msg("deleting booking failed")
		httperr.Internal(c, "delete_failed", "Error deleting booking")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
