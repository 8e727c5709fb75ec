package booking

import (
	"context"
	"time"

	domain "github.com/merakistudio/interior-api/internal/domain/booking"
	"github.com/merakistudio/interior-api/internal/httperr"
	"github.com/merakistudio/interior-api/internal/models"
	"github.com/merakistudio/interior-api/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SubmitBookingInput struct {
	ClientName string
	Email      string
	Phone      string

	Location    string
	Budget      string
	Message     string
	ServiceType string

	Date string // YYYY-MM-DD
	Time string // slot token, e.g. "10:00"
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	repo domain.Repository
	tz   string
}

func NewSubmitBooking(repo domain.Repository, tz string) *SubmitBooking {
	return &SubmitBooking{
		repo: repo,
		tz:   tz,
	}
}

// ======================================================
// EXECUTE
// ======================================================

// Execute runs the slot checks in sequence: exact (date, time) collision
// first, then the daily cap over all statuses. The two checks are not
// atomic as a pair; concurrent submissions for the same slot can both
// pass and leave a duplicate for manual admin correction.
func (uc *SubmitBooking) Execute(
	ctx context.Context,
	in SubmitBookingInput,
) (*models.Booking, error) {

	// --------------------------------------------------
	// 1. Date and time must be present before any query.
	// --------------------------------------------------
	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness("missing_date_or_time")
	}

	date, err := parseDate(in.Date, uc.tz)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	dayStart, dayEnd := domain.DayWindow(date)

	// --------------------------------------------------
	// 2. Exact slot collision.
	// --------------------------------------------------
	taken, err := uc.repo.SlotExists(ctx, dayStart, dayEnd, in.Time)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, httperr.ErrBusiness("slot_taken")
	}

	// --------------------------------------------------
	// 3. Daily cap, counting every status.
	// --------------------------------------------------
	count, err := uc.repo.CountForDay(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	if count >= domain.DailyCap {
		return nil, httperr.ErrBusiness("day_full")
	}

	// --------------------------------------------------
	// 4. Persist as pending.
	// --------------------------------------------------
	b := &models.Booking{
		ClientName:  in.ClientName,
		Email:       in.Email,
		Phone:       in.Phone,
		Location:    in.Location,
		Budget:      in.Budget,
		Message:     in.Message,
		ServiceType: in.ServiceType,
		BookingDate: dayStart,
		BookingTime: in.Time,
		Status:      string(domain.InitialStatus()),
		CreatedAt:   timezone.NowIn(uc.tz),
	}

	if err := uc.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	return b, nil
}

// parseDate accepts the plain calendar form the site sends and the
// RFC 3339 form older clients used, truncating either to midnight.
func parseDate(s, tz string) (time.Time, error) {
	loc := timezone.Location(tz)

	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}

	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.In(loc), nil
}
