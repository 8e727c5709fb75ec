package booking

import (
	"context"
	"errors"
	"time"

	"github.com/merakistudio/interior-api/internal/models"
)

var ErrNotFound = errors.New("booking not found")

type Repository interface {
	// -------- Slot allocation --------
	SlotExists(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
		slot string,
	) (bool, error)

	CountForDay(
		ctx context.Context,
		dayStart time.Time,
		dayEnd time.Time,
	) (int64, error)

	Create(
		ctx context.Context,
		b *models.Booking,
	) error

	// -------- Admin console --------
	List(ctx context.Context) ([]models.Booking, error)

	Update(
		ctx context.Context,
		id string,
		fields map[string]any,
	) (*models.Booking, error)

	Delete(ctx context.Context, id string) error
}
