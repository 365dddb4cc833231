package migration

import (
	"context"
	"fmt"

	"github.com/hoteldesk/reservation/internal/booking"
	"github.com/hoteldesk/reservation/internal/logger"
)

type storage interface {
	SaveRooms(ctx context.Context, rooms []booking.Room) error
}

// Up seeds the fixed room catalog. The seed is configuration, not derived
// data; the catalog never changes for the lifetime of the process.
func Up(ctx context.Context, l *logger.Logger, storage storage) error {
	rooms := []booking.Room{
		{ID: 101, Category: booking.CategoryStandard, PricePerNight: 2000, Description: "Single bed, city view"},
		{ID: 102, Category: booking.CategoryStandard, PricePerNight: 2200, Description: "Double bed, city view"},
		{ID: 201, Category: booking.CategoryDeluxe, PricePerNight: 3500, Description: "King bed, sea view"},
		{ID: 202, Category: booking.CategoryDeluxe, PricePerNight: 3800, Description: "Twin bed, mountain view"},
		{ID: 301, Category: booking.CategorySuite, PricePerNight: 6000, Description: "Luxury suite, sea view, balcony"},
	}

	if err := storage.SaveRooms(ctx, rooms); err != nil {
		return fmt.Errorf("save room catalog to storage: %w", err)
	}

	l.LogInfo("Room catalog seeded with %d rooms", len(rooms))

	return nil
}
