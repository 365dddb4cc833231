package migration_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/reservation/internal/booking"
	"github.com/hoteldesk/reservation/internal/logger"
	"github.com/hoteldesk/reservation/internal/migration"
	"github.com/hoteldesk/reservation/internal/storage/memory"
)

func TestUp_SeedsCatalog(t *testing.T) {
	db := memory.New(memory.Config{L: logger.NewNop()})
	ctx := context.Background()

	require.NoError(t, migration.Up(ctx, logger.NewNop(), db))

	rooms, err := db.Rooms(ctx)
	require.NoError(t, err)
	require.Len(t, rooms, 5)

	byCategory := make(map[booking.Category]int)
	for _, room := range rooms {
		byCategory[room.Category]++
	}

	require.Equal(t, 2, byCategory[booking.CategoryStandard])
	require.Equal(t, 2, byCategory[booking.CategoryDeluxe])
	require.Equal(t, 1, byCategory[booking.CategorySuite])

	room, err := db.RoomByID(ctx, 101)
	require.NoError(t, err)
	require.Equal(t, float64(2000), room.PricePerNight)
}

func TestUp_RefusesToRunTwice(t *testing.T) {
	db := memory.New(memory.Config{L: logger.NewNop()})
	ctx := context.Background()

	require.NoError(t, migration.Up(ctx, logger.NewNop(), db))
	require.ErrorIs(t, migration.Up(ctx, logger.NewNop(), db), memory.ErrDuplicateRoom)
}
