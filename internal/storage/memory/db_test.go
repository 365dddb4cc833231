package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/hoteldesk/reservation/internal/booking"
	"github.com/hoteldesk/reservation/internal/logger"
	"github.com/hoteldesk/reservation/internal/storage/memory"
)

func newDB(t *testing.T) *memory.DB {
	t.Helper()

	return memory.New(memory.Config{L: logger.NewNop()})
}

func seedRooms(t *testing.T, db *memory.DB) {
	t.Helper()

	require.NoError(t, db.SaveRooms(context.Background(), []booking.Room{
		{ID: 101, Category: booking.CategoryStandard, PricePerNight: 2000, Description: "Single bed, city view"},
		{ID: 201, Category: booking.CategoryDeluxe, PricePerNight: 3500, Description: "King bed, sea view"},
	}))
}

func testBooking(id, roomID int) booking.Booking {
	return booking.Booking{
		ID:       id,
		RoomID:   roomID,
		CheckIn:  time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		CheckOut: time.Date(2024, time.January, 3, 0, 0, 0, 0, time.UTC),
	}
}

func TestSaveRooms_RejectsDuplicateID(t *testing.T) {
	db := newDB(t)
	seedRooms(t, db)

	err := db.SaveRooms(context.Background(), []booking.Room{
		{ID: 101, Category: booking.CategoryStandard, PricePerNight: 1000, Description: "duplicate"},
	})
	require.ErrorIs(t, err, memory.ErrDuplicateRoom)

	rooms, err := db.Rooms(context.Background())
	require.NoError(t, err)
	require.Len(t, rooms, 2)
}

func TestRoomByID(t *testing.T) {
	db := newDB(t)
	seedRooms(t, db)
	ctx := context.Background()

	room, err := db.RoomByID(ctx, 201)
	require.NoError(t, err)
	require.Equal(t, booking.CategoryDeluxe, room.Category)

	_, err = db.RoomByID(ctx, 999)
	require.ErrorIs(t, err, booking.ErrRecordNotFound)
}

func TestRoomsByCategory(t *testing.T) {
	db := newDB(t)
	seedRooms(t, db)

	rooms, err := db.RoomsByCategory(context.Background(), booking.CategoryStandard)
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	require.Equal(t, 101, rooms[0].ID)

	rooms, err = db.RoomsByCategory(context.Background(), booking.CategorySuite)
	require.NoError(t, err)
	require.Empty(t, rooms)
}

func TestBookings_InsertionOrderPreserved(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	for _, id := range []int{1, 2, 3} {
		require.NoError(t, db.SaveBooking(ctx, testBooking(id, 101)))
	}

	found, err := db.DeleteBooking(ctx, 2)
	require.NoError(t, err)
	require.True(t, found)

	require.NoError(t, db.SaveBooking(ctx, testBooking(4, 101)))

	bookings, err := db.Bookings(ctx)
	require.NoError(t, err)

	ids := make([]int, 0, len(bookings))
	for _, b := range bookings {
		ids = append(ids, b.ID)
	}

	require.Equal(t, []int{1, 3, 4}, ids)
}

func TestDeleteBooking_NotFound(t *testing.T) {
	db := newDB(t)

	found, err := db.DeleteBooking(context.Background(), 42)
	require.NoError(t, err)
	require.False(t, found)
}

func TestSaveBooking_RejectsDuplicateID(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveBooking(ctx, testBooking(1, 101)))
	require.ErrorIs(t, db.SaveBooking(ctx, testBooking(1, 102)), memory.ErrDuplicateBooking)
}

func TestBookingsByRoom(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveBooking(ctx, testBooking(1, 101)))
	require.NoError(t, db.SaveBooking(ctx, testBooking(2, 201)))
	require.NoError(t, db.SaveBooking(ctx, testBooking(3, 101)))

	bookings, err := db.BookingsByRoom(ctx, 101)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	bookings, err = db.BookingsByRoom(ctx, 999)
	require.NoError(t, err)
	require.Empty(t, bookings)
}

func TestBookingByID(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveBooking(ctx, testBooking(1, 101)))

	b, err := db.BookingByID(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 101, b.RoomID)

	_, err = db.BookingByID(ctx, 2)
	require.ErrorIs(t, err, booking.ErrRecordNotFound)
}

func TestBookings_SnapshotIsolated(t *testing.T) {
	db := newDB(t)
	ctx := context.Background()

	require.NoError(t, db.SaveBooking(ctx, testBooking(1, 101)))

	snapshot, err := db.Bookings(ctx)
	require.NoError(t, err)

	snapshot[0].GuestName = "mutated"

	fresh, err := db.Bookings(ctx)
	require.NoError(t, err)
	require.Empty(t, fresh[0].GuestName)
}
