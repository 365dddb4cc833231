package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/hoteldesk/reservation/internal/booking"
	"github.com/hoteldesk/reservation/internal/logger"
)

type Config struct {
	L *logger.Logger
}

// DB holds the room catalog and the booking ledger. The catalog is written
// once by the startup migration and read-only afterwards; the ledger keeps
// live bookings in insertion order. One mutex guards both, and every read
// returns copied values, so callers never hold references into guarded state.
type DB struct {
	mu       sync.Mutex
	l        *logger.Logger
	rooms    []booking.Room
	roomByID map[int]booking.Room
	bookings []booking.Booking
}

func New(conf Config) *DB {
	//nolint:exhaustruct
	return &DB{
		l:        conf.L,
		roomByID: make(map[int]booking.Room),
	}
}

func (db *DB) SaveRooms(_ context.Context, rooms []booking.Room) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, room := range rooms {
		if _, exists := db.roomByID[room.ID]; exists {
			return fmt.Errorf("room %d: %w", room.ID, ErrDuplicateRoom)
		}
	}

	for _, room := range rooms {
		db.roomByID[room.ID] = room
		db.rooms = append(db.rooms, room)
	}

	return nil
}

func (db *DB) Rooms(_ context.Context) ([]booking.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rooms := make([]booking.Room, len(db.rooms))
	copy(rooms, db.rooms)

	return rooms, nil
}

func (db *DB) RoomByID(_ context.Context, id int) (booking.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	room, exists := db.roomByID[id]
	if !exists {
		return booking.Room{}, fmt.Errorf("room %d: %w", id, booking.ErrRecordNotFound)
	}

	return room, nil
}

func (db *DB) RoomsByCategory(_ context.Context, category booking.Category) ([]booking.Room, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	rooms := make([]booking.Room, 0, len(db.rooms))

	for _, room := range db.rooms {
		if room.Category == category {
			rooms = append(rooms, room)
		}
	}

	return rooms, nil
}

func (db *DB) SaveBooking(_ context.Context, b booking.Booking) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, existing := range db.bookings {
		if existing.ID == b.ID {
			return fmt.Errorf("booking %d: %w", b.ID, ErrDuplicateBooking)
		}
	}

	db.bookings = append(db.bookings, b)

	return nil
}

func (db *DB) DeleteBooking(_ context.Context, id int) (bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for i, b := range db.bookings {
		if b.ID == id {
			db.bookings = append(db.bookings[:i], db.bookings[i+1:]...)

			return true, nil
		}
	}

	return false, nil
}

func (db *DB) Bookings(_ context.Context) ([]booking.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	bookings := make([]booking.Booking, len(db.bookings))
	copy(bookings, db.bookings)

	return bookings, nil
}

func (db *DB) BookingByID(_ context.Context, id int) (booking.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	for _, b := range db.bookings {
		if b.ID == id {
			return b, nil
		}
	}

	return booking.Booking{}, fmt.Errorf("booking %d: %w", id, booking.ErrRecordNotFound)
}

func (db *DB) BookingsByRoom(_ context.Context, roomID int) ([]booking.Booking, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	var bookings []booking.Booking

	for _, b := range db.bookings {
		if b.RoomID == roomID {
			bookings = append(bookings, b)
		}
	}

	return bookings, nil
}
