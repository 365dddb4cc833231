package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/hoteldesk/reservation/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (int, error)
}

type storageReader interface {
	RoomsByCategory(ctx context.Context, category Category) ([]Room, error)
	Bookings(ctx context.Context) ([]Booking, error)
	BookingByID(ctx context.Context, id int) (Booking, error)
	BookingsByRoom(ctx context.Context, roomID int) ([]Booking, error)
}

type storageWriter interface {
	SaveBooking(ctx context.Context, b Booking) error
	DeleteBooking(ctx context.Context, id int) (bool, error)
}

type storage interface {
	storageReader
	storageWriter
}

// Manager is the booking engine. All invariants of the ledger are enforced
// here: availability is checked against live bookings of the same room, ids
// are issued exactly once per created booking, and the check-then-append
// sequence of Book runs under bookMu so no two concurrent calls can commit
// overlapping bookings for one room.
type Manager struct {
	l       *logger.Logger
	storage storage
	idGen   idGenerator

	bookMu sync.Mutex
}

func New(l *logger.Logger, storage storage, idGenerator idGenerator) *Manager {
	return &Manager{
		l:       l,
		storage: storage,
		idGen:   idGenerator,
	}
}

// validate normalizes the dates to whole calendar days and then checks the
// input. Normalization runs first so a range that collapses to zero nights
// fails as an invalid range instead of slipping into the ledger.
func (in *BookInput) validate() (Category, error) {
	in.CheckIn = toDate(in.CheckIn)
	in.CheckOut = toDate(in.CheckOut)

	inputErr := newInputError()

	if strings.TrimSpace(in.GuestName) == "" {
		inputErr.addError("guest_name", "provide guest name")
	}

	category, ok := ParseCategory(in.Category)
	if !ok {
		inputErr.addError("category", fmt.Sprintf("unknown category %q", in.Category))
	}

	if inputErr.fieldsCount() > 0 {
		return "", inputErr
	}

	if !in.CheckOut.After(in.CheckIn) {
		return "", ErrInvalidDateRange
	}

	return category, nil
}

func toDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// overlaps reports whether the half-open date ranges [aFrom, aTo) and
// [bFrom, bTo) share at least one night. Ranges touching at a boundary do
// not overlap, so one guest may check in the day another checks out.
func overlaps(aFrom, aTo, bFrom, bTo time.Time) bool {
	return aFrom.Before(bTo) && bFrom.Before(aTo)
}

func (m *Manager) roomAvailable(ctx context.Context, roomID int, checkIn, checkOut time.Time) (bool, error) {
	existing, err := m.storage.BookingsByRoom(ctx, roomID)
	if err != nil {
		return false, fmt.Errorf("get bookings for room %d from storage: %w", roomID, err)
	}

	for _, b := range existing {
		if overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return false, nil
		}
	}

	return true, nil
}

func (m *Manager) availableRooms(ctx context.Context, category Category, checkIn, checkOut time.Time) ([]Room, error) {
	rooms, err := m.storage.RoomsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("get rooms by category from storage: %w", err)
	}

	available := make([]Room, 0, len(rooms))

	for _, room := range rooms {
		free, err := m.roomAvailable(ctx, room.ID, checkIn, checkOut)
		if err != nil {
			return nil, err
		}

		if free {
			available = append(available, room)
		}
	}

	return available, nil
}

// SearchRooms returns every catalog room of the given category. An empty
// result is a normal outcome, not an error.
func (m *Manager) SearchRooms(ctx context.Context, category string) ([]Room, error) {
	cat, ok := ParseCategory(category)
	if !ok {
		inputErr := newInputError()
		inputErr.addError("category", fmt.Sprintf("unknown category %q", category))

		return nil, inputErr
	}

	rooms, err := m.storage.RoomsByCategory(ctx, cat)
	if err != nil {
		return nil, fmt.Errorf("get rooms by category from storage: %w", err)
	}

	return rooms, nil
}

// AvailableRooms returns the rooms of the category that are free for the
// whole half-open range [checkIn, checkOut). A busy room is silently left
// out; only invalid input produces an error.
func (m *Manager) AvailableRooms(ctx context.Context, category string, checkIn, checkOut time.Time) ([]Room, error) {
	cat, ok := ParseCategory(category)
	if !ok {
		inputErr := newInputError()
		inputErr.addError("category", fmt.Sprintf("unknown category %q", category))

		return nil, inputErr
	}

	checkIn, checkOut = toDate(checkIn), toDate(checkOut)

	if !checkOut.After(checkIn) {
		return nil, ErrInvalidDateRange
	}

	return m.availableRooms(ctx, cat, checkIn, checkOut)
}

// Book validates the request, checks availability of the chosen room, and
// appends the created booking to the ledger. Every validation failure is
// detected before any mutation, so a failed Book never leaves partial state.
func (m *Manager) Book(ctx context.Context, input *BookInput) (Booking, error) {
	category, err := input.validate()
	if err != nil {
		return Booking{}, err
	}

	m.bookMu.Lock()
	defer m.bookMu.Unlock()

	available, err := m.availableRooms(ctx, category, input.CheckIn, input.CheckOut)
	if err != nil {
		return Booking{}, fmt.Errorf("get available rooms: %w", err)
	}

	if len(available) == 0 {
		return Booking{}, ErrNoRoomsAvailable
	}

	var room Room

	found := false

	for _, r := range available {
		if r.ID == input.RoomID {
			room = r
			found = true

			break
		}
	}

	if !found {
		return Booking{}, fmt.Errorf("room %d: %w", input.RoomID, ErrInvalidSelection)
	}

	id, err := m.idGen.GetID(ctx)
	if err != nil {
		return Booking{}, ErrNextID
	}

	n := nights(input.CheckIn, input.CheckOut)

	b := Booking{
		ID:            id,
		ReferenceCode: newReferenceCode(),
		RoomID:        room.ID,
		GuestName:     strings.TrimSpace(input.GuestName),
		CheckIn:       input.CheckIn,
		CheckOut:      input.CheckOut,
		Nights:        n,
		Amount:        float64(n) * room.PricePerNight,
		Paid:          true,
		CreatedAt:     time.Now().UTC(),
	}

	if err := m.storage.SaveBooking(ctx, b); err != nil {
		return Booking{}, fmt.Errorf("save booking to storage: %w", err)
	}

	m.l.LogInfo("Booking created. %s", b.Details())

	return b, nil
}

// Cancel removes the booking from the ledger and returns its last snapshot.
func (m *Manager) Cancel(ctx context.Context, bookingID int) (Booking, error) {
	m.bookMu.Lock()
	defer m.bookMu.Unlock()

	b, err := m.storage.BookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return Booking{}, fmt.Errorf("booking %d: %w", bookingID, ErrBookingNotFound)
		}

		return Booking{}, fmt.Errorf("get booking %d from storage: %w", bookingID, err)
	}

	found, err := m.storage.DeleteBooking(ctx, bookingID)
	if err != nil {
		return Booking{}, fmt.Errorf("delete booking %d from storage: %w", bookingID, err)
	}

	if !found {
		return Booking{}, fmt.Errorf("booking %d: %w", bookingID, ErrBookingNotFound)
	}

	m.l.LogInfo("Booking cancelled. %s", b.Details())

	return b, nil
}

// ListBookings returns a snapshot of the ledger in insertion order.
func (m *Manager) ListBookings(ctx context.Context) ([]Booking, error) {
	bookings, err := m.storage.Bookings(ctx)
	if err != nil {
		return nil, fmt.Errorf("get bookings from storage: %w", err)
	}

	return bookings, nil
}
