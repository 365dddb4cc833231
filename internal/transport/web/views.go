package web

import "github.com/hoteldesk/reservation/internal/booking"

type RoomView struct {
	ID            int     `json:"id"`
	Category      string  `json:"category"`
	PricePerNight float64 `json:"price_per_night"`
	Description   string  `json:"description"`
}

type BookingView struct {
	ID            int     `json:"id"`
	ReferenceCode string  `json:"reference_code"`
	RoomID        int     `json:"room_id"`
	GuestName     string  `json:"guest_name"`
	CheckIn       string  `json:"check_in"`
	CheckOut      string  `json:"check_out"`
	Nights        int     `json:"nights"`
	Amount        float64 `json:"amount"`
	Paid          bool    `json:"paid"`
}

func newRoomViews(rooms []booking.Room) []RoomView {
	views := make([]RoomView, 0, len(rooms))

	for _, room := range rooms {
		views = append(views, RoomView{
			ID:            room.ID,
			Category:      string(room.Category),
			PricePerNight: room.PricePerNight,
			Description:   room.Description,
		})
	}

	return views
}

func newBookingView(b booking.Booking) BookingView {
	return BookingView{
		ID:            b.ID,
		ReferenceCode: b.ReferenceCode,
		RoomID:        b.RoomID,
		GuestName:     b.GuestName,
		CheckIn:       b.CheckIn.Format(booking.DateLayout),
		CheckOut:      b.CheckOut.Format(booking.DateLayout),
		Nights:        b.Nights,
		Amount:        b.Amount,
		Paid:          b.Paid,
	}
}

func newBookingViews(bookings []booking.Booking) []BookingView {
	views := make([]BookingView, 0, len(bookings))

	for _, b := range bookings {
		views = append(views, newBookingView(b))
	}

	return views
}
