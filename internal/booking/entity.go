package booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the calendar-date wire format. Check-in and check-out carry no
// time-of-day component.
const DateLayout = "2006-01-02"

type Category string

const (
	CategoryStandard Category = "STANDARD"
	CategoryDeluxe   Category = "DELUXE"
	CategorySuite    Category = "SUITE"
)

// ParseCategory matches the category text case-insensitively against the
// closed enumeration.
func ParseCategory(s string) (Category, bool) {
	switch c := Category(strings.ToUpper(strings.TrimSpace(s))); c {
	case CategoryStandard, CategoryDeluxe, CategorySuite:
		return c, true
	}

	return "", false
}

type Room struct {
	ID            int
	Category      Category
	PricePerNight float64
	Description   string
}

type Booking struct {
	ID            int
	ReferenceCode string
	RoomID        int
	GuestName     string
	CheckIn       time.Time
	CheckOut      time.Time
	Nights        int
	Amount        float64
	Paid          bool
	CreatedAt     time.Time
}

// Details renders a one-line summary for logs and plain-text listings.
func (b *Booking) Details() string {
	return fmt.Sprintf(
		"Booking ID: %d | Ref: %s | Guest: %s | Room: %d | Check-in: %s | Check-out: %s | Nights: %d | Paid: %t | Amount: %.2f",
		b.ID,
		b.ReferenceCode,
		b.GuestName,
		b.RoomID,
		b.CheckIn.Format(DateLayout),
		b.CheckOut.Format(DateLayout),
		b.Nights,
		b.Paid,
		b.Amount,
	)
}

type BookInput struct {
	GuestName string
	CheckIn   time.Time
	CheckOut  time.Time
	Category  string
	RoomID    int
}

func newReferenceCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")

	return strings.ToUpper(raw[:10])
}
