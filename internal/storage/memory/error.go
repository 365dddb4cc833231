package memory

import "errors"

var (
	ErrDuplicateRoom    = errors.New("room id already exists in catalog")
	ErrDuplicateBooking = errors.New("booking id already exists in ledger")
)
