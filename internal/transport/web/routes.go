package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/hoteldesk/reservation/internal/booking"
)

type bookRequest struct {
	GuestName string `json:"guest_name"`
	CheckIn   string `json:"check_in"`
	CheckOut  string `json:"check_out"`
	Category  string `json:"category"`
	RoomID    int    `json:"room_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.l.LogErrorf("Could not encode response: %v", err.Error())
	}
}

// writeEngineError maps the engine's error taxonomy onto HTTP statuses.
// Every kind is an expected, recoverable condition except the 500 fallback.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	if inputErr := booking.IsInputError(err); inputErr != nil {
		s.writeJSON(w, http.StatusBadRequest, inputErr.Fields())

		return
	}

	switch {
	case errors.Is(err, booking.ErrInvalidDateRange):
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, booking.ErrNoRoomsAvailable):
		s.writeJSON(w, http.StatusPreconditionFailed, errorResponse{Error: err.Error()})
	case errors.Is(err, booking.ErrInvalidSelection):
		s.writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case errors.Is(err, booking.ErrBookingNotFound):
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	default:
		s.l.LogErrorf("Unexpected engine error: %v", err.Error())
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func parseDateParam(value string) (time.Time, error) {
	t, err := time.Parse(booking.DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", value, err)
	}

	return t, nil
}

func (s *Server) searchRoomsHandler(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	rooms, err := s.bManager.SearchRooms(r.Context(), category)
	if err != nil {
		s.writeEngineError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newRoomViews(rooms))
}

func (s *Server) availableRoomsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	checkIn, err := parseDateParam(q.Get("check_in"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "check_in must be a YYYY-MM-DD date"})

		return
	}

	checkOut, err := parseDateParam(q.Get("check_out"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "check_out must be a YYYY-MM-DD date"})

		return
	}

	rooms, err := s.bManager.AvailableRooms(r.Context(), q.Get("category"), checkIn, checkOut)
	if err != nil {
		s.writeEngineError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newRoomViews(rooms))
}

func (s *Server) createBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req bookRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})

		return
	}

	checkIn, err := parseDateParam(req.CheckIn)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "check_in must be a YYYY-MM-DD date"})

		return
	}

	checkOut, err := parseDateParam(req.CheckOut)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "check_out must be a YYYY-MM-DD date"})

		return
	}

	input := booking.BookInput{
		GuestName: req.GuestName,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Category:  req.Category,
		RoomID:    req.RoomID,
	}

	b, err := s.bManager.Book(r.Context(), &input)
	if err != nil {
		s.writeEngineError(w, err)

		return
	}

	s.writeJSON(w, http.StatusCreated, newBookingView(b))
}

func (s *Server) cancelBookingHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "booking id must be an integer"})

		return
	}

	b, err := s.bManager.Cancel(r.Context(), id)
	if err != nil {
		s.writeEngineError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newBookingView(b))
}

func (s *Server) listBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.bManager.ListBookings(r.Context())
	if err != nil {
		s.writeEngineError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, newBookingViews(bookings))
}

func (s *Server) livenessHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) addRoutes(r *http.ServeMux) {
	r.Handle(
		"GET /api/rooms/v1",
		s.applyMiddlewares(http.HandlerFunc(s.searchRoomsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/rooms/v1/available",
		s.applyMiddlewares(http.HandlerFunc(s.availableRoomsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"POST /api/bookings/v1",
		s.applyMiddlewares(http.HandlerFunc(s.createBookingHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"GET /api/bookings/v1",
		s.applyMiddlewares(http.HandlerFunc(s.listBookingsHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		"DELETE /api/bookings/v1/{id}",
		s.applyMiddlewares(http.HandlerFunc(s.cancelBookingHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
	r.Handle(
		fmt.Sprintf("GET %s", s.conf.LivenessEndpoint),
		s.applyMiddlewares(http.HandlerFunc(s.livenessHandler), s.loggerMiddleware(), s.recoverMiddleware()),
	)
}
