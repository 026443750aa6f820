package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"booking-system/booking"
)

func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

func (a *API) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid booking ID"})
		return
	}

	bookingAccessor := booking.NewAccessor(a.db)
	if err := bookingAccessor.DeleteBooking(r.Context(), id); err != nil {
		a.internalError(w, "delete booking", err)
		return
	}

	// Deleting an absent id still succeeds
	a.JSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Booking deleted successfully",
	})
}

func (a *API) updateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid booking ID"})
		return
	}

	var payload booking.Booking
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	bookingAccessor := booking.NewAccessor(a.db)
	if err := bookingAccessor.UpdateBooking(r.Context(), id, payload); err != nil {
		a.internalError(w, "update booking", err)
		return
	}

	a.JSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"message": "Booking updated successfully",
	})
}

func (a *API) listBookingsByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := pathID(r, "user_id")
	if !ok {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid user ID"})
		return
	}

	bookingAccessor := booking.NewAccessor(a.db)
	bookings, err := bookingAccessor.ListByUser(r.Context(), userID)
	if err != nil {
		a.internalError(w, "list bookings", err)
		return
	}
	if len(bookings) == 0 {
		a.JSON(w, http.StatusNotFound, map[string]any{"error": "no bookings found for this user"})
		return
	}

	a.JSON(w, http.StatusOK, bookings)
}

func (a *API) createBooking(w http.ResponseWriter, r *http.Request) {
	var payload booking.Booking
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		a.JSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request body"})
		return
	}

	bookingAccessor := booking.NewAccessor(a.db)
	created, err := bookingAccessor.CreateBooking(r.Context(), payload, a.now().UTC())
	if err != nil {
		a.internalError(w, "create booking", err)
		return
	}

	a.JSON(w, http.StatusOK, map[string]any{
		"status":  "success",
		"data":    created,
		"message": "Booking created successfully",
	})
}
