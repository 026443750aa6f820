package api

import (
	"database/sql"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

type API struct {
	router *mux.Router
	db     *sql.DB
	secret string
	now    func() time.Time
}

func NewAPI(db *sql.DB, secret string) *API {
	return &API{
		router: mux.NewRouter(),
		db:     db,
		secret: secret,
		now:    time.Now,
	}
}

// Router exposes the mux for tests.
func (a *API) Router() *mux.Router {
	return a.router
}

func (a *API) Handler() http.Handler {
	// Tag every request, then log it with Gorilla's built-in logging handler
	return handlers.LoggingHandler(os.Stdout, RequestID(a.router))
}

// JSON writes v as the response body with the given status.
func (a *API) JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// internalError logs the underlying cause and sends a sanitized 500 body.
func (a *API) internalError(w http.ResponseWriter, op string, err error) {
	log.Printf("%s: %v", op, err)
	a.JSON(w, http.StatusInternalServerError, map[string]any{"error": "internal server error"})
}

func (a *API) RegisterRoutes() {
	a.router.HandleFunc("/", a.health).Methods(http.MethodGet)

	a.router.HandleFunc("/bookings/user/{user_id}", a.listBookingsByUser).Methods(http.MethodGet)
	a.router.HandleFunc("/bookings/{id}", a.deleteBooking).Methods(http.MethodDelete)
	a.router.HandleFunc("/bookings/{id}", a.updateBooking).Methods(http.MethodPut)
	a.router.HandleFunc("/bookings", a.createBooking).Methods(http.MethodPost)

	a.router.HandleFunc("/signup", a.signup).Methods(http.MethodPost)
	a.router.HandleFunc("/login", a.login).Methods(http.MethodPost)
	a.router.Handle("/me", a.RequireAuth(http.HandlerFunc(a.me))).Methods(http.MethodGet)
}
