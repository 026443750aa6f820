package booking

import "time"

// Booking is a reservation record owned by a user. Date and time are kept
// as strings because they are stored and transmitted verbatim; the contact
// fields are free text.
type Booking struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	PhoneNumber string    `json:"phone_number"`
	Email       string    `json:"email"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
