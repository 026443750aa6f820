package booking

import (
	"context"
	"fmt"
	"time"
)

// CreateBooking inserts a new row and returns it fully materialized.
// The id comes back from the store; created_at is the caller's clock,
// not a database default.
func (a *Accessor) CreateBooking(ctx context.Context, b Booking, now time.Time) (*Booking, error) {
	query := `INSERT INTO bookings (title, description, date, time, phone_number, email, user_id, created_at) VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`
	row := a.db.QueryRowContext(ctx, query,
		b.Title, b.Description, b.Date, b.Time, b.PhoneNumber, b.Email, b.UserID, now)
	if err := row.Scan(&b.ID); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	b.CreatedAt = now
	return &b, nil
}

// UpdateBooking overwrites the mutable fields of the row matching id.
// id, user_id and created_at are never touched. A missing id is a no-op,
// not an error.
func (a *Accessor) UpdateBooking(ctx context.Context, id int64, b Booking) error {
	query := `UPDATE bookings SET title = $1, description = $2, date = $3, time = $4, phone_number = $5, email = $6 WHERE id = $7`
	if _, err := a.db.ExecContext(ctx, query,
		b.Title, b.Description, b.Date, b.Time, b.PhoneNumber, b.Email, id); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}

// DeleteBooking removes zero or one row. Deleting an absent id succeeds.
func (a *Accessor) DeleteBooking(ctx context.Context, id int64) error {
	query := `DELETE FROM bookings WHERE id = $1`
	if _, err := a.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("exec context: %w", err)
	}
	return nil
}

// ListByUser returns every booking owned by userID. Row order follows the
// store's default; callers must not rely on it. An empty result is not an
// error.
func (a *Accessor) ListByUser(ctx context.Context, userID int64) ([]Booking, error) {
	var bookings []Booking

	query := `SELECT id, title, description, date, time, phone_number, email, user_id, created_at FROM bookings WHERE user_id = $1`
	rows, err := a.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query context: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var b Booking
		if err := rows.Scan(&b.ID, &b.Title, &b.Description, &b.Date, &b.Time,
			&b.PhoneNumber, &b.Email, &b.UserID, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		bookings = append(bookings, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}

	return bookings, nil
}
