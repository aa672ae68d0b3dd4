package model

import "time"

// Reservation is a row of the reservations table.
type Reservation struct {
	ID         int       `db:"id" json:"id"`
	StartDate  time.Time `db:"start_date" json:"start_date"`
	EndDate    time.Time `db:"end_date" json:"end_date"`
	PropertyID int       `db:"property_id" json:"property_id"`
	GuestID    int       `db:"guest_id" json:"guest_id"`
}

// ReservationWithProperty is a guest's reservation joined to the property booked.
type ReservationWithProperty struct {
	Reservation
	Property Property `json:"property"`
}
