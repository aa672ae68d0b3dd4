package repository

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/model"
)

const reservationsTable = "reservations"

type ReservationRepository struct {
	db Querier
}

func NewReservationRepository(db Querier) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetAllReservations returns up to limit reservations made by guestID,
// each joined to the property booked. No reservations is an empty slice.
func (r *ReservationRepository) GetAllReservations(ctx context.Context, guestID, limit int) ([]model.ReservationWithProperty, error) {
	stmt := `
SELECT reservations.id, reservations.start_date, reservations.end_date,
  reservations.property_id, reservations.guest_id,
  ` + propertyColumns + `
FROM reservations
JOIN properties ON reservations.property_id = properties.id
WHERE reservations.guest_id = $1
ORDER BY reservations.start_date
LIMIT $2`

	rows, err := r.db.Query(ctx, stmt, guestID, effectiveLimit(limit))
	if err != nil {
		return nil, wrapErr(reservationsTable, "list reservations", err)
	}
	defer rows.Close()

	reservations := []model.ReservationWithProperty{}
	for rows.Next() {
		var res model.ReservationWithProperty
		targets := append([]any{
			&res.ID,
			&res.StartDate,
			&res.EndDate,
			&res.PropertyID,
			&res.GuestID,
		}, propertyScanTargets(&res.Property)...)

		if err := rows.Scan(targets...); err != nil {
			return nil, wrapErr(reservationsTable, "scan reservation", err)
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(reservationsTable, "list reservations", err)
	}
	return reservations, nil
}
