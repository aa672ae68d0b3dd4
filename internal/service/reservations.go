package service

import (
	"context"

	"github.com/deppfellow/lightbnb/internal/errs"
	"github.com/deppfellow/lightbnb/internal/model"
	"github.com/deppfellow/lightbnb/internal/sqlerr"
)

type reservationStore interface {
	GetAllReservations(ctx context.Context, guestID, limit int) ([]model.ReservationWithProperty, error)
}

type ReservationService struct {
	reservations reservationStore
}

func NewReservationService(reservations reservationStore) *ReservationService {
	return &ReservationService{reservations: reservations}
}

// ListForGuest returns up to limit reservations made by guestID, each with
// its property. limit <= 0 means the default of 10.
func (s *ReservationService) ListForGuest(ctx context.Context, guestID, limit int) ([]model.ReservationWithProperty, error) {
	if guestID <= 0 {
		return nil, errs.NewFieldValidationError("guest_id", "must be a positive id")
	}

	reservations, err := s.reservations.GetAllReservations(ctx, guestID, limit)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return reservations, nil
}
