package services

import (
	"context"

	"petstay/models"
)

// DataStore is the persistence surface the reservation core works
// against. The gorm implementation lives in the repository package;
// tests use an in-memory fake.
type DataStore interface {
	// Atomically runs fn inside one transaction. Reads made through
	// the store passed to fn see earlier writes of the same call.
	Atomically(ctx context.Context, fn func(DataStore) error) error

	PetByID(ctx context.Context, id string) (*models.Pet, error)
	RoomTypeByID(ctx context.Context, id uint) (*models.RoomType, error)
	RoomsByType(ctx context.Context, roomTypeID uint) ([]models.Room, error)
	ServiceByID(ctx context.Context, id uint) (*models.Service, error)

	// ActiveReservations returns all non-cancelled reservations with
	// their pet assignments loaded.
	ActiveReservations(ctx context.Context) ([]models.Reservation, error)

	ReservationByID(ctx context.Context, id string) (*models.Reservation, error)
	ReservationsForUser(ctx context.Context, userID uint) ([]models.Reservation, error)
	AllReservations(ctx context.Context) ([]models.Reservation, error)

	CreateReservation(ctx context.Context, r *models.Reservation) error
	CreateReservationPet(ctx context.Context, rp *models.ReservationPet) error
	CreateReservationService(ctx context.Context, rs *models.ReservationService) error
	UpdateReservationStatus(ctx context.Context, id, status string) error
}
