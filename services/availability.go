package services

import (
	"context"
	"fmt"
	"time"

	"petstay/errors"
	"petstay/models"
)

// findAvailableRoom picks the first room of the given type with no
// conflicting occupant. A room conflicts when any pet of a non-cancelled
// reservation occupies it in an overlapping window, or when the current
// batch has already claimed it. Rooms are a fixed pool; none are created
// here and nothing is locked.
func findAvailableRoom(ctx context.Context, store DataStore, checkin, checkout time.Time, roomTypeID uint, assigned []models.ReservationPet) (*models.Room, error) {
	rooms, err := store.RoomsByType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}

	reservations, err := store.ActiveReservations(ctx)
	if err != nil {
		return nil, err
	}

	taken := make(map[uint]bool, len(assigned))
	for _, rp := range assigned {
		taken[rp.RoomID] = true
	}

	for i := range rooms {
		room := &rooms[i]
		if taken[room.ID] {
			continue
		}
		if roomHasConflict(room.ID, checkin, checkout, reservations) {
			continue
		}
		return room, nil
	}

	return nil, errors.NewAppError(errors.ErrCodeRoomUnavailable,
		fmt.Sprintf("No room of type %d available between %s and %s",
			roomTypeID, checkin.Format(dateLayout), checkout.Format(dateLayout)),
		errors.ErrRoomUnavailable)
}

func roomHasConflict(roomID uint, checkin, checkout time.Time, reservations []models.Reservation) bool {
	for _, reservation := range reservations {
		if !AreDatesConflicting(checkin, checkout, reservation.Checkin, reservation.Checkout) {
			continue
		}
		for _, rp := range reservation.ReservationPets {
			if rp.RoomID == roomID {
				return true
			}
		}
	}
	return false
}
