package services

import (
	"context"
	"time"

	"petstay/constants"
	"petstay/dto"
	"petstay/errors"
	"petstay/models"
)

// allocateReservationPets partitions the (pet, room type) pairs by room
// category and assigns each pet a room. Private rooms fill two pets at a
// time in input order; every shared-bucket pet resolves its own room.
// Result order is cat bucket, then dog, then shared.
func allocateReservationPets(ctx context.Context, store DataStore, reservationID string, petRooms []dto.PetRoomRequest, checkin, checkout time.Time) ([]models.ReservationPet, error) {
	var catRooms, dogRooms, sharedRooms []dto.PetRoomRequest

	for _, pr := range petRooms {
		roomType, err := store.RoomTypeByID(ctx, pr.RoomTypeID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Room type not found", errors.ErrRoomTypeNotFound)
		}
		switch roomType.Category {
		case constants.RoomCategoryCatPrivate:
			catRooms = append(catRooms, pr)
		case constants.RoomCategoryDogPrivate:
			dogRooms = append(dogRooms, pr)
		case constants.RoomCategoryShared:
			sharedRooms = append(sharedRooms, pr)
		}
	}

	var allPets []models.ReservationPet

	allPets, err := allocatePrivateBucket(ctx, store, reservationID, catRooms, checkin, checkout, allPets)
	if err != nil {
		return nil, err
	}

	allPets, err = allocatePrivateBucket(ctx, store, reservationID, dogRooms, checkin, checkout, allPets)
	if err != nil {
		return nil, err
	}

	for _, pr := range sharedRooms {
		pet, err := store.PetByID(ctx, pr.PetID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Pet not found", errors.ErrPetNotFound)
		}

		room, err := findAvailableRoom(ctx, store, checkin, checkout, pr.RoomTypeID, allPets)
		if err != nil {
			return nil, err
		}

		rp := models.ReservationPet{
			ReservationID: reservationID,
			PetID:         pet.ID,
			RoomID:        room.ID,
		}
		if err := store.CreateReservationPet(ctx, &rp); err != nil {
			return nil, err
		}
		allPets = append(allPets, rp)
	}

	return allPets, nil
}

// allocatePrivateBucket processes one private bucket with a running
// occupancy counter. A fresh room is resolved at the first pet and each
// time the current room reaches the private cap.
func allocatePrivateBucket(ctx context.Context, store DataStore, reservationID string, petRooms []dto.PetRoomRequest, checkin, checkout time.Time, allPets []models.ReservationPet) ([]models.ReservationPet, error) {
	petsInTheRoom := 0
	var currentRoom *models.Room

	for i, pr := range petRooms {
		pet, err := store.PetByID(ctx, pr.PetID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Pet not found", errors.ErrPetNotFound)
		}

		if petsInTheRoom == constants.PrivateRoomMaxOccupancy || i == 0 {
			currentRoom, err = findAvailableRoom(ctx, store, checkin, checkout, pr.RoomTypeID, allPets)
			if err != nil {
				return nil, err
			}
			petsInTheRoom = 0
		}
		petsInTheRoom++

		rp := models.ReservationPet{
			ReservationID: reservationID,
			PetID:         pet.ID,
			RoomID:        currentRoom.ID,
		}
		if err := store.CreateReservationPet(ctx, &rp); err != nil {
			return nil, err
		}
		allPets = append(allPets, rp)
	}

	return allPets, nil
}
