package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"petstay/constants"
	"petstay/models"
)

func newPetID() string {
	return uuid.NewString()
}

// fakeStore is an in-memory DataStore for tests. Atomically snapshots
// the state and restores it when fn fails, so rollback behavior can be
// asserted.
type fakeStore struct {
	pets                map[string]models.Pet
	roomTypes           map[uint]models.RoomType
	rooms               []models.Room
	boardingServices    map[uint]models.Service
	reservations        map[string]models.Reservation
	reservationPets     []models.ReservationPet
	reservationServices []models.ReservationService
	nextID              uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		pets:             make(map[string]models.Pet),
		roomTypes:        make(map[uint]models.RoomType),
		boardingServices: make(map[uint]models.Service),
		reservations:     make(map[string]models.Reservation),
	}
}

func (f *fakeStore) addPet(id, name, petType string) {
	f.pets[id] = models.Pet{ID: id, Name: name, Type: petType}
}

func (f *fakeStore) addRoomType(id uint, title string, category, maxOccupancy int) {
	f.roomTypes[id] = models.RoomType{ID: id, Title: title, Category: category, MaxOccupancy: maxOccupancy}
}

func (f *fakeStore) addRooms(roomTypeID uint, count int) {
	for i := 0; i < count; i++ {
		f.nextID++
		f.rooms = append(f.rooms, models.Room{
			ID:         f.nextID,
			RoomTypeID: roomTypeID,
			Name:       fmt.Sprintf("room-%03d", f.nextID),
		})
	}
}

func (f *fakeStore) addService(id uint, name string) {
	f.boardingServices[id] = models.Service{ID: id, Name: name}
}

func (f *fakeStore) seedReservation(id string, userID uint, status string, checkin, checkout time.Time, petRooms map[string]uint) {
	f.reservations[id] = models.Reservation{
		ID:       id,
		UserID:   userID,
		Status:   status,
		Checkin:  checkin,
		Checkout: checkout,
	}
	for petID, roomID := range petRooms {
		f.nextID++
		f.reservationPets = append(f.reservationPets, models.ReservationPet{
			ID:            f.nextID,
			ReservationID: id,
			PetID:         petID,
			RoomID:        roomID,
		})
	}
}

func (f *fakeStore) snapshot() *fakeStore {
	s := newFakeStore()
	for k, v := range f.pets {
		s.pets[k] = v
	}
	for k, v := range f.roomTypes {
		s.roomTypes[k] = v
	}
	for k, v := range f.boardingServices {
		s.boardingServices[k] = v
	}
	for k, v := range f.reservations {
		s.reservations[k] = v
	}
	s.rooms = append([]models.Room(nil), f.rooms...)
	s.reservationPets = append([]models.ReservationPet(nil), f.reservationPets...)
	s.reservationServices = append([]models.ReservationService(nil), f.reservationServices...)
	s.nextID = f.nextID
	return s
}

func (f *fakeStore) restore(s *fakeStore) {
	f.pets = s.pets
	f.roomTypes = s.roomTypes
	f.boardingServices = s.boardingServices
	f.reservations = s.reservations
	f.rooms = s.rooms
	f.reservationPets = s.reservationPets
	f.reservationServices = s.reservationServices
	f.nextID = s.nextID
}

func (f *fakeStore) Atomically(ctx context.Context, fn func(DataStore) error) error {
	before := f.snapshot()
	if err := fn(f); err != nil {
		f.restore(before)
		return err
	}
	return nil
}

func (f *fakeStore) PetByID(ctx context.Context, id string) (*models.Pet, error) {
	pet, ok := f.pets[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &pet, nil
}

func (f *fakeStore) RoomTypeByID(ctx context.Context, id uint) (*models.RoomType, error) {
	roomType, ok := f.roomTypes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &roomType, nil
}

func (f *fakeStore) RoomsByType(ctx context.Context, roomTypeID uint) ([]models.Room, error) {
	var rooms []models.Room
	for _, room := range f.rooms {
		if room.RoomTypeID == roomTypeID {
			rooms = append(rooms, room)
		}
	}
	return rooms, nil
}

func (f *fakeStore) ServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	service, ok := f.boardingServices[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &service, nil
}

func (f *fakeStore) petsOf(reservationID string) []models.ReservationPet {
	var pets []models.ReservationPet
	for _, rp := range f.reservationPets {
		if rp.ReservationID == reservationID {
			pets = append(pets, rp)
		}
	}
	return pets
}

func (f *fakeStore) ActiveReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	for _, reservation := range f.reservations {
		if reservation.Status == constants.ReservationStatusCancelled {
			continue
		}
		reservation.ReservationPets = f.petsOf(reservation.ID)
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (f *fakeStore) ReservationByID(ctx context.Context, id string) (*models.Reservation, error) {
	reservation, ok := f.reservations[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	reservation.ReservationPets = f.petsOf(id)
	return &reservation, nil
}

func (f *fakeStore) ReservationsForUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	for _, reservation := range f.reservations {
		if reservation.UserID != userID {
			continue
		}
		reservation.ReservationPets = f.petsOf(reservation.ID)
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (f *fakeStore) AllReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	for _, reservation := range f.reservations {
		reservation.ReservationPets = f.petsOf(reservation.ID)
		reservations = append(reservations, reservation)
	}
	return reservations, nil
}

func (f *fakeStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	f.reservations[r.ID] = *r
	return nil
}

func (f *fakeStore) CreateReservationPet(ctx context.Context, rp *models.ReservationPet) error {
	f.nextID++
	rp.ID = f.nextID
	f.reservationPets = append(f.reservationPets, *rp)
	return nil
}

func (f *fakeStore) CreateReservationService(ctx context.Context, rs *models.ReservationService) error {
	f.nextID++
	rs.ID = f.nextID
	f.reservationServices = append(f.reservationServices, *rs)
	return nil
}

func (f *fakeStore) UpdateReservationStatus(ctx context.Context, id, status string) error {
	reservation, ok := f.reservations[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	reservation.Status = status
	f.reservations[id] = reservation
	return nil
}
