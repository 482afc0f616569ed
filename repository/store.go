package repository

import (
	"context"

	"gorm.io/gorm"

	"petstay/constants"
	"petstay/models"
	"petstay/services"
)

// GormStore implements services.DataStore on top of gorm.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Atomically(ctx context.Context, fn func(services.DataStore) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) PetByID(ctx context.Context, id string) (*models.Pet, error) {
	var pet models.Pet
	if err := s.db.WithContext(ctx).First(&pet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pet, nil
}

func (s *GormStore) RoomTypeByID(ctx context.Context, id uint) (*models.RoomType, error) {
	var roomType models.RoomType
	if err := s.db.WithContext(ctx).First(&roomType, id).Error; err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (s *GormStore) RoomsByType(ctx context.Context, roomTypeID uint) ([]models.Room, error) {
	var rooms []models.Room
	if err := s.db.WithContext(ctx).Where("room_type_id = ?", roomTypeID).Order("id").Find(&rooms).Error; err != nil {
		return nil, err
	}
	return rooms, nil
}

func (s *GormStore) ServiceByID(ctx context.Context, id uint) (*models.Service, error) {
	var service models.Service
	if err := s.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (s *GormStore) ActiveReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("ReservationPets").
		Where("status <> ?", constants.ReservationStatusCancelled).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) ReservationByID(ctx context.Context, id string) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.WithContext(ctx).
		Preload("ReservationPets").
		First(&reservation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

func (s *GormStore) ReservationsForUser(ctx context.Context, userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("ReservationPets.Pet").
		Preload("ReservationPets.Room").
		Preload("ReservationServices.Service").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) AllReservations(ctx context.Context) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := s.db.WithContext(ctx).
		Preload("ReservationPets.Pet").
		Preload("ReservationPets.Room").
		Preload("ReservationServices.Service").
		Order("created_at DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *GormStore) CreateReservation(ctx context.Context, r *models.Reservation) error {
	return s.db.WithContext(ctx).Create(r).Error
}

func (s *GormStore) CreateReservationPet(ctx context.Context, rp *models.ReservationPet) error {
	return s.db.WithContext(ctx).Create(rp).Error
}

func (s *GormStore) CreateReservationService(ctx context.Context, rs *models.ReservationService) error {
	return s.db.WithContext(ctx).Create(rs).Error
}

func (s *GormStore) UpdateReservationStatus(ctx context.Context, id, status string) error {
	return s.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ?", id).
		Update("status", status).Error
}
