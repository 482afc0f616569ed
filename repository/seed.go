package repository

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"petstay/constants"
	"petstay/models"
)

// Migrate creates or updates the schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Pet{},
		&models.Service{},
		&models.RoomType{},
		&models.Room{},
		&models.Reservation{},
		&models.ReservationPet{},
		&models.ReservationService{},
	)
}

// SeedRooms provisions the fixed room pool on first boot. Rooms are
// never created during allocation, only picked from this pool.
func SeedRooms(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.RoomType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []struct {
		roomType models.RoomType
		rooms    int
		prefix   string
	}{
		{
			roomType: models.RoomType{
				Title:        "Private Cat Room",
				Category:     constants.RoomCategoryCatPrivate,
				MaxOccupancy: constants.PrivateRoomMaxOccupancy,
				Price:        80,
			},
			rooms:  10,
			prefix: "cat",
		},
		{
			roomType: models.RoomType{
				Title:        "Private Dog Room",
				Category:     constants.RoomCategoryDogPrivate,
				MaxOccupancy: constants.PrivateRoomMaxOccupancy,
				Price:        100,
			},
			rooms:  10,
			prefix: "dog",
		},
		{
			roomType: models.RoomType{
				Title:        "Shared Room",
				Category:     constants.RoomCategoryShared,
				MaxOccupancy: constants.SharedRoomMaxOccupancy,
				Price:        60,
			},
			rooms:  5,
			prefix: "shared",
		},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range seeds {
			roomType := seed.roomType
			if err := tx.Create(&roomType).Error; err != nil {
				return err
			}
			for i := 0; i < seed.rooms; i++ {
				room := models.Room{
					RoomTypeID: roomType.ID,
					Name:       fmt.Sprintf("%s-%03d", seed.prefix, 101+i),
				}
				if err := tx.Create(&room).Error; err != nil {
					return err
				}
			}
		}
		log.Println("Room pool seeded")
		return nil
	})
}
