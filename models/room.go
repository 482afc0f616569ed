package models

import (
	"fmt"
	"time"

	"petstay/constants"
)

// RoomType is a category of room with its occupancy policy. The category
// enum drives compatibility and allocation; the title is display only.
type RoomType struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Title        string    `gorm:"unique" json:"title"`
	Category     int       `gorm:"index" json:"category"`
	MaxOccupancy int       `json:"maxOccupancy"`
	Price        int       `json:"price"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms        []Room    `json:"rooms,omitempty" gorm:"foreignKey:RoomTypeID"`
}

// Room is a physical instance of a RoomType. The pool is fixed: rooms are
// seeded up front and never created during allocation. Availability is
// derived from reservation_pets, never stored.
type Room struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	RoomTypeID uint      `gorm:"index" json:"roomTypeId"`
	Name       string    `json:"name"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (rt *RoomType) ValidateCategory() error {
	if rt.Category < constants.RoomCategoryCatPrivate || rt.Category > constants.RoomCategoryShared {
		return fmt.Errorf("invalid room category: %d, must be between %d and %d",
			rt.Category, constants.RoomCategoryCatPrivate, constants.RoomCategoryShared)
	}
	return nil
}
