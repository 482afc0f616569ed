package models

import (
	"time"

	"petstay/constants"
)

type Reservation struct {
	ID                  string               `gorm:"type:uuid;primaryKey" json:"id"`
	UserID              uint                 `gorm:"index" json:"userId"`
	User                *User                `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Checkin             time.Time            `gorm:"type:date" json:"checkin"`
	Checkout            time.Time            `gorm:"type:date" json:"checkout"`
	Status              string               `gorm:"type:varchar(20);default:pending" json:"status"`
	CreatedAt           time.Time            `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time            `gorm:"autoUpdateTime" json:"updatedAt"`
	ReservationPets     []ReservationPet     `json:"reservationPets" gorm:"foreignKey:ReservationID"`
	ReservationServices []ReservationService `json:"reservationServices" gorm:"foreignKey:ReservationID"`
}

// ReservationPet binds one pet to one room for the lifetime of a
// reservation. A pet appears at most once per reservation.
type ReservationPet struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReservationID string    `gorm:"type:uuid;index" json:"reservationId"`
	PetID         string    `gorm:"type:uuid;index" json:"petId"`
	Pet           *Pet      `json:"pet,omitempty" gorm:"foreignKey:PetID"`
	RoomID        uint      `gorm:"index" json:"roomId"`
	Room          *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

type ReservationService struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReservationID string    `gorm:"type:uuid;index" json:"reservationId"`
	ServiceID     uint      `gorm:"index" json:"serviceId"`
	Service       *Service  `json:"service,omitempty" gorm:"foreignKey:ServiceID"`
	Amount        int       `json:"amount"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// IsActive reports whether the reservation still counts toward
// availability and double-booking checks.
func (r *Reservation) IsActive() bool {
	return r.Status != constants.ReservationStatusCancelled
}
