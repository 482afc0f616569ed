package dto

import "time"

// PetRoomRequest pairs a pet with the room type it should stay in.
type PetRoomRequest struct {
	PetID      string `json:"pet_id" binding:"required"`
	RoomTypeID uint   `json:"room_type_id" binding:"required"`
}

// ServiceLineRequest attaches an add-on service with a quantity.
type ServiceLineRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
	Amount    int  `json:"amount" binding:"required"`
}

type CreateReservationRequest struct {
	Checkin  string               `json:"checkin" binding:"required"`
	Checkout string               `json:"checkout" binding:"required"`
	Status   string               `json:"status"`
	PetRooms []PetRoomRequest     `json:"pet_rooms" binding:"required"`
	Services []ServiceLineRequest `json:"services"`
}

// PetRoomResponse echoes a pet assignment with resolved names.
type PetRoomResponse struct {
	Pet        string `json:"pet"`
	PetID      string `json:"pet_id"`
	RoomID     uint   `json:"room_id"`
	RoomTypeID uint   `json:"room_type_id"`
}

type ServiceLineResponse struct {
	Service string `json:"service"`
	Amount  int    `json:"amount"`
}

type ReservationResponse struct {
	ID        string                `json:"id"`
	UserID    uint                  `json:"userId"`
	Checkin   string                `json:"checkin"`
	Checkout  string                `json:"checkout"`
	Status    string                `json:"status"`
	CreatedAt time.Time             `json:"createdAt"`
	UpdatedAt time.Time             `json:"updatedAt"`
	PetRooms  []PetRoomResponse     `json:"pet_rooms"`
	Services  []ServiceLineResponse `json:"services"`
}
