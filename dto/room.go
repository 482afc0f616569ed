package dto

type RoomTypeResponse struct {
	ID           uint   `json:"id"`
	Title        string `json:"title"`
	Category     int    `json:"category"`
	MaxOccupancy int    `json:"maxOccupancy"`
	Price        int    `json:"price"`
	RoomCount    int    `json:"roomCount"`
}

type RoomResponse struct {
	ID         uint   `json:"id"`
	RoomTypeID uint   `json:"roomTypeId"`
	Name       string `json:"name"`
}

type CreateServiceRequest struct {
	Name  string `json:"name" binding:"required"`
	Price int    `json:"price"`
}
