package dto

import "time"

type CreatePetRequest struct {
	Name         string   `json:"name" binding:"required"`
	Type         string   `json:"type" binding:"required"`
	Vaccinations []string `json:"vaccinations"`
	Avatar       string   `json:"avatar"`
}

type PetResponse struct {
	ID           string    `json:"id"`
	UserID       uint      `json:"userId"`
	Name         string    `json:"name"`
	Type         string    `json:"type"`
	Vaccinations []string  `json:"vaccinations"`
	Avatar       string    `json:"avatar"`
	CreatedAt    time.Time `json:"createdAt"`
}
