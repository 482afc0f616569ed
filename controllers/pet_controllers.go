package controllers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"petstay/config"
	"petstay/constants"
	"petstay/dto"
	"petstay/models"
	"petstay/response"
	"petstay/validator"
)

func convertToPetResponse(pet models.Pet) dto.PetResponse {
	return dto.PetResponse{
		ID:           pet.ID,
		UserID:       pet.UserID,
		Name:         pet.Name,
		Type:         pet.Type,
		Vaccinations: pet.Vaccinations,
		Avatar:       pet.Avatar,
		CreatedAt:    pet.CreatedAt,
	}
}

func CreatePet(c *gin.Context) {
	currentUserID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var request dto.CreatePetRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	pet := models.Pet{
		ID:           uuid.NewString(),
		UserID:       currentUserID,
		Name:         request.Name,
		Type:         request.Type,
		Vaccinations: request.Vaccinations,
		Avatar:       request.Avatar,
	}

	if err := validator.ValidatePet(&pet); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Create(&pet).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertToPetResponse(pet))
}

func GetPets(c *gin.Context) {
	currentUserID, currentUserRole, ok := currentUser(c)
	if !ok {
		return
	}

	var pets []models.Pet
	tx := config.DB.Order("created_at")
	if currentUserRole != constants.RoleAdmin {
		tx = tx.Where("user_id = ?", currentUserID)
	}
	if err := tx.Find(&pets).Error; err != nil {
		response.ServerError(c)
		return
	}

	petResponses := make([]dto.PetResponse, 0, len(pets))
	for _, pet := range pets {
		petResponses = append(petResponses, convertToPetResponse(pet))
	}

	response.Success(c, petResponses)
}

func GetPetDetail(c *gin.Context) {
	currentUserID, currentUserRole, ok := currentUser(c)
	if !ok {
		return
	}

	var pet models.Pet
	if err := config.DB.First(&pet, "id = ?", c.Param("id")).Error; err != nil {
		response.NotFound(c)
		return
	}

	if currentUserRole != constants.RoleAdmin && pet.UserID != currentUserID {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertToPetResponse(pet))
}
