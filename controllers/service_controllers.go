package controllers

import (
	"github.com/gin-gonic/gin"

	"petstay/config"
	"petstay/dto"
	"petstay/models"
	"petstay/response"
	"petstay/validator"
)

func GetServices(c *gin.Context) {
	var boardingServices []models.Service
	if err := config.DB.Order("id").Find(&boardingServices).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, boardingServices)
}

func CreateService(c *gin.Context) {
	var request dto.CreateServiceRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	service := models.Service{
		Name:  request.Name,
		Price: request.Price,
	}

	if err := validator.ValidateService(&service); err != nil {
		handleServiceError(c, err)
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, service)
}
