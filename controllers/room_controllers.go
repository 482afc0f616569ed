package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"gorm.io/gorm"

	"petstay/config"
	"petstay/dto"
	"petstay/models"
	"petstay/repository"
	"petstay/response"
	"petstay/services"
	"petstay/services/logger"
	"petstay/services/notification"
)

type RoomController struct {
	service *services.ReservationService
}

func NewRoomController(db *gorm.DB, m *melody.Melody) *RoomController {
	svc := services.NewReservationService(services.ReservationServiceOptions{
		Store:    repository.NewGormStore(db),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})
	return &RoomController{service: svc}
}

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Preload("Rooms").Order("id").Find(&roomTypes).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomTypeResponses := make([]dto.RoomTypeResponse, 0, len(roomTypes))
	for _, rt := range roomTypes {
		roomTypeResponses = append(roomTypeResponses, dto.RoomTypeResponse{
			ID:           rt.ID,
			Title:        rt.Title,
			Category:     rt.Category,
			MaxOccupancy: rt.MaxOccupancy,
			Price:        rt.Price,
			RoomCount:    len(rt.Rooms),
		})
	}

	response.Success(c, roomTypeResponses)
}

func GetRooms(c *gin.Context) {
	var rooms []models.Room
	tx := config.DB.Order("id")
	if roomTypeID := c.Query("roomTypeId"); roomTypeID != "" {
		tx = tx.Where("room_type_id = ?", roomTypeID)
	}
	if err := tx.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, dto.RoomResponse{
			ID:         room.ID,
			RoomTypeID: room.RoomTypeID,
			Name:       room.Name,
		})
	}

	response.Success(c, roomResponses)
}

// GetRoomTypeBookedDates lists the dates on which every room of the
// type is taken.
func (rc *RoomController) GetRoomTypeBookedDates(c *gin.Context) {
	roomTypeID, err := strconv.ParseUint(c.Param("roomTypeId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "Invalid room type id")
		return
	}

	dates, err := rc.service.FullyBookedDates(c.Request.Context(), uint(roomTypeID))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	response.Success(c, dates)
}
