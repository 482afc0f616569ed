package controllers

import (
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"petstay/config"
	"petstay/constants"
	"petstay/dto"
	"petstay/repository"
	"petstay/response"
	"petstay/services"
	"petstay/services/logger"
	"petstay/services/notification"
)

type ReservationController struct {
	rdb     *redis.Client
	service *services.ReservationService
}

func NewReservationController(db *gorm.DB, rdb *redis.Client, m *melody.Melody) *ReservationController {
	svc := services.NewReservationService(services.ReservationServiceOptions{
		Store:    repository.NewGormStore(db),
		Logger:   logger.NewDefaultLogger(logger.InfoLevel),
		Notifier: notification.NewMelodyService(m),
	})
	return &ReservationController{
		rdb:     rdb,
		service: svc,
	}
}

func reservationCacheKey(userID uint, isAdmin bool) string {
	if isAdmin {
		return "reservations:all"
	}
	return fmt.Sprintf("reservations:user:%d", userID)
}

func (rc *ReservationController) invalidateCache(userIDs ...uint) {
	if rc.rdb == nil {
		return
	}
	keys := []string{"reservations:all"}
	seen := make(map[uint]bool, len(userIDs))
	for _, userID := range userIDs {
		if seen[userID] {
			continue
		}
		seen[userID] = true
		keys = append(keys, fmt.Sprintf("reservations:user:%d", userID))
	}
	for _, key := range keys {
		if err := services.DeleteFromRedis(config.Ctx, rc.rdb, key); err != nil {
			log.Printf("Failed to drop cache key %s: %v", key, err)
		}
	}
}

func (rc *ReservationController) CreateReservation(c *gin.Context) {
	currentUserID, _, ok := currentUser(c)
	if !ok {
		return
	}

	var request dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	reservation, err := rc.service.Create(c.Request.Context(), currentUserID, &request)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	rc.invalidateCache(currentUserID)

	response.Created(c, reservation)
}

func (rc *ReservationController) GetReservations(c *gin.Context) {
	currentUserID, currentUserRole, ok := currentUser(c)
	if !ok {
		return
	}
	isAdmin := currentUserRole == constants.RoleAdmin

	cacheKey := reservationCacheKey(currentUserID, isAdmin)

	var reservations []dto.ReservationResponse
	if rc.rdb != nil {
		if err := services.GetFromRedis(config.Ctx, rc.rdb, cacheKey, &reservations); err == nil && len(reservations) > 0 {
			response.Success(c, reservations)
			return
		}
	}

	reservations, err := rc.service.List(c.Request.Context(), currentUserID, isAdmin)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	if rc.rdb != nil {
		if err := services.SetToRedis(config.Ctx, rc.rdb, cacheKey, reservations, 10*time.Minute); err != nil {
			log.Printf("Failed to cache reservations: %v", err)
		}
	}

	response.Success(c, reservations)
}

func (rc *ReservationController) CancelReservation(c *gin.Context) {
	currentUserID, currentUserRole, ok := currentUser(c)
	if !ok {
		return
	}
	isAdmin := currentUserRole == constants.RoleAdmin

	reservationID := c.Param("id")
	if reservationID == "" {
		response.BadRequest(c, "Reservation id is required")
		return
	}

	ownerID, err := rc.service.Cancel(c.Request.Context(), reservationID, currentUserID, isAdmin)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// An admin may cancel someone else's reservation; both caches go.
	rc.invalidateCache(currentUserID, ownerID)

	response.NoContent(c)
}
