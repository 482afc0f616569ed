package services

import (
	"fmt"
	"time"

	"github.com/olahol/melody"

	"petstay/config"
	"petstay/constants"
	"petstay/models"
	"petstay/services/notification"
)

// CheckinService announces the reservations checking in today over the
// websocket. Used by the daily cron job.
type CheckinService struct{}

func NewCheckinService() *CheckinService {
	return &CheckinService{}
}

func (s *CheckinService) BroadcastTodayCheckins(m *melody.Melody) error {
	today := time.Now().UTC().Format(dateLayout)

	var reservations []models.Reservation
	err := config.DB.
		Preload("ReservationPets").
		Where("checkin = ? AND status <> ?", today, constants.ReservationStatusCancelled).
		Find(&reservations).Error
	if err != nil {
		return fmt.Errorf("failed to load today's check-ins: %w", err)
	}

	if len(reservations) == 0 {
		return nil
	}

	pets := 0
	for _, reservation := range reservations {
		pets += len(reservation.ReservationPets)
	}

	msg := fmt.Sprintf("Today: %d reservation(s) checking in, %d pet(s) arriving", len(reservations), pets)
	return notification.NewMelodyService(m).SendMessage(msg)
}
