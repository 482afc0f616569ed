package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

// Service broadcasts messages to connected clients.
type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// ReservationMessageBuilder formats reservation lifecycle broadcasts.
type ReservationMessageBuilder struct {
	reservationID string
	petCount      int
	checkin       string
}

func NewReservationMessageBuilder(reservationID string, petCount int, checkin string) *ReservationMessageBuilder {
	return &ReservationMessageBuilder{
		reservationID: reservationID,
		petCount:      petCount,
		checkin:       checkin,
	}
}

func (b *ReservationMessageBuilder) Build() string {
	return fmt.Sprintf("Reservation %s created: %d pet(s) checking in on %s", b.reservationID, b.petCount, b.checkin)
}

func (b *ReservationMessageBuilder) BuildCancelled() string {
	return fmt.Sprintf("Reservation %s cancelled", b.reservationID)
}
