package services

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"petstay/constants"
	"petstay/dto"
	"petstay/errors"
	"petstay/models"
	"petstay/services/logger"
	"petstay/services/notification"
	"petstay/validator"
)

// ReservationService owns the reservation lifecycle: validated creation
// with room allocation, listing, soft-cancel and availability reporting.
type ReservationService struct {
	store    DataStore
	logger   logger.Logger
	notifier notification.Service
}

type ReservationServiceOptions struct {
	Store    DataStore
	Logger   logger.Logger
	Notifier notification.Service
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	if opts.Logger == nil {
		opts.Logger = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		store:    opts.Store,
		logger:   opts.Logger,
		notifier: opts.Notifier,
	}
}

// Create validates the request, allocates rooms and persists the whole
// reservation in one transaction. A room shortage mid-allocation rolls
// everything back.
func (s *ReservationService) Create(ctx context.Context, userID uint, req *dto.CreateReservationRequest) (*dto.ReservationResponse, error) {
	checkin, checkout, err := validator.ValidateReservationRequest(req, time.Now())
	if err != nil {
		return nil, err
	}

	petNames, err := s.checkCompatibility(ctx, req.PetRooms)
	if err != nil {
		return nil, err
	}

	if err := s.checkPetsNotBooked(ctx, req.PetRooms, checkin, checkout); err != nil {
		return nil, err
	}

	serviceNames, err := s.resolveServices(ctx, req.Services)
	if err != nil {
		return nil, err
	}

	reservation := models.Reservation{
		ID:       uuid.NewString(),
		UserID:   userID,
		Checkin:  checkin,
		Checkout: checkout,
		Status:   constants.ReservationStatusPending,
	}
	if req.Status != "" {
		reservation.Status = req.Status
	}

	var allocated []models.ReservationPet

	err = s.store.Atomically(ctx, func(tx DataStore) error {
		if err := tx.CreateReservation(ctx, &reservation); err != nil {
			return err
		}

		for _, line := range req.Services {
			rs := models.ReservationService{
				ReservationID: reservation.ID,
				ServiceID:     line.ServiceID,
				Amount:        line.Amount,
			}
			if err := tx.CreateReservationService(ctx, &rs); err != nil {
				return err
			}
		}

		allocated, err = allocateReservationPets(ctx, tx, reservation.ID, req.PetRooms, checkin, checkout)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("reservation %s created for user %d with %d pet(s)", reservation.ID, userID, len(allocated))

	if s.notifier != nil {
		msg := notification.NewReservationMessageBuilder(reservation.ID, len(allocated), req.Checkin).Build()
		go func() {
			if err := s.notifier.SendMessage(msg); err != nil {
				s.logger.Error("broadcast failed: %v", err)
			}
		}()
	}

	resp := s.buildCreateResponse(&reservation, allocated, petNames, req, serviceNames)
	return resp, nil
}

// checkCompatibility enforces the species rule: dogs never go into
// cat-private rooms, cats only into cat-private rooms. Returns pet names
// keyed by id for the response.
func (s *ReservationService) checkCompatibility(ctx context.Context, petRooms []dto.PetRoomRequest) (map[string]string, error) {
	petNames := make(map[string]string, len(petRooms))
	for _, pr := range petRooms {
		pet, err := s.store.PetByID(ctx, pr.PetID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Pet not found", errors.ErrPetNotFound)
		}
		roomType, err := s.store.RoomTypeByID(ctx, pr.RoomTypeID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Room type not found", errors.ErrRoomTypeNotFound)
		}

		if pet.Type == constants.PetTypeDog && roomType.Category == constants.RoomCategoryCatPrivate {
			return nil, errors.NewAppError(errors.ErrCodePetIncompatible, "Pet not compatible with the room", nil)
		}
		if pet.Type == constants.PetTypeCat &&
			(roomType.Category == constants.RoomCategoryDogPrivate || roomType.Category == constants.RoomCategoryShared) {
			return nil, errors.NewAppError(errors.ErrCodePetIncompatible, "Pet not compatible with the room", nil)
		}

		petNames[pet.ID] = pet.Name
	}
	return petNames, nil
}

// checkPetsNotBooked scans every active reservation for a date-overlapping
// stay of any requested pet, regardless of room.
func (s *ReservationService) checkPetsNotBooked(ctx context.Context, petRooms []dto.PetRoomRequest, checkin, checkout time.Time) error {
	reservations, err := s.store.ActiveReservations(ctx)
	if err != nil {
		return err
	}

	for _, pr := range petRooms {
		for _, reservation := range reservations {
			if !AreDatesConflicting(checkin, checkout, reservation.Checkin, reservation.Checkout) {
				continue
			}
			for _, rp := range reservation.ReservationPets {
				if rp.PetID == pr.PetID {
					return errors.NewAppError(errors.ErrCodePetAlreadyBooked, "Pet is already booked", errors.ErrPetAlreadyBooked)
				}
			}
		}
	}
	return nil
}

func (s *ReservationService) resolveServices(ctx context.Context, lines []dto.ServiceLineRequest) (map[uint]string, error) {
	serviceNames := make(map[uint]string, len(lines))
	for _, line := range lines {
		service, err := s.store.ServiceByID(ctx, line.ServiceID)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Service not found", errors.ErrServiceNotFound)
		}
		serviceNames[service.ID] = service.Name
	}
	return serviceNames, nil
}

func (s *ReservationService) buildCreateResponse(reservation *models.Reservation, allocated []models.ReservationPet, petNames map[string]string, req *dto.CreateReservationRequest, serviceNames map[uint]string) *dto.ReservationResponse {
	roomTypes := make(map[string]uint, len(req.PetRooms))
	for _, pr := range req.PetRooms {
		roomTypes[pr.PetID] = pr.RoomTypeID
	}

	petRooms := make([]dto.PetRoomResponse, 0, len(allocated))
	for _, rp := range allocated {
		petRooms = append(petRooms, dto.PetRoomResponse{
			Pet:        petNames[rp.PetID],
			PetID:      rp.PetID,
			RoomID:     rp.RoomID,
			RoomTypeID: roomTypes[rp.PetID],
		})
	}

	serviceLines := make([]dto.ServiceLineResponse, 0, len(req.Services))
	for _, line := range req.Services {
		serviceLines = append(serviceLines, dto.ServiceLineResponse{
			Service: serviceNames[line.ServiceID],
			Amount:  line.Amount,
		})
	}

	return &dto.ReservationResponse{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		Checkin:   reservation.Checkin.Format(dateLayout),
		Checkout:  reservation.Checkout.Format(dateLayout),
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt,
		UpdatedAt: reservation.UpdatedAt,
		PetRooms:  petRooms,
		Services:  serviceLines,
	}
}

// List returns the caller's reservations, or every reservation for
// admins, enriched with pet, room and service details.
func (s *ReservationService) List(ctx context.Context, userID uint, isAdmin bool) ([]dto.ReservationResponse, error) {
	var (
		reservations []models.Reservation
		err          error
	)
	if isAdmin {
		reservations, err = s.store.AllReservations(ctx)
	} else {
		reservations, err = s.store.ReservationsForUser(ctx, userID)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses, *s.buildListEntry(&reservations[i]))
	}
	return responses, nil
}

func (s *ReservationService) buildListEntry(reservation *models.Reservation) *dto.ReservationResponse {
	petRooms := make([]dto.PetRoomResponse, 0, len(reservation.ReservationPets))
	for _, rp := range reservation.ReservationPets {
		entry := dto.PetRoomResponse{
			PetID:  rp.PetID,
			RoomID: rp.RoomID,
		}
		if rp.Pet != nil {
			entry.Pet = rp.Pet.Name
		}
		if rp.Room != nil {
			entry.RoomTypeID = rp.Room.RoomTypeID
		}
		petRooms = append(petRooms, entry)
	}

	serviceLines := make([]dto.ServiceLineResponse, 0, len(reservation.ReservationServices))
	for _, rs := range reservation.ReservationServices {
		entry := dto.ServiceLineResponse{Amount: rs.Amount}
		if rs.Service != nil {
			entry.Service = rs.Service.Name
		}
		serviceLines = append(serviceLines, entry)
	}

	return &dto.ReservationResponse{
		ID:        reservation.ID,
		UserID:    reservation.UserID,
		Checkin:   reservation.Checkin.Format(dateLayout),
		Checkout:  reservation.Checkout.Format(dateLayout),
		Status:    reservation.Status,
		CreatedAt: reservation.CreatedAt,
		UpdatedAt: reservation.UpdatedAt,
		PetRooms:  petRooms,
		Services:  serviceLines,
	}
}

// Cancel soft-cancels a reservation and returns the owner's user id,
// so callers can invalidate the owner's cache on admin cancels too.
// Only the owner or an admin may cancel; cancelling twice is rejected.
func (s *ReservationService) Cancel(ctx context.Context, reservationID string, userID uint, isAdmin bool) (uint, error) {
	reservation, err := s.store.ReservationByID(ctx, reservationID)
	if err != nil {
		return 0, errors.NewAppError(errors.ErrCodeDBNotFound, "Reservation not found", errors.ErrReservationNotFound)
	}

	if !isAdmin && reservation.UserID != userID {
		return 0, errors.NewAppError(errors.ErrCodeUnauthorized, "Permission denied", errors.ErrForbidden)
	}

	if reservation.Status == constants.ReservationStatusCancelled {
		return 0, errors.NewAppError(errors.ErrCodeInvalidOperation, "You cannot delete a cancelled reservation", errors.ErrReservationCancelled)
	}

	if err := s.store.UpdateReservationStatus(ctx, reservationID, constants.ReservationStatusCancelled); err != nil {
		return 0, err
	}

	s.logger.Info("reservation %s cancelled", reservationID)

	if s.notifier != nil {
		msg := notification.NewReservationMessageBuilder(reservationID, len(reservation.ReservationPets), "").BuildCancelled()
		go func() {
			if err := s.notifier.SendMessage(msg); err != nil {
				s.logger.Error("broadcast failed: %v", err)
			}
		}()
	}

	return reservation.UserID, nil
}

// FullyBookedDates lists the dates on which no room of the given type
// can take another reservation. A room counts as closed for a day as
// soon as one active reservation occupies it that day.
func (s *ReservationService) FullyBookedDates(ctx context.Context, roomTypeID uint) ([]string, error) {
	if _, err := s.store.RoomTypeByID(ctx, roomTypeID); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeDBNotFound, "Room type not found", errors.ErrRoomTypeNotFound)
	}

	rooms, err := s.store.RoomsByType(ctx, roomTypeID)
	if err != nil {
		return nil, err
	}
	if len(rooms) == 0 {
		return []string{}, nil
	}

	roomsOfType := make(map[uint]bool, len(rooms))
	for _, room := range rooms {
		roomsOfType[room.ID] = true
	}

	reservations, err := s.store.ActiveReservations(ctx)
	if err != nil {
		return nil, err
	}

	// occupied rooms of this type per day
	occupied := make(map[string]map[uint]bool)
	for _, reservation := range reservations {
		for _, rp := range reservation.ReservationPets {
			if !roomsOfType[rp.RoomID] {
				continue
			}
			for day := reservation.Checkin; !day.After(reservation.Checkout); day = day.AddDate(0, 0, 1) {
				key := day.Format(dateLayout)
				if occupied[key] == nil {
					occupied[key] = make(map[uint]bool)
				}
				occupied[key][rp.RoomID] = true
			}
		}
	}

	fullDates := make([]string, 0)
	for day, roomSet := range occupied {
		if len(roomSet) >= len(rooms) {
			fullDates = append(fullDates, day)
		}
	}
	sort.Strings(fullDates)

	return fullDates, nil
}
