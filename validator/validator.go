package validator

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"petstay/constants"
	"petstay/dto"
	"petstay/errors"
	"petstay/models"
)

const dateLayout = "2006-01-02"

// The DTOs carry gin binding tags; pointing the validator at them keeps
// struct checks working outside the HTTP binding path too.
var validate = newValidate()

func newValidate() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

// ValidateReservationRequest runs the shape checks on a reservation
// request: date parsing and ordering, no past check-in, id formats and
// no duplicate pets. Checks needing the store (species compatibility,
// double booking) run in the reservation service.
func ValidateReservationRequest(req *dto.CreateReservationRequest, now time.Time) (time.Time, time.Time, error) {
	if err := validate.Struct(req); err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeRequiredField, "Missing required reservation fields", err)
	}

	checkin, err := time.Parse(dateLayout, req.Checkin)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid checkin date, use YYYY-MM-DD", err)
	}

	checkout, err := time.Parse(dateLayout, req.Checkout)
	if err != nil {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid checkout date, use YYYY-MM-DD", err)
	}

	if !checkin.Before(checkout) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Checkout date must be after checkin", nil)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkin.Before(today) {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeValidation, "Cannot book a reservation in the past", nil)
	}

	if req.Status != "" &&
		req.Status != constants.ReservationStatusPending &&
		req.Status != constants.ReservationStatusConfirmed &&
		req.Status != constants.ReservationStatusCancelled {
		return time.Time{}, time.Time{}, errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid reservation status", nil)
	}

	if err := validatePetRooms(req.PetRooms); err != nil {
		return time.Time{}, time.Time{}, err
	}

	return checkin, checkout, nil
}

func validatePetRooms(petRooms []dto.PetRoomRequest) error {
	seen := make(map[string]bool, len(petRooms))
	for _, pr := range petRooms {
		if _, err := uuid.Parse(pr.PetID); err != nil {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid pet id", err)
		}
		if pr.RoomTypeID == 0 {
			return errors.NewAppError(errors.ErrCodeInvalidFormat, "Invalid room type id", nil)
		}
		if seen[pr.PetID] {
			return errors.NewAppError(errors.ErrCodeValidation, "Trying to book the same pet twice", nil)
		}
		seen[pr.PetID] = true
	}
	return nil
}

// ValidatePet checks a pet before it is stored.
func ValidatePet(pet *models.Pet) error {
	if pet.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Pet name must not be empty", nil)
	}
	if err := pet.ValidateType(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, err.Error(), nil)
	}
	return nil
}

// ValidateRegisterInput checks a registration payload.
func ValidateRegisterInput(input *dto.RegisterInput) error {
	if err := validate.Struct(input); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Invalid registration data", err)
	}
	if len(input.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidPassword, "Password must be at least 6 characters", nil)
	}
	return nil
}

// ValidateService checks an add-on service before it is stored.
func ValidateService(service *models.Service) error {
	if service.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Service name must not be empty", nil)
	}
	if service.Price < 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Service price must not be negative", nil)
	}
	return nil
}
