package validator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"petstay/constants"
	"petstay/dto"
	"petstay/models"
)

var fixedNow = time.Date(2023, 2, 15, 10, 30, 0, 0, time.UTC)

func validRequest() *dto.CreateReservationRequest {
	return &dto.CreateReservationRequest{
		Checkin:  "2023-02-20",
		Checkout: "2023-02-24",
		PetRooms: []dto.PetRoomRequest{
			{PetID: "11111111-1111-1111-1111-111111111111", RoomTypeID: 1},
		},
	}
}

func TestValidateReservationRequest_Valid(t *testing.T) {
	checkin, checkout, err := ValidateReservationRequest(validRequest(), fixedNow)

	require.NoError(t, err)
	assert.Equal(t, "2023-02-20", checkin.Format(dateLayout))
	assert.Equal(t, "2023-02-24", checkout.Format(dateLayout))
}

func TestValidateReservationRequest_CheckinToday(t *testing.T) {
	req := validRequest()
	req.Checkin = "2023-02-15"

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.NoError(t, err)
}

func TestValidateReservationRequest_MissingFields(t *testing.T) {
	_, _, err := ValidateReservationRequest(&dto.CreateReservationRequest{}, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required reservation fields")
}

func TestValidateReservationRequest_NoPetRooms(t *testing.T) {
	req := validRequest()
	req.PetRooms = nil

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Missing required reservation fields")
}

func TestValidateReservationRequest_BadDateFormat(t *testing.T) {
	req := validRequest()
	req.Checkin = "20-02-2023"

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.Error(t, err)
}

func TestValidateReservationRequest_CheckoutNotAfterCheckin(t *testing.T) {
	req := validRequest()
	req.Checkout = "2023-02-20"

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Checkout date must be after checkin")
}

func TestValidateReservationRequest_PastCheckin(t *testing.T) {
	req := validRequest()
	req.Checkin = "2023-02-10"
	req.Checkout = "2023-02-12"

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Cannot book a reservation in the past")
}

func TestValidateReservationRequest_Status(t *testing.T) {
	for _, status := range []string{
		constants.ReservationStatusPending,
		constants.ReservationStatusConfirmed,
		constants.ReservationStatusCancelled,
	} {
		req := validRequest()
		req.Status = status
		_, _, err := ValidateReservationRequest(req, fixedNow)
		require.NoError(t, err, status)
	}

	req := validRequest()
	req.Status = "done"
	_, _, err := ValidateReservationRequest(req, fixedNow)
	require.Error(t, err)
}

func TestValidateReservationRequest_BadPetID(t *testing.T) {
	req := validRequest()
	req.PetRooms[0].PetID = "not-a-uuid"

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid pet id")
}

func TestValidateReservationRequest_DuplicatePet(t *testing.T) {
	req := validRequest()
	req.PetRooms = append(req.PetRooms, req.PetRooms[0])

	_, _, err := ValidateReservationRequest(req, fixedNow)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Trying to book the same pet twice")
}

func TestValidatePet(t *testing.T) {
	err := ValidatePet(&models.Pet{Name: "Tom", Type: constants.PetTypeCat})
	require.NoError(t, err)

	err = ValidatePet(&models.Pet{Type: constants.PetTypeCat})
	require.Error(t, err)

	err = ValidatePet(&models.Pet{Name: "Tom", Type: "hamster"})
	require.Error(t, err)
}

func TestValidateRegisterInput(t *testing.T) {
	valid := dto.RegisterInput{Name: "Ann", Email: "ann@example.com", Password: "secret1"}
	require.NoError(t, ValidateRegisterInput(&valid))

	badEmail := valid
	badEmail.Email = "not-an-email"
	require.Error(t, ValidateRegisterInput(&badEmail))

	shortPassword := valid
	shortPassword.Password = "123"
	require.Error(t, ValidateRegisterInput(&shortPassword))
}

func TestValidateService(t *testing.T) {
	require.NoError(t, ValidateService(&models.Service{Name: "Grooming", Price: 15}))
	require.Error(t, ValidateService(&models.Service{Price: 15}))
	require.Error(t, ValidateService(&models.Service{Name: "Grooming", Price: -1}))
}
