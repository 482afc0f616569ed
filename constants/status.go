package constants

// User roles
const (
	RoleCustomer = 0
	RoleAdmin    = 1
)

// Reservation status
const (
	ReservationStatusPending   = "pending"
	ReservationStatusConfirmed = "confirmed"
	ReservationStatusCancelled = "cancelled"
)

// Pet types
const (
	PetTypeCat = "cat"
	PetTypeDog = "dog"
)

// Room categories
const (
	RoomCategoryCatPrivate = 1
	RoomCategoryDogPrivate = 2
	RoomCategoryShared     = 3
)

// Occupancy policy per category. Zero means no client-side cap,
// capacity is gated by the room pool only.
const (
	PrivateRoomMaxOccupancy = 2
	SharedRoomMaxOccupancy  = 0
)
