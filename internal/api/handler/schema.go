package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

// dateLayout is the wire format for stay dates. Dates are calendar days;
// time-of-day never appears on the API surface.
const dateLayout = "2006-01-02"

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, field+" must be a date in YYYY-MM-DD format")
	}
	return t, nil
}

// --- Property schemas ---

type createPropertyRequest struct {
	Name         string `json:"name"          validate:"required"`
	Address      string `json:"address"       validate:"required"`
	PropertyType string `json:"property_type" validate:"required,oneof=hotel guesthouse resort"`
	ContactPhone string `json:"contact_phone"`
	ContactEmail string `json:"contact_email" validate:"omitempty,email"`
}

type updatePropertyRequest struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	PropertyType *string `json:"property_type" validate:"omitempty,oneof=hotel guesthouse resort"`
	ContactPhone *string `json:"contact_phone"`
	ContactEmail *string `json:"contact_email" validate:"omitempty,email"`
}

// --- Room schemas ---

type createRoomRequest struct {
	RoomNumber string  `json:"room_number"  validate:"required"`
	Floor      int     `json:"floor"`
	RoomTypeID *string `json:"room_type_id" validate:"omitempty,uuid4"`
	Status     string  `json:"status"       validate:"omitempty,oneof=available reserved occupied maintenance"`
}

// createRoomsRequest accepts either a single room or a batch. A batch is
// applied all-or-nothing.
type createRoomsRequest struct {
	Rooms []createRoomRequest `json:"rooms" validate:"required,min=1,dive"`
}

type updateRoomRequest struct {
	RoomNumber *string `json:"room_number"`
	Floor      *int    `json:"floor"`
	RoomTypeID *string `json:"room_type_id" validate:"omitempty,uuid4"`
	Status     *string `json:"status"       validate:"omitempty,oneof=available reserved occupied maintenance"`
}

type setRoomStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// --- Manager schemas ---

type assignManagerRequest struct {
	ManagerID string `json:"manager_id" validate:"required,uuid4"`
}

// --- Booking schemas ---

type createBookingRequest struct {
	RoomID    string `json:"room_id"    validate:"required,uuid4"`
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date"   validate:"required,datetime=2006-01-02"`
}

type checkinRequest struct {
	Token string `json:"token" validate:"required"`
}

type checkinTokenResponse struct {
	Token     string    `json:"token"`
	BookingID string    `json:"booking_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// --- Restaurant schemas ---

type createMenuItemRequest struct {
	Name        string `json:"name"        validate:"required"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents" validate:"required,gt=0"`
	Category    string `json:"category"`
}

type updateMenuItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents" validate:"omitempty,gt=0"`
	Category    *string `json:"category"`
	Available   *bool   `json:"available"`
}

type orderLineRequest struct {
	MenuItemID string `json:"menu_item_id" validate:"required,uuid4"`
	Quantity   int    `json:"quantity"     validate:"required,gt=0"`
}

type placeOrderRequest struct {
	RoomID *string            `json:"room_id" validate:"omitempty,uuid4"`
	Lines  []orderLineRequest `json:"lines"   validate:"required,min=1,dive"`
}

type setOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
