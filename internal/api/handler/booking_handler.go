package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innstack/hotel-system/internal/api/metrics"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// BookingHandler handles booking lifecycle and QR check-in endpoints.
type BookingHandler struct {
	service ports.BookingService
}

func NewBookingHandler(service ports.BookingService) *BookingHandler {
	return &BookingHandler{service: service}
}

// Create handles POST /api/bookings.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	start, err := parseDate("start_date", req.StartDate)
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", req.EndDate)
	if err != nil {
		return err
	}

	booking, err := h.service.Create(c.Request().Context(), actor, ports.CreateBookingInput{
		RoomID:    req.RoomID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return err
	}

	metrics.BookingsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, booking)
}

// IssueCheckinToken handles POST /api/bookings/:id/checkin-token. The
// returned token is single-use; the client renders it as a QR code.
//
// @Summary      Issue a one-time check-in token for a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID (UUID)"
// @Success      201  {object}  checkinTokenResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/bookings/{id}/checkin-token [post]
func (h *BookingHandler) IssueCheckinToken(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	bookingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	result, err := h.service.IssueCheckinToken(c.Request().Context(), actor, bookingID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, checkinTokenResponse{
		Token:     result.Token,
		BookingID: result.BookingID,
		ExpiresAt: result.ExpiresAt,
	})
}

// Checkin handles POST /api/checkin. It redeems a scanned token; a token
// can be redeemed exactly once.
//
// @Summary      Check in with a scanned QR token
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        body  body      checkinRequest  true  "Scanned token"
// @Success      200   {object}  domain.Booking
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/checkin [post]
func (h *BookingHandler) Checkin(c echo.Context) error {
	var req checkinRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.service.Checkin(c.Request().Context(), req.Token)
	if err != nil {
		metrics.CheckinsTotal.WithLabelValues("rejected").Inc()
		return err
	}

	metrics.CheckinsTotal.WithLabelValues("ok").Inc()
	return c.JSON(http.StatusOK, booking)
}

// Cancel handles POST /api/bookings/:id/cancel.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID (UUID)"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/bookings/{id}/cancel [post]
func (h *BookingHandler) Cancel(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	bookingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.service.Cancel(c.Request().Context(), actor, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}

// Checkout handles POST /api/bookings/:id/checkout.
//
// @Summary      Check out of a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking ID (UUID)"
// @Success      200  {object}  domain.Booking
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      409  {object}  errorResponse
// @Router       /api/bookings/{id}/checkout [post]
func (h *BookingHandler) Checkout(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	bookingID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.service.Checkout(c.Request().Context(), actor, bookingID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, booking)
}
