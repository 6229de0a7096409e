package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innstack/hotel-system/internal/api/metrics"
	"github.com/innstack/hotel-system/internal/core/domain"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// RoomHandler handles HTTP requests for room operations.
type RoomHandler struct {
	service ports.RoomService
}

func NewRoomHandler(service ports.RoomService) *RoomHandler {
	return &RoomHandler{service: service}
}

// Create handles POST /api/properties/:id/rooms. The body carries one or
// more rooms; a multi-room batch is inserted all-or-nothing.
//
// @Summary      Create rooms under a property
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string              true  "Property ID (UUID)"
// @Param        body  body      createRoomsRequest  true  "Rooms to create"
// @Success      201   {array}   domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/properties/{id}/rooms [post]
func (h *RoomHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req createRoomsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	inputs := make([]ports.CreateRoomInput, len(req.Rooms))
	for i, r := range req.Rooms {
		inputs[i] = ports.CreateRoomInput{
			RoomNumber: r.RoomNumber,
			Floor:      r.Floor,
			RoomTypeID: r.RoomTypeID,
			Status:     r.Status,
		}
	}

	ctx := c.Request().Context()
	if len(inputs) == 1 {
		room, err := h.service.Create(ctx, actor, propertyID, inputs[0])
		if err != nil {
			return err
		}
		metrics.RoomsCreatedTotal.WithLabelValues("single").Inc()
		return c.JSON(http.StatusCreated, room)
	}

	rooms, err := h.service.BulkCreate(ctx, actor, propertyID, inputs)
	if err != nil {
		return err
	}
	metrics.RoomsCreatedTotal.WithLabelValues("bulk").Add(float64(len(rooms)))
	return c.JSON(http.StatusCreated, rooms)
}

// ListByProperty handles GET /api/properties/:id/rooms.
//
// @Summary      List a property's rooms
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID (UUID)"
// @Success      200  {array}   domain.Room
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/properties/{id}/rooms [get]
func (h *RoomHandler) ListByProperty(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	rooms, err := h.service.ListByProperty(c.Request().Context(), actor, propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, rooms)
}

// ListAvailable handles GET /api/rooms?property_id=&start_date=&end_date=.
// Zero matches returns an empty array, never an error.
//
// @Summary      Query room availability for a date range
// @Tags         rooms
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  query     string  true  "Property ID (UUID)"
// @Param        start_date   query     string  true  "Stay start (YYYY-MM-DD, inclusive)"
// @Param        end_date     query     string  true  "Stay end (YYYY-MM-DD, inclusive)"
// @Success      200          {array}   domain.Room
// @Failure      400          {object}  errorResponse
// @Router       /api/rooms [get]
func (h *RoomHandler) ListAvailable(c echo.Context) error {
	propertyID := c.QueryParam("property_id")
	if _, err := parseUUID(propertyID); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "property_id must be a valid UUID")
	}

	start, err := parseDate("start_date", c.QueryParam("start_date"))
	if err != nil {
		return err
	}
	end, err := parseDate("end_date", c.QueryParam("end_date"))
	if err != nil {
		return err
	}

	rooms, err := h.service.ListAvailable(c.Request().Context(), propertyID, start, end)
	if err != nil {
		return err
	}

	result := "empty"
	if len(rooms) > 0 {
		result = "hit"
	}
	metrics.AvailabilityQueriesTotal.WithLabelValues(result).Inc()

	return c.JSON(http.StatusOK, rooms)
}

// Update handles PUT /api/properties/:id/rooms/:roomId with
// partial-update semantics.
//
// @Summary      Update a room
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string             true  "Property ID (UUID)"
// @Param        roomId  path      string             true  "Room ID (UUID)"
// @Param        body    body      updateRoomRequest  true  "Fields to update"
// @Success      200     {object}  domain.Room
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Failure      409     {object}  errorResponse
// @Router       /api/properties/{id}/rooms/{roomId} [put]
func (h *RoomHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if _, err := pathUUID(c, "id"); err != nil {
		return err
	}
	roomID, err := pathUUID(c, "roomId")
	if err != nil {
		return err
	}

	var req updateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.Update(c.Request().Context(), actor, roomID, roomPatch(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// SetStatus handles PATCH /api/rooms/:id/status.
//
// @Summary      Update a room's status
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Room ID (UUID)"
// @Param        body  body      setRoomStatusRequest  true  "New status"
// @Success      200   {object}  domain.Room
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/rooms/{id}/status [patch]
func (h *RoomHandler) SetStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	roomID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req setRoomStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	room, err := h.service.SetStatus(c.Request().Context(), actor, roomID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, room)
}

// Delete handles DELETE /api/properties/:id/rooms/:roomId.
//
// @Summary      Delete a room
// @Tags         rooms
// @Security     BearerAuth
// @Param        id      path  string  true  "Property ID (UUID)"
// @Param        roomId  path  string  true  "Room ID (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /api/properties/{id}/rooms/{roomId} [delete]
func (h *RoomHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	if _, err := pathUUID(c, "id"); err != nil {
		return err
	}
	roomID, err := pathUUID(c, "roomId")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, roomID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

func roomPatch(req updateRoomRequest) ports.RoomPatch {
	patch := ports.RoomPatch{
		RoomNumber: req.RoomNumber,
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
	}
	if req.Status != nil {
		s := domain.RoomStatus(*req.Status)
		patch.Status = &s
	}
	return patch
}
