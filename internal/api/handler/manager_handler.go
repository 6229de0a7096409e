package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innstack/hotel-system/internal/core/ports"
)

// ManagerHandler handles the property/manager assignment endpoints.
type ManagerHandler struct {
	service ports.ManagerService
}

func NewManagerHandler(service ports.ManagerService) *ManagerHandler {
	return &ManagerHandler{service: service}
}

// Assign handles POST /api/users/properties/:id/managers. Only the owner
// may assign, and the target user must hold the manager role.
//
// @Summary      Assign a manager to a property
// @Tags         managers
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Property ID (UUID)"
// @Param        body  body      assignManagerRequest  true  "Manager to assign"
// @Success      201   {object}  domain.ManagerAssignment
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users/properties/{id}/managers [post]
func (h *ManagerHandler) Assign(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req assignManagerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	assignment, err := h.service.Assign(c.Request().Context(), actor, propertyID, req.ManagerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, assignment)
}

// Unassign handles DELETE /api/users/properties/:id/managers/:managerId.
//
// @Summary      Remove a manager from a property
// @Tags         managers
// @Security     BearerAuth
// @Param        id         path  string  true  "Property ID (UUID)"
// @Param        managerId  path  string  true  "Manager user ID (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/properties/{id}/managers/{managerId} [delete]
func (h *ManagerHandler) Unassign(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	managerID, err := pathUUID(c, "managerId")
	if err != nil {
		return err
	}

	if err := h.service.Unassign(c.Request().Context(), actor, propertyID, managerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "unassigned"})
}

// ListManagers handles GET /api/properties/:id/managers.
//
// @Summary      List a property's managers
// @Tags         managers
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID (UUID)"
// @Success      200  {array}   domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/properties/{id}/managers [get]
func (h *ManagerHandler) ListManagers(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	managers, err := h.service.ListManagers(c.Request().Context(), actor, propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, managers)
}
