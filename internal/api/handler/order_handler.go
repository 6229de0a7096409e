package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/innstack/hotel-system/internal/api/metrics"
	"github.com/innstack/hotel-system/internal/core/ports"
)

// OrderHandler handles the restaurant menu and ordering endpoints.
type OrderHandler struct {
	service ports.OrderService
}

func NewOrderHandler(service ports.OrderService) *OrderHandler {
	return &OrderHandler{service: service}
}

// CreateMenuItem handles POST /api/properties/:id/menu.
//
// @Summary      Add a menu item
// @Tags         restaurant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Property ID (UUID)"
// @Param        body  body      createMenuItemRequest  true  "Menu item details"
// @Success      201   {object}  domain.MenuItem
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/properties/{id}/menu [post]
func (h *OrderHandler) CreateMenuItem(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req createMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.CreateMenuItem(c.Request().Context(), actor, propertyID, ports.CreateMenuItemInput{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, item)
}

// UpdateMenuItem handles PUT /api/properties/:id/menu/:itemId.
//
// @Summary      Update a menu item
// @Tags         restaurant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string                 true  "Property ID (UUID)"
// @Param        itemId  path      string                 true  "Menu item ID (UUID)"
// @Param        body    body      updateMenuItemRequest  true  "Fields to update"
// @Success      200     {object}  domain.MenuItem
// @Failure      400     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /api/properties/{id}/menu/{itemId} [put]
func (h *OrderHandler) UpdateMenuItem(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}

	var req updateMenuItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	item, err := h.service.UpdateMenuItem(c.Request().Context(), actor, propertyID, itemID, ports.MenuItemPatch{
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Category:    req.Category,
		Available:   req.Available,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, item)
}

// DeleteMenuItem handles DELETE /api/properties/:id/menu/:itemId.
//
// @Summary      Delete a menu item
// @Tags         restaurant
// @Security     BearerAuth
// @Param        id      path  string  true  "Property ID (UUID)"
// @Param        itemId  path  string  true  "Menu item ID (UUID)"
// @Success      200  {object}  map[string]string
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/properties/{id}/menu/{itemId} [delete]
func (h *OrderHandler) DeleteMenuItem(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}
	itemID, err := pathUUID(c, "itemId")
	if err != nil {
		return err
	}

	if err := h.service.DeleteMenuItem(c.Request().Context(), actor, propertyID, itemID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"status": "deleted"})
}

// ListMenu handles GET /api/properties/:id/menu. The menu is readable by
// any authenticated user so guests can browse before ordering.
//
// @Summary      List a property's menu
// @Tags         restaurant
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID (UUID)"
// @Success      200  {array}   domain.MenuItem
// @Failure      400  {object}  errorResponse
// @Router       /api/properties/{id}/menu [get]
func (h *OrderHandler) ListMenu(c echo.Context) error {
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	items, err := h.service.ListMenu(c.Request().Context(), propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// PlaceOrder handles POST /api/properties/:id/orders. Line prices are
// snapshotted from the menu at order time.
//
// @Summary      Place a restaurant order
// @Tags         restaurant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Property ID (UUID)"
// @Param        body  body      placeOrderRequest  true  "Order lines"
// @Success      201   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/properties/{id}/orders [post]
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req placeOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lines := make([]ports.OrderLineInput, len(req.Lines))
	for i, l := range req.Lines {
		lines[i] = ports.OrderLineInput{MenuItemID: l.MenuItemID, Quantity: l.Quantity}
	}

	order, err := h.service.PlaceOrder(c.Request().Context(), actor, ports.PlaceOrderInput{
		PropertyID: propertyID,
		RoomID:     req.RoomID,
		Lines:      lines,
	})
	if err != nil {
		return err
	}

	metrics.OrdersPlacedTotal.Inc()
	return c.JSON(http.StatusCreated, order)
}

// ListOrders handles GET /api/properties/:id/orders.
//
// @Summary      List a property's orders
// @Tags         restaurant
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property ID (UUID)"
// @Success      200  {array}   domain.Order
// @Failure      403  {object}  errorResponse
// @Router       /api/properties/{id}/orders [get]
func (h *OrderHandler) ListOrders(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	propertyID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), actor, propertyID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// SetOrderStatus handles PATCH /api/orders/:id/status.
//
// @Summary      Update an order's status
// @Tags         restaurant
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Order ID (UUID)"
// @Param        body  body      setOrderStatusRequest  true  "New status"
// @Success      200   {object}  domain.Order
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/orders/{id}/status [patch]
func (h *OrderHandler) SetOrderStatus(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}
	orderID, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req setOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.SetOrderStatus(c.Request().Context(), actor, orderID, req.Status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}
