package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/bookstore-api/internal/api/metrics"
	"github.com/bookstore/bookstore-api/internal/core/domain"
	"github.com/bookstore/bookstore-api/internal/core/ports"
)

// OrderHandler handles HTTP requests for order operations.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Create handles POST /orders. The order is always placed for the caller;
// any client-supplied owner or order date is discarded.
//
// @Summary      Place an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createOrderRequest  true  "Order lines"
// @Success      201   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Router       /orders [post]
func (h *OrderHandler) Create(c echo.Context) error {
	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if req.ID != "" {
		return domain.ErrIDAssigned
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	username, _ := caller(c)
	order := &domain.Order{Lines: toOrderLines(req.Lines)}

	created, err := h.orders.Save(c.Request().Context(), order, username)
	if err != nil {
		return err
	}

	metrics.OrdersCreatedTotal.Inc()
	metrics.OrderLinesTotal.Add(float64(len(created.Lines)))
	return c.JSON(http.StatusCreated, toOrderResponse(created))
}

// Replace handles PUT /orders: administrative full overwrite.
//
// @Summary      Replace an order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      replaceOrderRequest  true  "Order representation"
// @Success      200   {object}  orderResponse
// @Failure      400   {object}  errorResponse
// @Router       /orders [put]
func (h *OrderHandler) Replace(c echo.Context) error {
	var req replaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order := &domain.Order{
		ID:       req.ID,
		UserID:   req.UserID,
		Username: req.Username,
		Lines:    toOrderLines(req.Lines),
	}

	replaced, err := h.orders.Replace(c.Request().Context(), order)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(replaced))
}

// List handles GET /orders.
//
// @Summary      List all orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  orderResponse
// @Success      204  "no orders"
// @Router       /orders [get]
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orders.FindAll(c.Request().Context())
	if err != nil {
		return err
	}
	if len(orders) == 0 {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// Get handles GET /orders/:id.
//
// @Summary      Get an order by id
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  orderResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [get]
func (h *OrderHandler) Get(c echo.Context) error {
	order, err := h.orders.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponse(order))
}

// Delete handles DELETE /orders/:id.
//
// @Summary      Delete an order
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Order id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /orders/{id} [delete]
func (h *OrderHandler) Delete(c echo.Context) error {
	if err := h.orders.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "order deleted"})
}

// ListByUser handles GET /users/orders?userName=: admin lookup of another
// user's orders. An unknown username yields an empty list, not a 404.
//
// @Summary      List a user's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        userName  query     string  true  "Owner username"
// @Success      200       {array}   orderResponse
// @Router       /users/orders [get]
func (h *OrderHandler) ListByUser(c echo.Context) error {
	orders, err := h.orders.FindByUsername(c.Request().Context(), c.QueryParam("userName"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

// ListOwn handles GET /user/orders: the caller's own orders.
//
// @Summary      List the caller's orders
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  orderResponse
// @Success      204  "no caller"
// @Router       /user/orders [get]
func (h *OrderHandler) ListOwn(c echo.Context) error {
	username, _ := caller(c)
	if username == "" {
		return c.NoContent(http.StatusNoContent)
	}

	orders, err := h.orders.FindByUsername(c.Request().Context(), username)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toOrderResponses(orders))
}

func toOrderResponses(orders []*domain.Order) []orderResponse {
	out := make([]orderResponse, len(orders))
	for i, o := range orders {
		out[i] = toOrderResponse(o)
	}
	return out
}
