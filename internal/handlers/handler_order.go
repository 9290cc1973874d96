package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/tour_orders_app/internal/core/domain"
	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/SscSPs/tour_orders_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// orderHandler handles HTTP requests for the order aggregate.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers order, payment and accounting routes.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("", h.createOrder)
		orders.GET("", h.listOrders)
		orders.GET("/:orderID", h.getOrder)
		orders.PUT("/:orderID", h.editOrder)
		orders.PATCH("/:orderID/status", h.changeStatus)
		orders.DELETE("/:orderID", h.deleteOrder)
		orders.GET("/:orderID/financial-summary", h.getFinancialSummary)
		orders.PUT("/:orderID/accounting-comment", h.updateAccountingComment)
		orders.POST("/:orderID/payments", h.addPayment)
		orders.DELETE("/:orderID/payments/:paymentID", h.removePayment)
	}
}

// createOrder godoc
// @Summary Create an order
// @Description Creates an OPEN order with its customer, tour, line items and payments in one transaction
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   order body dto.OrderRequest true "Complete order payload"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No exchange rate for a submitted currency"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [post]
func (h *orderHandler) createOrder(c *gin.Context) {
	var req dto.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.CreateOrder(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create order")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Order created via API",
		slog.String("order_id", order.OrderID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List orders
// @Description Lists orders newest first. Employees only ever see their own orders.
// @Tags orders
// @Produce  json
// @Param   status query string false "OPEN or CLOSED"
// @Param   partyID query string false "Customer ID"
// @Param   createdByID query string false "Creator user ID"
// @Param   createdFrom query string false "Created on or after (YYYY-MM-DD)"
// @Param   createdTo query string false "Created before (YYYY-MM-DD)"
// @Param   orderNumber query string false "Order number prefix"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	resp, err := h.orderService.ListOrders(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list orders")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getOrder godoc
// @Summary Get an order
// @Description Returns the full order graph
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (h *orderHandler) getOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), actor, c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// editOrder godoc
// @Summary Replace an order
// @Description Replaces the whole order with the submitted state. Send expectedVersion to guard against lost updates.
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   order body dto.EditOrderRequest true "Complete order payload"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Order was modified concurrently"
// @Failure 422 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID} [put]
func (h *orderHandler) editOrder(c *gin.Context) {
	var req dto.EditOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.EditOrder(c.Request.Context(), actor, c.Param("orderID"), req)
	if err != nil {
		respondError(c, err, "Failed to edit order")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// changeStatus godoc
// @Summary Close or reopen an order
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   status body dto.ChangeStatusRequest true "Target status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/status [patch]
func (h *orderHandler) changeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	status, valid := domain.ParseOrderStatus(req.Status)
	if !valid {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "status must be OPEN or CLOSED"})
		return
	}

	order, err := h.orderService.ChangeStatus(c.Request.Context(), actor, c.Param("orderID"), status)
	if err != nil {
		respondError(c, err, "Failed to change order status")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// deleteOrder godoc
// @Summary Delete an order
// @Description Deletes the order with its tour, line items and payments
// @Tags orders
// @Param   orderID path string true "Order ID"
// @Success 204
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID} [delete]
func (h *orderHandler) deleteOrder(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.orderService.DeleteOrder(c.Request.Context(), actor, c.Param("orderID")); err != nil {
		respondError(c, err, "Failed to delete order")
		return
	}
	c.Status(http.StatusNoContent)
}

// getFinancialSummary godoc
// @Summary Financial summary of an order
// @Description Expense, payments, profit, customer remaining and cash flow in the base currency
// @Tags orders
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Success 200 {object} dto.FinancialSummaryResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/financial-summary [get]
func (h *orderHandler) getFinancialSummary(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	summary, err := h.orderService.GetFinancialSummary(c.Request.Context(), actor, c.Param("orderID"))
	if err != nil {
		respondError(c, err, "Failed to compute financial summary")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinancialSummaryResponse(summary))
}

// updateAccountingComment godoc
// @Summary Set the accounting comment
// @Tags orders
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   comment body dto.UpdateAccountingCommentRequest true "Comment"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/accounting-comment [put]
func (h *orderHandler) updateAccountingComment(c *gin.Context) {
	var req dto.UpdateAccountingCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.UpdateAccountingComment(c.Request.Context(), actor, c.Param("orderID"), req)
	if err != nil {
		respondError(c, err, "Failed to update accounting comment")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// addPayment godoc
// @Summary Record a customer payment
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   payment body dto.PaymentRequest true "Payment"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/payments [post]
func (h *orderHandler) addPayment(c *gin.Context) {
	var req dto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.AddPayment(c.Request.Context(), actor, c.Param("orderID"), req)
	if err != nil {
		respondError(c, err, "Failed to add payment")
		return
	}
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// removePayment godoc
// @Summary Remove a customer payment
// @Tags payments
// @Produce  json
// @Param   orderID path string true "Order ID"
// @Param   paymentID path string true "Payment ID"
// @Success 200 {object} dto.OrderResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{orderID}/payments/{paymentID} [delete]
func (h *orderHandler) removePayment(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	order, err := h.orderService.RemovePayment(c.Request.Context(), actor, c.Param("orderID"), c.Param("paymentID"))
	if err != nil {
		respondError(c, err, "Failed to remove payment")
		return
	}
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}
