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

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers routes related to exchange rates.
func registerExchangeRateRoutes(rg *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := rg.Group("/exchange-rates")
	{
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.GET("/effective", h.getEffectiveRate)
		exchangeRates.GET("/:rateID", h.getExchangeRate)
		exchangeRates.DELETE("/:rateID", h.deleteExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create an exchange rate
// @Description Stores the rate of a currency pair for a date. A second rate for the same pair and date replaces the first.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ValidationErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 500 {object} ErrorResponse "Failed to create exchange rate"
// @Security BearerAuth
// @Router /exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.String("rate", req.Rate.String()),
		slog.Time("date_effective", req.DateEffective),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create exchange rate")
		return
	}

	logger.Info("Exchange rate created successfully", slog.String("rate_id", createdRate.ExchangeRateID))
	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags exchange rates
// @Produce  json
// @Param   from query string false "From currency"
// @Param   to query string false "To currency"
// @Param   asOf query string false "Effective on or before (YYYY-MM-DD)"
// @Param   limit query int false "Limit" default(50)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), actor, params)
	if err != nil {
		respondError(c, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRateResponse(rates))
}

// getEffectiveRate godoc
// @Summary Resolve the rate applied to a pair on a date
// @Description Uses the latest record on or before the date, falling back to the inverse pair
// @Tags exchange rates
// @Produce  json
// @Param   from query string true "From currency"
// @Param   to query string true "To currency"
// @Param   date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.EffectiveRateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse "No rate found"
// @Security BearerAuth
// @Router /exchange-rates/effective [get]
func (h *exchangeRateHandler) getEffectiveRate(c *gin.Context) {
	var params dto.EffectiveRateParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}
	from, _ := domain.ParseCurrency(params.FromCurrency)
	to, _ := domain.ParseCurrency(params.ToCurrency)

	rate, err := h.exchangeRateService.GetEffectiveRate(c.Request.Context(), actor, from, to, params.Date)
	if err != nil {
		respondError(c, err, "Failed to resolve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToEffectiveRateResponse(rate))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Tags exchange rates
// @Produce  json
// @Param   rateID path string true "Exchange rate ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 404 {object} ErrorResponse "Exchange rate not found"
// @Failure 500 {object} ErrorResponse "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), actor, c.Param("rateID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve exchange rate")
		return
	}
	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate))
}

// deleteExchangeRate godoc
// @Summary Delete an exchange rate
// @Tags exchange rates
// @Param   rateID path string true "Exchange rate ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /exchange-rates/{rateID} [delete]
func (h *exchangeRateHandler) deleteExchangeRate(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.exchangeRateService.DeleteExchangeRate(c.Request.Context(), actor, c.Param("rateID")); err != nil {
		respondError(c, err, "Failed to delete exchange rate")
		return
	}
	c.Status(http.StatusNoContent)
}
