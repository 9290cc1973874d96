package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/SscSPs/tour_orders_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type bankHandler struct {
	bankService portssvc.BankSvcFacade
}

// registerBankRoutes registers the banks payments are received into.
func registerBankRoutes(rg *gin.RouterGroup, bankService portssvc.BankSvcFacade) {
	h := &bankHandler{bankService: bankService}

	banks := rg.Group("/banks")
	{
		banks.GET("", h.listBanks)
		banks.POST("", h.createBank)
		banks.GET("/:bankID", h.getBank)
		banks.PUT("/:bankID", h.updateBank)
		banks.DELETE("/:bankID", h.deleteBank)
	}
}

// createBank godoc
// @Summary Create a bank
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bank body dto.BankRequest true "Bank details"
// @Success 201 {object} dto.BankResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Bank already exists"
// @Security BearerAuth
// @Router /banks [post]
func (h *bankHandler) createBank(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	logger.Info("Received request to create bank", slog.String("name", req.Name))

	bank, err := h.bankService.CreateBank(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create bank")
		return
	}
	c.JSON(http.StatusCreated, dto.ToBankResponse(bank))
}

// listBanks godoc
// @Summary List banks
// @Tags banks
// @Produce  json
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListBanksResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks [get]
func (h *bankHandler) listBanks(c *gin.Context) {
	var params dto.ListDirectoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	banks, err := h.bankService.ListBanks(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list banks")
		return
	}
	c.JSON(http.StatusOK, dto.ToListBanksResponse(banks))
}

// getBank godoc
// @Summary Get a bank
// @Tags banks
// @Produce  json
// @Param   bankID path string true "Bank ID"
// @Success 200 {object} dto.BankResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID} [get]
func (h *bankHandler) getBank(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bank, err := h.bankService.GetBank(c.Request.Context(), actor, c.Param("bankID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve bank")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// updateBank godoc
// @Summary Replace a bank
// @Tags banks
// @Accept  json
// @Produce  json
// @Param   bankID path string true "Bank ID"
// @Param   bank body dto.BankRequest true "Bank details"
// @Success 200 {object} dto.BankResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID} [put]
func (h *bankHandler) updateBank(c *gin.Context) {
	var req dto.BankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	bank, err := h.bankService.UpdateBank(c.Request.Context(), actor, c.Param("bankID"), req)
	if err != nil {
		respondError(c, err, "Failed to update bank")
		return
	}
	c.JSON(http.StatusOK, dto.ToBankResponse(bank))
}

// deleteBank godoc
// @Summary Delete a bank
// @Tags banks
// @Param   bankID path string true "Bank ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /banks/{bankID} [delete]
func (h *bankHandler) deleteBank(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.bankService.DeleteBank(c.Request.Context(), actor, c.Param("bankID")); err != nil {
		respondError(c, err, "Failed to delete bank")
		return
	}
	c.Status(http.StatusNoContent)
}
