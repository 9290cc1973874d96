package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/tour_orders_app/internal/core/ports/services"
	"github.com/SscSPs/tour_orders_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type directoryHandler struct {
	directoryService portssvc.DirectorySvcFacade
}

// registerDirectoryRoutes registers the customer and supplier directory.
func registerDirectoryRoutes(rg *gin.RouterGroup, directoryService portssvc.DirectorySvcFacade) {
	h := &directoryHandler{directoryService: directoryService}

	rg.GET("/parties", h.listParties)
	rg.POST("/parties", h.createParty)
	rg.GET("/parties/:partyID", h.getParty)
	rg.DELETE("/parties/:partyID", h.deleteParty)

	rg.GET("/suppliers", h.listSuppliers)
	rg.POST("/suppliers", h.createSupplier)
	rg.GET("/suppliers/:supplierID", h.getSupplier)
	rg.PUT("/suppliers/:supplierID", h.updateSupplier)
	rg.DELETE("/suppliers/:supplierID", h.deleteSupplier)
}

// listParties godoc
// @Summary List customers
// @Tags directory
// @Produce  json
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListPartiesResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties [get]
func (h *directoryHandler) listParties(c *gin.Context) {
	var params dto.ListDirectoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	parties, err := h.directoryService.ListParties(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListPartiesResponse(parties))
}

// getParty godoc
// @Summary Get a customer
// @Tags directory
// @Produce  json
// @Param   partyID path string true "Party ID"
// @Success 200 {object} dto.PartyResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /parties/{partyID} [get]
func (h *directoryHandler) getParty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	party, err := h.directoryService.GetParty(c.Request.Context(), actor, c.Param("partyID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve customer")
		return
	}
	c.JSON(http.StatusOK, dto.ToPartyResponse(party))
}

// createParty godoc
// @Summary Register a customer
// @Description Adds a customer ahead of any order. A customer with the same natural key already on file is rejected.
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   party body dto.PartyRequest true "Customer details"
// @Success 201 {object} dto.PartyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Customer already exists"
// @Security BearerAuth
// @Router /parties [post]
func (h *directoryHandler) createParty(c *gin.Context) {
	var req dto.PartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	party, err := h.directoryService.CreateParty(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create customer")
		return
	}
	c.JSON(http.StatusCreated, dto.ToPartyResponse(party))
}

// deleteParty godoc
// @Summary Delete a customer
// @Tags directory
// @Param   partyID path string true "Party ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Customer still has orders"
// @Security BearerAuth
// @Router /parties/{partyID} [delete]
func (h *directoryHandler) deleteParty(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.directoryService.DeleteParty(c.Request.Context(), actor, c.Param("partyID")); err != nil {
		respondError(c, err, "Failed to delete customer")
		return
	}
	c.Status(http.StatusNoContent)
}

// listSuppliers godoc
// @Summary List suppliers
// @Tags directory
// @Produce  json
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListSuppliersResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers [get]
func (h *directoryHandler) listSuppliers(c *gin.Context) {
	var params dto.ListDirectoryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	suppliers, err := h.directoryService.ListSuppliers(c.Request.Context(), actor, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list suppliers")
		return
	}
	c.JSON(http.StatusOK, dto.ToListSuppliersResponse(suppliers))
}

// getSupplier godoc
// @Summary Get a supplier
// @Tags directory
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Success 200 {object} dto.SupplierResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{supplierID} [get]
func (h *directoryHandler) getSupplier(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	supplier, err := h.directoryService.GetSupplier(c.Request.Context(), actor, c.Param("supplierID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// createSupplier godoc
// @Summary Register a supplier
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   supplier body dto.SupplierRequest true "Supplier details"
// @Success 201 {object} dto.SupplierResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Supplier already exists"
// @Security BearerAuth
// @Router /suppliers [post]
func (h *directoryHandler) createSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	supplier, err := h.directoryService.CreateSupplier(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err, "Failed to create supplier")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSupplierResponse(supplier))
}

// updateSupplier godoc
// @Summary Replace a supplier's name and contacts
// @Tags directory
// @Accept  json
// @Produce  json
// @Param   supplierID path string true "Supplier ID"
// @Param   supplier body dto.SupplierRequest true "Supplier details"
// @Success 200 {object} dto.SupplierResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /suppliers/{supplierID} [put]
func (h *directoryHandler) updateSupplier(c *gin.Context) {
	var req dto.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	supplier, err := h.directoryService.UpdateSupplier(c.Request.Context(), actor, c.Param("supplierID"), req)
	if err != nil {
		respondError(c, err, "Failed to update supplier")
		return
	}
	c.JSON(http.StatusOK, dto.ToSupplierResponse(supplier))
}

// deleteSupplier godoc
// @Summary Delete a supplier
// @Tags directory
// @Param   supplierID path string true "Supplier ID"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Supplier still supplies a tour"
// @Security BearerAuth
// @Router /suppliers/{supplierID} [delete]
func (h *directoryHandler) deleteSupplier(c *gin.Context) {
	actor, ok := requireActor(c)
	if !ok {
		return
	}

	if err := h.directoryService.DeleteSupplier(c.Request.Context(), actor, c.Param("supplierID")); err != nil {
		respondError(c, err, "Failed to delete supplier")
		return
	}
	c.Status(http.StatusNoContent)
}
