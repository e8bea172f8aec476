package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	accountapp "github.com/storefront/backend/internal/application/account"
)

// AddressHandler handles saved delivery address API endpoints
type AddressHandler struct {
	BaseHandler
	addressService *accountapp.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService *accountapp.AddressService) *AddressHandler {
	return &AddressHandler{addressService: addressService}
}

// List returns the caller's saved addresses.
// GET /address
func (h *AddressHandler) List(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addresses, err := h.addressService.List(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, addresses)
}

// Create saves a delivery address. Each account holds at most one address
// per type.
// POST /address
func (h *AddressHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req accountapp.CreateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	address, err := h.addressService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, address)
}

// Delete removes one of the caller's saved addresses. Addresses belonging
// to other users are reported as not found.
// DELETE /address/:id
func (h *AddressHandler) Delete(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid address ID")
		return
	}

	if err := h.addressService.Delete(c.Request.Context(), userID, addressID); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
