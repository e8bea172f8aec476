package handler

import (
	"github.com/gin-gonic/gin"
	accountapp "github.com/storefront/backend/internal/application/account"
)

// AuthHandler handles registration and token API endpoints
type AuthHandler struct {
	BaseHandler
	accountService *accountapp.AccountService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(accountService *accountapp.AccountService) *AuthHandler {
	return &AuthHandler{accountService: accountService}
}

// Register creates a new account.
// POST /register
func (h *AuthHandler) Register(c *gin.Context) {
	var req accountapp.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// Token exchanges credentials for a token pair.
// POST /token
func (h *AuthHandler) Token(c *gin.Context) {
	var req accountapp.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pair, err := h.accountService.Authenticate(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pair)
}

// Refresh exchanges a refresh token for a fresh token pair.
// POST /token/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var req accountapp.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pair, err := h.accountService.Refresh(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pair)
}

// Me returns the authenticated account's profile.
// GET /me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}
