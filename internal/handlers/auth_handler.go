package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/auth"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/logger"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
)

type AuthHandler struct {
	userRepo   postgres.UserRepository
	tokens     *auth.TokenManager
	cookieName string
}

func NewAuthHandler(userRepo postgres.UserRepository, tokens *auth.TokenManager, cookieName string) *AuthHandler {
	return &AuthHandler{
		userRepo:   userRepo,
		tokens:     tokens,
		cookieName: cookieName,
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	user, err := h.userRepo.GetByUsername(req.Username)
	if err != nil || !user.CheckPassword(req.Password) {
		// Same answer for unknown user and wrong password.
		response.UnauthorizedError(c, "Invalid credentials")
		return
	}

	principal := user.Principal()
	token, err := h.tokens.Issue(principal)
	if err != nil {
		logger.Handler("auth").Error("Failed to issue token", "username", req.Username, "error", err)
		response.InternalServerError(c, "Failed to create session")
		return
	}

	maxAge := int(h.tokens.TTL().Seconds())
	c.SetCookie(h.cookieName, token, maxAge, "/", "", false, true)

	response.SuccessResponse(c, http.StatusOK, "Logged in", principal)
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(h.cookieName, "", -1, "/", "", false, true)
	response.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}
