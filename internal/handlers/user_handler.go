package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/middleware"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/response"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/storage/postgres"
	"github.com/DuminduEdirisinghe/ganitha-sawiya-tracker/internal/validation"
)

type UserHandler struct {
	userRepo postgres.UserRepository
}

func NewUserHandler(userRepo postgres.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListUsers handles GET /api/admin/users (super admin only, enforced
// by route middleware)
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userRepo.GetAll()
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

type ResetPasswordRequest struct {
	Username    string `json:"username" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

// ResetPassword handles POST /api/admin/users/reset (super admin only)
func (h *UserHandler) ResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := validation.ValidateMinLength(req.NewPassword, 6, "password"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.userRepo.UpdatePassword(req.Username, string(hash)); err != nil {
		if errors.Is(err, postgres.ErrUserNotFound) {
			response.NotFoundError(c, "User not found")
			return
		}
		response.InternalServerError(c, "Failed to reset password")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Password reset", nil)
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// ChangePassword handles PUT /api/profile/password
func (h *UserHandler) ChangePassword(c *gin.Context) {
	principal := middleware.PrincipalFrom(c)

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequestError(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := validation.ValidateMinLength(req.NewPassword, 6, "password"); err != nil {
		response.BadRequestError(c, err.Error())
		return
	}

	user, err := h.userRepo.GetByUsername(principal.Username)
	if err != nil {
		response.InternalServerError(c, "Failed to retrieve account")
		return
	}

	if !user.CheckPassword(req.CurrentPassword) {
		response.BadRequestError(c, "Current password incorrect")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.InternalServerError(c, "Failed to hash password")
		return
	}

	if err := h.userRepo.UpdatePassword(principal.Username, string(hash)); err != nil {
		response.InternalServerError(c, "Failed to change password")
		return
	}

	response.SuccessResponse(c, http.StatusOK, "Password changed", nil)
}
