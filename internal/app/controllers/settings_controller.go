package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hearttune-http-service/internal/domain/services"
	"hearttune-http-service/internal/domain/services/container"
	"hearttune-http-service/internal/error/code"
	"hearttune-http-service/internal/error/response"
	"hearttune-http-service/internal/infrastructure/config"
)

// InterfaceSettingsController defines the settings controller interface
type InterfaceSettingsController interface {
	UpdateAccount()
	ChangePassword()
	DeleteAccount()
}

// SettingsController handles profile, password and account lifecycle
type SettingsController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewSettingsController creates a new settings controller
func NewSettingsController(ctx *gin.Context, container *container.ServiceContainer) *SettingsController {
	return &SettingsController{
		Ctx:       ctx,
		Container: container,
	}
}

// UpdateAccountRequest is the profile edit payload
type UpdateAccountRequest struct {
	Email     string `json:"email" binding:"required" example:"jamie@example.com"`
	FullName  string `json:"fullName" binding:"required" example:"Jamie Doe"`
	ChildName string `json:"childName" binding:"required" example:"Alex"`
}

// ChangePasswordRequest is the password change payload
type ChangePasswordRequest struct {
	UserID          string `json:"userid" binding:"required" example:"jamie01"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

// DeleteAccountRequest is the account deletion payload
type DeleteAccountRequest struct {
	UserID string `json:"userid" example:"jamie01"`
	Email  string `json:"email" example:"jamie@example.com"`
}

// HandleSettingsFunc returns a Gin handler that dispatches to the settings controller
func HandleSettingsFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewSettingsController(ctx, container)

		switch method {
		case "updateAccount":
			controller.UpdateAccount()
		case "changePassword":
			controller.ChangePassword()
		case "deleteAccount":
			controller.DeleteAccount()
		default:
			response.Error(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. UpdateAccount overwrites the profile fields
// @Summary      Update profile
// @Description  Overwrites fullName and childName for the account with this email
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body UpdateAccountRequest true "Profile fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /settings/update-account [post]
// @Security     BearerAuth
func (c *SettingsController) UpdateAccount() {
	var req UpdateAccountRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailStatus(c.Ctx, code.ErrValidation, "")
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	if err := accountService.UpdateProfile(req.Email, req.FullName, req.ChildName); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.FailStatus(c.Ctx, code.ErrAccountNotFound, "User not found")
			return
		}
		config.Error("profile update failed: %v", err)
		response.FailStatus(c.Ctx, code.ErrUnknown, "Server error")
		return
	}

	response.Success(c.Ctx, gin.H{"success": true, "message": "Account updated successfully"})
}

// 2. ChangePassword replaces the password hash
// @Summary      Change password
// @Description  Verifies the current password and stores a new hash
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body ChangePasswordRequest true "Password change fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /settings/change-password [post]
// @Security     BearerAuth
func (c *SettingsController) ChangePassword() {
	var req ChangePasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c.Ctx, code.ErrValidation, "")
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	err := accountService.ChangePassword(req.UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			response.FailMessage(c.Ctx, code.ErrAccountNotFound, "User not found")
		case errors.Is(err, services.ErrAuth):
			response.FailMessage(c.Ctx, code.ErrPasswordIncorrect, "")
		default:
			config.Error("password change failed: %v", err)
			response.ServerError(c.Ctx, "Server error")
		}
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Password changed successfully"})
}

// 3. DeleteAccount removes the account and its playlist
// @Summary      Delete account
// @Description  Deletes the account matching both userid and email, along with its playlist
// @Tags         Settings
// @Accept       json
// @Produce      json
// @Param        request body DeleteAccountRequest true "Account identifiers"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /settings/delete-account [post]
// @Security     BearerAuth
func (c *SettingsController) DeleteAccount() {
	var req DeleteAccountRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailStatus(c.Ctx, code.ErrValidation, "User ID and email are required")
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	if err := accountService.DeleteAccount(req.UserID, req.Email); err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			response.FailStatus(c.Ctx, code.ErrValidation, "User ID and email are required")
		case errors.Is(err, services.ErrNotFound):
			response.FailStatus(c.Ctx, code.ErrAccountNotFound, "User not found or email mismatch")
		default:
			config.Error("account deletion failed: %v", err)
			response.FailStatus(c.Ctx, code.ErrUnknown, "Failed to delete account")
		}
		return
	}

	response.Success(c.Ctx, gin.H{"success": true, "message": "Account deleted successfully"})
}
