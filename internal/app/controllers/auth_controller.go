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

// InterfaceAuthController defines the auth controller interface
type InterfaceAuthController interface {
	Register()
	Login()
	ForgotPassword()
}

// AuthController handles registration, login and password reset
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	FullName    string `json:"fullName" binding:"required" example:"Jamie Doe"`
	ChildName   string `json:"childName" binding:"required" example:"Alex"`
	Email       string `json:"email" binding:"required,email" example:"jamie@example.com"`
	UserID      string `json:"userid" binding:"required" example:"jamie01"`
	Password    string `json:"password" binding:"required" example:"Secret@123"`
	Role        string `json:"role" binding:"required" example:"primary"`
	EnteredCode string `json:"enteredCode" example:"FAM-AB12C"`
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required" example:"jamie@example.com"`
	Password string `json:"password" binding:"required" example:"Secret@123"`
}

// ForgotPasswordRequest is the password reset payload
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required" example:"jamie@example.com"`
}

// HandleAuthFunc returns a Gin handler that dispatches to the auth controller
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "register":
			controller.Register()
		case "login":
			controller.Login()
		case "forgotPassword":
			controller.ForgotPassword()
		default:
			response.Error(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. Register creates an account
// @Summary      Register an account
// @Description  Registers a primary account (forming a new family group) or a member joining through a family code
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body RegisterRequest true "Registration fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /register [post]
func (c *AuthController) Register() {
	var req RegisterRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Error(c.Ctx, code.ErrValidation, "")
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	familyCode, err := accountService.Register(services.RegisterInput{
		FullName:    req.FullName,
		ChildName:   req.ChildName,
		Email:       req.Email,
		UserID:      req.UserID,
		Password:    req.Password,
		Role:        req.Role,
		EnteredCode: req.EnteredCode,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrChildHasFamily):
			response.Error(c.Ctx, code.ErrChildHasFamily, "")
		case errors.Is(err, services.ErrFamilyCodeRequired):
			response.Error(c.Ctx, code.ErrValidation, "Family code is required for joining a family.")
		case errors.Is(err, services.ErrFamilyCodeMismatch):
			response.Error(c.Ctx, code.ErrFamilyCodeMismatch, "")
		case errors.Is(err, services.ErrInvalidRole):
			response.Error(c.Ctx, code.ErrValidation, "Invalid role.")
		case errors.Is(err, services.ErrEmailInUse):
			response.Error(c.Ctx, code.ErrEmailInUse, "")
		case errors.Is(err, services.ErrUserIDInUse):
			response.Error(c.Ctx, code.ErrUserIDInUse, "")
		default:
			config.Error("registration failed: %v", err)
			c.Ctx.JSON(code.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	// The allocated code goes back only to primary registrations; a
	// member already knows it.
	if familyCode != "" {
		response.Success(c.Ctx, gin.H{"message": "User registered", "familyCode": familyCode})
		return
	}
	response.Success(c.Ctx, gin.H{"message": "User registered"})
}

// 2. Login validates credentials and issues a token
// @Summary      Log in
// @Description  Validates email and password, returning a 1-day bearer token and cached profile fields
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Credentials"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c.Ctx, code.ErrValidation, "")
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	result, err := jwtService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrAuth) {
			response.FailMessage(c.Ctx, code.ErrInvalidCredentials, "")
			return
		}
		config.Error("login failed: %v", err)
		response.ServerError(c.Ctx, err.Error())
		return
	}

	response.Success(c.Ctx, gin.H{
		"message":   "Login successful",
		"token":     result.Token,
		"fullName":  result.FullName,
		"childName": result.ChildName,
		"userid":    result.UserID,
		"email":     result.Email,
	})
}

// 3. ForgotPassword mails a reset link
// @Summary      Request a password reset
// @Description  Sends a reset link to the given email address
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body ForgotPasswordRequest true "Account email"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /forgot-password [post]
func (c *AuthController) ForgotPassword() {
	var req ForgotPasswordRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.FailMessage(c.Ctx, code.ErrValidation, "")
		return
	}

	accountService := c.Container.GetService("account").(services.InterfaceAccountService)
	user, err := accountService.GetUserByEmail(req.Email)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			response.FailMessage(c.Ctx, code.ErrAccountNotFound, "Email not found")
			return
		}
		response.ServerError(c.Ctx, "")
		return
	}

	emailService := c.Container.GetService("email").(services.InterfaceEmailService)
	if err := emailService.SendPasswordReset(user.Email, user.ID); err != nil {
		config.Error("failed to send reset mail to %s: %v", user.Email, err)
		response.ServerError(c.Ctx, "")
		return
	}

	response.Success(c.Ctx, gin.H{"message": "Password reset link sent to your email"})
}
