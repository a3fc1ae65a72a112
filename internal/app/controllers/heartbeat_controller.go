package controllers

import (
	"github.com/gin-gonic/gin"

	"hearttune-http-service/internal/domain/services"
	"hearttune-http-service/internal/domain/services/container"
	"hearttune-http-service/internal/error/code"
	"hearttune-http-service/internal/error/response"
	"hearttune-http-service/internal/infrastructure/config"
)

// InterfaceHeartbeatController defines the heartbeat controller interface
type InterfaceHeartbeatController interface {
	AddSample()
	GetLatest()
	SetLive()
	GetLive()
}

// HeartbeatController handles heart-rate sample storage and the live slot
type HeartbeatController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewHeartbeatController creates a new heartbeat controller
func NewHeartbeatController(ctx *gin.Context, container *container.ServiceContainer) *HeartbeatController {
	return &HeartbeatController{
		Ctx:       ctx,
		Container: container,
	}
}

// AddSampleRequest is the sample payload
type AddSampleRequest struct {
	ChildName  string `json:"childName" binding:"required" example:"Alex"`
	FamilyCode string `json:"familyCode" binding:"required" example:"FAM-AB12C"`
	Heartbeat  int    `json:"heartbeat" binding:"required" example:"92"`
}

// LiveHeartbeatRequest is the live slot payload
type LiveHeartbeatRequest struct {
	Heartbeat int `json:"heartbeat" example:"92"`
}

// HandleHeartbeatFunc returns a Gin handler that dispatches to the heartbeat controller
func HandleHeartbeatFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewHeartbeatController(ctx, container)

		switch method {
		case "addSample":
			controller.AddSample()
		case "getLatest":
			controller.GetLatest()
		case "setLive":
			controller.SetLive()
		case "getLive":
			controller.GetLive()
		default:
			response.Error(ctx, code.ErrBind, "invalid method")
		}
	}
}

// 1. AddSample stores one heart-rate sample
// @Summary      Store a heartbeat sample
// @Tags         Heartbeat
// @Accept       json
// @Produce      json
// @Param        request body AddSampleRequest true "Sample fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /heartbeat/add [post]
func (c *HeartbeatController) AddSample() {
	var req AddSampleRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Error(c.Ctx, code.ErrValidation, "")
		return
	}

	heartbeatService := c.Container.GetService("heartbeat").(services.InterfaceHeartbeatService)
	if err := heartbeatService.AddSample(req.ChildName, req.FamilyCode, req.Heartbeat); err != nil {
		config.Error("store heartbeat failed: %v", err)
		c.Ctx.JSON(code.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	response.Success(c.Ctx, gin.H{"success": true})
}

// 2. GetLatest returns the newest sample for a child/code pair
// @Summary      Fetch the latest heartbeat sample
// @Tags         Heartbeat
// @Produce      json
// @Param        childName path string true "Child name"
// @Param        familyCode path string true "Family code"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  map[string]interface{}
// @Router       /heartbeat/{childName}/{familyCode} [get]
func (c *HeartbeatController) GetLatest() {
	childName := c.Ctx.Param("childName")
	familyCode := c.Ctx.Param("familyCode")

	heartbeatService := c.Container.GetService("heartbeat").(services.InterfaceHeartbeatService)
	latest, err := heartbeatService.LatestSample(childName, familyCode)
	if err != nil {
		config.Error("fetch heartbeat failed: %v", err)
		c.Ctx.JSON(code.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	// A child that never reported reads as zero, not as an error.
	if latest == nil {
		response.Success(c.Ctx, gin.H{"heartbeat": 0})
		return
	}
	response.Success(c.Ctx, latest)
}

// 3. SetLive overwrites the live heartbeat slot
// @Summary      Report the live heartbeat
// @Tags         Heartbeat
// @Accept       json
// @Produce      json
// @Param        request body LiveHeartbeatRequest true "Live value"
// @Success      200
// @Router       /heartbeat [post]
func (c *HeartbeatController) SetLive() {
	var req LiveHeartbeatRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Error(c.Ctx, code.ErrValidation, "")
		return
	}

	heartbeatService := c.Container.GetService("heartbeat").(services.InterfaceHeartbeatService)
	heartbeatService.SetLive(req.Heartbeat)
	c.Ctx.Status(code.StatusOK)
}

// 4. GetLive reads the live heartbeat slot
// @Summary      Read the live heartbeat
// @Tags         Heartbeat
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /heartbeat [get]
func (c *HeartbeatController) GetLive() {
	heartbeatService := c.Container.GetService("heartbeat").(services.InterfaceHeartbeatService)
	response.Success(c.Ctx, gin.H{"heartbeat": heartbeatService.GetLive()})
}
