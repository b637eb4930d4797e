package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/app/services"
	"github.com/ozgekaya/alumnihub/internal/middleware"
)

// AnnouncementController handles announcement and tag endpoints
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new AnnouncementController
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// List handles GET /announcements
func (c *AnnouncementController) List(ctx *gin.Context) {
	result, err := c.announcementService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// GetBySlug handles GET /announcements/:slug
func (c *AnnouncementController) GetBySlug(ctx *gin.Context) {
	slug := ctx.Param("slug")

	result, err := c.announcementService.GetBySlug(ctx.Request.Context(), slug)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}

// Create handles POST /announcements
func (c *AnnouncementController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateAnnouncementRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	result, err := c.announcementService.Create(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(result))
}

// ListTags handles GET /tags
func (c *AnnouncementController) ListTags(ctx *gin.Context) {
	tags, err := c.announcementService.ListTags(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(tags))
}

// CreateTag handles POST /tags
func (c *AnnouncementController) CreateTag(ctx *gin.Context) {
	var req dto.CreateTagRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	tag, err := c.announcementService.CreateTag(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(tag))
}
