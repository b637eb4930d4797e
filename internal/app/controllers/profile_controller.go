package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/app/services"
	"github.com/ozgekaya/alumnihub/internal/middleware"
	"github.com/ozgekaya/alumnihub/internal/pkg/apperrors"
)

// ProfileController handles the caller's own profile endpoints
type ProfileController struct {
	profileService *services.ProfileService
}

// NewProfileController creates a new ProfileController
func NewProfileController(profileService *services.ProfileService) *ProfileController {
	return &ProfileController{
		profileService: profileService,
	}
}

// GetMyProfile handles GET /profiles/me
func (c *ProfileController) GetMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	profile, err := c.profileService.GetMyProfile(ctx.Request.Context(), userID)
	if err != nil {
		// A missing profile is the empty-form case, not an error
		if errors.Is(err, apperrors.ErrProfileNotFound) {
			ctx.JSON(http.StatusOK, dto.NewSuccessResponse(nil))
			return
		}
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}

// SaveMyProfile handles PUT /profiles/me. Creates the profile on first
// save and updates it afterwards.
func (c *ProfileController) SaveMyProfile(ctx *gin.Context) {
	userID, ok := middleware.GetUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SaveProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	profile, err := c.profileService.SaveMyProfile(ctx.Request.Context(), userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(profile))
}
