package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/app/services"
	"github.com/ozgekaya/alumnihub/internal/middleware"
)

// AnalyticsController handles the staff dashboard endpoint
type AnalyticsController struct {
	analyticsService *services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// GetDashboard handles GET /analytics/dashboard
func (c *AnalyticsController) GetDashboard(ctx *gin.Context) {
	result, err := c.analyticsService.GetDashboard(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
