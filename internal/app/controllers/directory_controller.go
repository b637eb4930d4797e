package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ozgekaya/alumnihub/internal/app/models/dto"
	"github.com/ozgekaya/alumnihub/internal/app/services"
	"github.com/ozgekaya/alumnihub/internal/middleware"
)

// DirectoryController handles the alumni directory endpoint
type DirectoryController struct {
	directoryService *services.DirectoryService
}

// NewDirectoryController creates a new DirectoryController
func NewDirectoryController(directoryService *services.DirectoryService) *DirectoryController {
	return &DirectoryController{
		directoryService: directoryService,
	}
}

// Search handles GET /directory?q=term
func (c *DirectoryController) Search(ctx *gin.Context) {
	query := ctx.Query("q")

	result, err := c.directoryService.Search(ctx.Request.Context(), query)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(result))
}
