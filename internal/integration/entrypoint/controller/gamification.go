package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/gamification"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// GamificationController handles the gamification endpoint.
type GamificationController struct {
	getUseCase *gamification.GetGamificationUseCase
}

// NewGamificationController creates a new gamification controller instance.
func NewGamificationController(getUseCase *gamification.GetGamificationUseCase) *GamificationController {
	return &GamificationController{getUseCase: getUseCase}
}

// Get handles GET /gamification requests. The whole view is recomputed from
// the current collections on every call.
func (c *GamificationController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute gamification state",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToGamificationResponse(output))
}
