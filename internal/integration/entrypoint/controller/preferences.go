package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/preferences"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// PreferencesController handles the display preferences endpoints.
type PreferencesController struct {
	getUseCase    *preferences.GetPreferencesUseCase
	updateUseCase *preferences.UpdatePreferencesUseCase
}

// NewPreferencesController creates a new preferences controller instance.
func NewPreferencesController(
	getUseCase *preferences.GetPreferencesUseCase,
	updateUseCase *preferences.UpdatePreferencesUseCase,
) *PreferencesController {
	return &PreferencesController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /preferences requests.
func (c *PreferencesController) Get(ctx *gin.Context) {
	prefs, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve preferences",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}

// Update handles PATCH /preferences requests.
func (c *PreferencesController) Update(ctx *gin.Context) {
	var req dto.UpdatePreferencesRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := preferences.UpdatePreferencesInput{
		DarkMode: req.DarkMode,
		FontSize: req.FontSize,
	}

	prefs, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update preferences",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPreferencesResponse(prefs))
}
