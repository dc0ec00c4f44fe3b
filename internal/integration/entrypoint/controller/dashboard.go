package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/dashboard"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// DashboardController handles the dashboard summary endpoint.
type DashboardController struct {
	summaryUseCase *dashboard.GetSummaryUseCase
}

// NewDashboardController creates a new dashboard controller instance.
func NewDashboardController(summaryUseCase *dashboard.GetSummaryUseCase) *DashboardController {
	return &DashboardController{summaryUseCase: summaryUseCase}
}

// Summary handles GET /dashboard/summary requests. The month and year query
// parameters select the month; both default to the current one.
func (c *DashboardController) Summary(ctx *gin.Context) {
	var input dashboard.GetSummaryInput

	if monthStr := ctx.Query("month"); monthStr != "" {
		if monthNum, err := strconv.Atoi(monthStr); err == nil && monthNum >= 1 && monthNum <= 12 {
			input.Month = time.Month(monthNum)
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if year, err := strconv.Atoi(yearStr); err == nil {
			input.Year = year
		}
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute dashboard summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDashboardSummaryResponse(output))
}
