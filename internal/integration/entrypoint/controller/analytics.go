package controller

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/analytics"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// AnalyticsController handles the analytics endpoints.
type AnalyticsController struct {
	analyticsUseCase *analytics.AnalyticsUseCase
}

// NewAnalyticsController creates a new analytics controller instance.
func NewAnalyticsController(analyticsUseCase *analytics.AnalyticsUseCase) *AnalyticsController {
	return &AnalyticsController{analyticsUseCase: analyticsUseCase}
}

// monthInputFromQuery reads the optional month/year query parameters. Absent
// or invalid values leave the zero value, which resolves to the current
// month.
func monthInputFromQuery(ctx *gin.Context) analytics.MonthInput {
	var input analytics.MonthInput
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
	return input
}

// Breakdown handles GET /analytics/breakdown requests.
func (c *AnalyticsController) Breakdown(ctx *gin.Context) {
	breakdown, err := c.analyticsUseCase.GetBreakdown(ctx.Request.Context(), monthInputFromQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute category breakdown",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBreakdownResponse(breakdown))
}

// Comparison handles GET /analytics/comparison requests.
func (c *AnalyticsController) Comparison(ctx *gin.Context) {
	series, err := c.analyticsUseCase.GetComparison(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute monthly comparison",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ComparisonResponse{Months: dto.ToMonthPointResponses(series)})
}

// Heatmap handles GET /analytics/heatmap requests.
func (c *AnalyticsController) Heatmap(ctx *gin.Context) {
	days, err := c.analyticsUseCase.GetHeatmap(ctx.Request.Context(), monthInputFromQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute cash-flow heatmap",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHeatmapResponse(days))
}

// NeedsWants handles GET /analytics/needs-wants requests.
func (c *AnalyticsController) NeedsWants(ctx *gin.Context) {
	split, err := c.analyticsUseCase.GetNeedsWants(ctx.Request.Context(), monthInputFromQuery(ctx))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute needs/wants split",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToNeedsWantsResponse(split))
}

// Inflation handles GET /analytics/inflation requests.
func (c *AnalyticsController) Inflation(ctx *gin.Context) {
	inflation, err := c.analyticsUseCase.GetInflation(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute lifestyle inflation",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInflationResponse(inflation))
}
