package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/portfolio"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// PortfolioController handles the portfolio endpoints.
type PortfolioController struct {
	portfolioUseCase *portfolio.PortfolioUseCase
}

// NewPortfolioController creates a new portfolio controller instance.
func NewPortfolioController(portfolioUseCase *portfolio.PortfolioUseCase) *PortfolioController {
	return &PortfolioController{portfolioUseCase: portfolioUseCase}
}

// Summary handles GET /portfolio/summary requests.
func (c *PortfolioController) Summary(ctx *gin.Context) {
	summary, err := c.portfolioUseCase.GetSummary(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute portfolio summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToPortfolioSummaryResponse(summary))
}

// Drift handles GET /portfolio/drift requests.
func (c *PortfolioController) Drift(ctx *gin.Context) {
	drift, err := c.portfolioUseCase.GetDrift(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute allocation drift",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDriftResponse(drift))
}

// Recommendations handles GET /portfolio/recommendations requests.
func (c *PortfolioController) Recommendations(ctx *gin.Context) {
	recommendations, err := c.portfolioUseCase.GetRecommendations(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute asset recommendations",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToRecommendationsResponse(recommendations))
}
