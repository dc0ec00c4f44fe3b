package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/insights"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// InsightsController handles the insights endpoints.
type InsightsController struct {
	getUseCase   *insights.GetInsightsUseCase
	emailUseCase *insights.EmailReportUseCase
}

// NewInsightsController creates a new insights controller instance.
func NewInsightsController(
	getUseCase *insights.GetInsightsUseCase,
	emailUseCase *insights.EmailReportUseCase,
) *InsightsController {
	return &InsightsController{
		getUseCase:   getUseCase,
		emailUseCase: emailUseCase,
	}
}

// Get handles GET /insights requests.
func (c *InsightsController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute insights",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToInsightsResponse(output))
}

// SendEmail handles POST /insights/email requests. Sending is synchronous;
// the response carries the provider's message id.
func (c *InsightsController) SendEmail(ctx *gin.Context) {
	output, err := c.emailUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleReportError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.EmailReportResponse{MessageID: output.MessageID})
}

// handleReportError maps report errors to HTTP responses.
func (c *InsightsController) handleReportError(ctx *gin.Context, err error) {
	var reportErr *domainerror.ReportError
	if errors.As(err, &reportErr) {
		statusCode := http.StatusBadGateway
		if reportErr.Code == domainerror.ErrCodeReportingNotConfigured {
			statusCode = http.StatusServiceUnavailable
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: reportErr.Message,
			Code:  string(reportErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
