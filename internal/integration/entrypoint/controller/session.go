package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/finance-dashboard/backend/internal/application/usecase/session"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// SessionController handles the passcode exchange endpoint.
type SessionController struct {
	createUseCase *session.CreateSessionUseCase
}

// NewSessionController creates a new session controller instance.
func NewSessionController(createUseCase *session.CreateSessionUseCase) *SessionController {
	return &SessionController{createUseCase: createUseCase}
}

// Create handles POST /session requests, exchanging the passcode for a
// bearer token.
func (c *SessionController) Create(ctx *gin.Context) {
	var req dto.CreateSessionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := session.CreateSessionInput{Passcode: req.Passcode}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleSessionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SessionResponse{Token: output.Token})
}

// handleSessionError maps session errors to HTTP responses.
func (c *SessionController) handleSessionError(ctx *gin.Context, err error) {
	var sessionErr *domainerror.SessionError
	if errors.As(err, &sessionErr) {
		statusCode := http.StatusUnauthorized
		if sessionErr.Code == domainerror.ErrCodeAccessLockDisabled {
			statusCode = http.StatusConflict
		}
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: sessionErr.Message,
			Code:  string(sessionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
