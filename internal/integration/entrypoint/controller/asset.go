package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-dashboard/backend/internal/application/usecase/asset"
	"github.com/finance-dashboard/backend/internal/domain/entity"
	domainerror "github.com/finance-dashboard/backend/internal/domain/error"
	"github.com/finance-dashboard/backend/internal/integration/entrypoint/dto"
)

// AssetController handles asset endpoints.
type AssetController struct {
	listUseCase   *asset.ListAssetsUseCase
	createUseCase *asset.CreateAssetUseCase
	updateUseCase *asset.UpdateAssetUseCase
	deleteUseCase *asset.DeleteAssetUseCase
}

// NewAssetController creates a new asset controller instance.
func NewAssetController(
	listUseCase *asset.ListAssetsUseCase,
	createUseCase *asset.CreateAssetUseCase,
	updateUseCase *asset.UpdateAssetUseCase,
	deleteUseCase *asset.DeleteAssetUseCase,
) *AssetController {
	return &AssetController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /assets requests.
func (c *AssetController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve assets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToListAssetsResponse(output.Assets))
}

// Create handles POST /assets requests.
func (c *AssetController) Create(ctx *gin.Context) {
	var req dto.CreateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingAssetFields),
		})
		return
	}

	input := asset.CreateAssetInput{
		Name:            req.Name,
		Type:            entity.AssetType(req.Type),
		Quantity:        req.Quantity,
		PurchasePrice:   req.PurchasePrice,
		CurrentPrice:    req.CurrentPrice,
		Broker:          req.Broker,
		BrokerAccountID: req.BrokerAccountID,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAssetResponse(output.Asset))
}

// Update handles PATCH /assets/:id requests. Changing quantity or either
// price recomputes the stored snapshot fields.
func (c *AssetController) Update(ctx *gin.Context) {
	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	var req dto.UpdateAssetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := asset.UpdateAssetInput{
		ID:              assetID,
		Name:            req.Name,
		Quantity:        req.Quantity,
		PurchasePrice:   req.PurchasePrice,
		CurrentPrice:    req.CurrentPrice,
		Broker:          req.Broker,
		BrokerAccountID: req.BrokerAccountID,
	}

	if req.Type != nil {
		assetType := entity.AssetType(*req.Type)
		input.Type = &assetType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAssetResponse(output.Asset))
}

// Delete handles DELETE /assets/:id requests. Deleting an absent asset
// succeeds.
func (c *AssetController) Delete(ctx *gin.Context) {
	assetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid asset ID format",
		})
		return
	}

	input := asset.DeleteAssetInput{ID: assetID}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleAssetError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleAssetError maps domain errors to HTTP responses.
func (c *AssetController) handleAssetError(ctx *gin.Context, err error) {
	var assetErr *domainerror.AssetError
	if errors.As(err, &assetErr) {
		ctx.JSON(c.getStatusCodeForAssetError(assetErr.Code), dto.ErrorResponse{
			Error: assetErr.Message,
			Code:  string(assetErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForAssetError maps asset error codes to HTTP status codes.
func (c *AssetController) getStatusCodeForAssetError(code domainerror.AssetErrorCode) int {
	switch code {
	case domainerror.ErrCodeAssetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeInvalidAssetType,
		domainerror.ErrCodeInvalidAssetAmount,
		domainerror.ErrCodeMissingAssetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
