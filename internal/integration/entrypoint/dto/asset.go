package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-dashboard/backend/internal/domain/entity"
)

// CreateAssetRequest represents the request body for creating an asset.
type CreateAssetRequest struct {
	Name            string          `json:"name" binding:"required"`
	Type            string          `json:"type" binding:"required,oneof=equity mutual_fund bonds etf other"`
	Quantity        decimal.Decimal `json:"quantity" binding:"required"`
	PurchasePrice   decimal.Decimal `json:"purchase_price" binding:"required"`
	CurrentPrice    decimal.Decimal `json:"current_price" binding:"required"`
	Broker          string          `json:"broker"`
	BrokerAccountID string          `json:"broker_account_id"`
}

// UpdateAssetRequest represents the partial-update request body. Absent
// fields are left untouched.
type UpdateAssetRequest struct {
	Name            *string          `json:"name,omitempty"`
	Type            *string          `json:"type,omitempty" binding:"omitempty,oneof=equity mutual_fund bonds etf other"`
	Quantity        *decimal.Decimal `json:"quantity,omitempty"`
	PurchasePrice   *decimal.Decimal `json:"purchase_price,omitempty"`
	CurrentPrice    *decimal.Decimal `json:"current_price,omitempty"`
	Broker          *string          `json:"broker,omitempty"`
	BrokerAccountID *string          `json:"broker_account_id,omitempty"`
}

// AssetResponse represents an asset in API responses, including the stored
// derived snapshot.
type AssetResponse struct {
	ID                string          `json:"id"`
	Name              string          `json:"name"`
	Type              string          `json:"type"`
	Quantity          decimal.Decimal `json:"quantity"`
	PurchasePrice     decimal.Decimal `json:"purchase_price"`
	CurrentPrice      decimal.Decimal `json:"current_price"`
	CurrentValue      decimal.Decimal `json:"current_value"`
	InvestmentAmount  decimal.Decimal `json:"investment_amount"`
	ProfitLoss        decimal.Decimal `json:"profit_loss"`
	ProfitLossPercent decimal.Decimal `json:"profit_loss_percent"`
	Broker            string          `json:"broker,omitempty"`
	BrokerAccountID   string          `json:"broker_account_id,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ListAssetsResponse represents the response for listing assets.
type ListAssetsResponse struct {
	Assets []AssetResponse `json:"assets"`
	Total  int             `json:"total"`
}

// ToAssetResponse converts an Asset entity to its response form.
func ToAssetResponse(a *entity.Asset) AssetResponse {
	return AssetResponse{
		ID:                a.ID.String(),
		Name:              a.Name,
		Type:              string(a.Type),
		Quantity:          a.Quantity,
		PurchasePrice:     a.PurchasePrice,
		CurrentPrice:      a.CurrentPrice,
		CurrentValue:      a.CurrentValue,
		InvestmentAmount:  a.InvestmentAmount,
		ProfitLoss:        a.ProfitLoss,
		ProfitLossPercent: a.ProfitLossPercent,
		Broker:            a.Broker,
		BrokerAccountID:   a.BrokerAccountID,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// ToListAssetsResponse converts an asset slice to its response form.
func ToListAssetsResponse(assets []entity.Asset) ListAssetsResponse {
	responses := make([]AssetResponse, 0, len(assets))
	for i := range assets {
		responses = append(responses, ToAssetResponse(&assets[i]))
	}
	return ListAssetsResponse{
		Assets: responses,
		Total:  len(responses),
	}
}
