// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetType represents the kind of investment an asset records.
type AssetType string

const (
	AssetTypeEquity     AssetType = "equity"
	AssetTypeMutualFund AssetType = "mutual_fund"
	AssetTypeBonds      AssetType = "bonds"
	AssetTypeETF        AssetType = "etf"
	AssetTypeOther      AssetType = "other"
)

// Asset represents a manually entered investment holding.
//
// CurrentValue, InvestmentAmount, ProfitLoss and ProfitLossPercent are
// snapshots computed once at entry time and stored. They are intentionally not
// recomputed after creation; an update that changes prices must recompute them
// explicitly.
type Asset struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	Type              AssetType       `json:"type"`
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

// NewAsset creates a new Asset entity with its derived snapshot fields filled
// in from quantity and the two prices.
func NewAsset(
	name string,
	assetType AssetType,
	quantity decimal.Decimal,
	purchasePrice decimal.Decimal,
	currentPrice decimal.Decimal,
	broker string,
	brokerAccountID string,
) *Asset {
	now := time.Now().UTC()

	a := &Asset{
		ID:              uuid.New(),
		Name:            name,
		Type:            assetType,
		Quantity:        quantity,
		PurchasePrice:   purchasePrice,
		CurrentPrice:    currentPrice,
		Broker:          broker,
		BrokerAccountID: brokerAccountID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	a.RecomputeSnapshot()
	return a
}

// RecomputeSnapshot refreshes the stored derived fields from quantity and
// prices. ProfitLossPercent is zero when the investment amount is zero.
func (a *Asset) RecomputeSnapshot() {
	a.CurrentValue = a.Quantity.Mul(a.CurrentPrice)
	a.InvestmentAmount = a.Quantity.Mul(a.PurchasePrice)
	a.ProfitLoss = a.CurrentValue.Sub(a.InvestmentAmount)
	if a.InvestmentAmount.IsZero() {
		a.ProfitLossPercent = decimal.Zero
		return
	}
	a.ProfitLossPercent = a.ProfitLoss.
		Div(a.InvestmentAmount).
		Mul(decimal.NewFromInt(100)).
		Round(2)
}
