package model

import (
	"time"

	"github.com/google/uuid"
)

// RoutePurchaseModel mirrors the 'route_purchases' table. The partial unique
// index on (buyer_id, route_id) WHERE status = 'completed' is the sole guard
// against concurrent double-purchase; rows are never updated or deleted by
// the application.
type RoutePurchaseModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	BuyerID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_purchases_buyer_route,where:status = 'completed'"`
	RouteID         uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_route_purchases_buyer_route,where:status = 'completed'"`
	AmountPaid      float64   `gorm:"type:decimal(10,2);not null"`
	CreatorEarnings float64   `gorm:"type:decimal(10,2);not null"`
	PlatformFee     float64   `gorm:"type:decimal(10,2);not null"`
	Status          string    `gorm:"type:varchar(20);not null"`
	TransactionID   string    `gorm:"type:varchar(100);not null"`
	PurchasedAt     time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (RoutePurchaseModel) TableName() string {
	return "route_purchases"
}
