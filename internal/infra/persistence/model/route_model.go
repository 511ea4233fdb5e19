package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RouteModel mirrors the 'routes' table. Geometry columns use PostGIS types
// through the EWKB wrappers in geometry.go.
type RouteModel struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CreatorID     uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title         string         `gorm:"type:varchar(200);not null"`
	Description   string         `gorm:"type:text"`
	Path          LineString     `gorm:"not null"`
	StartPoint    Point          `gorm:"not null"`
	EndPoint      Point          `gorm:"not null"`
	DistanceKm    float64        `gorm:"type:decimal(8,2);not null;default:0"`
	Difficulty    string         `gorm:"type:varchar(30)"`
	Tags          datatypes.JSON `gorm:"type:jsonb"`
	Price         float64        `gorm:"type:decimal(10,2);not null;default:0"`
	IsFree        bool           `gorm:"not null;default:false"`
	Status        string         `gorm:"type:varchar(20);not null;default:'draft';index"`
	PurchaseCount int            `gorm:"not null;default:0"`
	ViewCount     int            `gorm:"not null;default:0"`
	Rating        float64        `gorm:"type:decimal(3,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (RouteModel) TableName() string {
	return "routes"
}

// WaypointModel mirrors the 'waypoints' table. Rows are append-only; the
// order index is unique per route.
type WaypointModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	RouteID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_waypoints_route_order"`
	OrderIndex  int       `gorm:"not null;uniqueIndex:idx_waypoints_route_order"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Location    Point     `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WaypointModel) TableName() string {
	return "waypoints"
}
