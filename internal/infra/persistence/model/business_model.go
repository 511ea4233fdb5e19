package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// BusinessModel mirrors the 'businesses' table. Opening hours are stored as
// a JSONB document; the location uses a PostGIS point for nearby search.
type BusinessModel struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	OwnerID            uuid.UUID      `gorm:"type:uuid;not null;index"`
	Name               string         `gorm:"type:varchar(100);not null"`
	Description        string         `gorm:"type:text"`
	Category           string         `gorm:"type:varchar(50);index"`
	Location           Point          `gorm:"not null"`
	FullAddress        string         `gorm:"type:text;not null"`
	Hours              datatypes.JSON `gorm:"type:jsonb"`
	MinOrderAmount     float64        `gorm:"type:decimal(10,2);not null;default:0"`
	AdvanceNoticeHours int            `gorm:"not null;default:0"`
	CommissionRate     float64        `gorm:"type:decimal(4,3);not null;default:0"`
	IsActive           bool           `gorm:"not null;default:true"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
	DeletedAt          *time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (BusinessModel) TableName() string {
	return "businesses"
}
