package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email         string    `gorm:"type:varchar(255);unique;not null"`
	Name          string    `gorm:"type:varchar(100)"`
	Phone         string    `gorm:"type:varchar(30)"`
	AvatarURL     string    `gorm:"type:text"`
	WalletBalance float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     *time.Time `gorm:"index"`

	CreatorProfile       *CreatorProfileModel       `gorm:"foreignKey:UserID"`
	BusinessOwnerProfile *BusinessOwnerProfileModel `gorm:"foreignKey:UserID"`
	Authentications      []AuthenticationModel      `gorm:"foreignKey:UserID"`
	RefreshTokens        []RefreshTokenModel        `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// CreatorProfileModel mirrors the 'creator_profiles' table. UserID references users.id (UUID).
type CreatorProfileModel struct {
	UserID          uuid.UUID `gorm:"primaryKey"`
	Bio             string    `gorm:"type:text"`
	TotalEarnings   float64   `gorm:"type:decimal(12,2);not null;default:0"`
	RoutesPublished int       `gorm:"not null;default:0"`
	Rating          float64   `gorm:"type:decimal(3,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (CreatorProfileModel) TableName() string {
	return "creator_profiles"
}

// BusinessOwnerProfileModel mirrors the 'business_owner_profiles' table. UserID references users.id (UUID).
type BusinessOwnerProfileModel struct {
	UserID      uuid.UUID `gorm:"primaryKey"`
	CompanyName string    `gorm:"type:varchar(100);not null"`
	TaxID       string    `gorm:"type:varchar(50);not null;unique"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (BusinessOwnerProfileModel) TableName() string {
	return "business_owner_profiles"
}
