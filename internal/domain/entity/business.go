// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// BusinessHours describes one weekday's opening window.
type BusinessHours struct {
	Weekday int    `json:"weekday"` // 0 = Sunday … 6 = Saturday.
	Open    string `json:"open"`    // Opening time, "HH:MM" local.
	Close   string `json:"close"`   // Closing time, "HH:MM" local.
}

// Business is a point-of-interest near the trails: a shop, restaurant or
// guide service that accepts advance orders from hikers. Businesses are not
// mutated by the purchase flows; they are listed and searched.
type Business struct {
	ID                 uuid.UUID       // The Global Unique Identifier (GUID) for the business.
	OwnerID            uuid.UUID       // The user who owns this business.
	Name               string          // The public business name.
	Description        string          // Short description shown on the listing.
	Category           string          // Free-form category, e.g. "restaurant", "gear", "guide".
	Location           orb.Point       // The business coordinate (longitude, latitude).
	FullAddress        string          // The full, human-readable street address.
	Hours              []BusinessHours // Weekly opening hours.
	MinOrderAmount     float64         // Minimum total for an advance order to be accepted.
	AdvanceNoticeHours int             // Required lead time for advance orders, in hours.
	CommissionRate     float64         // Marketplace commission applied to this business's orders.
	IsActive           bool            // Inactive businesses are hidden from search.
	CreatedAt          time.Time       // Timestamp of when this business was created.
	UpdatedAt          time.Time       // Timestamp of the last modification.
}
