// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core entity in the system, representing a unique "person" or "account".
// It contains only the most fundamental identity information shared across all roles.
type User struct {
	ID                   uuid.UUID             // The Global Unique Identifier (GUID) for the user.
	Email                string                // The user's primary contact email, often used as a login identifier.
	Name                 string                // The user's display name.
	Phone                string                // Optional contact phone number.
	AvatarURL            string                // Optional profile image URL.
	WalletBalance        float64               // Prepaid balance usable for advance orders.
	CreatorProfile       *CreatorProfile       // Pointer to the creator-specific profile. Nil if this person is not a route creator.
	BusinessOwnerProfile *BusinessOwnerProfile // Pointer to the business-owner profile. Nil if this person does not run a business.
	CreatedAt            time.Time             // Timestamp of when this user account was created.
	UpdatedAt            time.Time             // Timestamp of the last modification to this user's data.
}

// CreatorProfile holds data specific to the "route creator" role.
type CreatorProfile struct {
	UserID          uuid.UUID // Foreign Key that links this profile to a core User entity.
	Bio             string    // Short self-introduction shown on the creator's public page.
	TotalEarnings   float64   // Accumulated creator earnings across all route sales.
	RoutesPublished int       // Number of routes this creator has in the published state.
	Rating          float64   // Aggregate rating across the creator's published routes.
	UpdatedAt       time.Time // Timestamp of the last modification to this profile.
}

// BusinessOwnerProfile holds data specific to the "business owner" role.
type BusinessOwnerProfile struct {
	UserID      uuid.UUID // Foreign Key that links this profile to a core User entity.
	CompanyName string    // The registered company or shop name.
	TaxID       string    // The owner's business registration number.
	UpdatedAt   time.Time // Timestamp of the last modification to this profile.
}

// IsCreator reports whether the user carries the creator role.
func (u *User) IsCreator() bool {
	return u != nil && u.CreatorProfile != nil
}

// IsBusinessOwner reports whether the user carries the business-owner role.
func (u *User) IsBusinessOwner() bool {
	return u != nil && u.BusinessOwnerProfile != nil
}
