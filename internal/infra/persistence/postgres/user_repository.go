// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a single user by their unique ID, preloading their role profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CreatorProfile").
		Preload("BusinessOwnerProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading their role profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("CreatorProfile").
		Preload("BusinessOwnerProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its associated profiles, to the database.
// GORM's Create with associations inserts into users, creator_profiles and/or
// business_owner_profiles within a single statement batch.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.CreatorProfile != nil && userM.CreatorProfile != nil {
		user.CreatorProfile.UserID = userM.CreatorProfile.UserID
		user.CreatorProfile.UpdatedAt = userM.CreatorProfile.UpdatedAt
	}
	if user.BusinessOwnerProfile != nil && userM.BusinessOwnerProfile != nil {
		user.BusinessOwnerProfile.UserID = userM.BusinessOwnerProfile.UserID
		user.BusinessOwnerProfile.UpdatedAt = userM.BusinessOwnerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its associated profiles, in the database.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	// Use Session with FullSaveAssociations to update nested associations
	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// AddCreatorEarnings atomically increments a creator's accumulated earnings.
// The purchase recorder calls this inside its transaction so the profile row
// and the purchase row commit together.
func (repo *userRepository) AddCreatorEarnings(ctx context.Context, creatorID uuid.UUID, amount float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CreatorProfileModel{}).
		Where("user_id = ?", creatorID).
		Update("total_earnings", gorm.Expr("total_earnings + ?", amount))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to add creator earnings")
	}

	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		Phone:                data.Phone,
		AvatarURL:            data.AvatarURL,
		WalletBalance:        data.WalletBalance,
		CreatorProfile:       toCreatorProfileDomain(data.CreatorProfile),
		BusinessOwnerProfile: toBusinessOwnerProfileDomain(data.BusinessOwnerProfile),
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:                   data.ID,
		Email:                data.Email,
		Name:                 data.Name,
		Phone:                data.Phone,
		AvatarURL:            data.AvatarURL,
		WalletBalance:        data.WalletBalance,
		CreatorProfile:       fromCreatorProfileDomain(data.CreatorProfile),
		BusinessOwnerProfile: fromBusinessOwnerProfileDomain(data.BusinessOwnerProfile),
	}
}

func toCreatorProfileDomain(data *model.CreatorProfileModel) *entity.CreatorProfile {
	if data == nil {
		return nil
	}

	return &entity.CreatorProfile{
		UserID:          data.UserID,
		Bio:             data.Bio,
		TotalEarnings:   data.TotalEarnings,
		RoutesPublished: data.RoutesPublished,
		Rating:          data.Rating,
		UpdatedAt:       data.UpdatedAt,
	}
}

func fromCreatorProfileDomain(data *entity.CreatorProfile) *model.CreatorProfileModel {
	if data == nil {
		return nil
	}

	return &model.CreatorProfileModel{
		UserID:          data.UserID,
		Bio:             data.Bio,
		TotalEarnings:   data.TotalEarnings,
		RoutesPublished: data.RoutesPublished,
		Rating:          data.Rating,
	}
}

func toBusinessOwnerProfileDomain(data *model.BusinessOwnerProfileModel) *entity.BusinessOwnerProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessOwnerProfile{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		TaxID:       data.TaxID,
		UpdatedAt:   data.UpdatedAt,
	}
}

func fromBusinessOwnerProfileDomain(data *entity.BusinessOwnerProfile) *model.BusinessOwnerProfileModel {
	if data == nil {
		return nil
	}

	return &model.BusinessOwnerProfileModel{
		UserID:      data.UserID,
		CompanyName: data.CompanyName,
		TaxID:       data.TaxID,
	}
}
