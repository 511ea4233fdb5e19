// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"encoding/json"

	"kaelo/internal/domain/entity"
	domainerrors "kaelo/internal/domain/errors"
	"kaelo/internal/domain/repository"
	"kaelo/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// businessRepository implements the repository.BusinessRepository interface.
type businessRepository struct {
	db *gorm.DB
}

// NewBusinessRepository is the constructor for businessRepository.
func NewBusinessRepository(db *gorm.DB) repository.BusinessRepository {
	return &businessRepository{
		db: db,
	}
}

// Create persists a new business listing.
func (repo *businessRepository) Create(ctx context.Context, business *entity.Business) error {
	businessM, err := fromBusinessDomain(business)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(businessM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid owner reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required business information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create business")
	}

	// Update the entity with generated values
	business.ID = businessM.ID
	business.CreatedAt = businessM.CreatedAt
	business.UpdatedAt = businessM.UpdatedAt

	return nil
}

// FindByID retrieves a business by its unique ID.
func (repo *businessRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Business, error) {
	var businessM model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&businessM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrBusinessNotFound
		}

		return nil, errors.Wrap(err, "failed to find business by ID")
	}

	return toBusinessDomain(&businessM)
}

// ListActive retrieves active businesses, newest first, with paging.
func (repo *businessRepository) ListActive(ctx context.Context, offset, limit int) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = true").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list active businesses")
	}

	return toBusinessDomainList(businessModels)
}

// FindNearby retrieves active businesses within radiusMeters of the given
// coordinate, closest first.
func (repo *businessRepository) FindNearby(ctx context.Context, lat, lon, radiusMeters float64) ([]*entity.Business, error) {
	var businessModels []*model.BusinessModel

	// Use PostGIS ST_DWithin for efficient geographic queries.
	// Casting to geography makes the radius a distance in meters.
	query := `
		SELECT *
		FROM businesses
		WHERE is_active = true
		  AND deleted_at IS NULL
		  AND ST_DWithin(
		    location::geography,
		    ST_SetSRID(ST_MakePoint(?, ?), 4326)::geography,
		    ?
		  )
		ORDER BY location <-> ST_SetSRID(ST_MakePoint(?, ?), 4326)
	`

	if err := repo.db.WithContext(ctx).
		Raw(query, lon, lat, radiusMeters, lon, lat).
		Scan(&businessModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find nearby businesses")
	}

	return toBusinessDomainList(businessModels)
}

// --- Mapper Functions ---
// Opening hours round-trip through a JSONB column.

// toBusinessDomain converts a GORM BusinessModel to a domain Business entity.
func toBusinessDomain(data *model.BusinessModel) (*entity.Business, error) {
	if data == nil {
		return nil, nil
	}

	var hours []entity.BusinessHours
	if len(data.Hours) > 0 {
		if err := json.Unmarshal(data.Hours, &hours); err != nil {
			return nil, errors.Wrap(err, "failed to decode business hours")
		}
	}

	return &entity.Business{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Description:        data.Description,
		Category:           data.Category,
		Location:           data.Location.Point,
		FullAddress:        data.FullAddress,
		Hours:              hours,
		MinOrderAmount:     data.MinOrderAmount,
		AdvanceNoticeHours: data.AdvanceNoticeHours,
		CommissionRate:     data.CommissionRate,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}, nil
}

func toBusinessDomainList(businessModels []*model.BusinessModel) ([]*entity.Business, error) {
	businesses := make([]*entity.Business, 0, len(businessModels))
	for _, businessM := range businessModels {
		business, err := toBusinessDomain(businessM)
		if err != nil {
			return nil, err
		}
		businesses = append(businesses, business)
	}

	return businesses, nil
}

// fromBusinessDomain converts a domain Business entity to a GORM BusinessModel.
func fromBusinessDomain(data *entity.Business) (*model.BusinessModel, error) {
	if data == nil {
		return nil, nil
	}

	var hours datatypes.JSON
	if len(data.Hours) > 0 {
		encoded, err := json.Marshal(data.Hours)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode business hours")
		}
		hours = datatypes.JSON(encoded)
	}

	return &model.BusinessModel{
		ID:                 data.ID,
		OwnerID:            data.OwnerID,
		Name:               data.Name,
		Description:        data.Description,
		Category:           data.Category,
		Location:           model.Point{Point: data.Location},
		FullAddress:        data.FullAddress,
		Hours:              hours,
		MinOrderAmount:     data.MinOrderAmount,
		AdvanceNoticeHours: data.AdvanceNoticeHours,
		CommissionRate:     data.CommissionRate,
		IsActive:           data.IsActive,
	}, nil
}
