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

// routeRepository implements the repository.RouteRepository interface.
type routeRepository struct {
	db *gorm.DB
}

// NewRouteRepository is the constructor for routeRepository.
func NewRouteRepository(db *gorm.DB) repository.RouteRepository {
	return &routeRepository{
		db: db,
	}
}

// Create persists a new route, including its PostGIS geometry.
func (repo *routeRepository) Create(ctx context.Context, route *entity.Route) error {
	routeM, err := fromRouteDomain(route)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(routeM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("invalid creator reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required route information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create route")
	}

	// Update the entity with generated values
	route.ID = routeM.ID
	route.CreatedAt = routeM.CreatedAt
	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// FindByID retrieves a route by its unique ID, including its geometry.
func (repo *routeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Route, error) {
	var routeM model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&routeM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrRouteNotFound
		}

		return nil, errors.Wrap(err, "failed to find route by ID")
	}

	return toRouteDomain(&routeM)
}

// FindByCreator retrieves all routes authored by a creator, newest first.
func (repo *routeRepository) FindByCreator(ctx context.Context, creatorID uuid.UUID) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find routes by creator")
	}

	return toRouteDomainList(routeModels)
}

// ListPublished retrieves published routes for marketplace browsing, newest first.
func (repo *routeRepository) ListPublished(ctx context.Context, offset, limit int) ([]*entity.Route, error) {
	var routeModels []*model.RouteModel

	if err := repo.db.WithContext(ctx).
		Where("status = ?", entity.RouteStatusPublished.String()).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&routeModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list published routes")
	}

	return toRouteDomainList(routeModels)
}

// Update modifies a route's metadata and geometry.
func (repo *routeRepository) Update(ctx context.Context, route *entity.Route) error {
	routeM, err := fromRouteDomain(route)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Save(routeM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required route information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to update route")
	}

	route.UpdatedAt = routeM.UpdatedAt

	return nil
}

// UpdateStatus moves a route to a new lifecycle state.
// Transition validity is enforced by the use case layer before this call.
func (repo *routeRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RouteStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update route status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

// IncrementPurchaseCount bumps the route's completed-purchase counter.
func (repo *routeRepository) IncrementPurchaseCount(ctx context.Context, id uuid.UUID) error {
	return repo.incrementCounter(ctx, id, "purchase_count")
}

// IncrementViewCount bumps the route's full-content view counter.
func (repo *routeRepository) IncrementViewCount(ctx context.Context, id uuid.UUID) error {
	return repo.incrementCounter(ctx, id, "view_count")
}

func (repo *routeRepository) incrementCounter(ctx context.Context, id uuid.UUID, column string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.RouteModel{}).
		Where("id = ?", id).
		Update(column, gorm.Expr(column+" + 1"))

	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment route counter")
	}

	if result.RowsAffected == 0 {
		return repository.ErrRouteNotFound
	}

	return nil
}

// --- Mapper Functions ---
// Tags round-trip through a JSONB column; geometry columns use the EWKB
// wrappers from the model package.

// toRouteDomain converts a GORM RouteModel to a domain Route entity.
func toRouteDomain(data *model.RouteModel) (*entity.Route, error) {
	if data == nil {
		return nil, nil
	}

	var tags []string
	if len(data.Tags) > 0 {
		if err := json.Unmarshal(data.Tags, &tags); err != nil {
			return nil, errors.Wrap(err, "failed to decode route tags")
		}
	}

	return &entity.Route{
		ID:            data.ID,
		CreatorID:     data.CreatorID,
		Title:         data.Title,
		Description:   data.Description,
		Path:          data.Path.LineString,
		StartPoint:    data.StartPoint.Point,
		EndPoint:      data.EndPoint.Point,
		DistanceKm:    data.DistanceKm,
		Difficulty:    data.Difficulty,
		Tags:          tags,
		Price:         data.Price,
		IsFree:        data.IsFree,
		Status:        entity.RouteStatus(data.Status),
		PurchaseCount: data.PurchaseCount,
		ViewCount:     data.ViewCount,
		Rating:        data.Rating,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}, nil
}

func toRouteDomainList(routeModels []*model.RouteModel) ([]*entity.Route, error) {
	routes := make([]*entity.Route, 0, len(routeModels))
	for _, routeM := range routeModels {
		route, err := toRouteDomain(routeM)
		if err != nil {
			return nil, err
		}
		routes = append(routes, route)
	}

	return routes, nil
}

// fromRouteDomain converts a domain Route entity to a GORM RouteModel.
func fromRouteDomain(data *entity.Route) (*model.RouteModel, error) {
	if data == nil {
		return nil, nil
	}

	var tags datatypes.JSON
	if len(data.Tags) > 0 {
		encoded, err := json.Marshal(data.Tags)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode route tags")
		}
		tags = datatypes.JSON(encoded)
	}

	return &model.RouteModel{
		ID:            data.ID,
		CreatorID:     data.CreatorID,
		Title:         data.Title,
		Description:   data.Description,
		Path:          model.LineString{LineString: data.Path},
		StartPoint:    model.Point{Point: data.StartPoint},
		EndPoint:      model.Point{Point: data.EndPoint},
		DistanceKm:    data.DistanceKm,
		Difficulty:    data.Difficulty,
		Tags:          tags,
		Price:         data.Price,
		IsFree:        data.IsFree,
		Status:        data.Status.String(),
		PurchaseCount: data.PurchaseCount,
		ViewCount:     data.ViewCount,
		Rating:        data.Rating,
	}, nil
}
