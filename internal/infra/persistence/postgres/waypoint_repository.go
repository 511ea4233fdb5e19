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

// waypointRepository implements the repository.WaypointRepository interface.
// Waypoints are append-only; there are no update or delete operations.
type waypointRepository struct {
	db *gorm.DB
}

// NewWaypointRepository is the constructor for waypointRepository.
func NewWaypointRepository(db *gorm.DB) repository.WaypointRepository {
	return &waypointRepository{
		db: db,
	}
}

// Append adds a waypoint at the end of the route's ordered list. The order
// index is assigned from the current maximum inside a short transaction; the
// unique index on (route_id, order_index) rejects racing appends, which the
// caller may simply retry.
func (repo *waypointRepository) Append(ctx context.Context, waypoint *entity.Waypoint) error {
	waypointM := fromWaypointDomain(waypoint)

	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var maxIndex *int
		if err := tx.Model(&model.WaypointModel{}).
			Where("route_id = ?", waypoint.RouteID).
			Select("MAX(order_index)").
			Scan(&maxIndex).Error; err != nil {
			return errors.Wrap(err, "failed to read max waypoint index")
		}

		waypointM.OrderIndex = 0
		if maxIndex != nil {
			waypointM.OrderIndex = *maxIndex + 1
		}

		return tx.Create(waypointM).Error
	})
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrConflict.WrapMessage("waypoint order conflict")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRouteNotFound.WrapMessage("invalid route reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append waypoint")
	}

	// Update the entity with generated values
	waypoint.ID = waypointM.ID
	waypoint.OrderIndex = waypointM.OrderIndex
	waypoint.CreatedAt = waypointM.CreatedAt

	return nil
}

// FindByRoute retrieves all waypoints of a route ordered by their index.
func (repo *waypointRepository) FindByRoute(ctx context.Context, routeID uuid.UUID) ([]*entity.Waypoint, error) {
	var waypointModels []*model.WaypointModel

	if err := repo.db.WithContext(ctx).
		Where("route_id = ?", routeID).
		Order("order_index ASC").
		Find(&waypointModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find waypoints by route")
	}

	waypoints := make([]*entity.Waypoint, 0, len(waypointModels))
	for _, waypointM := range waypointModels {
		waypoints = append(waypoints, toWaypointDomain(waypointM))
	}

	return waypoints, nil
}

// toWaypointDomain converts a GORM WaypointModel to a domain entity.
func toWaypointDomain(data *model.WaypointModel) *entity.Waypoint {
	if data == nil {
		return nil
	}

	return &entity.Waypoint{
		ID:          data.ID,
		RouteID:     data.RouteID,
		OrderIndex:  data.OrderIndex,
		Name:        data.Name,
		Description: data.Description,
		Location:    data.Location.Point,
		CreatedAt:   data.CreatedAt,
	}
}

// fromWaypointDomain converts a domain entity to a GORM WaypointModel.
func fromWaypointDomain(data *entity.Waypoint) *model.WaypointModel {
	if data == nil {
		return nil
	}

	return &model.WaypointModel{
		ID:          data.ID,
		RouteID:     data.RouteID,
		OrderIndex:  data.OrderIndex,
		Name:        data.Name,
		Description: data.Description,
		Location:    model.Point{Point: data.Location},
	}
}
