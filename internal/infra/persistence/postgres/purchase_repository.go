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

// purchaseRepository implements the repository.PurchaseRepository interface.
// Purchase rows are insert-only; the partial unique index on
// (buyer_id, route_id) WHERE status = 'completed' is what makes concurrent
// double-submission safe without any application-level locking.
type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository is the constructor for purchaseRepository.
func NewPurchaseRepository(db *gorm.DB) repository.PurchaseRepository {
	return &purchaseRepository{
		db: db,
	}
}

// Create inserts a purchase record. A unique-constraint violation means a
// completed purchase for this (buyer, route) pair already exists; callers
// treat that as "already owned" rather than a failure.
func (repo *purchaseRepository) Create(ctx context.Context, purchase *entity.RoutePurchase) error {
	purchaseM := fromPurchaseDomain(purchase)

	if err := repo.db.WithContext(ctx).Create(purchaseM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicatePurchase
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrRouteNotFound.WrapMessage("invalid buyer or route reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "missing required purchase information")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create purchase")
	}

	// Update the entity with generated values
	purchase.ID = purchaseM.ID
	purchase.PurchasedAt = purchaseM.PurchasedAt

	return nil
}

// ExistsCompleted reports whether a completed purchase exists for the buyer and route.
func (repo *purchaseRepository) ExistsCompleted(ctx context.Context, buyerID, routeID uuid.UUID) (bool, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.RoutePurchaseModel{}).
		Where("buyer_id = ? AND route_id = ? AND status = ?", buyerID, routeID, entity.PaymentStatusCompleted.String()).
		Count(&count).Error; err != nil {
		return false, errors.Wrap(err, "failed to check completed purchase")
	}

	return count > 0, nil
}

// FindCompletedByBuyer retrieves a buyer's completed purchases, newest first.
func (repo *purchaseRepository) FindCompletedByBuyer(ctx context.Context, buyerID uuid.UUID) ([]*entity.RoutePurchase, error) {
	var purchaseModels []*model.RoutePurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND status = ?", buyerID, entity.PaymentStatusCompleted.String()).
		Order("purchased_at DESC").
		Find(&purchaseModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find purchases by buyer")
	}

	purchases := make([]*entity.RoutePurchase, 0, len(purchaseModels))
	for _, purchaseM := range purchaseModels {
		purchases = append(purchases, toPurchaseDomain(purchaseM))
	}

	return purchases, nil
}

// FindByBuyerAndRoute retrieves the completed purchase for a (buyer, route) pair.
func (repo *purchaseRepository) FindByBuyerAndRoute(ctx context.Context, buyerID, routeID uuid.UUID) (*entity.RoutePurchase, error) {
	var purchaseM model.RoutePurchaseModel

	if err := repo.db.WithContext(ctx).
		Where("buyer_id = ? AND route_id = ? AND status = ?", buyerID, routeID, entity.PaymentStatusCompleted.String()).
		First(&purchaseM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPurchaseNotFound
		}

		return nil, errors.Wrap(err, "failed to find purchase by buyer and route")
	}

	return toPurchaseDomain(&purchaseM), nil
}

// toPurchaseDomain converts a GORM RoutePurchaseModel to a domain entity.
func toPurchaseDomain(data *model.RoutePurchaseModel) *entity.RoutePurchase {
	if data == nil {
		return nil
	}

	return &entity.RoutePurchase{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		RouteID:         data.RouteID,
		AmountPaid:      data.AmountPaid,
		CreatorEarnings: data.CreatorEarnings,
		PlatformFee:     data.PlatformFee,
		Status:          entity.PaymentStatus(data.Status),
		TransactionID:   data.TransactionID,
		PurchasedAt:     data.PurchasedAt,
	}
}

// fromPurchaseDomain converts a domain entity to a GORM RoutePurchaseModel.
func fromPurchaseDomain(data *entity.RoutePurchase) *model.RoutePurchaseModel {
	if data == nil {
		return nil
	}

	return &model.RoutePurchaseModel{
		ID:              data.ID,
		BuyerID:         data.BuyerID,
		RouteID:         data.RouteID,
		AmountPaid:      data.AmountPaid,
		CreatorEarnings: data.CreatorEarnings,
		PlatformFee:     data.PlatformFee,
		Status:          data.Status.String(),
		TransactionID:   data.TransactionID,
	}
}
