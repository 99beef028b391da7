package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"inventory-rest-api/internal/metrics"
	"inventory-rest-api/internal/model"
	"inventory-rest-api/internal/repository"
	"inventory-rest-api/pkg/apierror"
)

// StockService applies stock operations. Each call changes the item quantity
// and appends the audit record together, or does neither.
type StockService struct {
	operations repository.OperationRepository
	membership *Membership
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewStockService creates a new stock service. m may be nil.
func NewStockService(operations repository.OperationRepository, membership *Membership, m *metrics.Metrics, logger *slog.Logger) *StockService {
	if logger == nil {
		logger = slog.Default()
	}
	return &StockService{operations: operations, membership: membership, metrics: m, logger: logger}
}

// ApplyOperation adds or removes quantity units of an item on behalf of the caller.
func (s *StockService) ApplyOperation(ctx context.Context, identity *model.Identity, inventoryID, itemID int64, opType model.OperationType, quantity int64) (*model.OperationResult, error) {
	if !opType.Valid() {
		return nil, apierror.BadRequest("Invalid operation type")
	}
	if quantity <= 0 || quantity > model.MaxQuantity {
		return nil, apierror.BadRequest(fmt.Sprintf("Quantity must be between 1 and %d", model.MaxQuantity))
	}

	if err := s.membership.Require(ctx, identity.UserID, inventoryID); err != nil {
		if _, ok := apierror.As(err); ok {
			s.metrics.ObserveOperation(string(opType), metrics.OutcomeForbidden)
		}
		return nil, err
	}

	op, updated, err := s.operations.ApplyOperation(ctx, model.Operation{
		Type:        opType,
		Quantity:    quantity,
		ItemID:      itemID,
		InventoryID: inventoryID,
		UserID:      identity.UserID,
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		s.metrics.ObserveOperation(string(opType), metrics.OutcomeNotFound)
		return nil, apierror.NotFound("Item does not exist in this inventory")
	case errors.Is(err, repository.ErrInsufficientStock):
		s.metrics.ObserveOperation(string(opType), metrics.OutcomeInsufficientStock)
		return nil, apierror.InsufficientStock("Not enough items in stock")
	case errors.Is(err, repository.ErrStockLimit):
		s.metrics.ObserveOperation(string(opType), metrics.OutcomeStockLimit)
		return nil, apierror.BadRequest(fmt.Sprintf("Stock cannot exceed %d units", model.MaxQuantity))
	case err != nil:
		s.metrics.ObserveOperation(string(opType), metrics.OutcomeError)
		return nil, err
	}

	s.metrics.ObserveOperation(string(opType), metrics.OutcomeCommitted)
	s.logger.Info("stock operation committed",
		slog.Int64("operation_id", op.ID),
		slog.String("type", string(op.Type)),
		slog.Int64("quantity", op.Quantity),
		slog.Int64("item_id", op.ItemID),
		slog.Int64("inventory_id", op.InventoryID),
		slog.Int64("user_id", op.UserID),
		slog.Int64("updated_quantity", updated),
	)

	return &model.OperationResult{Operation: *op, UpdatedQuantity: updated}, nil
}
