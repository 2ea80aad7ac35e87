package services

import (
	"context"
	"fmt"
	"time"

	"shoplite/internal/common"
	"shoplite/internal/metrics"
	"shoplite/internal/models"
	"shoplite/internal/repositories"

	"github.com/google/uuid"
)

const (
	maxItemQuantity = 1000000
	maxUnitPrice    = 10000000.00
)

// OrderService owns order placement: validation before any write, then one
// atomic ledger transaction for the order row and all of its item rows.
type OrderService interface {
	PlaceOrder(ctx context.Context, userID uuid.UUID, lines []models.OrderLine, total float64) (uuid.UUID, error)
	GetOrdersForUser(ctx context.Context, userID uuid.UUID) ([]*models.Order, error)
	GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error)
}

type orderService struct {
	orderRepo repositories.OrderRepository
	metrics   *metrics.OrderMetrics
}

func NewOrderService(orderRepo repositories.OrderRepository, m *metrics.OrderMetrics) OrderService {
	return &orderService{orderRepo: orderRepo, metrics: m}
}

// PlaceOrder validates the submitted order, then writes the order and its
// items all-or-nothing. The declared total is stored as submitted and not
// recomputed from the lines. On any storage failure the transaction is
// aborted and the cause is wrapped in ErrOrderPlacementFailed.
func (s *orderService) PlaceOrder(ctx context.Context, userID uuid.UUID, lines []models.OrderLine, total float64) (uuid.UUID, error) {
	start := time.Now()
	defer func() { s.metrics.ObservePlacement(time.Since(start)) }()

	if err := s.validateOrder(userID, lines); err != nil {
		s.metrics.OrderFailed()
		return uuid.Nil, err
	}

	order := &models.Order{
		ID:        uuid.New(),
		UserID:    userID,
		Total:     total,
		OrderDate: time.Now(),
	}

	items := make([]*models.OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, &models.OrderItem{
			ID:        uuid.New(),
			OrderID:   order.ID,
			ProductID: line.ProductID,
			Quantity:  line.Quantity,
			Price:     line.Price,
		})
	}

	if err := s.orderRepo.CreateWithItems(ctx, order, items); err != nil {
		s.metrics.OrderFailed()
		return uuid.Nil, fmt.Errorf("%w: %w", common.ErrOrderPlacementFailed, err)
	}

	s.metrics.OrderPlaced()
	return order.ID, nil
}

// validateOrder enforces the placement preconditions before any write.
// Zero and negative quantities are rejected; so are non-positive unit
// prices. Prices are not compared against the catalog.
func (s *orderService) validateOrder(userID uuid.UUID, lines []models.OrderLine) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: user id is required", common.ErrInvalidInput)
	}
	if len(lines) == 0 {
		return fmt.Errorf("%w: order must contain at least one item", common.ErrInvalidInput)
	}
	for i, line := range lines {
		if line.ProductID == uuid.Nil {
			return fmt.Errorf("%w: item %d: product id is required", common.ErrInvalidInput, i)
		}
		if err := common.ValidatePositiveInteger(line.Quantity, "quantity", maxItemQuantity); err != nil {
			return fmt.Errorf("%w: item %d: %w", common.ErrInvalidInput, i, err)
		}
		if err := common.ValidatePositiveFloat(line.Price, "price", maxUnitPrice); err != nil {
			return fmt.Errorf("%w: item %d: %w", common.ErrInvalidInput, i, err)
		}
	}
	return nil
}

func (s *orderService) GetOrdersForUser(ctx context.Context, userID uuid.UUID) ([]*models.Order, error) {
	return s.orderRepo.ListByUser(ctx, userID)
}

func (s *orderService) GetOrderItems(ctx context.Context, orderID uuid.UUID) ([]*models.OrderItem, error) {
	return s.orderRepo.ListItems(ctx, orderID)
}
