package services

import (
	"errors"
	"fmt"

	"github.com/kader009/foodlane-server/models"

	"gorm.io/gorm"
)

var (
	ErrMissingBuyer  = errors.New("order must have a buyer email")
	ErrInvalidAmount = errors.New("amount must be positive")
)

type OrderService struct {
	db  *gorm.DB
	hub *OrderHub // nil disables realtime events
}

func NewOrderService(db *gorm.DB, hub *OrderHub) *OrderService {
	return &OrderService{db: db, hub: hub}
}

func (s *OrderService) Create(order *models.Order) error {
	if order.BuyerEmail == "" {
		return ErrMissingBuyer
	}
	if order.Amount <= 0 {
		return ErrInvalidAmount
	}

	if err := s.db.Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}

	if s.hub != nil {
		s.hub.Broadcast(order.BuyerEmail, map[string]any{
			"kind":  "order.created",
			"order": order,
		})
	}
	return nil
}

// List returns orders for the given buyer; an empty email means all orders.
func (s *OrderService) List(email string) ([]models.Order, error) {
	q := s.db.Order("id")
	if email != "" {
		q = q.Where("buyer_email = ?", email)
	}

	var orders []models.Order
	if err := q.Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Delete removes one order by id. An unknown id is not an error; the caller
// sees zero affected rows.
func (s *OrderService) Delete(id uint) (int64, error) {
	res := s.db.Delete(&models.Order{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete order: %w", res.Error)
	}
	return res.RowsAffected, nil
}
