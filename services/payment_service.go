package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/utils"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrNoOrders       = errors.New("no orders found for this buyer")
	ErrInvalidPayment = errors.New("payment requires a buyer email and a positive amount")
)

type PaymentService struct {
	db     *gorm.DB
	hub    *OrderHub     // nil disables realtime events
	mailer *utils.Mailer // nil disables receipt email
	log    *slog.Logger
}

func NewPaymentService(db *gorm.DB, hub *OrderHub, mailer *utils.Mailer, log *slog.Logger) *PaymentService {
	if log == nil {
		log = slog.Default()
	}
	return &PaymentService{db: db, hub: hub, mailer: mailer, log: log}
}

// SettlementResult reports a committed settlement.
type SettlementResult struct {
	Payment       models.Payment `json:"payment"`
	DeletedOrders int64          `json:"deletedOrders"`
}

// Settle turns every open order of buyerEmail into a committed Payment whose
// snapshot holds full copies of those orders, and deletes the orders. All
// writes happen in one transaction: either the payment exists with its
// snapshot and the orders are gone, or nothing changed. A buyer with no open
// orders gets ErrNoOrders and no payment row is left behind.
func (s *PaymentService) Settle(ctx context.Context, buyerEmail string, amount float64, method string) (*SettlementResult, error) {
	if buyerEmail == "" || amount <= 0 {
		return nil, ErrInvalidPayment
	}

	var payment models.Payment
	var deleted int64

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var orders []models.Order
		if err := tx.Where("buyer_email = ?", buyerEmail).Order("id").Find(&orders).Error; err != nil {
			return fmt.Errorf("fetch orders: %w", err)
		}
		if len(orders) == 0 {
			return ErrNoOrders
		}

		payment = models.Payment{
			Reference:      uuid.NewString(),
			BuyerEmail:     buyerEmail,
			Amount:         amount,
			Method:         method,
			Status:         models.PaymentPending,
			OrdersSnapshot: orders,
			OrderCount:     len(orders),
		}
		if err := tx.Create(&payment).Error; err != nil {
			return fmt.Errorf("create payment: %w", err)
		}

		ids := make([]uint, 0, len(orders))
		for _, o := range orders {
			ids = append(ids, o.ID)
		}
		res := tx.Where("id IN ?", ids).Delete(&models.Order{})
		if res.Error != nil {
			return fmt.Errorf("delete orders: %w", res.Error)
		}
		deleted = res.RowsAffected

		if err := tx.Model(&payment).Update("status", models.PaymentCommitted).Error; err != nil {
			return fmt.Errorf("commit payment: %w", err)
		}
		payment.Status = models.PaymentCommitted
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNoOrders) {
			return nil, ErrNoOrders
		}
		return nil, err
	}

	s.log.Info("settlement committed",
		"buyer", buyerEmail,
		"reference", payment.Reference,
		"orders", deleted,
		"amount", amount,
	)

	if s.hub != nil {
		s.hub.Broadcast(buyerEmail, map[string]any{
			"kind":    "payment.committed",
			"payment": payment,
		})
	}
	if s.mailer != nil {
		if err := s.mailer.SendReceiptEmail(ctx, buyerEmail, payment.Reference, amount, int(deleted)); err != nil {
			s.log.Warn("receipt email failed", "buyer", buyerEmail, "error", err)
		}
	}

	return &SettlementResult{Payment: payment, DeletedOrders: deleted}, nil
}

func (s *PaymentService) ListByEmail(email string) ([]models.Payment, error) {
	var payments []models.Payment
	if err := s.db.Where("buyer_email = ?", email).Order("id").Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	return payments, nil
}

// SweepPending marks pending payments older than olderThan as failed. With a
// transactional store this is a safety net; it keeps a crash between
// settlement steps recoverable if the store ever loses transaction support.
func (s *PaymentService) SweepPending(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res := s.db.Model(&models.Payment{}).
		Where("status = ? AND created_at < ?", models.PaymentPending, cutoff).
		Update("status", models.PaymentFailed)
	if res.Error != nil {
		return 0, fmt.Errorf("sweep pending payments: %w", res.Error)
	}
	if res.RowsAffected > 0 {
		s.log.Warn("marked stale pending payments failed", "count", res.RowsAffected)
	}
	return res.RowsAffected, nil
}
