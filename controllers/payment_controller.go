package controllers

import (
	"context"
	"errors"
	"math"
	"net/http"
	"time"

	"github.com/kader009/foodlane-server/services"

	"github.com/gin-gonic/gin"
)

// upper bound on gateway and settlement store calls
const paymentTimeout = 10 * time.Second

type PaymentController struct {
	payments *services.PaymentService
	gateway  services.PaymentGateway
}

func NewPaymentController(payments *services.PaymentService, gateway services.PaymentGateway) *PaymentController {
	return &PaymentController{payments: payments, gateway: gateway}
}

type IntentInput struct {
	Price float64 `json:"price"`
}

// POST /create-payment-intent
func (pc *PaymentController) CreateIntent(c *gin.Context) {
	var input IntentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must be positive"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), paymentTimeout)
	defer cancel()

	secret, err := pc.gateway.CreateIntent(ctx, int64(math.Round(input.Price*100)))
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "payment gateway timed out"})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment gateway failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": secret})
}

type SettleInput struct {
	Email  string  `json:"email" binding:"required,email"`
	Amount float64 `json:"amount"`
	Method string  `json:"method"`
}

// POST /payment settles the buyer's open orders into a committed Payment.
func (pc *PaymentController) Settle(c *gin.Context) {
	var input SettleInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), paymentTimeout)
	defer cancel()

	result, err := pc.payments.Settle(ctx, input.Email, input.Amount, input.Method)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPayment):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrNoOrders):
			c.JSON(http.StatusNotFound, gin.H{"error": "no orders found for this buyer"})
		case errors.Is(err, context.DeadlineExceeded):
			c.JSON(http.StatusGatewayTimeout, gin.H{"error": "settlement timed out"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "settlement failed"})
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GET /payment/:email
func (pc *PaymentController) ListByEmail(c *gin.Context) {
	payments, err := pc.payments.ListByEmail(c.Param("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}
