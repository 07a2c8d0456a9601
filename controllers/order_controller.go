package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orders *services.OrderService
}

func NewOrderController(orders *services.OrderService) *OrderController {
	return &OrderController{orders: orders}
}

// POST /orders
func (oc *OrderController) Create(c *gin.Context) {
	var order models.Order
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := oc.orders.Create(&order); err != nil {
		if errors.Is(err, services.ErrMissingBuyer) || errors.Is(err, services.ErrInvalidAmount) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create order"})
		return
	}
	c.JSON(http.StatusCreated, order)
}

// GET /orders?email=
func (oc *OrderController) List(c *gin.Context) {
	orders, err := oc.orders.List(c.Query("email"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// DELETE /orders/:id
func (oc *OrderController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	affected, err := oc.orders.Delete(uint(id))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not delete order"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deletedCount": affected})
}
