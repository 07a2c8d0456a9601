package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/services"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	foods *services.FoodService
}

func NewFoodController(foods *services.FoodService) *FoodController {
	return &FoodController{foods: foods}
}

// GET /foodData?email=&page=&limit=
func (fc *FoodController) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a number"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
		return
	}

	out, err := fc.foods.List(c.Query("email"), page, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list food items"})
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /foodData/:id
func (fc *FoodController) Get(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	food, err := fc.foods.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not fetch food item"})
		return
	}
	c.JSON(http.StatusOK, food)
}

// POST /foodData
func (fc *FoodController) Create(c *gin.Context) {
	var food models.FoodItem
	if err := c.ShouldBindJSON(&food); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if food.Name == "" || food.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and a positive price are required"})
		return
	}

	if err := fc.foods.Create(&food); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create food item"})
		return
	}
	c.JSON(http.StatusCreated, food)
}

// PATCH /foodData/:id, partial field replacement
func (fc *FoodController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// only catalog fields are client-writable
	allowed := map[string]string{
		"name":         "name",
		"category":     "category",
		"price":        "price",
		"description":  "description",
		"image":        "image_url",
		"addedByEmail": "added_by_email",
	}
	fields := map[string]interface{}{}
	for k, v := range body {
		if col, ok := allowed[k]; ok {
			fields[col] = v
		}
	}
	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no updatable fields provided"})
		return
	}

	affected, err := fc.foods.Update(uint(id), fields)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not update food item"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modifiedCount": affected})
}

// POST /foodData/:id/image, base64 data URL body
func (fc *FoodController) UploadImage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	url, err := fc.foods.AttachImage(c.Request.Context(), uint(id), req.ImageBase64)
	if err != nil {
		if errors.Is(err, services.ErrFoodNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "food item not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"image": url})
}
