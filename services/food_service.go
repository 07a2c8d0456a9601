package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/utils"

	"gorm.io/gorm"
)

var ErrFoodNotFound = errors.New("food item not found")

type FoodService struct {
	db       *gorm.DB
	uploader *utils.S3Uploader // nil when S3 is not configured
}

func NewFoodService(db *gorm.DB, uploader *utils.S3Uploader) *FoodService {
	return &FoodService{db: db, uploader: uploader}
}

// FoodPage is one page of the catalog plus the pagination math the
// storefront renders.
type FoodPage struct {
	Foods       []models.FoodItem `json:"foods"`
	CurrentPage int               `json:"currentPage"`
	TotalPages  int               `json:"totalPages"`
	TotalItems  int64             `json:"totalItems"`
}

// List returns the requested catalog page, optionally filtered by the email
// of whoever added the item. Page and limit are clamped to at least 1.
func (s *FoodService) List(email string, page, limit int) (*FoodPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}

	q := s.db.Model(&models.FoodItem{})
	if email != "" {
		q = q.Where("added_by_email = ?", email)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("count food items: %w", err)
	}

	var foods []models.FoodItem
	if err := q.Order("id").Offset((page - 1) * limit).Limit(limit).Find(&foods).Error; err != nil {
		return nil, fmt.Errorf("list food items: %w", err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &FoodPage{
		Foods:       foods,
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalItems:  total,
	}, nil
}

func (s *FoodService) Get(id uint) (*models.FoodItem, error) {
	var food models.FoodItem
	err := s.db.First(&food, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrFoodNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get food item: %w", err)
	}
	return &food, nil
}

func (s *FoodService) Create(food *models.FoodItem) error {
	if err := s.db.Create(food).Error; err != nil {
		return fmt.Errorf("create food item: %w", err)
	}
	return nil
}

// Update applies a partial field replacement. Returns the number of rows
// touched; zero means the id did not exist.
func (s *FoodService) Update(id uint, fields map[string]interface{}) (int64, error) {
	res := s.db.Model(&models.FoodItem{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return 0, fmt.Errorf("update food item: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// AttachImage uploads a base64 data-URL image to S3 and stores the resulting
// public URL on the food item.
func (s *FoodService) AttachImage(ctx context.Context, id uint, base64Data string) (string, error) {
	if s.uploader == nil {
		return "", errors.New("image storage is not configured")
	}

	food, err := s.Get(id)
	if err != nil {
		return "", err
	}

	url, err := s.uploader.UploadBase64Image(ctx, base64Data, fmt.Sprintf("food-%d", food.ID))
	if err != nil {
		return "", err
	}

	if err := s.db.Model(food).Update("image_url", url).Error; err != nil {
		return "", fmt.Errorf("save image url: %w", err)
	}
	return url, nil
}
