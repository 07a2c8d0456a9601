package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kader009/foodlane-server/models"
	"github.com/kader009/foodlane-server/utils"

	"gorm.io/gorm"
)

var (
	ErrEmailTaken    = errors.New("user already exists")
	ErrUserNotFound  = errors.New("user not found")
	ErrWrongPassword = errors.New("incorrect password")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// Register inserts a new user. Email comparison is exact-match; a duplicate
// email is rejected before any write.
func (s *UserService) Register(user *models.User) error {
	var count int64
	if err := s.db.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
		return fmt.Errorf("check existing user: %w", err)
	}
	if count > 0 {
		return ErrEmailTaken
	}

	hashed, err := utils.HashPassword(user.Password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed

	// two concurrent registrations can both pass the count; the unique
	// index on email is the final arbiter
	if err := s.db.Create(user).Error; err != nil {
		if isDuplicateErr(err) {
			return ErrEmailTaken
		}
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

func isDuplicateErr(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// Authenticate looks the user up by email and verifies the password hash.
// An unknown email returns ErrUserNotFound before any password comparison.
func (s *UserService) Authenticate(email, password string) (*models.User, error) {
	var user models.User
	err := s.db.Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		return nil, ErrWrongPassword
	}
	return &user, nil
}
