package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"tour-backend/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidUser        = errors.New("invalid user")
)

type AuthService struct {
	DB *gorm.DB
}

func NewAuthService(db *gorm.DB) *AuthService {
	return &AuthService{DB: db}
}

// Login verifies credentials and returns the matching user.
func (s *AuthService) Login(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *AuthService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a staff account (admin action); passwords are bcrypt'd.
func (s *AuthService) CreateUser(user models.User, password string) (*models.User, error) {
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	if user.Email == "" || len(password) < 6 {
		return nil, ErrInvalidUser
	}
	if user.Role != models.RoleAdmin && user.Role != models.RoleGuide {
		user.Role = models.RoleGuide
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user.ID = 0
	user.Password = string(hash)
	if err := s.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrInvalidUser
		}
		return nil, err
	}
	return &user, nil
}

// ListGuides returns staff with the guide role, for assignment pickers.
func (s *AuthService) ListGuides() ([]models.User, error) {
	var guides []models.User
	err := s.DB.Where("role = ?", models.RoleGuide).Order("full_name ASC").Find(&guides).Error
	return guides, err
}
