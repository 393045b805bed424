package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tour-backend/models"
)

var (
	ErrProviderInvalid = errors.New("invalid provider")
	ErrProviderInUse   = errors.New("provider still referenced by tours")
)

type ProviderService struct {
	DB *gorm.DB
}

func NewProviderService(db *gorm.DB) *ProviderService {
	return &ProviderService{DB: db}
}

func (s *ProviderService) List() ([]models.Provider, error) {
	var providers []models.Provider
	err := s.DB.Order("name ASC").Find(&providers).Error
	return providers, err
}

func (s *ProviderService) GetByID(id uint) (*models.Provider, error) {
	var provider models.Provider
	err := s.DB.First(&provider, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProviderNotFound
	}
	if err != nil {
		return nil, err
	}
	return &provider, nil
}

func (s *ProviderService) Create(provider models.Provider) (*models.Provider, error) {
	provider.Name = strings.TrimSpace(provider.Name)
	if provider.Name == "" {
		return nil, ErrProviderInvalid
	}
	provider.ID = 0
	if err := s.DB.Create(&provider).Error; err != nil {
		return nil, err
	}
	return &provider, nil
}

func (s *ProviderService) Update(id uint, patch models.Provider) (*models.Provider, error) {
	provider, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	patch.Name = strings.TrimSpace(patch.Name)
	if patch.Name == "" {
		return nil, ErrProviderInvalid
	}
	if err := s.DB.Model(provider).Updates(map[string]interface{}{
		"name":          patch.Name,
		"contact_email": patch.ContactEmail,
		"contact_phone": patch.ContactPhone,
		"notes":         patch.Notes,
	}).Error; err != nil {
		return nil, err
	}
	return provider, nil
}

// Delete refuses to remove a provider that tours still point at; callers
// reassign or delete those tours first.
func (s *ProviderService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	var tourCount int64
	if err := s.DB.Model(&models.Tour{}).Where("provider_id = ?", id).Count(&tourCount).Error; err != nil {
		return err
	}
	if tourCount > 0 {
		return ErrProviderInUse
	}
	return s.DB.Delete(&models.Provider{}, id).Error
}
