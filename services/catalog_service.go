package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tour-backend/models"
)

var (
	ErrServiceNotFound = errors.New("service not found")
	ErrPolicyNotFound  = errors.New("policy not found")
	ErrCatalogInvalid  = errors.New("invalid catalog item")
	ErrAlreadyAttached = errors.New("already attached to this tour")
	ErrNotAttached     = errors.New("not attached to this tour")
)

// CatalogService manages the reusable add-on services and policy text blocks
// and their attachment to tours.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// ---- services (sellable add-ons) ----

func (s *CatalogService) ListServices() ([]models.Service, error) {
	var services []models.Service
	err := s.DB.Order("name ASC").Find(&services).Error
	return services, err
}

func (s *CatalogService) CreateService(svc models.Service) (*models.Service, error) {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" || svc.Price < 0 {
		return nil, ErrCatalogInvalid
	}
	svc.ID = 0
	if err := s.DB.Create(&svc).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *CatalogService) UpdateService(id uint, patch models.Service) (*models.Service, error) {
	var svc models.Service
	if err := s.DB.First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	patch.Name = strings.TrimSpace(patch.Name)
	if patch.Name == "" || patch.Price < 0 {
		return nil, ErrCatalogInvalid
	}
	if err := s.DB.Model(&svc).Updates(map[string]interface{}{
		"name":        patch.Name,
		"description": patch.Description,
		"price":       patch.Price,
	}).Error; err != nil {
		return nil, err
	}
	return &svc, nil
}

func (s *CatalogService) DeleteService(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Service{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrServiceNotFound
		}
		return tx.Where("service_id = ?", id).Delete(&models.TourService{}).Error
	})
}

// ---- policies (terms text blocks) ----

func (s *CatalogService) ListPolicies() ([]models.Policy, error) {
	var policies []models.Policy
	err := s.DB.Order("title ASC").Find(&policies).Error
	return policies, err
}

func (s *CatalogService) CreatePolicy(policy models.Policy) (*models.Policy, error) {
	policy.Title = strings.TrimSpace(policy.Title)
	if policy.Title == "" || strings.TrimSpace(policy.Body) == "" {
		return nil, ErrCatalogInvalid
	}
	policy.ID = 0
	if err := s.DB.Create(&policy).Error; err != nil {
		return nil, err
	}
	return &policy, nil
}

func (s *CatalogService) UpdatePolicy(id uint, patch models.Policy) (*models.Policy, error) {
	var policy models.Policy
	if err := s.DB.First(&policy, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}
	patch.Title = strings.TrimSpace(patch.Title)
	if patch.Title == "" || strings.TrimSpace(patch.Body) == "" {
		return nil, ErrCatalogInvalid
	}
	if err := s.DB.Model(&policy).Updates(map[string]interface{}{
		"title": patch.Title,
		"body":  patch.Body,
	}).Error; err != nil {
		return nil, err
	}
	return &policy, nil
}

func (s *CatalogService) DeletePolicy(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&models.Policy{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrPolicyNotFound
		}
		return tx.Where("policy_id = ?", id).Delete(&models.TourPolicy{}).Error
	})
}

// ---- attachment to tours ----

func (s *CatalogService) AttachService(tourID, serviceID uint) (*models.TourService, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	var svc models.Service
	if err := s.DB.First(&svc, serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	link := models.TourService{TourID: tourID, ServiceID: serviceID}
	if err := s.DB.Create(&link).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyAttached
		}
		return nil, err
	}
	link.Service = svc
	return &link, nil
}

func (s *CatalogService) DetachService(tourID, serviceID uint) error {
	res := s.DB.Where("tour_id = ? AND service_id = ?", tourID, serviceID).
		Delete(&models.TourService{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotAttached
	}
	return nil
}

func (s *CatalogService) AttachPolicy(tourID, policyID uint) (*models.TourPolicy, error) {
	var tour models.Tour
	if err := s.DB.First(&tour, tourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}
	var policy models.Policy
	if err := s.DB.First(&policy, policyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, err
	}

	link := models.TourPolicy{TourID: tourID, PolicyID: policyID}
	if err := s.DB.Create(&link).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrAlreadyAttached
		}
		return nil, err
	}
	link.Policy = policy
	return &link, nil
}

func (s *CatalogService) DetachPolicy(tourID, policyID uint) error {
	res := s.DB.Where("tour_id = ? AND policy_id = ?", tourID, policyID).
		Delete(&models.TourPolicy{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotAttached
	}
	return nil
}
