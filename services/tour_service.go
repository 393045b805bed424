package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"tour-backend/models"
)

var (
	ErrInvalidTour      = errors.New("invalid tour")
	ErrDuplicateTour    = errors.New("tour code already in use")
	ErrProviderNotFound = errors.New("provider not found")
	ErrScheduleNotFound = errors.New("schedule not found")
)

type TourService struct {
	DB *gorm.DB
}

func NewTourService(db *gorm.DB) *TourService {
	return &TourService{DB: db}
}

func (s *TourService) List(activeOnly bool) ([]models.Tour, error) {
	q := s.DB.Preload("Provider")
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var tours []models.Tour
	err := q.Order("title ASC").Find(&tours).Error
	return tours, err
}

func (s *TourService) GetByID(id uint) (*models.Tour, error) {
	var tour models.Tour
	err := s.DB.
		Preload("Provider").
		Preload("Images", func(db *gorm.DB) *gorm.DB { return db.Order("sort_order ASC") }).
		Preload("Services.Service").
		Preload("Policies.Policy").
		Preload("Schedules", func(db *gorm.DB) *gorm.DB { return db.Order("departure_date ASC") }).
		First(&tour, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTourNotFound
	}
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

func (s *TourService) validate(tour *models.Tour) error {
	tour.Title = strings.TrimSpace(tour.Title)
	tour.Code = strings.TrimSpace(tour.Code)
	if tour.Title == "" || tour.Code == "" || tour.BasePrice < 0 {
		return ErrInvalidTour
	}
	if tour.DurationDays <= 0 {
		tour.DurationDays = 1
	}
	if tour.ProviderID != nil {
		var provider models.Provider
		if err := s.DB.First(&provider, *tour.ProviderID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProviderNotFound
			}
			return err
		}
	}
	return nil
}

func (s *TourService) Create(tour models.Tour) (*models.Tour, error) {
	if err := s.validate(&tour); err != nil {
		return nil, err
	}
	tour.ID = 0
	if err := s.DB.Create(&tour).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateTour
		}
		return nil, err
	}
	return &tour, nil
}

func (s *TourService) Update(id uint, tour models.Tour) (*models.Tour, error) {
	existing, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}
	tour.ID = existing.ID
	if err := s.validate(&tour); err != nil {
		return nil, err
	}
	if err := s.DB.Model(existing).Updates(map[string]interface{}{
		"provider_id":   tour.ProviderID,
		"title":         tour.Title,
		"code":          tour.Code,
		"description":   tour.Description,
		"base_price":    tour.BasePrice,
		"duration_days": tour.DurationDays,
		"active":        tour.Active,
	}).Error; err != nil {
		if isDuplicateKey(err) {
			return nil, ErrDuplicateTour
		}
		return nil, err
	}
	return s.GetByID(id)
}

func (s *TourService) Delete(id uint) error {
	res := s.DB.Delete(&models.Tour{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTourNotFound
	}
	return nil
}

// ---- images ----

func (s *TourService) AddImage(tourID uint, image models.TourImage) (*models.TourImage, error) {
	if _, err := s.GetByID(tourID); err != nil {
		return nil, err
	}
	if strings.TrimSpace(image.URL) == "" {
		return nil, ErrInvalidTour
	}
	image.ID = 0
	image.TourID = tourID
	if err := s.DB.Create(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}

func (s *TourService) RemoveImage(tourID, imageID uint) error {
	res := s.DB.Where("id = ? AND tour_id = ?", imageID, tourID).Delete(&models.TourImage{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrTourNotFound
	}
	return nil
}

// ---- schedules ----

func (s *TourService) AddSchedule(tourID uint, schedule models.TourSchedule) (*models.TourSchedule, error) {
	if _, err := s.GetByID(tourID); err != nil {
		return nil, err
	}
	if schedule.DepartureDate.IsZero() || schedule.Capacity < 0 {
		return nil, ErrInvalidTour
	}
	schedule.ID = 0
	schedule.TourID = tourID
	if err := s.DB.Create(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (s *TourService) ListSchedules(tourID uint) ([]models.TourSchedule, error) {
	if _, err := s.GetByID(tourID); err != nil {
		return nil, err
	}
	var schedules []models.TourSchedule
	err := s.DB.Where("tour_id = ?", tourID).
		Order("departure_date ASC").
		Find(&schedules).Error
	return schedules, err
}

func (s *TourService) UpdateSchedule(tourID, scheduleID uint, patch models.TourSchedule) (*models.TourSchedule, error) {
	var schedule models.TourSchedule
	if err := s.DB.Where("id = ? AND tour_id = ?", scheduleID, tourID).
		First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	updates := map[string]interface{}{}
	if !patch.DepartureDate.IsZero() {
		updates["departure_date"] = patch.DepartureDate
	}
	if patch.Capacity > 0 {
		updates["capacity"] = patch.Capacity
	}
	if patch.PriceOverride != nil {
		updates["price_override"] = patch.PriceOverride
	}
	if len(updates) > 0 {
		if err := s.DB.Model(&schedule).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return &schedule, nil
}

func (s *TourService) RemoveSchedule(tourID, scheduleID uint) error {
	res := s.DB.Where("id = ? AND tour_id = ?", scheduleID, tourID).Delete(&models.TourSchedule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
