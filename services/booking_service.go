package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tour-backend/models"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrTourNotFound    = errors.New("tour not found")
	ErrInvalidBooking  = errors.New("invalid booking")
)

// BookingService wraps *gorm.DB for booking logic.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

// BookingFilter narrows the list query; zero values mean "no filter".
type BookingFilter struct {
	TourID uint
	Status string
	From   string
	To     string
}

func (s *BookingService) List(f BookingFilter) ([]models.Booking, error) {
	q := s.DB.Preload("Tour")
	if f.TourID != 0 {
		q = q.Where("tour_id = ?", f.TourID)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.From != "" || f.To != "" {
		from, to := normalizeRange(f.From, f.To)
		q = q.Where("created_at >= ? AND created_at < ?", from, to.AddDate(0, 0, 1))
	}

	var bookings []models.Booking
	err := q.Order("created_at DESC").Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetByID(id uint) (*models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Tour").Preload("Schedule").First(&booking, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// newReferenceCode builds a short human-quotable booking reference.
func newReferenceCode() string {
	raw := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))
	return fmt.Sprintf("BK-%s", raw[:10])
}

// Create persists a booking. The tour must exist; base price defaults to the
// tour's price when omitted and final price is derived from base - discount.
func (s *BookingService) Create(booking models.Booking) (*models.Booking, error) {
	if strings.TrimSpace(booking.CustomerName) == "" {
		return nil, ErrInvalidBooking
	}

	var tour models.Tour
	if err := s.DB.First(&tour, booking.TourID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	if booking.BasePrice == 0 {
		booking.BasePrice = tour.BasePrice * float64(max(booking.Pax, 1))
	}
	if booking.Discount < 0 || booking.Discount > booking.BasePrice {
		return nil, ErrInvalidBooking
	}
	booking.FinalPrice = round2(booking.BasePrice - booking.Discount)
	if booking.LeftPayment == 0 {
		booking.LeftPayment = booking.FinalPrice
	}
	if booking.Status == "" {
		booking.Status = models.BookingPending
	}
	if !validBookingStatus(booking.Status) {
		return nil, ErrInvalidBooking
	}
	booking.ID = 0
	booking.ReferenceCode = newReferenceCode()
	booking.CreatedAt = time.Time{}

	if err := s.DB.Create(&booking).Error; err != nil {
		return nil, err
	}
	booking.Tour = tour
	return &booking, nil
}

// UpdateStatus moves a booking between statuses. Payments toward the balance
// also come through here as a left_payment patch.
func (s *BookingService) UpdateStatus(id uint, status string, leftPayment *float64) (*models.Booking, error) {
	if status != "" && !validBookingStatus(status) {
		return nil, ErrInvalidBooking
	}

	booking, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if status != "" {
		updates["status"] = status
		booking.Status = status
	}
	if leftPayment != nil {
		if *leftPayment < 0 || *leftPayment > booking.FinalPrice {
			return nil, ErrInvalidBooking
		}
		updates["left_payment"] = round2(*leftPayment)
		booking.LeftPayment = round2(*leftPayment)
	}
	if len(updates) == 0 {
		return booking, nil
	}
	if err := s.DB.Model(&models.Booking{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *BookingService) Delete(id uint) error {
	res := s.DB.Delete(&models.Booking{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

func validBookingStatus(status string) bool {
	switch status {
	case models.BookingPending, models.BookingConfirmed, models.BookingCancelled, models.BookingCompleted:
		return true
	}
	return false
}
