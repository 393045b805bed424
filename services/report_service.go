package services

import (
	"math"
	"time"

	"gorm.io/gorm"

	"tour-backend/models"
)

const dateLayout = "2006-01-02"

type DayRevenue struct {
	Day      string  `json:"day"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type TourRevenue struct {
	TourID   uint    `json:"tour_id"`
	Title    string  `json:"title"`
	Bookings int64   `json:"bookings"`
	Revenue  float64 `json:"revenue"`
}

type StatusCount struct {
	Status   string `json:"status"`
	Bookings int64  `json:"bookings"`
}

type RevenueReport struct {
	From              string           `json:"from"`
	To                string           `json:"to"`
	TotalBookings     int64            `json:"total_bookings"`
	ConfirmedBookings int64            `json:"confirmed_bookings"`
	TotalRevenue      float64          `json:"total_revenue"`
	CollectedRevenue  float64          `json:"collected_revenue"`
	TotalDiscount     float64          `json:"total_discount"`
	RevenueByDay      []DayRevenue     `json:"revenue_by_day"`
	RevenueByTour     []TourRevenue    `json:"revenue_by_tour"`
	BookingsByStatus  []StatusCount    `json:"bookings_by_status"`
	TopBookings       []models.Booking `json:"top_bookings"`
}

type ReportService struct {
	DB *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{DB: db}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// normalizeRange parses the requested window, defaulting to the last 30 days
// when either bound is missing or malformed, and swapping inverted bounds.
// Bad input is never rejected.
func normalizeRange(fromStr, toStr string) (time.Time, time.Time) {
	now := time.Now()
	to, errTo := time.Parse(dateLayout, toStr)
	if errTo != nil {
		to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
	from, errFrom := time.Parse(dateLayout, fromStr)
	if errFrom != nil {
		from = to.AddDate(0, 0, -30)
	}
	if from.After(to) {
		from, to = to, from
	}
	return from, to
}

// Revenue aggregates bookings created in [from, to] (whole days, inclusive).
// Revenue is gross: SUM(final_price) regardless of outstanding payment; the
// collected figure subtracts left_payment.
func (s *ReportService) Revenue(fromStr, toStr string) (*RevenueReport, error) {
	from, to := normalizeRange(fromStr, toStr)
	end := to.AddDate(0, 0, 1)

	report := &RevenueReport{
		From:             from.Format(dateLayout),
		To:               to.Format(dateLayout),
		RevenueByDay:     []DayRevenue{},
		RevenueByTour:    []TourRevenue{},
		BookingsByStatus: []StatusCount{},
		TopBookings:      []models.Booking{},
	}

	inRange := func() *gorm.DB {
		return s.DB.Model(&models.Booking{}).
			Where("created_at >= ? AND created_at < ?", from, end)
	}

	if err := inRange().Count(&report.TotalBookings).Error; err != nil {
		return nil, err
	}
	if err := inRange().Where("status = ?", models.BookingConfirmed).
		Count(&report.ConfirmedBookings).Error; err != nil {
		return nil, err
	}

	var sums struct {
		Revenue   float64
		Collected float64
		Discount  float64
	}
	if err := inRange().
		Select("COALESCE(SUM(final_price),0) AS revenue, COALESCE(SUM(final_price - left_payment),0) AS collected, COALESCE(SUM(discount),0) AS discount").
		Scan(&sums).Error; err != nil {
		return nil, err
	}
	report.TotalRevenue = round2(sums.Revenue)
	report.CollectedRevenue = round2(sums.Collected)
	report.TotalDiscount = round2(sums.Discount)

	if err := inRange().
		Select("DATE(created_at) AS day, COUNT(*) AS bookings, COALESCE(SUM(final_price),0) AS revenue").
		Group("DATE(created_at)").
		Order("day ASC").
		Scan(&report.RevenueByDay).Error; err != nil {
		return nil, err
	}
	for i := range report.RevenueByDay {
		report.RevenueByDay[i].Revenue = round2(report.RevenueByDay[i].Revenue)
	}

	if err := s.DB.Model(&models.Booking{}).
		Where("bookings.created_at >= ? AND bookings.created_at < ?", from, end).
		Joins("JOIN tours ON tours.id = bookings.tour_id").
		Select("bookings.tour_id AS tour_id, tours.title AS title, COUNT(*) AS bookings, COALESCE(SUM(bookings.final_price),0) AS revenue").
		Group("bookings.tour_id, tours.title").
		Order("revenue DESC").
		Limit(10).
		Scan(&report.RevenueByTour).Error; err != nil {
		return nil, err
	}
	for i := range report.RevenueByTour {
		report.RevenueByTour[i].Revenue = round2(report.RevenueByTour[i].Revenue)
	}

	if err := inRange().
		Select("status, COUNT(*) AS bookings").
		Group("status").
		Order("bookings DESC").
		Scan(&report.BookingsByStatus).Error; err != nil {
		return nil, err
	}

	if err := s.DB.
		Where("created_at >= ? AND created_at < ?", from, end).
		Preload("Tour").
		Order("final_price DESC").
		Limit(10).
		Find(&report.TopBookings).Error; err != nil {
		return nil, err
	}

	return report, nil
}
