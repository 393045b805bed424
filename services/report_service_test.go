package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"tour-backend/models"
)

func seedBooking(t *testing.T, db *gorm.DB, tourID uint, createdAt time.Time, status string, finalPrice, discount, leftPayment float64) models.Booking {
	t.Helper()
	b := models.Booking{
		TourID:        tourID,
		ReferenceCode: newReferenceCode(),
		CustomerName:  "Customer",
		Status:        status,
		BasePrice:     finalPrice + discount,
		Discount:      discount,
		FinalPrice:    finalPrice,
		LeftPayment:   leftPayment,
	}
	require.NoError(t, db.Create(&b).Error)
	require.NoError(t, db.Model(&b).UpdateColumn("created_at", createdAt).Error)
	return b
}

func TestRevenueReportTotalsReconcile(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	tourA := seedTour(t, db, "Halong Bay Cruise", "HALONG-3D")
	tourB := seedTour(t, db, "City Walk", "CITY-1D")

	day1 := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC)

	seedBooking(t, db, tourA.ID, day1, models.BookingConfirmed, 1000000, 0, 400000)
	seedBooking(t, db, tourA.ID, day2, models.BookingConfirmed, 250.50, 24.50, 0)
	seedBooking(t, db, tourB.ID, day2, models.BookingPending, 99.25, 0, 99.25)
	// Outside the range: must not count.
	seedBooking(t, db, tourB.ID, day2.AddDate(0, 1, 0), models.BookingConfirmed, 500, 0, 0)

	report, err := svc.Revenue("2026-08-01", "2026-08-02")
	require.NoError(t, err)

	assert.EqualValues(t, 3, report.TotalBookings)
	assert.EqualValues(t, 2, report.ConfirmedBookings)

	// Revenue is gross final_price; the million-with-balance booking counts in
	// full, and its unpaid 400000 only reduces the collected figure.
	assert.InDelta(t, 1000000+250.50+99.25, report.TotalRevenue, 0.001)
	assert.InDelta(t, 600000+250.50+0, report.CollectedRevenue, 0.001)
	assert.InDelta(t, 24.50, report.TotalDiscount, 0.001)

	// Day buckets reconcile with the total.
	var daySum float64
	for _, d := range report.RevenueByDay {
		daySum += d.Revenue
	}
	assert.InDelta(t, report.TotalRevenue, daySum, 0.001)
	require.Len(t, report.RevenueByDay, 2)
	assert.EqualValues(t, 1, report.RevenueByDay[0].Bookings)
	assert.EqualValues(t, 2, report.RevenueByDay[1].Bookings)

	// Tour breakdown ordered by revenue, titles resolved.
	require.Len(t, report.RevenueByTour, 2)
	assert.Equal(t, "Halong Bay Cruise", report.RevenueByTour[0].Title)
	assert.InDelta(t, 1000250.50, report.RevenueByTour[0].Revenue, 0.001)

	// Status breakdown counts every booking in range.
	var statusSum int64
	for _, s := range report.BookingsByStatus {
		statusSum += s.Bookings
	}
	assert.EqualValues(t, report.TotalBookings, statusSum)

	// Top bookings by value.
	require.NotEmpty(t, report.TopBookings)
	assert.InDelta(t, 1000000, report.TopBookings[0].FinalPrice, 0.001)
}

func TestRevenueReportDefaultsBadRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	report, err := svc.Revenue("not-a-date", "")
	require.NoError(t, err, "bad input is defaulted, never rejected")
	assert.NotEmpty(t, report.From)
	assert.NotEmpty(t, report.To)
	assert.EqualValues(t, 0, report.TotalBookings)

	from, err := time.Parse("2006-01-02", report.From)
	require.NoError(t, err)
	to, err := time.Parse("2006-01-02", report.To)
	require.NoError(t, err)
	assert.Equal(t, 30*24*time.Hour, to.Sub(from))
}

func TestRevenueReportSwapsInvertedBounds(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	tour := seedTour(t, db, "City Walk", "CITY-1D")
	seedBooking(t, db, tour.ID, time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC),
		models.BookingConfirmed, 120, 0, 0)

	report, err := svc.Revenue("2026-08-31", "2026-08-01")
	require.NoError(t, err)
	assert.Equal(t, "2026-08-01", report.From)
	assert.Equal(t, "2026-08-31", report.To)
	assert.EqualValues(t, 1, report.TotalBookings)
	assert.InDelta(t, 120, report.TotalRevenue, 0.001)
}

func TestTop10Limits(t *testing.T) {
	db := newTestDB(t)
	svc := NewReportService(db)

	when := time.Date(2026, 8, 10, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		tour := seedTour(t, db, "Tour", newReferenceCode())
		seedBooking(t, db, tour.ID, when, models.BookingConfirmed, float64(100+i), 0, 0)
	}

	report, err := svc.Revenue("2026-08-01", "2026-08-31")
	require.NoError(t, err)
	assert.Len(t, report.RevenueByTour, 10)
	assert.Len(t, report.TopBookings, 10)
	// Descending by value.
	assert.InDelta(t, 111, report.TopBookings[0].FinalPrice, 0.001)
}
