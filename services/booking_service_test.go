package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-backend/models"
)

func TestCreateBookingDerivesPrices(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	tour := seedTour(t, db, "City Walk", "CITY-1D")

	booking, err := svc.Create(models.Booking{
		TourID:       tour.ID,
		CustomerName: "Dana Tran",
		Pax:          3,
		Discount:     50,
	})
	require.NoError(t, err)

	// Base defaults to tour price * pax; final = base - discount.
	assert.InDelta(t, 300, booking.BasePrice, 0.001)
	assert.InDelta(t, 250, booking.FinalPrice, 0.001)
	assert.InDelta(t, 250, booking.LeftPayment, 0.001, "balance starts at final price")
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.True(t, strings.HasPrefix(booking.ReferenceCode, "BK-"))
}

func TestCreateBookingValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	tour := seedTour(t, db, "City Walk", "CITY-1D")

	_, err := svc.Create(models.Booking{TourID: tour.ID, CustomerName: "  "})
	assert.ErrorIs(t, err, ErrInvalidBooking)

	_, err = svc.Create(models.Booking{TourID: 999, CustomerName: "Dana Tran"})
	assert.ErrorIs(t, err, ErrTourNotFound)

	_, err = svc.Create(models.Booking{TourID: tour.ID, CustomerName: "Dana Tran", Status: "teleported"})
	assert.ErrorIs(t, err, ErrInvalidBooking)

	_, err = svc.Create(models.Booking{TourID: tour.ID, CustomerName: "Dana Tran", BasePrice: 100, Discount: 150})
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestUpdateBookingStatusAndPayment(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	tour := seedTour(t, db, "City Walk", "CITY-1D")

	booking, err := svc.Create(models.Booking{TourID: tour.ID, CustomerName: "Dana Tran", BasePrice: 400})
	require.NoError(t, err)

	left := 100.0
	updated, err := svc.UpdateStatus(booking.ID, models.BookingConfirmed, &left)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, updated.Status)
	assert.InDelta(t, 100, updated.LeftPayment, 0.001)

	over := 9999.0
	_, err = svc.UpdateStatus(booking.ID, "", &over)
	assert.ErrorIs(t, err, ErrInvalidBooking)

	_, err = svc.UpdateStatus(999, models.BookingConfirmed, nil)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestListBookingsFilters(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	tourA := seedTour(t, db, "City Walk", "CITY-1D")
	tourB := seedTour(t, db, "Halong Bay Cruise", "HALONG-3D")

	for i := 0; i < 3; i++ {
		_, err := svc.Create(models.Booking{TourID: tourA.ID, CustomerName: "A", BasePrice: 100})
		require.NoError(t, err)
	}
	b, err := svc.Create(models.Booking{TourID: tourB.ID, CustomerName: "B", BasePrice: 100})
	require.NoError(t, err)
	_, err = svc.UpdateStatus(b.ID, models.BookingConfirmed, nil)
	require.NoError(t, err)

	all, err := svc.List(BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 4)

	onlyA, err := svc.List(BookingFilter{TourID: tourA.ID})
	require.NoError(t, err)
	assert.Len(t, onlyA, 3)

	confirmed, err := svc.List(BookingFilter{Status: models.BookingConfirmed})
	require.NoError(t, err)
	assert.Len(t, confirmed, 1)
}

func TestDeleteBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	tour := seedTour(t, db, "City Walk", "CITY-1D")

	booking, err := svc.Create(models.Booking{TourID: tour.ID, CustomerName: "Dana Tran", BasePrice: 100})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(booking.ID))
	assert.ErrorIs(t, svc.Delete(booking.ID), ErrBookingNotFound)
}
