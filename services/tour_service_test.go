package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-backend/models"
)

func TestCreateTourDuplicateCode(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourService(db)

	_, err := svc.Create(models.Tour{Title: "City Walk", Code: "CITY-1D", BasePrice: 100})
	require.NoError(t, err)

	_, err = svc.Create(models.Tour{Title: "Another", Code: "CITY-1D", BasePrice: 50})
	assert.ErrorIs(t, err, ErrDuplicateTour)
}

func TestCreateTourProviderMustExist(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourService(db)

	missing := uint(42)
	_, err := svc.Create(models.Tour{Title: "City Walk", Code: "CITY-1D", BasePrice: 100, ProviderID: &missing})
	assert.ErrorIs(t, err, ErrProviderNotFound)

	provider := models.Provider{Name: "Red Dragon Travel"}
	require.NoError(t, db.Create(&provider).Error)

	tour, err := svc.Create(models.Tour{Title: "City Walk", Code: "CITY-1D", BasePrice: 100, ProviderID: &provider.ID})
	require.NoError(t, err)

	loaded, err := svc.GetByID(tour.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Provider)
	assert.Equal(t, "Red Dragon Travel", loaded.Provider.Name)
}

func TestScheduleOwnership(t *testing.T) {
	db := newTestDB(t)
	svc := NewTourService(db)
	tour := seedTour(t, db, "City Walk", "CITY-1D")
	other := seedTour(t, db, "Other", "OTHER-1D")

	schedule, err := svc.AddSchedule(tour.ID, models.TourSchedule{
		DepartureDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		Capacity:      20,
	})
	require.NoError(t, err)

	_, err = svc.UpdateSchedule(other.ID, schedule.ID, models.TourSchedule{Capacity: 30})
	assert.ErrorIs(t, err, ErrScheduleNotFound)

	updated, err := svc.UpdateSchedule(tour.ID, schedule.ID, models.TourSchedule{Capacity: 30})
	require.NoError(t, err)
	assert.Equal(t, schedule.ID, updated.ID)

	assert.ErrorIs(t, svc.RemoveSchedule(other.ID, schedule.ID), ErrScheduleNotFound)
	require.NoError(t, svc.RemoveSchedule(tour.ID, schedule.ID))
}

func TestAttachDetachCatalog(t *testing.T) {
	db := newTestDB(t)
	catalog := NewCatalogService(db)
	tour := seedTour(t, db, "City Walk", "CITY-1D")

	svcItem, err := catalog.CreateService(models.Service{Name: "Airport transfer", Price: 25})
	require.NoError(t, err)

	link, err := catalog.AttachService(tour.ID, svcItem.ID)
	require.NoError(t, err)
	assert.Equal(t, tour.ID, link.TourID)

	_, err = catalog.AttachService(tour.ID, svcItem.ID)
	assert.ErrorIs(t, err, ErrAlreadyAttached)

	require.NoError(t, catalog.DetachService(tour.ID, svcItem.ID))
	assert.ErrorIs(t, catalog.DetachService(tour.ID, svcItem.ID), ErrNotAttached)

	policy, err := catalog.CreatePolicy(models.Policy{Title: "Cancellation", Body: "48h notice for a full refund."})
	require.NoError(t, err)

	_, err = catalog.AttachPolicy(tour.ID, policy.ID)
	require.NoError(t, err)
	_, err = catalog.AttachPolicy(tour.ID, 999)
	assert.ErrorIs(t, err, ErrPolicyNotFound)
}
