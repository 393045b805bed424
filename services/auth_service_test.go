package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tour-backend/models"
)

func TestCreateUserAndLogin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.CreateUser(models.User{
		FullName: "Ana Guide",
		Email:    "Ana@Tour.Local",
		Role:     models.RoleGuide,
	}, "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "ana@tour.local", user.Email, "emails are normalized")
	assert.NotEqual(t, "s3cret-pass", user.Password, "stored hash, not plaintext")

	logged, err := svc.Login("ana@tour.local", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = svc.Login("ana@tour.local", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login("nobody@tour.local", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateUserValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.CreateUser(models.User{Email: "short@tour.local"}, "123")
	assert.ErrorIs(t, err, ErrInvalidUser)

	_, err = svc.CreateUser(models.User{Email: ""}, "long-enough")
	assert.ErrorIs(t, err, ErrInvalidUser)

	// Unknown roles fall back to guide.
	user, err := svc.CreateUser(models.User{Email: "x@tour.local", FullName: "X", Role: "superuser"}, "long-enough")
	require.NoError(t, err)
	assert.Equal(t, models.RoleGuide, user.Role)

	// Duplicate email.
	_, err = svc.CreateUser(models.User{Email: "x@tour.local", FullName: "X2"}, "long-enough")
	assert.ErrorIs(t, err, ErrInvalidUser)
}

func TestListGuides(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.CreateUser(models.User{Email: "g@tour.local", FullName: "Guide", Role: models.RoleGuide}, "long-enough")
	require.NoError(t, err)
	_, err = svc.CreateUser(models.User{Email: "a@tour.local", FullName: "Admin", Role: models.RoleAdmin}, "long-enough")
	require.NoError(t, err)

	guides, err := svc.ListGuides()
	require.NoError(t, err)
	require.Len(t, guides, 1)
	assert.Equal(t, "g@tour.local", guides[0].Email)
}
