package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tour-backend/config"
	"tour-backend/middleware"
	"tour-backend/models"
	"tour-backend/services"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:ctrl_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.AutoMigrate(db))
	return db
}

// fakeAuth injects claims the way the JWT middleware would.
func fakeAuth(userID uint, role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ContextUserID, userID)
		c.Set(middleware.ContextUserRole, role)
		c.Next()
	}
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
	userID *uint
	role   *string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := newTestDB(t)
	assignmentSvc := services.NewAssignmentService(db, zap.NewNop())
	notificationSvc := services.NewNotificationService(db)
	ac := NewAssignmentController(assignmentSvc)
	nc := NewNotificationController(notificationSvc)

	userID := uint(0)
	role := models.RoleAdmin

	r := gin.New()
	r.Use(func(c *gin.Context) {
		fakeAuth(userID, role)(c)
	})
	r.GET("/api/tours/:tour/assignments", ac.ListAssignments)
	r.POST("/api/tours/:tour/assignments", ac.CreateAssignment)
	r.PUT("/api/tours/:tour/assignments/:id", ac.UpdateAssignment)
	r.DELETE("/api/tours/:tour/assignments/:id", ac.DeleteAssignment)
	r.POST("/api/assignments/:id/confirm", ac.ConfirmAssignment)
	r.GET("/api/notifications", nc.ListNotifications)
	r.POST("/api/notifications/:id/read", nc.MarkRead)
	r.POST("/api/notifications/read-all", nc.MarkAllRead)

	return &testEnv{db: db, router: r, userID: &userID, role: &role}
}

func (e *testEnv) as(userID uint, role string) {
	*e.userID = userID
	*e.role = role
}

func (e *testEnv) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestAssignmentEndpoints(t *testing.T) {
	env := newTestEnv(t)

	guide := models.User{FullName: "Ana Guide", Email: "ana@tour.local", Role: models.RoleGuide}
	require.NoError(t, env.db.Create(&guide).Error)
	tour := models.Tour{Title: "City Walk", Code: "CITY-1D", BasePrice: 100}
	require.NoError(t, env.db.Create(&tour).Error)
	other := models.Tour{Title: "Other", Code: "OTHER-1D", BasePrice: 50}
	require.NoError(t, env.db.Create(&other).Error)

	env.as(1, models.RoleAdmin)

	// Create.
	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/tours/%d/assignments", tour.ID),
		gin.H{"user_id": guide.ID})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)
	require.NotNil(t, created["data"])
	assignmentID := uint(created["data"].(map[string]interface{})["id"].(float64))

	// Duplicate -> 409 and body carries a message.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/tours/%d/assignments", tour.ID),
		gin.H{"user_id": guide.ID})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["message"])

	// Unknown guide -> 422.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/tours/%d/assignments", tour.ID),
		gin.H{"user_id": 999})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Missing user_id -> 400.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/tours/%d/assignments", tour.ID), gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Non-numeric tour ref -> 400.
	w = env.do(t, http.MethodGet, "/api/tours/abc/assignments", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// List shows the one assignment with guide identity.
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/tours/%d/assignments", tour.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decodeBody(t, w)["data"].([]interface{})
	require.Len(t, list, 1)

	// Update under the wrong tour -> 404, nothing mutated.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/tours/%d/assignments/%d", other.ID, assignmentID),
		gin.H{"status": int(models.AssignmentAccepted)})
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Illegal transition -> 422.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/tours/%d/assignments/%d", tour.ID, assignmentID),
		gin.H{"status": int(models.AssignmentCompleted)})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	// Legal update.
	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/tours/%d/assignments/%d", tour.ID, assignmentID),
		gin.H{"status": int(models.AssignmentAccepted)})
	assert.Equal(t, http.StatusOK, w.Code)

	// Delete under the wrong tour -> 404; right tour -> 200; repeat -> 404.
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/tours/%d/assignments/%d", other.ID, assignmentID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/tours/%d/assignments/%d", tour.ID, assignmentID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/tours/%d/assignments/%d", tour.ID, assignmentID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestConfirmAndNotificationFlow(t *testing.T) {
	env := newTestEnv(t)

	guide := models.User{FullName: "Ana Guide", Email: "ana@tour.local", Role: models.RoleGuide}
	require.NoError(t, env.db.Create(&guide).Error)
	stranger := models.User{FullName: "Bo Guide", Email: "bo@tour.local", Role: models.RoleGuide}
	require.NoError(t, env.db.Create(&stranger).Error)
	tour := models.Tour{Title: "City Walk", Code: "CITY-1D", BasePrice: 100}
	require.NoError(t, env.db.Create(&tour).Error)

	env.as(99, models.RoleAdmin)
	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/tours/%d/assignments", tour.ID),
		gin.H{"user_id": guide.ID})
	require.Equal(t, http.StatusCreated, w.Code)
	assignmentID := uint(decodeBody(t, w)["data"].(map[string]interface{})["id"].(float64))

	// Guide polls the inbox: one unread entry.
	env.as(guide.ID, models.RoleGuide)
	w = env.do(t, http.MethodGet, "/api/notifications", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 1, data["unread_count"])

	// The wrong guide cannot confirm.
	env.as(stranger.ID, models.RoleGuide)
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/assignments/%d/confirm", assignmentID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// The assignee confirms; the notification flips to read with it.
	env.as(guide.ID, models.RoleGuide)
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/assignments/%d/confirm", assignmentID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/notifications", nil)
	data = decodeBody(t, w)["data"].(map[string]interface{})
	assert.EqualValues(t, 0, data["unread_count"])

	// Repeat confirm -> 422, state unchanged.
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/assignments/%d/confirm", assignmentID), nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var assignment models.TripAssignment
	require.NoError(t, env.db.First(&assignment, assignmentID).Error)
	assert.Equal(t, models.AssignmentAccepted, assignment.Status)
}

func TestMarkReadEndpointsIdempotent(t *testing.T) {
	env := newTestEnv(t)

	n := models.Notification{UserID: 7, Kind: models.NotificationTourAssigned, Title: "t", Message: "m"}
	require.NoError(t, env.db.Create(&n).Error)

	env.as(7, models.RoleGuide)
	w := env.do(t, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Someone else's notification is invisible.
	env.as(8, models.RoleGuide)
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", n.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	env.as(7, models.RoleGuide)
	w = env.do(t, http.MethodPost, "/api/notifications/read-all", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
