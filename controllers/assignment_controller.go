package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/middleware"
	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"
)

type CreateAssignmentRequest struct {
	UserID uint `json:"user_id" binding:"required"`
	Status *int `json:"status"`
}

type UpdateAssignmentRequest struct {
	Status int `json:"status"`
}

type AssignmentController struct {
	AssignmentSvc *services.AssignmentService
}

func NewAssignmentController(svc *services.AssignmentService) *AssignmentController {
	return &AssignmentController{AssignmentSvc: svc}
}

// tourRef normalizes the :tour path segment into a typed id before any
// business logic sees it.
func tourRef(c *gin.Context) (uint, bool) {
	id, err := utils.ParseRef(c.Param("tour"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour reference")
		return 0, false
	}
	return id, true
}

// GET /api/tours/:tour/assignments
func (ctrl *AssignmentController) ListAssignments(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	assignments, err := ctrl.AssignmentSvc.ListByTour(tourID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load assignments")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "assignments loaded", assignments)
}

// POST /api/tours/:tour/assignments
func (ctrl *AssignmentController) CreateAssignment(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}

	var req CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	status := models.AssignmentPending
	if req.Status != nil {
		status = models.AssignmentStatus(*req.Status)
	}

	assignment, err := ctrl.AssignmentSvc.Create(tourID, req.UserID, status)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusCreated, "guide assigned and notified", assignment)
	case errors.Is(err, services.ErrDuplicateAssignment):
		utils.JSONError(c, http.StatusConflict, "this guide is already assigned to the tour")
	case errors.Is(err, services.ErrGuideNotFound):
		utils.JSONError(c, http.StatusUnprocessableEntity, "user_id does not reference an existing user")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusUnprocessableEntity, "status is not a valid assignment status")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to create assignment")
	}
}

// PUT /api/tours/:tour/assignments/:id
func (ctrl *AssignmentController) UpdateAssignment(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}

	var req UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	assignment, err := ctrl.AssignmentSvc.UpdateStatus(tourID, assignmentID, models.AssignmentStatus(req.Status))
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "assignment updated", assignment)
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found for this tour")
	case errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusUnprocessableEntity, "status is not a valid assignment status")
	case errors.Is(err, services.ErrIllegalTransition):
		utils.JSONError(c, http.StatusUnprocessableEntity, "status transition not allowed")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to update assignment")
	}
}

// DELETE /api/tours/:tour/assignments/:id
func (ctrl *AssignmentController) DeleteAssignment(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}

	err = ctrl.AssignmentSvc.Delete(tourID, assignmentID)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "assignment removed", gin.H{"id": assignmentID})
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found for this tour")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to remove assignment")
	}
}

// POST /api/assignments/:id/confirm
func (ctrl *AssignmentController) ConfirmAssignment(c *gin.Context) {
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}

	assignment, err := ctrl.AssignmentSvc.Confirm(assignmentID, userID)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "assignment confirmed", assignment)
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found")
	case errors.Is(err, services.ErrNotAssignmentOwner):
		utils.JSONError(c, http.StatusForbidden, "this assignment belongs to another guide")
	case errors.Is(err, services.ErrIllegalTransition):
		utils.JSONError(c, http.StatusUnprocessableEntity, "assignment is not pending confirmation")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to confirm assignment")
	}
}

// GET /api/assignments/mine
func (ctrl *AssignmentController) MyAssignments(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}
	assignments, err := ctrl.AssignmentSvc.MyAssignments(userID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load assignments")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "assignments loaded", assignments)
}

// ---- trip execution: check-ins and notes ----

type CheckInRequest struct {
	Location string   `json:"location" binding:"required"`
	Lat      *float64 `json:"lat"`
	Lng      *float64 `json:"lng"`
	Note     string   `json:"note"`
}

type NoteRequest struct {
	Body string `json:"body" binding:"required"`
}

func actor(c *gin.Context) (uint, bool, bool) {
	userID, ok := middleware.CurrentUserID(c)
	return userID, middleware.CurrentRole(c) == models.RoleAdmin, ok
}

// POST /api/assignments/:id/checkins
func (ctrl *AssignmentController) AddCheckIn(c *gin.Context) {
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "location is required")
		return
	}
	userID, admin, ok := actor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}

	checkIn, err := ctrl.AssignmentSvc.AddCheckIn(assignmentID, userID, admin, models.TripCheckIn{
		Location: req.Location,
		Lat:      req.Lat,
		Lng:      req.Lng,
		Note:     req.Note,
	})
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusCreated, "check-in recorded", checkIn)
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found")
	case errors.Is(err, services.ErrNotAssignmentOwner):
		utils.JSONError(c, http.StatusForbidden, "this assignment belongs to another guide")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to record check-in")
	}
}

// GET /api/assignments/:id/checkins
func (ctrl *AssignmentController) ListCheckIns(c *gin.Context) {
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}
	userID, admin, ok := actor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}

	checkIns, err := ctrl.AssignmentSvc.ListCheckIns(assignmentID, userID, admin)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "check-ins loaded", checkIns)
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found")
	case errors.Is(err, services.ErrNotAssignmentOwner):
		utils.JSONError(c, http.StatusForbidden, "this assignment belongs to another guide")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to load check-ins")
	}
}

// POST /api/assignments/:id/notes
func (ctrl *AssignmentController) AddNote(c *gin.Context) {
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}
	var req NoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "body is required")
		return
	}
	userID, admin, ok := actor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}

	note, err := ctrl.AssignmentSvc.AddNote(assignmentID, userID, admin, req.Body)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusCreated, "note added", note)
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found")
	case errors.Is(err, services.ErrNotAssignmentOwner):
		utils.JSONError(c, http.StatusForbidden, "this assignment belongs to another guide")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to add note")
	}
}

// GET /api/assignments/:id/notes
func (ctrl *AssignmentController) ListNotes(c *gin.Context) {
	assignmentID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid assignment id")
		return
	}
	userID, admin, ok := actor(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "missing user context")
		return
	}

	notes, err := ctrl.AssignmentSvc.ListNotes(assignmentID, userID, admin)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "notes loaded", notes)
	case errors.Is(err, services.ErrAssignmentNotFound):
		utils.JSONError(c, http.StatusNotFound, "assignment not found")
	case errors.Is(err, services.ErrNotAssignmentOwner):
		utils.JSONError(c, http.StatusForbidden, "this assignment belongs to another guide")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to load notes")
	}
}
