package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"
)

type TourController struct {
	TourSvc    *services.TourService
	CatalogSvc *services.CatalogService
}

func NewTourController(tourSvc *services.TourService, catalogSvc *services.CatalogService) *TourController {
	return &TourController{TourSvc: tourSvc, CatalogSvc: catalogSvc}
}

// GET /api/tours
func (ctrl *TourController) ListTours(c *gin.Context) {
	activeOnly := c.Query("active") == "true"
	tours, err := ctrl.TourSvc.List(activeOnly)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tours")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "tours loaded", tours)
}

// GET /api/tours/:tour
func (ctrl *TourController) GetTour(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	tour, err := ctrl.TourSvc.GetByID(tourID)
	switch {
	case err == nil:
		utils.JSONSuccess(c, http.StatusOK, "tour loaded", tour)
	case errors.Is(err, services.ErrTourNotFound):
		utils.JSONError(c, http.StatusNotFound, "tour not found")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "failed to load tour")
	}
}

func respondTourError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrTourNotFound):
		utils.JSONError(c, http.StatusNotFound, "tour not found")
	case errors.Is(err, services.ErrScheduleNotFound):
		utils.JSONError(c, http.StatusNotFound, "schedule not found for this tour")
	case errors.Is(err, services.ErrDuplicateTour):
		utils.JSONError(c, http.StatusConflict, "tour code already in use")
	case errors.Is(err, services.ErrProviderNotFound):
		utils.JSONError(c, http.StatusUnprocessableEntity, "provider_id does not reference an existing provider")
	case errors.Is(err, services.ErrInvalidTour):
		utils.JSONError(c, http.StatusUnprocessableEntity, "title, code and a non-negative base price are required")
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// POST /api/tours
func (ctrl *TourController) CreateTour(c *gin.Context) {
	var tour models.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour payload")
		return
	}
	created, err := ctrl.TourSvc.Create(tour)
	if err != nil {
		respondTourError(c, err, "failed to create tour")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "tour created", created)
}

// PUT /api/tours/:tour
func (ctrl *TourController) UpdateTour(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	var tour models.Tour
	if err := c.ShouldBindJSON(&tour); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid tour payload")
		return
	}
	updated, err := ctrl.TourSvc.Update(tourID, tour)
	if err != nil {
		respondTourError(c, err, "failed to update tour")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "tour updated", updated)
}

// DELETE /api/tours/:tour
func (ctrl *TourController) DeleteTour(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	if err := ctrl.TourSvc.Delete(tourID); err != nil {
		respondTourError(c, err, "failed to delete tour")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "tour deleted", gin.H{"id": tourID})
}

// ---- images ----

// POST /api/tours/:tour/images
func (ctrl *TourController) AddImage(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	var image models.TourImage
	if err := c.ShouldBindJSON(&image); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image payload")
		return
	}
	created, err := ctrl.TourSvc.AddImage(tourID, image)
	if err != nil {
		respondTourError(c, err, "failed to add image")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "image added", created)
}

// DELETE /api/tours/:tour/images/:id
func (ctrl *TourController) RemoveImage(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	imageID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid image id")
		return
	}
	if err := ctrl.TourSvc.RemoveImage(tourID, imageID); err != nil {
		respondTourError(c, err, "failed to remove image")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "image removed", gin.H{"id": imageID})
}

// ---- schedules ----

// GET /api/tours/:tour/schedules
func (ctrl *TourController) ListSchedules(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	schedules, err := ctrl.TourSvc.ListSchedules(tourID)
	if err != nil {
		respondTourError(c, err, "failed to load schedules")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "schedules loaded", schedules)
}

// POST /api/tours/:tour/schedules
func (ctrl *TourController) AddSchedule(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	var schedule models.TourSchedule
	if err := c.ShouldBindJSON(&schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule payload")
		return
	}
	created, err := ctrl.TourSvc.AddSchedule(tourID, schedule)
	if err != nil {
		respondTourError(c, err, "failed to add schedule")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "schedule added", created)
}

// PUT /api/tours/:tour/schedules/:id
func (ctrl *TourController) UpdateSchedule(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	scheduleID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule id")
		return
	}
	var patch models.TourSchedule
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule payload")
		return
	}
	updated, err := ctrl.TourSvc.UpdateSchedule(tourID, scheduleID, patch)
	if err != nil {
		respondTourError(c, err, "failed to update schedule")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "schedule updated", updated)
}

// DELETE /api/tours/:tour/schedules/:id
func (ctrl *TourController) RemoveSchedule(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	scheduleID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid schedule id")
		return
	}
	if err := ctrl.TourSvc.RemoveSchedule(tourID, scheduleID); err != nil {
		respondTourError(c, err, "failed to remove schedule")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "schedule removed", gin.H{"id": scheduleID})
}

// ---- service / policy attachment ----

type AttachServiceRequest struct {
	ServiceID uint `json:"service_id" binding:"required"`
}

type AttachPolicyRequest struct {
	PolicyID uint `json:"policy_id" binding:"required"`
}

func respondCatalogError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrTourNotFound):
		utils.JSONError(c, http.StatusNotFound, "tour not found")
	case errors.Is(err, services.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "service not found")
	case errors.Is(err, services.ErrPolicyNotFound):
		utils.JSONError(c, http.StatusNotFound, "policy not found")
	case errors.Is(err, services.ErrAlreadyAttached):
		utils.JSONError(c, http.StatusConflict, "already attached to this tour")
	case errors.Is(err, services.ErrNotAttached):
		utils.JSONError(c, http.StatusNotFound, "not attached to this tour")
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// POST /api/tours/:tour/services
func (ctrl *TourController) AttachService(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	var req AttachServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "service_id is required")
		return
	}
	link, err := ctrl.CatalogSvc.AttachService(tourID, req.ServiceID)
	if err != nil {
		respondCatalogError(c, err, "failed to attach service")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service attached", link)
}

// DELETE /api/tours/:tour/services/:id
func (ctrl *TourController) DetachService(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	serviceID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}
	if err := ctrl.CatalogSvc.DetachService(tourID, serviceID); err != nil {
		respondCatalogError(c, err, "failed to detach service")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service detached", gin.H{"id": serviceID})
}

// POST /api/tours/:tour/policies
func (ctrl *TourController) AttachPolicy(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	var req AttachPolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "policy_id is required")
		return
	}
	link, err := ctrl.CatalogSvc.AttachPolicy(tourID, req.PolicyID)
	if err != nil {
		respondCatalogError(c, err, "failed to attach policy")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "policy attached", link)
}

// DELETE /api/tours/:tour/policies/:id
func (ctrl *TourController) DetachPolicy(c *gin.Context) {
	tourID, ok := tourRef(c)
	if !ok {
		return
	}
	policyID, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy id")
		return
	}
	if err := ctrl.CatalogSvc.DetachPolicy(tourID, policyID); err != nil {
		respondCatalogError(c, err, "failed to detach policy")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "policy detached", gin.H{"id": policyID})
}
