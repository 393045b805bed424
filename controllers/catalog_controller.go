package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"
)

// CatalogController serves the reusable add-on services and policy text blocks.
type CatalogController struct {
	CatalogSvc *services.CatalogService
}

func NewCatalogController(svc *services.CatalogService) *CatalogController {
	return &CatalogController{CatalogSvc: svc}
}

func respondCatalogItemError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrServiceNotFound):
		utils.JSONError(c, http.StatusNotFound, "service not found")
	case errors.Is(err, services.ErrPolicyNotFound):
		utils.JSONError(c, http.StatusNotFound, "policy not found")
	case errors.Is(err, services.ErrCatalogInvalid):
		utils.JSONError(c, http.StatusUnprocessableEntity, "name/title and body are required; price must be non-negative")
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// GET /api/services
func (ctrl *CatalogController) ListServices(c *gin.Context) {
	items, err := ctrl.CatalogSvc.ListServices()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load services")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "services loaded", items)
}

// POST /api/services
func (ctrl *CatalogController) CreateService(c *gin.Context) {
	var svc models.Service
	if err := c.ShouldBindJSON(&svc); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service payload")
		return
	}
	created, err := ctrl.CatalogSvc.CreateService(svc)
	if err != nil {
		respondCatalogItemError(c, err, "failed to create service")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "service created", created)
}

// PUT /api/services/:id
func (ctrl *CatalogController) UpdateService(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}
	var patch models.Service
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service payload")
		return
	}
	updated, err := ctrl.CatalogSvc.UpdateService(id, patch)
	if err != nil {
		respondCatalogItemError(c, err, "failed to update service")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service updated", updated)
}

// DELETE /api/services/:id
func (ctrl *CatalogController) DeleteService(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid service id")
		return
	}
	if err := ctrl.CatalogSvc.DeleteService(id); err != nil {
		respondCatalogItemError(c, err, "failed to delete service")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "service deleted", gin.H{"id": id})
}

// GET /api/policies
func (ctrl *CatalogController) ListPolicies(c *gin.Context) {
	items, err := ctrl.CatalogSvc.ListPolicies()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load policies")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "policies loaded", items)
}

// POST /api/policies
func (ctrl *CatalogController) CreatePolicy(c *gin.Context) {
	var policy models.Policy
	if err := c.ShouldBindJSON(&policy); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy payload")
		return
	}
	created, err := ctrl.CatalogSvc.CreatePolicy(policy)
	if err != nil {
		respondCatalogItemError(c, err, "failed to create policy")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "policy created", created)
}

// PUT /api/policies/:id
func (ctrl *CatalogController) UpdatePolicy(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy id")
		return
	}
	var patch models.Policy
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy payload")
		return
	}
	updated, err := ctrl.CatalogSvc.UpdatePolicy(id, patch)
	if err != nil {
		respondCatalogItemError(c, err, "failed to update policy")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "policy updated", updated)
}

// DELETE /api/policies/:id
func (ctrl *CatalogController) DeletePolicy(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid policy id")
		return
	}
	if err := ctrl.CatalogSvc.DeletePolicy(id); err != nil {
		respondCatalogItemError(c, err, "failed to delete policy")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "policy deleted", gin.H{"id": id})
}
