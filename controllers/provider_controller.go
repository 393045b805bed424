package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/models"
	"tour-backend/services"
	"tour-backend/utils"
)

type ProviderController struct {
	ProviderSvc *services.ProviderService
}

func NewProviderController(svc *services.ProviderService) *ProviderController {
	return &ProviderController{ProviderSvc: svc}
}

func respondProviderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrProviderNotFound):
		utils.JSONError(c, http.StatusNotFound, "provider not found")
	case errors.Is(err, services.ErrProviderInvalid):
		utils.JSONError(c, http.StatusUnprocessableEntity, "provider name is required")
	case errors.Is(err, services.ErrProviderInUse):
		utils.JSONError(c, http.StatusConflict, "provider still referenced by tours")
	default:
		utils.JSONError(c, http.StatusInternalServerError, fallback)
	}
}

// GET /api/providers
func (ctrl *ProviderController) ListProviders(c *gin.Context) {
	providers, err := ctrl.ProviderSvc.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load providers")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "providers loaded", providers)
}

// GET /api/providers/:id
func (ctrl *ProviderController) GetProvider(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid provider id")
		return
	}
	provider, err := ctrl.ProviderSvc.GetByID(id)
	if err != nil {
		respondProviderError(c, err, "failed to load provider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "provider loaded", provider)
}

// POST /api/providers
func (ctrl *ProviderController) CreateProvider(c *gin.Context) {
	var provider models.Provider
	if err := c.ShouldBindJSON(&provider); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid provider payload")
		return
	}
	created, err := ctrl.ProviderSvc.Create(provider)
	if err != nil {
		respondProviderError(c, err, "failed to create provider")
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, "provider created", created)
}

// PUT /api/providers/:id
func (ctrl *ProviderController) UpdateProvider(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid provider id")
		return
	}
	var patch models.Provider
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid provider payload")
		return
	}
	updated, err := ctrl.ProviderSvc.Update(id, patch)
	if err != nil {
		respondProviderError(c, err, "failed to update provider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "provider updated", updated)
}

// DELETE /api/providers/:id
func (ctrl *ProviderController) DeleteProvider(c *gin.Context) {
	id, err := utils.ParseRef(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid provider id")
		return
	}
	if err := ctrl.ProviderSvc.Delete(id); err != nil {
		respondProviderError(c, err, "failed to delete provider")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "provider deleted", gin.H{"id": id})
}
