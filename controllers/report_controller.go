package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tour-backend/services"
	"tour-backend/utils"
)

type ReportController struct {
	ReportSvc *services.ReportService
}

func NewReportController(svc *services.ReportService) *ReportController {
	return &ReportController{ReportSvc: svc}
}

// GET /api/reports/revenue?from=YYYY-MM-DD&to=YYYY-MM-DD
// Missing or malformed bounds fall back to the last 30 days.
func (ctrl *ReportController) Revenue(c *gin.Context) {
	report, err := ctrl.ReportSvc.Revenue(c.Query("from"), c.Query("to"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to build revenue report")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, "revenue report", report)
}
