package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
)

// MonitoringController handles the per-role monitoring dashboards.
type MonitoringController struct {
	monitoringService services.MonitoringService
}

// NewMonitoringController creates a new MonitoringController
func NewMonitoringController(monitoringService services.MonitoringService) *MonitoringController {
	return &MonitoringController{monitoringService: monitoringService}
}

// GetMonitoring handles GET /api/monitoring/:role/:userId.
func (mc *MonitoringController) GetMonitoring(c *gin.Context) {
	userID, err := pathID(c, "userId")
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	rows, err := mc.monitoringService.GetMonitoring(c.Request.Context(), c.Param("role"), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DataResponse{Data: rows})
}
