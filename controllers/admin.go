package controllers

import (
	"net/http"
	"strconv"

	"bathroom-report-api/services"

	"github.com/gin-gonic/gin"
)

// AdminController handles authentication and the staff-facing report
// endpoints.
type AdminController struct {
	auth    *services.AuthService
	reports *services.ReportService
	stats   *services.StatsService
}

func NewAdminController(auth *services.AuthService, reports *services.ReportService, stats *services.StatsService) *AdminController {
	return &AdminController{auth: auth, reports: reports, stats: stats}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /api/admin/login.
func (ac *AdminController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err, "login failed")
		return
	}

	// The Admin model keeps the password hash out of JSON via json:"-".
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.Admin,
	})
}

// GetReports handles GET /api/admin/reports with optional filters.
func (ac *AdminController) GetReports(c *gin.Context) {
	filters := services.ReportFilters{
		Status:       c.Query("status"),
		Building:     c.Query("building"),
		BathroomType: c.Query("bathroom_type"),
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil {
		filters.Limit = limit
	}
	if offset, err := strconv.Atoi(c.Query("offset")); err == nil {
		filters.Offset = offset
	}

	reports, total, err := ac.reports.List(c.Request.Context(), filters)
	if err != nil {
		respondError(c, err, "failed to list reports")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"reports": reports,
		"total":   total,
	})
}

// GetReport handles GET /api/admin/reports/:id.
func (ac *AdminController) GetReport(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	report, err := ac.reports.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err, "report not found")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"report":  report,
	})
}

type UpdateStatusRequest struct {
	Status string  `json:"status" binding:"required"`
	Note   *string `json:"note" binding:"omitempty"`
}

// UpdateReportStatus handles PATCH /api/admin/reports/:id. The responsible
// actor recorded in the history entry is the authenticated admin.
func (ac *AdminController) UpdateReportStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report id"})
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	responsible := c.GetString("adminName")

	report, err := ac.reports.UpdateStatus(c.Request.Context(), id, req.Status, responsible, req.Note)
	if err != nil {
		respondError(c, err, "failed to update report status")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Status updated",
		"report":  report,
	})
}

// GetStatistics handles GET /api/admin/statistics.
func (ac *AdminController) GetStatistics(c *gin.Context) {
	stats, err := ac.stats.Collect(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to compute statistics")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"statistics": stats,
	})
}
