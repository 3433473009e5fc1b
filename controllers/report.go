package controllers

import (
	"net/http"

	"bathroom-report-api/services"
	"bathroom-report-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Static lookup lists. Buildings and floors are not persisted entities; the
// category lookup pattern is available if they ever need to be.
var (
	buildings = []string{"Prédio A", "Prédio B", "Prédio C", "Prédio D", "Biblioteca", "Refeitório"}
	floors    = []string{"Térreo", "1º Andar", "2º Andar", "3º Andar"}
)

// ReportController handles the public report endpoints.
type ReportController struct {
	reports    *services.ReportService
	categories *services.CategoryService
	notifier   *services.NotificationService
}

func NewReportController(reports *services.ReportService, categories *services.CategoryService, notifier *services.NotificationService) *ReportController {
	return &ReportController{reports: reports, categories: categories, notifier: notifier}
}

type CreateReportRequest struct {
	RA           string   `json:"ra" binding:"required,max=20"`
	Building     string   `json:"building" binding:"required,max=50"`
	Floor        string   `json:"floor" binding:"required,max=10"`
	BathroomType string   `json:"bathroom_type" binding:"required"`
	Problems     []string `json:"problems"`
	OtherProblem *string  `json:"other_problem"`
}

// CreateReport handles POST /api/reports. The rate limiter has already
// buffered the body, so binding goes through ShouldBindBodyWith.
func (rc *ReportController) CreateReport(c *gin.Context) {
	var req CreateReportRequest
	if err := c.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if !utils.ValidateRA(req.RA) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid RA"})
		return
	}

	report, err := rc.reports.Create(c.Request.Context(), &services.CreateReportInput{
		RA:           utils.SanitizeInput(req.RA),
		Building:     utils.SanitizeInput(req.Building),
		Floor:        utils.SanitizeInput(req.Floor),
		BathroomType: req.BathroomType,
		Problems:     req.Problems,
		OtherProblem: req.OtherProblem,
	})
	if err != nil {
		respondError(c, err, "failed to create report")
		return
	}

	rc.notifier.NotifyNewReport(report)

	c.JSON(http.StatusCreated, gin.H{
		"success":    true,
		"message":    "Thank you for your contribution!",
		"report_id":  report.ID,
		"created_at": report.CreatedAt,
	})
}

// GetCategories handles GET /api/reports/categories.
func (rc *ReportController) GetCategories(c *gin.Context) {
	categories, err := rc.categories.ListGrouped(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to load categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"categories": categories,
	})
}

// GetBuildings handles GET /api/reports/buildings.
func (rc *ReportController) GetBuildings(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"buildings": buildings,
	})
}

// GetFloors handles GET /api/reports/floors.
func (rc *ReportController) GetFloors(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"floors":  floors,
	})
}
