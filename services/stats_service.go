package services

import (
	"context"
	"time"

	"bathroom-report-api/models"
	"bathroom-report-api/utils"

	"gorm.io/gorm"
)

// StatsService computes the aggregate dashboard numbers. Each figure comes
// from its own query; no transactional consistency across the set.
type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type BuildingCount struct {
	Building string `json:"building"`
	Count    int64  `json:"count"`
}

type DailyCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

// Statistics is the dashboard payload.
type Statistics struct {
	Total              int64           `json:"total"`
	ByStatus           []StatusCount   `json:"by_status"`
	ByBuilding         []BuildingCount `json:"by_building"`
	AvgResolutionHours *float64        `json:"avg_resolution_hours"`
	Last7Days          []DailyCount    `json:"last_7_days"`
}

// Collect runs the aggregation queries and assembles the dashboard payload.
func (s *StatsService) Collect(ctx context.Context) (*Statistics, error) {
	db := s.db.WithContext(ctx)
	stats := &Statistics{
		ByStatus:   []StatusCount{},
		ByBuilding: []BuildingCount{},
		Last7Days:  []DailyCount{},
	}

	if err := db.Model(&models.Report{}).Count(&stats.Total).Error; err != nil {
		return nil, utils.TranslateDBError(err, "failed to count reports")
	}

	if err := db.Model(&models.Report{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&stats.ByStatus).Error; err != nil {
		return nil, utils.TranslateDBError(err, "failed to count reports by status")
	}

	if err := db.Model(&models.Report{}).
		Select("building, COUNT(*) AS count").
		Group("building").
		Scan(&stats.ByBuilding).Error; err != nil {
		return nil, utils.TranslateDBError(err, "failed to count reports by building")
	}

	// Average time to resolution in hours, over resolved reports only.
	var avg struct {
		AvgHours *float64
	}
	if err := db.Raw(
		"SELECT AVG(TIMESTAMPDIFF(SECOND, created_at, resolved_at)) / 3600 AS avg_hours FROM reports WHERE status = ? AND resolved_at IS NOT NULL",
		models.StatusResolved,
	).Scan(&avg).Error; err != nil {
		return nil, utils.TranslateDBError(err, "failed to compute average resolution time")
	}
	stats.AvgResolutionHours = avg.AvgHours

	since := time.Now().AddDate(0, 0, -7)
	if err := db.Model(&models.Report{}).
		Select("DATE_FORMAT(created_at, '%Y-%m-%d') AS date, COUNT(*) AS count").
		Where("created_at >= ?", since).
		Group("DATE_FORMAT(created_at, '%Y-%m-%d')").
		Order("date ASC").
		Scan(&stats.Last7Days).Error; err != nil {
		return nil, utils.TranslateDBError(err, "failed to compute daily counts")
	}

	return stats, nil
}
