package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"bathroom-report-api/models"
	"bathroom-report-api/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReportService owns the report lifecycle: creation with the seeded history
// entry and the transactional status transition.
type ReportService struct {
	db *gorm.DB
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db}
}

// CreateReportInput carries the submitter's form data.
type CreateReportInput struct {
	RA           string
	Building     string
	Floor        string
	BathroomType string
	Problems     []string
	OtherProblem *string
}

// Create inserts a new report with status forced to pending and seeds the
// first history entry in the same transaction, so a report row without its
// seed entry is never observable.
func (s *ReportService) Create(ctx context.Context, in *CreateReportInput) (*models.Report, error) {
	if len(in.Problems) == 0 && (in.OtherProblem == nil || strings.TrimSpace(*in.OtherProblem) == "") {
		return nil, utils.NewAppError(utils.KindValidationFailed,
			"at least one problem must be selected or described", nil)
	}
	if !models.IsValidBathroomType(in.BathroomType) {
		return nil, utils.NewAppError(utils.KindValidationFailed, "invalid bathroom type", nil)
	}

	report := &models.Report{
		RA:           in.RA,
		Building:     in.Building,
		Floor:        in.Floor,
		BathroomType: in.BathroomType,
		Problems:     in.Problems,
		OtherProblem: in.OtherProblem,
		Status:       models.StatusPending,
		Priority:     models.PriorityMedium,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(report).Error; err != nil {
			return err
		}

		seed := models.StatusHistory{
			ReportID:  report.ID,
			NewStatus: models.StatusPending,
		}
		return tx.Create(&seed).Error
	})
	if err != nil {
		return nil, utils.TranslateDBError(err, "failed to create report")
	}

	return report, nil
}

// UpdateStatus performs the status transition as a single transaction:
// lock the row, update status and timestamps, append the history entry.
// The row lock serializes concurrent transitions on the same report so the
// history chain stays causally consistent.
func (s *ReportService) UpdateStatus(ctx context.Context, id int, target string, responsible string, note *string) (*models.Report, error) {
	if !models.IsValidStatus(target) {
		return nil, utils.NewAppError(utils.KindValidationFailed,
			"invalid status, use: pending, in_progress or resolved", nil)
	}

	var report models.Report
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&report, "id = ?", id).Error; err != nil {
			return err
		}

		previous := report.Status
		now := time.Now()

		report.Status = target
		report.UpdatedAt = now
		// resolved_at is non-null iff the report is resolved; it is cleared
		// again when a resolved report is reopened.
		if target == models.StatusResolved {
			report.ResolvedAt = &now
		} else {
			report.ResolvedAt = nil
		}

		updates := map[string]interface{}{
			"status":      report.Status,
			"updated_at":  report.UpdatedAt,
			"resolved_at": report.ResolvedAt,
		}
		if err := tx.Model(&models.Report{}).Where("id = ?", id).Updates(updates).Error; err != nil {
			return err
		}

		entry := models.StatusHistory{
			ReportID:       id,
			PreviousStatus: &previous,
			NewStatus:      target,
			Note:           note,
		}
		if responsible != "" {
			entry.Responsible = &responsible
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, utils.NewAppError(utils.KindNotFound, "report not found", err)
		}
		return nil, utils.TranslateDBError(err, "failed to update report status")
	}

	return &report, nil
}

// ReportFilters narrows the admin listing.
type ReportFilters struct {
	Status       string
	Building     string
	BathroomType string
	Limit        int
	Offset       int
}

// List returns reports newest first with their history preloaded, plus the
// total count matching the filters regardless of pagination.
func (s *ReportService) List(ctx context.Context, f ReportFilters) ([]models.Report, int64, error) {
	filtered := func(db *gorm.DB) *gorm.DB {
		if f.Status != "" {
			db = db.Where("status = ?", f.Status)
		}
		if f.Building != "" {
			db = db.Where("building = ?", f.Building)
		}
		if f.BathroomType != "" {
			db = db.Where("bathroom_type = ?", f.BathroomType)
		}
		return db
	}

	var total int64
	if err := filtered(s.db.WithContext(ctx).Model(&models.Report{})).Count(&total).Error; err != nil {
		return nil, 0, utils.TranslateDBError(err, "failed to count reports")
	}

	query := filtered(s.db.WithContext(ctx).Model(&models.Report{})).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Order("created_at DESC")
	if f.Limit > 0 {
		query = query.Limit(f.Limit)
	}
	if f.Offset > 0 {
		query = query.Offset(f.Offset)
	}

	var reports []models.Report
	if err := query.Find(&reports).Error; err != nil {
		return nil, 0, utils.TranslateDBError(err, "failed to list reports")
	}
	return reports, total, nil
}

// CountRecentByRA counts reports submitted by an RA since the given time.
// Used by the rate limiting gate.
func (s *ReportService) CountRecentByRA(ctx context.Context, ra string, since time.Time) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.Report{}).
		Where("ra = ? AND created_at >= ?", ra, since).
		Count(&count).Error
	if err != nil {
		return 0, utils.TranslateDBError(err, "failed to count recent reports")
	}
	return count, nil
}

// GetByID returns one report with its history ordered oldest first.
func (s *ReportService) GetByID(ctx context.Context, id int) (*models.Report, error) {
	var report models.Report
	err := s.db.WithContext(ctx).
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, utils.TranslateDBError(err, "report not found")
	}
	return &report, nil
}
