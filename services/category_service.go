package services

import (
	"context"
	"time"

	"bathroom-report-api/models"
	"bathroom-report-api/utils"

	"gorm.io/gorm"
)

// CategoryService serves the read-only problem category reference data.
type CategoryService struct {
	db *gorm.DB
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

// CategoryItem is one selectable problem inside a category group.
type CategoryItem struct {
	ID          int       `json:"id"`
	Description string    `json:"description"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"created_at"`
}

// ListGrouped returns active categories keyed by group label, items ordered
// by id. JSON marshalling of the map keeps group labels sorted.
func (s *CategoryService) ListGrouped(ctx context.Context) (map[string][]CategoryItem, error) {
	var rows []models.ProblemCategory
	err := s.db.WithContext(ctx).
		Where("active = ?", true).
		Order("category ASC, id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, utils.TranslateDBError(err, "failed to load problem categories")
	}

	grouped := make(map[string][]CategoryItem)
	for _, row := range rows {
		grouped[row.Category] = append(grouped[row.Category], CategoryItem{
			ID:          row.ID,
			Description: row.Description,
			Active:      row.Active,
			CreatedAt:   row.CreatedAt,
		})
	}
	return grouped, nil
}
