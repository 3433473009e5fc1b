package models

import "time"

// Report statuses. The transition relation is deliberately unconstrained:
// any status may be requested from any other.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusResolved   = "resolved"
)

// Report priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Bathroom types. The values are part of the API contract with the
// existing frontend and are kept as-is.
const (
	BathroomMale   = "masculino"
	BathroomFemale = "feminino"
)

// Report represents the reports table.
type Report struct {
	ID           int        `gorm:"primaryKey;column:id" json:"id"`
	RA           string     `gorm:"column:ra;size:20;index" json:"ra"`
	Building     string     `gorm:"column:building;size:50;index" json:"building"`
	Floor        string     `gorm:"column:floor;size:10" json:"floor"`
	BathroomType string     `gorm:"column:bathroom_type;size:20;index" json:"bathroom_type"`
	Problems     []string   `gorm:"column:problems;serializer:json;type:json" json:"problems"`
	OtherProblem *string    `gorm:"column:other_problem;type:text" json:"other_problem,omitempty"`
	Status       string     `gorm:"column:status;size:20;default:pending;index" json:"status"`
	Priority     string     `gorm:"column:priority;size:20;default:medium" json:"priority"`
	CreatedAt    time.Time  `gorm:"column:created_at;index" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at" json:"updated_at"`
	ResolvedAt   *time.Time `gorm:"column:resolved_at" json:"resolved_at,omitempty"`

	// Relations
	StatusHistory []StatusHistory `gorm:"foreignKey:ReportID" json:"status_history,omitempty"`
}

// StatusHistory is the append-only trail of status changes for a report.
// PreviousStatus is null only for the entry seeded at report creation.
type StatusHistory struct {
	ID             int       `gorm:"primaryKey;column:id" json:"id"`
	ReportID       int       `gorm:"column:report_id;index;constraint:OnDelete:CASCADE" json:"report_id"`
	PreviousStatus *string   `gorm:"column:previous_status;size:20" json:"previous_status"`
	NewStatus      string    `gorm:"column:new_status;size:20" json:"new_status"`
	Responsible    *string   `gorm:"column:responsible;size:100" json:"responsible"`
	Note           *string   `gorm:"column:note;type:text" json:"note"`
	CreatedAt      time.Time `gorm:"column:created_at" json:"created_at"`
}

// TableName overrides
func (Report) TableName() string {
	return "reports"
}

func (StatusHistory) TableName() string {
	return "status_history"
}

// IsValidStatus reports whether s is one of the three report statuses.
func IsValidStatus(s string) bool {
	return s == StatusPending || s == StatusInProgress || s == StatusResolved
}

// IsValidBathroomType reports whether t is a known bathroom type.
func IsValidBathroomType(t string) bool {
	return t == BathroomMale || t == BathroomFemale
}
