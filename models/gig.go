package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type GigStatus string

const (
	GigStatusOpen           GigStatus = "open"
	GigStatusInProgress     GigStatus = "in_progress"
	GigStatusAwaitingPayout GigStatus = "awaiting_payout"
	GigStatusCompleted      GigStatus = "completed"
	GigStatusClosed         GigStatus = "closed"
)

// gigTransitions is the single transition table consulted by every
// mutating operation. A transition absent here is rejected.
var gigTransitions = map[GigStatus][]GigStatus{
	GigStatusOpen:           {GigStatusInProgress, GigStatusClosed},
	GigStatusInProgress:     {GigStatusAwaitingPayout, GigStatusCompleted},
	GigStatusAwaitingPayout: {GigStatusCompleted},
}

func (s GigStatus) CanTransitionTo(next GigStatus) bool {
	for _, allowed := range gigTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type ApplicantStatus string

const (
	ApplicantStatusPending  ApplicantStatus = "pending"
	ApplicantStatusAccepted ApplicantStatus = "accepted"
	ApplicantStatusRejected ApplicantStatus = "rejected"
)

type Gig struct {
	GID            uint                        `gorm:"primaryKey;column:g_id" json:"gid"`
	Title          string                      `gorm:"size:100;not null" json:"title"`
	Description    string                      `gorm:"type:text" json:"description"`
	RequiredSkills datatypes.JSONSlice[string] `gorm:"column:required_skills" json:"required_skills"`
	Budget         decimal.Decimal             `gorm:"type:numeric(12,2);not null" json:"budget"`
	Currency       string                      `gorm:"size:3;not null" json:"currency"`
	Deadline       time.Time                   `gorm:"not null" json:"deadline"`

	ClientID       uint   `gorm:"not null;index" json:"client_id"`
	ClientUsername string `gorm:"size:50" json:"client_username"` // snapshot at posting time

	Status            GigStatus `gorm:"type:gig_status;default:'open';not null" json:"status"`
	SelectedStudentID *uint     `gorm:"column:selected_student_id" json:"selected_student_id,omitempty"`
	NumberOfReports   int       `gorm:"default:0" json:"number_of_reports"`

	// Bumped on every guarded write; stale writers lose.
	Version uint `gorm:"default:0" json:"-"`

	Applicants []Applicant `gorm:"foreignKey:GigID" json:"applicants,omitempty"`

	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"updated_at"`
}

// Applicant rows are insertion-ordered by id, which preserves
// application order without a separate sequence column.
type Applicant struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	GigID           uint            `gorm:"not null;index;uniqueIndex:idx_gig_student" json:"gig_id"`
	StudentID       uint            `gorm:"not null;uniqueIndex:idx_gig_student" json:"student_id"`
	StudentUsername string          `gorm:"size:50" json:"student_username"` // snapshot at apply time
	Message         string          `gorm:"type:text" json:"message,omitempty"`
	Status          ApplicantStatus `gorm:"type:applicant_status;default:'pending';not null" json:"status"`
	AppliedAt       time.Time       `gorm:"autoCreateTime" json:"applied_at"`
}

type ProgressReport struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GigID         uint      `gorm:"not null;index" json:"gig_id"`
	StudentID     uint      `gorm:"not null" json:"student_id"`
	Seq           int       `gorm:"not null" json:"seq"`
	Note          string    `gorm:"type:text" json:"note"`
	AttachmentURL string    `gorm:"size:512" json:"attachment_url,omitempty"`
	SubmittedAt   time.Time `gorm:"autoCreateTime" json:"submitted_at"`
}
