package models

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	StatusSubmitted ApplicationStatus = "SUBMITTED"
	StatusReviewed  ApplicationStatus = "REVIEWED"
	StatusAccepted  ApplicationStatus = "ACCEPTED"
	StatusRejected  ApplicationStatus = "REJECTED"
)

// ValidStatus reports whether s is one of the recognized application statuses.
func ValidStatus(s ApplicationStatus) bool {
	switch s {
	case StatusSubmitted, StatusReviewed, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// JobApplication is a candidate's submission to a job posting. The resume
// payload is stored by value on the row; AISummary and AIScore stay nil
// until the background evaluation finishes.
type JobApplication struct {
	ID                uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobID             uuid.UUID         `gorm:"type:uuid;not null;index" json:"job_id"`
	CandidateEmail    string            `gorm:"type:text;not null;index" json:"candidate_email"`
	ResumeData        []byte            `gorm:"type:bytea" json:"-"`
	ResumeContentType string            `gorm:"type:text" json:"resume_content_type"`
	ResumeFilename    string            `gorm:"type:text" json:"resume_filename"`
	Status            ApplicationStatus `gorm:"type:text;not null;default:'SUBMITTED'" json:"status"`
	AISummary         *string           `gorm:"type:text" json:"ai_summary,omitempty"`
	AIScore           *int              `json:"ai_score,omitempty"`
	AppliedAt         time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"applied_at"`
	UpdatedAt         time.Time         `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (JobApplication) TableName() string {
	return "job_applications"
}
