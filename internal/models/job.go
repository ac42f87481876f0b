package models

import (
	"time"

	"github.com/google/uuid"
)

type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title          string    `gorm:"type:text;not null" json:"title"`
	CompanyName    string    `gorm:"type:text" json:"company_name"`
	Description    string    `gorm:"type:text" json:"description"`
	Requirements   string    `gorm:"type:text" json:"requirements"`
	Salary         *float64  `gorm:"type:decimal(12,2)" json:"salary,omitempty"`
	RecruiterEmail string    `gorm:"type:text;index" json:"recruiter_email"`
	IsOpen         bool      `gorm:"not null;default:true" json:"is_open"`
	CreatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt      time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Job) TableName() string {
	return "jobs"
}
