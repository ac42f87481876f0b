package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobboard/job-service/internal/models"
)

var ErrApplicationNotFound = errors.New("application not found")

type ApplicationRepository interface {
	Create(app *models.JobApplication) error
	FindByID(id uuid.UUID) (*models.JobApplication, error)
	FindByJobID(jobID uuid.UUID) ([]models.JobApplication, error)
	FindByCandidateEmail(email string) ([]models.JobApplication, error)
	ExistsByJobAndCandidate(jobID uuid.UUID, candidateEmail string) (bool, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
	UpdateAIResult(id uuid.UUID, result *AIResultData) error
}

// AIResultData is the evaluation outcome written back to an application.
// Nil fields are left untouched so the write never clobbers anything the
// recruiter changed in the meantime.
type AIResultData struct {
	Summary *string
	Score   *int
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create implements ApplicationRepository.
func (r *applicationRepository) Create(app *models.JobApplication) error {
	if err := r.db.Create(app).Error; err != nil {
		return fmt.Errorf("failed to create application: %w", err)
	}
	return nil
}

// FindByID implements ApplicationRepository.
func (r *applicationRepository) FindByID(id uuid.UUID) (*models.JobApplication, error) {
	var app models.JobApplication
	if err := r.db.Where("id = ?", id).First(&app).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, fmt.Errorf("failed to find application: %w", err)
	}
	return &app, nil
}

// FindByJobID implements ApplicationRepository.
func (r *applicationRepository) FindByJobID(jobID uuid.UUID) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := r.db.Where("job_id = ?", jobID).Order("applied_at ASC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications for job: %w", err)
	}
	return apps, nil
}

// FindByCandidateEmail implements ApplicationRepository.
func (r *applicationRepository) FindByCandidateEmail(email string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	if err := r.db.Where("candidate_email = ?", email).Order("applied_at DESC").Find(&apps).Error; err != nil {
		return nil, fmt.Errorf("failed to list applications for candidate: %w", err)
	}
	return apps, nil
}

// ExistsByJobAndCandidate implements ApplicationRepository.
func (r *applicationRepository) ExistsByJobAndCandidate(jobID uuid.UUID, candidateEmail string) (bool, error) {
	var count int64
	err := r.db.Model(&models.JobApplication{}).
		Where("job_id = ? AND candidate_email = ?", jobID, candidateEmail).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check existing application: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus implements ApplicationRepository.
func (r *applicationRepository) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	result := r.db.Model(&models.JobApplication{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

// UpdateAIResult implements ApplicationRepository.
// The update is a targeted column patch against the current row, never a
// full-record save, so concurrent status changes survive it.
func (r *applicationRepository) UpdateAIResult(id uuid.UUID, data *AIResultData) error {
	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}

	if data.Summary != nil {
		updates["ai_summary"] = *data.Summary
	}
	if data.Score != nil {
		updates["ai_score"] = *data.Score
	}

	result := r.db.Model(&models.JobApplication{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update AI result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}
