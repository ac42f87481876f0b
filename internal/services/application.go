package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"jobboard/job-service/internal/models"
	"jobboard/job-service/internal/repositories"
)

// SubmitApplicationRequest is a candidate's request to apply to a job.
type SubmitApplicationRequest struct {
	JobID          uuid.UUID
	CandidateEmail string
	Resume         SubmitResumeInput
}

// ApplicationService orchestrates application submission, the recruiter
// read paths and status changes. Submission resolves the resume payload,
// persists the application and schedules the background AI evaluation;
// the caller never waits on the evaluation.
type ApplicationService interface {
	SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (*models.JobApplication, error)
	GetApplication(id uuid.UUID) (*models.JobApplication, error)
	GetApplicationResume(ctx context.Context, id uuid.UUID) (*ResumeBlob, error)
	ListByJob(jobID uuid.UUID) ([]models.JobApplication, error)
	ListByCandidate(candidateEmail string) ([]models.JobApplication, error)
	UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error
}

type applicationService struct {
	appRepo     repositories.ApplicationRepository
	resolver    ResumeResolver
	resumeStore ResumeStore
	worker      Worker
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	resolver ResumeResolver,
	resumeStore ResumeStore,
	worker Worker,
) ApplicationService {
	return &applicationService{
		appRepo:     appRepo,
		resolver:    resolver,
		resumeStore: resumeStore,
		worker:      worker,
	}
}

// SubmitApplication implements ApplicationService.
//
// The duplicate check and resume resolution both run before the insert, so
// a rejected submission leaves no partial record behind. The evaluation is
// scheduled only after the row is persisted; readers may observe the
// application without a summary or score until the task finishes.
func (s *applicationService) SubmitApplication(ctx context.Context, req SubmitApplicationRequest) (*models.JobApplication, error) {
	exists, err := s.appRepo.ExistsByJobAndCandidate(req.JobID, req.CandidateEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing application: %w", err)
	}
	if exists {
		return nil, ErrAlreadyApplied
	}

	blob, err := s.resolver.Resolve(ctx, req.CandidateEmail, req.Resume)
	if err != nil {
		return nil, err
	}

	app := &models.JobApplication{
		ID:                uuid.New(),
		JobID:             req.JobID,
		CandidateEmail:    req.CandidateEmail,
		ResumeData:        blob.Data,
		ResumeContentType: blob.ContentType,
		ResumeFilename:    blob.Filename,
		Status:            models.StatusSubmitted,
		AppliedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := s.appRepo.Create(app); err != nil {
		return nil, err
	}

	log.Printf("📨 Application %s submitted by %s for job %s\n", app.ID, req.CandidateEmail, req.JobID)

	s.worker.Schedule(EvaluationJob{
		ApplicationID:  app.ID,
		ResumeData:     blob.Data,
		ResumeFilename: blob.Filename,
	})

	return app, nil
}

// GetApplication implements ApplicationService.
func (s *applicationService) GetApplication(id uuid.UUID) (*models.JobApplication, error) {
	return s.appRepo.FindByID(id)
}

// GetApplicationResume implements ApplicationService.
//
// The bytes stored on the application row win. Records created by older
// versions referenced the profile resume instead of embedding it, so an
// empty row falls back to the candidate's current profile resume.
func (s *applicationService) GetApplicationResume(ctx context.Context, id uuid.UUID) (*ResumeBlob, error) {
	app, err := s.appRepo.FindByID(id)
	if err != nil {
		return nil, err
	}

	if len(app.ResumeData) > 0 {
		contentType := app.ResumeContentType
		if contentType == "" {
			contentType = DefaultResumeContentType
		}
		return &ResumeBlob{
			Data:        app.ResumeData,
			ContentType: contentType,
			Filename:    app.ResumeFilename,
		}, nil
	}

	blob, err := s.resumeStore.FetchResume(ctx, app.CandidateEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResumeNotFound, err)
	}
	if len(blob.Data) == 0 {
		return nil, ErrResumeNotFound
	}

	if blob.Filename == "" {
		blob.Filename = app.ResumeFilename
	}
	return blob, nil
}

// ListByJob implements ApplicationService.
func (s *applicationService) ListByJob(jobID uuid.UUID) ([]models.JobApplication, error) {
	return s.appRepo.FindByJobID(jobID)
}

// ListByCandidate implements ApplicationService.
func (s *applicationService) ListByCandidate(candidateEmail string) ([]models.JobApplication, error) {
	return s.appRepo.FindByCandidateEmail(candidateEmail)
}

// UpdateStatus implements ApplicationService.
func (s *applicationService) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	if !models.ValidStatus(status) {
		return fmt.Errorf("invalid application status %q", status)
	}
	return s.appRepo.UpdateStatus(id, status)
}
