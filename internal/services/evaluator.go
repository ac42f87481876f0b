package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"

	"jobboard/job-service/internal/repositories"
)

// EvaluationJob is the payload handed to the background evaluation. The
// resume bytes are a private copy taken at submission time; the submitting
// request's buffers are never referenced after scheduling.
type EvaluationJob struct {
	ApplicationID  uuid.UUID
	ResumeData     []byte
	ResumeFilename string
}

// EvaluatorService runs the asynchronous resume evaluation for one
// application: extract text, summarize, score against the job description,
// then persist summary and score in a single targeted update.
//
// The task finalizes the application exactly once. Failures before a
// summary exists are recorded as an error summary with score 0; failures
// after a summary exists finalize with the summary alone.
type EvaluatorService interface {
	EvaluateApplication(ctx context.Context, job EvaluationJob) error
}

type evaluatorService struct {
	appRepo   repositories.ApplicationRepository
	jobRepo   repositories.JobRepository
	aiService AIService
	extractor TextExtractor
}

func NewEvaluatorService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	aiService AIService,
	extractor TextExtractor,
) EvaluatorService {
	return &evaluatorService{
		appRepo:   appRepo,
		jobRepo:   jobRepo,
		aiService: aiService,
		extractor: extractor,
	}
}

// EvaluateApplication implements EvaluatorService.
func (e *evaluatorService) EvaluateApplication(ctx context.Context, job EvaluationJob) error {
	appID := job.ApplicationID
	log.Printf("🔄 Starting resume evaluation for application %s (%s)\n", appID, job.ResumeFilename)

	// Step 1: extract text from the resume PDF
	resumeText, err := e.extractor.ExtractText(job.ResumeData)
	if err != nil {
		e.failEvaluation(appID, fmt.Sprintf("Summary generation failed: %v", err))
		return fmt.Errorf("failed to extract resume text: %w", err)
	}
	log.Printf("📄 Extracted %d characters from resume for application %s\n", len(resumeText), appID)

	// Step 2: summarize
	if !e.aiService.Enabled() {
		log.Printf("⚠️  AI evaluation is disabled, finalizing application %s with placeholder\n", appID)
		return e.finalize(appID, DisabledSummaryPlaceholder, nil)
	}

	summary, err := e.aiService.SummarizeResume(ctx, resumeText)
	if err != nil {
		e.failEvaluation(appID, fmt.Sprintf("Summary generation failed: %v", err))
		return fmt.Errorf("failed to summarize resume: %w", err)
	}
	log.Printf("🤖 AI summary generated for application %s\n", appID)

	// Step 3: score against the job description. Missing job or a failed
	// score call still finishes the evaluation; the summary is useful on
	// its own.
	score := e.computeMatchScore(ctx, appID, summary)

	// Step 4: persist summary and score together
	return e.finalize(appID, summary, score)
}

func (e *evaluatorService) computeMatchScore(ctx context.Context, appID uuid.UUID, summary string) *int {
	// Re-read the stored application rather than trusting the scheduled
	// snapshot; the job reference must reflect the current record.
	app, err := e.appRepo.FindByID(appID)
	if err != nil {
		log.Printf("⚠️  Skipping match score, application %s could not be reloaded: %v\n", appID, err)
		return nil
	}

	jobPosting, err := e.jobRepo.FindByID(app.JobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			log.Printf("⚠️  Skipping match score, job %s no longer exists\n", app.JobID)
		} else {
			log.Printf("⚠️  Skipping match score, job lookup failed: %v\n", err)
		}
		return nil
	}

	score, err := e.aiService.ScoreMatch(ctx, summary, jobPosting.Description)
	if err != nil {
		log.Printf("⚠️  Skipping match score for application %s: %v\n", appID, err)
		return nil
	}

	log.Printf("🎯 Match score %d%% for application %s\n", score, appID)
	return &score
}

func (e *evaluatorService) finalize(appID uuid.UUID, summary string, score *int) error {
	err := e.appRepo.UpdateAIResult(appID, &repositories.AIResultData{
		Summary: &summary,
		Score:   score,
	})
	if err != nil {
		return fmt.Errorf("failed to save evaluation result: %w", err)
	}

	log.Printf("✅ Evaluation completed for application %s\n", appID)
	return nil
}

// failEvaluation records a terminal evaluation failure on the application
// so readers see a completed-but-degraded record instead of a stuck one.
func (e *evaluatorService) failEvaluation(appID uuid.UUID, message string) {
	zero := 0
	err := e.appRepo.UpdateAIResult(appID, &repositories.AIResultData{
		Summary: &message,
		Score:   &zero,
	})
	if err != nil {
		log.Printf("❌ Failed to record evaluation failure for application %s: %v\n", appID, err)
	}
}
