package services

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"jobboard/job-service/internal/models"
	"jobboard/job-service/internal/repositories"
)

// ==========================
// Shared test doubles
// ==========================

type fakeResumeStore struct {
	mu    sync.Mutex
	blob  *ResumeBlob
	err   error
	calls int
}

func (f *fakeResumeStore) FetchResume(_ context.Context, _ string) (*ResumeBlob, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.blob, nil
}

type fakeApplicationRepo struct {
	mu        sync.Mutex
	apps      map[uuid.UUID]*models.JobApplication
	aiUpdates map[uuid.UUID]*repositories.AIResultData
	existsErr error
	createErr error
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{
		apps:      make(map[uuid.UUID]*models.JobApplication),
		aiUpdates: make(map[uuid.UUID]*repositories.AIResultData),
	}
}

func (f *fakeApplicationRepo) Create(app *models.JobApplication) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	stored := *app
	f.apps[app.ID] = &stored
	return nil
}

func (f *fakeApplicationRepo) FindByID(id uuid.UUID) (*models.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return nil, repositories.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (f *fakeApplicationRepo) FindByJobID(jobID uuid.UUID) ([]models.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var apps []models.JobApplication
	for _, app := range f.apps {
		if app.JobID == jobID {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (f *fakeApplicationRepo) FindByCandidateEmail(email string) ([]models.JobApplication, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var apps []models.JobApplication
	for _, app := range f.apps {
		if app.CandidateEmail == email {
			apps = append(apps, *app)
		}
	}
	return apps, nil
}

func (f *fakeApplicationRepo) ExistsByJobAndCandidate(jobID uuid.UUID, candidateEmail string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.existsErr != nil {
		return false, f.existsErr
	}
	for _, app := range f.apps {
		if app.JobID == jobID && app.CandidateEmail == candidateEmail {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeApplicationRepo) UpdateStatus(id uuid.UUID, status models.ApplicationStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	app.Status = status
	return nil
}

func (f *fakeApplicationRepo) UpdateAIResult(id uuid.UUID, data *repositories.AIResultData) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	app, ok := f.apps[id]
	if !ok {
		return repositories.ErrApplicationNotFound
	}
	if data.Summary != nil {
		summary := *data.Summary
		app.AISummary = &summary
	}
	if data.Score != nil {
		score := *data.Score
		app.AIScore = &score
	}
	f.aiUpdates[id] = data
	return nil
}

func (f *fakeApplicationRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.apps)
}

type fakeJobRepo struct {
	mu   sync.Mutex
	jobs map[uuid.UUID]*models.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{jobs: make(map[uuid.UUID]*models.Job)}
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := *job
	f.jobs[job.ID] = &stored
	return nil
}

func (f *fakeJobRepo) FindByID(id uuid.UUID) (*models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	job, ok := f.jobs[id]
	if !ok {
		return nil, repositories.ErrJobNotFound
	}
	copied := *job
	return &copied, nil
}

func (f *fakeJobRepo) FindAll() ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var jobs []models.Job
	for _, job := range f.jobs {
		jobs = append(jobs, *job)
	}
	return jobs, nil
}

func (f *fakeJobRepo) FindByRecruiterEmail(email string) ([]models.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var jobs []models.Job
	for _, job := range f.jobs {
		if job.RecruiterEmail == email {
			jobs = append(jobs, *job)
		}
	}
	return jobs, nil
}

type fakeAIService struct {
	enabled        bool
	summary        string
	summarizeErr   error
	score          int
	scoreErr       error
	summarizeCalls int
	scoreCalls     int
}

func (f *fakeAIService) Enabled() bool { return f.enabled }

func (f *fakeAIService) SummarizeResume(_ context.Context, _ string) (string, error) {
	f.summarizeCalls++
	if f.summarizeErr != nil {
		return "", f.summarizeErr
	}
	return f.summary, nil
}

func (f *fakeAIService) ScoreMatch(_ context.Context, _, _ string) (int, error) {
	f.scoreCalls++
	if f.scoreErr != nil {
		return 0, f.scoreErr
	}
	return f.score, nil
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) ExtractText(_ []byte) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeWorker struct {
	mu        sync.Mutex
	scheduled []EvaluationJob
}

func (f *fakeWorker) Schedule(job EvaluationJob) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scheduled = append(f.scheduled, job)
}

func (f *fakeWorker) Stop() {}

func (f *fakeWorker) jobs() []EvaluationJob {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]EvaluationJob(nil), f.scheduled...)
}
