package models

type CreateJobRequest struct {
	Title          string   `json:"title"`
	CompanyName    string   `json:"company_name"`
	Description    string   `json:"description"`
	Requirements   string   `json:"requirements"`
	Salary         *float64 `json:"salary"`
	RecruiterEmail string   `json:"recruiter_email"`
}

type ApplyResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

type UpdateStatusRequest struct {
	Status string `json:"status"`
}

type ApplicationResponse struct {
	ID                string  `json:"id"`
	JobID             string  `json:"job_id"`
	CandidateEmail    string  `json:"candidate_email"`
	ResumeFilename    string  `json:"resume_filename"`
	ResumeContentType string  `json:"resume_content_type"`
	Status            string  `json:"status"`
	AISummary         *string `json:"ai_summary,omitempty"`
	AIScore           *int    `json:"ai_score,omitempty"`
	AppliedAt         string  `json:"applied_at"`
}
