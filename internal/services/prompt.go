package services

import "fmt"

type PromptBuilder struct{}

func NewPromptBuilder() *PromptBuilder {
	return &PromptBuilder{}
}

// BuildSummaryPrompt creates the prompt for resume summarization.
func (pb *PromptBuilder) BuildSummaryPrompt(resumeText string) string {
	return fmt.Sprintf(`You are a professional resume analyzer. Summarize the candidate's resume in 2-3 concise sentences highlighting key skills, experience, and qualifications.

Please analyze and summarize this resume:

%s`, resumeText)
}

// BuildMatchScorePrompt creates the prompt for scoring a resume summary
// against a job description. The model must answer with a bare number.
func (pb *PromptBuilder) BuildMatchScorePrompt(resumeSummary, jobDescription string) string {
	return fmt.Sprintf(`You are an expert recruiter AI. Analyze how well a candidate's profile matches a job description. Return ONLY a number between 0-100 representing the match percentage. Consider skills, experience, and qualifications.

Job Description:
%s

Candidate Summary:
%s

What is the match percentage (0-100)?`, jobDescription, resumeSummary)
}
