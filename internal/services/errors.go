package services

import "errors"

// Submission and resume-lookup failure modes surfaced to API clients.
// Handlers map these onto HTTP status codes with errors.Is.
var (
	// ErrAlreadyApplied: an application for the same (job, candidate)
	// pair already exists.
	ErrAlreadyApplied = errors.New("candidate has already applied to this job")

	// ErrResumeRequired: neither an uploaded resume nor a profile-resume
	// reference was supplied.
	ErrResumeRequired = errors.New("a resume is required to apply")

	// ErrResumeUnavailable: the profile store answered but holds no usable
	// resume for the candidate. The candidate must upload one.
	ErrResumeUnavailable = errors.New("no resume available on the candidate profile")

	// ErrResumeStoreUnreachable: the profile store could not be reached.
	// Transient; the caller should retry the submission.
	ErrResumeStoreUnreachable = errors.New("resume store is unreachable")

	// ErrResumeNotFound: an existing application carries no resume bytes
	// and none could be fetched from the candidate profile either.
	ErrResumeNotFound = errors.New("no resume found for this application")
)
