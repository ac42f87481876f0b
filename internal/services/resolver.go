package services

import (
	"context"
	"errors"
	"fmt"
	"log"
)

// SubmitResumeInput carries the resume material of a submission request: an
// optional direct upload and an optional profile-resume filename hint.
type SubmitResumeInput struct {
	UploadData        []byte
	UploadContentType string
	UploadFilename    string
	// ProfileResumeHint is the filename of the candidate's profile resume.
	// A non-empty value means "apply with the resume on my profile".
	ProfileResumeHint string
}

type resolveOutcome int

const (
	// outcomeSkip: the strategy does not apply to this request.
	outcomeSkip resolveOutcome = iota
	// outcomeFound: the strategy produced the authoritative payload.
	outcomeFound
	// outcomeFailed: the strategy applied but could not produce a payload.
	// Resolution stops; later strategies are not consulted.
	outcomeFailed
)

type resumeStrategy interface {
	Name() string
	Resolve(ctx context.Context, candidateEmail string, in SubmitResumeInput) (resolveOutcome, *ResumeBlob, error)
}

// ResumeResolver determines which resume bytes belong to a submission by
// trying an ordered list of strategies: direct upload first, then the
// candidate's profile resume.
type ResumeResolver interface {
	Resolve(ctx context.Context, candidateEmail string, in SubmitResumeInput) (*ResumeBlob, error)
}

type resumeResolver struct {
	strategies []resumeStrategy
}

func NewResumeResolver(store ResumeStore) ResumeResolver {
	return &resumeResolver{
		strategies: []resumeStrategy{
			directUploadStrategy{},
			profileResumeStrategy{store: store},
		},
	}
}

// Resolve implements ResumeResolver.
func (r *resumeResolver) Resolve(ctx context.Context, candidateEmail string, in SubmitResumeInput) (*ResumeBlob, error) {
	for _, strategy := range r.strategies {
		outcome, blob, err := strategy.Resolve(ctx, candidateEmail, in)
		switch outcome {
		case outcomeFound:
			log.Printf("📎 Resume resolved via %s for %s (%d bytes)\n", strategy.Name(), candidateEmail, len(blob.Data))
			return blob, nil
		case outcomeFailed:
			return nil, err
		}
	}

	return nil, ErrResumeRequired
}

// directUploadStrategy uses resume bytes sent with the request verbatim.
type directUploadStrategy struct{}

func (directUploadStrategy) Name() string { return "direct upload" }

func (directUploadStrategy) Resolve(_ context.Context, _ string, in SubmitResumeInput) (resolveOutcome, *ResumeBlob, error) {
	if len(in.UploadData) == 0 {
		return outcomeSkip, nil, nil
	}

	contentType := in.UploadContentType
	if contentType == "" {
		contentType = DefaultResumeContentType
	}

	return outcomeFound, &ResumeBlob{
		Data:        in.UploadData,
		ContentType: contentType,
		Filename:    in.UploadFilename,
	}, nil
}

// profileResumeStrategy fetches the candidate's profile resume from the
// auth service when the request references it by filename.
type profileResumeStrategy struct {
	store ResumeStore
}

func (profileResumeStrategy) Name() string { return "profile resume" }

func (s profileResumeStrategy) Resolve(ctx context.Context, candidateEmail string, in SubmitResumeInput) (resolveOutcome, *ResumeBlob, error) {
	if in.ProfileResumeHint == "" {
		return outcomeSkip, nil, nil
	}

	blob, err := s.store.FetchResume(ctx, candidateEmail)
	if err != nil {
		if errors.Is(err, ErrResumeUnavailable) || errors.Is(err, ErrResumeStoreUnreachable) {
			return outcomeFailed, nil, err
		}
		return outcomeFailed, nil, fmt.Errorf("%w: %v", ErrResumeStoreUnreachable, err)
	}

	if len(blob.Data) == 0 {
		return outcomeFailed, nil, ErrResumeUnavailable
	}

	contentType := blob.ContentType
	if contentType == "" {
		contentType = DefaultResumeContentType
	}

	return outcomeFound, &ResumeBlob{
		Data:        blob.Data,
		ContentType: contentType,
		Filename:    in.ProfileResumeHint,
	}, nil
}
