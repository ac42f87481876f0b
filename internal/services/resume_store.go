package services

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultResumeContentType is assumed whenever the profile store does not
// declare one. Profile resumes are PDFs in practice.
const DefaultResumeContentType = "application/pdf"

// ResumeBlob is a resolved resume payload.
type ResumeBlob struct {
	Data        []byte
	ContentType string
	Filename    string
}

// ResumeStore fetches the resume currently on a candidate's profile,
// independent of any application. The auth service owns that data; it is
// reached over HTTP.
type ResumeStore interface {
	FetchResume(ctx context.Context, candidateEmail string) (*ResumeBlob, error)
}

type resumeStoreClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewResumeStoreClient(baseURL string, timeout time.Duration) ResumeStore {
	return &resumeStoreClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchResume implements ResumeStore.
//
// A 404 from the store means "candidate has no profile resume" and comes
// back as ErrResumeUnavailable. Transport failures come back as
// ErrResumeStoreUnreachable so callers can tell the two apart.
func (c *resumeStoreClient) FetchResume(ctx context.Context, candidateEmail string) (*ResumeBlob, error) {
	endpoint := fmt.Sprintf("%s/api/auth/profile/internal/resume/%s",
		c.baseURL, url.PathEscape(candidateEmail))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build resume request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResumeStoreUnreachable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrResumeUnavailable
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("%w: unexpected status %d", ErrResumeStoreUnreachable, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrResumeStoreUnreachable, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = DefaultResumeContentType
	}

	return &ResumeBlob{
		Data:        data,
		ContentType: contentType,
		Filename:    filenameFromDisposition(resp.Header.Get("Content-Disposition")),
	}, nil
}

func filenameFromDisposition(disposition string) string {
	if disposition == "" {
		return ""
	}
	_, params, err := mime.ParseMediaType(disposition)
	if err != nil {
		return ""
	}
	return params["filename"]
}
