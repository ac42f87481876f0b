package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolver_DirectUploadTakesPrecedence(t *testing.T) {
	store := &fakeResumeStore{
		blob: &ResumeBlob{Data: []byte("profile resume"), ContentType: "application/pdf"},
	}
	resolver := NewResumeResolver(store)

	blob, err := resolver.Resolve(context.Background(), "cand@example.com", SubmitResumeInput{
		UploadData:        []byte("%PDF-1.4 uploaded"),
		UploadContentType: "application/pdf",
		UploadFilename:    "resume.pdf",
		ProfileResumeHint: "profile.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 uploaded"), blob.Data)
	assert.Equal(t, "application/pdf", blob.ContentType)
	assert.Equal(t, "resume.pdf", blob.Filename)
	assert.Equal(t, 0, store.calls, "profile store must not be consulted when bytes were uploaded")
}

func TestResolver_DirectUploadDefaultsContentType(t *testing.T) {
	resolver := NewResumeResolver(&fakeResumeStore{})

	blob, err := resolver.Resolve(context.Background(), "cand@example.com", SubmitResumeInput{
		UploadData:     []byte("%PDF-1.4"),
		UploadFilename: "resume.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, DefaultResumeContentType, blob.ContentType)
}

func TestResolver_ProfileResume(t *testing.T) {
	tests := []struct {
		name       string
		store      *fakeResumeStore
		wantErr    error
		wantData   []byte
		wantName   string
		wantCtType string
	}{
		{
			name: "profile resume found",
			store: &fakeResumeStore{
				blob: &ResumeBlob{Data: []byte("profile bytes"), ContentType: "application/pdf", Filename: "stored.pdf"},
			},
			wantData:   []byte("profile bytes"),
			wantName:   "my-resume.pdf",
			wantCtType: "application/pdf",
		},
		{
			name: "profile resume without content type gets default",
			store: &fakeResumeStore{
				blob: &ResumeBlob{Data: []byte("profile bytes")},
			},
			wantData:   []byte("profile bytes"),
			wantName:   "my-resume.pdf",
			wantCtType: DefaultResumeContentType,
		},
		{
			name:    "store has no resume",
			store:   &fakeResumeStore{err: ErrResumeUnavailable},
			wantErr: ErrResumeUnavailable,
		},
		{
			name:    "store returns empty bytes",
			store:   &fakeResumeStore{blob: &ResumeBlob{Data: nil}},
			wantErr: ErrResumeUnavailable,
		},
		{
			name:    "store unreachable",
			store:   &fakeResumeStore{err: ErrResumeStoreUnreachable},
			wantErr: ErrResumeStoreUnreachable,
		},
		{
			name:    "unexpected store error maps to unreachable",
			store:   &fakeResumeStore{err: errors.New("connection reset")},
			wantErr: ErrResumeStoreUnreachable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := NewResumeResolver(tt.store)

			blob, err := resolver.Resolve(context.Background(), "cand@example.com", SubmitResumeInput{
				ProfileResumeHint: "my-resume.pdf",
			})

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, blob)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantData, blob.Data)
			assert.Equal(t, tt.wantName, blob.Filename, "filename must come from the hint")
			assert.Equal(t, tt.wantCtType, blob.ContentType)
		})
	}
}

func TestResolver_NothingProvided(t *testing.T) {
	store := &fakeResumeStore{}
	resolver := NewResumeResolver(store)

	blob, err := resolver.Resolve(context.Background(), "cand@example.com", SubmitResumeInput{})

	assert.ErrorIs(t, err, ErrResumeRequired)
	assert.Nil(t, blob)
	assert.Equal(t, 0, store.calls)
}

func TestResolver_EmptyUploadFallsThroughToProfile(t *testing.T) {
	store := &fakeResumeStore{
		blob: &ResumeBlob{Data: []byte("profile bytes"), ContentType: "application/pdf"},
	}
	resolver := NewResumeResolver(store)

	blob, err := resolver.Resolve(context.Background(), "cand@example.com", SubmitResumeInput{
		UploadData:        []byte{},
		ProfileResumeHint: "profile.pdf",
	})

	require.NoError(t, err)
	assert.Equal(t, []byte("profile bytes"), blob.Data)
	assert.Equal(t, 1, store.calls)
}
