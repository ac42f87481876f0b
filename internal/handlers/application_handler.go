package handlers

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"jobboard/job-service/internal/models"
	"jobboard/job-service/internal/repositories"
	"jobboard/job-service/internal/services"
)

type ApplicationHandler struct {
	appService  services.ApplicationService
	maxFileSize int64
}

func NewApplicationHandler(appService services.ApplicationService, maxFileSize int64) *ApplicationHandler {
	return &ApplicationHandler{
		appService:  appService,
		maxFileSize: maxFileSize,
	}
}

// HandleApply handles POST /jobs/:id/apply
//
// Multipart form fields: candidate_email (required), resume (optional PDF
// upload), profile_resume (optional filename of the resume stored on the
// candidate's profile). One of resume / profile_resume must be present.
func (h *ApplicationHandler) HandleApply(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	candidateEmail := c.FormValue("candidate_email")
	if candidateEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate_email is required",
		})
	}

	resume := services.SubmitResumeInput{
		ProfileResumeHint: c.FormValue("profile_resume"),
	}

	if fileHeader, err := c.FormFile("resume"); err == nil && fileHeader != nil {
		if fileHeader.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("Resume file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		file, err := fileHeader.Open()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to read uploaded resume",
			})
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Failed to read uploaded resume",
			})
		}

		resume.UploadData = data
		resume.UploadFilename = fileHeader.Filename
		resume.UploadContentType = fileHeader.Header.Get("Content-Type")
	}

	app, err := h.appService.SubmitApplication(c.Context(), services.SubmitApplicationRequest{
		JobID:          jobID,
		CandidateEmail: candidateEmail,
		Resume:         resume,
	})
	if err != nil {
		return respondSubmitError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(models.ApplyResponse{
		ID:     app.ID.String(),
		Status: string(app.Status),
	})
}

// HandleGetApplication handles GET /applications/:id
func (h *ApplicationHandler) HandleGetApplication(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	app, err := h.appService.GetApplication(appID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load application",
		})
	}

	return c.JSON(applicationResponse(app))
}

// HandleGetApplicationResume handles GET /applications/:id/resume
func (h *ApplicationHandler) HandleGetApplicationResume(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	blob, err := h.appService.GetApplicationResume(c.Context(), appID)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrApplicationNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		case errors.Is(err, services.ErrResumeNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "No resume available for this application",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to load resume",
		})
	}

	filename := blob.Filename
	if filename == "" {
		filename = "resume.pdf"
	}

	c.Set(fiber.HeaderContentType, blob.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(blob.Data)
}

// HandleListApplicationsByJob handles GET /jobs/:id/applications
func (h *ApplicationHandler) HandleListApplicationsByJob(c *fiber.Ctx) error {
	jobID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job ID format",
		})
	}

	apps, err := h.appService.ListByJob(jobID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(applicationResponses(apps))
}

// HandleListApplicationsByCandidate handles GET /applications?candidate=
func (h *ApplicationHandler) HandleListApplicationsByCandidate(c *fiber.Ctx) error {
	candidate := c.Query("candidate")
	if candidate == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "candidate query parameter is required",
		})
	}

	apps, err := h.appService.ListByCandidate(candidate)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list applications",
		})
	}

	return c.JSON(applicationResponses(apps))
}

// HandleUpdateApplicationStatus handles PATCH /applications/:id/status
func (h *ApplicationHandler) HandleUpdateApplicationStatus(c *fiber.Ctx) error {
	appID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid application ID format",
		})
	}

	var req models.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	status := models.ApplicationStatus(req.Status)
	if !models.ValidStatus(status) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("Invalid status %q", req.Status),
		})
	}

	if err := h.appService.UpdateStatus(appID, status); err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Application not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to update status",
		})
	}

	return c.JSON(fiber.Map{
		"id":     appID.String(),
		"status": string(status),
	})
}

func respondSubmitError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrAlreadyApplied):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "You have already applied to this job",
		})
	case errors.Is(err, services.ErrResumeRequired):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "A resume is required: upload one or reference your profile resume",
		})
	case errors.Is(err, services.ErrResumeUnavailable):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": "Your profile has no resume on file. Please upload one.",
		})
	case errors.Is(err, services.ErrResumeStoreUnreachable):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Profile service is unavailable. Please try again.",
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": "Failed to submit application",
	})
}

func applicationResponse(app *models.JobApplication) models.ApplicationResponse {
	return models.ApplicationResponse{
		ID:                app.ID.String(),
		JobID:             app.JobID.String(),
		CandidateEmail:    app.CandidateEmail,
		ResumeFilename:    app.ResumeFilename,
		ResumeContentType: app.ResumeContentType,
		Status:            string(app.Status),
		AISummary:         app.AISummary,
		AIScore:           app.AIScore,
		AppliedAt:         app.AppliedAt.Format(time.RFC3339),
	}
}

func applicationResponses(apps []models.JobApplication) []models.ApplicationResponse {
	responses := make([]models.ApplicationResponse, 0, len(apps))
	for i := range apps {
		responses = append(responses, applicationResponse(&apps[i]))
	}
	return responses
}
