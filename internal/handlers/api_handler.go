package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/services"
)

// APIHandler serves the dashboard data as JSON under /api/v1.
type APIHandler struct {
	dashboard services.DashboardService
	pipeline  services.PipelineService
	email     services.EmailService
}

func NewAPIHandler(
	dashboard services.DashboardService,
	pipeline services.PipelineService,
	email services.EmailService,
) *APIHandler {
	return &APIHandler{
		dashboard: dashboard,
		pipeline:  pipeline,
		email:     email,
	}
}

func (h *APIHandler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now(),
	})
}

// HandleListJobs handles GET /api/v1/jobs
func (h *APIHandler) HandleListJobs(c *fiber.Ctx) error {
	state := h.dashboard.Mount(c.UserContext())
	return c.JSON(models.JobListResponse{
		Jobs:  state.Jobs,
		Stats: services.JobStatsFor(state.Jobs),
	})
}

// HandleCreateJob handles POST /api/v1/jobs
func (h *APIHandler) HandleCreateJob(c *fiber.Ctx) error {
	var req models.Job
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	state := &models.JobListingState{Jobs: []models.Job{}}
	if err := h.dashboard.CreateJob(c.UserContext(), state, req); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": state.Alert,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(req)
}

// HandleListCandidates handles GET /api/v1/jobs/:jobId/candidates
func (h *APIHandler) HandleListCandidates(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	state := h.pipeline.Mount(c.UserContext(), jobID)
	return c.JSON(models.CandidateListResponse{
		JobID:      state.JobID,
		JobName:    state.JobName,
		Candidates: services.CandidateViews(state.Resumes),
		Stats:      services.CandidateStatsFor(state.Resumes),
	})
}

// HandleUploadResume handles POST /api/v1/jobs/:jobId/resumes
func (h *APIHandler) HandleUploadResume(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var req models.UploadForm
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	state := &models.CandidatePipelineState{JobID: jobID, Resumes: []models.Resume{}}
	if err := h.pipeline.UploadResume(c.UserContext(), state, req); err != nil {
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": state.Alert,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    state.Notice,
		"candidates": services.CandidateViews(state.Resumes),
		"stats":      services.CandidateStatsFor(state.Resumes),
	})
}

// HandleSendEmail handles POST /api/v1/emails
func (h *APIHandler) HandleSendEmail(c *fiber.Ctx) error {
	var req models.EmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if err := h.email.Send(c.UserContext(), &req); err != nil {
		msg := services.UserMessage(err, services.MessageEmailFailed)
		if statusFor(err) == fiber.StatusBadRequest {
			msg = services.MessageFillAllFields
		}
		return c.Status(statusFor(err)).JSON(fiber.Map{
			"error": msg,
		})
	}

	return c.JSON(fiber.Map{
		"message": services.MessageEmailSent,
	})
}
