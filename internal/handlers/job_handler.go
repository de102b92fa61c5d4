package handlers

import (
	"net/url"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/services"
	"recruitai/hr-dashboard/internal/views"
)

type JobHandler struct {
	pipeline services.PipelineService
	intake   services.ResumeIntakeService
}

func NewJobHandler(pipeline services.PipelineService, intake services.ResumeIntakeService) *JobHandler {
	return &JobHandler{
		pipeline: pipeline,
		intake:   intake,
	}
}

// HandleShow handles GET /job/:jobId. The upload and email query parameters
// open the matching dialog.
func (h *JobHandler) HandleShow(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	state := h.pipeline.Mount(c.UserContext(), jobID)

	if c.Query("upload") == "1" {
		h.pipeline.OpenUploadForm(state)
	}
	if email := c.Query("email"); email != "" {
		if err := h.pipeline.OpenEmailForm(state, email); err != nil {
			state.Alert = "Candidate not found"
			return h.render(c, fiber.StatusNotFound, state)
		}
	}

	return h.render(c, fiber.StatusOK, state)
}

// HandleUploadResume handles POST /job/:jobId/resumes
func (h *JobHandler) HandleUploadResume(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var form models.UploadForm
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid upload form")
	}

	state := h.pipeline.Mount(c.UserContext(), jobID)

	if strings.TrimSpace(form.ResumeContent) == "" {
		text, err := h.attachedResumeText(c)
		if err != nil {
			state.UploadForm = form
			state.ShowUploadForm = true
			state.Alert = "Could not read the attached PDF: " + err.Error()
			return h.render(c, statusFor(err), state)
		}
		form.ResumeContent = text
	}

	if err := h.pipeline.UploadResume(c.UserContext(), state, form); err != nil {
		return h.render(c, statusFor(err), state)
	}
	return h.render(c, fiber.StatusOK, state)
}

// HandleSendEmail handles POST /job/:jobId/emails
func (h *JobHandler) HandleSendEmail(c *fiber.Ctx) error {
	jobID, err := jobIDParam(c)
	if err != nil {
		return err
	}

	var form models.EmailRequest
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid email form")
	}

	state := h.pipeline.Mount(c.UserContext(), jobID)
	if err := h.pipeline.SendEmail(c.UserContext(), state, form); err != nil {
		return h.render(c, statusFor(err), state)
	}
	return h.render(c, fiber.StatusOK, state)
}

// attachedResumeText returns "" when no PDF was attached.
func (h *JobHandler) attachedResumeText(c *fiber.Ctx) (string, error) {
	if !strings.HasPrefix(c.Get(fiber.HeaderContentType), fiber.MIMEMultipartForm) {
		return "", nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return "", nil
	}

	files := form.File["resume_file"]
	if len(files) == 0 || files[0].Filename == "" || files[0].Size == 0 {
		return "", nil
	}

	return h.intake.ExtractText(files[0])
}

func (h *JobHandler) render(c *fiber.Ctx, status int, state *models.CandidatePipelineState) error {
	return c.Status(status).Render("job_details", fiber.Map{
		"Title": state.Title(),
		"State": state,
		"Stats": services.CandidateStatsFor(state.Resumes),
	}, views.MainLayout)
}

// jobIDParam decodes the raw path segment. Links are built with
// url.PathEscape, so '+' stays literal and %2F decodes to '/'.
func jobIDParam(c *fiber.Ctx) (string, error) {
	jobID, err := url.PathUnescape(utils.CopyString(c.Params("jobId")))
	if err != nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "Invalid job id")
	}
	jobID = strings.TrimSpace(jobID)
	if jobID == "" {
		return "", fiber.NewError(fiber.StatusNotFound, "Job not found")
	}
	return jobID, nil
}
