package services

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/repositories"
)

const (
	MessageResumeUploaded = "Resume uploaded successfully"
	MessageUploadFailed   = "Failed to upload resume"
	MessageEmailSent      = "Email sent successfully"
	MessageEmailFailed    = "Failed to send email"
)

var ErrCandidateNotFound = errors.New("candidate not found")

// PipelineService drives the candidate management view of one job.
type PipelineService interface {
	Mount(ctx context.Context, jobID string) *models.CandidatePipelineState
	Reload(ctx context.Context, state *models.CandidatePipelineState)
	OpenUploadForm(state *models.CandidatePipelineState)
	UploadResume(ctx context.Context, state *models.CandidatePipelineState, form models.UploadForm) error
	OpenEmailForm(state *models.CandidatePipelineState, candidateEmail string) error
	SendEmail(ctx context.Context, state *models.CandidatePipelineState, form models.EmailRequest) error
}

type pipelineService struct {
	jobRepo      repositories.JobRepository
	resumeRepo   repositories.ResumeRepository
	emailService EmailService
	validator    *validator.Validate
	logger       *logrus.Logger
}

func NewPipelineService(
	jobRepo repositories.JobRepository,
	resumeRepo repositories.ResumeRepository,
	emailService EmailService,
	v *validator.Validate,
	logger *logrus.Logger,
) PipelineService {
	return &pipelineService{
		jobRepo:      jobRepo,
		resumeRepo:   resumeRepo,
		emailService: emailService,
		validator:    v,
		logger:       logger,
	}
}

// Mount implements PipelineService. Resumes and the job name are fetched
// independently; neither failure blocks the view.
func (s *pipelineService) Mount(ctx context.Context, jobID string) *models.CandidatePipelineState {
	state := &models.CandidatePipelineState{
		JobID:     jobID,
		Resumes:   []models.Resume{},
		EmailForm: models.EmailRequest{Status: models.EmailStatusInvitation},
	}

	s.Reload(ctx, state)

	job, err := s.jobRepo.FindByID(ctx, jobID)
	if err != nil {
		s.logger.WithError(err).WithField("job_id", jobID).Debug("Job name not resolved")
	} else {
		state.JobName = job.JobName
	}

	return state
}

// Reload implements PipelineService.
func (s *pipelineService) Reload(ctx context.Context, state *models.CandidatePipelineState) {
	state.Loading = true
	defer func() { state.Loading = false }()

	resumes, err := s.resumeRepo.FindByJobID(ctx, state.JobID)
	if err != nil {
		s.logger.WithError(err).WithField("job_id", state.JobID).Error("Failed to fetch resumes")
		return
	}
	state.Resumes = resumes
}

// OpenUploadForm implements PipelineService.
func (s *pipelineService) OpenUploadForm(state *models.CandidatePipelineState) {
	state.UploadForm = models.UploadForm{}
	state.ShowUploadForm = true
}

// UploadResume implements PipelineService. On success the candidate list is
// fetched again since the score is computed by the service.
func (s *pipelineService) UploadResume(ctx context.Context, state *models.CandidatePipelineState, form models.UploadForm) error {
	state.UploadForm = form
	state.ShowUploadForm = true

	if err := validateStruct(s.validator, &form); err != nil {
		state.Alert = MessageAllFieldsRequired
		return err
	}

	req := &models.AddResumeRequest{
		JobID:  state.JobID,
		Name:   form.Name,
		Email:  form.Email,
		Resume: form.ResumeContent,
	}
	if err := s.resumeRepo.Create(ctx, req); err != nil {
		s.logger.WithError(err).WithField("job_id", state.JobID).Error("Failed to upload resume")
		state.Alert = UserMessage(err, MessageUploadFailed)
		return err
	}

	s.logger.WithField("job_id", state.JobID).Info("📄 Resume uploaded")
	state.Notice = MessageResumeUploaded
	state.ShowUploadForm = false
	state.UploadForm = models.UploadForm{}

	s.Reload(ctx, state)
	return nil
}

// OpenEmailForm implements PipelineService.
func (s *pipelineService) OpenEmailForm(state *models.CandidatePipelineState, candidateEmail string) error {
	for i := range state.Resumes {
		if state.Resumes[i].Email != candidateEmail {
			continue
		}
		selected := state.Resumes[i]
		state.Selected = &selected
		state.EmailForm = models.EmailRequest{
			Email:    selected.Email,
			Name:     selected.Name,
			Position: state.JobName,
			Status:   models.EmailStatusInvitation,
		}
		state.ShowEmailForm = true
		return nil
	}
	return ErrCandidateNotFound
}

// SendEmail implements PipelineService.
func (s *pipelineService) SendEmail(ctx context.Context, state *models.CandidatePipelineState, form models.EmailRequest) error {
	state.EmailForm = form
	state.ShowEmailForm = true
	state.Selected = selectedCandidate(state, form)

	if err := validateStruct(s.validator, &form); err != nil {
		state.Alert = MessageFillAllFields
		return err
	}

	if err := s.emailService.Send(ctx, &form); err != nil {
		s.logger.WithError(err).WithField("job_id", state.JobID).Error("Failed to send email")
		state.Alert = UserMessage(err, MessageEmailFailed)
		return err
	}

	state.Notice = MessageEmailSent
	state.ShowEmailForm = false
	return nil
}

// selectedCandidate keeps the email dialog addressed to the candidate the
// form was opened for, even when the list no longer contains them.
func selectedCandidate(state *models.CandidatePipelineState, form models.EmailRequest) *models.Resume {
	for i := range state.Resumes {
		if state.Resumes[i].Email == form.Email {
			selected := state.Resumes[i]
			return &selected
		}
	}
	if form.Email == "" && form.Name == "" {
		return nil
	}
	return &models.Resume{Name: form.Name, Email: form.Email}
}
