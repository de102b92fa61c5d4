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
	MessageJobCreated   = "Job created successfully"
	MessageAddJobFailed = "Failed to add job"
)

// DashboardService drives the job listing view.
type DashboardService interface {
	Mount(ctx context.Context) *models.JobListingState
	CreateJob(ctx context.Context, state *models.JobListingState, form models.Job) error
}

type dashboardService struct {
	jobRepo   repositories.JobRepository
	validator *validator.Validate
	logger    *logrus.Logger
}

func NewDashboardService(
	jobRepo repositories.JobRepository,
	v *validator.Validate,
	logger *logrus.Logger,
) DashboardService {
	return &dashboardService{
		jobRepo:   jobRepo,
		validator: v,
		logger:    logger,
	}
}

// Mount implements DashboardService. A failed listing leaves the view empty.
func (s *dashboardService) Mount(ctx context.Context) *models.JobListingState {
	state := &models.JobListingState{Jobs: []models.Job{}, Loading: true}

	jobs, err := s.jobRepo.FindAll(ctx)
	if err != nil {
		s.logger.WithError(err).Error("Failed to fetch jobs")
	} else {
		state.Jobs = jobs
	}

	state.Loading = false
	return state
}

// CreateJob implements DashboardService.
func (s *dashboardService) CreateJob(ctx context.Context, state *models.JobListingState, form models.Job) error {
	state.Form = form
	state.ShowForm = true

	if err := validateStruct(s.validator, &form); err != nil {
		state.Alert = MessageAllFieldsRequired
		return err
	}

	if err := s.jobRepo.Create(ctx, &form); err != nil {
		s.logger.WithError(err).WithField("job_id", form.JobID).Error("Failed to add job")
		state.Alert = UserMessage(err, MessageAddJobFailed)
		return err
	}

	s.logger.WithField("job_id", form.JobID).Info("✅ Job created")
	state.Jobs = append(state.Jobs, form)
	state.Form = models.Job{}
	state.ShowForm = false
	state.Notice = MessageJobCreated
	return nil
}

// UserMessage is the text shown to the user for a failed action: the
// recruitment service's own message when it sent one, otherwise fallback.
func UserMessage(err error, fallback string) string {
	var apiErr *repositories.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
