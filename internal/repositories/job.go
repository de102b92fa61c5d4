package repositories

import (
	"context"
	"errors"
	"fmt"

	"recruitai/hr-dashboard/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

type JobRepository interface {
	FindAll(ctx context.Context) ([]models.Job, error)
	FindByID(ctx context.Context, jobID string) (*models.Job, error)
	Create(ctx context.Context, job *models.Job) error
}

type jobRepository struct {
	client *Client
}

func NewJobRepository(client *Client) JobRepository {
	return &jobRepository{client: client}
}

// FindAll implements JobRepository.
func (r *jobRepository) FindAll(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := r.client.Get(ctx, pathGetJobs, nil, &jobs); err != nil {
		return nil, fmt.Errorf("failed to list jobs: %w", err)
	}
	if jobs == nil {
		jobs = []models.Job{}
	}
	return jobs, nil
}

// FindByID implements JobRepository.
// TODO: call a lookup-by-id endpoint once the recruitment service exposes one;
// get_job_by_id returns the job's resumes, not the job.
func (r *jobRepository) FindByID(ctx context.Context, jobID string) (*models.Job, error) {
	jobs, err := r.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range jobs {
		if jobs[i].JobID == jobID {
			return &jobs[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrJobNotFound, jobID)
}

// Create implements JobRepository.
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	if err := r.client.Post(ctx, pathAddJob, job, nil); err != nil {
		return fmt.Errorf("failed to create job: %w", err)
	}
	return nil
}
