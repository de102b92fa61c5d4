package repositories

import (
	"context"
	"fmt"
	"net/url"

	"recruitai/hr-dashboard/internal/models"
)

type ResumeRepository interface {
	FindByJobID(ctx context.Context, jobID string) ([]models.Resume, error)
	Create(ctx context.Context, req *models.AddResumeRequest) error
}

type resumeRepository struct {
	client *Client
}

func NewResumeRepository(client *Client) ResumeRepository {
	return &resumeRepository{client: client}
}

// FindByJobID implements ResumeRepository.
func (r *resumeRepository) FindByJobID(ctx context.Context, jobID string) ([]models.Resume, error) {
	var resumes []models.Resume
	query := url.Values{"job_id": []string{jobID}}
	if err := r.client.Get(ctx, pathGetJobByID, query, &resumes); err != nil {
		return nil, fmt.Errorf("failed to list resumes for job %s: %w", jobID, err)
	}
	if resumes == nil {
		resumes = []models.Resume{}
	}
	return resumes, nil
}

// Create implements ResumeRepository. Scoring happens on the service side.
func (r *resumeRepository) Create(ctx context.Context, req *models.AddResumeRequest) error {
	if err := r.client.Post(ctx, pathAddResume, req, nil); err != nil {
		return fmt.Errorf("failed to upload resume: %w", err)
	}
	return nil
}
