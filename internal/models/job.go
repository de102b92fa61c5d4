package models

type Job struct {
	JobID          string `json:"job_id" form:"job_id" validate:"required"`
	JobName        string `json:"job_name" form:"job_name" validate:"required"`
	JobDescription string `json:"job_description" form:"job_description" validate:"required"`
}

type JobStats struct {
	TotalJobs int `json:"total_jobs"`
}

type JobListResponse struct {
	Jobs  []Job    `json:"jobs"`
	Stats JobStats `json:"stats"`
}
