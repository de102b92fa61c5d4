package models

// Score is computed by the recruitment service; only the final score is shown.
type Score struct {
	FinalScore float64 `json:"final_score"`
}

type Resume struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Resume string `json:"resume"`
	Score  Score  `json:"score"`
}

type AddResumeRequest struct {
	JobID  string `json:"job_id" validate:"required"`
	Name   string `json:"name" validate:"required"`
	Email  string `json:"email" validate:"required"`
	Resume string `json:"resume" validate:"required"`
}

// UploadForm is the candidate upload form. ResumeContent may be filled from an
// attached PDF when the text area is left empty.
type UploadForm struct {
	Name          string `json:"name" form:"name" validate:"required"`
	Email         string `json:"email" form:"email" validate:"required"`
	ResumeContent string `json:"resume" form:"resume" validate:"required"`
}

type CandidateStats struct {
	Total         int     `json:"total"`
	AverageScore  float64 `json:"average_score"`
	TopCandidates int     `json:"top_candidates"`
}

type CandidateView struct {
	Resume
	Label    string  `json:"label"`
	Progress float64 `json:"progress"`
}

type CandidateListResponse struct {
	JobID      string          `json:"job_id"`
	JobName    string          `json:"job_name"`
	Candidates []CandidateView `json:"candidates"`
	Stats      CandidateStats  `json:"stats"`
}
