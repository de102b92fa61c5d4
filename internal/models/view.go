package models

// JobListingState is the dashboard view for a single request.
type JobListingState struct {
	Jobs     []Job
	Loading  bool
	ShowForm bool
	Form     Job
	Alert    string
	Notice   string
}

// CandidatePipelineState is the job details view for a single request. The
// three toggles are independent of each other.
type CandidatePipelineState struct {
	JobID          string
	JobName        string
	Resumes        []Resume
	Loading        bool
	ShowUploadForm bool
	ShowEmailForm  bool
	Selected       *Resume
	UploadForm     UploadForm
	EmailForm      EmailRequest
	Alert          string
	Notice         string
}

// Title falls back to the job id when the name could not be resolved.
func (s *CandidatePipelineState) Title() string {
	if s.JobName != "" {
		return s.JobName
	}
	return "Job " + s.JobID
}
