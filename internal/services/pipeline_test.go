package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/repositories"
)

const resumesJSON = `[
	{"name":"Ada","email":"ada@example.com","resume":"Go, Postgres","score":{"final_score":9}},
	{"name":"Linus","email":"linus@example.com","resume":"C","score":{"final_score":5}}
]`

func newPipeline(t *testing.T, routes map[string]http.HandlerFunc) (*fakeAPI, PipelineService) {
	api, client := newFakeAPI(t, routes)
	v := NewValidator()
	logger := quietLogger()
	svc := NewPipelineService(
		repositories.NewJobRepository(client),
		repositories.NewResumeRepository(client),
		NewEmailService(client, v, logger),
		v,
		logger,
	)
	return api, svc
}

func validEmailForm() models.EmailRequest {
	return models.EmailRequest{
		Email:    "ada@example.com",
		Name:     "Ada",
		Position: "Engineer",
		Date:     "2026-11-02",
		Time:     "10:30",
		Status:   models.EmailStatusInvitation,
		Feedback: "Looking forward to talking",
	}
}

func TestPipeline_Mount(t *testing.T) {
	api, svc := newPipeline(t, map[string]http.HandlerFunc{
		"GET /api/get_job_by_id": respond(http.StatusOK, resumesJSON),
		"GET /api/get_jobs":      respond(http.StatusOK, jobsJSON),
	})

	state := svc.Mount(context.Background(), "DEV-001")

	assert.Equal(t, "Engineer", state.JobName)
	assert.Equal(t, "Engineer", state.Title())
	assert.Len(t, state.Resumes, 2)
	assert.False(t, state.Loading)
	assert.False(t, state.ShowUploadForm)
	assert.False(t, state.ShowEmailForm)

	calls := api.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "/api/get_job_by_id", calls[0].Path)
	assert.Equal(t, "job_id=DEV-001", calls[0].Query)
	assert.Equal(t, "/api/get_jobs", calls[1].Path)
}

func TestPipeline_Mount_Failures(t *testing.T) {
	_, svc := newPipeline(t, map[string]http.HandlerFunc{
		"GET /api/get_job_by_id": respond(http.StatusInternalServerError, `oops`),
		"GET /api/get_jobs":      respond(http.StatusInternalServerError, `oops`),
	})

	state := svc.Mount(context.Background(), "DEV-404")

	assert.Empty(t, state.Resumes)
	assert.Empty(t, state.JobName)
	assert.Equal(t, "Job DEV-404", state.Title())
	assert.Empty(t, state.Alert)
}

func TestPipeline_UploadResume_OnePostThenOneRefetch(t *testing.T) {
	api, svc := newPipeline(t, map[string]http.HandlerFunc{
		"GET /api/get_job_by_id": respond(http.StatusOK, resumesJSON),
		"GET /api/get_jobs":      respond(http.StatusOK, jobsJSON),
		"POST /api/add_resume":   respond(http.StatusOK, `{"message":"queued"}`),
	})

	state := svc.Mount(context.Background(), "DEV-001")
	svc.OpenUploadForm(state)
	api.reset()

	err := svc.UploadResume(context.Background(), state, models.UploadForm{
		Name: "Grace", Email: "grace@example.com", ResumeContent: "COBOL",
	})
	require.NoError(t, err)

	calls := api.calls()
	require.Len(t, calls, 2)
	assert.Equal(t, "POST", calls[0].Method)
	assert.Equal(t, "/api/add_resume", calls[0].Path)
	assert.Equal(t, map[string]interface{}{
		"job_id": "DEV-001", "name": "Grace", "email": "grace@example.com", "resume": "COBOL",
	}, calls[0].Body)
	assert.Equal(t, "GET", calls[1].Method)
	assert.Equal(t, "/api/get_job_by_id", calls[1].Path)
	assert.Equal(t, "job_id=DEV-001", calls[1].Query)

	assert.False(t, state.ShowUploadForm)
	assert.Equal(t, MessageResumeUploaded, state.Notice)
}

func TestPipeline_UploadResume_Validation(t *testing.T) {
	api, svc := newPipeline(t, nil)
	state := &models.CandidatePipelineState{JobID: "DEV-001"}

	err := svc.UploadResume(context.Background(), state, models.UploadForm{Name: "Grace", Email: "grace@example.com"})

	assert.True(t, errors.Is(err, ErrValidation))
	assert.Equal(t, MessageAllFieldsRequired, state.Alert)
	assert.True(t, state.ShowUploadForm)
	assert.Empty(t, api.calls())
}

func TestPipeline_UploadResume_FailureDoesNotRefetch(t *testing.T) {
	api, svc := newPipeline(t, map[string]http.HandlerFunc{
		"POST /api/add_resume": respond(http.StatusBadRequest, `{"message":"resume too short"}`),
	})
	state := &models.CandidatePipelineState{JobID: "DEV-001"}
	form := models.UploadForm{Name: "Grace", Email: "grace@example.com", ResumeContent: "x"}

	err := svc.UploadResume(context.Background(), state, form)

	require.Error(t, err)
	assert.Equal(t, "resume too short", state.Alert)
	assert.True(t, state.ShowUploadForm)
	assert.Equal(t, form, state.UploadForm)
	assert.Len(t, api.calls(), 1)
}

func TestPipeline_OpenEmailForm_Prefills(t *testing.T) {
	_, svc := newPipeline(t, map[string]http.HandlerFunc{
		"GET /api/get_job_by_id": respond(http.StatusOK, resumesJSON),
		"GET /api/get_jobs":      respond(http.StatusOK, jobsJSON),
	})
	state := svc.Mount(context.Background(), "DEV-001")

	require.NoError(t, svc.OpenEmailForm(state, "linus@example.com"))

	assert.True(t, state.ShowEmailForm)
	require.NotNil(t, state.Selected)
	assert.Equal(t, "Linus", state.Selected.Name)
	assert.Equal(t, models.EmailRequest{
		Email:    "linus@example.com",
		Name:     "Linus",
		Position: "Engineer",
		Status:   models.EmailStatusInvitation,
	}, state.EmailForm)

	assert.True(t, errors.Is(svc.OpenEmailForm(state, "nobody@example.com"), ErrCandidateNotFound))
}

func TestPipeline_SendEmail_MissingFieldIssuesNoRequest(t *testing.T) {
	blank := []func(*models.EmailRequest){
		func(f *models.EmailRequest) { f.Email = "" },
		func(f *models.EmailRequest) { f.Name = "" },
		func(f *models.EmailRequest) { f.Position = "" },
		func(f *models.EmailRequest) { f.Date = "" },
		func(f *models.EmailRequest) { f.Time = "" },
		func(f *models.EmailRequest) { f.Status = "" },
		func(f *models.EmailRequest) { f.Feedback = "" },
		func(f *models.EmailRequest) { f.Status = "promotion" },
	}

	for _, clear := range blank {
		api, svc := newPipeline(t, map[string]http.HandlerFunc{
			"POST /api/send_email": respond(http.StatusOK, `{}`),
		})
		state := &models.CandidatePipelineState{JobID: "DEV-001"}
		form := validEmailForm()
		clear(&form)

		err := svc.SendEmail(context.Background(), state, form)

		assert.True(t, errors.Is(err, ErrValidation))
		assert.Equal(t, MessageFillAllFields, state.Alert)
		assert.True(t, state.ShowEmailForm)
		assert.Empty(t, api.calls())
	}
}

func TestPipeline_SendEmail_Success(t *testing.T) {
	api, svc := newPipeline(t, map[string]http.HandlerFunc{
		"POST /api/send_email": respond(http.StatusOK, `{"status":"sent"}`),
	})
	state := &models.CandidatePipelineState{JobID: "DEV-001"}

	require.NoError(t, svc.SendEmail(context.Background(), state, validEmailForm()))

	assert.False(t, state.ShowEmailForm)
	assert.Equal(t, MessageEmailSent, state.Notice)

	calls := api.calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "/api/send_email", calls[0].Path)
	assert.Equal(t, "ada@example.com", calls[0].Body["Email"])
	assert.Equal(t, "invitation", calls[0].Body["Status"])
	assert.Equal(t, "10:30", calls[0].Body["Time"])
}

func TestPipeline_SendEmail_SurfacesServiceMessage(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
		want    string
	}{
		{name: "service message", handler: respond(http.StatusBadGateway, `{"error":"SMTP relay unavailable"}`), want: "SMTP relay unavailable"},
		{name: "no message", handler: respond(http.StatusInternalServerError, `{}`), want: MessageEmailFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, svc := newPipeline(t, map[string]http.HandlerFunc{"POST /api/send_email": tt.handler})
			state := &models.CandidatePipelineState{JobID: "DEV-001"}
			form := validEmailForm()

			require.Error(t, svc.SendEmail(context.Background(), state, form))
			assert.Equal(t, tt.want, state.Alert)
			assert.True(t, state.ShowEmailForm)
			assert.Equal(t, form, state.EmailForm)
			require.NotNil(t, state.Selected)
			assert.Equal(t, "Ada", state.Selected.Name)
		})
	}
}
