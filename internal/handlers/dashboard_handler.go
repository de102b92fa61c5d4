package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/services"
	"recruitai/hr-dashboard/internal/views"
)

type DashboardHandler struct {
	dashboard services.DashboardService
	landing   *LandingHandler
}

func NewDashboardHandler(dashboard services.DashboardService, landing *LandingHandler) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		landing:   landing,
	}
}

// HandleIndex handles GET /. Visitors see the landing page until they start the demo.
func (h *DashboardHandler) HandleIndex(c *fiber.Ctx) error {
	if !demoStarted(c) {
		return h.landing.HandleLanding(c)
	}

	state := h.dashboard.Mount(c.UserContext())
	state.ShowForm = c.Query("new") == "1"
	return h.render(c, fiber.StatusOK, state)
}

// HandleCreateJob handles POST /jobs
func (h *DashboardHandler) HandleCreateJob(c *fiber.Ctx) error {
	var form models.Job
	if err := c.BodyParser(&form); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid job form")
	}

	state := h.dashboard.Mount(c.UserContext())
	if err := h.dashboard.CreateJob(c.UserContext(), state, form); err != nil {
		return h.render(c, statusFor(err), state)
	}
	return h.render(c, fiber.StatusOK, state)
}

func (h *DashboardHandler) render(c *fiber.Ctx, status int, state *models.JobListingState) error {
	return c.Status(status).Render("dashboard", fiber.Map{
		"Title": "Dashboard",
		"State": state,
		"Stats": dashboardStats(state.Jobs),
	}, views.MainLayout)
}

func dashboardStats(jobs []models.Job) []statCard {
	return []statCard{
		{Key: "total_jobs", Label: "Total Jobs", Value: strconv.Itoa(services.JobStatsFor(jobs).TotalJobs)},
		{Key: "ai_powered", Label: "AI Powered", Value: "100%"},
		{Key: "efficiency", Label: "Efficiency", Value: "+85%"},
		{Key: "candidates", Label: "Candidates", Value: "1.2K+"},
	}
}

// statusFor maps a failed user action to the status of the re-rendered page.
func statusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrInvalidFileType),
		errors.Is(err, services.ErrFileTooLarge):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusBadGateway
	}
}
