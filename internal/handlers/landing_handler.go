package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"recruitai/hr-dashboard/internal/views"
)

const demoCookie = "recruitai_demo"

type landingFeature struct {
	Title       string
	Description string
}

type landingTestimonial struct {
	Name    string
	Role    string
	Content string
	Rating  int
}

func (t landingTestimonial) Stars() string {
	return strings.Repeat("★", t.Rating)
}

type statCard struct {
	Key   string
	Label string
	Value string
}

var landingFeatures = []landingFeature{
	{Title: "AI-Powered Screening", Description: "Advanced algorithms analyze resumes and match candidates to job requirements with 95% accuracy."},
	{Title: "Smart Candidate Management", Description: "Streamline your recruitment process with intelligent candidate tracking and communication tools."},
	{Title: "Data-Driven Insights", Description: "Get actionable analytics on your hiring process and optimize for better results."},
	{Title: "Automated Workflows", Description: "Save time with automated email templates, scheduling, and status updates."},
}

var landingTestimonials = []landingTestimonial{
	{Name: "Sarah Johnson", Role: "HR Director at TechCorp", Content: "RecruitAI Pro reduced our hiring time by 60% and improved candidate quality significantly.", Rating: 5},
	{Name: "Michael Chen", Role: "Talent Acquisition Lead", Content: "The AI scoring system is incredibly accurate. We've hired our best candidates using this platform.", Rating: 5},
	{Name: "Emily Rodriguez", Role: "People Operations Manager", Content: "Game-changer for our recruitment process. The automation features are phenomenal.", Rating: 5},
}

var landingStats = []statCard{
	{Value: "85%", Label: "Faster Hiring"},
	{Value: "10K+", Label: "Candidates Screened"},
	{Value: "95%", Label: "Match Accuracy"},
	{Value: "500+", Label: "Companies Trust Us"},
}

type LandingHandler struct {
	callAIURL string
}

func NewLandingHandler(callAIURL string) *LandingHandler {
	return &LandingHandler{callAIURL: callAIURL}
}

// HandleLanding handles GET /landing
func (h *LandingHandler) HandleLanding(c *fiber.Ctx) error {
	return c.Render("landing", fiber.Map{
		"Title":        "Revolutionize Your Recruitment Process",
		"CallAIURL":    h.callAIURL,
		"Features":     landingFeatures,
		"Testimonials": landingTestimonials,
		"Stats":        landingStats,
	}, views.MainLayout)
}

// HandleTryDemo handles POST /demo, the landing page's only action.
func (h *LandingHandler) HandleTryDemo(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     demoCookie,
		Value:    "1",
		Path:     "/",
		Expires:  time.Now().Add(24 * time.Hour),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return c.Redirect("/", fiber.StatusSeeOther)
}

func demoStarted(c *fiber.Ctx) bool {
	return c.Cookies(demoCookie) == "1"
}
