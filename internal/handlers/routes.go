package handlers

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"recruitai/hr-dashboard/internal/views"
)

type AppOptions struct {
	BodyLimit    int64
	AccessLog    bool
	ErrorLogger  *logrus.Logger
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type Handlers struct {
	Landing   *LandingHandler
	Dashboard *DashboardHandler
	Job       *JobHandler
	API       *APIHandler
}

func NewApp(opts AppOptions, h Handlers) *fiber.App {
	if opts.ErrorLogger == nil {
		opts.ErrorLogger = logrus.StandardLogger()
	}

	app := fiber.New(fiber.Config{
		AppName:      "RecruitAI Pro Dashboard",
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
		BodyLimit:    int(opts.BodyLimit),
		Views:        views.NewEngine(),
		ErrorHandler: customErrorHandler(opts.ErrorLogger),
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	// Pages
	app.Get("/", h.Dashboard.HandleIndex)
	app.Get("/landing", h.Landing.HandleLanding)
	app.Post("/demo", h.Landing.HandleTryDemo)
	app.Post("/jobs", h.Dashboard.HandleCreateJob)
	app.Get("/job/:jobId", h.Job.HandleShow)
	app.Post("/job/:jobId/resumes", h.Job.HandleUploadResume)
	app.Post("/job/:jobId/emails", h.Job.HandleSendEmail)

	// JSON API
	api := app.Group("/api/v1", cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	api.Get("/health", h.API.HandleHealth)
	api.Get("/jobs", h.API.HandleListJobs)
	api.Post("/jobs", h.API.HandleCreateJob)
	api.Get("/jobs/:jobId/candidates", h.API.HandleListCandidates)
	api.Post("/jobs/:jobId/resumes", h.API.HandleUploadResume)
	api.Post("/emails", h.API.HandleSendEmail)

	return app
}

// customErrorHandler answers /api routes with JSON and pages with the error view.
func customErrorHandler(log *logrus.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Something went wrong"

		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
			message = e.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.WithError(err).WithField("path", c.Path()).Error("Request failed")
		}

		if strings.HasPrefix(c.Path(), "/api/") {
			return c.Status(code).JSON(fiber.Map{
				"error": message,
				"code":  code,
			})
		}

		renderErr := c.Status(code).Render("error", fiber.Map{
			"Title":   message,
			"Code":    code,
			"Message": message,
		}, views.MainLayout)
		if renderErr != nil {
			return c.Status(code).SendString(message)
		}
		return nil
	}
}
