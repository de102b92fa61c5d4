package views

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"net/url"

	"github.com/gofiber/template/html/v2"

	"recruitai/hr-dashboard/internal/models"
	"recruitai/hr-dashboard/internal/services"
)

const MainLayout = "layouts/main"

//go:embed templates
var templatesFS embed.FS

// NewEngine returns the page engine over the embedded templates.
func NewEngine() *html.Engine {
	sub, err := fs.Sub(templatesFS, "templates")
	if err != nil {
		panic(fmt.Sprintf("views: %v", err))
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("scoreLabel", services.ScoreLabel)
	engine.AddFunc("scoreColor", services.ScoreColor)
	engine.AddFunc("scoreBar", services.ScoreBarWidth)
	engine.AddFunc("formatScore", formatScore)
	engine.AddFunc("pathEscape", url.PathEscape)
	engine.AddFunc("emailStatuses", func() []models.EmailStatus { return models.EmailStatuses })
	return engine
}

func formatScore(score float64) string {
	return fmt.Sprintf("%.1f", score)
}
