package handler

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"SpaceXLaunchDashboard/internal/dashboard"

	"github.com/yosssi/gohtml"
)

//go:embed templates/index.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

type pageData struct {
	Layout    dashboard.Layout
	Endpoints map[string]string
}

// renderPage executes the page template once; the page never changes while
// the process runs.
func renderPage(layout dashboard.Layout) ([]byte, error) {
	data := pageData{
		Layout: layout,
		Endpoints: map[string]string{
			dashboard.PieChartID:     "/api/charts/" + dashboard.PieChartID + "/png",
			dashboard.ScatterChartID: "/api/charts/" + dashboard.ScatterChartID + "/png",
		},
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("render dashboard page: %w", err)
	}
	return gohtml.FormatBytes(buf.Bytes()), nil
}
