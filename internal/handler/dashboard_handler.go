package handler

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"SpaceXLaunchDashboard/internal/dashboard"
	"SpaceXLaunchDashboard/internal/dataset"
	"SpaceXLaunchDashboard/internal/dispatch"
	"SpaceXLaunchDashboard/internal/models"
	"SpaceXLaunchDashboard/internal/observability"
	"SpaceXLaunchDashboard/internal/render"

	"github.com/gin-gonic/gin"
)

// Dashboard serves the page and its figures from one immutable dataset.
type Dashboard struct {
	table      *dataset.Table
	layout     dashboard.Layout
	dispatcher *dispatch.Dispatcher
	metrics    *observability.Metrics
	page       []byte
}

func NewDashboard(table *dataset.Table, metrics *observability.Metrics) (*Dashboard, error) {
	layout := dashboard.NewLayout(table.MinPayload(), table.MaxPayload())
	page, err := renderPage(layout)
	if err != nil {
		return nil, err
	}
	metrics.DatasetRecords.Set(float64(table.Len()))
	return &Dashboard{
		table:      table,
		layout:     layout,
		dispatcher: dispatch.NewDashboard(table),
		metrics:    metrics,
		page:       page,
	}, nil
}

// PieQuery binds the pie chart query string.
type PieQuery struct {
	Site   string `form:"site" example:"KSC LC-39A"`
	Width  int    `form:"width" example:"800"`
	Height int    `form:"height" example:"480"`
}

// ScatterQuery binds the scatter chart query string.
type ScatterQuery struct {
	Site   string   `form:"site" example:"ALL"`
	Low    *float64 `form:"low" example:"0"`
	High   *float64 `form:"high" example:"10000"`
	Width  int      `form:"width" example:"800"`
	Height int      `form:"height" example:"480"`
}

type ErrorResponse struct {
	Error string `json:"error" example:"invalid query"`
}

type HealthResponse struct {
	Status  string `json:"status" example:"ok"`
	Records int    `json:"records" example:"56"`
}

type PieChartResponse struct {
	Figure  dashboard.PieChart `json:"figure"`
	Warning string             `json:"warning,omitempty"`
}

type ScatterChartResponse struct {
	Figure  dashboard.ScatterChart `json:"figure"`
	Warning string                 `json:"warning,omitempty"`
}

func (q PieQuery) site() string {
	if q.Site == "" {
		return models.SiteAll
	}
	return q.Site
}

func (q ScatterQuery) site() string {
	if q.Site == "" {
		return models.SiteAll
	}
	return q.Site
}

func (q ScatterQuery) payload(def dashboard.PayloadRange) dashboard.PayloadRange {
	r := def
	if q.Low != nil {
		r.Low = *q.Low
	}
	if q.High != nil {
		r.High = *q.High
	}
	return r
}

// Index godoc
// @Summary      Dashboard page
// @Description  Site dropdown, payload slider and the two charts. Controls talk to /ws/dashboard.
// @Tags         Dashboard
// @Produce      html
// @Success      200 {string} string "HTML page"
// @Router       / [get]
func (d *Dashboard) Index(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", d.page)
}

// Health godoc
// @Summary      Health check
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} handler.HealthResponse
// @Router       /health [get]
func (d *Dashboard) Health(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok", Records: d.table.Len()})
}

// Layout godoc
// @Summary      Page layout
// @Description  Static widget tree: title, site dropdown options, slider bounds and the chart ids.
// @Tags         Dashboard
// @Produce      json
// @Success      200 {object} dashboard.Layout
// @Router       /api/layout [get]
func (d *Dashboard) Layout(c *gin.Context) {
	c.JSON(http.StatusOK, d.layout)
}

// PieChart godoc
// @Summary      Successful launches pie chart
// @Description  ALL: successes per site. A single site: launch counts per outcome class.
// @Description  An unknown site returns an empty figure and a warning.
// @Tags         Charts
// @Produce      json
// @Param        site query string false "Launch site or ALL (default ALL)"
// @Success      200 {object} handler.PieChartResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/charts/success-pie-chart [get]
func (d *Dashboard) PieChart(c *gin.Context) {
	var q PieQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	start := time.Now()
	figure, err := dashboard.SuccessPie(d.table, q.site())
	d.observe(dashboard.PieChartID, "json", start, err)
	c.JSON(http.StatusOK, PieChartResponse{Figure: figure, Warning: warning(err)})
}

// PieChartPNG godoc
// @Summary      Successful launches pie chart image
// @Tags         Charts
// @Produce      png
// @Param        site   query string false "Launch site or ALL (default ALL)"
// @Param        width  query int    false "Image width in px"
// @Param        height query int    false "Image height in px"
// @Success      200 {file} file "PNG image"
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/charts/success-pie-chart/png [get]
func (d *Dashboard) PieChartPNG(c *gin.Context) {
	var q PieQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	start := time.Now()
	figure, err := dashboard.SuccessPie(d.table, q.site())
	var buf bytes.Buffer
	if rerr := render.PiePNG(&buf, figure, q.Width, q.Height); rerr != nil {
		d.metrics.ObserveChart(dashboard.PieChartID, "png", observability.OutcomeError, time.Since(start).Seconds())
		slog.Error("handler.PieChartPNG(): render failed", "error", rerr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render chart"})
		return
	}
	d.observe(dashboard.PieChartID, "png", start, err)
	writePNG(c, buf.Bytes(), err)
}

// ScatterChart godoc
// @Summary      Payload vs. outcome scatter chart
// @Description  Launches with payload strictly between low and high, optionally restricted to one site.
// @Description  low/high default to the dataset's payload bounds. low > high or an unknown site
// @Description  returns an empty figure and a warning.
// @Tags         Charts
// @Produce      json
// @Param        site query string false "Launch site or ALL (default ALL)"
// @Param        low  query number false "Exclusive lower payload bound (kg)"
// @Param        high query number false "Exclusive upper payload bound (kg)"
// @Success      200 {object} handler.ScatterChartResponse
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/charts/success-payload-scatter-chart [get]
func (d *Dashboard) ScatterChart(c *gin.Context) {
	var q ScatterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	start := time.Now()
	figure, err := dashboard.PayloadScatter(d.table, q.site(), q.payload(d.layout.DefaultRange()))
	d.observe(dashboard.ScatterChartID, "json", start, err)
	c.JSON(http.StatusOK, ScatterChartResponse{Figure: figure, Warning: warning(err)})
}

// ScatterChartPNG godoc
// @Summary      Payload vs. outcome scatter chart image
// @Tags         Charts
// @Produce      png
// @Param        site   query string false "Launch site or ALL (default ALL)"
// @Param        low    query number false "Exclusive lower payload bound (kg)"
// @Param        high   query number false "Exclusive upper payload bound (kg)"
// @Param        width  query int    false "Image width in px"
// @Param        height query int    false "Image height in px"
// @Success      200 {file} file "PNG image"
// @Failure      400 {object} handler.ErrorResponse
// @Router       /api/charts/success-payload-scatter-chart/png [get]
func (d *Dashboard) ScatterChartPNG(c *gin.Context) {
	var q ScatterQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query: " + err.Error()})
		return
	}

	start := time.Now()
	figure, err := dashboard.PayloadScatter(d.table, q.site(), q.payload(d.layout.DefaultRange()))
	var buf bytes.Buffer
	if rerr := render.ScatterPNG(&buf, figure, q.Width, q.Height); rerr != nil {
		d.metrics.ObserveChart(dashboard.ScatterChartID, "png", observability.OutcomeError, time.Since(start).Seconds())
		slog.Error("handler.ScatterChartPNG(): render failed", "error", rerr)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to render chart"})
		return
	}
	d.observe(dashboard.ScatterChartID, "png", start, err)
	writePNG(c, buf.Bytes(), err)
}

func (d *Dashboard) initialState() dispatch.State {
	return dispatch.State{Site: d.layout.SiteDropdown.Value, Payload: d.layout.DefaultRange()}
}

// observe records a figure build. Rejected inputs count as warnings.
func (d *Dashboard) observe(chart, format string, start time.Time, err error) {
	outcome := observability.OutcomeOK
	switch {
	case isRejection(err):
		outcome = observability.OutcomeWarning
		slog.Warn("handler: chart inputs rejected", "chart", chart, "error", err)
	case err != nil:
		outcome = observability.OutcomeError
	}
	d.metrics.ObserveChart(chart, format, outcome, time.Since(start).Seconds())
}

func warning(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func writePNG(c *gin.Context, b []byte, err error) {
	if err != nil {
		c.Header("X-Chart-Warning", err.Error())
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/png", b)
}
