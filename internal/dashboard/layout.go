package dashboard

import (
	"strconv"

	"SpaceXLaunchDashboard/internal/models"
)

// Component ids shared by the page, the HTTP API and the event dispatcher.
const (
	SiteDropdownID  = "site-dropdown"
	PayloadSliderID = "payload-slider"
	PieChartID      = "success-pie-chart"
	ScatterChartID  = "success-payload-scatter-chart"
)

const (
	PageTitle     = "SpaceX Launch Records Dashboard"
	SliderMin     = 0
	SliderMax     = 10000
	SliderStep    = 1000
	SliderCaption = "Payload range (Kg):"
)

type HeadingStyle struct {
	TextAlign string `json:"textAlign"`
	Color     string `json:"color"`
	FontSize  int    `json:"font-size"`
}

type Heading struct {
	Text  string       `json:"text"`
	Style HeadingStyle `json:"style"`
}

type Dropdown struct {
	ID          string              `json:"id"`
	Options     []models.LaunchSite `json:"options"`
	Value       string              `json:"value"`
	Placeholder string              `json:"placeholder"`
	Searchable  bool                `json:"searchable"`
}

type SliderMark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type RangeSlider struct {
	ID      string       `json:"id"`
	Caption string       `json:"caption"`
	Min     float64      `json:"min"`
	Max     float64      `json:"max"`
	Step    float64      `json:"step"`
	Value   PayloadRange `json:"value"`
	Marks   []SliderMark `json:"marks"`
}

// Layout is the static widget tree of the dashboard page.
type Layout struct {
	Title          Heading     `json:"title"`
	SiteDropdown   Dropdown    `json:"site_dropdown"`
	PieChartID     string      `json:"pie_chart_id"`
	PayloadSlider  RangeSlider `json:"payload_slider"`
	ScatterChartID string      `json:"scatter_chart_id"`
}

// NewLayout builds the page layout; the slider starts at the dataset's
// payload bounds.
func NewLayout(minPayload, maxPayload float64) Layout {
	marks := make([]SliderMark, 0, (SliderMax-SliderMin)/SliderStep+1)
	for v := SliderMin; v <= SliderMax; v += SliderStep {
		marks = append(marks, SliderMark{Value: float64(v), Label: strconv.Itoa(v)})
	}

	return Layout{
		Title: Heading{
			Text:  PageTitle,
			Style: HeadingStyle{TextAlign: "center", Color: "#503D36", FontSize: 40},
		},
		SiteDropdown: Dropdown{
			ID:          SiteDropdownID,
			Options:     models.LaunchSites(),
			Value:       models.SiteAll,
			Placeholder: "Select a Launch Site Here",
			Searchable:  true,
		},
		PieChartID: PieChartID,
		PayloadSlider: RangeSlider{
			ID:      PayloadSliderID,
			Caption: SliderCaption,
			Min:     SliderMin,
			Max:     SliderMax,
			Step:    SliderStep,
			Value:   PayloadRange{Low: minPayload, High: maxPayload},
			Marks:   marks,
		},
		ScatterChartID: ScatterChartID,
	}
}

// DefaultRange is the slider's initial selection.
func (l Layout) DefaultRange() PayloadRange {
	return l.PayloadSlider.Value
}
