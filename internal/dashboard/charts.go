package dashboard

import "SpaceXLaunchDashboard/internal/models"

// Launches is the read-only view of the dataset the chart builders need.
// *dataset.Table satisfies it.
type Launches interface {
	Len() int
	At(i int) models.LaunchRecord
}

type ChartKind string

const (
	KindPie     ChartKind = "pie"
	KindScatter ChartKind = "scatter"
)

// Column labels carried into the figures, matching the dataset headers.
const (
	LabelLaunchSite      = "Launch Site"
	LabelPayloadMass     = "Payload Mass (kg)"
	LabelBoosterCategory = "Booster Version Category"
	LabelClass           = "class"
	LabelCount           = "count"
)

type PieSlice struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

// PieChart is the declarative proportion chart handed to the renderer.
// Names and Values name the columns the slice labels and sizes came from.
type PieChart struct {
	Kind   ChartKind  `json:"kind"`
	Title  string     `json:"title"`
	Names  string     `json:"names"`
	Values string     `json:"values"`
	Slices []PieSlice `json:"slices"`
}

func (c PieChart) Total() int {
	total := 0
	for _, s := range c.Slices {
		total += s.Value
	}
	return total
}

type ScatterPoint struct {
	X        float64 `json:"x"`
	Y        int     `json:"y"`
	Category string  `json:"category"`
}

// ScatterChart is the declarative payload/outcome chart. Categories lists the
// booster categories in first-appearance order and drives point coloring.
type ScatterChart struct {
	Kind       ChartKind      `json:"kind"`
	Title      string         `json:"title"`
	XLabel     string         `json:"x_label"`
	YLabel     string         `json:"y_label"`
	ColorLabel string         `json:"color_label"`
	Categories []string       `json:"categories"`
	Points     []ScatterPoint `json:"points"`
}

// Series groups the points by category, in Categories order.
func (c ScatterChart) Series() map[string][]ScatterPoint {
	series := make(map[string][]ScatterPoint, len(c.Categories))
	for _, p := range c.Points {
		series[p.Category] = append(series[p.Category], p)
	}
	return series
}
