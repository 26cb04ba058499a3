package dashboard

import (
	"fmt"
	"math"

	"SpaceXLaunchDashboard/internal/models"
)

const scatterTitle = "Correlation between Payload and Success for "

// PayloadRange is the slider selection. Both bounds are exclusive.
type PayloadRange struct {
	Low  float64 `json:"low"`
	High float64 `json:"high"`
}

func (r PayloadRange) Valid() bool {
	return !math.IsNaN(r.Low) && !math.IsNaN(r.High) && r.Low <= r.High
}

// Contains reports whether mass lies strictly between Low and High.
func (r PayloadRange) Contains(mass float64) bool {
	return mass > r.Low && mass < r.High
}

// PayloadScatter projects the launches whose payload lies strictly inside
// payload, restricted to site unless it is models.SiteAll. Points keep load order.
//
// An inverted range yields an empty chart and ErrInvalidRange; an unknown site
// yields an empty chart and ErrInvalidSelection.
func PayloadScatter(launches Launches, site string, payload PayloadRange) (ScatterChart, error) {
	chart := ScatterChart{
		Kind:       KindScatter,
		Title:      scatterTitle + siteTitle(site),
		XLabel:     LabelPayloadMass,
		YLabel:     LabelClass,
		ColorLabel: LabelBoosterCategory,
		Categories: make([]string, 0),
		Points:     make([]ScatterPoint, 0),
	}
	if !payload.Valid() {
		return chart, fmt.Errorf("%w: [%v, %v]", ErrInvalidRange, payload.Low, payload.High)
	}
	if !models.IsKnownSite(site) {
		return chart, fmt.Errorf("%w: %q", ErrInvalidSelection, site)
	}

	seen := make(map[string]bool)
	for i := 0; i < launches.Len(); i++ {
		r := launches.At(i)
		if !payload.Contains(r.PayloadMassKg) {
			continue
		}
		if site != models.SiteAll && r.LaunchSite != site {
			continue
		}
		if !seen[r.BoosterVersionCategory] {
			seen[r.BoosterVersionCategory] = true
			chart.Categories = append(chart.Categories, r.BoosterVersionCategory)
		}
		chart.Points = append(chart.Points, ScatterPoint{
			X:        r.PayloadMassKg,
			Y:        r.OutcomeClass,
			Category: r.BoosterVersionCategory,
		})
	}
	return chart, nil
}

func siteTitle(site string) string {
	if site == models.SiteAll {
		return "All Sites"
	}
	return site
}
