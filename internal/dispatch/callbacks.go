package dispatch

import "SpaceXLaunchDashboard/internal/dashboard"

// NewDashboard registers the two dashboard charts:
// the pie chart reads the site dropdown, the scatter chart reads the site
// dropdown and the payload slider.
func NewDashboard(launches dashboard.Launches) *Dispatcher {
	d := New()
	d.Register(Callback{
		Output: dashboard.PieChartID,
		Inputs: []string{dashboard.SiteDropdownID},
		Build: func(s State) (any, error) {
			return dashboard.SuccessPie(launches, s.Site)
		},
	})
	d.Register(Callback{
		Output: dashboard.ScatterChartID,
		Inputs: []string{dashboard.SiteDropdownID, dashboard.PayloadSliderID},
		Build: func(s State) (any, error) {
			return dashboard.PayloadScatter(launches, s.Site, s.Payload)
		},
	})
	return d
}
