package dashboard

import (
	"fmt"
	"sort"
	"strconv"

	"SpaceXLaunchDashboard/internal/models"
)

const (
	pieTitleAll  = "Total Successful Launches By Site"
	pieTitleSite = "Total Successful Launches for "
)

// SuccessPie builds the proportion chart for a site selection.
//
// For models.SiteAll there is one slice per launch site present in the data,
// sized by its number of successful launches and ordered by site name. For a
// single site there is one slice per outcome class present (0, then 1), sized
// by the number of launches with that class.
//
// A value outside the site registry yields an empty chart and ErrInvalidSelection.
func SuccessPie(launches Launches, site string) (PieChart, error) {
	if site == models.SiteAll {
		return successBySite(launches), nil
	}

	chart := PieChart{
		Kind:   KindPie,
		Title:  pieTitleSite + site,
		Names:  LabelClass,
		Values: LabelCount,
		Slices: make([]PieSlice, 0, 2),
	}
	if !models.IsKnownSite(site) {
		return chart, fmt.Errorf("%w: %q", ErrInvalidSelection, site)
	}

	var counts [2]int
	for i := 0; i < launches.Len(); i++ {
		r := launches.At(i)
		if r.LaunchSite == site && (r.OutcomeClass == 0 || r.OutcomeClass == 1) {
			counts[r.OutcomeClass]++
		}
	}
	for class, n := range counts {
		if n > 0 {
			chart.Slices = append(chart.Slices, PieSlice{Label: strconv.Itoa(class), Value: n})
		}
	}
	return chart, nil
}

func successBySite(launches Launches) PieChart {
	successes := make(map[string]int)
	for i := 0; i < launches.Len(); i++ {
		r := launches.At(i)
		n := successes[r.LaunchSite]
		if r.Succeeded() {
			n++
		}
		successes[r.LaunchSite] = n
	}

	sites := make([]string, 0, len(successes))
	for site := range successes {
		sites = append(sites, site)
	}
	sort.Strings(sites)

	slices := make([]PieSlice, 0, len(sites))
	for _, site := range sites {
		slices = append(slices, PieSlice{Label: site, Value: successes[site]})
	}
	return PieChart{
		Kind:   KindPie,
		Title:  pieTitleAll,
		Names:  LabelLaunchSite,
		Values: LabelClass,
		Slices: slices,
	}
}
