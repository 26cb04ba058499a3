package models

// SiteAll is the selector value meaning "no site restriction".
const SiteAll = "ALL"

type LaunchSite struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// Dropdown order. SiteAll is listed last, as on the page.
var launchSites = []LaunchSite{
	{Value: "VAFB SLC-4E", Label: "Vandenburg"},
	{Value: "CCAFS LC-40", Label: "Cape Canaveral LC"},
	{Value: "CCAFS SLC-40", Label: "Cape Canaveral SLC"},
	{Value: "KSC LC-39A", Label: "Kennedy Space Center"},
	{Value: SiteAll, Label: "All Sites"},
}

func LaunchSites() []LaunchSite {
	sites := make([]LaunchSite, len(launchSites))
	copy(sites, launchSites)
	return sites
}

// GetLaunchSite looks up a selector value, including SiteAll.
func GetLaunchSite(value string) (LaunchSite, bool) {
	for _, site := range launchSites {
		if site.Value == value {
			return site, true
		}
	}
	return LaunchSite{}, false
}

func IsKnownSite(value string) bool {
	_, ok := GetLaunchSite(value)
	return ok
}
