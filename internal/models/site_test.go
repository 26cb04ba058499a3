package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetLaunchSite_Known(t *testing.T) {
	site, ok := GetLaunchSite("KSC LC-39A")

	assert.True(t, ok)
	assert.Equal(t, "Kennedy Space Center", site.Label)
}

func TestGetLaunchSite_Sentinel(t *testing.T) {
	assert.True(t, IsKnownSite(SiteAll))
}

func TestGetLaunchSite_Unknown(t *testing.T) {
	tests := []string{"", "all", "KSC LC-39", "Mars Base"}
	for _, value := range tests {
		_, ok := GetLaunchSite(value)
		assert.False(t, ok, "value %q", value)
	}
}

func TestLaunchSites_ReturnsCopy(t *testing.T) {
	sites := LaunchSites()
	sites[0].Label = "changed"

	assert.Equal(t, "Vandenburg", LaunchSites()[0].Label)
	assert.Len(t, sites, 5)
	assert.Equal(t, SiteAll, sites[len(sites)-1].Value)
}

func TestLaunchRecord_Succeeded(t *testing.T) {
	assert.True(t, LaunchRecord{OutcomeClass: 1}.Succeeded())
	assert.False(t, LaunchRecord{OutcomeClass: 0}.Succeeded())
}
