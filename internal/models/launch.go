package models

// LaunchRecord is one row of the launch dataset.
type LaunchRecord struct {
	LaunchSite             string  `json:"launch_site" db:"launch_site"`
	PayloadMassKg          float64 `json:"payload_mass_kg" db:"payload_mass_kg"`
	BoosterVersionCategory string  `json:"booster_version_category" db:"booster_version_category"`
	OutcomeClass           int     `json:"class" db:"class"`
}

// Succeeded reports whether the launch landed (class 1).
func (r LaunchRecord) Succeeded() bool {
	return r.OutcomeClass == 1
}
