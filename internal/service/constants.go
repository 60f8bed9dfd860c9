package service

const (
	// Defaults applied when a request leaves a field empty
	DefaultMASPercent        = "100"
	DefaultReps              = "10"
	DefaultRepDistanceID     = "400m"
	DefaultTargetDistanceID  = "5k"
	DefaultReferenceDistance = "5k"

	// History listing
	HistoryLimit = 20

	// Reference distances saved in settings match a catalog entry within this many meters
	ReferenceMatchMeters = 0.5
)
