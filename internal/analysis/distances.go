package analysis

import "math"

// Standard distances in meters
const (
	Distance100m     = 100
	Distance200m     = 200
	Distance300m     = 300
	Distance400m     = 400
	Distance500m     = 500
	Distance600m     = 600
	Distance800m     = 800
	Distance1K       = 1000
	Distance1200m    = 1200
	Distance1500m    = 1500
	Distance1Mile    = 1609.34
	Distance2K       = 2000
	Distance3K       = 3000
	Distance5K       = 5000
	Distance10K      = 10000
	DistanceHalfMara = 21097.5
	DistanceMarathon = 42195

	DistanceTolerance = 0.05 // 5% tolerance for race distance matching
)

// Distance is a named entry of a distance catalog.
// ID is stable and is what callers key display strings on.
type Distance struct {
	ID     string
	Label  string
	Meters float64
}

// StandardDistances is the catalog used by the split projector
var StandardDistances = []Distance{
	{"200m", "200 m", Distance200m},
	{"300m", "300 m", Distance300m},
	{"400m", "400 m", Distance400m},
	{"800m", "800 m", Distance800m},
	{"1k", "1 km", Distance1K},
	{"1500m", "1500 m", Distance1500m},
	{"1mi", "1 mile", Distance1Mile},
	{"3k", "3 km", Distance3K},
	{"5k", "5 km", Distance5K},
	{"10k", "10 km", Distance10K},
	{"half", "Half Marathon", DistanceHalfMara},
	{"marathon", "Marathon", DistanceMarathon},
}

// PredictionDistances defines the target distances for race predictions
var PredictionDistances = []Distance{
	{"1500m", "1500 m", Distance1500m},
	{"1mi", "1 mile", Distance1Mile},
	{"3k", "3 km", Distance3K},
	{"5k", "5 km", Distance5K},
	{"10k", "10 km", Distance10K},
	{"half", "Half Marathon", DistanceHalfMara},
	{"marathon", "Marathon", DistanceMarathon},
}

// IntervalDistances are the repetition distances offered by the interval calculator
var IntervalDistances = []Distance{
	{"100m", "100 m", Distance100m},
	{"200m", "200 m", Distance200m},
	{"300m", "300 m", Distance300m},
	{"400m", "400 m", Distance400m},
	{"500m", "500 m", Distance500m},
	{"600m", "600 m", Distance600m},
	{"800m", "800 m", Distance800m},
	{"1k", "1 km", Distance1K},
	{"1200m", "1200 m", Distance1200m},
	{"1500m", "1500 m", Distance1500m},
	{"2k", "2 km", Distance2K},
	{"3k", "3 km", Distance3K},
}

// FindDistance looks up a distance by ID in a catalog
func FindDistance(catalog []Distance, id string) (Distance, bool) {
	for _, d := range catalog {
		if d.ID == id {
			return d, true
		}
	}
	return Distance{}, false
}

// matchesDistance checks if a distance is within 5% of a target
func matchesDistance(distance, target float64) bool {
	tolerance := target * DistanceTolerance
	return math.Abs(distance-target) <= tolerance
}
