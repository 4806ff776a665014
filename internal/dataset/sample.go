package dataset

import "github.com/rshade/intersections/internal/adapter"

// sampleIntersections is shown when neither the command line nor the config
// names a dataset.
//
//nolint:gochecknoglobals // read-only fixture
var sampleIntersections = []string{
	"Main & 1st",
	"Elm & 2nd",
	"Oak & 3rd",
	"Pine & 4th",
	"Maple & 5th",
	"Cedar & 6th",
	"Walnut & 7th",
	"Chestnut & 8th",
	"Spruce & 9th",
	"Birch & 10th",
	"Willow & 11th",
	"Aspen & 12th",
	"Harbor & Commonwealth",
	"Chapman & State College",
	"Nutwood & Commonwealth",
	"Yorba Linda & Placentia",
}

// Sample returns a fresh dataset of sample intersections.
func Sample() *adapter.Dataset {
	return adapter.NewDataset(sampleIntersections...)
}
