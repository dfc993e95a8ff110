package cache

// Keyer derives cache keys.
type Keyer interface {
	// ReportKey returns the key of the branding report for an itinerary
	// whose content hashes to itinHash.
	ReportKey(itinHash string, opts ReportKeyOpts) string
}

// ReportKeyOpts holds every option that changes a branding report.
type ReportKeyOpts struct {
	Mode              string `json:"mode"`
	SpaceLimit        int    `json:"space_limit"`
	UseDirectionality bool   `json:"directionality"`
	RequestedCabin    string `json:"cabin"`
	StayInCabin       bool   `json:"stay_in_cabin"`
	PerCabin          bool   `json:"per_cabin"`
}

// DefaultKeyer hashes the key components.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ReportKey implements Keyer.
func (DefaultKeyer) ReportKey(itinHash string, opts ReportKeyOpts) string {
	return hashKey("report", itinHash, opts)
}

// Ensure DefaultKeyer implements Keyer.
var _ Keyer = DefaultKeyer{}
